package vesting

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	rtt "github.com/filecoin-project/go-state-types/rt"
	cid "github.com/ipfs/go-cid"

	"github.com/tokenvest/vesting-actors/actors/builtin"
	"github.com/tokenvest/vesting-actors/actors/builtin/token"
	"github.com/tokenvest/vesting-actors/actors/runtime"
	"github.com/tokenvest/vesting-actors/actors/util/adt"
)

// Vesting actor exit codes.
const (
	ErrClaimNotAvailableYet = exitcode.FirstActorSpecificExitCode + iota
	ErrInvalidVestingPeriod
	ErrNothingToClaim
	ErrDuplicateCompany
	ErrDuplicateSchedule
	ErrUnauthorized
)

// The vesting actor holds company registries and beneficiary schedules, and releases vested tokens
// from each company's custodian. It derives, and so alone controls, every custodian account.
type Actor struct{}

func (a Actor) Exports() []interface{} {
	return []interface{}{
		builtin.MethodConstructor: a.Constructor,
		2:                         a.CreateVestingAccount,
		3:                         a.CreateEmployeeAccount,
		4:                         a.ClaimTokens,
	}
}

func (a Actor) Code() cid.Cid {
	return builtin.VestingActorCodeID
}

func (a Actor) State() cbor.Er {
	return new(State)
}

var _ runtime.VMActor = Actor{}

func (a Actor) Constructor(rt runtime.Runtime, _ *abi.EmptyValue) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.SystemActorAddr)

	st, err := ConstructState(adt.AsStore(rt))
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to construct state")
	rt.State().Create(st)
	return nil
}

//
// CreateVestingAccount
//

type CreateVestingAccountParams struct {
	Name      string
	TokenType addr.Address
}

type CreateVestingAccountReturn struct {
	Registry  addr.Address
	Custodian addr.Address
}

// Creates a company's registry and its custodian token account. The caller becomes the registry owner.
// The name may be used only once.
func (a Actor) CreateVestingAccount(rt runtime.Runtime, params *CreateVestingAccountParams) *CreateVestingAccountReturn {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	builtin.RequireParam(rt, len(params.Name) > 0, "company name must not be empty")
	builtin.RequireParam(rt, len(params.Name) <= MaxCompanyNameLength, "company name length %d exceeds maximum %d", len(params.Name), MaxCompanyNameLength)

	registryAddr, bump, err := rt.Syscalls().FindProgramAddress(RegistrySeeds(params.Name)...)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalArgument, "failed to derive registry for %q", params.Name)
	custodian, custodianBump, err := rt.Syscalls().FindProgramAddress(CustodianSeeds(params.Name)...)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalArgument, "failed to derive custodian for %q", params.Name)

	var st State
	rt.State().Transaction(&st, func() {
		registries, err := adt.AsMap(adt.AsStore(rt), st.Registries, adt.DefaultHamtBitwidth)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load registries")

		created, err := registries.PutIfAbsent(abi.AddrKey(registryAddr), &Registry{
			Owner:         rt.Message().Caller(),
			TokenType:     params.TokenType,
			Custodian:     custodian,
			Name:          params.Name,
			CustodianBump: custodianBump,
			Bump:          bump,
		})
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to put registry %v", registryAddr)
		if !created {
			rt.Abortf(ErrDuplicateCompany, "company %q already has a registry at %v", params.Name, registryAddr)
		}

		st.Registries, err = registries.Root()
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to flush registries")
	})

	// The custodian owns itself, so only this actor's derivation proof can move its balance.
	code := rt.Send(builtin.TokenActorAddr, builtin.MethodsToken.InitializeAccount, &token.InitializeAccountParams{
		Account: custodian,
		Mint:    params.TokenType,
		Owner:   custodian,
		Authority: token.ProgramSignature{
			Seeds: CustodianSeeds(params.Name),
			Bump:  custodianBump,
		},
	}, nil)
	builtin.RequireSuccess(rt, code, "failed to initialize custodian %v", custodian)

	rt.Log(builtin.GetActorLogLevel(a, rtt.INFO), "created registry %v for %q with custodian %v", registryAddr, params.Name, custodian)
	return &CreateVestingAccountReturn{
		Registry:  registryAddr,
		Custodian: custodian,
	}
}

//
// CreateEmployeeAccount
//

type CreateEmployeeAccountParams struct {
	Registry    addr.Address
	Beneficiary addr.Address
	StartTime   int64
	EndTime     int64
	TotalAmount abi.TokenAmount
	CliffTime   int64
}

type CreateEmployeeAccountReturn struct {
	Schedule addr.Address
}

// Creates a beneficiary's schedule under a registry. Only the registry owner may create schedules,
// and each beneficiary has at most one schedule per registry.
func (a Actor) CreateEmployeeAccount(rt runtime.Runtime, params *CreateEmployeeAccountParams) *CreateEmployeeAccountReturn {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	if err := ValidateWindow(params.StartTime, params.EndTime, params.CliffTime); err != nil {
		rt.Abortf(ErrInvalidVestingPeriod, "invalid vesting period: %s", err)
	}
	builtin.RequireParam(rt, params.TotalAmount.GreaterThan(big.Zero()), "total amount %v must be positive", params.TotalAmount)
	builtin.RequireParam(rt, params.TotalAmount.LessThanEqual(MaxTotalAmount), "total amount %v exceeds maximum %v", params.TotalAmount, MaxTotalAmount)

	var st State
	rt.State().Readonly(&st)
	registry, found, err := st.GetRegistry(adt.AsStore(rt), params.Registry)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load registry")
	if !found {
		rt.Abortf(exitcode.ErrNotFound, "no registry %v", params.Registry)
	}
	if rt.Message().Caller() != registry.Owner {
		rt.Abortf(ErrUnauthorized, "caller %v is not the owner %v of registry %v", rt.Message().Caller(), registry.Owner, params.Registry)
	}

	scheduleAddr, bump, err := rt.Syscalls().FindProgramAddress(ScheduleSeeds(params.Beneficiary, params.Registry)...)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalArgument, "failed to derive schedule for %v", params.Beneficiary)

	rt.State().Transaction(&st, func() {
		schedules, err := adt.AsMap(adt.AsStore(rt), st.Schedules, adt.DefaultHamtBitwidth)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load schedules")

		created, err := schedules.PutIfAbsent(abi.AddrKey(scheduleAddr), &Schedule{
			Beneficiary:    params.Beneficiary,
			Registry:       params.Registry,
			StartTime:      params.StartTime,
			EndTime:        params.EndTime,
			CliffTime:      params.CliffTime,
			TotalAmount:    params.TotalAmount,
			TotalWithdrawn: big.Zero(),
			Bump:           bump,
		})
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to put schedule %v", scheduleAddr)
		if !created {
			rt.Abortf(ErrDuplicateSchedule, "beneficiary %v already has schedule %v in registry %v", params.Beneficiary, scheduleAddr, params.Registry)
		}

		st.Schedules, err = schedules.Root()
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to flush schedules")
	})

	rt.Log(builtin.GetActorLogLevel(a, rtt.INFO), "created schedule %v for %v in registry %v", scheduleAddr, params.Beneficiary, params.Registry)
	return &CreateEmployeeAccountReturn{Schedule: scheduleAddr}
}

//
// ClaimTokens
//

type ClaimTokensParams struct {
	// Name of the company, from which the registry address is derived.
	Name     string
	Schedule addr.Address
	// A token account of the beneficiary, of the registry's token type.
	Destination addr.Address
}

type ClaimTokensReturn struct {
	Claimed        abi.TokenAmount
	TotalWithdrawn abi.TokenAmount
}

// Releases everything vested and not yet withdrawn from the company custodian to the beneficiary.
// The time is the ledger's, never the caller's.
func (a Actor) ClaimTokens(rt runtime.Runtime, params *ClaimTokensParams) *ClaimTokensReturn {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	builtin.RequireParam(rt, len(params.Name) > 0 && len(params.Name) <= MaxCompanyNameLength, "invalid company name %q", params.Name)

	registryAddr, _, err := rt.Syscalls().FindProgramAddress(RegistrySeeds(params.Name)...)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalArgument, "failed to derive registry for %q", params.Name)

	var st State
	rt.State().Readonly(&st)
	store := adt.AsStore(rt)
	registry, found, err := st.GetRegistry(store, registryAddr)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load registry")
	if !found {
		rt.Abortf(exitcode.ErrNotFound, "no registry for company %q", params.Name)
	}
	schedule, found, err := st.GetSchedule(store, params.Schedule)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load schedule")
	if !found {
		rt.Abortf(exitcode.ErrNotFound, "no schedule %v", params.Schedule)
	}

	if schedule.Registry != registryAddr {
		rt.Abortf(ErrUnauthorized, "schedule %v belongs to registry %v, not %v", params.Schedule, schedule.Registry, registryAddr)
	}
	if rt.Message().Caller() != schedule.Beneficiary {
		rt.Abortf(ErrUnauthorized, "caller %v is not the beneficiary %v of schedule %v", rt.Message().Caller(), schedule.Beneficiary, params.Schedule)
	}
	rederived, err := rt.Syscalls().CreateProgramAddress(rt.Message().Receiver(), schedule.Bump, ScheduleSeeds(schedule.Beneficiary, schedule.Registry)...)
	if err != nil || rederived != params.Schedule {
		rt.Abortf(ErrUnauthorized, "schedule %v does not derive from its beneficiary and registry", params.Schedule)
	}

	now := rt.CurrTime()
	requireClaimable(rt, schedule, now)

	var dest token.GetAccountReturn
	code := rt.Send(builtin.TokenActorAddr, builtin.MethodsToken.GetAccount, &params.Destination, &dest)
	builtin.RequireSuccess(rt, code, "failed to look up destination %v", params.Destination)
	builtin.RequireParam(rt, dest.Owner == schedule.Beneficiary, "destination %v is owned by %v, not beneficiary %v", params.Destination, dest.Owner, schedule.Beneficiary)
	builtin.RequireParam(rt, dest.Mint == registry.TokenType, "destination %v holds %v, not %v", params.Destination, dest.Mint, registry.TokenType)

	// The counter is written before the transfer. If the transfer fails this method aborts and the
	// host discards the write.
	var claimed abi.TokenAmount
	var withdrawn abi.TokenAmount
	rt.State().Transaction(&st, func() {
		schedules, err := adt.AsMap(adt.AsStore(rt), st.Schedules, adt.DefaultHamtBitwidth)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load schedules")

		var current Schedule
		found, err := schedules.Get(abi.AddrKey(params.Schedule), &current)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to get schedule %v", params.Schedule)
		builtin.RequireState(rt, found, "schedule %v vanished", params.Schedule)

		claimed = requireClaimable(rt, &current, now)
		current.TotalWithdrawn = big.Add(current.TotalWithdrawn, claimed)
		builtin.RequireState(rt, current.TotalWithdrawn.LessThanEqual(current.TotalAmount),
			"withdrawn %v would exceed total %v", current.TotalWithdrawn, current.TotalAmount)
		withdrawn = current.TotalWithdrawn

		err = schedules.Put(abi.AddrKey(params.Schedule), &current)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to put schedule %v", params.Schedule)
		st.Schedules, err = schedules.Root()
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to flush schedules")
	})

	code = rt.Send(builtin.TokenActorAddr, builtin.MethodsToken.Transfer, &token.TransferParams{
		From:   registry.Custodian,
		To:     params.Destination,
		Amount: claimed,
		Authority: token.ProgramSignature{
			Seeds: CustodianSeeds(registry.Name),
			Bump:  registry.CustodianBump,
		},
	}, nil)
	builtin.RequireSuccess(rt, code, "failed to release %v from custodian %v", claimed, registry.Custodian)

	rt.Log(builtin.GetActorLogLevel(a, rtt.INFO), "released %v to %v from schedule %v, withdrawn %v of %v",
		claimed, params.Destination, params.Schedule, withdrawn, schedule.TotalAmount)
	return &ClaimTokensReturn{
		Claimed:        claimed,
		TotalWithdrawn: withdrawn,
	}
}

// Aborts unless something is claimable from a schedule at a time, returning the claimable amount.
func requireClaimable(rt runtime.Runtime, s *Schedule, now int64) abi.TokenAmount {
	if s.Status(now) == Unvested {
		rt.Abortf(ErrClaimNotAvailableYet, "claims open at %d, now %d", s.CliffTime, now)
	}
	claimable := s.ClaimableAmount(now)
	if claimable.LessThanEqual(big.Zero()) {
		rt.Abortf(ErrNothingToClaim, "nothing to claim: vested %v, withdrawn %v", s.VestedAmount(now), s.TotalWithdrawn)
	}
	return claimable
}
