package token

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	rtt "github.com/filecoin-project/go-state-types/rt"
	cid "github.com/ipfs/go-cid"

	"github.com/tokenvest/vesting-actors/actors/builtin"
	"github.com/tokenvest/vesting-actors/actors/runtime"
	"github.com/tokenvest/vesting-actors/actors/util/adt"
)

// The token actor is the fungible token ledger. It holds every mint, every token account and every balance,
// and is the only actor that moves balances.
type Actor struct{}

func (a Actor) Exports() []interface{} {
	return []interface{}{
		builtin.MethodConstructor: a.Constructor,
		2:                         a.CreateMint,
		3:                         a.MintTo,
		4:                         a.CreateAccount,
		5:                         a.InitializeAccount,
		6:                         a.Transfer,
		7:                         a.GetAccount,
	}
}

func (a Actor) Code() cid.Cid {
	return builtin.TokenActorCodeID
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
// CreateMint
//

type CreateMintParams struct {
	Mint     addr.Address
	Decimals uint8
}

// Registers a new token type. The caller becomes its mint authority.
func (a Actor) CreateMint(rt runtime.Runtime, params *CreateMintParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	builtin.RequireParam(rt, params.Decimals <= MaxDecimals, "decimals %d exceeds maximum %d", params.Decimals, MaxDecimals)

	var st State
	rt.State().Transaction(&st, func() {
		mints, err := adt.AsMap(adt.AsStore(rt), st.Mints, adt.DefaultHamtBitwidth)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load mints")

		created, err := mints.PutIfAbsent(abi.AddrKey(params.Mint), &Mint{
			Authority: rt.Message().Caller(),
			Decimals:  params.Decimals,
			Supply:    big.Zero(),
		})
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to put mint %v", params.Mint)
		builtin.RequireParam(rt, created, "mint %v already exists", params.Mint)

		st.Mints, err = mints.Root()
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to flush mints")
	})
	return nil
}

//
// MintTo
//

type MintToParams struct {
	Account addr.Address
	Amount  abi.TokenAmount
}

// Issues new units into an account. Only the mint authority may issue.
func (a Actor) MintTo(rt runtime.Runtime, params *MintToParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerAcceptAny()
	builtin.RequireParam(rt, params.Amount.GreaterThan(big.Zero()), "amount to mint %v must be positive", params.Amount)

	var st State
	rt.State().Transaction(&st, func() {
		store := adt.AsStore(rt)
		accounts, err := adt.AsMap(store, st.Accounts, adt.DefaultHamtBitwidth)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load accounts")
		var account Account
		found, err := accounts.Get(abi.AddrKey(params.Account), &account)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to get account %v", params.Account)
		if !found {
			rt.Abortf(exitcode.ErrNotFound, "no token account %v", params.Account)
		}

		mints, err := adt.AsMap(store, st.Mints, adt.DefaultHamtBitwidth)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load mints")
		var mint Mint
		found, err = mints.Get(abi.AddrKey(account.Mint), &mint)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to get mint %v", account.Mint)
		builtin.RequireState(rt, found, "account %v refers to missing mint %v", params.Account, account.Mint)

		if mint.Authority != rt.Message().Caller() {
			rt.Abortf(exitcode.ErrForbidden, "caller %v is not the authority of mint %v", rt.Message().Caller(), account.Mint)
		}

		mint.Supply = big.Add(mint.Supply, params.Amount)
		err = mints.Put(abi.AddrKey(account.Mint), &mint)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to put mint %v", account.Mint)

		balances, err := adt.AsBalanceTable(store, st.Balances)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load balances")
		err = balances.Add(params.Account, params.Amount)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to credit %v", params.Account)

		st.Mints, err = mints.Root()
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to flush mints")
		st.Balances, err = balances.Root()
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to flush balances")

		rt.Log(builtin.GetActorLogLevel(a, rtt.DEBUG), "minted %s of %v to %v", FormatAmount(params.Amount, mint.Decimals), account.Mint, params.Account)
	})
	return nil
}

//
// CreateAccount
//

type CreateAccountParams struct {
	Owner addr.Address
	Mint  addr.Address
}

type CreateAccountReturn struct {
	Account addr.Address
}

// Creates the associated token account of an owner for a mint, at the address derived from both.
// Anyone may create it, e.g. to pay out to a party before it has ever transacted.
func (a Actor) CreateAccount(rt runtime.Runtime, params *CreateAccountParams) *CreateAccountReturn {
	rt.ValidateImmediateCallerAcceptAny()

	address, _, err := rt.Syscalls().FindProgramAddress(params.Owner.Bytes(), params.Mint.Bytes())
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalArgument, "failed to derive account for owner %v mint %v", params.Owner, params.Mint)

	var st State
	rt.State().Transaction(&st, func() {
		a.createAccount(rt, &st, address, params.Mint, params.Owner)
	})
	return &CreateAccountReturn{Account: address}
}

//
// InitializeAccount
//

type InitializeAccountParams struct {
	Account addr.Address
	Mint    addr.Address
	Owner   addr.Address
	// Proof that the calling program derives Account.
	Authority ProgramSignature
}

// Creates a token account at an address derived by the calling program.
// The account has no signing key; the owner (usually the account address itself) authorizes transfers
// out of it only through the calling program.
func (a Actor) InitializeAccount(rt runtime.Runtime, params *InitializeAccountParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesProgram...)
	builtin.RequireParam(rt, !params.Authority.IsEmpty(), "program account requires derivation seeds")

	derived, err := rt.Syscalls().CreateProgramAddress(rt.Message().Caller(), params.Authority.Bump, params.Authority.Seeds...)
	if err != nil || derived != params.Account {
		rt.Abortf(exitcode.ErrForbidden, "caller %v does not derive %v with the given seeds", rt.Message().Caller(), params.Account)
	}

	var st State
	rt.State().Transaction(&st, func() {
		a.createAccount(rt, &st, params.Account, params.Mint, params.Owner)
	})
	return nil
}

func (a Actor) createAccount(rt runtime.Runtime, st *State, address, mint, owner addr.Address) {
	store := adt.AsStore(rt)
	mints, err := adt.AsMap(store, st.Mints, adt.DefaultHamtBitwidth)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load mints")
	found, err := mints.Has(abi.AddrKey(mint))
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to look up mint %v", mint)
	if !found {
		rt.Abortf(exitcode.ErrNotFound, "no mint %v", mint)
	}

	accounts, err := adt.AsMap(store, st.Accounts, adt.DefaultHamtBitwidth)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load accounts")
	created, err := accounts.PutIfAbsent(abi.AddrKey(address), &Account{Mint: mint, Owner: owner})
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to put account %v", address)
	builtin.RequireParam(rt, created, "token account %v already exists", address)

	st.Accounts, err = accounts.Root()
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to flush accounts")

	rt.Log(builtin.GetActorLogLevel(a, rtt.DEBUG), "created token account %v of mint %v for %v", address, mint, owner)
}

//
// Transfer
//

type TransferParams struct {
	From   addr.Address
	To     addr.Address
	Amount abi.TokenAmount
	// Proof that the calling program derives the owner of From. Empty when the owner itself calls.
	Authority ProgramSignature
}

// Moves units between two accounts of the same mint.
// The caller must be the owner of the source account, or the program that derives that owner.
func (a Actor) Transfer(rt runtime.Runtime, params *TransferParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerAcceptAny()
	builtin.RequireParam(rt, params.Amount.GreaterThan(big.Zero()), "amount to transfer %v must be positive", params.Amount)
	builtin.RequireParam(rt, params.From != params.To, "cannot transfer from %v to itself", params.From)

	var st State
	rt.State().Readonly(&st)
	store := adt.AsStore(rt)

	from, found, err := st.GetAccount(store, params.From)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load source account")
	if !found {
		rt.Abortf(exitcode.ErrNotFound, "no token account %v", params.From)
	}
	to, found, err := st.GetAccount(store, params.To)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load destination account")
	if !found {
		rt.Abortf(exitcode.ErrNotFound, "no token account %v", params.To)
	}

	if !a.authorized(rt, from.Owner, params.Authority) {
		rt.Abortf(exitcode.ErrForbidden, "caller %v may not transfer from %v owned by %v", rt.Message().Caller(), params.From, from.Owner)
	}
	builtin.RequireParam(rt, from.Mint == to.Mint, "mint mismatch: %v holds %v, %v holds %v", params.From, from.Mint, params.To, to.Mint)

	var decimals uint8
	rt.State().Transaction(&st, func() {
		balances, err := adt.AsBalanceTable(adt.AsStore(rt), st.Balances)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load balances")

		err = balances.MustSubtract(params.From, params.Amount)
		builtin.RequireNoErr(rt, err, exitcode.ErrInsufficientFunds, "failed to debit %v by %v", params.From, params.Amount)
		err = balances.Add(params.To, params.Amount)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to credit %v", params.To)

		st.Balances, err = balances.Root()
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to flush balances")

		mint, found, err := st.GetMint(adt.AsStore(rt), from.Mint)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load mint %v", from.Mint)
		builtin.RequireState(rt, found, "account %v refers to missing mint %v", params.From, from.Mint)
		decimals = mint.Decimals
	})

	rt.Log(builtin.GetActorLogLevel(a, rtt.DEBUG), "transferred %s from %v to %v", FormatAmount(params.Amount, decimals), params.From, params.To)
	return nil
}

// A caller is authorized for an owner if it is the owner, or if it is a program that derives the owner
// from the presented seeds.
func (a Actor) authorized(rt runtime.Runtime, owner addr.Address, sig ProgramSignature) bool {
	caller := rt.Message().Caller()
	if caller == owner {
		return true
	}
	if sig.IsEmpty() {
		return false
	}
	derived, err := rt.Syscalls().CreateProgramAddress(caller, sig.Bump, sig.Seeds...)
	return err == nil && derived == owner
}

//
// GetAccount
//

type GetAccountReturn struct {
	Mint   addr.Address
	Owner  addr.Address
	Amount abi.TokenAmount
}

func (a Actor) GetAccount(rt runtime.Runtime, address *addr.Address) *GetAccountReturn {
	rt.ValidateImmediateCallerAcceptAny()

	var st State
	rt.State().Readonly(&st)
	store := adt.AsStore(rt)
	account, found, err := st.GetAccount(store, *address)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load account")
	if !found {
		rt.Abortf(exitcode.ErrNotFound, "no token account %v", *address)
	}
	balance, err := st.Balance(store, *address)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load balance")

	return &GetAccountReturn{
		Mint:   account.Mint,
		Owner:  account.Owner,
		Amount: balance,
	}
}
