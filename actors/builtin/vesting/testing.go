package vesting

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"

	"github.com/tokenvest/vesting-actors/actors/builtin"
	"github.com/tokenvest/vesting-actors/actors/crypto"
	"github.com/tokenvest/vesting-actors/actors/util/adt"
)

type StateSummary struct {
	Registries map[addr.Address]*Registry
	Schedules  map[addr.Address]*Schedule
	// Units still owed by each registry's custodian: allocated and not yet withdrawn.
	Outstanding map[addr.Address]abi.TokenAmount
}

// Checks internal invariants of vesting state.
func CheckStateInvariants(st *State, store adt.Store) (*StateSummary, *builtin.MessageAccumulator) {
	acc := &builtin.MessageAccumulator{}
	summary := &StateSummary{
		Registries:  make(map[addr.Address]*Registry),
		Schedules:   make(map[addr.Address]*Schedule),
		Outstanding: make(map[addr.Address]abi.TokenAmount),
	}

	err := st.ForEachRegistry(store, func(a addr.Address, r *Registry) error {
		racc := acc.WithPrefix("registry %v: ", a)
		derived, err := crypto.CreateProgramAddress(builtin.VestingProgramKey, r.Bump, RegistrySeeds(r.Name)...)
		racc.Require(err == nil && derived == a, "address does not derive from name %q and bump %d", r.Name, r.Bump)
		custodian, err := crypto.CreateProgramAddress(builtin.VestingProgramKey, r.CustodianBump, CustodianSeeds(r.Name)...)
		racc.Require(err == nil && custodian == r.Custodian, "custodian %v does not derive from name %q and bump %d", r.Custodian, r.Name, r.CustodianBump)
		racc.Require(len(r.Name) > 0 && len(r.Name) <= MaxCompanyNameLength, "invalid name %q", r.Name)

		summary.Registries[a] = r
		summary.Outstanding[a] = big.Zero()
		return nil
	})
	acc.RequireNoError(err, "error iterating registries")

	err = st.ForEachSchedule(store, func(a addr.Address, s *Schedule) error {
		sacc := acc.WithPrefix("schedule %v: ", a)
		sacc.RequireNoError(ValidateWindow(s.StartTime, s.EndTime, s.CliffTime), "invalid window")
		sacc.Require(s.TotalAmount.GreaterThan(big.Zero()), "total %v not positive", s.TotalAmount)
		sacc.Require(s.TotalWithdrawn.GreaterThanEqual(big.Zero()), "withdrawn %v negative", s.TotalWithdrawn)
		sacc.Require(s.TotalWithdrawn.LessThanEqual(s.TotalAmount), "withdrawn %v exceeds total %v", s.TotalWithdrawn, s.TotalAmount)

		derived, err := crypto.CreateProgramAddress(builtin.VestingProgramKey, s.Bump, ScheduleSeeds(s.Beneficiary, s.Registry)...)
		sacc.Require(err == nil && derived == a, "address does not derive from beneficiary %v and registry %v", s.Beneficiary, s.Registry)

		outstanding, found := summary.Outstanding[s.Registry]
		sacc.Require(found, "registry %v not found", s.Registry)
		if found {
			summary.Outstanding[s.Registry] = big.Add(outstanding, big.Sub(s.TotalAmount, s.TotalWithdrawn))
		}
		summary.Schedules[a] = s
		return nil
	})
	acc.RequireNoError(err, "error iterating schedules")

	return summary, acc
}
