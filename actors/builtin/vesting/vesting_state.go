package vesting

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	cid "github.com/ipfs/go-cid"
	"golang.org/x/xerrors"

	"github.com/tokenvest/vesting-actors/actors/util/adt"
)

type State struct {
	Registries cid.Cid // Map, HAMT[Address]Registry, keyed by the address derived from the company name
	Schedules  cid.Cid // Map, HAMT[Address]Schedule, keyed by the address derived from beneficiary and registry
}

// One company's vesting program. Immutable once created.
type Registry struct {
	// The only party that may create schedules under this registry.
	Owner addr.Address
	// The token mint every schedule of this registry vests.
	TokenType addr.Address
	// The program-controlled token account holding the deposited supply.
	Custodian addr.Address
	Name      string
	// Derivation bumps of the custodian and of the registry itself.
	CustodianBump uint8
	Bump          uint8
}

// One beneficiary's vesting terms and withdrawal history.
type Schedule struct {
	Beneficiary addr.Address
	Registry    addr.Address
	// Unix seconds. StartTime <= CliffTime <= EndTime, StartTime < EndTime.
	StartTime int64
	EndTime   int64
	CliffTime int64
	// Units allocated over the whole window.
	TotalAmount abi.TokenAmount
	// Units released so far. Never decreases, never exceeds TotalAmount.
	TotalWithdrawn abi.TokenAmount
	Bump           uint8
}

func ConstructState(store adt.Store) (*State, error) {
	emptyMapCid, err := adt.StoreEmptyMap(store, adt.DefaultHamtBitwidth)
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty map: %w", err)
	}
	return &State{
		Registries: emptyMapCid,
		Schedules:  emptyMapCid,
	}, nil
}

func (st *State) GetRegistry(store adt.Store, a addr.Address) (*Registry, bool, error) {
	registries, err := adt.AsMap(store, st.Registries, adt.DefaultHamtBitwidth)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to load registries: %w", err)
	}
	var out Registry
	found, err := registries.Get(abi.AddrKey(a), &out)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to get registry %v: %w", a, err)
	}
	if !found {
		return nil, false, nil
	}
	return &out, true, nil
}

func (st *State) GetSchedule(store adt.Store, a addr.Address) (*Schedule, bool, error) {
	schedules, err := adt.AsMap(store, st.Schedules, adt.DefaultHamtBitwidth)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to load schedules: %w", err)
	}
	var out Schedule
	found, err := schedules.Get(abi.AddrKey(a), &out)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to get schedule %v: %w", a, err)
	}
	if !found {
		return nil, false, nil
	}
	return &out, true, nil
}

func (st *State) ForEachRegistry(store adt.Store, fn func(a addr.Address, r *Registry) error) error {
	registries, err := adt.AsMap(store, st.Registries, adt.DefaultHamtBitwidth)
	if err != nil {
		return xerrors.Errorf("failed to load registries: %w", err)
	}
	var r Registry
	return registries.ForEach(&r, func(k string) error {
		a, err := addr.NewFromBytes([]byte(k))
		if err != nil {
			return err
		}
		cpy := r
		return fn(a, &cpy)
	})
}

func (st *State) ForEachSchedule(store adt.Store, fn func(a addr.Address, s *Schedule) error) error {
	schedules, err := adt.AsMap(store, st.Schedules, adt.DefaultHamtBitwidth)
	if err != nil {
		return xerrors.Errorf("failed to load schedules: %w", err)
	}
	var s Schedule
	return schedules.ForEach(&s, func(k string) error {
		a, err := addr.NewFromBytes([]byte(k))
		if err != nil {
			return err
		}
		cpy := s
		return fn(a, &cpy)
	})
}
