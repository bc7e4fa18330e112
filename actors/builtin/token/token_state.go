package token

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	cid "github.com/ipfs/go-cid"
	"golang.org/x/xerrors"

	"github.com/tokenvest/vesting-actors/actors/util/adt"
)

type State struct {
	Mints    cid.Cid // Map, HAMT[Address]Mint
	Accounts cid.Cid // Map, HAMT[Address]Account
	Balances cid.Cid // BalanceTable, HAMT[Address]TokenAmount
}

// A fungible token type.
type Mint struct {
	// The only party that may issue new units.
	Authority addr.Address
	// Number of base units per displayed unit, as a power of ten.
	Decimals uint8
	// Total units in existence, equal to the sum of balances of all accounts of this mint.
	Supply abi.TokenAmount
}

// A token account holds a balance of exactly one mint on behalf of one owner.
// The owner may be an address with no signing key, in which case only the program
// that derived it can move the balance.
type Account struct {
	Mint  addr.Address
	Owner addr.Address
}

// Proof that the calling program controls a derived address: the seeds and bump from which it re-derives.
// An empty signature carries no authority.
type ProgramSignature struct {
	Seeds [][]byte
	Bump  uint8
}

func (s ProgramSignature) IsEmpty() bool {
	return len(s.Seeds) == 0
}

func ConstructState(store adt.Store) (*State, error) {
	emptyMapCid, err := adt.StoreEmptyMap(store, adt.DefaultHamtBitwidth)
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty map: %w", err)
	}
	emptyBalanceTableCid, err := adt.StoreEmptyMap(store, adt.BalanceTableBitwidth)
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty balance table: %w", err)
	}
	return &State{
		Mints:    emptyMapCid,
		Accounts: emptyMapCid,
		Balances: emptyBalanceTableCid,
	}, nil
}

func (st *State) GetMint(store adt.Store, mint addr.Address) (*Mint, bool, error) {
	mints, err := adt.AsMap(store, st.Mints, adt.DefaultHamtBitwidth)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to load mints: %w", err)
	}
	var out Mint
	found, err := mints.Get(abi.AddrKey(mint), &out)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to get mint %v: %w", mint, err)
	}
	if !found {
		return nil, false, nil
	}
	return &out, true, nil
}

func (st *State) GetAccount(store adt.Store, account addr.Address) (*Account, bool, error) {
	accounts, err := adt.AsMap(store, st.Accounts, adt.DefaultHamtBitwidth)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to load accounts: %w", err)
	}
	var out Account
	found, err := accounts.Get(abi.AddrKey(account), &out)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to get account %v: %w", account, err)
	}
	if !found {
		return nil, false, nil
	}
	return &out, true, nil
}

// Returns the balance of an account, which is zero for accounts that never received funds.
func (st *State) Balance(store adt.Store, account addr.Address) (abi.TokenAmount, error) {
	balances, err := adt.AsBalanceTable(store, st.Balances)
	if err != nil {
		return big.Zero(), xerrors.Errorf("failed to load balances: %w", err)
	}
	return balances.Get(account)
}

// Iterates every account with its balance.
func (st *State) ForEachAccount(store adt.Store, fn func(address addr.Address, account *Account, balance abi.TokenAmount) error) error {
	accounts, err := adt.AsMap(store, st.Accounts, adt.DefaultHamtBitwidth)
	if err != nil {
		return xerrors.Errorf("failed to load accounts: %w", err)
	}
	balances, err := adt.AsBalanceTable(store, st.Balances)
	if err != nil {
		return xerrors.Errorf("failed to load balances: %w", err)
	}
	var account Account
	return accounts.ForEach(&account, func(k string) error {
		a, err := addr.NewFromBytes([]byte(k))
		if err != nil {
			return err
		}
		balance, err := balances.Get(a)
		if err != nil {
			return err
		}
		acct := account
		return fn(a, &acct, balance)
	})
}
