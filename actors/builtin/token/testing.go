package token

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"

	"github.com/tokenvest/vesting-actors/actors/builtin"
	"github.com/tokenvest/vesting-actors/actors/util/adt"
)

type StateSummary struct {
	Supply   map[addr.Address]abi.TokenAmount
	Balances map[addr.Address]abi.TokenAmount
}

// Checks internal invariants of token state.
func CheckStateInvariants(st *State, store adt.Store) (*StateSummary, *builtin.MessageAccumulator) {
	acc := &builtin.MessageAccumulator{}
	summary := &StateSummary{
		Supply:   make(map[addr.Address]abi.TokenAmount),
		Balances: make(map[addr.Address]abi.TokenAmount),
	}

	mints, err := adt.AsMap(store, st.Mints, adt.DefaultHamtBitwidth)
	if err != nil {
		acc.Addf("error loading mints: %v", err)
		return summary, acc
	}
	var mint Mint
	err = mints.ForEach(&mint, func(k string) error {
		a, err := addr.NewFromBytes([]byte(k))
		if err != nil {
			return err
		}
		acc.Require(mint.Supply.GreaterThanEqual(big.Zero()), "mint %v has negative supply %v", a, mint.Supply)
		summary.Supply[a] = mint.Supply
		return nil
	})
	acc.RequireNoError(err, "error iterating mints")

	accounts, err := adt.AsMap(store, st.Accounts, adt.DefaultHamtBitwidth)
	if err != nil {
		acc.Addf("error loading accounts: %v", err)
		return summary, acc
	}
	byAccount := make(map[addr.Address]addr.Address)
	var account Account
	err = accounts.ForEach(&account, func(k string) error {
		a, err := addr.NewFromBytes([]byte(k))
		if err != nil {
			return err
		}
		_, found := summary.Supply[account.Mint]
		acc.Require(found, "account %v refers to missing mint %v", a, account.Mint)
		byAccount[a] = account.Mint
		return nil
	})
	acc.RequireNoError(err, "error iterating accounts")

	balances, err := adt.AsBalanceTable(store, st.Balances)
	if err != nil {
		acc.Addf("error loading balances: %v", err)
		return summary, acc
	}
	held := make(map[addr.Address]abi.TokenAmount)
	err = balances.ForEach(func(a addr.Address, balance abi.TokenAmount) error {
		acc.Require(balance.GreaterThan(big.Zero()), "balance of %v is not positive: %v", a, balance)
		mint, found := byAccount[a]
		acc.Require(found, "balance held by unknown account %v", a)
		if found {
			prev, ok := held[mint]
			if !ok {
				prev = big.Zero()
			}
			held[mint] = big.Add(prev, balance)
		}
		summary.Balances[a] = balance
		return nil
	})
	acc.RequireNoError(err, "error iterating balances")

	for m, supply := range summary.Supply {
		total, ok := held[m]
		if !ok {
			total = big.Zero()
		}
		acc.Require(total.Equals(supply), "mint %v supply %v does not match sum of balances %v", m, supply, total)
	}

	return summary, acc
}
