package test

import (
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokenvest/vesting-actors/actors/builtin"
	"github.com/tokenvest/vesting-actors/actors/builtin/token"
	"github.com/tokenvest/vesting-actors/actors/builtin/vesting"
	tutil "github.com/tokenvest/vesting-actors/support/testing"
	"github.com/tokenvest/vesting-actors/support/vm"
)

const day = int64(86400)

// Scenario clock.
const now = int64(1_700_000_000)

func createMint(t *testing.T, v *vm.VM, authority addr.Address, label string) addr.Address {
	mint := tutil.NewActorAddr(t, label)
	vm.ApplyOk(t, v, authority, builtin.TokenActorAddr, builtin.MethodsToken.CreateMint, &token.CreateMintParams{
		Mint:     mint,
		Decimals: token.DefaultDecimals,
	})
	return mint
}

func createTokenAccount(t *testing.T, v *vm.VM, owner, mint addr.Address) addr.Address {
	ret := vm.ApplyOk(t, v, owner, builtin.TokenActorAddr, builtin.MethodsToken.CreateAccount, &token.CreateAccountParams{
		Owner: owner,
		Mint:  mint,
	})
	created, ok := ret.(*token.CreateAccountReturn)
	require.True(t, ok)
	return created.Account
}

func mintTo(t *testing.T, v *vm.VM, authority, account addr.Address, amount abi.TokenAmount) {
	vm.ApplyOk(t, v, authority, builtin.TokenActorAddr, builtin.MethodsToken.MintTo, &token.MintToParams{
		Account: account,
		Amount:  amount,
	})
}

func balanceOf(t *testing.T, v *vm.VM, account addr.Address) abi.TokenAmount {
	var st token.State
	require.NoError(t, v.GetState(builtin.TokenActorAddr, &st))
	balance, err := st.Balance(v.Store(), account)
	require.NoError(t, err)
	return balance
}

func createVestingAccount(t *testing.T, v *vm.VM, owner addr.Address, name string, mint addr.Address) *vesting.CreateVestingAccountReturn {
	ret := vm.ApplyOk(t, v, owner, builtin.VestingActorAddr, builtin.MethodsVesting.CreateVestingAccount, &vesting.CreateVestingAccountParams{
		Name:      name,
		TokenType: mint,
	})
	created, ok := ret.(*vesting.CreateVestingAccountReturn)
	require.True(t, ok)
	return created
}

func createSchedule(t *testing.T, v *vm.VM, owner addr.Address, params *vesting.CreateEmployeeAccountParams) addr.Address {
	ret := vm.ApplyOk(t, v, owner, builtin.VestingActorAddr, builtin.MethodsVesting.CreateEmployeeAccount, params)
	created, ok := ret.(*vesting.CreateEmployeeAccountReturn)
	require.True(t, ok)
	return created.Schedule
}

func claim(t *testing.T, v *vm.VM, beneficiary addr.Address, params *vesting.ClaimTokensParams) *vesting.ClaimTokensReturn {
	ret := vm.ApplyOk(t, v, beneficiary, builtin.VestingActorAddr, builtin.MethodsVesting.ClaimTokens, params)
	claimed, ok := ret.(*vesting.ClaimTokensReturn)
	require.True(t, ok)
	return claimed
}

func getSchedule(t *testing.T, v *vm.VM, a addr.Address) *vesting.Schedule {
	var st vesting.State
	require.NoError(t, v.GetState(builtin.VestingActorAddr, &st))
	s, found, err := st.GetSchedule(v.Store(), a)
	require.NoError(t, err)
	require.True(t, found)
	return s
}

func checkInvariants(t *testing.T, v *vm.VM) {
	msgs, err := v.CheckStateInvariants()
	require.NoError(t, err)
	assert.True(t, msgs.IsEmpty(), msgs.Messages())
}
