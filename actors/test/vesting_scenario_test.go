package test

import (
	"context"
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/tokenvest/vesting-actors/actors/builtin"
	"github.com/tokenvest/vesting-actors/actors/builtin/token"
	"github.com/tokenvest/vesting-actors/actors/builtin/vesting"
	"github.com/tokenvest/vesting-actors/support/vm"
)

var total = big.NewInt(1000e9)

type company struct {
	owner    addr.Address
	mint     addr.Address
	registry *vesting.CreateVestingAccountReturn
}

// Sets up a funded company named "acme" whose owner is also the mint authority.
func setupCompany(t *testing.T, v *vm.VM, owner addr.Address, funding big.Int) *company {
	mint := createMint(t, v, owner, "acme-token")
	registry := createVestingAccount(t, v, owner, "acme", mint)
	if funding.GreaterThan(big.Zero()) {
		mintTo(t, v, owner, registry.Custodian, funding)
	}
	return &company{owner: owner, mint: mint, registry: registry}
}

func scheduleParams(c *company, beneficiary addr.Address, start, end, cliff int64) *vesting.CreateEmployeeAccountParams {
	return &vesting.CreateEmployeeAccountParams{
		Registry:    c.registry.Registry,
		Beneficiary: beneficiary,
		StartTime:   start,
		EndTime:     end,
		TotalAmount: total,
		CliffTime:   cliff,
	}
}

func TestVestingLifecycle(t *testing.T) {
	ctx := context.Background()
	v := vm.NewVMWithSingletons(ctx, t)
	v.SetTime(now)
	addrs := vm.CreateAccounts(t, v, 2, 93837778)
	owner, employee := addrs[0], addrs[1]

	c := setupCompany(t, v, owner, total)
	assert.Equal(t, total, balanceOf(t, v, c.registry.Custodian))

	schedule := createSchedule(t, v, owner, scheduleParams(c, employee, now-365*day, now+365*day, now-90*day))
	destination := createTokenAccount(t, v, employee, c.mint)

	claimParams := &vesting.ClaimTokensParams{Name: "acme", Schedule: schedule, Destination: destination}
	ret := claim(t, v, employee, claimParams)
	assert.Equal(t, big.NewInt(500e9), ret.Claimed)
	assert.Equal(t, big.NewInt(500e9), ret.TotalWithdrawn)

	_, custodianBump, err := vesting.CustodianAddress("acme")
	require.NoError(t, err)
	vm.ExpectInvocation{
		To:     builtin.VestingActorAddr,
		Method: builtin.MethodsVesting.ClaimTokens,
		From:   vm.ExpectAddress(employee),
		SubInvocations: []vm.ExpectInvocation{{
			To:     builtin.TokenActorAddr,
			Method: builtin.MethodsToken.GetAccount,
			Params: vm.ExpectObject(&destination),
		}, {
			To:     builtin.TokenActorAddr,
			Method: builtin.MethodsToken.Transfer,
			From:   vm.ExpectAddress(builtin.VestingActorAddr),
			Params: vm.ExpectObject(&token.TransferParams{
				From:      c.registry.Custodian,
				To:        destination,
				Amount:    big.NewInt(500e9),
				Authority: token.ProgramSignature{Seeds: vesting.CustodianSeeds("acme"), Bump: custodianBump},
			}),
		}},
	}.Matches(t, v.LastInvocation())

	assert.Equal(t, big.NewInt(500e9), balanceOf(t, v, destination))
	assert.Equal(t, big.NewInt(500e9), balanceOf(t, v, c.registry.Custodian))
	assert.Equal(t, big.NewInt(500e9), getSchedule(t, v, schedule).TotalWithdrawn)

	// an immediate second claim moves nothing
	vm.ApplyCode(t, v, employee, builtin.VestingActorAddr, builtin.MethodsVesting.ClaimTokens, claimParams, vesting.ErrNothingToClaim)
	assert.Equal(t, big.NewInt(500e9), balanceOf(t, v, destination))
	assert.Equal(t, big.NewInt(500e9), getSchedule(t, v, schedule).TotalWithdrawn)

	// after the end, the remainder vests
	v.AdvanceTime(400 * day)
	ret = claim(t, v, employee, claimParams)
	assert.Equal(t, big.NewInt(500e9), ret.Claimed)
	assert.Equal(t, total, ret.TotalWithdrawn)
	assert.Equal(t, total, balanceOf(t, v, destination))
	assert.Equal(t, big.Zero(), balanceOf(t, v, c.registry.Custodian))

	checkInvariants(t, v)
	assert.NotEmpty(t, v.Logs())

	var st vesting.State
	require.NoError(t, v.GetState(builtin.VestingActorAddr, &st))
	registries, schedules, err := st.Models(v.Store(), v.GetTime())
	require.NoError(t, err)
	require.Len(t, registries, 1)
	require.Len(t, schedules, 1)
	assert.Equal(t, "acme", registries[0].Name)
	assert.Equal(t, "fully-vested", schedules[0].Status)
	assert.Equal(t, total.String(), schedules[0].TotalWithdrawn)
}

func TestClaimBeforeCliff(t *testing.T) {
	ctx := context.Background()
	v := vm.NewVMWithSingletons(ctx, t)
	v.SetTime(now)
	addrs := vm.CreateAccounts(t, v, 2, 93837778)
	owner, employee := addrs[0], addrs[1]

	c := setupCompany(t, v, owner, total)
	schedule := createSchedule(t, v, owner, scheduleParams(c, employee, now, now+365*day, now+90*day))
	destination := createTokenAccount(t, v, employee, c.mint)
	claimParams := &vesting.ClaimTokensParams{Name: "acme", Schedule: schedule, Destination: destination}

	vm.ApplyCode(t, v, employee, builtin.VestingActorAddr, builtin.MethodsVesting.ClaimTokens, claimParams, vesting.ErrClaimNotAvailableYet)
	assert.Equal(t, big.Zero(), getSchedule(t, v, schedule).TotalWithdrawn)
	assert.Equal(t, big.Zero(), balanceOf(t, v, destination))

	v.AdvanceTime(90 * day)
	ret := claim(t, v, employee, claimParams)
	expected := big.Div(big.Mul(big.NewInt(90*day), total), big.NewInt(365*day))
	assert.Equal(t, expected, ret.Claimed)
	assert.Equal(t, expected, balanceOf(t, v, destination))
	checkInvariants(t, v)
}

func TestRegistryAndScheduleValidation(t *testing.T) {
	ctx := context.Background()
	v := vm.NewVMWithSingletons(ctx, t)
	v.SetTime(now)
	addrs := vm.CreateAccounts(t, v, 3, 93837778)
	owner, employee, rival := addrs[0], addrs[1], addrs[2]

	c := setupCompany(t, v, owner, total)

	t.Run("duplicate company name", func(t *testing.T) {
		otherMint := createMint(t, v, rival, "rival-token")
		vm.ApplyCode(t, v, rival, builtin.VestingActorAddr, builtin.MethodsVesting.CreateVestingAccount,
			&vesting.CreateVestingAccountParams{Name: "acme", TokenType: otherMint}, vesting.ErrDuplicateCompany)

		var st vesting.State
		require.NoError(t, v.GetState(builtin.VestingActorAddr, &st))
		registry, found, err := st.GetRegistry(v.Store(), c.registry.Registry)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, owner, registry.Owner)
		assert.Equal(t, c.mint, registry.TokenType)
	})

	t.Run("empty vesting window", func(t *testing.T) {
		vm.ApplyCode(t, v, owner, builtin.VestingActorAddr, builtin.MethodsVesting.CreateEmployeeAccount,
			scheduleParams(c, employee, now, now, now), vesting.ErrInvalidVestingPeriod)

		var st vesting.State
		require.NoError(t, v.GetState(builtin.VestingActorAddr, &st))
		scheduleAddr, _, err := vesting.ScheduleAddress(employee, c.registry.Registry)
		require.NoError(t, err)
		_, found, err := st.GetSchedule(v.Store(), scheduleAddr)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("only the owner adds schedules", func(t *testing.T) {
		vm.ApplyCode(t, v, rival, builtin.VestingActorAddr, builtin.MethodsVesting.CreateEmployeeAccount,
			scheduleParams(c, rival, now, now+day, now), vesting.ErrUnauthorized)
	})

	checkInvariants(t, v)
}

func TestCustodianIsProgramControlled(t *testing.T) {
	ctx := context.Background()
	v := vm.NewVMWithSingletons(ctx, t)
	v.SetTime(now)
	addrs := vm.CreateAccounts(t, v, 2, 93837778)
	owner, employee := addrs[0], addrs[1]

	c := setupCompany(t, v, owner, total)
	destination := createTokenAccount(t, v, employee, c.mint)
	_, custodianBump, err := vesting.CustodianAddress("acme")
	require.NoError(t, err)

	// neither the owner nor anyone else can move custodian funds directly, even with the right seeds
	for _, caller := range []addr.Address{owner, employee} {
		vm.ApplyCode(t, v, caller, builtin.TokenActorAddr, builtin.MethodsToken.Transfer, &token.TransferParams{
			From:      c.registry.Custodian,
			To:        destination,
			Amount:    big.NewInt(1),
			Authority: token.ProgramSignature{Seeds: vesting.CustodianSeeds("acme"), Bump: custodianBump},
		}, exitcode.ErrForbidden)
	}
	assert.Equal(t, total, balanceOf(t, v, c.registry.Custodian))
}

func TestUnderfundedCustodianClaimIsAtomic(t *testing.T) {
	ctx := context.Background()
	v := vm.NewVMWithSingletons(ctx, t)
	v.SetTime(now)
	addrs := vm.CreateAccounts(t, v, 2, 93837778)
	owner, employee := addrs[0], addrs[1]

	c := setupCompany(t, v, owner, big.NewInt(100e9))
	schedule := createSchedule(t, v, owner, scheduleParams(c, employee, now-365*day, now+365*day, now-90*day))
	destination := createTokenAccount(t, v, employee, c.mint)
	claimParams := &vesting.ClaimTokensParams{Name: "acme", Schedule: schedule, Destination: destination}

	vm.ApplyCode(t, v, employee, builtin.VestingActorAddr, builtin.MethodsVesting.ClaimTokens, claimParams, exitcode.ErrInsufficientFunds)
	assert.Equal(t, big.Zero(), getSchedule(t, v, schedule).TotalWithdrawn)
	assert.Equal(t, big.Zero(), balanceOf(t, v, destination))
	assert.Equal(t, big.NewInt(100e9), balanceOf(t, v, c.registry.Custodian))

	msgs, err := v.CheckStateInvariants()
	require.NoError(t, err)
	require.Len(t, msgs.Messages(), 1)
	assert.Contains(t, msgs.Messages()[0], "is below the 1000000000000 outstanding")

	// once topped up, the same claim goes through
	mintTo(t, v, owner, c.registry.Custodian, big.NewInt(900e9))
	ret := claim(t, v, employee, claimParams)
	assert.Equal(t, big.NewInt(500e9), ret.TotalWithdrawn)
	checkInvariants(t, v)
}

func TestConcurrentClaims(t *testing.T) {
	ctx := context.Background()
	v := vm.NewVMWithSingletons(ctx, t)
	v.SetTime(now)
	const employees = 8
	addrs := vm.CreateAccounts(t, v, employees+1, 93837778)
	owner := addrs[0]

	c := setupCompany(t, v, owner, big.Mul(total, big.NewInt(employees)))
	claims := make([]*vesting.ClaimTokensParams, employees)
	for i := range claims {
		employee := addrs[i+1]
		schedule := createSchedule(t, v, owner, scheduleParams(c, employee, now-365*day, now+365*day, now-90*day))
		destination := createTokenAccount(t, v, employee, c.mint)
		claims[i] = &vesting.ClaimTokensParams{Name: "acme", Schedule: schedule, Destination: destination}
	}

	// every employee submits the same claim twice at once
	codes := make([]exitcode.ExitCode, 2*employees)
	var g errgroup.Group
	for i := range codes {
		i := i
		g.Go(func() error {
			employee := addrs[i%employees+1]
			result, err := v.ApplyMessage(employee, builtin.VestingActorAddr, builtin.MethodsVesting.ClaimTokens, claims[i%employees])
			codes[i] = result.Code
			return err
		})
	}
	require.NoError(t, g.Wait())

	for i := 0; i < employees; i++ {
		pair := []exitcode.ExitCode{codes[i], codes[i+employees]}
		assert.ElementsMatch(t, []exitcode.ExitCode{exitcode.Ok, vesting.ErrNothingToClaim}, pair, "employee %d", i)

		assert.Equal(t, big.NewInt(500e9), getSchedule(t, v, claims[i].Schedule).TotalWithdrawn)
		assert.Equal(t, big.NewInt(500e9), balanceOf(t, v, claims[i].Destination))
	}
	assert.Equal(t, big.Mul(big.NewInt(500e9), big.NewInt(employees)), balanceOf(t, v, c.registry.Custodian))
	checkInvariants(t, v)
}
