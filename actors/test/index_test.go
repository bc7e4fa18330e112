package test

import (
	"context"
	"os"
	"testing"

	"github.com/filecoin-project/go-state-types/big"
	"github.com/go-pg/pg/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokenvest/vesting-actors/actors/builtin"
	"github.com/tokenvest/vesting-actors/actors/builtin/vesting"
	"github.com/tokenvest/vesting-actors/support/orm"
	"github.com/tokenvest/vesting-actors/support/vm"
)

// Needs a Postgres server at VESTING_PG_ADDR (host:port), reachable as the postgres user.
func TestIndexVestingState(t *testing.T) {
	pgAddr := os.Getenv("VESTING_PG_ADDR")
	if pgAddr == "" {
		t.Skip("VESTING_PG_ADDR not set")
	}

	ctx := context.Background()
	db, err := orm.Connect(ctx, orm.Options{
		Options: pg.Options{
			Addr:     pgAddr,
			User:     "postgres",
			Password: os.Getenv("VESTING_PG_PASSWORD"),
			Database: "postgres",
		},
		Models: vesting.Models(),
	})
	require.NoError(t, err)
	defer func() { require.NoError(t, db.Close()) }()

	v := vm.NewVMWithSingletons(ctx, t)
	v.SetTime(now)
	addrs := vm.CreateAccounts(t, v, 2, 93837778)
	owner, employee := addrs[0], addrs[1]

	c := setupCompany(t, v, owner, total)
	schedule := createSchedule(t, v, owner, scheduleParams(c, employee, now-365*day, now+365*day, now-90*day))
	destination := createTokenAccount(t, v, employee, c.mint)
	claimParams := &vesting.ClaimTokensParams{Name: "acme", Schedule: schedule, Destination: destination}
	claim(t, v, employee, claimParams)

	index := func() {
		var st vesting.State
		require.NoError(t, v.GetState(builtin.VestingActorAddr, &st))
		require.NoError(t, vesting.IndexState(ctx, db, v.StateRoot(), v.Store(), &st, v.GetTime()))
	}
	loadSchedule := func() *vesting.ScheduleModel {
		row := &vesting.ScheduleModel{Address: schedule.String()}
		require.NoError(t, db.ModelContext(ctx, row).WherePK().Select())
		return row
	}

	index()
	registry := &vesting.RegistryModel{Address: c.registry.Registry.String()}
	require.NoError(t, db.ModelContext(ctx, registry).WherePK().Select())
	assert.Equal(t, "acme", registry.Name)
	assert.Equal(t, c.registry.Custodian.String(), registry.Custodian)
	assert.Equal(t, v.StateRoot().String(), registry.ParentStateRoot)

	row := loadSchedule()
	assert.Equal(t, v.StateRoot().String(), row.ParentStateRoot)
	assert.Equal(t, "partially-vested", row.Status)
	assert.Equal(t, big.NewInt(500e9).String(), row.TotalWithdrawn)
	assert.Equal(t, now-90*day, row.CliffTime)

	// indexing a later root overwrites the same rows
	v.AdvanceTime(400 * day)
	claim(t, v, employee, claimParams)
	index()

	row = loadSchedule()
	assert.Equal(t, v.StateRoot().String(), row.ParentStateRoot)
	assert.Equal(t, "fully-vested", row.Status)
	assert.Equal(t, total.String(), row.TotalWithdrawn)
	assert.Equal(t, total.String(), row.Vested)

	n, err := db.ModelContext(ctx, (*vesting.ScheduleModel)(nil)).Where("address = ?", schedule.String()).Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
