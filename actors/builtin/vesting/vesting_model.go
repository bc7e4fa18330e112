package vesting

import (
	"context"

	addr "github.com/filecoin-project/go-address"
	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
	cid "github.com/ipfs/go-cid"
	"golang.org/x/xerrors"

	"github.com/tokenvest/vesting-actors/actors/util/adt"
	orm2 "github.com/tokenvest/vesting-actors/support/orm"
)

type RegistryModel struct {
	tableName struct{} `pg:"vesting_registries"` // nolint: unused,structcheck

	Address         string `pg:",pk"`
	ParentStateRoot string

	Name          string
	Owner         string
	TokenType     string
	Custodian     string
	CustodianBump uint8 `pg:",use_zero"`
	Bump          uint8 `pg:",use_zero"`
}

func NewRegistryModel(a addr.Address, r *Registry) *RegistryModel {
	return &RegistryModel{
		Address:       a.String(),
		Name:          r.Name,
		Owner:         r.Owner.String(),
		TokenType:     r.TokenType.String(),
		Custodian:     r.Custodian.String(),
		CustodianBump: r.CustodianBump,
		Bump:          r.Bump,
	}
}

func (m *RegistryModel) BeforeInsert(ctx context.Context) (context.Context, error) {
	psr := orm2.CIDFromContext(ctx)
	if !psr.Defined() {
		return ctx, xerrors.Errorf("no state root for registry %s", m.Address)
	}
	m.ParentStateRoot = psr.String()
	return ctx, nil
}

type ScheduleModel struct {
	tableName struct{} `pg:"vesting_schedules"` // nolint: unused,structcheck

	Address         string `pg:",pk"`
	ParentStateRoot string

	Registry       string
	Beneficiary    string
	StartTime      int64 `pg:",use_zero"`
	EndTime        int64 `pg:",use_zero"`
	CliffTime      int64 `pg:",use_zero"`
	TotalAmount    string
	TotalWithdrawn string
	Vested         string
	Status         string
	Bump           uint8 `pg:",use_zero"`
}

// NewScheduleModel flattens a schedule, with its vested amount and status as of now.
func NewScheduleModel(a addr.Address, s *Schedule, now int64) *ScheduleModel {
	return &ScheduleModel{
		Address:        a.String(),
		Registry:       s.Registry.String(),
		Beneficiary:    s.Beneficiary.String(),
		StartTime:      s.StartTime,
		EndTime:        s.EndTime,
		CliffTime:      s.CliffTime,
		TotalAmount:    s.TotalAmount.String(),
		TotalWithdrawn: s.TotalWithdrawn.String(),
		Vested:         s.VestedAmount(now).String(),
		Status:         s.Status(now).String(),
		Bump:           s.Bump,
	}
}

func (m *ScheduleModel) BeforeInsert(ctx context.Context) (context.Context, error) {
	psr := orm2.CIDFromContext(ctx)
	if !psr.Defined() {
		return ctx, xerrors.Errorf("no state root for schedule %s", m.Address)
	}
	m.ParentStateRoot = psr.String()
	return ctx, nil
}

// Models lists the index tables for vesting state.
func Models() []interface{} {
	return []interface{}{
		(*RegistryModel)(nil),
		(*ScheduleModel)(nil),
	}
}

// Flattens every registry and schedule for indexing.
func (st *State) Models(store adt.Store, now int64) ([]*RegistryModel, []*ScheduleModel, error) {
	var registries []*RegistryModel
	if err := st.ForEachRegistry(store, func(a addr.Address, r *Registry) error {
		registries = append(registries, NewRegistryModel(a, r))
		return nil
	}); err != nil {
		return nil, nil, xerrors.Errorf("failed to iterate registries: %w", err)
	}

	var schedules []*ScheduleModel
	if err := st.ForEachSchedule(store, func(a addr.Address, s *Schedule) error {
		schedules = append(schedules, NewScheduleModel(a, s, now))
		return nil
	}); err != nil {
		return nil, nil, xerrors.Errorf("failed to iterate schedules: %w", err)
	}
	return registries, schedules, nil
}

// Upserts registry rows by address. Only the state root changes once a registry exists.
func UpsertRegistries(q *orm.Query) *orm.Query {
	return q.OnConflict("(address) DO UPDATE").
		Set("parent_state_root = EXCLUDED.parent_state_root")
}

// Upserts schedule rows by address, refreshing the columns that move as units are claimed and time passes.
func UpsertSchedules(q *orm.Query) *orm.Query {
	return q.OnConflict("(address) DO UPDATE").
		Set("parent_state_root = EXCLUDED.parent_state_root").
		Set("total_withdrawn = EXCLUDED.total_withdrawn").
		Set("vested = EXCLUDED.vested").
		Set("status = EXCLUDED.status")
}

// IndexState upserts every registry and schedule into the query index, tagged with the state root.
// Rows are keyed by address, so indexing a later root overwrites the mutable columns.
func IndexState(ctx context.Context, db *pg.DB, root cid.Cid, store adt.Store, st *State, now int64) error {
	registries, schedules, err := st.Models(store, now)
	if err != nil {
		return err
	}

	ctx = orm2.NewCIDContext(ctx, root)
	return db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		if len(registries) > 0 {
			if _, err := UpsertRegistries(tx.ModelContext(ctx, &registries)).Insert(); err != nil {
				return xerrors.Errorf("failed to index registries at %s: %w", root, err)
			}
		}
		if len(schedules) > 0 {
			if _, err := UpsertSchedules(tx.ModelContext(ctx, &schedules)).Insert(); err != nil {
				return xerrors.Errorf("failed to index schedules at %s: %w", root, err)
			}
		}
		return nil
	})
}
