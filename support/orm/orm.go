package orm

import (
	"context"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
	cid "github.com/ipfs/go-cid"
	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/xerrors"
)

var log = logging.Logger("orm")

// Options configures the connection to the query index.
type Options struct {
	pg.Options
	// Tables to create, if missing, once connected.
	Models []interface{}
}

// Connect opens the query index and creates the tables for opts.Models.
func Connect(ctx context.Context, opts Options) (*pg.DB, error) {
	db := pg.Connect(&opts.Options)
	if err := db.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, xerrors.Errorf("failed to reach index database %s: %w", opts.Addr, err)
	}
	if err := CreateSchema(db, opts.Models...); err != nil {
		_ = db.Close()
		return nil, err
	}
	log.Infow("connected to index", "addr", opts.Addr, "database", opts.Database, "tables", len(opts.Models))
	return db, nil
}

func CreateSchema(db *pg.DB, models ...interface{}) error {
	for _, model := range models {
		if err := db.Model(model).CreateTable(&orm.CreateTableOptions{
			IfNotExists: true,
		}); err != nil {
			return xerrors.Errorf("failed to create table for %T: %w", model, err)
		}
	}
	return nil
}

type cidKey struct{}

// CIDFromContext returns the state root an index write is tagged with, or cid.Undef.
func CIDFromContext(ctx context.Context) cid.Cid {
	c, ok := ctx.Value(cidKey{}).(cid.Cid)
	if !ok {
		return cid.Undef
	}
	return c
}

func NewCIDContext(parent context.Context, c cid.Cid) context.Context {
	return context.WithValue(parent, cidKey{}, c)
}
