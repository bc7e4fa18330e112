package ipld_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/filecoin-project/go-state-types/abi"
	cid "github.com/ipfs/go-cid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cbg "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"

	"github.com/tokenvest/vesting-actors/actors/util/adt"
	"github.com/tokenvest/vesting-actors/support/ipld"
	tutil "github.com/tokenvest/vesting-actors/support/testing"
)

func TestSQLiteBlockStore(t *testing.T) {
	ctx := context.Background()
	bs, err := ipld.OpenSQLiteBlockStore(filepath.Join(t.TempDir(), "blocks.db"))
	require.NoError(t, err)
	defer func() { require.NoError(t, bs.Close()) }()

	store := adt.WrapBlockStore(ctx, bs)
	v := cbg.CborInt(42)
	c, err := store.Put(ctx, &v)
	require.NoError(t, err)

	// idempotent
	_, err = store.Put(ctx, &v)
	require.NoError(t, err)

	var out cbg.CborInt
	require.NoError(t, store.Get(ctx, c, &out))
	assert.Equal(t, v, out)

	other := cbg.CborInt(43)
	otherCid, err := adt.WrapBlockStore(ctx, ipld.NewBlockStoreInMemory()).Put(ctx, &other)
	require.NoError(t, err)
	_, err = bs.Get(otherCid)
	assert.True(t, xerrors.Is(err, ipld.ErrNotFound))
}

func TestCarRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := ipld.NewBlockStoreInMemory()
	store := adt.WrapBlockStore(ctx, src)

	m, err := adt.MakeEmptyMap(store, adt.DefaultHamtBitwidth)
	require.NoError(t, err)
	for i := uint64(100); i < 110; i++ {
		v := cbg.CborInt(i)
		require.NoError(t, m.Put(abi.AddrKey(tutil.NewIDAddr(t, i)), &v))
	}
	root, err := m.Root()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ipld.WriteCar(&buf, []cid.Cid{root}, src))

	dst := ipld.NewBlockStoreInMemory()
	roots, err := ipld.ReadCar(&buf, dst)
	require.NoError(t, err)
	require.Equal(t, []cid.Cid{root}, roots)
	assert.Equal(t, src.Len(), dst.Len())

	loaded, err := adt.AsMap(adt.WrapBlockStore(ctx, dst), roots[0], adt.DefaultHamtBitwidth)
	require.NoError(t, err)
	var out cbg.CborInt
	found, err := loaded.Get(abi.AddrKey(tutil.NewIDAddr(t, 105)), &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, cbg.CborInt(105), out)
}
