package orm_test

import (
	"context"
	"testing"

	cid "github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokenvest/vesting-actors/support/orm"
)

func TestCIDContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, cid.Undef, orm.CIDFromContext(ctx))

	root, err := cid.V1Builder{Codec: cid.DagCBOR, MhType: mh.SHA2_256}.Sum([]byte("root"))
	require.NoError(t, err)
	assert.Equal(t, root, orm.CIDFromContext(orm.NewCIDContext(ctx, root)))
}
