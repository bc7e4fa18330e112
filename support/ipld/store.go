package ipld

import (
	"context"
	"sync"

	block "github.com/ipfs/go-block-format"
	cid "github.com/ipfs/go-cid"
	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/xerrors"

	"github.com/tokenvest/vesting-actors/actors/util/adt"
)

var log = logging.Logger("ipld")

// ErrNotFound is returned by block stores when a requested block is absent.
var ErrNotFound = xerrors.New("block not found")

// A block store that can enumerate its contents, e.g. for export.
type IterableBlockstore interface {
	Get(cid.Cid) (block.Block, error)
	Put(block.Block) error
	ForEach(fn func(block.Block) error) error
}

// Creates a new, empty IPLD store in memory.
// This store is appropriate for most kinds of testing.
func NewADTStore(ctx context.Context) adt.Store {
	return adt.WrapBlockStore(ctx, NewBlockStoreInMemory())
}

// BlockStoreInMemory is a block store held in a map, safe for concurrent use.
type BlockStoreInMemory struct {
	mu   sync.RWMutex
	data map[cid.Cid]block.Block
}

var _ IterableBlockstore = (*BlockStoreInMemory)(nil)

func NewBlockStoreInMemory() *BlockStoreInMemory {
	return &BlockStoreInMemory{data: make(map[cid.Cid]block.Block)}
}

func (mb *BlockStoreInMemory) Get(c cid.Cid) (block.Block, error) {
	mb.mu.RLock()
	defer mb.mu.RUnlock()

	d, ok := mb.data[c]
	if ok {
		return d, nil
	}
	return nil, xerrors.Errorf("get %s: %w", c, ErrNotFound)
}

func (mb *BlockStoreInMemory) Put(b block.Block) error {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	mb.data[b.Cid()] = b
	return nil
}

// Iterates a snapshot of the stored blocks. The callback may write to the store.
func (mb *BlockStoreInMemory) ForEach(fn func(block.Block) error) error {
	mb.mu.RLock()
	blocks := make([]block.Block, 0, len(mb.data))
	for _, b := range mb.data {
		blocks = append(blocks, b)
	}
	mb.mu.RUnlock()

	for _, b := range blocks {
		if err := fn(b); err != nil {
			return err
		}
	}
	return nil
}

// Number of blocks stored.
func (mb *BlockStoreInMemory) Len() int {
	mb.mu.RLock()
	defer mb.mu.RUnlock()
	return len(mb.data)
}
