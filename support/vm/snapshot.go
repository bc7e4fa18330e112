package vm

import (
	"context"
	"io"

	addr "github.com/filecoin-project/go-address"
	cid "github.com/ipfs/go-cid"
	"github.com/pkg/errors"

	"github.com/tokenvest/vesting-actors/support/ipld"
)

// ExportSnapshot writes the VM's blocks as a CAR archive rooted at the current actor tree.
func (vm *VM) ExportSnapshot(w io.Writer) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	root, err := vm.checkpoint()
	if err != nil {
		return err
	}
	if err := ipld.WriteCar(w, []cid.Cid{root}, vm.blocks); err != nil {
		return errors.Wrapf(err, "failed to export snapshot at %s", root)
	}
	log.Infow("exported snapshot", "root", root)
	return nil
}

// NewVMFromSnapshot loads a CAR archive written by ExportSnapshot into a fresh in-memory VM.
// The clock starts at zero.
func NewVMFromSnapshot(ctx context.Context, actorImpls ActorImplLookup, r io.Reader) (*VM, error) {
	bs := ipld.NewBlockStoreInMemory()
	roots, err := ipld.ReadCar(r, bs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to import snapshot")
	}
	if len(roots) != 1 {
		return nil, errors.Errorf("snapshot has %d roots, expected 1", len(roots))
	}
	vm, err := newVMAtRoot(ctx, actorImpls, bs, roots[0])
	if err != nil {
		return nil, err
	}

	// allocate new accounts past every existing ID
	err = vm.actors.ForEach(nil, func(k string) error {
		a, err := addr.NewFromBytes([]byte(k))
		if err != nil {
			return err
		}
		if a.Protocol() != addr.ID {
			return nil
		}
		id, err := addr.IDFromAddress(a)
		if err != nil {
			return err
		}
		if id >= vm.nextID {
			vm.nextID = id + 1
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan imported actors")
	}
	log.Infow("imported snapshot", "root", roots[0], "blocks", bs.Len())
	return vm, nil
}
