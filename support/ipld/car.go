package ipld

import (
	"io"

	block "github.com/ipfs/go-block-format"
	cid "github.com/ipfs/go-cid"
	ipldcbor "github.com/ipfs/go-ipld-cbor"
	car "github.com/ipld/go-car"
	carutil "github.com/ipld/go-car/util"
	"golang.org/x/xerrors"
)

// Writes every block in bs to w as a CARv1 archive with the given roots.
func WriteCar(w io.Writer, roots []cid.Cid, bs IterableBlockstore) error {
	h := &car.CarHeader{
		Roots:   roots,
		Version: 1,
	}
	if err := car.WriteHeader(h, w); err != nil {
		return xerrors.Errorf("failed to write car header: %w", err)
	}

	count := 0
	err := bs.ForEach(func(b block.Block) error {
		count++
		return carutil.LdWrite(w, b.Cid().Bytes(), b.RawData())
	})
	if err != nil {
		return xerrors.Errorf("failed to write car block: %w", err)
	}
	log.Debugw("wrote car", "roots", roots, "blocks", count)
	return nil
}

// Loads every block of a CARv1 archive into bs, returning the archive's roots.
func ReadCar(r io.Reader, bs ipldcbor.IpldBlockstore) ([]cid.Cid, error) {
	cr, err := car.NewCarReader(r)
	if err != nil {
		return nil, xerrors.Errorf("failed to read car header: %w", err)
	}

	for {
		b, err := cr.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, xerrors.Errorf("failed to read car block: %w", err)
		}
		if err := bs.Put(b); err != nil {
			return nil, err
		}
	}
	return cr.Header.Roots, nil
}
