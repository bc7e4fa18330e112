package runtime

import (
	"io"

	"github.com/filecoin-project/go-state-types/cbor"
)

// Wraps already-serialized bytes as CBOR-marshalable.
type CBORBytes []byte

var _ cbor.Marshaler = CBORBytes(nil)

func (b CBORBytes) MarshalCBOR(w io.Writer) error {
	_, err := w.Write(b)
	return err
}
