package huffpack

import (
	"io"
)

// Decoder holds the InverseCodeTable for one decoding session.
type Decoder struct {
	inv InverseCodeTable
}

// Init initializes this Decoder from the CodeTable that the data was packed
// with.  It fails with ErrInvalidCodeTable if the table is not prefix-free.
func (d *Decoder) Init(ct CodeTable) error {
	inv, err := ct.Invert()
	if err != nil {
		*d = Decoder{}
		return err
	}
	*d = Decoder{inv: inv}
	return nil
}

// Decode attempts to decode a complete Code into a Symbol.  The second result
// is false if hc is not one of the table's codes; for a prefix-free table
// that means either more bits are needed or hc is garbage.
func (d Decoder) Decode(hc Code) (Symbol, bool) {
	return d.inv.Lookup(hc)
}

// Unpack decodes length symbols from packed.  See Unpack.
func (d Decoder) Unpack(packed []byte, length int) ([]byte, error) {
	return Unpack(packed, d.inv, length)
}

// MinSize is the bit length of the shortest legal code.
func (d Decoder) MinSize() byte {
	return d.inv.MinSize()
}

// MaxSize is the bit length of the longest legal code.
func (d Decoder) MaxSize() byte {
	return d.inv.MaxSize()
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	return d.inv.Dump(w)
}
