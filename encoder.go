package huffpack

import (
	"io"
)

// Encoder holds the CodeTable for one encoding session.
type Encoder struct {
	table CodeTable
}

// Init initializes this Encoder with the Huffman code for the given
// frequencies.  An empty FrequencyTable yields an empty CodeTable, which can
// only pack empty input.
func (e *Encoder) Init(ft FrequencyTable) {
	*e = Encoder{}
	if ft.Len() == 0 {
		return
	}
	e.table = AssignCodes(BuildTree(ft))
}

// Table returns the CodeTable.  The decoding side needs it to invert the code.
func (e Encoder) Table() CodeTable {
	return e.table
}

// Encode returns the Code for symbol.  The second result is false if symbol
// did not occur in the frequencies given to Init.
func (e Encoder) Encode(symbol Symbol) (Code, bool) {
	return e.table.Encode(symbol)
}

// Pack packs data with this Encoder's CodeTable.  See Pack.
func (e Encoder) Pack(data []byte) ([]byte, error) {
	return Pack(data, e.table)
}

// MinSize is the bit length of the shortest legal code.
func (e Encoder) MinSize() byte {
	return e.table.MinSize()
}

// MaxSize is the bit length of the longest legal code.
func (e Encoder) MaxSize() byte {
	return e.table.MaxSize()
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	return e.table.Dump(w)
}
