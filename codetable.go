package huffpack

import (
	"bytes"
	"fmt"
	"io"
	mathbits "math/bits"
	"sort"
)

// Entry pairs a Symbol with its Code.
type Entry struct {
	Symbol Symbol
	Code   Code
}

// CodeTable maps each Symbol that occurs in the input to its Code.  It is
// immutable once built, and is needed by both the encoding and the decoding
// side of a session.
type CodeTable struct {
	codes   [NumSymbols]Code
	count   int
	minSize byte
	maxSize byte
}

// AssignCodes walks the tree depth-first and gives each leaf the path to it as
// its Code, 0 for left and 1 for right.
//
// A tree with a single leaf has no paths, so its lone Symbol is given the
// one-bit code "0" instead of an empty one.
//
func AssignCodes(t Tree) CodeTable {
	var ct CodeTable
	t.walk(func(symbol Symbol, path Code) {
		if path.Size == 0 {
			path = MakeCode(1, 0)
		}
		ct.set(symbol, path)
	})
	return ct
}

// MakeCodeTable constructs a CodeTable from explicit entries, such as ones
// read back from storage.  The entries are validated by inverting them; see
// CodeTable.Invert.
func MakeCodeTable(entries []Entry) (CodeTable, error) {
	var ct CodeTable
	var seen [NumSymbols]bool
	for _, entry := range entries {
		if seen[entry.Symbol] {
			return CodeTable{}, fmt.Errorf("%w: symbol %d listed more than once", ErrInvalidCodeTable, entry.Symbol)
		}
		if entry.Code.Size == 0 || entry.Code.Size > maxBitsPerCode {
			return CodeTable{}, fmt.Errorf("%w: symbol %d has a code of %d bits", ErrInvalidCodeTable, entry.Symbol, entry.Code.Size)
		}
		seen[entry.Symbol] = true
		ct.set(entry.Symbol, MakeCode(entry.Code.Size, entry.Code.Bits))
	}
	if _, err := ct.Invert(); err != nil {
		return CodeTable{}, err
	}
	return ct, nil
}

func (ct *CodeTable) set(symbol Symbol, hc Code) {
	if ct.count == 0 {
		ct.minSize = hc.Size
		ct.maxSize = hc.Size
	} else if ct.minSize > hc.Size {
		ct.minSize = hc.Size
	} else if ct.maxSize < hc.Size {
		ct.maxSize = hc.Size
	}
	ct.codes[symbol] = hc
	ct.count++
}

// Encode returns the Code for symbol.  The second result is false if symbol
// has no Code in this table.
func (ct CodeTable) Encode(symbol Symbol) (Code, bool) {
	hc := ct.codes[symbol]
	return hc, hc.Size != 0
}

// Len returns the number of symbols with a Code.
func (ct CodeTable) Len() int {
	return ct.count
}

// MinSize is the bit length of the shortest legal code.
func (ct CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest legal code.
func (ct CodeTable) MaxSize() byte {
	return ct.maxSize
}

// Entries returns every (Symbol, Code) pair in ascending Symbol order.
func (ct CodeTable) Entries() []Entry {
	out := make([]Entry, 0, ct.count)
	for symbol, hc := range ct.codes {
		if hc.Size != 0 {
			out = append(out, Entry{Symbol(symbol), hc})
		}
	}
	return out
}

// EncodedBits returns the number of bits needed to encode an input with the
// given frequencies, i.e. the sum of frequency × code length.  The second
// result is false if some counted Symbol has no Code.
func (ct CodeTable) EncodedBits(ft FrequencyTable) (uint64, bool) {
	var sum uint64
	for _, symbol := range ft.Symbols() {
		hc, ok := ct.Encode(symbol)
		if !ok {
			return 0, false
		}
		sum += ft.Count(symbol) * uint64(hc.Size)
	}
	return sum, true
}

// Invert builds the InverseCodeTable used for decoding.  It fails with
// ErrInvalidCodeTable if two symbols share a Code or if one Code is a prefix
// of another, as either makes greedy decoding ambiguous.
func (ct CodeTable) Invert() (InverseCodeTable, error) {
	inv := InverseCodeTable{
		table:   make(map[Code]Symbol, ct.count),
		minSize: ct.minSize,
		maxSize: ct.maxSize,
	}
	for symbol, hc := range ct.codes {
		if hc.Size == 0 {
			continue
		}
		if other, found := inv.table[hc]; found {
			return InverseCodeTable{}, fmt.Errorf("%w: symbols %d and %d share code %s", ErrInvalidCodeTable, other, symbol, hc)
		}
		inv.table[hc] = Symbol(symbol)
	}
	for hc, symbol := range inv.table {
		for size := inv.minSize; size < hc.Size; size++ {
			if other, found := inv.table[hc.Prefix(size)]; found {
				return InverseCodeTable{}, fmt.Errorf("%w: code %s for symbol %d is a prefix of code %s for symbol %d", ErrInvalidCodeTable, hc.Prefix(size), other, hc, symbol)
			}
		}
	}
	return inv, nil
}

// Dump writes a programmer-readable debugging dump of the CodeTable's current
// state to the given writer.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for _, entry := range ct.Entries() {
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", entry.Symbol, entry.Code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// InverseCodeTable maps each Code of a CodeTable back to its Symbol.
type InverseCodeTable struct {
	table   map[Code]Symbol
	minSize byte
	maxSize byte
}

// Lookup returns the Symbol whose Code is exactly hc.  The second result is
// false if hc is not a complete Code.
func (inv InverseCodeTable) Lookup(hc Code) (Symbol, bool) {
	symbol, found := inv.table[hc]
	return symbol, found
}

// Len returns the number of codes in the table.
func (inv InverseCodeTable) Len() int {
	return len(inv.table)
}

// MinSize is the bit length of the shortest legal code.
func (inv InverseCodeTable) MinSize() byte {
	return inv.minSize
}

// MaxSize is the bit length of the longest legal code.
func (inv InverseCodeTable) MaxSize() byte {
	return inv.maxSize
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer, ordered by code.
func (inv InverseCodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("InverseCodeTable{\n")
	keys := make(byCode, 0, len(inv.table))
	for hc := range inv.table {
		keys = append(keys, hc)
	}
	keys.Sort()
	for _, hc := range keys {
		fmt.Fprintf(&buf, "\tLookup(%s) = %d\n", hc, inv.table[hc])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.Size != b.Size {
		return a.Size < b.Size
	}
	// Equal sizes, so reversing puts the first bit highest in both.
	return mathbits.Reverse64(a.Bits) < mathbits.Reverse64(b.Bits)
}

var _ sort.Interface = byCode(nil)

// }}}
