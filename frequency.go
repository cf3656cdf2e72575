package huffpack

import (
	"bytes"
	"fmt"
	"io"
)

// FrequencyTable counts the occurrences of each Symbol.  A count of zero means
// the Symbol is absent.
//
// The zero value is an empty table, ready to use.  FrequencyTable implements
// io.Writer, so a stream can be counted incrementally with io.Copy.
//
type FrequencyTable struct {
	counts [NumSymbols]uint64
}

// CountFrequencies returns the FrequencyTable for data.
func CountFrequencies(data []byte) FrequencyTable {
	var ft FrequencyTable
	ft.Add(data)
	return ft
}

// Add counts every byte of data.
func (ft *FrequencyTable) Add(data []byte) {
	for _, b := range data {
		ft.counts[b]++
	}
}

// Write counts every byte of data.  It never fails.
func (ft *FrequencyTable) Write(data []byte) (int, error) {
	ft.Add(data)
	return len(data), nil
}

// Count returns the number of occurrences of symbol.
func (ft FrequencyTable) Count(symbol Symbol) uint64 {
	return ft.counts[symbol]
}

// Len returns the number of distinct symbols with a non-zero count.
func (ft FrequencyTable) Len() int {
	var n int
	for _, count := range ft.counts {
		if count != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts, i.e. the length of the counted input.
func (ft FrequencyTable) Total() uint64 {
	var sum uint64
	for _, count := range ft.counts {
		sum += count
	}
	return sum
}

// Symbols returns the symbols with a non-zero count, in ascending order.
func (ft FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, ft.Len())
	for symbol, count := range ft.counts {
		if count != 0 {
			out = append(out, Symbol(symbol))
		}
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (ft FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", ft.Len())
	fmt.Fprintf(&buf, "\tTotal() = %d\n", ft.Total())
	for _, symbol := range ft.Symbols() {
		fmt.Fprintf(&buf, "\tCount(%d) = %d\n", symbol, ft.counts[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

var _ io.Writer = (*FrequencyTable)(nil)
