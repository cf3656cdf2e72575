package huffpack

import (
	"fmt"
	"strconv"
	"strings"
)

// maxBitsPerCode is the longest Code that fits in Code.Bits.  A Huffman tree
// deep enough to exceed it would need an input of roughly Fib(66) bytes.
const maxBitsPerCode = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The least significant bit
	// of Bits is the first bit.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: lowOrderBits(bits, uint(size))}
}

// ParseCode constructs a Code from a string of '0' and '1' characters, first
// bit first.
func ParseCode(str string) (Code, error) {
	if len(str) > maxBitsPerCode {
		return Code{}, fmt.Errorf("code %q is longer than %d bits", str, maxBitsPerCode)
	}
	var hc Code
	for _, ch := range []byte(str) {
		switch ch {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, fmt.Errorf("invalid character %q in code %q", ch, str)
		}
	}
	return hc, nil
}

// Append returns a copy of this Code with one more bit at the end.
func (hc Code) Append(bit uint64) Code {
	hc.Bits |= (bit & 1) << hc.Size
	hc.Size++
	return hc
}

// Bit returns the i'th bit of this Code, counting from the first bit.
func (hc Code) Bit(i byte) uint64 {
	return (hc.Bits >> i) & 1
}

// hasPrefix reports whether prefix is a leading run of this Code's bits.
func (hc Code) hasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return lowOrderBits(hc.Bits, uint(prefix.Size)) == prefix.Bits
}

// Prefix returns the first size bits of this Code.
func (hc Code) Prefix(size byte) Code {
	if size >= hc.Size {
		return hc
	}
	return MakeCode(size, hc.Bits)
}

// String returns the string representation of this Code, first bit first.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	var sb strings.Builder
	sb.Grow(int(hc.Size))
	for i := byte(0); i < hc.Size; i++ {
		sb.WriteByte('0' + byte(hc.Bit(i)))
	}
	return strconv.Quote(sb.String())
}

var _ fmt.Stringer = Code{}
