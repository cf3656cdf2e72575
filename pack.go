package huffpack

import (
	"fmt"
)

// Pack concatenates the Code of every byte of data, in order, and groups the
// resulting bits into bytes.  The first bit of each group of 8 lands in the
// least significant bit of its byte.  If the bit count is not a multiple of 8,
// the unused high-order bits of the last byte are zero.
//
// Pack fails with ErrMissingCode, and returns no output, if data holds a byte
// with no Code in ct.
//
func Pack(data []byte, ct CodeTable) ([]byte, error) {
	var p bitPacker
	p.grow(len(data) * int(ct.MaxSize()) / 8)
	for index, b := range data {
		hc, ok := ct.Encode(Symbol(b))
		if !ok {
			return nil, fmt.Errorf("%w: byte %d at offset %d", ErrMissingCode, b, index)
		}
		p.writeCode(hc)
	}
	return p.finish(), nil
}

// bitPacker accumulates bits least significant first and moves full bytes to
// out as soon as they are complete.
type bitPacker struct {
	out []byte
	// bits is a buffer of unwritten bits; only the low nbits are valid.
	bits  uint64
	nbits uint // always < 8 between calls
}

func (p *bitPacker) grow(n int) {
	if n > cap(p.out)-len(p.out) {
		out := make([]byte, len(p.out), len(p.out)+n+1)
		copy(out, p.out)
		p.out = out
	}
}

func (p *bitPacker) writeCode(hc Code) {
	size := uint(hc.Size)
	bits := hc.Bits
	for size > 32 {
		p.writeBits(uint32(bits), 32)
		bits >>= 32
		size -= 32
	}
	p.writeBits(uint32(bits), size)
}

// writeBits appends the low n bits of b, n <= 32.
func (p *bitPacker) writeBits(b uint32, n uint) {
	p.bits |= uint64(b) << p.nbits
	p.nbits += n
	for p.nbits >= 8 {
		p.out = append(p.out, byte(p.bits))
		p.bits >>= 8
		p.nbits -= 8
	}
}

// finish flushes the final partial byte, zero-padded on the high side.
func (p *bitPacker) finish() []byte {
	if p.nbits > 0 {
		p.out = append(p.out, byte(lowOrderBits(p.bits, p.nbits)))
		p.bits = 0
		p.nbits = 0
	}
	if p.out == nil {
		return []byte{}
	}
	return p.out
}
