package huffpack

import (
	"fmt"
)

// unpackState is the state of an unpacker.
type unpackState byte

const (
	stateAccumulating unpackState = iota
	stateEmitted
	stateDone
	stateFailed
)

var unpackStateNames = [...]string{
	stateAccumulating: "ACCUMULATING",
	stateEmitted:      "EMITTED",
	stateDone:         "DONE",
	stateFailed:       "FAILED",
}

func (s unpackState) String() string {
	if int(s) < len(unpackStateNames) {
		return unpackStateNames[s]
	}
	return fmt.Sprintf("unpackState(%d)", byte(s))
}

// Unpack reverses Pack.  It reads packed least significant bit first, grows a
// candidate code one bit at a time, and emits a Symbol as soon as the
// candidate matches an entry of inv.  Because the code is prefix-free the
// first match is the only one possible.
//
// Unpack stops once length symbols have been emitted; any remaining bits are
// padding and are ignored.  If the bits run out first, Unpack fails with
// ErrTruncatedStream.  If the candidate grows longer than every Code, Unpack
// fails with ErrCorruptStream.
//
func Unpack(packed []byte, inv InverseCodeTable, length int) ([]byte, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrTruncatedStream, length)
	}
	// Every symbol takes at least one bit, so a longer length cannot fit.
	capacity := length
	if maxSymbols := len(packed) * 8; capacity > maxSymbols {
		capacity = maxSymbols
	}
	u := unpacker{inv: inv, length: length, out: make([]byte, 0, capacity)}
	u.run(packed)
	if u.state == stateFailed {
		return nil, u.err
	}
	return u.out, nil
}

type unpacker struct {
	inv       InverseCodeTable
	length    int
	out       []byte
	candidate Code
	consumed  int
	state     unpackState
	err       error
}

func (u *unpacker) run(packed []byte) {
	if u.length == 0 {
		u.state = stateDone
		return
	}

	for _, b := range packed {
		for i := 0; i < 8; i++ {
			u.step(uint64(b>>i) & 1)
			u.consumed++
			switch u.state {
			case stateEmitted:
				if len(u.out) == u.length {
					u.state = stateDone
					return
				}
				u.state = stateAccumulating
			case stateFailed:
				return
			}
		}
	}

	u.state = stateFailed
	u.err = fmt.Errorf("%w: decoded %d of %d symbols from %d bits (%d pending)",
		ErrTruncatedStream, len(u.out), u.length, u.consumed, u.candidate.Size)
}

func (u *unpacker) step(bit uint64) {
	u.candidate = u.candidate.Append(bit)
	if symbol, found := u.inv.Lookup(u.candidate); found {
		u.out = append(u.out, byte(symbol))
		u.candidate = Code{}
		u.state = stateEmitted
		return
	}
	if u.candidate.Size >= u.inv.MaxSize() {
		u.state = stateFailed
		u.err = fmt.Errorf("%w: no code matches %s at bit %d", ErrCorruptStream, u.candidate, u.consumed+1-int(u.candidate.Size))
	}
}
