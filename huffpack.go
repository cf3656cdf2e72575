package huffpack

// Encoded is the result of compressing one input.  All three fields are
// required to get the input back.
type Encoded struct {
	// Packed holds the packed code bits.
	Packed []byte

	// Table holds the code the bits were packed with.
	Table CodeTable

	// Length holds the number of bytes in the original input.
	Length int
}

// Encode compresses data.  Empty data yields empty Packed bytes and an empty
// Table.
func Encode(data []byte) (Encoded, error) {
	if len(data) == 0 {
		return Encoded{Packed: []byte{}}, nil
	}

	var e Encoder
	e.Init(CountFrequencies(data))

	packed, err := e.Pack(data)
	if err != nil {
		return Encoded{}, err
	}
	return Encoded{Packed: packed, Table: e.Table(), Length: len(data)}, nil
}

// Decode reverses Encode, given the packed bytes, the CodeTable, and the
// original length that Encode returned.
func Decode(packed []byte, ct CodeTable, length int) ([]byte, error) {
	var d Decoder
	if err := d.Init(ct); err != nil {
		return nil, err
	}
	return d.Unpack(packed, length)
}

// Decode reverses Encode.
func (enc Encoded) Decode() ([]byte, error) {
	return Decode(enc.Packed, enc.Table, enc.Length)
}
