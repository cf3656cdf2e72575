// Package container defines the huffpack file format, which stores a packed
// Huffman payload together with everything needed to decode it: the code
// table, the original length, and a checksum of the original bytes.
//
// Wire format (version 1), all integers little-endian:
//
//	magic      [4]byte = "HUFP"
//	version    uint16
//	length     uint64  number of bytes in the original input
//	checksum   uint64  xxhash64 of the original input
//	entries    uint16  number of code table entries, 0..256
//	tableLen   uint32  number of bytes in the table section
//	table      tableLen bytes, a most-significant-bit-first bitstream of
//	           entries × (symbol:8, size:8, code:size bits, first bit first),
//	           zero-padded to a byte boundary
//	payloadLen uint64
//	payload    payloadLen bytes, as produced by huffpack.Pack
//
package container

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/icza/bitio"

	"github.com/chronos-tachyon/huffpack"
)

const (
	fileMagic   = "HUFP"
	fileVersion = uint16(1)

	// Each entry takes at most 8+8+64 bits.
	maxTableBytes   = huffpack.NumSymbols * 10
	maxPayloadBytes = 1 << 36
)

// File is the in-memory form of one huffpack container.
type File struct {
	// Length holds the number of bytes in the original input.
	Length int

	// Checksum holds the xxhash64 of the original input.
	Checksum uint64

	// Table holds the code the payload was packed with.
	Table huffpack.CodeTable

	// Payload holds the packed code bits.
	Payload []byte
}

// Compress encodes data into a new File.
func Compress(data []byte) (*File, error) {
	enc, err := huffpack.Encode(data)
	if err != nil {
		return nil, err
	}
	return &File{
		Length:   enc.Length,
		Checksum: xxhash.Sum64(data),
		Table:    enc.Table,
		Payload:  enc.Packed,
	}, nil
}

// Decompress decodes the payload and verifies it against the checksum.
func (f *File) Decompress() ([]byte, error) {
	data, err := huffpack.Decode(f.Payload, f.Table, f.Length)
	if err != nil {
		return nil, err
	}
	if sum := xxhash.Sum64(data); sum != f.Checksum {
		return nil, fmt.Errorf("%w: expected %016x, got %016x", ErrChecksumMismatch, f.Checksum, sum)
	}
	return data, nil
}

// WriteTo serializes the File.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	table, err := encodeTable(f.Table)
	if err != nil {
		return 0, err
	}

	var header bytes.Buffer
	header.WriteString(fileMagic)
	fields := []interface{}{
		fileVersion,
		uint64(f.Length),
		f.Checksum,
		uint16(f.Table.Len()),
		uint32(len(table)),
	}
	for _, field := range fields {
		if err := binary.Write(&header, binary.LittleEndian, field); err != nil {
			return 0, err
		}
	}
	header.Write(table)
	if err := binary.Write(&header, binary.LittleEndian, uint64(len(f.Payload))); err != nil {
		return 0, err
	}

	var total int64
	n, err := writeBytes(w, header.Bytes())
	total += n
	if err != nil {
		return total, err
	}
	n, err = writeBytes(w, f.Payload)
	total += n
	return total, err
}

// ReadFrom replaces the File with one deserialized from r.
func (f *File) ReadFrom(r io.Reader) (int64, error) {
	cr := &countingReader{r: r}

	var magic [4]byte
	if _, err := io.ReadFull(cr, magic[:]); err != nil {
		return cr.n, fmt.Errorf("read magic: %w", err)
	}
	if string(magic[:]) != fileMagic {
		return cr.n, fmt.Errorf("%w: magic %q", ErrBadMagic, magic[:])
	}

	var hdr struct {
		Version  uint16
		Length   uint64
		Checksum uint64
		Entries  uint16
		TableLen uint32
	}
	if err := binary.Read(cr, binary.LittleEndian, &hdr); err != nil {
		return cr.n, fmt.Errorf("read header: %w", err)
	}
	if hdr.Version != fileVersion {
		return cr.n, fmt.Errorf("%w: %d", ErrUnsupportedVersion, hdr.Version)
	}
	if hdr.Entries > huffpack.NumSymbols {
		return cr.n, fmt.Errorf("%w: %d table entries", ErrTooLarge, hdr.Entries)
	}
	if hdr.TableLen > maxTableBytes {
		return cr.n, fmt.Errorf("%w: table of %d bytes", ErrTooLarge, hdr.TableLen)
	}

	tableBytes := make([]byte, hdr.TableLen)
	if _, err := io.ReadFull(cr, tableBytes); err != nil {
		return cr.n, fmt.Errorf("read code table: %w", err)
	}
	table, err := decodeTable(tableBytes, int(hdr.Entries))
	if err != nil {
		return cr.n, err
	}

	var payloadLen uint64
	if err := binary.Read(cr, binary.LittleEndian, &payloadLen); err != nil {
		return cr.n, fmt.Errorf("read payload length: %w", err)
	}
	if payloadLen > maxPayloadBytes {
		return cr.n, fmt.Errorf("%w: payload of %d bytes", ErrTooLarge, payloadLen)
	}
	// Every symbol takes at least one bit.
	if hdr.Length > payloadLen*8 {
		return cr.n, fmt.Errorf("%w: length %d does not fit in %d payload bytes", ErrTooLarge, hdr.Length, payloadLen)
	}

	payload := make([]byte, payloadLen)
	if _, err := io.ReadFull(cr, payload); err != nil {
		return cr.n, fmt.Errorf("read payload: %w", err)
	}

	*f = File{
		Length:   int(hdr.Length),
		Checksum: hdr.Checksum,
		Table:    table,
		Payload:  payload,
	}
	return cr.n, nil
}

// Size returns the number of bytes WriteTo would produce.
func (f *File) Size() int64 {
	var tableBits int64
	for _, entry := range f.Table.Entries() {
		tableBits += 16 + int64(entry.Code.Size)
	}
	const fixed = 4 + 2 + 8 + 8 + 2 + 4 + 8
	return fixed + (tableBits+7)/8 + int64(len(f.Payload))
}

func encodeTable(ct huffpack.CodeTable) ([]byte, error) {
	var buf bytes.Buffer
	bw := bitio.NewWriter(&buf)
	for _, entry := range ct.Entries() {
		if err := bw.WriteBits(uint64(entry.Symbol), 8); err != nil {
			return nil, err
		}
		if err := bw.WriteBits(uint64(entry.Code.Size), 8); err != nil {
			return nil, err
		}
		for i := byte(0); i < entry.Code.Size; i++ {
			if err := bw.WriteBool(entry.Code.Bit(i) == 1); err != nil {
				return nil, err
			}
		}
	}
	if err := bw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeTable(data []byte, numEntries int) (huffpack.CodeTable, error) {
	br := bitio.NewReader(bytes.NewReader(data))
	entries := make([]huffpack.Entry, 0, numEntries)
	for index := 0; index < numEntries; index++ {
		symbol, err := br.ReadBits(8)
		if err != nil {
			return huffpack.CodeTable{}, fmt.Errorf("read code table entry %d: %w", index, err)
		}
		size, err := br.ReadBits(8)
		if err != nil {
			return huffpack.CodeTable{}, fmt.Errorf("read code table entry %d: %w", index, err)
		}
		var hc huffpack.Code
		for i := uint64(0); i < size && hc.Size < 64; i++ {
			bit, err := br.ReadBool()
			if err != nil {
				return huffpack.CodeTable{}, fmt.Errorf("read code table entry %d: %w", index, err)
			}
			if bit {
				hc = hc.Append(1)
			} else {
				hc = hc.Append(0)
			}
		}
		if uint64(hc.Size) != size {
			return huffpack.CodeTable{}, fmt.Errorf("%w: symbol %d has a code of %d bits", huffpack.ErrInvalidCodeTable, symbol, size)
		}
		entries = append(entries, huffpack.Entry{Symbol: huffpack.Symbol(symbol), Code: hc})
	}
	return huffpack.MakeCodeTable(entries)
}

func writeBytes(w io.Writer, b []byte) (int64, error) {
	n, err := w.Write(b)
	if err != nil {
		return int64(n), err
	}
	if n != len(b) {
		return int64(n), io.ErrShortWrite
	}
	return int64(n), nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}

var (
	_ io.WriterTo   = (*File)(nil)
	_ io.ReaderFrom = (*File)(nil)
)
