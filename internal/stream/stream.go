// Package stream implements a forward-only cursor over an in-memory byte stream.
package stream

import "io"

// Reader reads fixed-width values from an in-memory byte buffer.
// The read position only ever advances, there is no seeking backwards.
type Reader struct {
	data []byte
	pos  int
}

// New creates a new reader for the given buffer.
func New(data []byte) *Reader {
	return &Reader{
		data: data,
	}
}

// Position returns the current read position in the buffer.
func (r *Reader) Position() int {
	return r.pos
}

// ReadByte reads the next byte. It returns io.EOF if the stream is exhausted.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}

	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadInt8 reads the next byte as a signed 8 bit value.
func (r *Reader) ReadInt8() (int8, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	return int8(b), nil
}

// ReadUint16 reads the next 2 bytes as an unsigned little endian 16 bit value.
// It returns io.EOF at a clean stream end and io.ErrUnexpectedEOF if only
// one of the two bytes is available.
func (r *Reader) ReadUint16() (uint16, error) {
	low, err := r.ReadByte()
	if err != nil {
		return 0, err
	}

	high, err := r.ReadByte()
	if err != nil {
		return 0, io.ErrUnexpectedEOF
	}

	return uint16(high)<<8 | uint16(low), nil
}

// ReadInt16 reads the next 2 bytes as a signed little endian 16 bit value.
func (r *Reader) ReadInt16() (int16, error) {
	value, err := r.ReadUint16()
	if err != nil {
		return 0, err
	}
	return int16(value), nil
}
