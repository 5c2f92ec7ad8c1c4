package stream

import (
	"errors"
	"io"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestReaderReadByte(t *testing.T) {
	r := New([]byte{0x89, 0xd8})

	b, err := r.ReadByte()
	assert.NoError(t, err)
	assert.Equal(t, byte(0x89), b)
	assert.Equal(t, 1, r.Position())

	b, err = r.ReadByte()
	assert.NoError(t, err)
	assert.Equal(t, byte(0xd8), b)

	_, err = r.ReadByte()
	assert.True(t, errors.Is(err, io.EOF))
}

func TestReaderReadInt8(t *testing.T) {
	r := New([]byte{0xfb})

	value, err := r.ReadInt8()
	assert.NoError(t, err)
	assert.Equal(t, int8(-5), value)
}

func TestReaderReadUint16(t *testing.T) {
	r := New([]byte{0xe8, 0x03})

	value, err := r.ReadUint16()
	assert.NoError(t, err)
	assert.Equal(t, uint16(1000), value)
	assert.Equal(t, 2, r.Position())
}

func TestReaderReadInt16(t *testing.T) {
	r := New([]byte{0xfe, 0xff})

	value, err := r.ReadInt16()
	assert.NoError(t, err)
	assert.Equal(t, int16(-2), value)
}

func TestReaderTornWord(t *testing.T) {
	r := New([]byte{0x05})

	_, err := r.ReadUint16()
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}

func TestReaderEmpty(t *testing.T) {
	r := New(nil)

	_, err := r.ReadByte()
	assert.True(t, errors.Is(err, io.EOF))

	_, err = r.ReadUint16()
	assert.True(t, errors.Is(err, io.EOF))
}
