package x86

import (
	"errors"
	"fmt"
	"io"

	"github.com/retroenv/i8086disasm/internal/stream"
)

// Decoder decodes MOV family instructions from a byte stream.
type Decoder struct {
	r        *stream.Reader
	comments bool
}

// NewDecoder creates a new decoder reading from the given stream.
func NewDecoder(r *stream.Reader, comments bool) *Decoder {
	return &Decoder{
		r:        r,
		comments: comments,
	}
}

// Next decodes the next instruction from the stream.
//
// A stream end at an opcode boundary is the normal termination and returned
// as io.EOF. A stream end while reading bytes that an already classified
// opcode requires is a fatal decode error and returned wrapped. Opcodes
// matching no known pattern consume exactly one byte and are returned as
// KindUnknown, the caller decides the skip policy.
func (d *Decoder) Next() (Instruction, error) {
	opcode, err := d.r.ReadByte()
	if err != nil {
		return Instruction{}, io.EOF
	}

	kind := Classify(opcode)
	switch kind {
	case KindRegMemToFromReg:
		return d.decodeRegMemToFromReg(opcode)
	case KindImmToRegMem:
		return d.decodeImmToRegMem(opcode)
	case KindImmToReg:
		return d.decodeImmToReg(opcode)
	default:
		// placeholder forms and unknown opcodes carry no operand bytes
		return Instruction{Kind: kind, Opcode: opcode}, nil
	}
}

// decodeRegMemToFromReg decodes the register/memory to/from register form
// (100010dw). The direction bit selects which operand is the destination.
func (d *Decoder) decodeRegMemToFromReg(opcode byte) (Instruction, error) {
	width := opcode & 1
	direction := opcode >> 1 & 1

	modRM, err := d.r.ReadByte()
	if err != nil {
		return Instruction{}, fmt.Errorf("reading modrm byte: %w", required(err))
	}

	mode := ModeFromBits(modRM >> 6)
	reg := modRM >> 3 & 0b111
	rm := modRM & 0b111

	displacement, err := d.readDisplacement(mode, rm)
	if err != nil {
		return Instruction{}, fmt.Errorf("reading displacement: %w", err)
	}

	regName := RegisterName(width, reg).String()
	var other string
	if mode == RegisterDirect {
		other = RegisterName(width, rm).String()
	} else {
		other = EffectiveAddress(mode, rm, displacement)
	}

	in := Instruction{
		Kind:   KindRegMemToFromReg,
		Opcode: opcode,
	}
	if direction == 1 {
		in.Dest = regName
		in.Source = other
	} else {
		in.Dest = other
		in.Source = regName
	}

	if d.comments {
		in.Comment = fmt.Sprintf("%s: d=%d w=%d mod=%02b reg=%03b rm=%03b",
			in.Kind, direction, width, byte(mode), reg, rm)
	}
	return in, nil
}

// decodeImmToRegMem decodes the immediate to register/memory form (1100011w).
//
// The first value following the ModRM byte is read as part of the addressing
// computation. In the displacement modes an additional immediate read follows
// for the data being moved; in register direct and no-displacement mode the
// first value read is itself the immediate. Both reads are sized by the
// width bit and must stay distinct, conflating them shifts the cursor.
func (d *Decoder) decodeImmToRegMem(opcode byte) (Instruction, error) {
	width := opcode & 1

	modRM, err := d.r.ReadByte()
	if err != nil {
		return Instruction{}, fmt.Errorf("reading modrm byte: %w", required(err))
	}

	mode := ModeFromBits(modRM >> 6)
	rm := modRM & 0b111

	value, err := d.readImmediate(width)
	if err != nil {
		return Instruction{}, fmt.Errorf("reading displacement value: %w", err)
	}

	in := Instruction{
		Kind:   KindImmToRegMem,
		Opcode: opcode,
	}

	switch mode {
	case RegisterDirect:
		in.Dest = RegisterName(width, rm).String()
		in.Source = immediateText(width, value)

	case MemoryNoDisp:
		in.Dest = EffectiveAddress(mode, rm, value)
		in.Source = immediateText(width, value)

	default:
		data, err := d.readImmediate(width)
		if err != nil {
			return Instruction{}, fmt.Errorf("reading immediate data: %w", err)
		}
		in.Dest = EffectiveAddress(mode, rm, value)
		in.Source = immediateText(width, data)
	}

	if d.comments {
		in.Comment = fmt.Sprintf("%s: w=%d mod=%02b rm=%03b disp=%d",
			in.Kind, width, byte(mode), rm, value)
	}
	return in, nil
}

// decodeImmToReg decodes the immediate to register form (1011wreg).
// The target register is selected from the low 4 bits of the opcode,
// there is no ModRM byte.
func (d *Decoder) decodeImmToReg(opcode byte) (Instruction, error) {
	width := opcode >> 3 & 1
	reg := opcode & 0b111

	value, err := d.readImmediate(width)
	if err != nil {
		return Instruction{}, fmt.Errorf("reading immediate data: %w", err)
	}

	in := Instruction{
		Kind:   KindImmToReg,
		Opcode: opcode,
		Dest:   RegisterName(width, reg).String(),
		Source: fmt.Sprintf("%d", value),
	}

	if d.comments {
		in.Comment = fmt.Sprintf("%s: w=%d reg=%03b", in.Kind, width, reg)
	}
	return in, nil
}

// readDisplacement reads the displacement bytes required by the addressing
// mode. The 8 bit case is sign-extended to 16 bits. No-displacement mode
// with the reserved r/m selector still carries a 16 bit direct address.
func (d *Decoder) readDisplacement(mode Mode, rm byte) (int16, error) {
	switch {
	case mode == MemoryDisp8:
		value, err := d.r.ReadInt8()
		if err != nil {
			return 0, required(err)
		}
		return int16(value), nil

	case mode == MemoryDisp16, mode == MemoryNoDisp && rm == directAddress:
		value, err := d.r.ReadInt16()
		if err != nil {
			return 0, required(err)
		}
		return value, nil

	default:
		return 0, nil
	}
}

// readImmediate reads a 1 or 2 byte literal value depending on the width bit,
// sign-extending the 8 bit case.
func (d *Decoder) readImmediate(width byte) (int16, error) {
	if width&1 == 0 {
		value, err := d.r.ReadInt8()
		if err != nil {
			return 0, required(err)
		}
		return int16(value), nil
	}

	value, err := d.r.ReadInt16()
	if err != nil {
		return 0, required(err)
	}
	return value, nil
}

// immediateText renders an immediate operand with its explicit width keyword,
// needed when the other operand does not imply the operand size.
func immediateText(width byte, value int16) string {
	if width&1 == 0 {
		return fmt.Sprintf("byte %d", value)
	}
	return fmt.Sprintf("word %d", value)
}

// required converts a clean stream end into an unexpected EOF, the missing
// bytes belong to an already classified opcode.
func required(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
