package x86

import "fmt"

// Mode represents the addressing mode encoded in the top 2 bits of a ModRM byte.
type Mode byte

const (
	// MemoryNoDisp addresses memory through a base/index pair with no displacement.
	MemoryNoDisp Mode = iota
	// MemoryDisp8 addresses memory with a sign-extended 8 bit displacement.
	MemoryDisp8
	// MemoryDisp16 addresses memory with a 16 bit displacement.
	MemoryDisp16
	// RegisterDirect selects a register instead of a memory operand.
	RegisterDirect
)

// directAddress is the r/m selector reserved for the direct address
// special case in no-displacement mode and the bare [bp] base in the
// displacement modes.
const directAddress = 0b110

// baseIndexNames maps the 3 bit r/m selector to its base/index register pair.
// Selector 110 is handled separately by EffectiveAddress.
var baseIndexNames = [8]string{
	"bx + si", "bx + di", "bp + si", "bp + di", "si", "di", "bp", "bx",
}

// ModeFromBits converts the top 2 bits of a ModRM byte into an addressing
// mode. The conversion is total, every 2 bit pattern maps to a defined mode.
func ModeFromBits(b byte) Mode {
	switch b & 0b11 {
	case 0b00:
		return MemoryNoDisp
	case 0b01:
		return MemoryDisp8
	case 0b10:
		return MemoryDisp16
	default:
		return RegisterDirect
	}
}

// String implements the Stringer interface.
func (m Mode) String() string {
	switch m {
	case MemoryNoDisp:
		return "memory"
	case MemoryDisp8:
		return "memory+disp8"
	case MemoryDisp16:
		return "memory+disp16"
	case RegisterDirect:
		return "register"
	default:
		return "invalid"
	}
}

// EffectiveAddress resolves an addressing mode, r/m selector and
// displacement value into the textual memory operand expression.
// It must not be called for register direct mode.
//
// Selector 110 does not name a base/index pair: with a zero displacement it
// renders as the bare [bp] base, any other value renders as a direct
// address [value]. All other selectors render their displacement suffix
// unconditionally, including + 0.
func EffectiveAddress(mode Mode, rm byte, displacement int16) string {
	rm &= 0b111

	if rm == directAddress {
		if displacement == 0 {
			return "[bp]"
		}
		return fmt.Sprintf("[%d]", displacement)
	}

	base := baseIndexNames[rm]

	switch mode {
	case MemoryDisp8, MemoryDisp16:
		if displacement < 0 {
			return fmt.Sprintf("[%s - %d]", base, -int32(displacement))
		}
		return fmt.Sprintf("[%s + %d]", base, displacement)

	default:
		return fmt.Sprintf("[%s]", base)
	}
}
