package x86

// Kind classifies the MOV encoding form of an opcode byte.
type Kind byte

const (
	// KindUnknown marks an opcode that matches none of the known patterns.
	KindUnknown Kind = iota
	// KindRegMemToFromReg is MOV register/memory to/from register (100010dw).
	KindRegMemToFromReg
	// KindImmToRegMem is MOV immediate to register/memory (1100011w).
	KindImmToRegMem
	// KindImmToReg is MOV immediate to register (1011wreg).
	KindImmToReg
	// KindMemToAccum is MOV memory to accumulator (1010000w), not implemented.
	KindMemToAccum
	// KindAccumToMem is MOV accumulator to memory (1010001w), not implemented.
	KindAccumToMem
	// KindRegMemToSegReg is MOV register/memory to segment register (10001110),
	// not implemented.
	KindRegMemToSegReg
	// KindSegRegToRegMem is MOV segment register to register/memory (10001100),
	// not implemented.
	KindSegRegToRegMem
)

// Classify matches the opcode byte against the known MOV encoding patterns.
// Patterns are checked in a fixed priority order, the first match wins.
// The 8086 MOV patterns are mutually exclusive, the order still needs to
// stay stable in case future opcode additions introduce collisions.
func Classify(opcode byte) Kind {
	switch {
	case opcode>>2 == 0b100010:
		return KindRegMemToFromReg
	case opcode>>1 == 0b1100011:
		return KindImmToRegMem
	case opcode>>4 == 0b1011:
		return KindImmToReg
	case opcode>>1 == 0b1010000:
		return KindMemToAccum
	case opcode>>1 == 0b1010001:
		return KindAccumToMem
	case opcode == 0b10001110:
		return KindRegMemToSegReg
	case opcode == 0b10001100:
		return KindSegRegToRegMem
	default:
		return KindUnknown
	}
}

// String implements the Stringer interface.
func (k Kind) String() string {
	switch k {
	case KindRegMemToFromReg:
		return "register/memory to/from register"
	case KindImmToRegMem:
		return "immediate to register/memory"
	case KindImmToReg:
		return "immediate to register"
	case KindMemToAccum:
		return "memory to accumulator"
	case KindAccumToMem:
		return "accumulator to memory"
	case KindRegMemToSegReg:
		return "register/memory to segment register"
	case KindSegRegToRegMem:
		return "segment register to register/memory"
	default:
		return "unknown"
	}
}

// Implemented returns whether the decoder resolves operands for this form.
// The unimplemented forms are recognized but only emit a placeholder line.
func (k Kind) Implemented() bool {
	switch k {
	case KindRegMemToFromReg, KindImmToRegMem, KindImmToReg:
		return true
	default:
		return false
	}
}
