// Package x86 implements instruction decoding for the 8086 MOV instruction family.
package x86

// Register represents one of the 16 byte and word sized 8086 registers.
type Register string

// registerNames maps the combined 4 bit register key to its mnemonic.
// The key is composed of the width bit in bit 3 and the 3 bit register
// selector in the low bits, following table 4-9 of the 8086 manual.
var registerNames = [16]Register{
	"al", "cl", "dl", "bl", "ah", "ch", "dh", "bh",
	"ax", "cx", "dx", "bx", "sp", "bp", "si", "di",
}

// RegisterName returns the mnemonic for the given width bit and register
// selector. Both inputs are masked before the lookup, the mapping is total
// over all 16 possible keys.
func RegisterName(width, selector byte) Register {
	key := (width&1)<<3 | selector&0b111
	return registerNames[key]
}

// String implements the Stringer interface.
func (r Register) String() string {
	return string(r)
}
