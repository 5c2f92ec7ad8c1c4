// Package options contains the program options.
package options

// Program options of the disassembler.
type Program struct {
	Input  string // binary file to disassemble
	Output string // output .asm file, stdout if empty

	AssembleTest bool // verify output by reassembling and comparing to input
	Comments     bool // append decoded field comments to instruction lines
	Debug        bool // enable debug logging
	Quiet        bool // perform operations quietly
}

// Disassembler defines options to control the disassembler.
type Disassembler struct {
	Comments bool // append decoded field comments to instruction lines
}

// NewDisassembler returns a new options instance based on the program options.
func NewDisassembler(opts Program) Disassembler {
	return Disassembler{
		Comments: opts.Comments,
	}
}
