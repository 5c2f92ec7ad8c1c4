package x86

// Instruction is one decoded MOV instruction, ready for output.
// Instances are created fresh per decoded instruction and carry no state
// beyond the rendered operand texts.
type Instruction struct {
	Kind   Kind
	Opcode byte

	Dest    string // destination operand text, empty for placeholder forms
	Source  string // source operand text, empty for placeholder forms
	Comment string // decoded field dump, set when comments are enabled
}
