// Package writer implements assembly listing output.
package writer

import (
	"fmt"
	"io"

	"github.com/retroenv/i8086disasm/internal/options"
	"github.com/retroenv/i8086disasm/internal/x86"
)

// processorModeDirective tells the assembler to emit 16 bit code,
// it is written once at the very start of the output.
const processorModeDirective = "bits 16"

// Writer writes decoded instructions as assembly lines.
type Writer struct {
	options options.Disassembler
	writer  io.Writer
}

// New creates a new writer.
func New(writer io.Writer, options options.Disassembler) *Writer {
	return &Writer{
		options: options,
		writer:  writer,
	}
}

// WriteHeader writes the processor mode directive.
func (w *Writer) WriteHeader() error {
	if _, err := fmt.Fprintln(w.writer, processorModeDirective); err != nil {
		return fmt.Errorf("writing directive: %w", err)
	}
	return nil
}

// WriteInstruction writes one blank line followed by the instruction line.
// Operand order on the line is destination first, source second. The
// recognized but unimplemented forms emit a descriptive placeholder line.
func (w *Writer) WriteInstruction(in x86.Instruction) error {
	if _, err := fmt.Fprintln(w.writer); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}

	line := w.instructionLine(in)
	if w.options.Comments && in.Comment != "" {
		line = fmt.Sprintf("%s ; %s", line, in.Comment)
	}

	if _, err := fmt.Fprintln(w.writer, line); err != nil {
		return fmt.Errorf("writing instruction line: %w", err)
	}
	return nil
}

func (w *Writer) instructionLine(in x86.Instruction) string {
	if !in.Kind.Implemented() {
		return fmt.Sprintf("mov ; %s", in.Kind)
	}
	return fmt.Sprintf("mov %s, %s", in.Dest, in.Source)
}
