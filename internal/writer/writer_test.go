package writer

import (
	"strings"
	"testing"

	"github.com/retroenv/i8086disasm/internal/options"
	"github.com/retroenv/i8086disasm/internal/x86"
	"github.com/retroenv/retrogolib/assert"
)

func TestWriterHeader(t *testing.T) {
	var buf strings.Builder
	w := New(&buf, options.Disassembler{})

	assert.NoError(t, w.WriteHeader())
	assert.Equal(t, "bits 16\n", buf.String())
}

func TestWriterInstruction(t *testing.T) {
	var buf strings.Builder
	w := New(&buf, options.Disassembler{})

	in := x86.Instruction{
		Kind:   x86.KindRegMemToFromReg,
		Dest:   "ax",
		Source: "bx",
	}
	assert.NoError(t, w.WriteInstruction(in))
	assert.Equal(t, "\nmov ax, bx\n", buf.String())
}

func TestWriterPlaceholder(t *testing.T) {
	var buf strings.Builder
	w := New(&buf, options.Disassembler{})

	in := x86.Instruction{Kind: x86.KindMemToAccum}
	assert.NoError(t, w.WriteInstruction(in))
	assert.Equal(t, "\nmov ; memory to accumulator\n", buf.String())
}

func TestWriterComments(t *testing.T) {
	in := x86.Instruction{
		Kind:    x86.KindImmToReg,
		Dest:    "ax",
		Source:  "5",
		Comment: "immediate to register: w=1 reg=000",
	}

	var buf strings.Builder
	w := New(&buf, options.Disassembler{Comments: true})
	assert.NoError(t, w.WriteInstruction(in))
	assert.Equal(t, "\nmov ax, 5 ; immediate to register: w=1 reg=000\n", buf.String())

	// comments are dropped when disabled
	buf.Reset()
	w = New(&buf, options.Disassembler{})
	assert.NoError(t, w.WriteInstruction(in))
	assert.Equal(t, "\nmov ax, 5\n", buf.String())
}
