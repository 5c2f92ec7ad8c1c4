package disasm

import (
	"context"
	"strings"
	"testing"

	"github.com/retroenv/i8086disasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func testLogger() *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Level = log.ErrorLevel
	return log.NewWithConfig(cfg)
}

func process(t *testing.T, data []byte, opts options.Disassembler) (string, error) {
	t.Helper()

	var buf strings.Builder
	dis := New(testLogger(), opts, data)
	err := dis.Process(context.Background(), &buf)
	return buf.String(), err
}

func TestProcess(t *testing.T) {
	// mov ax, bx / mov cx, 12 / mov bx, [1000]
	data := []byte{
		0x89, 0xd8,
		0xb9, 0x0c, 0x00,
		0x8b, 0x1e, 0xe8, 0x03,
	}

	output, err := process(t, data, options.Disassembler{})
	assert.NoError(t, err)

	expected := "bits 16\n" +
		"\nmov ax, bx\n" +
		"\nmov cx, 12\n" +
		"\nmov bx, [1000]\n"
	assert.Equal(t, expected, output)
}

func TestProcessEmptyInput(t *testing.T) {
	output, err := process(t, nil, options.Disassembler{})
	assert.NoError(t, err)
	assert.Equal(t, "bits 16\n", output)
}

func TestProcessPlaceholderForms(t *testing.T) {
	output, err := process(t, []byte{0xa1, 0x8c}, options.Disassembler{})
	assert.NoError(t, err)

	expected := "bits 16\n" +
		"\nmov ; memory to accumulator\n" +
		"\nmov ; segment register to register/memory\n"
	assert.Equal(t, expected, output)
}

func TestProcessSkipsUnknownOpcodes(t *testing.T) {
	// two unrecognized opcodes surrounding a valid instruction
	data := []byte{0x90, 0x89, 0xd8, 0xf4}

	var buf strings.Builder
	dis := New(testLogger(), options.Disassembler{}, data)
	err := dis.Process(context.Background(), &buf)
	assert.NoError(t, err)

	assert.Equal(t, "bits 16\n\nmov ax, bx\n", buf.String())
	assert.Equal(t, 2, dis.SkippedBytes())
}

func TestProcessTruncatedInstruction(t *testing.T) {
	// opcode classified but the ModRM byte is missing
	output, err := process(t, []byte{0x89, 0xd8, 0x8b}, options.Disassembler{})
	assert.Error(t, err)

	// no partial line is emitted for the torn instruction
	assert.Equal(t, "bits 16\n\nmov ax, bx\n", output)
}

func TestProcessComments(t *testing.T) {
	output, err := process(t, []byte{0x89, 0xd8}, options.Disassembler{Comments: true})
	assert.NoError(t, err)

	expected := "bits 16\n" +
		"\nmov ax, bx ; register/memory to/from register: d=0 w=1 mod=11 reg=011 rm=000\n"
	assert.Equal(t, expected, output)
}

func TestProcessCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf strings.Builder
	dis := New(testLogger(), options.Disassembler{}, []byte{0x89, 0xd8})
	err := dis.Process(ctx, &buf)
	assert.Error(t, err)
}
