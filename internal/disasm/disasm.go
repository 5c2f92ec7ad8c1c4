// Package disasm implements the 8086 MOV instruction stream disassembler.
package disasm

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/retroenv/i8086disasm/internal/options"
	"github.com/retroenv/i8086disasm/internal/stream"
	"github.com/retroenv/i8086disasm/internal/writer"
	"github.com/retroenv/i8086disasm/internal/x86"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// Disasm implements a disassembler for a raw 8086 instruction stream.
// It drives the instruction decoder in a single forward pass over the
// fully buffered input and hands every decoded instruction to the writer.
type Disasm struct {
	logger  *log.Logger
	options options.Disassembler

	data []byte

	skippedBytes   int
	skippedOpcodes set.Set[byte] // distinct unrecognized opcodes seen
}

// New creates a new disassembler for the given instruction bytes.
func New(logger *log.Logger, opts options.Disassembler, data []byte) *Disasm {
	return &Disasm{
		logger:         logger,
		options:        opts,
		data:           data,
		skippedOpcodes: set.New[byte](),
	}
}

// Process disassembles the instruction stream and writes the listing.
//
// The stream ending at an opcode boundary terminates the pass cleanly. The
// stream ending inside an instruction aborts with an error, no line is
// emitted for the torn instruction. Unrecognized opcodes are skipped one
// byte at a time without output; if such an opcode actually carries operand
// bytes the pass desynchronizes from the true instruction boundaries, the
// skip-and-continue policy favors forward progress over strict validation.
func (dis *Disasm) Process(ctx context.Context, out io.Writer) error {
	r := stream.New(dis.data)
	dec := x86.NewDecoder(r, dis.options.Comments)
	w := writer.New(out, dis.options)

	if err := w.WriteHeader(); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("decoding aborted: %w", err)
		}

		offset := r.Position()
		in, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("decoding instruction at offset %d: %w", offset, err)
		}

		if in.Kind == x86.KindUnknown {
			dis.skippedBytes++
			dis.skippedOpcodes[in.Opcode] = struct{}{}
			dis.logger.Debug("Skipping unrecognized opcode",
				log.Hex("opcode", in.Opcode),
				log.Int("offset", offset))
			continue
		}

		if err := w.WriteInstruction(in); err != nil {
			return err
		}
	}

	if dis.skippedBytes > 0 {
		dis.logger.Debug("Unrecognized opcodes skipped",
			log.Int("bytes", dis.skippedBytes),
			log.Int("distinct", len(dis.skippedOpcodes)))
	}
	return nil
}

// SkippedBytes returns the number of bytes consumed for unrecognized opcodes.
func (dis *Disasm) SkippedBytes() int {
	return dis.skippedBytes
}
