// Package verification verifies that the generated output file recreates the input.
package verification

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/retroenv/i8086disasm/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// VerifyOutput reassembles the generated output file with nasm and verifies
// that the resulting binary recreates the exact input file.
func VerifyOutput(ctx context.Context, logger *log.Logger, opts options.Program) error {
	if opts.Output == "" {
		return errors.New("can not verify console output")
	}

	outputFile, err := os.CreateTemp("", "*.bin")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer func() {
		_ = os.Remove(outputFile.Name())
	}()

	if err := assembleFile(ctx, opts.Output, outputFile.Name()); err != nil {
		return err
	}

	source, err := os.ReadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("reading source file for comparison: %w", err)
	}

	destination, err := os.ReadFile(outputFile.Name())
	if err != nil {
		return fmt.Errorf("reading destination file for comparison: %w", err)
	}

	return checkBufferEqual(logger, source, destination)
}

// assembleFile assembles the listing into a flat binary using an external
// nasm binary.
func assembleFile(ctx context.Context, input, output string) error {
	cmd := exec.CommandContext(ctx, "nasm", "-f", "bin", "-o", output, input)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("reassembling with nasm failed: %s: %w", string(out), err)
	}
	return nil
}

func checkBufferEqual(logger *log.Logger, input, output []byte) error {
	if len(input) != len(output) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(input), len(output))
	}

	var diffs uint64
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs < 10 {
			logger.Error("Offset mismatch",
				log.Hex("offset", i),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d offset mismatches", diffs)
}
