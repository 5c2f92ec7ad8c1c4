// Package main implements an 8086 MOV instruction stream disassembler
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/i8086disasm/internal/cli"
	"github.com/retroenv/i8086disasm/internal/config"
	"github.com/retroenv/i8086disasm/internal/disasm"
	"github.com/retroenv/i8086disasm/internal/loader"
	"github.com/retroenv/i8086disasm/internal/options"
	"github.com/retroenv/i8086disasm/internal/verification"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, disasmOptions, err := cli.ParseFlags()
	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts)
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	printBanner(logger, opts)

	if err := disasmFile(ctx, logger, opts, disasmOptions); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Disassembling failed", log.Err(err))
		os.Exit(1)
	}
}

func printBanner(logger *log.Logger, opts options.Program) {
	if opts.Quiet {
		return
	}
	logger.Info("i8086disasm", log.String("version", buildinfo.Version(version, commit, date)))
}

func disasmFile(ctx context.Context, logger *log.Logger, opts options.Program,
	disasmOptions options.Disassembler) error {

	data, err := loader.New().Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading binary: %w", err)
	}

	if !opts.Quiet {
		logger.Info("Processing 8086 binary",
			log.String("file", opts.Input),
			log.Int("size", len(data)))
	}

	outputFile, err := createWriter(opts)
	if err != nil {
		return err
	}

	dis := disasm.New(logger, disasmOptions, data)
	if err := dis.Process(ctx, outputFile); err != nil {
		_ = outputFile.Close()
		return fmt.Errorf("processing file: %w", err)
	}
	if err := outputFile.Close(); err != nil {
		return fmt.Errorf("closing file: %w", err)
	}

	if opts.AssembleTest {
		if err := verification.VerifyOutput(ctx, logger, opts); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		logger.Info("Verification successful")
	}
	return nil
}

func createWriter(opts options.Program) (io.WriteCloser, error) {
	if opts.Output == "" {
		return &nopCloser{os.Stdout}, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// nopCloser wraps an io.Writer to add a no-op Close method
type nopCloser struct {
	io.Writer
}

func (nc *nopCloser) Close() error {
	return nil
}
