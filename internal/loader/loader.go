// Package loader handles binary input file loading.
package loader

import (
	"fmt"
	"os"
)

// Loader handles loading raw instruction streams from disk.
type Loader struct{}

// New creates a new binary loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the whole binary file into memory. The decoder operates on a
// fully buffered stream, there is no incremental I/O.
func (l *Loader) Load(input string) ([]byte, error) {
	data, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", input, err)
	}
	return data, nil
}
