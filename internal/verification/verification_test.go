package verification

import (
	"context"
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

func TestVerifyOutputRequiresFile(t *testing.T) {
	err := VerifyOutput(context.Background(), testLogger(), options.Program{})
	assert.Error(t, err)
}

func TestCheckBufferEqual(t *testing.T) {
	logger := testLogger()

	assert.NoError(t, checkBufferEqual(logger, []byte{0x89, 0xd8}, []byte{0x89, 0xd8}))
	assert.Error(t, checkBufferEqual(logger, []byte{0x89, 0xd8}, []byte{0x89}))
	assert.Error(t, checkBufferEqual(logger, []byte{0x89, 0xd8}, []byte{0x89, 0xd9}))
}
