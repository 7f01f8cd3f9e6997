package config

import (
	"fmt"

	"github.com/bytepress/huff/shared"
)

const (
	MaxBufferSize = 1 << 24
	MinBufferSize = 1 << 6
)

const (
	DefaultBufferSize = 1 << 12

	// DefaultSuffix is appended to input file names by the compress
	// command and stripped by the decompress command.
	DefaultSuffix = ".huff"
)

type Config struct {
	// BufferSize is the size, in bytes, of the buffers between the bit
	// streams and the underlying files.
	BufferSize uint `mapstructure:"huff-buffersize"`

	// Suffix names compressed files: <input><Suffix>.
	Suffix string `mapstructure:"huff-suffix"`

	// DisableSpaceChecks skips the free disk space preflight before
	// writing output files.
	DisableSpaceChecks bool `mapstructure:"huff-disable-space-checks"`
}

func (cfg *Config) Validate() error {
	if cfg.BufferSize > MaxBufferSize {
		return fmt.Errorf("invalid `BufferSize`; expected: <= %d, given: %d", MaxBufferSize, cfg.BufferSize)
	}

	if cfg.BufferSize < MinBufferSize {
		return fmt.Errorf("invalid `BufferSize`; expected: >= %d, given: %d", MinBufferSize, cfg.BufferSize)
	}

	if !isPowerOfTwo(uint64(cfg.BufferSize)) {
		return fmt.Errorf("invalid `BufferSize`; expected: a power of 2, given: %d", cfg.BufferSize)
	}

	if cfg.Suffix == "" {
		return fmt.Errorf("invalid `Suffix`; expected: non-empty")
	}

	return nil
}

// RequiredSpace returns a conservative upper bound, in bytes, on the
// compressed size of an input of the given size: the header can hold at
// most one leaf per symbol, and no codeword is wider than 32 bits.
func RequiredSpace(inputSize uint64) uint64 {
	headerBits := uint64(shared.BitsPerInt) + uint64(shared.NumSymbols)*(1+shared.SymbolBits) + shared.NumSymbols - 1
	bodyBits := (inputSize + 1) * shared.BitsPerInt
	return (headerBits+bodyBits)/8 + 1
}

func DefaultConfig() *Config {
	return &Config{
		BufferSize: DefaultBufferSize,
		Suffix:     DefaultSuffix,
	}
}

func isPowerOfTwo(x uint64) bool {
	return x != 0 && x&(x-1) == 0
}
