package compress

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bytepress/huff/huffman"
)

func TestCheckCodeWidth(t *testing.T) {
	req := require.New(t)

	// Fibonacci counts are the worst case for codeword length: each new
	// weight ties the running total, so the tree degenerates into a
	// chain one level deeper per symbol.
	freq := new(huffman.Frequencies)
	a, b := uint64(1), uint64(1)
	for i := 0; i < 40; i++ {
		freq[i] = a
		a, b = b, a+b
	}

	err := checkCodeWidth(huffman.Build(freq))
	req.ErrorIs(err, ErrCodeOverflow)

	// A flat distribution stays well within the stream word.
	flat := new(huffman.Frequencies)
	for i := range flat {
		flat[i] = 1
	}
	req.NoError(checkCodeWidth(huffman.Build(flat)))
}
