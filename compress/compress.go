// Package compress orchestrates the two-pass pipeline over the bitstream
// and huffman packages: count frequencies, build the coding tree, embed it
// in the stream header, then encode the source chunk by chunk. Decompression
// replays the embedded tree; no state outside the stream is needed.
package compress

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/bytepress/huff/bitstream"
	"github.com/bytepress/huff/huffman"
	"github.com/bytepress/huff/shared"
)

// ErrCodeOverflow is returned for inputs whose frequency distribution is so
// skewed that some codeword would exceed the 32-bit stream word. Such a
// distribution requires Fibonacci-like counts over megabytes of input.
var ErrCodeOverflow = errors.New("frequency distribution requires codewords wider than 32 bits")

// Compress encodes src into dst. It reads src twice, once to count chunk
// frequencies and once to encode, so src must support rewinding (via its
// own Reset or io.Seeker); nothing else may read src in between. dst is
// closed on success if it implements io.Closer.
func Compress(src io.Reader, dst io.Writer, opts ...OptionFunc) (*Stats, error) {
	options, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	reader := bitstream.NewReader(src)
	writer := bitstream.NewWriter(dst)

	freq, err := huffman.Count(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to count chunk frequencies: %w", err)
	}

	root := huffman.Build(freq)
	if err := checkCodeWidth(root); err != nil {
		return nil, err
	}

	if err := reader.Reset(); err != nil {
		return nil, fmt.Errorf("failed to rewind source for encoding pass: %w", err)
	}

	if err := writer.WriteBits(shared.MagicTree, shared.BitsPerInt); err != nil {
		return nil, err
	}
	if err := huffman.WriteTree(root, writer); err != nil {
		return nil, err
	}

	codes := huffman.Derive(root)
	stats := &Stats{HeaderBits: shared.BitsPerInt + treeBits(root)}

	for {
		val, err := reader.ReadBits(shared.BitsPerChunk)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		code := codes[val]
		if err := writer.WriteBits(code.Bits, uint(code.Len)); err != nil {
			return nil, err
		}
		stats.Chunks++
		stats.BodyBits += uint64(code.Len)
	}

	eof := codes[shared.EOF]
	if err := writer.WriteBits(eof.Bits, uint(eof.Len)); err != nil {
		return nil, err
	}
	stats.BodyBits += uint64(eof.Len)

	if err := writer.Close(); err != nil {
		return nil, err
	}

	options.logger.Debug("compressed stream",
		zap.Uint64("chunks", stats.Chunks),
		zap.Uint64("headerBits", stats.HeaderBits),
		zap.Uint64("bodyBits", stats.BodyBits),
		zap.Float64("ratio", stats.Ratio()),
	)

	return stats, nil
}

// checkCodeWidth rejects trees whose longest root-to-leaf path exceeds the
// stream word, since every codeword is emitted through a single WriteBits
// call.
func checkCodeWidth(root *huffman.Node) error {
	if depth(root) > shared.BitsPerInt {
		return ErrCodeOverflow
	}
	return nil
}

func depth(n *huffman.Node) uint {
	if n.Leaf() {
		return 0
	}
	left := depth(n.Left)
	right := depth(n.Right)
	if left > right {
		return left + 1
	}
	return right + 1
}

func treeBits(n *huffman.Node) uint64 {
	if n.Leaf() {
		return 1 + shared.SymbolBits
	}
	return 1 + treeBits(n.Left) + treeBits(n.Right)
}
