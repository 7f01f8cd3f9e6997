package compress

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/bytepress/huff/bitstream"
	"github.com/bytepress/huff/huffman"
	"github.com/bytepress/huff/shared"
)

// Decompress decodes src into dst, inverting Compress exactly. A stream
// that does not start with the expected magic number fails with
// shared.ErrBadMagic; a stream that ends before the EOF codeword fails
// with shared.ErrTruncated. dst is closed on success if it implements
// io.Closer.
func Decompress(src io.Reader, dst io.Writer, opts ...OptionFunc) (*Stats, error) {
	options, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	reader := bitstream.NewReader(src)
	writer := bitstream.NewWriter(dst)

	magic, err := reader.ReadBits(shared.BitsPerInt)
	if err == io.EOF {
		return nil, fmt.Errorf("%w: stream too short for a magic number", shared.ErrBadMagic)
	}
	if err != nil {
		return nil, err
	}
	if magic != shared.MagicTree {
		return nil, fmt.Errorf("%w: 0x%08x", shared.ErrBadMagic, magic)
	}

	root, err := huffman.ReadTree(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read tree header: %w", err)
	}

	stats := &Stats{HeaderBits: shared.BitsPerInt + treeBits(root)}

	current := root
	for {
		bit, err := reader.ReadBit()
		if err == io.EOF {
			// A well-formed stream reaches the EOF codeword first.
			return nil, fmt.Errorf("stream body: %w", shared.ErrTruncated)
		}
		if err != nil {
			return nil, err
		}
		stats.BodyBits++

		if bit == bitstream.Zero {
			current = current.Left
		} else {
			current = current.Right
		}

		if !current.Leaf() {
			continue
		}
		if current.Symbol == shared.EOF {
			break
		}

		if err := writer.WriteBits(uint32(current.Symbol), shared.BitsPerChunk); err != nil {
			return nil, err
		}
		stats.Chunks++
		current = root
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	options.logger.Debug("decompressed stream",
		zap.Uint64("chunks", stats.Chunks),
		zap.Uint64("bodyBits", stats.BodyBits),
	)

	return stats, nil
}
