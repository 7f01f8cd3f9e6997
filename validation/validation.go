// Package validation inspects compressed streams without extracting them:
// it parses the header and derives the code table, surfacing the same
// format violations the decoder would hit.
package validation

import (
	"fmt"
	"io"

	"github.com/bytepress/huff/bitstream"
	"github.com/bytepress/huff/huffman"
	"github.com/bytepress/huff/shared"
)

// Info summarizes a stream header.
type Info struct {
	// Symbols is the number of distinct leaf symbols in the tree,
	// including the EOF symbol.
	Symbols int

	// Depth is the length of the longest codeword.
	Depth int

	// HeaderBits counts the magic number plus the serialized tree.
	HeaderBits uint64

	// Codes is the code table embedded in the header.
	Codes *huffman.Table

	// Present marks which symbols have a leaf in the tree.
	Present [shared.NumSymbols]bool
}

// Inspect reads the header of a compressed stream and returns its
// description. It fails with shared.ErrBadMagic or shared.ErrTruncated on
// a non-conforming stream, exactly as the decoder would.
func Inspect(src io.Reader) (*Info, error) {
	reader := bitstream.NewReader(src)

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

	info := &Info{
		HeaderBits: shared.BitsPerInt + headerBits(root),
		Codes:      huffman.Derive(root),
	}
	collect(root, 0, info)

	return info, nil
}

// Validate checks that src starts with a well-formed header. It returns
// nil for a parsable header or an error describing the violation,
// otherwise.
func Validate(src io.Reader) error {
	if _, err := Inspect(src); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

func collect(n *huffman.Node, depth int, info *Info) {
	if n.Leaf() {
		info.Symbols++
		info.Present[n.Symbol] = true
		if depth > info.Depth {
			info.Depth = depth
		}
		return
	}
	collect(n.Left, depth+1, info)
	collect(n.Right, depth+1, info)
}

func headerBits(n *huffman.Node) uint64 {
	if n.Leaf() {
		return 1 + shared.SymbolBits
	}
	return 1 + headerBits(n.Left) + headerBits(n.Right)
}
