package huffman

import (
	"fmt"
	"io"

	"github.com/bytepress/huff/bitstream"
	"github.com/bytepress/huff/shared"
)

// WriteTree serializes the tree in pre-order: an internal node is a 0 bit
// followed by its left and right subtrees, a leaf is a 1 bit followed by
// the symbol value in 9 bits. Weights are not carried; the decoder only
// needs the shape and the leaf symbols.
func WriteTree(root *Node, w *bitstream.Writer) error {
	if root.Leaf() {
		if err := w.WriteBit(bitstream.One); err != nil {
			return err
		}
		return w.WriteBits(uint32(root.Symbol), shared.SymbolBits)
	}

	if err := w.WriteBit(bitstream.Zero); err != nil {
		return err
	}
	if err := WriteTree(root.Left, w); err != nil {
		return err
	}
	return WriteTree(root.Right, w)
}

// ReadTree reconstructs a tree serialized by WriteTree. A stream that ends
// mid-traversal yields shared.ErrTruncated; a traversal nesting deeper
// than any well-formed tree yields shared.ErrTreeTooDeep. The encoder never
// produces a tree of fewer than two leaves, so a header whose root is a
// leaf yields shared.ErrLeafRoot.
func ReadTree(r *bitstream.Reader) (*Node, error) {
	root, err := readTree(r, 0)
	if err != nil {
		return nil, err
	}
	if root.Leaf() {
		return nil, shared.ErrLeafRoot
	}
	return root, nil
}

func readTree(r *bitstream.Reader, depth int) (*Node, error) {
	if depth > shared.MaxTreeDepth {
		return nil, shared.ErrTreeTooDeep
	}

	bit, err := r.ReadBit()
	if err != nil {
		return nil, truncated(err)
	}

	if bit == bitstream.One {
		sym, err := r.ReadBits(shared.SymbolBits)
		if err != nil {
			return nil, truncated(err)
		}
		if sym > shared.EOF {
			return nil, fmt.Errorf("symbol %d out of range in tree header", sym)
		}
		return &Node{Symbol: uint16(sym)}, nil
	}

	left, err := readTree(r, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := readTree(r, depth+1)
	if err != nil {
		return nil, err
	}
	return &Node{Left: left, Right: right}, nil
}

func truncated(err error) error {
	if err == io.EOF {
		return shared.ErrTruncated
	}
	return err
}
