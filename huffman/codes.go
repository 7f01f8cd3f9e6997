package huffman

import (
	"fmt"
	"strconv"

	"github.com/bytepress/huff/shared"
)

// Code is the bit sequence assigned to a symbol: the path from the tree
// root to the symbol's leaf, where 0 descends left and 1 descends right.
// The first bit of the path is the most significant of Bits.
type Code struct {
	Bits uint32
	Len  uint8
}

// String returns the code as a binary literal, e.g. "0110".
func (c Code) String() string {
	if c.Len == 0 {
		return ""
	}
	return fmt.Sprintf("%0"+strconv.Itoa(int(c.Len))+"b", c.Bits)
}

// Table maps each symbol to its codeword.
type Table [shared.NumSymbols]Code

// Derive walks the tree depth-first and records the root-to-leaf path of
// every symbol present in it. The resulting code is prefix-free by
// construction: paths to distinct leaves of a full binary tree cannot
// prefix one another.
func Derive(root *Node) *Table {
	table := new(Table)
	derive(root, Code{}, table)
	return table
}

func derive(n *Node, path Code, table *Table) {
	if n.Leaf() {
		table[n.Symbol] = path
		return
	}

	derive(n.Left, Code{path.Bits << 1, path.Len + 1}, table)
	derive(n.Right, Code{path.Bits<<1 | 1, path.Len + 1}, table)
}
