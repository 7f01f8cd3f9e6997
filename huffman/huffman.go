// Package huffman implements the coding core: frequency counting, greedy
// tree construction, codeword derivation and the self-describing tree
// serialization embedded in every compressed stream.
package huffman

// Node is a node in the coding tree. A leaf carries a symbol; an internal
// node always has exactly two children, so the tree is full.
type Node struct {
	Symbol uint16 // chunk value 0-255, or shared.EOF
	Weight uint64
	Left   *Node
	Right  *Node
}

// Leaf reports whether n is terminal.
func (n *Node) Leaf() bool {
	return n.Left == nil && n.Right == nil
}
