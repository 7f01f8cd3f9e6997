package huffman

import (
	"container/heap"

	"github.com/bytepress/huff/shared"
)

// Build constructs the coding tree for freq: one leaf per chunk with a
// non-zero count, plus the EOF symbol at weight 1 so a terminator exists
// even for an empty input. The two lightest nodes are repeatedly merged
// until a single root remains.
//
// Equal weights are resolved by insertion order, which keeps the output
// deterministic. The decoder never rebuilds the tree from counts; it
// replays the exact tree embedded in the stream, so the tie-break rule
// carries no protocol meaning.
//
// At least two leaves always exist, so the tree has depth >= 1 and no
// symbol receives an empty codeword.
func Build(freq *Frequencies) *Node {
	pq := new(nodeQueue)

	for sym, count := range freq {
		if count == 0 {
			continue
		}
		pq.add(&Node{Symbol: uint16(sym), Weight: count})
	}
	if pq.Len() == 0 {
		// An empty input seeds no data leaves. Pair the EOF leaf with a
		// zero-weight chunk so the tree stays full and the EOF symbol still
		// receives a non-empty codeword.
		pq.add(&Node{Symbol: 0, Weight: 0})
	}
	pq.add(&Node{Symbol: shared.EOF, Weight: 1})
	heap.Init(pq)

	for pq.Len() > 1 {
		left := heap.Pop(pq).(*Node)
		right := heap.Pop(pq).(*Node)
		heap.Push(pq, &Node{
			Weight: left.Weight + right.Weight,
			Left:   left,
			Right:  right,
		})
	}

	return heap.Pop(pq).(*Node)
}

type queueItem struct {
	node *Node
	seq  int
}

// nodeQueue is a min-heap of tree nodes keyed by weight, with insertion
// sequence as the tie-breaker.
type nodeQueue struct {
	items []queueItem
	seq   int
}

func (q *nodeQueue) add(n *Node) {
	q.items = append(q.items, queueItem{n, q.seq})
	q.seq++
}

func (q *nodeQueue) Len() int { return len(q.items) }

func (q *nodeQueue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.node.Weight != b.node.Weight {
		return a.node.Weight < b.node.Weight
	}
	return a.seq < b.seq
}

func (q *nodeQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
}

func (q *nodeQueue) Push(x any) {
	q.add(x.(*Node))
}

func (q *nodeQueue) Pop() any {
	last := len(q.items) - 1
	item := q.items[last]
	q.items = q.items[:last]
	return item.node
}
