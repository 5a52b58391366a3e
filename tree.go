package huffman

import (
	"container/heap"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// BuildTree assembles the Huffman tree for the given frequency table.
//
// Each (Symbol, weight) pair becomes a leaf in a min-priority queue; the two
// lowest-weight nodes are repeatedly merged (first popped = left child) until
// one node remains, which is the root.  Equal weights are broken by insertion
// sequence, with leaves seeded in ascending Symbol order, so the resulting
// tree is fully deterministic and repeated runs assign identical codes.
//
// An empty table yields ErrEmptyInput.  A table with a single symbol yields
// a tree consisting of one leaf.
func BuildTree(table FrequencyTable) (*Node, error) {
	if len(table) == 0 {
		return nil, ErrEmptyInput
	}

	symbols := make([]Symbol, 0, len(table))
	for symbol := range table {
		symbols = append(symbols, symbol)
	}
	sort.Slice(symbols, func(i, j int) bool {
		return symbols[i] < symbols[j]
	})

	h := &nodeHeap{list: make([]seqNode, 0, len(symbols))}
	var total uint64
	for _, symbol := range symbols {
		weight := table[symbol]
		total += weight
		h.list = append(h.list, seqNode{node: newLeaf(symbol, weight), seq: h.nextSeq})
		h.nextSeq++
	}
	heap.Init(h)

	for h.Len() > 1 {
		left := heap.Pop(h).(seqNode)
		right := heap.Pop(h).(seqNode)
		heap.Push(h, seqNode{node: newInternal(left.node, right.node), seq: h.nextSeq})
		h.nextSeq++
	}

	root := heap.Pop(h).(seqNode).node
	assert.Assertf(root.Weight == total, "root weight %d != total frequency %d", root.Weight, total)
	return root, nil
}

// type seqNode + type nodeHeap {{{

type seqNode struct {
	node *Node
	seq  uint64
}

type nodeHeap struct {
	list    []seqNode
	nextSeq uint64
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Weight != b.node.Weight {
		return a.node.Weight < b.node.Weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(seqNode))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
