package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// Node is a node in the Huffman tree.  A Node with no children is a leaf
// carrying a Symbol; an internal Node owns exactly two children and has a
// weight equal to the sum of theirs.
type Node struct {
	Symbol Symbol
	Weight uint64
	Left   *Node
	Right  *Node
}

// IsLeaf reports whether n is a leaf.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

func newLeaf(symbol Symbol, weight uint64) *Node {
	return &Node{Symbol: symbol, Weight: weight}
}

func newInternal(left, right *Node) *Node {
	assert.Assertf(left != nil && right != nil, "internal node requires two children, got left=%v right=%v", left, right)
	return &Node{
		Weight: left.Weight + right.Weight,
		Left:   left,
		Right:  right,
	}
}
