package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// Code is the prefix-free bit string assigned to a Symbol, held as literal
// '0'/'1' text.  This is exactly the form the container stores.
type Code string

// CodeTable maps each Symbol to its Code.
type CodeTable map[Symbol]Code

// GenerateCodes walks the tree depth-first, appending '0' when descending
// left and '1' when descending right, and records the accumulated path as
// each leaf's Code.  Codes are prefix-free by construction: they correspond
// to distinct leaf paths.
//
// A tree consisting of a single leaf gets the one-bit code "0", so that
// every occurrence of the symbol still consumes a bit on decode.
func GenerateCodes(root *Node) CodeTable {
	assert.Assertf(root != nil, "GenerateCodes requires a tree root, got nil")

	codes := make(CodeTable, 16)
	if root.IsLeaf() {
		codes[root.Symbol] = "0"
		return codes
	}

	var walk func(n *Node, path []byte)
	walk = func(n *Node, path []byte) {
		if n.IsLeaf() {
			codes[n.Symbol] = Code(path)
			return
		}
		walk(n.Left, append(path, '0'))
		walk(n.Right, append(path, '1'))
	}
	walk(root, make([]byte, 0, 16))
	return codes
}

// Dump writes a programmer-readable listing of the table, sorted by Symbol,
// to the given writer.
func (t CodeTable) Dump(w io.Writer) (int64, error) {
	symbols := make([]Symbol, 0, len(t))
	for symbol := range t {
		symbols = append(symbols, symbol)
	}
	sort.Slice(symbols, func(i, j int) bool {
		return symbols[i] < symbols[j]
	})

	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for _, symbol := range symbols {
		fmt.Fprintf(&buf, "\t%q: %q\n", rune(symbol), string(t[symbol]))
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
