package huffcode

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol to its Code.  Symbols that do not appear in
// the tree have a zero-length Code.
type CodeTable [NumSymbols]Code

// DeriveCodes walks the tree rooted at root and records the path to every
// leaf.  A root that is itself a leaf is given the one-bit code "0", so
// that every occurrence of the lone symbol still occupies a bit in the
// coded body.
func DeriveCodes(root Node) CodeTable {
	var table CodeTable
	if root == nil {
		return table
	}
	if leaf, ok := root.(*Leaf); ok {
		table[leaf.Symbol] = MakeCode(1, 0)
		return table
	}

	// The stack holds nodes still to visit together with the path that
	// leads to them.  Right is pushed before Left so that leaves are
	// visited left to right.
	type stackItem struct {
		node Node
		path Code
	}

	stack := []stackItem{{node: root}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch node := top.node.(type) {
		case *Leaf:
			table[node.Symbol] = top.path
		case *Internal:
			stack = append(stack, stackItem{node.Right, top.path.Append(1)})
			stack = append(stack, stackItem{node.Left, top.path.Append(0)})
		default:
			assert.Assertf(false, "unexpected node type %T", top.node)
		}
	}
	return table
}

// MinMaxSize returns the lengths of the shortest and longest non-empty
// codes in the table.
func (table CodeTable) MinMaxSize() (minSize byte, maxSize byte) {
	var hasMinMax bool
	for _, hc := range table {
		size := hc.Size
		if size == 0 {
			continue
		}
		if !hasMinMax {
			hasMinMax = true
			minSize = size
			maxSize = size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}
	}
	return
}

// Dump writes a programmer-readable listing of every assigned code.
func (table CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for symbol, hc := range table {
		if hc.Size != 0 {
			fmt.Fprintf(&buf, "\t%d: %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
