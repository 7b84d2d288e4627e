package huffcode

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// Node is a node in a Huffman tree: either a *Leaf or an *Internal.
type Node interface {
	// Freq returns the total frequency of all leaves under this node.
	Freq() uint64

	isNode()
}

// Leaf is a Node that represents exactly one Symbol.
type Leaf struct {
	Symbol Symbol
	Count  uint64
}

// Freq returns the frequency of the leaf's symbol.
func (leaf *Leaf) Freq() uint64 { return leaf.Count }

func (*Leaf) isNode() {}

// Internal is a Node with exactly two children.  It carries no symbol.
type Internal struct {
	Count uint64
	Left  Node
	Right Node
}

// Freq returns the sum of the frequencies of both children.
func (in *Internal) Freq() uint64 { return in.Count }

func (*Internal) isNode() {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

// IsLeaf returns true iff node is a *Leaf.
func IsLeaf(node Node) bool {
	_, ok := node.(*Leaf)
	return ok
}

// Build constructs the Huffman tree for ft.
//
// The two lowest-frequency nodes are repeatedly merged into a new Internal
// node, the first one removed becoming its Left child.  Nodes of equal
// frequency are removed in the order they were inserted: leaves in
// ascending Symbol order, then each merged node after every node already
// queued.  The result is therefore a pure function of ft, which is what
// lets a decoder rebuild the encoder's tree from the header alone.
//
// If ft is all zeroes, Build returns nil.  If exactly one symbol is
// present, the root is a *Leaf.
func Build(ft FrequencyTable) Node {
	var q mergeQueue
	q.list = make([]queueItem, 0, NumSymbols)
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		if freq := ft[symbol]; freq != 0 {
			q.insert(&Leaf{Symbol: symbol, Count: uint64(freq)})
		}
	}

	if q.Len() == 0 {
		return nil
	}

	for q.Len() > 1 {
		a := q.removeMin()
		b := q.removeMin()
		q.insert(&Internal{Count: a.Freq() + b.Freq(), Left: a, Right: b})
	}

	root := q.removeMin()
	assert.Assertf(root.Freq() == ft.Total(), "root frequency %d != table total %d", root.Freq(), ft.Total())
	return root
}

// type queueItem + type mergeQueue {{{

type queueItem struct {
	node Node
	seq  uint32
}

// mergeQueue orders nodes by ascending frequency, breaking ties by the
// order in which they were inserted.
type mergeQueue struct {
	list    []queueItem
	nextSeq uint32
}

func (q *mergeQueue) insert(node Node) {
	heap.Push(q, queueItem{node: node, seq: q.nextSeq})
	q.nextSeq++
}

func (q *mergeQueue) removeMin() Node {
	assert.Assertf(q.Len() != 0, "removeMin on empty merge queue")
	return heap.Pop(q).(queueItem).node
}

func (q *mergeQueue) Len() int {
	return len(q.list)
}

func (q *mergeQueue) Swap(i, j int) {
	q.list[i], q.list[j] = q.list[j], q.list[i]
}

func (q *mergeQueue) Less(i, j int) bool {
	a, b := q.list[i], q.list[j]
	af, bf := a.node.Freq(), b.node.Freq()
	if af != bf {
		return af < bf
	}
	return a.seq < b.seq
}

func (q *mergeQueue) Push(x interface{}) {
	q.list = append(q.list, x.(queueItem))
}

func (q *mergeQueue) Pop() interface{} {
	last := uint(len(q.list)) - 1
	x := q.list[last]
	q.list[last] = queueItem{}
	q.list = q.list[:last]
	return x
}

var _ heap.Interface = (*mergeQueue)(nil)

// }}}
