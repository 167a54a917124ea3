package huffman

import (
	"container/heap"
	"errors"
	"math"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// ErrNoSymbols is returned by BuildTree when the frequency table is empty.
var ErrNoSymbols = errors.New("huffman: cannot build a tree from zero symbols")

// BuildTree builds the Huffman tree for the given frequency table and
// returns its root.
//
// The queue is seeded with one leaf per distinct symbol and the two
// lowest-weight nodes are repeatedly merged until one node remains; the
// first node removed becomes the left child.  Equal weights are broken by
// insertion order, with leaves inserted in ascending symbol order, so the
// tree shape is deterministic for a given table.
//
// A table with a single entry yields a lone leaf; see DeriveCodes for the
// code such a tree produces.
func BuildTree(freqs FreqTable) (Node, error) {
	if len(freqs) == 0 {
		return nil, ErrNoSymbols
	}

	symbols := make([]Symbol, 0, len(freqs))
	for s := range freqs {
		symbols = append(symbols, s)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	h := &nodeHeap{list: make([]queuedNode, 0, len(symbols))}
	for _, s := range symbols {
		h.list = append(h.list, queuedNode{node: &Leaf{Sym: s, W: freqs[s]}, seq: h.seq})
		h.seq++
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(h).(queuedNode)
		b := heap.Pop(h).(queuedNode)

		// Saturating addition keeps pathological inputs from wrapping
		// the weight.
		sum := a.node.Weight() + b.node.Weight()
		if sum < a.node.Weight() {
			sum = math.MaxUint32
		}

		h.Insert(&Internal{W: sum, Left: a.node, Right: b.node})
	}

	root := heap.Pop(h).(queuedNode)
	assert.Assertf(h.Len() == 0, "queue not drained: %d nodes left", h.Len())
	return root.node, nil
}

// type queuedNode + type nodeHeap {{{

type queuedNode struct {
	node Node
	seq  uint
}

type nodeHeap struct {
	list []queuedNode
	seq  uint
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

// Insert pushes node with the next sequence number.
func (h *nodeHeap) Insert(node Node) {
	heap.Push(h, queuedNode{node: node, seq: h.seq})
	h.seq++
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	aw, bw := a.node.Weight(), b.node.Weight()
	if aw != bw {
		return aw < bw
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(queuedNode))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
