package huffman

import (
	"container/heap"
)

// Build constructs the Huffman tree for the given Alphabet.
//
// It returns ErrEmptyAlphabet if the Alphabet has no Symbols, an error
// wrapping ErrNonPositiveWeight if any Symbol has a weight of 0 or less, and
// an error wrapping ErrWeightOverflow if the weights do not sum to a uint64.
//
func Build(alphabet *Alphabet) (*Tree, error) {
	if err := alphabet.Validate(); err != nil {
		return nil, err
	}

	entries := alphabet.entries
	numLeaves := uint(len(entries))

	// Step 1: build a minheap of leaves, numbered in insertion order.

	h := nodeHeap{list: make([]*Node, 0, numLeaves)}
	for index, entry := range entries {
		h.list = append(h.list, newLeaf(uint(index), entry.Symbol, uint64(entry.Weight)))
	}
	h.Init()

	// Step 2: process the minheap by popping two nodes, combining them
	// into a new internal node, and pushing the new node back onto the
	// minheap.  The first node popped becomes the left child.
	//
	// Internal nodes are numbered after all leaves, so that among equal
	// weights the leaves always come out first.

	nextSeq := numLeaves
	for h.Len() > 1 {
		a := heap.Pop(&h).(*Node)
		b := heap.Pop(&h).(*Node)
		heap.Push(&h, newInternal(nextSeq, a, b))
		nextSeq++
	}

	assertf(h.Len() == 1, "expected 1 node in heap, found %d", h.Len())
	root := heap.Pop(&h).(*Node)

	// Step 3: walk the tree once to record every leaf's codeword.

	t := &Tree{
		root:  root,
		codes: make(map[Symbol]Codeword, numLeaves),
		order: make([]Symbol, numLeaves),
	}
	for index, entry := range entries {
		t.order[index] = entry.Symbol
	}
	t.fillCodes(root, make(Codeword, 0, log2uint32(uint32(numLeaves))+1))

	log.Debugf("built tree: %d symbols, %d merges, total weight %d, max depth %d",
		numLeaves, nextSeq-numLeaves, root.Weight(), t.maxDepth)
	return t, nil
}

// type nodeHeap {{{

type nodeHeap struct {
	list []*Node
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.set.Less(b.set) {
		return true
	}
	if b.set.Less(a.set) {
		return false
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(*Node))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nil
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
