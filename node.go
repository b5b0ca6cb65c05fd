package huffman

import (
	"fmt"
)

// WeightedSet is the payload of every Node: the Symbols reachable below the
// Node and the sum of their weights.
type WeightedSet struct {
	Weight  uint64
	Symbols SymbolSet
}

// Less orders WeightedSets by weight alone.
func (ws WeightedSet) Less(other WeightedSet) bool {
	return ws.Weight < other.Weight
}

// Equal compares two WeightedSets structurally.
func (ws WeightedSet) Equal(other WeightedSet) bool {
	return ws.Weight == other.Weight && ws.Symbols.Equal(other.Symbols)
}

// String returns a programmer-readable representation of this WeightedSet.
func (ws WeightedSet) String() string {
	return fmt.Sprintf("%d%v", ws.Weight, ws.Symbols)
}

// Node is a node of a Huffman tree.  A Node is either a leaf, with no
// children, or an internal node with exactly two.  Nodes are never modified
// once constructed.
type Node struct {
	set   WeightedSet
	left  *Node
	right *Node
	seq   uint
}

func newLeaf(seq uint, symbol Symbol, weight uint64) *Node {
	return &Node{
		set: WeightedSet{Weight: weight, Symbols: MakeSymbolSet(symbol)},
		seq: seq,
	}
}

func newInternal(seq uint, left *Node, right *Node) *Node {
	sum := left.set.Weight + right.set.Weight
	assertf(sum >= left.set.Weight, "weight overflow: %d + %d", left.set.Weight, right.set.Weight)
	assertf(left.set.Symbols.Disjoint(right.set.Symbols), "children share symbols: %v and %v", left.set.Symbols, right.set.Symbols)
	return &Node{
		set:   WeightedSet{Weight: sum, Symbols: left.set.Symbols.Union(right.set.Symbols)},
		left:  left,
		right: right,
		seq:   seq,
	}
}

// Set returns the WeightedSet carried by this Node.
func (n *Node) Set() WeightedSet {
	return n.set
}

// Weight returns the total weight of the Symbols below this Node.
func (n *Node) Weight() uint64 {
	return n.set.Weight
}

// Symbols returns the Symbols below this Node.
func (n *Node) Symbols() SymbolSet {
	return n.set.Symbols
}

// Left returns the left child, or nil for a leaf.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right child, or nil for a leaf.
func (n *Node) Right() *Node {
	return n.right
}

// Seq returns the sequence number used to break ties between Nodes of equal
// weight.
func (n *Node) Seq() uint {
	return n.seq
}

// IsLeaf returns true iff this Node has no children.
func (n *Node) IsLeaf() bool {
	return n.left == nil
}

// Path walks down from this Node to the leaf holding symbol and returns the
// bits taken along the way.  At each internal node, the bit is 1 if symbol
// lies in the left subtree and 0 otherwise.
func (n *Node) Path(symbol Symbol) (Codeword, error) {
	if !n.set.Symbols.Contains(symbol) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}

	path := make(Codeword, 0, 8)
	for ptr := n; !ptr.IsLeaf() && ptr.set.Symbols.Contains(symbol); {
		bit := ptr.left.set.Symbols.Contains(symbol)
		path = append(path, bit)
		if bit {
			ptr = ptr.left
		} else {
			ptr = ptr.right
		}
	}
	return path, nil
}
