package huffman

import (
	"bytes"
	"fmt"
	"io"
	"math"
	mathbits "math/bits"
)

// Tree is a Huffman tree together with the codeword of each of its Symbols.
// A Tree is immutable, so it is safe for concurrent use.
type Tree struct {
	root     *Node
	codes    map[Symbol]Codeword
	order    []Symbol
	minDepth int
	maxDepth int
}

// Root returns the root Node of the tree.
func (t *Tree) Root() *Node {
	return t.root
}

// Len returns the number of Symbols in the tree.
func (t *Tree) Len() int {
	return len(t.order)
}

// Symbols returns the tree's Symbols in the order of the Alphabet it was
// built from.
func (t *Tree) Symbols() []Symbol {
	out := make([]Symbol, len(t.order))
	copy(out, t.order)
	return out
}

// Codeword returns the codeword for symbol.  The result is the same as
// t.Root().Path(symbol), but is looked up instead of computed.
func (t *Tree) Codeword(symbol Symbol) (Codeword, error) {
	cw, found := t.codes[symbol]
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}
	return cw.Clone(), nil
}

// MinSize is the bit length of the shortest codeword.
func (t *Tree) MinSize() int {
	return t.minDepth
}

// MaxSize is the bit length of the longest codeword.
func (t *Tree) MaxSize() int {
	return t.maxDepth
}

// Stats summarizes the quality of a Huffman code.
type Stats struct {
	// Symbols is the number of Symbols in the code.
	Symbols int

	// TotalWeight is the sum of all Symbol weights.
	TotalWeight uint64

	// WeightedLength is the sum of weight × codeword length over all
	// Symbols.  Huffman codes minimize this value.  It saturates at
	// math.MaxUint64 for weights too large to count exactly.
	WeightedLength uint64

	// AverageLength is WeightedLength / TotalWeight, computed in floating
	// point so that it stays meaningful when WeightedLength saturates.
	AverageLength float64

	// Entropy is the Shannon entropy of the weight distribution, in bits.
	// It is a lower bound for AverageLength.
	Entropy float64

	// MinLength and MaxLength are the shortest and longest codeword lengths.
	MinLength int
	MaxLength int
}

// Stats computes summary statistics for this tree's code.
func (t *Tree) Stats() Stats {
	total := t.root.Weight()
	stats := Stats{
		Symbols:     len(t.order),
		TotalWeight: total,
		MinLength:   t.minDepth,
		MaxLength:   t.maxDepth,
	}
	t.visitLeaves(t.root, 0, func(leaf *Node, depth int) {
		weight := leaf.Weight()
		stats.WeightedLength = addMulSaturating(stats.WeightedLength, weight, uint64(depth))
		p := float64(weight) / float64(total)
		stats.AverageLength += p * float64(depth)
		stats.Entropy -= p * math.Log2(p)
	})
	return stats
}

// Dump writes a programmer-readable debugging dump of the Tree's code to the
// given writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tWeight() = %d\n", t.root.Weight())
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.minDepth)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.maxDepth)
	for _, symbol := range t.order {
		fmt.Fprintf(&buf, "\tCodeword(%q) = %#v\n", symbol, t.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the Dump output as a string.
func (t *Tree) DebugString() string {
	var buf bytes.Buffer
	_, _ = t.Dump(&buf)
	return buf.String()
}

// String returns a brief description of this Tree.
func (t *Tree) String() string {
	return fmt.Sprintf("(Huffman tree with %d symbols, with coded lengths of %d .. %d bits)", len(t.order), t.minDepth, t.maxDepth)
}

var (
	_ fmt.Stringer = (*Tree)(nil)
)

// Outline is a plain-data snapshot of a subtree, suitable for printing with
// reflection-based formatters.
type Outline struct {
	Weight  uint64
	Symbols []Symbol
	Left    *Outline
	Right   *Outline
}

// Outline returns a snapshot of the whole tree.
func (t *Tree) Outline() *Outline {
	return outline(t.root)
}

func outline(n *Node) *Outline {
	if n == nil {
		return nil
	}
	return &Outline{
		Weight:  n.Weight(),
		Symbols: n.Symbols().Slice(),
		Left:    outline(n.left),
		Right:   outline(n.right),
	}
}

func (t *Tree) fillCodes(n *Node, path Codeword) {
	if n.IsLeaf() {
		assertf(n.Symbols().Len() == 1, "leaf holds %d symbols", n.Symbols().Len())
		symbol := n.set.Symbols.list[0]
		t.codes[symbol] = path.Clone()
		depth := len(path)
		if len(t.codes) == 1 || depth < t.minDepth {
			t.minDepth = depth
		}
		if depth > t.maxDepth {
			t.maxDepth = depth
		}
		return
	}
	assertf(n.right != nil, "internal node without right child")
	t.fillCodes(n.left, append(path, true))
	t.fillCodes(n.right, append(path, false))
}

func addMulSaturating(acc uint64, x uint64, y uint64) uint64 {
	hi, lo := mathbits.Mul64(x, y)
	if hi != 0 {
		return math.MaxUint64
	}
	sum, carry := mathbits.Add64(acc, lo, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

func (t *Tree) visitLeaves(n *Node, depth int, fn func(*Node, int)) {
	if n.IsLeaf() {
		fn(n, depth)
		return
	}
	t.visitLeaves(n.left, depth+1, fn)
	t.visitLeaves(n.right, depth+1, fn)
}
