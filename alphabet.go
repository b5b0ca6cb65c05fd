package huffman

import (
	"fmt"
	mathbits "math/bits"

	"golang.org/x/exp/slices"
)

// Entry is one (Symbol, weight) pair of an Alphabet.
type Entry struct {
	Symbol Symbol
	Weight int64
}

// Alphabet maps Symbols to their weights, remembering the order in which
// Symbols were first added.  The zero value is an empty Alphabet ready to
// use.
type Alphabet struct {
	entries []Entry
	index   map[Symbol]int
}

// NewAlphabet returns an empty Alphabet.
func NewAlphabet() *Alphabet {
	return &Alphabet{}
}

// MakeAlphabet constructs an Alphabet from a map.  Since maps are unordered,
// the Symbols are added in ascending order.
func MakeAlphabet(weights map[Symbol]int64) *Alphabet {
	symbols := make([]Symbol, 0, len(weights))
	for symbol := range weights {
		symbols = append(symbols, symbol)
	}
	slices.Sort(symbols)

	a := &Alphabet{
		entries: make([]Entry, 0, len(symbols)),
		index:   make(map[Symbol]int, len(symbols)),
	}
	for _, symbol := range symbols {
		a.Set(symbol, weights[symbol])
	}
	return a
}

// Set assigns a weight to a Symbol.  If the Symbol is already present, its
// weight is replaced but it keeps its original position.
func (a *Alphabet) Set(symbol Symbol, weight int64) {
	if a.index == nil {
		a.index = make(map[Symbol]int)
	}
	if index, found := a.index[symbol]; found {
		a.entries[index].Weight = weight
		return
	}
	a.index[symbol] = len(a.entries)
	a.entries = append(a.entries, Entry{Symbol: symbol, Weight: weight})
}

// Len returns the number of distinct Symbols in this Alphabet.
func (a *Alphabet) Len() int {
	if a == nil {
		return 0
	}
	return len(a.entries)
}

// Weight returns the weight assigned to symbol, if any.
func (a *Alphabet) Weight(symbol Symbol) (int64, bool) {
	if a == nil {
		return 0, false
	}
	index, found := a.index[symbol]
	if !found {
		return 0, false
	}
	return a.entries[index].Weight, true
}

// Entries returns a copy of this Alphabet's entries in insertion order.
func (a *Alphabet) Entries() []Entry {
	if a == nil {
		return nil
	}
	return slices.Clone(a.entries)
}

// Validate checks that this Alphabet can be used to Build a Tree.  Every
// weight must be positive, and the sum of all weights must fit in a uint64,
// since that sum becomes the weight of the root.
func (a *Alphabet) Validate() error {
	if a.Len() == 0 {
		return ErrEmptyAlphabet
	}
	var total uint64
	for _, entry := range a.entries {
		if err := CheckWeight(entry.Symbol, entry.Weight); err != nil {
			return err
		}
		sum, carry := mathbits.Add64(total, uint64(entry.Weight), 0)
		if carry != 0 {
			return fmt.Errorf("%w: adding weight %d of symbol %q to %d", ErrWeightOverflow, entry.Weight, entry.Symbol, total)
		}
		total = sum
	}
	return nil
}

// CheckWeight returns an error wrapping ErrNonPositiveWeight if weight is not
// usable for symbol.
func CheckWeight(symbol Symbol, weight int64) error {
	if weight <= 0 {
		return fmt.Errorf("%w: symbol %q has weight %d", ErrNonPositiveWeight, symbol, weight)
	}
	return nil
}
