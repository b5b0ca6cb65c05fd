package huffman

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Symbol represents a symbol in an arbitrary alphabet.
type Symbol string

// SymbolSet is an immutable set of Symbols.  The zero value is the empty set.
type SymbolSet struct {
	list []Symbol
}

// MakeSymbolSet constructs a SymbolSet holding the given Symbols.  Duplicates
// are collapsed.
func MakeSymbolSet(symbols ...Symbol) SymbolSet {
	list := make([]Symbol, len(symbols))
	copy(list, symbols)
	slices.Sort(list)
	list = slices.Compact(list)
	return SymbolSet{list: list}
}

// Len returns the number of Symbols in this set.
func (set SymbolSet) Len() int {
	return len(set.list)
}

// Contains returns true iff symbol is a member of this set.
func (set SymbolSet) Contains(symbol Symbol) bool {
	_, found := slices.BinarySearch(set.list, symbol)
	return found
}

// Slice returns the members of this set in ascending order.
func (set SymbolSet) Slice() []Symbol {
	return slices.Clone(set.list)
}

// Union returns a new set holding the members of both sets.
func (set SymbolSet) Union(other SymbolSet) SymbolSet {
	a, b := set.list, other.list
	out := make([]Symbol, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return SymbolSet{list: out}
}

// Disjoint returns true iff the two sets have no members in common.
func (set SymbolSet) Disjoint(other SymbolSet) bool {
	return set.Union(other).Len() == set.Len()+other.Len()
}

// Equal returns true iff both sets have exactly the same members.
func (set SymbolSet) Equal(other SymbolSet) bool {
	return slices.Equal(set.list, other.list)
}

// String returns a programmer-readable representation of this set.
func (set SymbolSet) String() string {
	var buf strings.Builder
	buf.WriteByte('{')
	for index, symbol := range set.list {
		if index > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(string(symbol))
	}
	buf.WriteByte('}')
	return buf.String()
}
