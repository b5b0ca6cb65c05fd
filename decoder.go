package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"golang.org/x/exp/slices"
)

// Decoder maps codewords back to Symbols.  It also answers questions about
// incomplete codewords: given a prefix, it reports the shortest and longest
// codeword that could complete it.
type Decoder struct {
	table   map[string]decoderData
	numSyms int
	minSize int
	maxSize int
}

// NewDecoder constructs a Decoder for the code of a Tree.
func NewDecoder(t *Tree) *Decoder {
	d := new(Decoder)
	err := d.Init(t.codes)
	assertf(err == nil, "tree code rejected by decoder: %v", err)
	return d
}

// Init initializes this Decoder from a table of codewords, one per Symbol.
//
// The codewords must form a prefix-free code; if one codeword is a prefix of
// another (or both are equal), Init returns an error wrapping
// ErrNotPrefixFree.  A single Symbol with the empty codeword is permitted,
// as there is no shorter way to encode an alphabet of size 1.
//
func (d *Decoder) Init(codes map[Symbol]Codeword) error {
	numSyms := len(codes)
	if numSyms == 0 {
		*d = Decoder{}
		return nil
	}

	// Visit the Symbols in a fixed order so that errors are reproducible.
	symbols := make([]Symbol, 0, numSyms)
	for symbol := range codes {
		symbols = append(symbols, symbol)
	}
	slices.Sort(symbols)

	// len(table) is approximately n×log2(n) when filled.
	numTableSlots := uint32(numSyms) * log2uint32(uint32(numSyms))

	table := make(map[string]decoderData, numTableSlots)
	var minSize, maxSize int
	for index, symbol := range symbols {
		cw := codes[symbol]
		if err := fillTable(table, symbol, cw); err != nil {
			return err
		}

		size := cw.Len()
		if index == 0 || minSize > size {
			minSize = size
		}
		if maxSize < size {
			maxSize = size
		}
	}

	*d = Decoder{
		table:   table,
		numSyms: numSyms,
		minSize: minSize,
		maxSize: maxSize,
	}
	return nil
}

// Decode attempts to decode a codeword into a Symbol.
//
// If the Decode is completely successful, found is true and minSize ==
// maxSize == cw.Len().
//
// If cw is a proper prefix of one or more codewords, found is false and the
// completed codeword will be between minSize and maxSize bits long.
//
// If cw is not a prefix of any codeword, found is false and minSize ==
// maxSize == 0.
//
func (d *Decoder) Decode(cw Codeword) (symbol Symbol, found bool, minSize int, maxSize int) {
	dd, ok := d.table[cw.String()]
	if !ok {
		return "", false, 0, 0
	}
	return dd.symbol, dd.leaf, dd.minSize, dd.maxSize
}

// MinSize is the bit length of the shortest legal codeword.
func (d *Decoder) MinSize() int {
	return d.minSize
}

// MaxSize is the bit length of the longest legal codeword.
func (d *Decoder) MaxSize() int {
	return d.maxSize
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	keys := make(byCode, 0, len(d.table))
	for key := range d.table {
		keys = append(keys, key)
	}
	keys.Sort()
	for _, key := range keys {
		dd := d.table[key]
		if dd.leaf {
			fmt.Fprintf(&buf, "\tDecode(%q) = {%q, %d, %d}\n", key, dd.symbol, dd.minSize, dd.maxSize)
		} else {
			fmt.Fprintf(&buf, "\tDecode(%q) = {-, %d, %d}\n", key, dd.minSize, dd.maxSize)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the Dump output as a string.
func (d *Decoder) DebugString() string {
	var buf bytes.Buffer
	_, _ = d.Dump(&buf)
	return buf.String()
}

// String returns a brief description of this Decoder.
func (d *Decoder) String() string {
	return fmt.Sprintf("(Huffman decoder with %d symbols, with coded lengths of %d .. %d bits)", d.numSyms, d.minSize, d.maxSize)
}

var _ fmt.Stringer = (*Decoder)(nil)

// Verify checks that every codeword of t decodes back to its own Symbol.
func Verify(t *Tree) error {
	var d Decoder
	if err := d.Init(t.codes); err != nil {
		return err
	}
	for _, symbol := range t.order {
		cw := t.codes[symbol]
		actual, found, _, _ := d.Decode(cw)
		if !found || actual != symbol {
			return fmt.Errorf("huffman: codeword %#v for symbol %q decodes to %q (found=%t)", cw, symbol, actual, found)
		}
	}
	log.Debugf("verified %d codewords", len(t.order))
	return nil
}

type decoderData struct {
	symbol  Symbol
	leaf    bool
	minSize int
	maxSize int
}

func fillTable(table map[string]decoderData, symbol Symbol, cw Codeword) error {
	key := cw.String()
	size := len(key)

	if old, found := table[key]; found {
		if old.leaf {
			return fmt.Errorf("%w: symbols %q and %q share codeword %#v", ErrNotPrefixFree, old.symbol, symbol, cw)
		}
		return fmt.Errorf("%w: codeword %#v for symbol %q is a prefix of a longer codeword", ErrNotPrefixFree, cw, symbol)
	}
	table[key] = decoderData{symbol: symbol, leaf: true, minSize: size, maxSize: size}

	// Walk from the longest proper prefix to the empty prefix, widening
	// the [minSize, maxSize] range of each.

	for n := size - 1; n >= 0; n-- {
		prefix := key[:n]
		dd, found := table[prefix]
		switch {
		case !found:
			dd = decoderData{minSize: size, maxSize: size}
		case dd.leaf:
			return fmt.Errorf("%w: codeword %q for symbol %q is a prefix of %#v for symbol %q", ErrNotPrefixFree, prefix, dd.symbol, cw, symbol)
		default:
			if dd.minSize > size {
				dd.minSize = size
			}
			if dd.maxSize < size {
				dd.maxSize = size
			}
		}
		table[prefix] = dd
	}
	return nil
}

// type byCode {{{

type byCode []string

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

var _ sort.Interface = byCode(nil)

// }}}
