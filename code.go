package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

// Codeword represents the path from the root of a Tree to one of its leaves.
// Codeword[0] is the first bit, taken at the root.  A true bit selects the
// left child and a false bit selects the right child.
type Codeword []bool

// ParseCodeword parses a string of '0' and '1' characters into a Codeword.
func ParseCodeword(str string) (Codeword, error) {
	cw := make(Codeword, len(str))
	for index := 0; index < len(str); index++ {
		switch str[index] {
		case '0':
			cw[index] = false
		case '1':
			cw[index] = true
		default:
			return nil, fmt.Errorf("huffman: invalid character %q at index %d in codeword %q", str[index], index, str)
		}
	}
	return cw, nil
}

// Len returns the number of bits in this Codeword.
func (cw Codeword) Len() int {
	return len(cw)
}

// HasPrefix returns true iff prefix is a (possibly equal) prefix of cw.
func (cw Codeword) HasPrefix(prefix Codeword) bool {
	if len(prefix) > len(cw) {
		return false
	}
	for index, bit := range prefix {
		if cw[index] != bit {
			return false
		}
	}
	return true
}

// Equal returns true iff both Codewords hold the same bits.
func (cw Codeword) Equal(other Codeword) bool {
	return len(cw) == len(other) && cw.HasPrefix(other)
}

// Clone returns a copy of this Codeword that shares no storage with it.
func (cw Codeword) Clone() Codeword {
	if cw == nil {
		return nil
	}
	out := make(Codeword, len(cw))
	copy(out, cw)
	return out
}

// String returns the bits of this Codeword as '0' and '1' characters.  The
// empty Codeword is rendered as the empty string.
func (cw Codeword) String() string {
	var buf strings.Builder
	buf.Grow(len(cw))
	for _, bit := range cw {
		if bit {
			buf.WriteByte('1')
		} else {
			buf.WriteByte('0')
		}
	}
	return buf.String()
}

// GoString returns the quoted form of String, which keeps the empty
// Codeword visible in debugging output.
func (cw Codeword) GoString() string {
	return strconv.Quote(cw.String())
}

var (
	_ fmt.Stringer   = Codeword(nil)
	_ fmt.GoStringer = Codeword(nil)
)
