package huffman

import (
	"errors"
)

var (
	ErrEmptyAlphabet     = errors.New("huffman: empty alphabet")
	ErrNonPositiveWeight = errors.New("huffman: weight must be positive")
	ErrWeightOverflow    = errors.New("huffman: total weight overflows uint64")
	ErrUnknownSymbol     = errors.New("huffman: unknown symbol")
	ErrNotPrefixFree     = errors.New("huffman: code is not prefix-free")
)
