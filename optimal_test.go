package huffman

import (
	"math/rand"
	"testing"
)

// bruteForceCost returns the smallest possible sum of weight × length over
// all prefix-free binary codes for the given weights.  A set of lengths is
// achievable by some prefix-free code iff it satisfies the Kraft inequality,
// so it suffices to enumerate length vectors.
func bruteForceCost(weights []int64) uint64 {
	n := len(weights)
	if n <= 1 {
		return 0
	}

	maxLen := n - 1
	lengths := make([]int, n)
	best := ^uint64(0)

	var recurse func(index int, kraft uint64, cost uint64)
	recurse = func(index int, kraft uint64, cost uint64) {
		if cost >= best {
			return
		}
		if index == n {
			best = cost
			return
		}
		for l := 1; l <= maxLen; l++ {
			k := kraft + uint64(1)<<uint(maxLen-l)
			if k > uint64(1)<<uint(maxLen) {
				continue
			}
			lengths[index] = l
			recurse(index+1, k, cost+uint64(weights[index])*uint64(l))
		}
	}
	recurse(0, 0, 0)
	return best
}

func TestBuild_KnownFourSymbolCase(t *testing.T) {
	weights := map[Symbol]int64{"a": 5, "b": 1, "c": 2, "d": 2}
	tree := mustBuild(t, MakeAlphabet(weights))

	size := func(symbol Symbol) int {
		cw, err := tree.Codeword(symbol)
		if err != nil {
			t.Fatalf("Codeword(%q) failed: %v", symbol, err)
		}
		return cw.Len()
	}

	if n := size("a"); n != 1 {
		t.Errorf("expected codeword for \"a\" to have 1 bit, got %d", n)
	}
	if size("b") < size("c") || size("b") < size("d") {
		t.Errorf("expected \"b\" to be at least as long as \"c\" and \"d\": %d vs %d, %d", size("b"), size("c"), size("d"))
	}

	expect := bruteForceCost([]int64{5, 1, 2, 2})
	actual := tree.Stats().WeightedLength
	if expect != actual {
		t.Errorf("wrong weighted length:\n\texpect: %d\n\tactual: %d", expect, actual)
	}
}

func TestBuild_Optimal(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 300; iter++ {
		n := 1 + rng.Intn(6)
		weights := make([]int64, n)
		for index := range weights {
			weights[index] = 1 + rng.Int63n(20)
		}

		tree := mustBuild(t, sequentialAlphabet(weights...))
		expect := bruteForceCost(weights)
		actual := tree.Stats().WeightedLength
		if expect != actual {
			t.Errorf("weights %v: wrong weighted length:\n\texpect: %d\n\tactual: %d", weights, expect, actual)
		}
	}
}
