package huffman

import (
	"math"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

func TestTree_Dump(t *testing.T) {
	tree := mustBuild(t, sequentialAlphabet(5, 9, 12, 13, 16, 45))

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tWeight() = 100\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tCodeword(\"a\") = \"0011\"\n",
		"\tCodeword(\"b\") = \"0010\"\n",
		"\tCodeword(\"c\") = \"011\"\n",
		"\tCodeword(\"d\") = \"010\"\n",
		"\tCodeword(\"e\") = \"000\"\n",
		"\tCodeword(\"f\") = \"1\"\n",
		"}\n",
	}, "")
	actualDump := tree.DebugString()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	if tree.MinSize() != 1 || tree.MaxSize() != 4 {
		t.Errorf("wrong sizes: MinSize() = %d, MaxSize() = %d", tree.MinSize(), tree.MaxSize())
	}
}

func TestTree_String(t *testing.T) {
	tree := mustBuild(t, sequentialAlphabet(5, 9, 12, 13, 16, 45))

	expectString := "(Huffman tree with 6 symbols, with coded lengths of 1 .. 4 bits)"
	actualString := tree.String()
	if expectString != actualString {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectString, actualString)
	}
}

func TestTree_Stats(t *testing.T) {
	tree := mustBuild(t, MakeAlphabet(map[Symbol]int64{"a": 5, "b": 1, "c": 2, "d": 2}))

	stats := tree.Stats()
	if stats.Symbols != 4 || stats.TotalWeight != 10 || stats.WeightedLength != 18 {
		t.Errorf("wrong stats: %# v", pretty.Formatter(stats))
	}
	if stats.MinLength != 1 || stats.MaxLength != 3 {
		t.Errorf("wrong lengths: %d .. %d", stats.MinLength, stats.MaxLength)
	}
	if math.Abs(stats.AverageLength-1.8) > 1e-9 {
		t.Errorf("wrong average length: %f", stats.AverageLength)
	}
	if stats.Entropy <= 0 || stats.Entropy > stats.AverageLength {
		t.Errorf("entropy %f out of range (0, %f]", stats.Entropy, stats.AverageLength)
	}

	single := mustBuild(t, MakeAlphabet(map[Symbol]int64{"a": 7})).Stats()
	if single.WeightedLength != 0 || single.Entropy != 0 || single.MaxLength != 0 {
		t.Errorf("wrong singleton stats: %# v", pretty.Formatter(single))
	}
}

func TestTree_StatsSaturate(t *testing.T) {
	const w = int64(1) << 62
	tree := mustBuild(t, MakeAlphabet(map[Symbol]int64{"a": w, "b": w, "c": w}))

	stats := tree.Stats()
	if stats.TotalWeight != 3<<62 {
		t.Errorf("wrong total weight: %d", stats.TotalWeight)
	}
	if stats.WeightedLength != math.MaxUint64 {
		t.Errorf("expected saturated weighted length, got %d", stats.WeightedLength)
	}
	if math.Abs(stats.AverageLength-5.0/3.0) > 1e-9 {
		t.Errorf("wrong average length: %f", stats.AverageLength)
	}
}

func TestTree_Outline(t *testing.T) {
	tree := mustBuild(t, MakeAlphabet(map[Symbol]int64{"a": 2, "b": 1, "c": 1}))

	expect := &Outline{
		Weight:  4,
		Symbols: []Symbol{"a", "b", "c"},
		Left:    &Outline{Weight: 2, Symbols: []Symbol{"a"}},
		Right: &Outline{
			Weight:  2,
			Symbols: []Symbol{"b", "c"},
			Left:    &Outline{Weight: 1, Symbols: []Symbol{"b"}},
			Right:   &Outline{Weight: 1, Symbols: []Symbol{"c"}},
		},
	}
	actual := tree.Outline()
	if diff := pretty.Diff(expect, actual); len(diff) != 0 {
		t.Errorf("wrong outline:\n\t%s", strings.Join(diff, "\n\t"))
	}
}
