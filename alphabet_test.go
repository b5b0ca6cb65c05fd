package huffman

import (
	"errors"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

func TestAlphabet_Set(t *testing.T) {
	a := NewAlphabet()
	a.Set("x", 3)
	a.Set("y", 1)
	a.Set("x", 7)

	expect := []Entry{{Symbol: "x", Weight: 7}, {Symbol: "y", Weight: 1}}
	actual := a.Entries()
	if diff := pretty.Diff(expect, actual); len(diff) != 0 {
		t.Errorf("wrong entries:\n\t%s", strings.Join(diff, "\n\t"))
	}
	if weight, found := a.Weight("x"); !found || weight != 7 {
		t.Errorf("Weight(\"x\") = %d, %t", weight, found)
	}
	if _, found := a.Weight("z"); found {
		t.Errorf("Weight(\"z\") found")
	}
}

func TestAlphabet_ZeroValue(t *testing.T) {
	var a Alphabet
	a.Set("q", 2)
	if a.Len() != 1 {
		t.Errorf("expected 1 symbol, got %d", a.Len())
	}
}

func TestMakeAlphabet_SortsSymbols(t *testing.T) {
	a := MakeAlphabet(map[Symbol]int64{"c": 1, "a": 2, "b": 3})

	expect := []Entry{{Symbol: "a", Weight: 2}, {Symbol: "b", Weight: 3}, {Symbol: "c", Weight: 1}}
	actual := a.Entries()
	if diff := pretty.Diff(expect, actual); len(diff) != 0 {
		t.Errorf("wrong entries:\n\t%s", strings.Join(diff, "\n\t"))
	}
}

func TestAlphabet_Validate(t *testing.T) {
	err := MakeAlphabet(map[Symbol]int64{"a": 1, "b": -1}).Validate()
	if !errors.Is(err, ErrNonPositiveWeight) {
		t.Errorf("expected %v, got %v", ErrNonPositiveWeight, err)
	}
	if !strings.Contains(err.Error(), `"b"`) {
		t.Errorf("expected error to name the symbol, got %v", err)
	}
}
