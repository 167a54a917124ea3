package huffman

import (
	"errors"
	"fmt"
	"testing"

	"github.com/kr/pretty"
)

// scenarioInput is the worked example used throughout the tests.  Its
// frequency counts are A=5, B=1, C=6, D=3.
const scenarioInput = "BCAADDDCCACACAC"

func scenarioSymbols() []Symbol {
	return BytesToSymbols([]byte(scenarioInput))
}

func scenarioTree(t *testing.T) Node {
	t.Helper()
	root, err := BuildTree(CountFrequencies(scenarioSymbols()))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	return root
}

// renderTree flattens a tree into a parenthesized string: leaves as
// "<sym>:<weight>", internal nodes as "(<left> <right>):<weight>".
func renderTree(n Node) string {
	switch n := n.(type) {
	case *Leaf:
		return fmt.Sprintf("%c:%d", rune(n.Sym), n.W)
	case *Internal:
		return fmt.Sprintf("(%s %s):%d", renderTree(n.Left), renderTree(n.Right), n.W)
	default:
		return fmt.Sprintf("?%T", n)
	}
}

func TestCountFrequencies(t *testing.T) {
	expect := FreqTable{'A': 5, 'B': 1, 'C': 6, 'D': 3}
	actual := CountFrequencies(scenarioSymbols())
	if diff := pretty.Diff(expect, actual); len(diff) != 0 {
		t.Errorf("wrong frequencies: %v", diff)
	}
}

func TestCountFrequencies_Empty(t *testing.T) {
	actual := CountFrequencies(nil)
	if len(actual) != 0 {
		t.Errorf("expected empty table, got %# v", pretty.Formatter(actual))
	}
}

func TestBuildTree(t *testing.T) {
	root := scenarioTree(t)

	// Merge order: B+D -> 4, that+A -> 9, C+that -> 15.  The first node
	// removed becomes the left child.
	expect := "(C:6 ((B:1 D:3):4 A:5):9):15"
	actual := renderTree(root)
	if expect != actual {
		t.Errorf("wrong tree:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}

func TestBuildTree_Empty(t *testing.T) {
	_, err := BuildTree(FreqTable{})
	if !errors.Is(err, ErrNoSymbols) {
		t.Errorf("expected ErrNoSymbols, got %v", err)
	}
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	root, err := BuildTree(FreqTable{'A': 4})
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	if expect, actual := "A:4", renderTree(root); expect != actual {
		t.Errorf("wrong tree:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
	height, err := Height(root)
	if err != nil {
		t.Fatalf("Height failed: %v", err)
	}
	if height != 0 {
		t.Errorf("expected height 0, got %d", height)
	}
}

func TestBuildTree_TieBreak(t *testing.T) {
	// All weights equal: the shape is pinned by insertion order, with
	// leaves inserted in ascending symbol order.
	root, err := BuildTree(FreqTable{'A': 1, 'B': 1, 'C': 1, 'D': 1})
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	expect := "((A:1 B:1):2 (C:1 D:1):2):4"
	actual := renderTree(root)
	if expect != actual {
		t.Errorf("wrong tree:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}

func TestBuildTree_WeightConservation(t *testing.T) {
	inputs := []string{
		scenarioInput,
		"abracadabra",
		"mississippi",
		"the quick brown fox jumps over the lazy dog",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			symbols := BytesToSymbols([]byte(input))
			root, err := BuildTree(CountFrequencies(symbols))
			if err != nil {
				t.Fatalf("BuildTree failed: %v", err)
			}
			checkWeights(t, root)
			if root.Weight() != uint32(len(symbols)) {
				t.Errorf("expected root weight %d, got %d", len(symbols), root.Weight())
			}
		})
	}
}

func checkWeights(t *testing.T, n Node) {
	t.Helper()
	in, ok := n.(*Internal)
	if !ok {
		return
	}
	if sum := in.Left.Weight() + in.Right.Weight(); sum != in.W {
		t.Errorf("weight %d != %d + %d", in.W, in.Left.Weight(), in.Right.Weight())
	}
	checkWeights(t, in.Left)
	checkWeights(t, in.Right)
}

func TestHeight(t *testing.T) {
	root := scenarioTree(t)
	height, err := Height(root)
	if err != nil {
		t.Fatalf("Height failed: %v", err)
	}
	if height != 3 {
		t.Errorf("expected height 3, got %d", height)
	}
}

func TestHeight_Corrupt(t *testing.T) {
	bad := &Internal{W: 7, Left: &Leaf{Sym: 'A', W: 7}}
	_, err := Height(bad)
	if !errors.Is(err, ErrCorruptTree) {
		t.Errorf("expected ErrCorruptTree, got %v", err)
	}
}
