package huffman

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// ErrCodeTooLong is returned by DeriveCodes when the tree is deeper than
// maxCodeSize edges, so that some code would not fit in a Code.
var ErrCodeTooLong = errors.New("huffman: tree deeper than 64 levels")

// CodeTable maps each Symbol of the alphabet to its Code.  No code in the
// table is a prefix of another; this follows from every internal node of
// the tree having exactly two children.
type CodeTable map[Symbol]Code

// DeriveCodes walks the tree once and returns the code table.
//
// Descending to a left child appends a 1 bit, descending to a right child a
// 0 bit.  A lone-leaf root (single-symbol alphabet) gets the one-bit
// placeholder code "0": a zero-length code cannot be concatenated, so the
// degenerate alphabet pays one bit per symbol instead.
//
// DeriveCodes fails with ErrCorruptTree on an internal node with a missing
// child and with ErrCodeTooLong on trees deeper than 64 levels.
func DeriveCodes(root Node) (CodeTable, error) {
	height, err := Height(root)
	if err != nil {
		return nil, err
	}
	if height > maxCodeSize {
		return nil, fmt.Errorf("%w: height %d", ErrCodeTooLong, height)
	}

	table := make(CodeTable)
	if leaf, ok := root.(*Leaf); ok {
		table[leaf.Sym] = MakeCode(1, 0)
		return table, nil
	}

	// Depth-first walk with a reusable path buffer.  The buffer is shared
	// across sibling branches, so each leaf's code is packed out of it
	// before the walk moves on.
	path := make([]bool, height)
	var walk func(n Node, depth int) error
	walk = func(n Node, depth int) error {
		switch n := n.(type) {
		case *Leaf:
			table[n.Sym] = packCode(path[:depth])
			return nil
		case *Internal:
			if n.Left == nil || n.Right == nil {
				return fmt.Errorf("%w: weight %d", ErrCorruptTree, n.W)
			}
			assert.Assertf(depth < len(path), "path buffer overflow at depth %d", depth)
			path[depth] = true
			if err := walk(n.Left, depth+1); err != nil {
				return err
			}
			path[depth] = false
			return walk(n.Right, depth+1)
		default:
			return fmt.Errorf("%w: unexpected node type %T", ErrCorruptTree, n)
		}
	}
	if err := walk(root, 0); err != nil {
		return nil, err
	}
	return table, nil
}

// packCode copies the given prefix of the path buffer into a Code, the
// first bit landing in the most significant position.
func packCode(path []bool) Code {
	var bits uint64
	for _, b := range path {
		bits <<= 1
		if b {
			bits |= 1
		}
	}
	return MakeCode(byte(len(path)), bits)
}

// MinSize is the bit length of the shortest code in the table, or 0 for an
// empty table.
func (t CodeTable) MinSize() byte {
	var min byte
	first := true
	for _, hc := range t {
		if first || hc.Size < min {
			min = hc.Size
			first = false
		}
	}
	return min
}

// MaxSize is the bit length of the longest code in the table, or 0 for an
// empty table.
func (t CodeTable) MaxSize() byte {
	var max byte
	for _, hc := range t {
		if hc.Size > max {
			max = hc.Size
		}
	}
	return max
}

// Dump writes a programmer-readable debugging dump of the table to the
// given writer.
func (t CodeTable) Dump(w io.Writer) (int64, error) {
	symbols := make([]Symbol, 0, len(t))
	for s := range t {
		symbols = append(symbols, s)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.MaxSize())
	for _, s := range symbols {
		fmt.Fprintf(&buf, "\tCode(%d) = %s\n", s, t[s])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
