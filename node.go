package huffman

import (
	"errors"
	"fmt"
)

// ErrCorruptTree is returned when a traversal reaches an internal node with
// a missing child.  Trees produced by BuildTree never trigger it; the check
// exists because callers may hand Decode and DeriveCodes a tree built
// elsewhere.
var ErrCorruptTree = errors.New("huffman: internal node with missing child")

// Node is one node of a Huffman tree.  Exactly two types implement it:
// *Leaf and *Internal.
type Node interface {
	// Weight is the aggregate frequency represented by this node: the
	// symbol's own count for a Leaf, the sum of both children for an
	// Internal.
	Weight() uint32
}

// Leaf is a leaf node carrying exactly one Symbol.
type Leaf struct {
	Sym Symbol
	W   uint32
}

// Weight returns the leaf symbol's input frequency.
func (l *Leaf) Weight() uint32 { return l.W }

// Internal is an inner node owning exactly two children.
type Internal struct {
	W     uint32
	Left  Node
	Right Node
}

// Weight returns the sum of both children's weights.
func (n *Internal) Weight() uint32 { return n.W }

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

// Height returns the number of edges on the longest root-to-leaf path.  A
// lone leaf has height 0.
func Height(root Node) (int, error) {
	switch n := root.(type) {
	case *Leaf:
		return 0, nil
	case *Internal:
		if n.Left == nil || n.Right == nil {
			return 0, fmt.Errorf("%w: weight %d", ErrCorruptTree, n.W)
		}
		hl, err := Height(n.Left)
		if err != nil {
			return 0, err
		}
		hr, err := Height(n.Right)
		if err != nil {
			return 0, err
		}
		if hr > hl {
			hl = hr
		}
		return 1 + hl, nil
	default:
		return 0, fmt.Errorf("%w: unexpected node type %T", ErrCorruptTree, root)
	}
}
