package huffman

import (
	"errors"
	"fmt"
)

// Errors returned by Decode.
var (
	// ErrTruncatedBits reports a bit string that ends in the middle of a
	// code.
	ErrTruncatedBits = errors.New("huffman: bit string ends mid-code")

	// ErrInvalidBits reports a bit string that cannot have been produced
	// by the given tree's code.
	ErrInvalidBits = errors.New("huffman: bit string does not match tree")
)

// Decode walks the tree against the bit string and returns the original
// symbol sequence.
//
// The walk starts at the root; a 1 bit moves to the left child and a 0 bit
// to the right child, mirroring DeriveCodes.  Reaching a leaf emits its
// symbol and resets the walk to the root.  If the bits run out while the
// walk is away from the root, Decode fails with ErrTruncatedBits rather
// than silently dropping the partial code.
func Decode(bits *BitString, root Node) ([]Symbol, error) {
	if bits.Len() == 0 {
		return nil, nil
	}

	r := bits.Reader()

	// A lone-leaf root means a single-symbol alphabet coded with the
	// one-bit placeholder "0" (see DeriveCodes).
	if leaf, ok := root.(*Leaf); ok {
		out := make([]Symbol, 0, bits.Len())
		for i := 0; i < bits.Len(); i++ {
			b, err := r.ReadBool()
			if err != nil {
				return nil, err
			}
			if b {
				return nil, fmt.Errorf("%w: placeholder bit %d is 1", ErrInvalidBits, i)
			}
			out = append(out, leaf.Sym)
		}
		return out, nil
	}

	// One symbol per bit is the upper bound on the output length.
	out := make([]Symbol, 0, bits.Len())
	cur := root
	for i := 0; i < bits.Len(); i++ {
		b, err := r.ReadBool()
		if err != nil {
			return nil, err
		}

		n, ok := cur.(*Internal)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected node type %T", ErrCorruptTree, cur)
		}
		next := n.Right
		if b {
			next = n.Left
		}
		if next == nil {
			return nil, fmt.Errorf("%w: weight %d", ErrCorruptTree, n.W)
		}

		if leaf, ok := next.(*Leaf); ok {
			out = append(out, leaf.Sym)
			cur = root
		} else {
			cur = next
		}
	}

	if cur != root {
		return nil, fmt.Errorf("%w: %d bits consumed", ErrTruncatedBits, bits.Len())
	}
	return out, nil
}

// Decode decodes the bit string against its paired tree.
func (e *Encoded) Decode() ([]Symbol, error) {
	return Decode(e.Bits, e.Root)
}
