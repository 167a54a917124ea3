package huffman

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Errors returned by Encode.
var (
	ErrUnknownSymbol = errors.New("huffman: symbol not present in code table")
	ErrEmptyCode     = errors.New("huffman: zero-length code cannot be concatenated")
)

// Encode maps each input symbol through the code table and concatenates the
// codes, in input order, into one bit string.
//
// Encode fails with ErrUnknownSymbol if a symbol has no table entry and
// with ErrEmptyCode if a table entry has zero bits.  Neither occurs when
// the table was derived from the input's own frequency counts.
func Encode(symbols []Symbol, table CodeTable) (*BitString, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)

	var n int
	for i, s := range symbols {
		hc, found := table[s]
		if !found {
			return nil, fmt.Errorf("%w: symbol %d at offset %d", ErrUnknownSymbol, s, i)
		}
		if hc.Size == 0 {
			return nil, fmt.Errorf("%w: symbol %d", ErrEmptyCode, s)
		}
		assert.Assertf(hc.Size >= 64 || hc.Bits>>hc.Size == 0,
			"code for symbol %d has bits set beyond its size %d", s, hc.Size)
		if err := w.WriteBits(hc.Bits, hc.Size); err != nil {
			return nil, err
		}
		n += int(hc.Size)
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return NewBitString(buf.Bytes(), n), nil
}

// Encoded pairs an encoded bit string with the tree that produced it.  The
// tree is not serialized into the bits; both values must travel together
// for decoding to work.
type Encoded struct {
	Bits *BitString
	Root Node
}

// Compress runs the whole pipeline on symbols: count frequencies, build the
// tree, derive the code table, encode.  It fails with ErrNoSymbols on empty
// input.
func Compress(symbols []Symbol) (*Encoded, error) {
	root, err := BuildTree(CountFrequencies(symbols))
	if err != nil {
		return nil, err
	}
	table, err := DeriveCodes(root)
	if err != nil {
		return nil, err
	}
	bits, err := Encode(symbols, table)
	if err != nil {
		return nil, err
	}
	return &Encoded{Bits: bits, Root: root}, nil
}
