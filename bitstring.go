package huffman

import (
	"bytes"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// BitString is a sequence of bits packed into bytes, most significant bit
// first.  The final byte is zero-padded.  A BitString is read-only once
// constructed.
type BitString struct {
	data []byte
	n    int
}

// NewBitString wraps byte-packed bits.  The caller asserts that exactly n
// bits of data are valid; n must not exceed 8*len(data).
func NewBitString(data []byte, n int) *BitString {
	assert.Assertf(n >= 0 && n <= 8*len(data), "bit count %d does not fit in %d bytes", n, len(data))
	return &BitString{data: data, n: n}
}

// Len returns the number of valid bits.
func (bs *BitString) Len() int {
	return bs.n
}

// Bytes returns the packed bits.  The returned slice must not be modified.
func (bs *BitString) Bytes() []byte {
	return bs.data
}

// Bit reports the value of bit i, counting from the first encoded bit.
func (bs *BitString) Bit(i int) bool {
	assert.Assertf(i >= 0 && i < bs.n, "bit index %d out of range [0, %d)", i, bs.n)
	return bs.data[i>>3]&(0x80>>uint(i&7)) != 0
}

// Reader returns a bit reader positioned at the first bit.
func (bs *BitString) Reader() *bitio.Reader {
	return bitio.NewReader(bytes.NewReader(bs.data))
}

// String returns the bits as a quoted "0"/"1" string.
func (bs *BitString) String() string {
	var sb strings.Builder
	sb.Grow(bs.n + 2)
	sb.WriteByte('"')
	for i := 0; i < bs.n; i++ {
		if bs.Bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
