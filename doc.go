// Package huffman implements classic tree-form Huffman coding: it counts
// symbol frequencies, builds the prefix-free code tree on a min-priority
// queue, derives per-symbol bit codes by walking the tree, and encodes and
// decodes symbol sequences against that tree.
//
// The tree is the single shared artifact between encode and decode.  It is
// never serialized into the bit string; an Encoded value keeps the two side
// by side in memory.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffman
