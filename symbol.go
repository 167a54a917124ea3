package huffman

// Symbol represents a symbol in an arbitrary alphabet.  Negative symbols are
// not valid.
type Symbol int32

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// FreqTable maps each distinct Symbol of an input to its number of
// occurrences.
type FreqTable map[Symbol]uint32

// CountFrequencies scans symbols and returns the occurrence count for each
// distinct Symbol.  An empty input yields an empty table.
func CountFrequencies(symbols []Symbol) FreqTable {
	freqs := make(FreqTable)
	for _, s := range symbols {
		freqs[s]++
	}
	return freqs
}

// BytesToSymbols converts raw bytes to Symbols, one Symbol per byte.
func BytesToSymbols(data []byte) []Symbol {
	symbols := make([]Symbol, len(data))
	for i, b := range data {
		symbols[i] = Symbol(b)
	}
	return symbols
}

// SymbolsToBytes converts Symbols back to raw bytes.  Only the low byte of
// each Symbol is kept.
func SymbolsToBytes(symbols []Symbol) []byte {
	data := make([]byte, len(symbols))
	for i, s := range symbols {
		data[i] = byte(s)
	}
	return data
}
