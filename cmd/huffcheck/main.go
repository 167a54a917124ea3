// Command huffcheck compresses a file with the huffman package, decompresses
// the result, and reports whether the round trip reproduced the input.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/prefixfree/huffman"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("huffcheck: ")

	dumpTable := flag.Bool("t", false, "dump the derived code table")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: huffcheck [-t] <file>")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	name := flag.Arg(0)

	data, err := os.ReadFile(name)
	if err != nil {
		log.Fatal(err)
	}
	symbols := huffman.BytesToSymbols(data)

	start := time.Now()
	enc, err := huffman.Compress(symbols)
	if err != nil {
		log.Fatal(err)
	}
	encodeTime := time.Since(start)

	start = time.Now()
	decoded, err := enc.Decode()
	if err != nil {
		log.Fatal(err)
	}
	decodeTime := time.Since(start)

	if *dumpTable {
		table, err := huffman.DeriveCodes(enc.Root)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := table.Dump(os.Stdout); err != nil {
			log.Fatal(err)
		}
	}

	inBits := 8 * len(data)
	outBits := enc.Bits.Len()
	fmt.Printf("%s: %d symbols, %d -> %d bits (%.1f%%), encode %v, decode %v\n",
		name, len(symbols), inBits, outBits,
		100*float64(outBits)/float64(inBits), encodeTime, decodeTime)

	if !bytes.Equal(data, huffman.SymbolsToBytes(decoded)) {
		log.Fatal("round trip MISMATCH")
	}
	fmt.Println("round trip OK")
}
