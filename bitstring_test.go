package huffman

import (
	"bytes"
	"testing"
)

func TestBitString(t *testing.T) {
	bs := NewBitString([]byte{0xa5, 0x80}, 9)

	if bs.Len() != 9 {
		t.Errorf("expected 9 bits, got %d", bs.Len())
	}
	if !bytes.Equal(bs.Bytes(), []byte{0xa5, 0x80}) {
		t.Errorf("wrong bytes: %#v", bs.Bytes())
	}

	expectBits := []bool{true, false, true, false, false, true, false, true, true}
	for i, expect := range expectBits {
		if actual := bs.Bit(i); actual != expect {
			t.Errorf("bit %d: expected %v, got %v", i, expect, actual)
		}
	}

	if expect, actual := `"101001011"`, bs.String(); expect != actual {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}

func TestBitString_Reader(t *testing.T) {
	bs := NewBitString([]byte{0b11010000}, 4)
	r := bs.Reader()
	expectBits := []bool{true, true, false, true}
	for i, expect := range expectBits {
		actual, err := r.ReadBool()
		if err != nil {
			t.Fatalf("ReadBool failed at bit %d: %v", i, err)
		}
		if actual != expect {
			t.Errorf("bit %d: expected %v, got %v", i, expect, actual)
		}
	}
}
