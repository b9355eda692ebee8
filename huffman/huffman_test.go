package huffman

import (
	"bytes"
	"testing"
)

func TestRoundTripVariedInputs(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte{},
		[]byte("a"),
		bytes.Repeat([]byte("a"), 100),
		[]byte("the quick brown fox jumps over the lazy dog"),
		bytes.Repeat([]byte("mississippi river"), 64),
		func() []byte {
			b := make([]byte, 4096)
			for i := range b {
				b[i] = byte(i)
			}
			return b
		}(),
	}

	for i, in := range inputs {
		encoded, err := Compress(in)
		if err != nil {
			t.Fatalf("case %d: Compress: %v", i, err)
		}
		decoded, err := Decompress(encoded)
		if err != nil {
			t.Fatalf("case %d: Decompress: %v", i, err)
		}
		if !bytes.Equal(decoded, in) {
			t.Fatalf("case %d: round trip mismatch: got=%q want=%q", i, decoded, in)
		}
	}
}

// TestS6HuffmanRoundTrip checks that the encoded size is strictly smaller
// than the input for a sufficiently compressible input.
func TestS6HuffmanRoundTrip(t *testing.T) {
	src := bytes.Repeat([]byte("mississippi river"), 64)

	encoded, err := Compress(src)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	decoded, err := Decompress(encoded)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(decoded, src) {
		t.Fatal("round trip mismatch")
	}
	if len(encoded) >= len(src) {
		t.Fatalf("expected compression: encoded=%d src=%d", len(encoded), len(src))
	}
}

func TestHeaderLayout(t *testing.T) {
	src := []byte("header layout check")
	encoded, err := Compress(src)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	if len(encoded) < headerSize {
		t.Fatalf("frame shorter than fixed header: %d", len(encoded))
	}
}

func TestDecompressRejectsShortFrame(t *testing.T) {
	_, err := Decompress(make([]byte, headerSize-1))
	if err != ErrCorruptFrame {
		t.Fatalf("expected ErrCorruptFrame, got %v", err)
	}
}

func TestDecompressRejectsOversizedBitCount(t *testing.T) {
	src := []byte("short")
	encoded, err := Compress(src)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	corrupt := append([]byte{}, encoded...)
	corrupt[0], corrupt[1], corrupt[2], corrupt[3] = 0xFF, 0xFF, 0xFF, 0xFF

	_, err = Decompress(corrupt)
	if err != ErrCorruptFrame {
		t.Fatalf("expected ErrCorruptFrame, got %v", err)
	}
}

// TestCanonicalityFromLengthsAlone asserts that decoding the length table
// alone reproduces the exact code strings used during encode (spec law 10).
func TestCanonicalityFromLengthsAlone(t *testing.T) {
	src := []byte("canonical code reconstruction test payload")
	var freq [256]uint64
	for _, b := range src {
		freq[b]++
	}
	lengths := buildLengths(&freq)
	wantCodes := canonicalCodes(lengths)

	encoded, err := Compress(src)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	gotLengths := decodeLengthTable(encoded[bitCountSize:headerSize])
	gotCodes := canonicalCodes(gotLengths)

	if len(gotCodes) != len(wantCodes) {
		t.Fatalf("code count mismatch: got=%d want=%d", len(gotCodes), len(wantCodes))
	}
	for i := range wantCodes {
		if gotCodes[i] != wantCodes[i] {
			t.Fatalf("code %d mismatch: got=%+v want=%+v", i, gotCodes[i], wantCodes[i])
		}
	}
}

func TestLengthLimitingBoundsAllCodes(t *testing.T) {
	// A Fibonacci-weighted frequency distribution is the canonical way to
	// force a naive Huffman tree past 15 bits of depth.
	var freq [256]uint64
	a, b := uint64(1), uint64(1)
	for sym := 0; sym < 32; sym++ {
		freq[sym] = a
		a, b = b, a+b
	}

	lengths := buildLengths(&freq)
	for sym, l := range lengths {
		if l > maxCodeLength {
			t.Fatalf("symbol %d has length %d, exceeds max %d", sym, l, maxCodeLength)
		}
	}

	// The resulting lengths must still satisfy the Kraft inequality.
	var kraft float64
	for _, l := range lengths {
		if l > 0 {
			kraft += 1.0 / float64(int(1)<<uint(l))
		}
	}
	if kraft > 1.0+1e-9 {
		t.Fatalf("Kraft inequality violated: sum=%v", kraft)
	}
}

func TestSingleDistinctByte(t *testing.T) {
	src := bytes.Repeat([]byte{0x42}, 50)
	encoded, err := Compress(src)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	decoded, err := Decompress(encoded)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(decoded, src) {
		t.Fatal("round trip mismatch for single distinct byte")
	}
}
