package gps

import "testing"

func TestBitStreamCollect30(t *testing.T) {
	bs := NewBitStream(30)

	var out []uint32
	bytes := []byte{0xAB, 0xCD, 0xEF, 0x12, 0x34, 0x56, 0x78, 0x9A}
	for _, b := range bytes {
		if v, ok := bs.Collect(NewSymbol(b)); ok {
			out = append(out, v)
		}
	}

	// 8 bytes = 64 bits -> two 30-bit words with 4 bits left over.
	if len(out) != 2 {
		t.Fatalf("expected 2 words, got %d", len(out))
	}

	want0 := uint32(0xABCDEF12) >> 2
	if out[0] != want0 {
		t.Errorf("word 0 = 0x%x, want 0x%x", out[0], want0)
	}
}

// TestBitStreamMsbLsbPaddedPairEquivalence confirms that a 6-bit MsbPadded
// symbol followed by a 6-bit LsbPadded symbol contributes exactly their 12
// significant bits, MsbPadded's 6 low bits first, as one 12-bit word.
func TestBitStreamMsbLsbPaddedPairEquivalence(t *testing.T) {
	// hi carries 6 significant low bits; lo carries 6 significant high bits.
	hi := NewMsbPaddedSymbol(0b00_101101)
	lo := NewLsbPaddedSymbol(0b011010_00)

	bs := NewBitStream(12)
	if _, ok := bs.Collect(hi); ok {
		t.Fatalf("expected no emission after only 6 bits")
	}
	got, ok := bs.Collect(lo)
	if !ok {
		t.Fatalf("expected emission after 12 bits collected")
	}

	want := uint32(0b101101_011010)
	if got != want {
		t.Errorf("got 0b%b, want 0b%b", got, want)
	}
}

func TestBitStreamSurplusCarriesToNextWord(t *testing.T) {
	bs := NewBitStream(10)

	// 3 bytes = 24 bits -> two 10-bit words with 4 bits surplus retained.
	var words []uint32
	for _, b := range []byte{0xFF, 0x00, 0xAA} {
		if v, ok := bs.Collect(NewSymbol(b)); ok {
			words = append(words, v)
		}
	}

	if len(words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(words))
	}
	if bs.collected != 4 {
		t.Errorf("expected 4 surplus bits retained, got %d", bs.collected)
	}
}

func TestBitStreamReset(t *testing.T) {
	bs := NewBitStream(30)
	bs.Collect(NewSymbol(0xFF))
	bs.Reset()
	if bs.collected != 0 || bs.acc != 0 {
		t.Errorf("Reset did not clear accumulator state")
	}
}
