package gps

import "testing"

func TestDataWordFromBigEndian(t *testing.T) {
	// 0xAABBCCDC >> 2, masked to 30 bits.
	b := [4]byte{0xAA, 0xBB, 0xCC, 0xDC}
	w := DataWordFromBigEndian(b)

	want := (uint32(0xAABBCCDC) >> 2) & wordMask
	if w.Value() != want {
		t.Errorf("DataWordFromBigEndian = 0x%x, want 0x%x", w.Value(), want)
	}
}

func TestDataWordFromLittleEndian(t *testing.T) {
	b := [4]byte{0xDC, 0xCC, 0xBB, 0xAA}
	w := DataWordFromLittleEndian(b)

	want := (uint32(0xAABBCCDC) >> 2) & wordMask
	if w.Value() != want {
		t.Errorf("DataWordFromLittleEndian = 0x%x, want 0x%x", w.Value(), want)
	}
}

func TestDataWordFromUint32Masks(t *testing.T) {
	w := DataWordFromUint32(0xffffffff)
	if w.Value() != wordMask {
		t.Errorf("DataWordFromUint32 = 0x%x, want 0x%x", w.Value(), wordMask)
	}
}

func TestInfoAndParityBitsSplit(t *testing.T) {
	w := DataWord(0x3fffffff) // all 30 bits set
	if w.InfoBits() != 0xffffff {
		t.Errorf("InfoBits() = 0x%x, want 0xffffff", w.InfoBits())
	}
	if w.ParityBits() != 0x3f {
		t.Errorf("ParityBits() = 0x%x, want 0x3f", w.ParityBits())
	}
}

func TestFieldFromMSB(t *testing.T) {
	// Place a known 8-bit pattern at MSB offset 0 (the word's top 8 bits).
	w := DataWord(uint32(0xAB) << 22)
	if got := w.fieldFromMSB(0, 8); got != 0xAB {
		t.Errorf("fieldFromMSB(0, 8) = 0x%x, want 0xab", got)
	}
}
