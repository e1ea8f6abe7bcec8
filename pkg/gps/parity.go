package gps

// Parity implements the IS-GPS-200 Hamming-derived convolutional parity
// used on every 30-bit GPS word: six parity bits, each the XOR of one of
// the previous word's last two bits (D29*, D30*) with a fixed subset of the
// current word's 24 information bits.

// PrevBits carries the last two bits (D29*, D30*) of the previously emitted
// word, needed to compute or verify the parity of the next one. The zero
// value is the correct state immediately after synchronization.
type PrevBits struct {
	D29 bool
	D30 bool
}

// infoBit returns bit i (0 = D1, the first transmitted / most significant
// of the 24 information bits) of the given 24-bit information field.
func infoBit(info uint32, i uint) bool {
	return (info>>(23-i))&1 != 0
}

func xorBits(info uint32, idx ...uint) bool {
	v := false
	for _, i := range idx {
		v = v != infoBit(info, i)
	}
	return v
}

func boolToBit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// ComputeParity computes the 6-bit parity field (D25..D30, D25 in the
// highest position) for the given 24-bit information field, chained from
// the previous word's D29*/D30*.
func ComputeParity(info uint32, prev PrevBits) uint8 {
	d25 := prev.D29 != xorBits(info, 0, 1, 2, 4, 5, 9, 10, 11, 12, 13, 16, 17, 19, 22)
	d26 := prev.D30 != xorBits(info, 1, 2, 3, 5, 6, 10, 11, 12, 13, 14, 17, 18, 20, 23)
	d27 := prev.D29 != xorBits(info, 0, 2, 3, 4, 6, 7, 11, 12, 13, 14, 15, 18, 19, 21)
	d28 := prev.D30 != xorBits(info, 1, 3, 4, 5, 7, 8, 12, 13, 14, 15, 16, 19, 20, 22)
	d29 := prev.D30 != xorBits(info, 0, 2, 4, 5, 6, 8, 9, 13, 14, 15, 16, 17, 20, 21, 23)
	d30 := prev.D29 != xorBits(info, 2, 4, 5, 7, 8, 9, 10, 12, 14, 18, 21, 22, 23)

	return boolToBit(d25)<<5 | boolToBit(d26)<<4 | boolToBit(d27)<<3 |
		boolToBit(d28)<<2 | boolToBit(d29)<<1 | boolToBit(d30)
}

// VerifyParity reports whether w's stored low 6 bits match the parity
// computed over its 24 information bits, chained from prev.
func VerifyParity(w DataWord, prev PrevBits) bool {
	return w.ParityBits() == ComputeParity(w.InfoBits(), prev)
}

// NextPrevBits returns the (D29*, D30*) pair to chain into the next word,
// extracted from w's own last two bits (its D29 and D30, i.e. bits 1 and 0
// of the stored value).
func NextPrevBits(w DataWord) PrevBits {
	v := w.Value()
	return PrevBits{
		D29: v&0x02 != 0,
		D30: v&0x01 != 0,
	}
}

// CorrectedInfoBits returns w's 24 information bits after undoing the
// bit-flip-on-parity inversion applied during encoding when the previous
// word's D30* was set. Subframe codecs must read fields through this
// accessor rather than DataWord.InfoBits directly.
func CorrectedInfoBits(w DataWord, prev PrevBits) uint32 {
	info := w.InfoBits()
	if prev.D30 {
		info ^= 0xffffff
	}
	return info
}

// EncodeWord packs a 24-bit information field into a complete 30-bit
// DataWord, applying the "bit-flip on parity" convention (inverting the 24
// information bits when the previous word's D30* is set) and appending the
// chained 6-bit parity.
func EncodeWord(info uint32, prev PrevBits) DataWord {
	info &= 0xffffff
	if prev.D30 {
		info ^= 0xffffff
	}
	parity := ComputeParity(info, prev)
	return DataWord(info<<6 | uint32(parity))
}
