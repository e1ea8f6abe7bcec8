package gps

// Ephemeris1 is Frame 1: SV clock correction and broadcast health.
type Ephemeris1 struct {
	WeekNumber  uint16
	CAOrPOnL2   uint8
	URAIndex    uint8
	SVHealth    uint8
	IODC        uint16
	L2PDataFlag bool
	Reserved23  uint32 // word 4 bits 2..24
	Reserved24a uint32 // word 5
	Reserved24b uint32 // word 6
	Reserved16  uint16 // word 7 bits 1..16

	TGD float64 // seconds, scale 2^-31
	Toc uint32  // seconds, scale 16
	Af2 float64 // s/s^2, scale 2^-55
	Af1 float64 // s/s, scale 2^-43
	Af0 float64 // s, scale 2^-31
}

func (e Ephemeris1) FrameID() FrameID { return FrameEphemeris1 }

// DecodeEphemeris1 decodes words 3..10 (RawWords[0..7]) as Frame 1.
func DecodeEphemeris1(w RawWords) Ephemeris1 {
	iodcMSB := bitsMSB(w[0], 22, 2)
	iodcLSB := bitsMSB(w[5], 0, 8)

	return Ephemeris1{
		WeekNumber:  uint16(bitsMSB(w[0], 0, 10)),
		CAOrPOnL2:   uint8(bitsMSB(w[0], 10, 2)),
		URAIndex:    uint8(bitsMSB(w[0], 12, 4)),
		SVHealth:    uint8(bitsMSB(w[0], 16, 6)),
		IODC:        uint16(joinSplit(iodcMSB, iodcLSB, 8)),
		L2PDataFlag: bitsMSB(w[1], 0, 1) != 0,
		Reserved23:  bitsMSB(w[1], 1, 23),
		Reserved24a: w[2],
		Reserved24b: w[3],
		Reserved16:  uint16(bitsMSB(w[4], 0, 16)),
		TGD:         DecodeSignedScaled(bitsMSB(w[4], 16, 8), 8, -31),
		Toc:         bitsMSB(w[5], 8, 16) * 16,
		Af2:         DecodeSignedScaled(bitsMSB(w[6], 0, 8), 8, -55),
		Af1:         DecodeSignedScaled(bitsMSB(w[6], 8, 16), 16, -43),
		Af0:         DecodeSignedScaled(bitsMSB(w[7], 0, 22), 22, -31),
	}
}

// ToWords re-flattens Ephemeris1 into its 8 information words.
func (e Ephemeris1) ToWords() RawWords {
	var w RawWords

	iodc := uint32(e.IODC)
	iodcMSB := splitMSB(iodc, 10, 2)
	iodcLSB := splitLSB(iodc, 10, 8)

	w[0] = putBitsMSB(w[0], 0, 10, uint32(e.WeekNumber))
	w[0] = putBitsMSB(w[0], 10, 2, uint32(e.CAOrPOnL2))
	w[0] = putBitsMSB(w[0], 12, 4, uint32(e.URAIndex))
	w[0] = putBitsMSB(w[0], 16, 6, uint32(e.SVHealth))
	w[0] = putBitsMSB(w[0], 22, 2, iodcMSB)

	if e.L2PDataFlag {
		w[1] = putBitsMSB(w[1], 0, 1, 1)
	}
	w[1] = putBitsMSB(w[1], 1, 23, e.Reserved23)

	w[2] = e.Reserved24a
	w[3] = e.Reserved24b

	w[4] = putBitsMSB(w[4], 0, 16, uint32(e.Reserved16))
	w[4] = putBitsMSB(w[4], 16, 8, EncodeSignedScaled(e.TGD, 8, -31))

	w[5] = putBitsMSB(w[5], 0, 8, iodcLSB)
	w[5] = putBitsMSB(w[5], 8, 16, (e.Toc/16)&0xffff)

	w[6] = putBitsMSB(w[6], 0, 8, EncodeSignedScaled(e.Af2, 8, -55))
	w[6] = putBitsMSB(w[6], 8, 16, EncodeSignedScaled(e.Af1, 16, -43))

	w[7] = putBitsMSB(w[7], 0, 22, EncodeSignedScaled(e.Af0, 22, -31))

	return w
}
