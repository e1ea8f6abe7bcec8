package gps

// Ephemeris2 is Frame 2: Keplerian orbital elements, first half.
type Ephemeris2 struct {
	IODE         uint8
	Crs          float64 // m, scale 2^-5
	DeltaN       float64 // semicircles/s, scale 2^-43
	M0           float64 // semicircles, scale 2^-31
	Cuc          float64 // rad, scale 2^-29
	Eccentricity float64 // scale 2^-33
	Cus          float64 // rad, scale 2^-29
	SqrtA        float64 // sqrt(m), scale 2^-19
	Toe          uint32  // seconds, scale 16
	FitInterval  bool
	AODO         uint8
}

func (e Ephemeris2) FrameID() FrameID { return FrameEphemeris2 }

// DecodeEphemeris2 decodes words 3..10 as Frame 2.
func DecodeEphemeris2(w RawWords) Ephemeris2 {
	m0 := joinSplit(bitsMSB(w[1], 16, 8), bitsMSB(w[2], 0, 24), 24)
	ecc := joinSplit(bitsMSB(w[3], 16, 8), bitsMSB(w[4], 0, 24), 24)
	sqrtA := joinSplit(bitsMSB(w[5], 16, 8), bitsMSB(w[6], 0, 24), 24)

	return Ephemeris2{
		IODE:         uint8(bitsMSB(w[0], 0, 8)),
		Crs:          DecodeSignedScaled(bitsMSB(w[0], 8, 16), 16, -5),
		DeltaN:       DecodeSignedScaled(bitsMSB(w[1], 0, 16), 16, -43),
		M0:           DecodeSignedScaled(m0, 32, -31),
		Cuc:          DecodeSignedScaled(bitsMSB(w[3], 0, 16), 16, -29),
		Eccentricity: DecodeUnsignedScaled(ecc, 32, -33),
		Cus:          DecodeSignedScaled(bitsMSB(w[5], 0, 16), 16, -29),
		SqrtA:        DecodeUnsignedScaled(sqrtA, 32, -19),
		Toe:          bitsMSB(w[7], 0, 16) * 16,
		FitInterval:  bitsMSB(w[7], 16, 1) != 0,
		AODO:         uint8(bitsMSB(w[7], 17, 5)),
	}
}

// ToWords re-flattens Ephemeris2 into its 8 information words.
func (e Ephemeris2) ToWords() RawWords {
	var w RawWords

	m0 := EncodeSignedScaled(e.M0, 32, -31)
	ecc := EncodeUnsignedScaled(e.Eccentricity, 32, -33)
	sqrtA := EncodeUnsignedScaled(e.SqrtA, 32, -19)

	w[0] = putBitsMSB(w[0], 0, 8, uint32(e.IODE))
	w[0] = putBitsMSB(w[0], 8, 16, EncodeSignedScaled(e.Crs, 16, -5))

	w[1] = putBitsMSB(w[1], 0, 16, EncodeSignedScaled(e.DeltaN, 16, -43))
	w[1] = putBitsMSB(w[1], 16, 8, splitMSB(m0, 32, 8))

	w[2] = splitLSB(m0, 32, 24)

	w[3] = putBitsMSB(w[3], 0, 16, EncodeSignedScaled(e.Cuc, 16, -29))
	w[3] = putBitsMSB(w[3], 16, 8, splitMSB(ecc, 32, 8))

	w[4] = splitLSB(ecc, 32, 24)

	w[5] = putBitsMSB(w[5], 0, 16, EncodeSignedScaled(e.Cus, 16, -29))
	w[5] = putBitsMSB(w[5], 16, 8, splitMSB(sqrtA, 32, 8))

	w[6] = splitLSB(sqrtA, 32, 24)

	w[7] = putBitsMSB(w[7], 0, 16, (e.Toe/16)&0xffff)
	if e.FitInterval {
		w[7] = putBitsMSB(w[7], 16, 1, 1)
	}
	w[7] = putBitsMSB(w[7], 17, 5, uint32(e.AODO))

	return w
}
