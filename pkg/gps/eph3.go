package gps

// Ephemeris3 is Frame 3: Keplerian orbital elements, second half.
type Ephemeris3 struct {
	Cic        float64 // rad, scale 2^-29
	Omega0     float64 // semicircles, scale 2^-31
	Cis        float64 // rad, scale 2^-29
	I0         float64 // semicircles, scale 2^-31
	Crc        float64 // m, scale 2^-5
	Omega      float64 // semicircles, scale 2^-31
	OmegaDot   float64 // semicircles/s, scale 2^-43
	IODE       uint8
	IDot       float64 // semicircles/s, scale 2^-43
}

func (e Ephemeris3) FrameID() FrameID { return FrameEphemeris3 }

// DecodeEphemeris3 decodes words 3..10 as Frame 3.
func DecodeEphemeris3(w RawWords) Ephemeris3 {
	omega0 := joinSplit(bitsMSB(w[0], 16, 8), w[1], 24)
	i0 := joinSplit(bitsMSB(w[2], 16, 8), w[3], 24)
	omega := joinSplit(bitsMSB(w[4], 16, 8), w[5], 24)

	return Ephemeris3{
		Cic:      DecodeSignedScaled(bitsMSB(w[0], 0, 16), 16, -29),
		Omega0:   DecodeSignedScaled(omega0, 32, -31),
		Cis:      DecodeSignedScaled(bitsMSB(w[2], 0, 16), 16, -29),
		I0:       DecodeSignedScaled(i0, 32, -31),
		Crc:      DecodeSignedScaled(bitsMSB(w[4], 0, 16), 16, -5),
		Omega:    DecodeSignedScaled(omega, 32, -31),
		OmegaDot: DecodeSignedScaled(w[6], 24, -43),
		IODE:     uint8(bitsMSB(w[7], 0, 8)),
		IDot:     DecodeSignedScaled(bitsMSB(w[7], 8, 14), 14, -43),
	}
}

// ToWords re-flattens Ephemeris3 into its 8 information words.
func (e Ephemeris3) ToWords() RawWords {
	var w RawWords

	omega0 := EncodeSignedScaled(e.Omega0, 32, -31)
	i0 := EncodeSignedScaled(e.I0, 32, -31)
	omega := EncodeSignedScaled(e.Omega, 32, -31)

	w[0] = putBitsMSB(w[0], 0, 16, EncodeSignedScaled(e.Cic, 16, -29))
	w[0] = putBitsMSB(w[0], 16, 8, splitMSB(omega0, 32, 8))
	w[1] = splitLSB(omega0, 32, 24)

	w[2] = putBitsMSB(w[2], 0, 16, EncodeSignedScaled(e.Cis, 16, -29))
	w[2] = putBitsMSB(w[2], 16, 8, splitMSB(i0, 32, 8))
	w[3] = splitLSB(i0, 32, 24)

	w[4] = putBitsMSB(w[4], 0, 16, EncodeSignedScaled(e.Crc, 16, -5))
	w[4] = putBitsMSB(w[4], 16, 8, splitMSB(omega, 32, 8))
	w[5] = splitLSB(omega, 32, 24)

	w[6] = EncodeSignedScaled(e.OmegaDot, 24, -43)

	w[7] = putBitsMSB(w[7], 0, 8, uint32(e.IODE))
	w[7] = putBitsMSB(w[7], 8, 14, EncodeSignedScaled(e.IDot, 14, -43))

	return w
}
