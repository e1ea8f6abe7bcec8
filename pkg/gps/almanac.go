package gps

// Almanac is the coarse orbit-and-health summary broadcast for one SV on a
// Frame-4 or Frame-5 page.
type Almanac struct {
	SVID         uint8
	DataID       uint8
	Eccentricity float64 // scale 2^-21
	Toa          uint32  // seconds, scale 2^12
	DeltaI       float64 // semicircles, scale 2^-19
	OmegaDot     float64 // scale 2^-38
	Health       uint8
	SqrtA        float64 // scale 2^-11
	Omega0       float64 // scale 2^-23
	Omega        float64 // scale 2^-23
	M0           float64 // scale 2^-23
	Af0          float64 // seconds, scale 2^-20
	Af1          float64 // s/s, scale 2^-38
}

// almanacTolerances holds the per-field equality tolerances named by the
// ICD's almanac comparison convention, used by tests rather than by the
// codec itself.
var almanacTolerances = struct {
	Eccentricity, DeltaI, OmegaDot, SqrtA, Omega0Omega, M0, Af0, Af1 float64
}{
	Eccentricity: 1e-3,
	DeltaI:       1e-9,
	OmegaDot:     1e-11,
	SqrtA:        1e-6,
	Omega0Omega:  1e-8,
	M0:           1e-11,
	Af0:          1e-9,
	Af1:          1e-12,
}

// AlmanacEqual compares two Almanac values using the tolerances named in
// the ICD comparison convention, with strict equality for integer fields.
func AlmanacEqual(a, b Almanac) bool {
	if a.SVID != b.SVID || a.DataID != b.DataID || a.Health != b.Health {
		return false
	}
	if a.Toa != b.Toa {
		return false
	}
	return closeEnough(a.Eccentricity, b.Eccentricity, almanacTolerances.Eccentricity) &&
		closeEnough(a.DeltaI, b.DeltaI, almanacTolerances.DeltaI) &&
		closeEnough(a.OmegaDot, b.OmegaDot, almanacTolerances.OmegaDot) &&
		closeEnough(a.SqrtA, b.SqrtA, almanacTolerances.SqrtA) &&
		closeEnough(a.Omega0, b.Omega0, almanacTolerances.Omega0Omega) &&
		closeEnough(a.Omega, b.Omega, almanacTolerances.Omega0Omega) &&
		closeEnough(a.M0, b.M0, almanacTolerances.M0) &&
		closeEnough(a.Af0, b.Af0, almanacTolerances.Af0) &&
		closeEnough(a.Af1, b.Af1, almanacTolerances.Af1)
}

func closeEnough(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

// decodeAlmanacWords decodes the almanac layout shared by Frame-4 and
// Frame-5 non-special pages, given the 8 information words of the page and
// the already-extracted SV/page id (word 3's Data ID is read here too).
func decodeAlmanacWords(w RawWords, svID uint8) Almanac {
	return Almanac{
		SVID:         svID,
		DataID:       uint8(bitsMSB(w[0], 0, 2)),
		Eccentricity: DecodeUnsignedScaled(bitsMSB(w[0], 8, 16), 16, -21),
		Toa:          bitsMSB(w[1], 0, 8) << 12,
		DeltaI:       DecodeSignedScaled(bitsMSB(w[1], 8, 16), 16, -19),
		OmegaDot:     DecodeSignedScaled(bitsMSB(w[2], 0, 16), 16, -38),
		Health:       uint8(bitsMSB(w[2], 16, 8)),
		SqrtA:        DecodeUnsignedScaled(w[3], 24, -11),
		Omega0:       DecodeSignedScaled(w[4], 24, -23),
		Omega:        DecodeSignedScaled(w[5], 24, -23),
		M0:           DecodeSignedScaled(w[6], 24, -23),
		Af0: DecodeSignedScaled(
			joinSplit(bitsMSB(w[7], 0, 8), bitsMSB(w[7], 19, 3), 3), 11, -20),
		Af1: DecodeSignedScaled(bitsMSB(w[7], 8, 11), 11, -38),
	}
}

// encodeAlmanacWords is the inverse of decodeAlmanacWords; it does not set
// the page/SV id into word 3, since Frame-4/5 page layout owns that bit
// range alongside the page identifier itself.
func encodeAlmanacWords(a Almanac) RawWords {
	var w RawWords

	w[0] = putBitsMSB(w[0], 0, 2, uint32(a.DataID))
	w[0] = putBitsMSB(w[0], 8, 16, EncodeUnsignedScaled(a.Eccentricity, 16, -21))

	w[1] = putBitsMSB(w[1], 0, 8, (a.Toa>>12)&0xff)
	w[1] = putBitsMSB(w[1], 8, 16, EncodeSignedScaled(a.DeltaI, 16, -19))

	w[2] = putBitsMSB(w[2], 0, 16, EncodeSignedScaled(a.OmegaDot, 16, -38))
	w[2] = putBitsMSB(w[2], 16, 8, uint32(a.Health))

	w[3] = EncodeUnsignedScaled(a.SqrtA, 24, -11)
	w[4] = EncodeSignedScaled(a.Omega0, 24, -23)
	w[5] = EncodeSignedScaled(a.Omega, 24, -23)
	w[6] = EncodeSignedScaled(a.M0, 24, -23)

	af0 := EncodeSignedScaled(a.Af0, 11, -20)
	w[7] = putBitsMSB(w[7], 0, 8, splitMSB(af0, 11, 8))
	w[7] = putBitsMSB(w[7], 8, 11, EncodeSignedScaled(a.Af1, 11, -38))
	w[7] = putBitsMSB(w[7], 19, 3, splitLSB(af0, 11, 3))

	return w
}
