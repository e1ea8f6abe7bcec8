package gps

import (
	"math"
	"testing"
)

func TestAlmanacWordsRoundTrip(t *testing.T) {
	// Every float field is built as an exact integer multiple of its ICD
	// scale factor so the round trip through quantization is exact, rather
	// than merely within the comparison tolerance.
	want := Almanac{
		SVID:         12,
		DataID:       1,
		Eccentricity: 25000 * math.Pow(2, -21),
		Toa:          61440, // multiple of 2^12, the field's resolution
		DeltaI:       1782 * math.Pow(2, -19),
		OmegaDot:     -330 * math.Pow(2, -38),
		Health:       0,
		SqrtA:        10555204 * math.Pow(2, -11),
		Omega0:       2579600 * math.Pow(2, -23),
		Omega:        -4404019 * math.Pow(2, -23),
		M0:           4194304 * math.Pow(2, -23),
		Af0:          500 * math.Pow(2, -20),
		Af1:          -302 * math.Pow(2, -38),
	}

	words := encodeAlmanacWords(want)
	got := decodeAlmanacWords(words, want.SVID)

	if !AlmanacEqual(got, want) {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestAlmanacEqualDetectsHealthMismatch(t *testing.T) {
	a := Almanac{SVID: 1, Health: 0}
	b := Almanac{SVID: 1, Health: 1}
	if AlmanacEqual(a, b) {
		t.Errorf("expected health mismatch to fail equality")
	}
}

func TestAlmanacEqualDetectsToaMismatch(t *testing.T) {
	a := Almanac{SVID: 1, Toa: 4096}
	b := Almanac{SVID: 1, Toa: 8192}
	if AlmanacEqual(a, b) {
		t.Errorf("expected toa mismatch to fail equality")
	}
}

func TestAlmanacEqualToleratesSmallFloatNoise(t *testing.T) {
	a := Almanac{SVID: 1, Eccentricity: 0.012}
	b := Almanac{SVID: 1, Eccentricity: 0.012 + 1e-4}
	if !AlmanacEqual(a, b) {
		t.Errorf("expected small eccentricity noise within tolerance to pass")
	}
}
