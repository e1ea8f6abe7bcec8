package gps

import (
	"math"
	"testing"
)

func TestEphemeris3RoundTrip(t *testing.T) {
	want := Ephemeris3{
		Cic:      -150 * math.Pow(2, -29),
		Omega0:   -987654 * math.Pow(2, -31),
		Cis:      160 * math.Pow(2, -29),
		I0:       876543 * math.Pow(2, -31),
		Crc:      220 * math.Pow(2, -5),
		Omega:    -765432 * math.Pow(2, -31),
		OmegaDot: -4321 * math.Pow(2, -43),
		IODE:     0x3c,
		IDot:     -17 * math.Pow(2, -43),
	}

	got := DecodeEphemeris3(want.ToWords())

	if got.IODE != want.IODE {
		t.Fatalf("IODE = 0x%x, want 0x%x", got.IODE, want.IODE)
	}

	const eps = 1e-18
	for _, pair := range []struct {
		name      string
		got, want float64
	}{
		{"Cic", got.Cic, want.Cic},
		{"Omega0", got.Omega0, want.Omega0},
		{"Cis", got.Cis, want.Cis},
		{"I0", got.I0, want.I0},
		{"Crc", got.Crc, want.Crc},
		{"Omega", got.Omega, want.Omega},
		{"OmegaDot", got.OmegaDot, want.OmegaDot},
		{"IDot", got.IDot, want.IDot},
	} {
		if !closeEnough(pair.got, pair.want, eps) {
			t.Errorf("%s = %g, want %g", pair.name, pair.got, pair.want)
		}
	}
}

func TestEphemeris3FrameID(t *testing.T) {
	e := Ephemeris3{}
	if e.FrameID() != FrameEphemeris3 {
		t.Errorf("FrameID() = %v, want FrameEphemeris3", e.FrameID())
	}
}
