package gps

import (
	"errors"
	"testing"
)

func TestDecodeFrame5AlmanacPages(t *testing.T) {
	for page := uint8(1); page <= 24; page++ {
		w := wordsFromPattern(uint32(page) + 500)
		w[0] = putBitsMSB(w[0], 2, 6, uint32(page))

		sf, err := DecodeFrame5(w)
		if err != nil {
			t.Fatalf("page %d: unexpected error %v", page, err)
		}
		f5, ok := sf.(Frame5)
		if !ok {
			t.Fatalf("page %d: expected Frame5, got %T", page, sf)
		}
		if f5.Kind != Frame5KindAlmanac {
			t.Fatalf("page %d: Kind = %v, want Frame5KindAlmanac", page, f5.Kind)
		}
		if f5.Almanac.SVID != page {
			t.Errorf("page %d: Almanac.SVID = %d, want %d", page, f5.Almanac.SVID, page)
		}
	}
}

func TestDecodeFrame5HealthPage(t *testing.T) {
	w := wordsFromPattern(25)
	w[0] = putBitsMSB(w[0], 2, 6, 25)

	sf, err := DecodeFrame5(w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f5 := sf.(Frame5)
	if f5.Kind != Frame5KindHealth {
		t.Fatalf("Kind = %v, want Frame5KindHealth", f5.Kind)
	}

	again := decodeFrame5Health(encodeFrame5Health(f5.Health))
	if again != f5.Health {
		t.Errorf("Health encode/decode not idempotent: got %+v, want %+v", again, f5.Health)
	}
}

func TestDecodeFrame5RejectsOutOfRangePage(t *testing.T) {
	w := wordsFromPattern(1)
	w[0] = putBitsMSB(w[0], 2, 6, 26)

	_, err := DecodeFrame5(w)
	if !errors.Is(err, ErrInvalidPage) {
		t.Errorf("expected ErrInvalidPage, got %v", err)
	}
}

func TestFrame5FrameID(t *testing.T) {
	f := Frame5{}
	if f.FrameID() != FrameAlmanac5 {
		t.Errorf("FrameID() = %v, want FrameAlmanac5", f.FrameID())
	}
}

func TestFrame5ToWordsRoundTripsPageHeader(t *testing.T) {
	w := wordsFromPattern(7)
	w[0] = putBitsMSB(w[0], 0, 2, 3)
	w[0] = putBitsMSB(w[0], 2, 6, 7)

	sf, err := DecodeFrame5(w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f5 := sf.(Frame5)

	got := f5.ToWords()
	if pageID(got[0]) != 7 {
		t.Errorf("page id = %d, want 7", pageID(got[0]))
	}
	if dataID := bitsMSB(got[0], 0, 2); dataID != 3 {
		t.Errorf("data id = %d, want 3", dataID)
	}
}
