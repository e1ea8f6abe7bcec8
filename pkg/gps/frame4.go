package gps

// Frame4Kind names which of the three modeled page layouts a Frame-4 page
// carries. Pages outside the modeled set are decoded as an opaque blob.
type Frame4Kind int

const (
	Frame4KindAlmanac Frame4Kind = iota
	Frame4KindUTC
	Frame4KindHealth
	Frame4KindReserved
)

// Frame4UTC is Frame-4, page 18: Klobuchar ionospheric model coefficients
// plus the UTC/leap-second parameters, per the original source's
// frame4/page18 layout.
type Frame4UTC struct {
	Alpha0 float64 // s, scale 2^-30
	Alpha1 float64 // s/semicircle, scale 2^-27
	Alpha2 float64 // s/semicircle^2, scale 2^-24
	Alpha3 float64 // s/semicircle^3, scale 2^-24
	Beta0  float64 // s, scale 2^11
	Beta1  float64 // s/semicircle, scale 2^14
	Beta2  float64 // s/semicircle^2, scale 2^16
	Beta3  float64 // s/semicircle^3, scale 2^16
	A1     float64 // s/s, scale 2^-50
	A0     float64 // s, scale 2^-30

	Tot       uint32 // s, scale 2^12
	WNt       uint8
	DeltaTLS  int8
	WNlsf     uint8
	DN        uint8
	DeltaTLSF int8
}

// Frame4Health is Frame-4, page 25: anti-spoofing flag and 6-bit health for
// SVs 25..32, per the original source's frame4/page25 layout. The remaining
// bits of the page carry no modeled content and are preserved opaquely.
type Frame4Health struct {
	AntiSpoof [8]bool
	Health    [8]uint8
	Reserved  [4]uint32 // 128 opaque bits following the health table
}

// Frame4 is the Frame-4 subframe variant: one of 25 pages selected by the
// 6-bit page identifier in word 3.
type Frame4 struct {
	DataID uint8
	PageID uint8
	Kind   Frame4Kind

	Almanac Almanac
	UTC     Frame4UTC
	Health  Frame4Health
	Raw     RawWords // used verbatim when Kind == Frame4KindReserved
}

func (f Frame4) FrameID() FrameID { return FrameAlmanac4 }

// frame4AlmanacPages maps the subcommutated page identifiers that carry
// almanac data to the SV they describe, per spec.md's "pages 2-5, 7-10
// carry almanac data for specific SVs".
var frame4AlmanacPages = map[uint8]uint8{
	2: 25, 3: 26, 4: 27, 5: 28,
	7: 29, 8: 30, 9: 31, 10: 32,
}

// DecodeFrame4 dispatches on word 3's page identifier to decode one of the
// 25 Frame-4 pages.
func DecodeFrame4(w RawWords) (Subframe, error) {
	id := pageID(w[0])
	if id < 1 || id > 25 {
		return nil, ErrInvalidPage
	}
	dataID := uint8(bitsMSB(w[0], 0, 2))

	if svID, ok := frame4AlmanacPages[id]; ok {
		return Frame4{
			DataID:  dataID,
			PageID:  id,
			Kind:    Frame4KindAlmanac,
			Almanac: decodeAlmanacWords(w, svID),
		}, nil
	}

	switch id {
	case 18:
		return Frame4{
			DataID: dataID,
			PageID: id,
			Kind:   Frame4KindUTC,
			UTC:    decodeFrame4UTC(w),
		}, nil
	case 25:
		return Frame4{
			DataID: dataID,
			PageID: id,
			Kind:   Frame4KindHealth,
			Health: decodeFrame4Health(w),
		}, nil
	default:
		return Frame4{
			DataID: dataID,
			PageID: id,
			Kind:   Frame4KindReserved,
			Raw:    w,
		}, nil
	}
}

// ToWords re-flattens a Frame4 page into its 8 information words.
func (f Frame4) ToWords() RawWords {
	var w RawWords

	switch f.Kind {
	case Frame4KindAlmanac:
		w = encodeAlmanacWords(f.Almanac)
	case Frame4KindUTC:
		w = encodeFrame4UTC(f.UTC)
	case Frame4KindHealth:
		w = encodeFrame4Health(f.Health)
	default:
		w = f.Raw
	}

	w[0] = putBitsMSB(w[0], 0, 2, uint32(f.DataID))
	w[0] = putBitsMSB(w[0], 2, 6, uint32(f.PageID))
	return w
}

// Frame-4 page 18 bit layout, offsets counted from the start of word 3's
// information field (the leading 8 bits are the data-id/page-id header
// handled by Frame4.ToWords/DecodeFrame4).
const (
	f4utoAlpha0 = 8
	f4utoAlpha1 = 16
	f4utoAlpha2 = 24
	f4utoAlpha3 = 32
	f4utoBeta0  = 40
	f4utoBeta1  = 48
	f4utoBeta2  = 56
	f4utoBeta3  = 64
	f4utoA1     = 72
	f4utoA0     = 96
	f4utoTot    = 120
	f4utoWNt    = 128
	f4utoDTLS   = 136
	f4utoWNlsf  = 144
	f4utoDN     = 152
	f4utoDTLSF  = 160
	f4utoRsvd   = 168
)

func decodeFrame4UTC(w RawWords) Frame4UTC {
	return Frame4UTC{
		Alpha0:    DecodeSignedScaled(getBits(w, f4utoAlpha0, 8), 8, -30),
		Alpha1:    DecodeSignedScaled(getBits(w, f4utoAlpha1, 8), 8, -27),
		Alpha2:    DecodeSignedScaled(getBits(w, f4utoAlpha2, 8), 8, -24),
		Alpha3:    DecodeSignedScaled(getBits(w, f4utoAlpha3, 8), 8, -24),
		Beta0:     DecodeUnsignedScaled(getBits(w, f4utoBeta0, 8), 8, 11),
		Beta1:     DecodeSignedScaled(getBits(w, f4utoBeta1, 8), 8, 14),
		Beta2:     DecodeSignedScaled(getBits(w, f4utoBeta2, 8), 8, 16),
		Beta3:     DecodeSignedScaled(getBits(w, f4utoBeta3, 8), 8, 16),
		A1:        DecodeSignedScaled(getBits(w, f4utoA1, 24), 24, -50),
		A0:        DecodeSignedScaled(getBits(w, f4utoA0, 24), 24, -30),
		Tot:       getBits(w, f4utoTot, 8) << 12,
		WNt:       uint8(getBits(w, f4utoWNt, 8)),
		DeltaTLS:  int8(TwosComplement(getBits(w, f4utoDTLS, 8), 8)),
		WNlsf:     uint8(getBits(w, f4utoWNlsf, 8)),
		DN:        uint8(getBits(w, f4utoDN, 8)),
		DeltaTLSF: int8(TwosComplement(getBits(w, f4utoDTLSF, 8), 8)),
	}
}

func encodeFrame4UTC(u Frame4UTC) RawWords {
	var w RawWords

	setBits(&w, f4utoAlpha0, 8, EncodeSignedScaled(u.Alpha0, 8, -30))
	setBits(&w, f4utoAlpha1, 8, EncodeSignedScaled(u.Alpha1, 8, -27))
	setBits(&w, f4utoAlpha2, 8, EncodeSignedScaled(u.Alpha2, 8, -24))
	setBits(&w, f4utoAlpha3, 8, EncodeSignedScaled(u.Alpha3, 8, -24))
	setBits(&w, f4utoBeta0, 8, EncodeUnsignedScaled(u.Beta0, 8, 11))
	setBits(&w, f4utoBeta1, 8, EncodeSignedScaled(u.Beta1, 8, 14))
	setBits(&w, f4utoBeta2, 8, EncodeSignedScaled(u.Beta2, 8, 16))
	setBits(&w, f4utoBeta3, 8, EncodeSignedScaled(u.Beta3, 8, 16))
	setBits(&w, f4utoA1, 24, EncodeSignedScaled(u.A1, 24, -50))
	setBits(&w, f4utoA0, 24, EncodeSignedScaled(u.A0, 24, -30))
	setBits(&w, f4utoTot, 8, (u.Tot>>12)&0xff)
	setBits(&w, f4utoWNt, 8, uint32(u.WNt))
	setBits(&w, f4utoDTLS, 8, EncodeTwosComplement(int32(u.DeltaTLS), 8))
	setBits(&w, f4utoWNlsf, 8, uint32(u.WNlsf))
	setBits(&w, f4utoDN, 8, uint32(u.DN))
	setBits(&w, f4utoDTLSF, 8, EncodeTwosComplement(int32(u.DeltaTLSF), 8))

	return w
}

// Frame-4 page 25 layout: 8 SV entries of (anti-spoof flag, 6-bit health)
// starting immediately after the header, followed by 128 reserved bits.
const f4healthEntryWidth = 7
const f4healthBase = 8
const f4healthReservedBase = f4healthBase + 8*f4healthEntryWidth

func decodeFrame4Health(w RawWords) Frame4Health {
	var h Frame4Health
	for i := 0; i < 8; i++ {
		entry := getBits(w, uint(f4healthBase+i*f4healthEntryWidth), f4healthEntryWidth)
		h.AntiSpoof[i] = entry&0x40 != 0
		h.Health[i] = uint8(entry & 0x3f)
	}
	for i := 0; i < 4; i++ {
		h.Reserved[i] = getBits(w, uint(f4healthReservedBase+i*32), 32)
	}
	return h
}

func encodeFrame4Health(h Frame4Health) RawWords {
	var w RawWords
	for i := 0; i < 8; i++ {
		entry := uint32(h.Health[i] & 0x3f)
		if h.AntiSpoof[i] {
			entry |= 0x40
		}
		setBits(&w, uint(f4healthBase+i*f4healthEntryWidth), f4healthEntryWidth, entry)
	}
	for i := 0; i < 4; i++ {
		setBits(&w, uint(f4healthReservedBase+i*32), 32, h.Reserved[i])
	}
	return w
}
