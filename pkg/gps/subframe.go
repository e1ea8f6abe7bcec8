package gps

// RawWords holds the 8 corrected 24-bit information fields of words 3..10
// of a subframe, index 0 corresponding to word 3. Subframe codecs read and
// write these directly; the bit-flip-on-parity correction and the chained
// parity computation are centralized in the top-level Encoder/Decoder and
// never appear here, matching the centralization this codec applies to
// sign extension.
type RawWords [8]uint32

// Subframe is implemented by every one of the five subframe variants. It
// knows its own FrameID and how to re-flatten itself into RawWords.
type Subframe interface {
	FrameID() FrameID
	ToWords() RawWords
}

// DecodeSubframe dispatches on id to the matching subframe decoder.
func DecodeSubframe(id FrameID, words RawWords) (Subframe, error) {
	switch id {
	case FrameEphemeris1:
		return DecodeEphemeris1(words), nil
	case FrameEphemeris2:
		return DecodeEphemeris2(words), nil
	case FrameEphemeris3:
		return DecodeEphemeris3(words), nil
	case FrameAlmanac4:
		return DecodeFrame4(words)
	case FrameAlmanac5:
		return DecodeFrame5(words)
	default:
		return nil, ErrUnknownFrameType
	}
}

// pageID extracts the 6-bit SV/page identifier from word 3 of a Frame-4 or
// Frame-5 subframe: the ICD's word-3 layout reserves the first 2 bits for
// a Data ID and the following 6 bits for the SV/page identifier used to
// dispatch to a page decoder.
func pageID(word3 uint32) uint8 {
	return uint8(bitsMSB(word3, 2, 6))
}
