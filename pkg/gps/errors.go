package gps

import "errors"

// Sentinel errors returned by the codec. Callers should match with errors.Is.
var (
	// ErrInvalidPreamble is returned when a telemetry word's preamble byte
	// is not 0x8B.
	ErrInvalidPreamble = errors.New("gps: invalid telemetry preamble")

	// ErrUnknownFrameType is returned when a handover word names a frame id
	// outside 1..5.
	ErrUnknownFrameType = errors.New("gps: unknown frame type")

	// ErrInvalidPage is returned when a Frame-4/Frame-5 page id falls
	// outside 1..25.
	ErrInvalidPage = errors.New("gps: invalid page id")

	// ErrParity is returned when a word's low 6 bits do not match the
	// computed parity.
	ErrParity = errors.New("gps: parity mismatch")

	// ErrWouldBlock is returned by Fill when the ring buffer has no room
	// for the incoming bytes.
	ErrWouldBlock = errors.New("gps: operation would block")

	// ErrStorageFull is returned by Encode when the destination buffer is
	// too small.
	ErrStorageFull = errors.New("gps: no space left")

	// ErrInternalFSM marks a decoder state that should be unreachable.
	ErrInternalFSM = errors.New("gps: internal fsm error")
)
