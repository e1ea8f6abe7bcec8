package gps

import "fmt"

// Frame is the fully decoded 300-bit GPS subframe: a Telemetry word, a
// Handover word, and the Subframe the handover word names.
type Frame struct {
	Telemetry Telemetry
	Handover  Handover
	Subframe  Subframe
}

// NewFrame constructs a Frame, enforcing the invariant that the subframe's
// own frame id agrees with the handover word naming it.
func NewFrame(tlm Telemetry, how Handover, sf Subframe) (*Frame, error) {
	if sf == nil {
		return nil, fmt.Errorf("gps: nil subframe: %w", ErrInternalFSM)
	}
	if sf.FrameID() != how.FrameID {
		return nil, fmt.Errorf("gps: subframe id %d does not match handover frame id %d: %w",
			sf.FrameID(), how.FrameID, ErrInternalFSM)
	}
	return &Frame{Telemetry: tlm, Handover: how, Subframe: sf}, nil
}
