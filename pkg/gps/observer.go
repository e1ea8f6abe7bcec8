package gps

// Observer receives the decoder FSM's transient-error events as they
// happen, for callers that want to count them (dashboards, Prometheus
// exporters) without the FSM itself depending on any particular metrics
// library. A *Decoder with no observer attached simply drops these events.
type Observer interface {
	// ParityFailure is called once per word whose parity verification
	// fails.
	ParityFailure()

	// ResyncEvent is called once each time the FSM abandons the
	// frame-in-progress and returns to preamble search.
	ResyncEvent()

	// UnknownFrameType is called when a handover word names a frame id
	// outside 1..5.
	UnknownFrameType()

	// InvalidPage is called when a Frame-4/Frame-5 page id falls outside
	// 1..25.
	InvalidPage()
}
