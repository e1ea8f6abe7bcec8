package gps

import "errors"

// fsmState names the four states of the Decoder's frame-assembly state
// machine.
type fsmState int

const (
	stateSearchPreamble fsmState = iota
	stateTLM
	stateHOW
	stateSubframe
)

// Decoder consumes an unaligned byte stream and emits Frame values in
// strict stream order. It is single-threaded and synchronous: Fill copies
// bytes in, Decode drains frames out, and both are pure functions of the
// accumulated state.
type Decoder struct {
	ring         *RingBuffer
	state        fsmState
	prev         PrevBits
	verifyParity bool
	obs          Observer

	pendingTLM Telemetry
	pendingHOW Handover
}

// NewDecoder returns a Decoder backed by a ring buffer of the given byte
// capacity, with parity verification enabled.
func NewDecoder(capacity int) *Decoder {
	return &Decoder{
		ring:         NewRingBuffer(capacity),
		verifyParity: true,
	}
}

// WithParityVerification toggles parity checking, for replaying captures
// known to be corrupt. It returns the receiver for chaining.
func (d *Decoder) WithParityVerification(enabled bool) *Decoder {
	d.verifyParity = enabled
	return d
}

// WithObserver attaches obs to receive the FSM's transient-error events. It
// returns the receiver for chaining.
func (d *Decoder) WithObserver(obs Observer) *Decoder {
	d.obs = obs
	return d
}

// Fill copies src into the decoder's ring buffer, returning ErrWouldBlock
// if there is no room.
func (d *Decoder) Fill(src []byte) (int, error) {
	return d.ring.Write(src)
}

// Decode returns the next fully verified Frame, or (nil, false) if the
// buffered bytes do not yet contain one. It drives the FSM through as many
// states as the buffered bits allow in a single call.
func (d *Decoder) Decode() (*Frame, bool) {
	for {
		switch d.state {
		case stateSearchPreamble:
			if !d.searchPreamble() {
				return nil, false
			}

		case stateTLM:
			w, ok := d.ring.View().NextDataWord()
			if !ok {
				return nil, false
			}
			if d.verifyParity && !VerifyParity(w, d.prev) {
				d.notify(Observer.ParityFailure)
				d.resync()
				continue
			}
			tlm, err := DecodeTelemetry(CorrectedInfoBits(w, d.prev))
			if err != nil {
				d.resync()
				continue
			}
			d.ring.DiscardBits(30)
			d.prev = NextPrevBits(w)
			d.pendingTLM = tlm
			d.state = stateHOW

		case stateHOW:
			w, ok := d.ring.View().NextDataWord()
			if !ok {
				return nil, false
			}
			if d.verifyParity && !VerifyParity(w, d.prev) {
				d.notify(Observer.ParityFailure)
				d.resync()
				continue
			}
			how := DecodeHandover(CorrectedInfoBits(w, d.prev))
			if !how.FrameID.Valid() {
				d.notify(Observer.UnknownFrameType)
				d.resync()
				continue
			}
			d.ring.DiscardBits(30)
			d.prev = NextPrevBits(w)
			d.pendingHOW = how
			d.state = stateSubframe

		case stateSubframe:
			frame, ok := d.decodeSubframe()
			if frame == nil && !ok {
				return nil, false
			}
			if frame == nil {
				d.resync()
				continue
			}
			return frame, true
		}
	}
}

// resync abandons the current frame-in-progress and returns to preamble
// search, resetting the chained parity state as mandated for every
// transition into Preamble.
func (d *Decoder) resync() {
	d.notify(Observer.ResyncEvent)
	d.ring.DiscardBits(1)
	d.prev = PrevBits{}
	d.state = stateSearchPreamble
}

// notify invokes method on the attached observer, if any.
func (d *Decoder) notify(method func(Observer)) {
	if d.obs != nil {
		method(d.obs)
	}
}

// searchPreamble tests every bit alignment of the buffered bytes for the
// 8-bit preamble. On a match it discards the bits preceding the match and
// transitions to TLM; this produces exactly the same net bit consumption
// as testing and discarding one bit at a time, without repeated allocation.
func (d *Decoder) searchPreamble() bool {
	v := d.ring.View()
	available := v.bitsAvailable()
	if available < 8 {
		return false
	}

	maxOffset := uint(available - 8)
	for offset := uint(0); offset <= maxOffset; offset++ {
		val, ok := v.PeekBits(offset, 8)
		if ok && val == Preamble {
			d.ring.DiscardBits(int(offset))
			d.state = stateTLM
			return true
		}
	}

	// No match anywhere in the buffered bytes. The trailing 7 bits could
	// still become the head of a preamble once more data arrives, so only
	// the bits that can never participate in a future match are dropped.
	// Dropping whole bytes keeps the final byte (and so those 7 bits) intact.
	d.ring.DiscardBytes(int(maxOffset) / 8)
	return false
}

// decodeSubframe speculatively decodes the 8 subframe words (240 bits)
// ahead of the cursor without consuming them. It returns (frame, true) on
// success, (nil, true) on a verification failure (caller should resync),
// and (nil, false) if too few bits are buffered to decide yet.
func (d *Decoder) decodeSubframe() (*Frame, bool) {
	v := d.ring.View()

	var words [8]DataWord
	for i := range words {
		w, ok := v.NextDataWord()
		if !ok {
			return nil, false
		}
		words[i] = w
	}

	prev := d.prev
	var raw RawWords
	for i, w := range words {
		if d.verifyParity && !VerifyParity(w, prev) {
			d.notify(Observer.ParityFailure)
			return nil, true
		}
		raw[i] = CorrectedInfoBits(w, prev)
		prev = NextPrevBits(w)
	}

	sf, err := DecodeSubframe(d.pendingHOW.FrameID, raw)
	if err != nil {
		if errors.Is(err, ErrInvalidPage) {
			d.notify(Observer.InvalidPage)
		}
		return nil, true
	}

	frame, err := NewFrame(d.pendingTLM, d.pendingHOW, sf)
	if err != nil {
		return nil, true
	}

	d.ring.DiscardBits(240)
	d.prev = PrevBits{}
	d.state = stateSearchPreamble
	return frame, true
}
