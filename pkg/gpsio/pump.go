package gpsio

import (
	"context"
	"errors"
	"io"

	"github.com/dbehnke/gps-navdata/pkg/config"
	"github.com/dbehnke/gps-navdata/pkg/gps"
	"github.com/dbehnke/gps-navdata/pkg/logger"
)

// FrameHandler is called once per Frame the decoder emits. It is invoked
// synchronously on the Pump's own goroutine; handlers that need to fan out
// further (persistence, broadcast, metrics) should do so without blocking
// for long, since a slow handler delays draining the ring buffer.
type FrameHandler func(svName string, f *gps.Frame)

// Pump reads raw bytes from a Source, repacks them through a BitStream
// when the source declares 2-bit alignment padding, and drives a Decoder
// to quiescence on every read, dispatching each emitted Frame to a
// FrameHandler.
type Pump struct {
	name    string
	src     Source
	decoder *gps.Decoder
	repack  *gps.BitStream
	toSym   func(byte) gps.Symbol
	log     *logger.Logger
	onFrame FrameHandler
}

// NewPump builds a Pump for one configured source. Run reads through a
// fixed 4096-byte buffer per Source.Read call; that size is unrelated to the
// decoder's own ring buffer capacity.
func NewPump(cfg config.SourceConfig, src Source, decoder *gps.Decoder, log *logger.Logger, onFrame FrameHandler) *Pump {
	return &Pump{
		name:    cfg.Name,
		src:     src,
		decoder: decoder,
		repack:  gps.NewBitStream(8),
		toSym:   symbolizer(cfg.Padding),
		log:     log.WithComponent("gpsio." + cfg.Name),
		onFrame: onFrame,
	}
}

// Run reads from the source until ctx is cancelled or the source returns
// io.EOF, feeding the decoder and draining every frame it yields. It
// retries ErrWouldBlock by draining the decoder before the next read.
func (p *Pump) Run(ctx context.Context) error {
	buf := make([]byte, 4096)
	packed := make([]byte, 0, 4096)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n, err := p.src.Read(buf)
		if n > 0 {
			packed = packed[:0]
			for _, raw := range buf[:n] {
				if out, ok := p.repack.Collect(p.toSym(raw)); ok {
					packed = append(packed, byte(out))
				}
			}
			if len(packed) > 0 {
				if ferr := p.fill(packed); ferr != nil {
					return ferr
				}
			}
			p.drain()
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// fill writes b into the decoder, retrying after a drain if the ring
// buffer reports ErrWouldBlock.
func (p *Pump) fill(b []byte) error {
	for len(b) > 0 {
		n, err := p.decoder.Fill(b)
		b = b[n:]
		if err == nil {
			continue
		}
		if !errors.Is(err, gps.ErrWouldBlock) {
			return err
		}
		p.drain()
		if n == 0 {
			// Draining freed no room; the caller-chosen ring buffer is too
			// small for even one pending frame. Surface the error rather
			// than spin.
			return err
		}
	}
	return nil
}

// drain repeatedly decodes frames until the decoder reports none pending.
func (p *Pump) drain() {
	for {
		frame, ok := p.decoder.Decode()
		if !ok {
			return
		}
		p.log.Debug("frame decoded",
			logger.Uint32("frame_id", uint32(frame.Handover.FrameID)),
			logger.Uint32("tow_seconds", frame.Handover.TOWSeconds()))
		if p.onFrame != nil {
			p.onFrame(p.name, frame)
		}
	}
}
