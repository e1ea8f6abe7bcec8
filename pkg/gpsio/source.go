// Package gpsio adapts the byte-stream transports a GPS receiver front-end
// might use -- a recorded capture file, a TCP socket, or a serial port --
// to the plain io.Reader the Decoder's Fill loop consumes, and pairs each
// source with the PaddingMode its transport requires.
package gpsio

import (
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"go.bug.st/serial"

	"github.com/dbehnke/gps-navdata/pkg/config"
	"github.com/dbehnke/gps-navdata/pkg/gps"
)

// Source is anything that yields the raw bytes of a GPS L1 C/A stream.
// *os.File, net.Conn, and serial.Port all satisfy it directly.
type Source interface {
	io.Reader
	io.Closer
}

// Open opens the transport named by cfg and returns a Source ready to be
// read into a Decoder via a Pump. The caller owns the returned Source and
// must Close it.
func Open(cfg config.SourceConfig) (Source, error) {
	switch cfg.Kind {
	case config.SourceFile:
		f, err := os.Open(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("gpsio: open file source %s: %w", cfg.Name, err)
		}
		return f, nil

	case config.SourceTCP:
		conn, err := net.DialTimeout("tcp", cfg.Address, 10*time.Second)
		if err != nil {
			return nil, fmt.Errorf("gpsio: dial tcp source %s: %w", cfg.Name, err)
		}
		return conn, nil

	case config.SourceSerial:
		mode := &serial.Mode{BaudRate: cfg.BaudRate}
		port, err := serial.Open(cfg.Device, mode)
		if err != nil {
			return nil, fmt.Errorf("gpsio: open serial source %s: %w", cfg.Name, err)
		}
		return port, nil

	default:
		return nil, fmt.Errorf("gpsio: unknown source kind %q for %s", cfg.Kind, cfg.Name)
	}
}

// symbolizer converts a single raw byte read from the transport into the
// gps.Symbol the Pump's width-8 BitStream repacks into bytes, per the
// PaddingMode declared in the source's configuration. It returns a func
// value (rather than being a method) so Pump can be built and tested without
// a live Source.
func symbolizer(mode config.PaddingMode) func(byte) gps.Symbol {
	switch mode {
	case config.PaddingMsbPadded:
		return gps.NewMsbPaddedSymbol
	case config.PaddingLsbPadded:
		return gps.NewLsbPaddedSymbol
	default:
		return gps.NewSymbol
	}
}
