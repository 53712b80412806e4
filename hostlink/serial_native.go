//go:build !wasm

package hostlink

import (
	"fmt"
	"time"

	"github.com/tarm/serial"
)

// nativePort wraps github.com/tarm/serial to satisfy Port.
type nativePort struct {
	port *serial.Port
}

// Open opens a native serial port with the given configuration.
func Open(cfg *Config) (Port, error) {
	if cfg == nil {
		return nil, fmt.Errorf("hostlink: config cannot be nil")
	}
	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("hostlink: open %s: %w", cfg.Device, err)
	}
	return &nativePort{port: port}, nil
}

func (p *nativePort) Read(b []byte) (int, error)  { return p.port.Read(b) }
func (p *nativePort) Write(b []byte) (int, error) { return p.port.Write(b) }
func (p *nativePort) Close() error                { return p.port.Close() }

// Flush is a no-op: tarm/serial doesn't expose one, and Write already
// blocks until the bytes are handed to the OS.
func (p *nativePort) Flush() error { return nil }
