package simhal

import (
	"dualstep/hal"
	"dualstep/stepcmd"
)

// SPE is a software step pulse engine: it drains a stepcmd.Queue the same
// way real hardware output-compare consumer would — FIFO, direction flip
// before the first pulse of a flagged command — but synchronously, with no
// real timing, for tests and the host CLI demo. It does not disconnect
// when the queue empties; only Detach clears the connected flag. It
// satisfies hal.SPEConsumer.
type SPE struct {
	gpio   hal.GPIODriver
	dir    hal.Pin
	enable hal.Pin

	dirHigh   bool
	connected bool

	pulses map[uint8]int
}

// NewSPE builds a software SPE driving pins through gpio.
func NewSPE(gpio hal.GPIODriver) *SPE {
	return &SPE{gpio: gpio, pulses: make(map[uint8]int)}
}

// Attach configures the direction pin for a channel and marks the
// consumer connected, mirroring a real output-compare attach.
func (s *SPE) Attach(channel uint8, dir, enable hal.Pin) {
	s.dir = dir
	s.enable = enable
	s.gpio.ConfigureOutput(dir)
	s.connected = true
}

// Detach disconnects the consumer, as an emergency halt would.
func (s *SPE) Detach(channel uint8) {
	s.connected = false
}

// PulseCount returns the number of step pulses emitted for a channel
// since construction.
func (s *SPE) PulseCount(channel uint8) int {
	return s.pulses[channel]
}

// DrainAll pops every currently-queued command from q and emits its
// pulses, toggling the direction pin on flip-bit commands before their
// first pulse. It returns the net signed step delta emitted. Used by
// tests and the CLI demo to simulate the hardware consumer synchronously
// instead of waiting on a real timer.
func (s *SPE) DrainAll(channel uint8, q *stepcmd.Queue) int32 {
	var delta int32
	for {
		cmd, ok := q.Pop()
		if !ok {
			break
		}
		s.runCommand(channel, cmd, &delta)
	}
	return delta
}

func (s *SPE) runCommand(channel uint8, cmd stepcmd.Command, delta *int32) {
	if cmd.FlipsDirection() {
		s.dirHigh = !s.dirHigh
		s.gpio.SetPin(s.dir, s.dirHigh)
	}
	n := int(cmd.StepCount())
	s.pulses[channel] += n
	if s.dirHigh {
		*delta += int32(n)
	} else {
		*delta -= int32(n)
	}
}
