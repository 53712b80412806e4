// Package engine is the two-channel engine API (§6): it owns the pair of
// planner channels, the shared overflow-driven debug LED blink, and the
// timing-event ring, and exposes the overflow entry point the hardware
// timer ISR calls on every tick.
//
// Grounded on core/scheduler.go's Timer/TimerDispatch shape for the
// periodic-invocation idiom and core/debug.go for the timing ring, both
// adapted to this planner's FillQueue/add_queue_entry event vocabulary
// instead of the teacher's Klipper wire-command dispatch.
package engine

import (
	"dualstep/hal"
	"dualstep/planner"
	"dualstep/tick"
)

// ledOnCount and ledOffCount select when the debug LED toggles within one
// blink cycle, counting timer-overflow interrupts. At 16 MHz with a 16-bit
// timer the overflow rate is ~244 Hz, so 288 overflows is about 1.18 s —
// a visible ~1 Hz-ish heartbeat (§6).
const (
	ledOnCount  = 144
	ledOffCount = 288
)

// Engine owns both stepper channels and the overflow-driven bookkeeping
// (debug LED, timing ring) shared between them.
type Engine struct {
	channels [2]*planner.Channel

	gpio         hal.GPIODriver
	debugLed     hal.Pin
	hasDebugLed  bool
	overflowTick uint32

	debug debugRing
}

// New builds an engine with two channels, each given a step command queue
// of the given capacity.
func New(queueCapacity int) *Engine {
	return &Engine{
		channels: [2]*planner.Channel{
			planner.NewChannel(0, queueCapacity),
			planner.NewChannel(1, queueCapacity),
		},
		gpio: hal.NoopGPIO{},
	}
}

// Init brings up the shared facilities the engine needs before the first
// overflow tick: the tick clock and (out of scope, documented only) the
// timer peripheral's free-running normal mode with prescaler 1 and
// overflow interrupt enabled.
func (e *Engine) Init() {
	tick.Init()
}

// SetDebugLed wires the engine's heartbeat LED. Call with the zero Pin to
// disable it again.
func (e *Engine) SetDebugLed(gpio hal.GPIODriver, pin hal.Pin) {
	e.gpio = gpio
	e.debugLed = pin
	e.hasDebugLed = pin != 0
	if e.hasDebugLed {
		e.gpio.ConfigureOutput(pin)
	}
}

// StepperA returns the first channel.
func (e *Engine) StepperA() *planner.Channel {
	return e.channels[0]
}

// StepperB returns the second channel.
func (e *Engine) StepperB() *planner.Channel {
	return e.channels[1]
}

// Overflow is the timer-overflow ISR entry point: it tops up both
// channels' queues and advances the debug LED blink counter. Called
// from ISR context, once per hardware timer overflow.
func (e *Engine) Overflow() {
	for _, c := range e.channels {
		wasRunning := c.IsRunning()
		full := c.IsQueueFull()
		c.FillQueue()
		switch {
		case full:
			e.debug.Record(EvtQueueFull, c.ID(), tick.Now(), 0, 0)
		case wasRunning && !c.IsRunning():
			e.debug.Record(EvtMotionComplete, c.ID(), tick.Now(), 0, 0)
		default:
			e.debug.Record(EvtFillQueue, c.ID(), tick.Now(), 0, 0)
		}
	}
	e.tickLed()
}

func (e *Engine) tickLed() {
	if !e.hasDebugLed {
		return
	}
	e.overflowTick++
	if e.overflowTick == ledOffCount {
		e.overflowTick = 0
	}
	switch e.overflowTick {
	case ledOnCount:
		e.gpio.SetPin(e.debugLed, true)
		e.debug.Record(EvtLedToggle, 0, tick.Now(), 1, 0)
	case 0:
		e.gpio.SetPin(e.debugLed, false)
		e.debug.Record(EvtLedToggle, 0, tick.Now(), 0, 0)
	}
}

// DumpTiming returns the recent timing events captured from the overflow
// path, oldest first.
func (e *Engine) DumpTiming() []TimingEvent {
	return e.debug.Dump()
}

// ClearTiming discards the captured timing events.
func (e *Engine) ClearTiming() {
	e.debug.Clear()
}
