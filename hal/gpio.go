// Package hal specifies the contracts the planner needs from the hardware
// it does not itself own: GPIO pins for direction/enable/debug-LED signals,
// the step-pulse engine that drains a stepcmd.Queue, and the critical
// section primitive the planner uses to publish shared state. None of the
// implementations here are the hardware ISR itself — that stays out of
// scope per the engine's design — but the contracts are concrete enough to
// write a software reference implementation against (see the simhal
// package) and to drive real silicon from (see hwspe, driverconf).
package hal

// Pin identifies a GPIO pin number. The zero value means "unconfigured" —
// callers check before wiring it.
type Pin uint32

// GPIODriver is the abstract GPIO surface the planner's direction/enable
// pins and the engine's debug LED are driven through. Platform code
// registers a concrete implementation; the planner never touches hardware
// registers directly.
type GPIODriver interface {
	ConfigureOutput(pin Pin) error
	SetPin(pin Pin, high bool) error
	GetPin(pin Pin) (bool, error)
}

// NoopGPIO is the driver a channel or engine uses until it is given a real
// one (planner.Channel.SetGPIODriver, engine.Engine.SetDebugLed); every
// call succeeds without touching a pin.
type NoopGPIO struct{}

func (NoopGPIO) ConfigureOutput(Pin) error      { return nil }
func (NoopGPIO) SetPin(Pin, bool) error         { return nil }
func (NoopGPIO) GetPin(Pin) (bool, error)       { return false, nil }
