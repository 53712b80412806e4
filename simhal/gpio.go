// Package simhal is a software-only reference implementation of the
// hal contracts, used by tests and the CLI demo to run a channel's full
// move lifecycle without real hardware attached.
//
// Grounded on core/gpio_test.go's commented-out MockGPIODriver — written
// out in full here and actually exercised, rather than left dead.
package simhal

import "dualstep/hal"

// MockGPIO is an in-memory hal.GPIODriver recording pin state, for tests
// and the host CLI demo.
type MockGPIO struct {
	pins map[hal.Pin]bool
}

// NewMockGPIO builds an empty mock GPIO driver.
func NewMockGPIO() *MockGPIO {
	return &MockGPIO{pins: make(map[hal.Pin]bool)}
}

func (m *MockGPIO) ConfigureOutput(pin hal.Pin) error {
	m.pins[pin] = false
	return nil
}

func (m *MockGPIO) SetPin(pin hal.Pin, high bool) error {
	m.pins[pin] = high
	return nil
}

func (m *MockGPIO) GetPin(pin hal.Pin) (bool, error) {
	return m.pins[pin], nil
}
