//go:build !tinygo

package driverconf

// Chip is a host-side stand-in: there is no SPI bus to drive outside
// tinygo, so bring-up always reports success without touching hardware.
// This lets the host CLI demo and tests exercise the planner/engine path
// without a real driver chip attached.
type Chip struct {
	cfg PowerConfig
}

// NewChip returns a Chip that records cfg but performs no I/O.
func NewChip(cfg PowerConfig) (*Chip, error) {
	return &Chip{cfg: cfg}, nil
}

// Config returns the configuration the chip was built with.
func (c *Chip) Config() PowerConfig {
	return c.cfg
}
