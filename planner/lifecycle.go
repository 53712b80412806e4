package planner

import "dualstep/hal"

// SetGPIODriver wires the GPIO backend used for the direction/enable
// pins. Platform bring-up calls this once; without it the channel uses
// hal.NoopGPIO and EnableOutputs/DisableOutputs are no-ops.
func (c *Channel) SetGPIODriver(gpio hal.GPIODriver) {
	c.gpio = gpio
}

// SetDirectionPin configures the pin the SPE drives for this channel's
// direction signal. The planner itself never writes it — the SPE does,
// per the command stream's flip bits — but the planner configures it as
// an output at bring-up.
func (c *Channel) SetDirectionPin(p hal.Pin) {
	c.dirPin = p
	c.hasDirPin = true
	c.gpio.ConfigureOutput(p)
}

// SetEnablePin configures the pin EnableOutputs/DisableOutputs drive.
func (c *Channel) SetEnablePin(p hal.Pin) {
	c.enablePin = p
	c.hasEnPin = true
	c.gpio.ConfigureOutput(p)
}

// SetAutoEnable records the channel's auto-enable flag. Nothing in the
// channel reads the flag: EnableOutputs/DisableOutputs drive a configured
// enable pin whether it is on or off.
func (c *Channel) SetAutoEnable(on bool) {
	c.autoEnable = on
}

// EnableOutputs drives the enable pin low, if configured (§4.2).
func (c *Channel) EnableOutputs() {
	if c.hasEnPin {
		c.gpio.SetPin(c.enablePin, false)
	}
}

// DisableOutputs drives the enable pin high, if configured (§4.2).
func (c *Channel) DisableOutputs() {
	if c.hasEnPin {
		c.gpio.SetPin(c.enablePin, true)
	}
}

// IsRunning reports whether the channel has unexecuted queued commands.
func (c *Channel) IsRunning() bool {
	return !c.queue.IsEmpty()
}

// IsQueueEmpty reports whether the channel's step command queue has no
// pending commands.
func (c *Channel) IsQueueEmpty() bool {
	return c.queue.IsEmpty()
}

// IsQueueFull reports whether the channel's step command queue has no
// room for another command.
func (c *Channel) IsQueueFull() bool {
	return c.queue.IsFull()
}
