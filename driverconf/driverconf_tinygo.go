//go:build tinygo

package driverconf

import (
	"machine"

	"tinygo.org/x/drivers/tmc5160"
)

// Chip wraps a tmc5160.Driver configured from a PowerConfig.
type Chip struct {
	driver *tmc5160.Driver
}

// NewChip builds a TMC5160 driver over SPI, one chip-select pin per
// channel, and runs its Begin sequence with zero-valued power-stage and
// motor parameters. cfg is not applied to the chip.
func NewChip(spi machine.SPI, cs machine.Pin, address uint8, cfg PowerConfig) (*Chip, error) {
	comm := tmc5160.NewSPIComm(spi, map[uint8]machine.Pin{address: cs})
	if err := comm.Setup(); err != nil {
		return nil, err
	}
	driver := tmc5160.NewDriver(comm, address, machine.NoPin, tmc5160.Stepper{})

	power := tmc5160.PowerStageParameters{}
	motor := tmc5160.MotorParameters{}
	if !driver.Begin(power, motor, tmc5160.Clockwise) {
		return nil, errBringupFailed
	}
	return &Chip{driver: driver}, nil
}

type bringupError string

func (e bringupError) Error() string { return string(e) }

const errBringupFailed = bringupError("driverconf: tmc5160 bring-up failed")
