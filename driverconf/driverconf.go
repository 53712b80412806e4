// Package driverconf brings up a TMC5160 stepper driver chip over SPI for
// a planner channel: a one-time Begin sequence only (PowerConfig is
// recorded on the host build and not applied on tinygo) — the
// actual step/direction pulses are still generated by the SPE, the TMC
// chip just turns them into coil current. Grounded on
// tinygo.org/x/drivers/tmc5160 (the scottfeldman-drivers repo in the
// example pack, whose module path is tinygo.org/x/drivers itself).
package driverconf

// PowerConfig mirrors the subset of tmc5160.PowerStageParameters /
// MotorParameters the engine bring-up needs: global current scaler, hold
// and run currents, and microstep resolution.
type PowerConfig struct {
	GlobalScaler  uint16
	HoldCurrent   uint8
	RunCurrent    uint8
	HoldDelay     uint8
	Microsteps    uint8
}

// DefaultPowerConfig is a conservative NEMA17-at-12V starting point, the
// same ballpark as tmc5160's own Default* constants.
var DefaultPowerConfig = PowerConfig{
	GlobalScaler: 128,
	HoldCurrent:  8,
	RunCurrent:   16,
	HoldDelay:    7,
	Microsteps:   16,
}
