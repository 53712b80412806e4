// Command dualstepfw is the rp2040 firmware entry point: it wires the
// engine's two channels to PIO step pulse engines and TMC5160 driver
// chips over SPI, then drives Engine.Overflow from a polling main loop.
//
// Adapted from targets/rp2040/main.go. The teacher's main loop pumps a
// Klipper dictionary/transport stack (USB CDC framing, command dispatch,
// zlib-compressed dictionary); none of that applies here, so only the
// polling superloop shape survives — watchdog disable on boot, a tight
// loop with a short sleep calling into the per-tick work, panic recovery
// around each iteration so a bad command can't wedge the firmware.
package main

import (
	"machine"
	"time"

	"dualstep/driverconf"
	"dualstep/engine"
	"dualstep/hal"
	"dualstep/hwspe"
)

const (
	stepPinA = machine.GPIO2
	dirPinA  = machine.GPIO3
	csPinA   = machine.GPIO5

	stepPinB = machine.GPIO6
	dirPinB  = machine.GPIO7
	csPinB   = machine.GPIO9

	debugLedPin = machine.LED

	queueCapacity = 32
)

// pinGPIO implements hal.GPIODriver directly over machine.Pin, for the
// channels' direction/enable lines and the heartbeat LED.
type pinGPIO struct{}

func (pinGPIO) ConfigureOutput(p hal.Pin) error {
	machine.Pin(p).Configure(machine.PinConfig{Mode: machine.PinOutput})
	return nil
}

func (pinGPIO) SetPin(p hal.Pin, high bool) error {
	machine.Pin(p).Set(high)
	return nil
}

func (pinGPIO) GetPin(p hal.Pin) (bool, error) {
	return machine.Pin(p).Get(), nil
}

func main() {
	machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})

	eng := engine.New(queueCapacity)
	eng.Init()
	eng.SetDebugLed(pinGPIO{}, hal.Pin(debugLedPin))

	a := eng.StepperA()
	b := eng.StepperB()
	a.SetGPIODriver(pinGPIO{})
	b.SetGPIODriver(pinGPIO{})
	a.SetDirectionPin(hal.Pin(dirPinA))
	b.SetDirectionPin(hal.Pin(dirPinB))
	a.SetDynamics(16_000_000/4_000, 20_000)
	b.SetDynamics(16_000_000/4_000, 20_000)

	speA, err := hwspe.New(0, 0, stepPinA, dirPinA)
	if err != nil {
		panic(err)
	}
	speB, err := hwspe.New(0, 1, stepPinB, dirPinB)
	if err != nil {
		panic(err)
	}

	machine.SPI0.Configure(machine.SPIConfig{Frequency: 2_000_000, Mode: 3})
	if _, err := driverconf.NewChip(machine.SPI0, csPinA, 0, driverconf.DefaultPowerConfig); err != nil {
		println("dualstepfw: channel A driver bring-up failed:", err.Error())
	}
	if _, err := driverconf.NewChip(machine.SPI0, csPinB, 1, driverconf.DefaultPowerConfig); err != nil {
		println("dualstepfw: channel B driver bring-up failed:", err.Error())
	}

	for {
		func() {
			defer func() {
				recover()
			}()
			eng.Overflow()
			speA.Drain(a.Queue())
			speB.Drain(b.Queue())
		}()
		time.Sleep(10 * time.Microsecond)
	}
}
