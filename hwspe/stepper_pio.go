//go:build rp2040

// Package hwspe is the rp2040/PIO hardware step pulse engine: the SPE
// contract's one genuinely hardware-driven implementation, built on the
// TinyGo PIO assembler the same way the teacher's targets/pio package is.
//
// Adapted from targets/pio/stepper_pio.go. The teacher's PIO program
// consumes fixed (count, delay, direction) command words — it has no
// notion of a per-step changing interval. This package's PIO program is
// unchanged, but the Go side now decodes a stepcmd.Command's msb/lsw
// interval and delta_change into a sequence of single-step PIO words,
// recomputing the delay every step so the ramp (not just a flat rate)
// reaches the pin.
package hwspe

import (
	"machine"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"

	"dualstep/hal"
	"dualstep/stepcmd"
)

// pioClockHz is the PIO state machine clock: the 125 MHz system clock
// with clock divider 1 (cfg.SetClkDivIntFrac(1, 0) in New), as in the
// teacher's program.
const pioClockHz = 125_000_000

// buildStepperProgram is the teacher's PIO program, unchanged: pull a
// 32-bit word (count:16 | delay:8 | dir:1), toggle the step pin count
// times with delay cycles of spacing, respecting direction.
func buildStepperProgram() []uint16 {
	asm := rp2pio.AssemblerV0{SidesetBits: 0}
	return []uint16{
		asm.Pull(false, true).Encode(),
		asm.Out(rp2pio.OutDestX, 16).Encode(),
		asm.Out(rp2pio.OutDestY, 8).Encode(),
		asm.Out(rp2pio.OutDestPins, 1).Encode(),
		asm.Set(rp2pio.SetDestPins, 1).Delay(7).Encode(),
		asm.Set(rp2pio.SetDestPins, 0).Encode(),
		asm.Jmp(6, rp2pio.JmpYNZeroDec).Encode(),
		asm.Jmp(4, rp2pio.JmpXNZeroDec).Encode(),
	}
}

const stepperPIOOrigin = 0

// HWSPE drains one channel's stepcmd.Queue into a PIO state machine,
// satisfying hal.SPEConsumer.
type HWSPE struct {
	pio    *rp2pio.PIO
	sm     rp2pio.StateMachine
	stepPin machine.Pin
	dirPin  machine.Pin
	dirHigh bool
}

// New claims a PIO state machine and loads the stepper program onto it.
// pioNum selects PIO0/PIO1, smNum the state machine (0-3).
func New(pioNum, smNum uint8, stepPin, dirPin machine.Pin) (*HWSPE, error) {
	var pioHW *rp2pio.PIO
	if pioNum == 0 {
		pioHW = rp2pio.PIO0
	} else {
		pioHW = rp2pio.PIO1
	}
	h := &HWSPE{
		pio:     pioHW,
		sm:      pioHW.StateMachine(smNum),
		stepPin: stepPin,
		dirPin:  dirPin,
	}
	h.sm.TryClaim()

	program := buildStepperProgram()
	offset, err := h.pio.AddProgram(program, stepperPIOOrigin)
	if err != nil {
		return nil, err
	}

	h.stepPin.Configure(machine.PinConfig{Mode: h.pio.PinMode()})
	h.dirPin.Configure(machine.PinConfig{Mode: h.pio.PinMode()})

	cfg := rp2pio.DefaultStateMachineConfig()
	cfg.SetSetPins(h.stepPin, 1)
	cfg.SetOutPins(h.dirPin, 1)
	cfg.SetOutShift(true, false, 32)
	cfg.SetWrap(offset+uint8(len(program))-1, offset)
	cfg.SetClkDivIntFrac(1, 0)

	h.sm.Init(offset, cfg)
	h.sm.SetPindirsConsecutive(h.stepPin, 1, true)
	h.sm.SetPindirsConsecutive(h.dirPin, 1, true)
	h.sm.SetPinsConsecutive(h.stepPin, 1, false)
	h.sm.SetPinsConsecutive(h.dirPin, 1, false)
	h.sm.SetEnabled(true)

	return h, nil
}

// Attach is a no-op beyond bookkeeping: pins are already claimed at
// construction. Present to satisfy hal.SPEConsumer.
func (h *HWSPE) Attach(channel uint8, dir, enable hal.Pin) {}

// Detach halts and restarts the state machine, clearing any queued PIO
// words — an emergency stop.
func (h *HWSPE) Detach(channel uint8) {
	h.sm.SetEnabled(false)
	h.sm.ClearFIFOs()
	h.sm.Restart()
	h.sm.SetEnabled(true)
}

// Drain pops every currently-queued command from q and streams it to the
// PIO FIFO one step at a time, recomputing each step's delay from the
// command's initial interval and delta_change so the hardware reproduces
// the planner's ramp instead of a single flat rate.
func (h *HWSPE) Drain(q *stepcmd.Queue) {
	for {
		cmd, ok := q.Pop()
		if !ok {
			return
		}
		h.runCommand(cmd)
	}
}

func (h *HWSPE) runCommand(cmd stepcmd.Command) {
	if cmd.FlipsDirection() {
		h.dirHigh = !h.dirHigh
	}
	interval := int32(cmd.Interval())
	n := int(cmd.StepCount())
	for i := 0; i < n; i++ {
		h.queueStep(uint32(interval), h.dirHigh)
		interval += int32(cmd.DeltaChange)
	}
}

// queueStep pushes a single-step PIO command word, converting a tick
// interval to PIO delay cycles at pioClockHz.
func (h *HWSPE) queueStep(intervalTicks uint32, dirHigh bool) {
	delayCycles := uint32(uint64(intervalTicks) * pioClockHz / 16_000_000)
	if delayCycles > 255 {
		delayCycles = 255
	}
	if delayCycles == 0 {
		delayCycles = 1
	}
	word := uint32(1) | (delayCycles << 16)
	if dirHigh {
		word |= 1 << 24
	}
	for h.sm.IsTxFIFOFull() {
	}
	h.sm.TxPut(word)
}
