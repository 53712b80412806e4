package simhal

import (
	"testing"

	"dualstep/hal"
	"dualstep/planner"
)

func TestMockGPIOConfigureAndSet(t *testing.T) {
	gpio := NewMockGPIO()
	pin := hal.Pin(25)

	if err := gpio.ConfigureOutput(pin); err != nil {
		t.Fatalf("ConfigureOutput failed: %v", err)
	}
	if err := gpio.SetPin(pin, true); err != nil {
		t.Fatalf("SetPin(true) failed: %v", err)
	}
	if state, err := gpio.GetPin(pin); err != nil || !state {
		t.Errorf("GetPin = (%v, %v), want (true, nil)", state, err)
	}
	if err := gpio.SetPin(pin, false); err != nil {
		t.Fatalf("SetPin(false) failed: %v", err)
	}
	if state, err := gpio.GetPin(pin); err != nil || state {
		t.Errorf("GetPin = (%v, %v), want (false, nil)", state, err)
	}
}

func TestSPEDrainMatchesPlannerPosition(t *testing.T) {
	c := planner.NewChannel(0, 16)
	c.SetDynamics(16_000_000/1000, 1000)
	c.Move(400)

	spe := NewSPE(NewMockGPIO())
	spe.Attach(0, hal.Pin(1), hal.Pin(2))

	var totalDelta int32
	for i := 0; i < 2000; i++ {
		c.FillQueue()
		totalDelta += spe.DrainAll(0, c.Queue())
	}

	if totalDelta != 400 {
		t.Errorf("SPE drained net delta %d, want 400", totalDelta)
	}
	if totalDelta != c.PositionAfterCommandsCompleted() {
		t.Errorf("SPE delta %d does not match planner's posAtQueueEnd %d",
			totalDelta, c.PositionAfterCommandsCompleted())
	}
}
