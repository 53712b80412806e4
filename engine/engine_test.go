package engine

import (
	"testing"

	"dualstep/hal"
)

func TestStepperAAndBAreDistinctChannels(t *testing.T) {
	e := New(16)
	if e.StepperA() == e.StepperB() {
		t.Fatal("StepperA and StepperB must be distinct channels")
	}
	if e.StepperA().ID() == e.StepperB().ID() {
		t.Fatal("StepperA and StepperB must have distinct ids")
	}
}

func TestOverflowDrivesBothChannels(t *testing.T) {
	e := New(16)
	e.StepperA().SetDynamics(16_000_000/1000, 1000)
	e.StepperB().SetDynamics(16_000_000/1000, 1000)
	e.StepperA().Move(5)
	e.StepperB().Move(-5)

	for i := 0; i < 100; i++ {
		e.Overflow()
		e.StepperA().Queue().Clear()
		e.StepperB().Queue().Clear()
	}

	if e.StepperA().PositionAfterCommandsCompleted() != 5 {
		t.Errorf("channel A final position = %d, want 5", e.StepperA().PositionAfterCommandsCompleted())
	}
	if e.StepperB().PositionAfterCommandsCompleted() != -5 {
		t.Errorf("channel B final position = %d, want -5", e.StepperB().PositionAfterCommandsCompleted())
	}
}

func TestDebugLedTogglesOnSchedule(t *testing.T) {
	e := New(4)
	e.SetDebugLed(hal.NoopGPIO{}, hal.Pin(1))

	for i := 0; i < ledOffCount; i++ {
		e.Overflow()
	}
	events := e.DumpTiming()
	found := false
	for _, evt := range events {
		if evt.EventType == EvtLedToggle {
			found = true
		}
	}
	if !found {
		t.Error("expected at least one LED toggle event after a full blink cycle")
	}
}
