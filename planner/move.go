package planner

import (
	"math"

	"dualstep/hal"
)

// Move requests a relative move of delta steps from the position the
// motor will occupy once every already-queued command executes (§4.2).
func (c *Channel) Move(delta int32) {
	c.targetPos = c.posAtQueueEnd + delta
	c.calculateMove(delta)
}

// MoveTo requests an absolute move to pos, superseding any in-flight
// target (§4.2). The in-flight segment already pushed to the queue
// continues to completion; only the deceleration schedule is recomputed.
func (c *Channel) MoveTo(pos int32) {
	move := pos - c.posAtQueueEnd
	c.targetPos = pos
	c.calculateMove(move)
}

// calculateMove is the move precomputation (§4.3): given a pending signed
// move, derive the deceleration schedule (deceleration_start, dec_time_ms)
// that will bring the motor to rest at the target, choosing between
// emergency stop, full-ramp, and already-cruising cases.
func (c *Channel) calculateMove(move int32) {
	if move == 0 {
		return
	}
	steps := absInt32(move)

	if c.ticksAtQueueEnd == 0 {
		c.ticksAtQueueEnd = uint32(roundFloat(16_000_000.0 * math.Sqrt(2.0/c.accel)))
	}
	currSpeed := 16_000_000.0 / float64(c.ticksAtQueueEnd)
	sStop := int32(roundFloat(currSpeed * currSpeed / 2.0 / c.accel))

	var newDecelerationStart int32
	var newDecTimeMs float64

	switch {
	case sStop > steps:
		// Emergency stop: can't even stop from the current speed within
		// the remaining distance. Decelerate for the whole remainder.
		newDecelerationStart = steps
		newDecTimeMs = roundFloat(2000.0 * float64(steps) / currSpeed)
	case c.ticksAtQueueEnd > c.minTravelTicks:
		// Slower than v_max: ramp up, possibly cruise, ramp down.
		sFullRamp := steps + sStop
		rampSteps := sFullRamp
		if c.minSteps < rampSteps {
			rampSteps = c.minSteps
		}
		newDecelerationStart = rampSteps / 2
		newDecTimeMs = roundFloat(math.Sqrt(float64(rampSteps)/c.accel) * 1000.0)
	default:
		// Already at or above cruise speed.
		vMax := 0.0
		if c.minTravelTicks != 0 {
			vMax = 16_000_000.0 / float64(c.minTravelTicks)
		}
		newDecelerationStart = c.minSteps / 2
		newDecTimeMs = roundFloat(vMax / c.accel * 1000.0)
	}

	state := hal.Disable()
	c.decelerationStart = newDecelerationStart
	c.decTimeMs = newDecTimeMs
	hal.Restore(state)

	c.isrControlEnabled = true
}
