package planner

import "math"

// minDticks is the floor on the planning horizon: 16e6/4000 = 4000 ticks,
// i.e. 250 microseconds, chosen so the ISR never plans a segment shorter
// than it takes to come back around (§4.4 step 8).
const minDticks = 16_000_000 / 4000

// FillQueue is the periodic planner callback (isr_fill_queue, §4.4),
// invoked from the timer-overflow context on every overflow. It tops up
// the channel's queue with the next command realizing the trapezoidal
// profile toward targetPos, or does nothing if there's no room, nothing
// to do, or the channel isn't under planner control.
func (c *Channel) FillQueue() {
	if !c.isrControlEnabled {
		return
	}
	if c.queue.IsFull() {
		return
	}
	if c.queue.IsEmpty() && c.targetPos == c.posAtQueueEnd {
		c.isrControlEnabled = false
		return
	}
	if c.targetPos == c.posAtQueueEnd {
		return
	}

	remaining := c.targetPos - c.posAtQueueEnd

	if c.ticksAtQueueEnd == 0 {
		c.ticksAtQueueEnd = uint32(roundFloat(16_000_000.0 * math.Sqrt(2.0/c.accel)))
	}

	accelerating := false
	decelerateToStop := false
	reduceSpeed := false
	switch {
	case absInt32(remaining) <= c.decelerationStart:
		decelerateToStop = true
	case c.minTravelTicks < c.ticksAtQueueEnd:
		accelerating = true
	case c.minTravelTicks > c.ticksAtQueueEnd:
		reduceSpeed = true
	}

	currSpeed := 16_000_000.0 / float64(c.ticksAtQueueEnd)
	requestedSpeed := 0.0
	if c.minTravelTicks != 0 {
		requestedSpeed = 16_000_000.0 / float64(c.minTravelTicks)
	}
	dticks := c.ticksAtQueueEnd
	if dticks < minDticks {
		dticks = minDticks
	}

	switch {
	case accelerating:
		dv := c.accel * float64(dticks) / 16_000_000.0
		if dv < 1.0 {
			dticks = uint32(roundFloat(16_000_000.0 / c.accel))
		}
		currSpeed += dv
		currSpeed = math.Min(currSpeed, requestedSpeed)
	case reduceSpeed:
		currSpeed -= c.accel * float64(dticks) / 16_000_000.0
		currSpeed = math.Max(currSpeed, requestedSpeed)
	}
	if decelerateToStop {
		c.decTimeMs = math.Max(c.decTimeMs-float64(dticks)/16000.0, 1.0)
		envelope := 2.0 * float64(absInt32(remaining)) * 1000.0 / c.decTimeMs
		currSpeed = math.Min(envelope, currSpeed)
	}

	ticksAfterCommand := uint32(roundFloat(16_000_000.0 / currSpeed))

	steps := dticks / ticksAfterCommand
	steps = clampUint32(steps, 1, 127)
	if uint32(absInt32(remaining)) < steps {
		steps = uint32(absInt32(remaining))
	}

	ticksAtStart := c.ticksAtQueueEnd
	change := int32(0)
	if steps > 1 {
		s2 := int32(steps * (steps - 1) / 2)
		change = int32(ticksAfterCommand) - int32(c.ticksAtQueueEnd)
		if absInt32(change) > 32768 {
			ticksAtStart = uint32(int32(c.ticksAtQueueEnd) + change)
			steps = 1
			change = 0
		} else {
			change /= s2
		}
	} else {
		ticksAtStart = ticksAfterCommand
	}

	c.addQueueEntry(ticksAtStart, uint8(steps), remaining > 0, int16(change))

	if int32(steps) == absInt32(remaining) {
		c.addQueueStepperStop()
	}
}

func clampUint32(v, lo, hi uint32) uint32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
