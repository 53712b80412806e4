package planner

import "dualstep/stepcmd"

// addQueueEntry validates and pushes one step command, then — on success
// — advances the channel's queue-end state the way add_queue_entry does in
// the original planner: position, direction, and the tail interval are
// only updated once the command actually lands in the queue (§4.5).
func (c *Channel) addQueueEntry(i0 uint32, steps uint8, dirHigh bool, change int16) stepcmd.AddResult {
	flip := dirHigh != c.dirHighAtQueueEnd
	res := c.queue.AddEntry(i0, steps, change, flip)
	if res != stepcmd.AddOK {
		return res
	}
	if dirHigh {
		c.posAtQueueEnd += int32(steps)
	} else {
		c.posAtQueueEnd -= int32(steps)
	}
	c.ticksAtQueueEnd = uint32(int32(change)*(int32(steps)-1) + int32(i0))
	c.dirHighAtQueueEnd = dirHigh
	return stepcmd.AddOK
}

// addQueueStepperStop marks the channel as cold-started without pushing a
// command — the next move bootstraps its initial interval from rest
// (§4.4 step 14).
func (c *Channel) addQueueStepperStop() {
	c.ticksAtQueueEnd = 0
}
