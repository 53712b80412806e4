package planner

import (
	"dualstep/hal"
	"dualstep/stepcmd"
)

// PositionAfterCommandsCompleted returns the position the motor will
// occupy once every already-queued command executes (§4.2).
func (c *Channel) PositionAfterCommandsCompleted() int32 {
	return c.posAtQueueEnd
}

// CurrentPosition estimates the motor's real-time position by replaying
// queued-but-unexecuted commands backward from posAtQueueEnd (§4.6). It
// takes a brief critical section to snapshot the queue's read/write
// pointers, then walks the (immutable once written) pending entries
// outside the critical section.
func (c *Channel) CurrentPosition() int32 {
	state := hal.Disable()
	head, tail := c.queue.Snapshot()
	hal.Restore(state)

	pos := c.posAtQueueEnd
	dirHigh := c.dirHighAtQueueEnd
	c.queue.WalkBack(head, tail, func(cmd stepcmd.Command) {
		steps := int32(cmd.StepCount())
		if dirHigh {
			pos -= steps
		} else {
			pos += steps
		}
		if cmd.FlipsDirection() {
			dirHigh = !dirHigh
		}
	})
	return pos
}
