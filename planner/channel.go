// Package planner implements the move planner (MP): the per-channel
// kinematic state machine that fills a stepcmd.Queue with trapezoidal-ramp
// step commands toward a caller-set target position. It is invoked
// periodically from a timer-overflow context (see the engine package) and
// exposes the caller-facing move API directly.
//
// Grounded on core/stepper.go's loadNextMove/ISR-fill pattern and
// standalone/planner/planner.go's package shape, with the trapezoidal
// math itself following original_source/src/FastAccelStepper.cpp's
// _calculate_move/isr_fill_queue — the teacher's own planner predates the
// msb/lsw command encoding and doesn't attempt the emergency-stop /
// ramp-clip math this spec requires.
package planner

import (
	"dualstep/hal"
	"dualstep/stepcmd"
)

// Channel owns one motor's target position, kinematics, and the tail-state
// of its step command queue. The zero value is not usable; construct with
// NewChannel.
type Channel struct {
	id    uint8
	queue *stepcmd.Queue

	gpio       hal.GPIODriver
	dirPin     hal.Pin
	enablePin  hal.Pin
	hasDirPin  bool
	hasEnPin   bool
	autoEnable bool

	// Caller-set target, mutated under the main context.
	targetPos int32

	// Queue-tail kinematic state, mutated by the planner (main context on
	// move/moveTo's calculateMove, ISR context on FillQueue).
	posAtQueueEnd     int32
	dirHighAtQueueEnd bool
	ticksAtQueueEnd   uint32

	// Configured kinematics, set by SetDynamics.
	minTravelTicks uint32
	accel          float64
	minSteps       int32

	// Deceleration schedule, published as a pair under a critical section
	// (§5) since FillQueue reads both together from ISR context while
	// calculateMove may write them from main context.
	decelerationStart int32
	decTimeMs         float64

	isrControlEnabled bool
}

// NewChannel builds a channel with the given id (selects which of the two
// physical motors it drives — purely a label here, queue isolation is what
// actually separates them) and a step command queue of the given capacity
// (rounded up to a power of two by stepcmd.NewQueue).
func NewChannel(id uint8, queueCapacity int) *Channel {
	return &Channel{
		id:    id,
		queue: stepcmd.NewQueue(queueCapacity),
		gpio:  hal.NoopGPIO{},
	}
}

// ID returns the channel's identifier (0 for A, 1 for B in the two-channel
// engine).
func (c *Channel) ID() uint8 {
	return c.id
}

// Queue exposes the channel's step command queue for the step pulse
// engine to drain. The planner never pops from the queue (CurrentPosition
// only reads the pending entries); only FillQueue writes to it.
func (c *Channel) Queue() *stepcmd.Queue {
	return c.queue
}
