package engine

// TimingEvent captures a timing-critical planner event for post-mortem
// analysis, adapted from core/debug.go's TimingEvent to this planner's own
// event vocabulary (fill-queue decisions, add-queue-entry rejections,
// motion completion) rather than the teacher's Klipper-wire event set.
type TimingEvent struct {
	EventType uint8
	Channel   uint8
	Clock     uint32
	Value1    uint32
	Value2    uint32
}

// Event type codes.
const (
	EvtFillQueue      = 1 // FillQueue invoked without back-pressure (it may or may not have pushed a command)
	EvtMotionComplete = 2 // isr_control_enabled cleared, move done
	EvtQueueFull      = 3 // FillQueue backed off, queue full
	EvtAddEntryReject = 4 // add_queue_entry returned a non-OK result
	EvtLedToggle      = 5 // debug LED state changed
)

const timingRingSize = 32

// debugRing is a non-blocking, fixed-size ring of recent timing events —
// always-on capture, cheap enough to run from the overflow ISR, meant to
// be dumped after the fact rather than printed live.
type debugRing struct {
	events [timingRingSize]TimingEvent
	head   uint8
}

// Record appends an event, overwriting the oldest once the ring wraps.
func (r *debugRing) Record(eventType, channel uint8, clock, v1, v2 uint32) {
	r.events[r.head] = TimingEvent{
		EventType: eventType,
		Channel:   channel,
		Clock:     clock,
		Value1:    v1,
		Value2:    v2,
	}
	r.head = (r.head + 1) % timingRingSize
}

// Dump returns the ring's contents in oldest-to-newest order, skipping
// never-written slots.
func (r *debugRing) Dump() []TimingEvent {
	out := make([]TimingEvent, 0, timingRingSize)
	for i := uint8(0); i < timingRingSize; i++ {
		idx := (r.head + i) % timingRingSize
		evt := r.events[idx]
		if evt.EventType == 0 {
			continue
		}
		out = append(out, evt)
	}
	return out
}

// Clear discards every recorded event.
func (r *debugRing) Clear() {
	for i := range r.events {
		r.events[i] = TimingEvent{}
	}
	r.head = 0
}
