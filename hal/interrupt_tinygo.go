//go:build tinygo

package hal

import "runtime/interrupt"

// State is the saved interrupt mask returned by Disable.
type State = interrupt.State

// Disable masks interrupts for the critical section that follows and
// returns the previous state.
func Disable() State {
	return interrupt.Disable()
}

// Restore undoes a prior Disable, re-enabling interrupts if they were
// enabled before it.
func Restore(s State) {
	interrupt.Restore(s)
}
