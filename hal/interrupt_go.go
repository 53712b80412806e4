//go:build !tinygo

package hal

// State is a placeholder for the saved interrupt mask on platforms that
// have none (host Go, tests). Disable/Restore are no-ops here so the same
// call sites work unmodified under tinygo.
type State uintptr

// Disable masks interrupts and returns the previous state, to be passed to
// Restore. On host Go there are no interrupts to mask.
func Disable() State {
	return 0
}

// Restore undoes a prior Disable.
func Restore(State) {}
