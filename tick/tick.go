// Package tick provides the 16 MHz tick timebase the planner and step
// commands are expressed in, with a hardware/host split mirroring how the
// rest of the stack separates cached state from live register reads.
package tick

// Frequency is the hardware timer rate in Hz. One tick = 62.5ns.
const Frequency = 16_000_000

// MinInterval is the minimum inter-step interval (32kHz hard speed ceiling).
const MinInterval = Frequency / 32000

// MaxInterval is the largest interval encodable in a step command (§3).
const MaxInterval = 255*16384 + 65535

var bootTime uint32

// Now returns the current tick count.
func Now() uint32 {
	return getTicks()
}

// Set overrides the current tick count. Intended for tests and host
// simulation; a no-op data path on real hardware, where the counter is the
// free-running timer register itself.
func Set(ticks uint32) {
	setTicks(ticks)
}

// Init captures the boot-time tick count for uptime reporting.
func Init() {
	bootTime = Now()
}

// Uptime returns ticks elapsed since Init was called.
func Uptime() uint32 {
	return Now() - bootTime
}

// FromMicros converts a microsecond duration to ticks.
func FromMicros(us uint32) uint32 {
	return (us * Frequency) / 1_000_000
}

// ToMicros converts a tick duration to microseconds.
func ToMicros(ticks uint32) uint32 {
	return ticks / (Frequency / 1_000_000)
}
