package hal

// SPEConsumer is the contract the step-pulse engine presents to the core.
// It is implemented by the out-of-scope output-compare ISR (see hwspe for
// an rp2040/PIO-backed instance, simhal for a software reference used in
// tests and the CLI demo). The core never calls these methods itself; they
// document what the consumer side of a stepcmd.Queue is required to do so
// the planner's FIFO and ordering invariants (§4.1, §5) hold:
//
//   - read a command's fields before observing the advanced write pointer
//     (the planner publishes fields, then the pointer — an acquire/release
//     pair on architectures without implicit ordering)
//   - emit Steps>>1 pulses at the decoded initial interval, applying
//     DeltaChange after each pulse
//   - toggle the direction pin when the command's flip bit (Steps&1) is
//     set, before the first pulse of that command
//   - advance the read pointer only after the last pulse of a command
//   - disconnect the step output when the queue drains
type SPEConsumer interface {
	// Attach gives the consumer read access to a channel's queue. Called
	// once at channel construction.
	Attach(channel uint8, dir, enable Pin)

	// Detach disconnects the consumer's timer output compare, stopping
	// pulse generation immediately (emergency halt).
	Detach(channel uint8)
}
