package planner

// SetDynamics stores new kinematics and recomputes minSteps (§4.2). It
// does not recompute an in-flight deceleration schedule — per §9's first
// open question, that is a documented limitation; the caller reissues
// MoveTo after retuning if the in-flight plan needs to change.
//
// minTravelTicks is the interval corresponding to the configured max
// speed (smaller is faster); accel is in steps/s^2.
func (c *Channel) SetDynamics(minTravelTicks uint32, accel float64) {
	c.minTravelTicks = minTravelTicks
	c.accel = accel
	c.minSteps = minSteps(accel, minTravelTicks)
}

// minSteps computes round(16e6 * 16e6 / (accel * minTravelTicks^2)): the
// step count of a full rest-to-vmax-to-rest symmetric ramp (§3).
func minSteps(accel float64, minTravelTicks uint32) int32 {
	if accel <= 0 || minTravelTicks == 0 {
		return 0
	}
	t := float64(minTravelTicks)
	v := 16_000_000.0 * 16_000_000.0 / (accel * t * t)
	return int32(roundFloat(v))
}
