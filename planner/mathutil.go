package planner

import "math"

// roundFloat rounds half away from zero, matching the C round() the
// original planner math is specified against (spec §4.3's "round(...)").
func roundFloat(f float64) float64 {
	return math.Round(f)
}

func absInt32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

