//go:build tinygo

package tick

import "sync/atomic"

var (
	cached      uint32
	hardwareNow func() uint32
)

// SetHardwareSource registers the function that reads the live hardware
// timer register. Once set, Now always reflects real hardware time rather
// than the cached value. Platform init code calls this before any other
// tick operation.
func SetHardwareSource(f func() uint32) {
	hardwareNow = f
}

func getTicks() uint32 {
	if hardwareNow != nil {
		return hardwareNow()
	}
	return atomic.LoadUint32(&cached)
}

func setTicks(v uint32) {
	atomic.StoreUint32(&cached, v)
}
