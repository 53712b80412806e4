//go:build !tinygo

package tick

// getTicks/setTicks back the host build with a plain cached counter; tests
// and the simulator advance it explicitly via Set.
var ticks uint32

func getTicks() uint32 {
	return ticks
}

func setTicks(v uint32) {
	ticks = v
}
