package main

import (
	"strconv"

	"dualstep/engine"
	"dualstep/planner"
	"dualstep/simhal"
)

// dispatchLocal runs one REPL command against the in-process simulated
// engine, draining each channel's queue through a software SPE so
// position state stays consistent between commands.
func dispatchLocal(eng *engine.Engine, a, b *planner.Channel, speA, speB *simhal.SPE, args []string) string {
	channel := func(id string) *planner.Channel {
		if id == "b" {
			return b
		}
		return a
	}

	switch args[0] {
	case "move":
		delta, err := strconv.ParseInt(args[2], 10, 32)
		if err != nil {
			return err.Error()
		}
		channel(args[1]).Move(int32(delta))
		return "ok"
	case "moveto":
		pos, err := strconv.ParseInt(args[2], 10, 32)
		if err != nil {
			return err.Error()
		}
		channel(args[1]).MoveTo(int32(pos))
		return "ok"
	case "setdyn":
		speed, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return err.Error()
		}
		accel, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return err.Error()
		}
		channel(args[1]).SetDynamics(uint32(16_000_000.0/speed), accel)
		return "ok"
	case "pos":
		return strconv.FormatInt(int64(channel(args[1]).CurrentPosition()), 10)
	case "tick":
		n := 1
		if len(args) > 1 {
			if v, err := strconv.Atoi(args[1]); err == nil {
				n = v
			}
		}
		for i := 0; i < n; i++ {
			eng.Overflow()
			speA.DrainAll(0, a.Queue())
			speB.DrainAll(1, b.Queue())
		}
		return "ok"
	default:
		return "unknown command: " + args[0]
	}
}
