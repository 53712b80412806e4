// Command dualstepctl is an interactive demo/control CLI for the
// dual-stepper engine: either a local simulated engine (default) or a
// remote one reached over hostlink, driven the same way from the REPL.
//
// Grounded on host/cmd/gopper-host/main.go's flag+bufio.Scanner REPL
// shape, adapted from the teacher's Klipper-dictionary commands to this
// engine's move/moveto/set_dynamics/position vocabulary, with
// google/shlex used to tokenize REPL lines (quoted arguments, etc.)
// instead of the teacher's plain strings.Fields.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/shlex"

	"dualstep/config"
	"dualstep/engine"
	"dualstep/hostlink"
	"dualstep/simhal"
)

var (
	device     = flag.String("device", "", "serial device path; empty runs a local simulated engine")
	baud       = flag.Int("baud", 115200, "baud rate (ignored for USB CDC)")
	configPath = flag.String("config", "", "path to a channel config JSON file; empty uses defaults")
)

func main() {
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: reading config: %v\n", err)
			os.Exit(1)
		}
		cfg, err = config.LoadConfig(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: parsing config: %v\n", err)
			os.Exit(1)
		}
	}

	if *device != "" {
		runRemote(*device, *baud)
		return
	}
	runLocal(cfg)
}

func runRemote(device string, baud int) {
	fmt.Printf("Connecting to %s...\n", device)
	port, err := hostlink.Open(&hostlink.Config{Device: device, Baud: baud, ReadTimeout: 100})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()
	link := hostlink.NewLink(port)

	repl(func(args []string) string {
		return dispatchRemote(link, args)
	})
}

func runLocal(cfg *config.Config) {
	fmt.Println("dualstepctl: local simulated engine (no --device given)")
	eng := engine.New(cfg.Channels["a"].QueueLength)
	eng.Init()

	a := eng.StepperA()
	b := eng.StepperB()
	a.SetDynamics(cfg.Channels["a"].MinTravelTicks(), cfg.Channels["a"].Accel)
	b.SetDynamics(cfg.Channels["b"].MinTravelTicks(), cfg.Channels["b"].Accel)

	gpio := simhal.NewMockGPIO()
	speA := simhal.NewSPE(gpio)
	speB := simhal.NewSPE(gpio)
	speA.Attach(0, 0, 0)
	speB.Attach(1, 0, 0)

	repl(func(args []string) string {
		return dispatchLocal(eng, a, b, speA, speB, args)
	})
}

// repl reads shlex-tokenized command lines and hands them to handle,
// printing its return value, until EOF or "quit".
func repl(handle func(args []string) string) {
	fmt.Println("Enter commands (type 'help' for available commands, 'quit' to exit):")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		args, err := shlex.Split(scanner.Text())
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		if args[0] == "quit" || args[0] == "exit" {
			fmt.Println("Goodbye!")
			return
		}
		if args[0] == "help" {
			printHelp()
			continue
		}
		fmt.Println(handle(args))
	}
}

func printHelp() {
	fmt.Println(`commands:
  move <a|b> <delta>
  moveto <a|b> <pos>
  setdyn <a|b> <max_speed_steps_per_sec> <accel_steps_per_sec2>
  pos <a|b>
  tick [n]            (local mode only: advance n overflow ticks, default 1)
  help
  quit`)
}

func dispatchRemote(link *hostlink.Link, args []string) string {
	switch args[0] {
	case "move":
		delta, _ := strconv.ParseInt(args[2], 10, 32)
		reply, err := link.Move(args[1], int32(delta))
		return formatReply(reply, err)
	case "moveto":
		pos, _ := strconv.ParseInt(args[2], 10, 32)
		reply, err := link.MoveTo(args[1], int32(pos))
		return formatReply(reply, err)
	case "setdyn":
		speed, _ := strconv.ParseFloat(args[2], 64)
		accel, _ := strconv.ParseFloat(args[3], 64)
		reply, err := link.SetDynamics(args[1], uint32(16_000_000.0/speed), accel)
		return formatReply(reply, err)
	case "pos":
		pos, err := link.Position(args[1])
		if err != nil {
			return err.Error()
		}
		return strconv.FormatInt(int64(pos), 10)
	default:
		return "unknown command: " + args[0]
	}
}

func formatReply(reply string, err error) string {
	if err != nil {
		return err.Error()
	}
	return reply
}
