package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"

	"go-launchvol/canvas"
	"go-launchvol/grid"
	"go-launchvol/layout"
	"go-launchvol/midi"
)

func main() {
	modelName := flag.String("model", "mini", "controller model: mini or x")
	port := flag.String("port", "", "MIDI port name substring")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		return
	}

	model, err := midi.ModelByName(*modelName)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	defer midi.CloseDriver()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	switch flag.Arg(0) {
	case "list":
		listPorts()
	case "detect":
		detect(*port)
	case "leds":
		testLEDs(ctx, model, *port)
	case "input":
		printInput(ctx, model, *port)
	case "poll":
		pollDevices(ctx)
	default:
		usage()
	}
}

func usage() {
	fmt.Println("MIDI Test Scripts")
	fmt.Println("")
	fmt.Println("Usage: miditest [-model mini|x] [-port name] <command>")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list    - List all MIDI ports")
	fmt.Println("  detect  - Find a Launchpad of every known model")
	fmt.Println("  leds    - Sweep a volume bar across the grid")
	fmt.Println("  input   - Print pad presses and releases")
	fmt.Println("  poll    - Poll for device changes")
}

func listPorts() {
	fmt.Println("(waiting up to 3 seconds...)")
	ins, outs, err := midi.ListPorts()
	if err != nil {
		fmt.Printf("\n%v\n", err)
		fmt.Println("Fix: sudo killall coreaudiod midiserver")
		return
	}

	fmt.Println("=== MIDI Input Ports ===")
	for i, name := range ins {
		fmt.Printf("  %d: %s\n", i, name)
	}
	fmt.Println("\n=== MIDI Output Ports ===")
	for i, name := range outs {
		fmt.Printf("  %d: %s\n", i, name)
	}
}

func detect(port string) {
	found := false
	for _, model := range midi.Models() {
		fmt.Printf("Looking for %s...\n", model.Name())
		in, out, err := midi.FindPorts(model, port)
		if err != nil {
			fmt.Printf("  %v\n", err)
			continue
		}
		fmt.Printf("  Found input:  %s\n", in.String())
		fmt.Printf("  Found output: %s\n", out.String())
		found = true
	}
	if !found {
		fmt.Println("\nNo Launchpad found")
	}
}

// testLEDs draws the volume bar through the same canvas the daemon uses,
// sweeping from empty to full and back
func testLEDs(ctx context.Context, model midi.Model, port string) {
	lp, err := midi.Connect(model, port)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer lp.Close()

	c := canvas.New(lp)
	fmt.Printf("Sweeping bar on %s. Ctrl+C to stop.\n", lp.ID())

	const steps = 64
	ticker := time.NewTicker(40 * time.Millisecond)
	defer ticker.Stop()

	for i := 0; ; i++ {
		pos := i % (2 * steps)
		if pos > steps {
			pos = 2*steps - pos
		}
		layout.DrawBar(c, float64(pos)/steps, layout.DefaultBarStyle)
		n, err := c.Flush()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if i%steps == 0 {
			fmt.Printf("  frame %d: %d pads written\n", i, n)
		}

		select {
		case <-ctx.Done():
			fmt.Println("Done!")
			return
		case <-ticker.C:
		}
	}
}

func printInput(ctx context.Context, model midi.Model, port string) {
	lp, err := midi.Connect(model, port)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer lp.Close()

	// light what is pressed so the mapping can be checked by eye
	c := canvas.New(lp)
	fmt.Printf("Listening on %s. Press pads, Ctrl+C to exit.\n", lp.ID())
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-lp.Events():
			if !ok {
				return
			}
			fmt.Printf("[%s] %-20s raw=%v\n", time.Now().Format("15:04:05.000"), msg, msg.Pad.Coord())
			color := grid.Off
			if msg.IsPress() {
				color = grid.Amber
			}
			c.Set(msg.Pad, color)
			if _, err := c.Flush(); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
		}
	}
}

func pollDevices(ctx context.Context) {
	fmt.Println("Polling for device changes every 2 seconds...")
	fmt.Println("Connect/disconnect Launchpad to test. Ctrl+C to exit.")

	var lastIn, lastOut []string
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		inNames, outNames, err := midi.ListPorts()
		if err != nil {
			fmt.Printf("[%s] %v\n", time.Now().Format("15:04:05"), err)
		} else if !slices.Equal(inNames, lastIn) || !slices.Equal(outNames, lastOut) {
			fmt.Printf("\n[%s] Device change detected!\n", time.Now().Format("15:04:05"))
			fmt.Printf("  Inputs: %v\n", inNames)
			fmt.Printf("  Outputs: %v\n", outNames)

			for _, name := range inNames {
				if model := matchModel(name); model != nil {
					fmt.Printf("  -> %s: %s\n", model.Name(), name)
				} else if strings.Contains(strings.ToLower(name), "launchpad") {
					fmt.Printf("  -> unsupported Launchpad: %s\n", name)
				}
			}

			lastIn = inNames
			lastOut = outNames
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func matchModel(port string) midi.Model {
	for _, model := range midi.Models() {
		if model.Match(port) {
			return model
		}
	}
	return nil
}
