package midi

import (
	"errors"
	"fmt"
	"strings"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver
)

// ErrNotFound is returned when no port matches
var ErrNotFound = errors.New("launchpad not found")

// scanTimeout bounds port enumeration (CoreMIDI can hang)
const scanTimeout = 3 * time.Second

type ports struct {
	ins  []drivers.In
	outs []drivers.Out
}

func scan() (ports, error) {
	ch := make(chan ports, 1)
	go func() {
		var p ports
		for _, in := range gomidi.GetInPorts() {
			p.ins = append(p.ins, in)
		}
		for _, out := range gomidi.GetOutPorts() {
			p.outs = append(p.outs, out)
		}
		ch <- p
	}()

	select {
	case p := <-ch:
		return p, nil
	case <-time.After(scanTimeout):
		// User needs to run: sudo killall coreaudiod midiserver
		return ports{}, errors.New("MIDI port scan timed out")
	}
}

// ListPorts returns the names of every MIDI input and output port
func ListPorts() (ins, outs []string, err error) {
	p, err := scan()
	if err != nil {
		return nil, nil, err
	}
	for _, in := range p.ins {
		ins = append(ins, in.String())
	}
	for _, out := range p.outs {
		outs = append(outs, out.String())
	}
	return ins, outs, nil
}

// FindPorts returns the input and output port of a controller. With an
// empty match the model decides; otherwise match is a case-insensitive
// substring of the port name.
func FindPorts(model Model, match string) (drivers.In, drivers.Out, error) {
	p, err := scan()
	if err != nil {
		return nil, nil, err
	}

	matches := model.Match
	if match != "" {
		needle := strings.ToLower(match)
		matches = func(name string) bool {
			return strings.Contains(strings.ToLower(name), needle)
		}
	}

	var in drivers.In
	for _, port := range p.ins {
		if matches(port.String()) {
			in = port
			break
		}
	}
	var out drivers.Out
	for _, port := range p.outs {
		if matches(port.String()) {
			out = port
			break
		}
	}

	if in == nil || out == nil {
		return nil, nil, fmt.Errorf("%s (match %q): %w", model.Name(), match, ErrNotFound)
	}
	return in, out, nil
}

// Connect finds and opens a controller
func Connect(model Model, match string) (*Launchpad, error) {
	in, out, err := FindPorts(model, match)
	if err != nil {
		return nil, err
	}
	return Open(model, in, out)
}

// CloseDriver releases the MIDI driver; call once at exit
func CloseDriver() {
	gomidi.CloseDriver()
}
