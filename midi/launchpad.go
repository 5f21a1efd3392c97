package midi

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go-launchvol/debug"
	"go-launchvol/grid"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

var ledSendCount uint64

// Launchpad is a connected controller. It is a canvas.Backend for the
// lights and a source of grid.Messages for the pads.
type Launchpad struct {
	model    Model
	id       string
	send     func(msg gomidi.Message) error
	stopFunc func()

	batch     []gomidi.Message
	events    chan grid.Message
	closeOnce sync.Once
}

// Open connects to a Launchpad on the given ports and sends the model's
// setup messages. Either port may be nil.
func Open(model Model, inPort drivers.In, outPort drivers.Out) (*Launchpad, error) {
	var send func(msg gomidi.Message) error
	if outPort != nil {
		s, err := gomidi.SendTo(outPort)
		if err != nil {
			return nil, fmt.Errorf("open output: %w", err)
		}
		send = s
	}

	id := model.Name()
	if inPort != nil {
		id = inPort.String()
	}
	lp := newLaunchpad(model, id, send)

	for _, msg := range model.Setup() {
		if err := lp.write(msg); err != nil {
			return nil, fmt.Errorf("setup: %w", err)
		}
	}

	if inPort != nil {
		stop, err := gomidi.ListenTo(inPort, func(msg gomidi.Message, timestampms int32) {
			lp.handle(msg)
		})
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		lp.stopFunc = stop
	}

	debug.Log("lp", "opened %s (%s)", lp.id, model.Name())
	return lp, nil
}

func newLaunchpad(model Model, id string, send func(gomidi.Message) error) *Launchpad {
	return &Launchpad{
		model:  model,
		id:     id,
		send:   send,
		events: make(chan grid.Message, 32),
	}
}

func (lp *Launchpad) ID() string {
	return lp.id
}

func (lp *Launchpad) Model() Model {
	return lp.model
}

// Events delivers pad presses and releases. Closed by Close.
func (lp *Launchpad) Events() <-chan grid.Message {
	return lp.events
}

// handle runs on the MIDI driver's goroutine
func (lp *Launchpad) handle(msg gomidi.Message) {
	coord, pressed, ok := lp.model.Decode(msg)
	if !ok {
		return
	}
	pad, ok := grid.PadAt(coord)
	if !ok {
		return
	}
	m := grid.Release(pad)
	if pressed {
		m = grid.Press(pad)
	}
	select {
	case lp.events <- m:
	default:
		debug.Log("lp", "event dropped: %v", m)
	}
}

func (lp *Launchpad) write(msg gomidi.Message) error {
	if lp.send == nil {
		return nil
	}
	atomic.AddUint64(&ledSendCount, 1)
	return lp.send(msg)
}

// Set queues a light change; Flush sends it
func (lp *Launchpad) Set(c grid.Coord, color grid.Color) error {
	msg, ok := lp.model.Encode(c, color)
	if !ok {
		return fmt.Errorf("no light at %v", c)
	}
	lp.batch = append(lp.batch, msg)
	return nil
}

// Flush sends every queued light change. On error the rest of the batch is
// dropped; the canvas will resend it.
func (lp *Launchpad) Flush() error {
	batch := lp.batch
	lp.batch = lp.batch[:0]

	for _, msg := range batch {
		if err := lp.write(msg); err != nil {
			return fmt.Errorf("send: %w", err)
		}
	}

	count := atomic.LoadUint64(&ledSendCount)
	if len(batch) > 0 && count%100 < uint64(len(batch)) {
		debug.Log("lp-send", "batch count=%d (this batch=%d)", count, len(batch))
	}
	return nil
}

// Clear turns every light off immediately
func (lp *Launchpad) Clear() error {
	lp.batch = lp.batch[:0]
	var errs []error
	for _, msg := range lp.model.Reset() {
		errs = append(errs, lp.write(msg))
	}
	return errors.Join(errs...)
}

// Close blanks the device, stops listening and closes Events
func (lp *Launchpad) Close() error {
	var err error
	lp.closeOnce.Do(func() {
		err = lp.Clear()
		if lp.stopFunc != nil {
			lp.stopFunc()
		}
		close(lp.events)
	})
	return err
}
