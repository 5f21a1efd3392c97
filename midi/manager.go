package midi

import (
	"context"
	"sync"
	"time"

	"go-launchvol/debug"
	"go-launchvol/grid"
)

// DeviceManager keeps one Launchpad connected across unplug/replug. It is a
// canvas.Backend: writes go to the connected device, and a device that
// (re)appears is repainted with everything committed so far. Pad events from
// whichever device is connected arrive on a single channel.
type DeviceManager struct {
	model    Model
	match    string
	pollRate time.Duration
	connect  func(Model, string) (*Launchpad, error)
	present  func(id string) bool

	mu      sync.Mutex
	current *Launchpad
	shown   map[grid.Coord]grid.Color // committed colors
	staged  map[grid.Coord]grid.Color // since the last Flush

	events chan grid.Message
}

// NewDeviceManager creates a device manager for model. match overrides the
// model's port name matching (see FindPorts).
func NewDeviceManager(model Model, match string) *DeviceManager {
	return &DeviceManager{
		model:    model,
		match:    match,
		pollRate: time.Second,
		connect:  Connect,
		present:  portPresent,
		shown:    make(map[grid.Coord]grid.Color),
		staged:   make(map[grid.Coord]grid.Color),
		events:   make(chan grid.Message, 32),
	}
}

// Events returns pad events from the connected device
func (dm *DeviceManager) Events() <-chan grid.Message {
	return dm.events
}

// Connected reports whether a device is currently attached
func (dm *DeviceManager) Connected() bool {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	return dm.current != nil
}

// Device returns the connected device's port name, or "" when none
func (dm *DeviceManager) Device() string {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	if dm.current == nil {
		return ""
	}
	return dm.current.ID()
}

// Run polls for the device until ctx is done (blocking - run in goroutine)
func (dm *DeviceManager) Run(ctx context.Context) {
	ticker := time.NewTicker(dm.pollRate)
	defer ticker.Stop()

	// Initial scan
	dm.scan(ctx)

	for {
		select {
		case <-ctx.Done():
			dm.disconnect()
			return
		case <-ticker.C:
			dm.scan(ctx)
		}
	}
}

func (dm *DeviceManager) scan(ctx context.Context) {
	dm.mu.Lock()
	current := dm.current
	dm.mu.Unlock()

	if current != nil {
		if !dm.present(current.ID()) {
			debug.Log("lp", "%s disconnected", current.ID())
			dm.disconnect()
		}
		return
	}

	lp, err := dm.connect(dm.model, dm.match)
	if err != nil {
		debug.LogEvery(30, "lp", "connect: %v", err)
		return
	}

	dm.mu.Lock()
	dm.current = lp
	// repaint what the canvas believes is showing
	for c, color := range dm.shown {
		if err := lp.Set(c, color); err != nil {
			debug.Log("lp", "repaint %v: %v", c, err)
		}
	}
	err = lp.Flush()
	dm.mu.Unlock()
	if err != nil {
		debug.Log("lp", "repaint flush: %v", err)
	}
	debug.Log("lp", "%s connected, repainted %d pads", lp.ID(), len(dm.shown))

	go dm.forward(ctx, lp)
}

func (dm *DeviceManager) forward(ctx context.Context, lp *Launchpad) {
	for msg := range lp.Events() {
		select {
		case dm.events <- msg:
		case <-ctx.Done():
			return
		}
	}
}

func (dm *DeviceManager) disconnect() {
	dm.mu.Lock()
	lp := dm.current
	dm.current = nil
	dm.mu.Unlock()

	if lp != nil {
		lp.Close()
	}
}

func portPresent(id string) bool {
	ins, _, err := ListPorts()
	if err != nil {
		// a hung scan says nothing about the device
		return true
	}
	for _, name := range ins {
		if name == id {
			return true
		}
	}
	return false
}

func (dm *DeviceManager) Set(c grid.Coord, color grid.Color) error {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	dm.staged[c] = color
	if dm.current == nil {
		return nil
	}
	return dm.current.Set(c, color)
}

// Flush sends staged writes to the device. Without a device the writes
// are only remembered for the next connect.
func (dm *DeviceManager) Flush() error {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	if dm.current != nil {
		if err := dm.current.Flush(); err != nil {
			clear(dm.staged)
			return err
		}
	}
	for c, color := range dm.staged {
		dm.shown[c] = color
	}
	clear(dm.staged)
	return nil
}

func (dm *DeviceManager) Clear() error {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	clear(dm.staged)
	for _, p := range grid.All() {
		dm.shown[p.Coord()] = grid.Off
	}
	if dm.current == nil {
		return nil
	}
	return dm.current.Clear()
}
