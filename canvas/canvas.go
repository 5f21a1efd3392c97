// Package canvas keeps track of what every pad on the controller is showing
// and only sends the pads that changed.
package canvas

import (
	"fmt"
	"sort"

	"go-launchvol/debug"
	"go-launchvol/grid"
)

// Backend is the device side of a canvas. Coordinates are raw controller
// positions; the backend owns the mapping from grid.Color to whatever the
// device understands.
type Backend interface {
	Set(c grid.Coord, color grid.Color) error
	Flush() error
	Clear() error
}

// Canvas stages pad colors and commits only the ones that changed.
// Not safe for concurrent use; the engine owns it.
type Canvas struct {
	backend Backend
	sent    map[grid.Pad]grid.Color // last committed color per pad
	pending map[grid.Pad]grid.Color // staged since the last flush
}

// New creates a canvas that writes to backend
func New(backend Backend) *Canvas {
	return &Canvas{
		backend: backend,
		sent:    make(map[grid.Pad]grid.Color),
		pending: make(map[grid.Pad]grid.Color),
	}
}

// Set stages a color for a pad. No I/O happens until Flush.
func (c *Canvas) Set(p grid.Pad, color grid.Color) {
	if !p.Valid() {
		return
	}
	c.pending[p] = color
}

// Pending reports how many pads are staged
func (c *Canvas) Pending() int {
	return len(c.pending)
}

// Flush writes every staged pad whose color differs from what was last
// committed, then flushes the backend. It returns the number of pads
// written. On error nothing is committed and the staged colors are kept,
// so the next Flush retries them.
func (c *Canvas) Flush() (int, error) {
	if len(c.pending) == 0 {
		return 0, nil
	}

	changed := make([]grid.Pad, 0, len(c.pending))
	for p, color := range c.pending {
		if prev, ok := c.sent[p]; !ok || prev != color {
			changed = append(changed, p)
		}
	}
	sort.Slice(changed, func(i, j int) bool { return changed[i].Less(changed[j]) })

	if len(changed) == 0 {
		clear(c.pending)
		return 0, nil
	}

	for _, p := range changed {
		if err := c.backend.Set(p.Coord(), c.pending[p]); err != nil {
			return 0, fmt.Errorf("set %v: %w", p, err)
		}
	}
	if err := c.backend.Flush(); err != nil {
		return 0, fmt.Errorf("flush: %w", err)
	}

	for _, p := range changed {
		c.sent[p] = c.pending[p]
	}
	clear(c.pending)

	debug.Log("canvas", "flush: wrote=%d", len(changed))
	return len(changed), nil
}

// Clear blanks the device and records every pad as Off. Staged colors are
// kept.
func (c *Canvas) Clear() error {
	if err := c.backend.Clear(); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	for _, p := range grid.All() {
		c.sent[p] = grid.Off
	}
	return nil
}
