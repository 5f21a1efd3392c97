// Package engine owns the layout stack and runs the control loop: it hands
// input to the active layout, applies the action that comes back, draws,
// and flushes the canvas.
package engine

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go-launchvol/canvas"
	"go-launchvol/layout"
)

// ErrInputClosed is returned by Run when the event channel closes,
// usually because the controller was unplugged
var ErrInputClosed = errors.New("input closed")

const (
	defaultTick             = time.Second
	defaultMaxFlushFailures = 5
)

// Engine is the layout stack plus the canvas it draws into. The last
// element of the stack is active. The stack is never empty.
// Not safe for concurrent use: one goroutine calls Frame or Run. Depth is
// the exception and may be read from anywhere.
type Engine struct {
	stack  []layout.Layout
	depth  atomic.Int32
	canvas *canvas.Canvas
	dirty  bool

	tick             time.Duration
	maxFlushFailures int
	flushFailures    int
}

// Option configures an Engine
type Option func(*Engine)

// WithTick sets the periodic redraw interval (default 1s)
func WithTick(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.tick = d
		}
	}
}

// WithMaxFlushFailures sets how many consecutive failed flushes Run
// tolerates before giving up (default 5)
func WithMaxFlushFailures(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxFlushFailures = n
		}
	}
}

// New creates an engine with root at the bottom of the stack and shows it
func New(root layout.Layout, c *canvas.Canvas, opts ...Option) (*Engine, error) {
	if root == nil {
		return nil, errors.New("engine: nil root layout")
	}
	e := &Engine{
		canvas:           c,
		tick:             defaultTick,
		maxFlushFailures: defaultMaxFlushFailures,
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := root.Show(); err != nil {
		return nil, fmt.Errorf("show root: %w", err)
	}
	e.stack = append(e.stack, root)
	e.depth.Store(1)
	e.dirty = true
	return e, nil
}

// Active returns the layout on top of the stack
func (e *Engine) Active() layout.Layout {
	return e.stack[len(e.stack)-1]
}

// Depth returns the number of layouts on the stack
func (e *Engine) Depth() int {
	return int(e.depth.Load())
}

// Canvas returns the canvas the engine draws into
func (e *Engine) Canvas() *canvas.Canvas {
	return e.canvas
}
