package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-launchvol/debug"
	"go-launchvol/grid"
	"go-launchvol/layout"
)

// Frame runs one iteration of the control loop; msg is nil for a tick.
//
//  1. Update the active layout, which samples whatever it displays.
//     layout.ErrUnavailable skips the frame: nothing is drawn or flushed.
//  2. Draw if the layout changed or the stack did.
//  3. Hand msg to the active layout, apply the returned action, then
//     Update and draw whichever layout is now active.
//  4. Flush the canvas.
//
// Any layout error stops the frame where it happened.
func (e *Engine) Frame(msg *grid.Message) error {
	if err := e.refresh(); err != nil {
		return err
	}

	if msg != nil {
		action, err := e.Active().Input(*msg)
		if err != nil {
			return fmt.Errorf("input %v: %w", msg, err)
		}
		if action.Kind != layout.ActionNone {
			debug.Log("engine", "%v -> %v", msg, action)
		}
		if err := e.Apply(action); err != nil {
			return fmt.Errorf("apply %v: %w", action, err)
		}
		// input usually changes what the layout shows
		e.dirty = true
		if err := e.refresh(); err != nil {
			return err
		}
	}

	if _, err := e.canvas.Flush(); err != nil {
		e.flushFailures++
		return err
	}
	e.flushFailures = 0
	return nil
}

// refresh updates the active layout and draws it when needed
func (e *Engine) refresh() error {
	active := e.Active()
	changed, err := active.Update()
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}
	if !changed && !e.dirty {
		return nil
	}
	if err := active.Draw(e.canvas); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	e.dirty = false
	return nil
}

// Run drives frames until ctx is cancelled: one per message from events
// and one per tick. Frames never overlap. Layout errors and unavailable
// values are logged and the loop carries on; Run gives up after too many
// consecutive failed flushes, and returns ErrInputClosed if events closes.
func (e *Engine) Run(ctx context.Context, events <-chan grid.Message) error {
	ticker := time.NewTicker(e.tick)
	defer ticker.Stop()

	if err := e.step(nil); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-events:
			if !ok {
				return ErrInputClosed
			}
			if err := e.step(&msg); err != nil {
				return err
			}
		case <-ticker.C:
			if err := e.step(nil); err != nil {
				return err
			}
		}
	}
}

// step runs a frame and decides whether its error ends the loop
func (e *Engine) step(msg *grid.Message) error {
	err := e.Frame(msg)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, layout.ErrUnavailable):
		debug.LogEvery(10, "engine", "frame skipped: %v", err)
		return nil
	case e.flushFailures >= e.maxFlushFailures:
		return fmt.Errorf("giving up after %d failed flushes: %w", e.flushFailures, err)
	default:
		debug.Log("engine", "frame error: %v", err)
		return nil
	}
}
