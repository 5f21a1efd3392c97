package engine

import (
	"errors"
	"fmt"

	"go-launchvol/debug"
	"go-launchvol/layout"
)

// Apply carries out an action against the stack.
//
// Popping the root layout is ignored: the root refuses to be dismissed and
// Apply returns nil. A failing Hide leaves the stack untouched; a failing
// Show is reported after the stack has changed.
func (e *Engine) Apply(a layout.Action) error {
	switch a.Kind {
	case layout.ActionNone:
		return nil

	case layout.ActionPop:
		if len(e.stack) <= 1 {
			debug.Log("engine", "pop ignored: root layout")
			return nil
		}
		if err := e.Active().Hide(); err != nil {
			return fmt.Errorf("hide: %w", err)
		}
		e.stack[len(e.stack)-1] = nil
		e.stack = e.stack[:len(e.stack)-1]
		e.depth.Store(int32(len(e.stack)))
		e.dirty = true
		debug.Log("engine", "pop depth=%d", len(e.stack))
		if err := e.Active().Show(); err != nil {
			return fmt.Errorf("show: %w", err)
		}
		return nil

	case layout.ActionPush:
		if a.Layout == nil {
			return errors.New("push: nil layout")
		}
		if err := e.Active().Hide(); err != nil {
			return fmt.Errorf("hide: %w", err)
		}
		e.stack = append(e.stack, a.Layout)
		e.depth.Store(int32(len(e.stack)))
		e.dirty = true
		debug.Log("engine", "push %T depth=%d", a.Layout, len(e.stack))
		if err := a.Layout.Show(); err != nil {
			return fmt.Errorf("show: %w", err)
		}
		return nil

	case layout.ActionReplace:
		if a.Layout == nil {
			return errors.New("replace: nil layout")
		}
		if err := e.Active().Hide(); err != nil {
			return fmt.Errorf("hide: %w", err)
		}
		e.stack[len(e.stack)-1] = a.Layout
		e.dirty = true
		debug.Log("engine", "replace with %T depth=%d", a.Layout, len(e.stack))
		if err := a.Layout.Show(); err != nil {
			return fmt.Errorf("show: %w", err)
		}
		return nil

	case layout.ActionFn:
		if a.Fn == nil {
			return nil
		}
		return a.Fn()
	}
	return fmt.Errorf("unknown action %v", a.Kind)
}
