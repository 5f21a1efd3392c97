package layout

import "fmt"

// ActionKind identifies what an Action asks the engine to do
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionPop
	ActionPush
	ActionReplace
	ActionFn
)

func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionPop:
		return "pop"
	case ActionPush:
		return "push"
	case ActionReplace:
		return "replace"
	case ActionFn:
		return "fn"
	}
	return fmt.Sprintf("action(%d)", int(k))
}

// Action is what a layout returns after handling input. Layout is set for
// push and replace, Fn for ActionFn.
type Action struct {
	Kind   ActionKind
	Layout Layout
	Fn     func() error
}

// None leaves the stack alone
var None = Action{}

// Pop removes the active layout
func Pop() Action {
	return Action{Kind: ActionPop}
}

// Push shows l on top of the active layout
func Push(l Layout) Action {
	return Action{Kind: ActionPush, Layout: l}
}

// Replace swaps the active layout for l at the same depth
func Replace(l Layout) Action {
	return Action{Kind: ActionReplace, Layout: l}
}

// Do runs fn without touching the stack
func Do(fn func() error) Action {
	return Action{Kind: ActionFn, Fn: fn}
}

func (a Action) String() string {
	if a.Layout != nil {
		return fmt.Sprintf("%s(%T)", a.Kind, a.Layout)
	}
	return a.Kind.String()
}
