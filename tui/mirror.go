package tui

import (
	"maps"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"go-launchvol/grid"
)

// FrameMsg carries the pad colors after a flush
type FrameMsg map[grid.Pad]grid.Color

// Mirror is a canvas.Backend that keeps a copy of the pads for the
// terminal. Flush publishes the frame; only the latest unread frame is
// kept so a slow terminal never blocks the control loop.
type Mirror struct {
	mu     sync.Mutex
	shown  map[grid.Pad]grid.Color
	staged map[grid.Pad]grid.Color
	frames chan FrameMsg
}

func NewMirror() *Mirror {
	return &Mirror{
		shown:  make(map[grid.Pad]grid.Color),
		staged: make(map[grid.Pad]grid.Color),
		frames: make(chan FrameMsg, 1),
	}
}

func (m *Mirror) Set(c grid.Coord, color grid.Color) error {
	pad, ok := grid.PadAt(c)
	if !ok {
		return nil
	}
	m.mu.Lock()
	m.staged[pad] = color
	m.mu.Unlock()
	return nil
}

func (m *Mirror) Flush() error {
	m.mu.Lock()
	maps.Copy(m.shown, m.staged)
	clear(m.staged)
	frame := FrameMsg(maps.Clone(m.shown))
	m.mu.Unlock()

	m.publish(frame)
	return nil
}

func (m *Mirror) Clear() error {
	m.mu.Lock()
	clear(m.staged)
	for _, p := range grid.All() {
		m.shown[p] = grid.Off
	}
	frame := FrameMsg(maps.Clone(m.shown))
	m.mu.Unlock()

	m.publish(frame)
	return nil
}

func (m *Mirror) publish(frame FrameMsg) {
	for {
		select {
		case m.frames <- frame:
			return
		default:
		}
		// drop the stale frame nobody read yet
		select {
		case <-m.frames:
		default:
		}
	}
}

// ListenForFrames waits for the next published frame
func ListenForFrames(m *Mirror) tea.Cmd {
	return func() tea.Msg {
		return <-m.frames
	}
}
