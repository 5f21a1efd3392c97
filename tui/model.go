package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go-launchvol/debug"
	"go-launchvol/grid"
	"go-launchvol/layout"
	"go-launchvol/theme"
	"go-launchvol/widgets"
)

const statusInterval = 500 * time.Millisecond

// Status describes what the header shows
type Status struct {
	Device string  // connected controller, empty when none
	Volume float64 // current level in [0,1]
	Known  bool    // false when the volume cannot be read
	Depth  int     // layouts on the engine stack, 0 when unknown
}

// layoutBounds holds cached layout info
type layoutBounds struct {
	gridTop int
}

type Model struct {
	Mirror *Mirror
	Theme  *theme.Theme

	// Virtual turns mouse clicks on the pads into presses sent to Pads
	Virtual bool
	Pads    chan<- grid.Message

	// Bar is shown in the legend
	Bar layout.BarStyle

	status     func() Status
	quit       func()
	keys       keyMap
	help       help.Model
	frame      FrameMsg
	current    Status
	showLegend bool
	quitting   bool
	bounds     *layoutBounds
}

type statusMsg Status

// NewModel builds the mirror UI. status is polled for the header; quit is
// called when the user quits.
func NewModel(mirror *Mirror, th *theme.Theme, status func() Status, quit func()) Model {
	return Model{
		Mirror: mirror,
		Theme:  th,
		Bar:    layout.DefaultBarStyle,
		status: status,
		quit:   quit,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		bounds: &layoutBounds{},
	}
}

func pollStatus(status func() Status) tea.Cmd {
	if status == nil {
		return nil
	}
	return tea.Tick(statusInterval, func(time.Time) tea.Msg {
		return statusMsg(status())
	})
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		ListenForFrames(m.Mirror),
		pollStatus(m.status),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			if m.quit != nil {
				m.quit()
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Legend):
			m.showLegend = !m.showLegend
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.click(msg.X, msg.Y)
		}

	case FrameMsg:
		m.frame = msg
		return m, ListenForFrames(m.Mirror)

	case statusMsg:
		m.current = Status(msg)
		return m, pollStatus(m.status)
	}

	return m, nil
}

// click presses and releases the pad under the cursor
func (m Model) click(x, y int) {
	if !m.Virtual || m.Pads == nil {
		return
	}
	pad, ok := widgets.HitTest(x, y-m.bounds.gridTop)
	if !ok {
		return
	}
	for _, msg := range []grid.Message{grid.Press(pad), grid.Release(pad)} {
		select {
		case m.Pads <- msg:
		default:
			debug.Log("tui", "click dropped: %v", msg)
		}
	}
}

func (m Model) header() string {
	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())

	device := m.current.Device
	switch {
	case m.Virtual:
		device = "virtual"
	case device == "":
		device = "no device"
	}

	level := dimStyle.Render("--%")
	if m.current.Known {
		levelStyle := lipgloss.NewStyle().Foreground(m.Theme.Level(m.current.Volume))
		level = levelStyle.Render(formatPercent(m.current.Volume))
	}

	out := headerStyle.Render("launchvol") + "  " + level + "  " + dimStyle.Render(device)
	if m.current.Depth > 0 {
		out += "  " + dimStyle.Render(fmt.Sprintf("depth %d", m.current.Depth))
	}
	return out
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%3d%%", int(v*100+0.5))
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := m.header()
	gridView := widgets.RenderGrid(m.Theme, m.frame)

	// Compute layout bounds
	m.bounds.gridTop = 1 + lipgloss.Height(header) + 1

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(gridView)
	out.WriteString("\n\n")

	if m.showLegend {
		out.WriteString(widgets.RenderLegendItem(m.Theme, m.Bar.Filled, "filled", "below the volume"))
		out.WriteString("\n")
		out.WriteString(widgets.RenderLegendItem(m.Theme, m.Bar.Marker, "marker", "the volume itself"))
		out.WriteString("\n")
		out.WriteString(widgets.RenderLegendItem(m.Theme, grid.DimGreen, "side 0/1", "nudge up / down"))
		out.WriteString("\n\n")
	}

	out.WriteString(m.help.View(m.keys))
	return out.String()
}
