package volume

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os/exec"
	"regexp"
	"strconv"
	"time"

	"go-launchvol/debug"
	"go-launchvol/layout"
)

// commandTimeout bounds each mixer call so a stuck mixer can't stall the
// control loop
const commandTimeout = 2 * time.Second

// runner executes a command and returns its stdout
type runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

var percentRe = regexp.MustCompile(`(\d+(?:\.\d+)?)%`)

// parsePercent returns the first "NN%" in out as a fraction
func parsePercent(out []byte) (float64, bool) {
	m := percentRe.FindSubmatch(out)
	if m == nil {
		return 0, false
	}
	pct, err := strconv.ParseFloat(string(m[1]), 64)
	if err != nil {
		return 0, false
	}
	return layout.Clamp(pct / 100), true
}

func toPercent(v float64) int {
	return int(math.Round(layout.Clamp(v) * 100))
}

// Mixer shells out to a command line mixer tool
type Mixer struct {
	name    string
	run     runner
	getArgs []string
	setArgs func(pct int) []string
	parse   func(out []byte) (float64, bool)
}

// NewALSA controls an ALSA simple mixer element via amixer. PulseAudio and
// PipeWire both expose an ALSA "default" device, so this covers them too.
func NewALSA(device, control string) *Mixer {
	if device == "" {
		device = "default"
	}
	if control == "" {
		control = "Master"
	}
	return &Mixer{
		name:    "amixer",
		run:     execRunner,
		getArgs: []string{"-D", device, "sget", control},
		setArgs: func(pct int) []string {
			return []string{"-D", device, "-q", "sset", control, strconv.Itoa(pct) + "%"}
		},
		parse: parsePercent,
	}
}

// NewPulse controls the default sink via pactl
func NewPulse() *Mixer {
	return &Mixer{
		name:    "pactl",
		run:     execRunner,
		getArgs: []string{"get-sink-volume", "@DEFAULT_SINK@"},
		setArgs: func(pct int) []string {
			return []string{"set-sink-volume", "@DEFAULT_SINK@", strconv.Itoa(pct) + "%"}
		},
		parse: parsePercent,
	}
}

// NewMacOS controls the output volume via osascript
func NewMacOS() *Mixer {
	return &Mixer{
		name:    "osascript",
		run:     execRunner,
		getArgs: []string{"-e", "output volume of (get volume settings)"},
		setArgs: func(pct int) []string {
			return []string{"-e", fmt.Sprintf("set volume output volume %d", pct)}
		},
		parse: parseBare,
	}
}

// parseBare reads a plain 0-100 integer ("missing value" when the output
// device has no volume control)
func parseBare(out []byte) (float64, bool) {
	n, err := strconv.Atoi(string(bytes.TrimSpace(out)))
	if err != nil {
		return 0, false
	}
	return layout.Clamp(float64(n) / 100), true
}

func (m *Mixer) Get() (float64, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	out, err := m.run(ctx, m.name, m.getArgs...)
	if err != nil {
		debug.LogEvery(10, "volume", "%s get: %v", m.name, err)
		return 0, false
	}
	return m.parse(out)
}

func (m *Mixer) Set(v float64) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	pct := toPercent(v)
	if _, err := m.run(ctx, m.name, m.setArgs(pct)...); err != nil {
		return fmt.Errorf("%s set %d%%: %w", m.name, pct, err)
	}
	debug.Log("volume", "%s set %d%%", m.name, pct)
	return nil
}
