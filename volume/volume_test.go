package volume

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go-launchvol/layout"
)

const amixerOutput = `Simple mixer control 'Master',0
  Capabilities: pvolume pswitch pswitch-joined
  Playback channels: Front Left - Front Right
  Limits: Playback 0 - 65536
  Mono:
  Front Left: Playback 42597 [65%] [on]
  Front Right: Playback 42597 [65%] [on]
`

const pactlOutput = `Volume: front-left: 26214 /  40% / -23.88 dB,   front-right: 26214 /  40% / -23.88 dB
        balance 0.00
`

type call struct {
	name string
	args []string
}

func fakeRunner(out string, err error, calls *[]call) runner {
	return func(ctx context.Context, name string, args ...string) ([]byte, error) {
		*calls = append(*calls, call{name, args})
		return []byte(out), err
	}
}

func TestALSA_GetParsesPercent(t *testing.T) {
	var calls []call
	m := NewALSA("", "")
	m.run = fakeRunner(amixerOutput, nil, &calls)

	v, ok := m.Get()
	if !ok || v != 0.65 {
		t.Fatalf("Get() = %v, %v; want 0.65, true", v, ok)
	}
	if got := strings.Join(calls[0].args, " "); got != "-D default sget Master" {
		t.Fatalf("amixer args = %q", got)
	}
}

func TestALSA_SetRoundsToPercent(t *testing.T) {
	var calls []call
	m := NewALSA("hw:1", "PCM")
	m.run = fakeRunner("", nil, &calls)

	if err := m.Set(28.0 / 63.0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := strings.Join(calls[0].args, " "); got != "-D hw:1 -q sset PCM 44%" {
		t.Fatalf("amixer args = %q, want -D hw:1 -q sset PCM 44%%", got)
	}
}

func TestPulse_GetParsesFirstChannel(t *testing.T) {
	var calls []call
	m := NewPulse()
	m.run = fakeRunner(pactlOutput, nil, &calls)

	v, ok := m.Get()
	if !ok || v != 0.40 {
		t.Fatalf("Get() = %v, %v; want 0.40, true", v, ok)
	}
}

func TestMacOS_MissingValueIsUnavailable(t *testing.T) {
	var calls []call
	m := NewMacOS()
	m.run = fakeRunner("missing value\n", nil, &calls)

	if _, ok := m.Get(); ok {
		t.Fatalf("Get() ok = true for missing value")
	}

	m.run = fakeRunner("73\n", nil, &calls)
	if v, ok := m.Get(); !ok || v != 0.73 {
		t.Fatalf("Get() = %v, %v; want 0.73, true", v, ok)
	}
}

func TestMixer_CommandFailure(t *testing.T) {
	var calls []call
	boom := errors.New("exit status 1")
	m := NewALSA("", "")
	m.run = fakeRunner("", boom, &calls)

	if _, ok := m.Get(); ok {
		t.Fatalf("Get() ok = true when amixer fails")
	}
	if err := m.Set(0.5); !errors.Is(err, boom) {
		t.Fatalf("Set error = %v, want %v", err, boom)
	}
}

func TestAsValue_MapsUnavailable(t *testing.T) {
	var calls []call
	m := NewALSA("", "")
	m.run = fakeRunner("no percent here", nil, &calls)

	if _, err := AsValue(m).Get(); !errors.Is(err, layout.ErrUnavailable) {
		t.Fatalf("Get error = %v, want ErrUnavailable", err)
	}
}

func TestMemory_Clamps(t *testing.T) {
	m := NewMemory(2)
	if v, _ := m.Get(); v != 1 {
		t.Fatalf("NewMemory(2) = %v, want 1", v)
	}
	AsValue(m).Set(-0.5)
	if v, _ := m.Get(); v != 0 {
		t.Fatalf("after Set(-0.5) = %v, want 0", v)
	}
}

func TestNew_UnknownKind(t *testing.T) {
	if _, err := New("jack", "", ""); err == nil {
		t.Fatalf("New(jack) returned nil error")
	}
	if p, err := New(KindMemory, "", ""); err != nil || p == nil {
		t.Fatalf("New(memory) = %v, %v", p, err)
	}
}
