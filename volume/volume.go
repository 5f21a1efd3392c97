// Package volume reads and writes the host's output volume as a value in
// [0,1].
package volume

import (
	"fmt"
	"runtime"
	"sync"

	"go-launchvol/layout"
)

// Provider is the system volume. Get returns false when the volume can't
// be read (no mixer, no default device).
type Provider interface {
	Get() (float64, bool)
	Set(v float64) error
}

// Kind names a provider implementation in config
type Kind string

const (
	KindALSA   Kind = "alsa"
	KindPulse  Kind = "pulse"
	KindMacOS  Kind = "macos"
	KindMemory Kind = "memory"
)

// DefaultKind picks a mixer for the current OS
func DefaultKind() Kind {
	switch runtime.GOOS {
	case "darwin":
		return KindMacOS
	case "linux":
		return KindALSA
	default:
		return KindMemory
	}
}

// New creates a provider. device and control only apply to ALSA.
func New(kind Kind, device, control string) (Provider, error) {
	switch kind {
	case "":
		return New(DefaultKind(), device, control)
	case KindALSA:
		return NewALSA(device, control), nil
	case KindPulse:
		return NewPulse(), nil
	case KindMacOS:
		return NewMacOS(), nil
	case KindMemory:
		return NewMemory(0.5), nil
	}
	return nil, fmt.Errorf("unknown mixer %q", kind)
}

// Memory is an in-process volume, used in virtual mode
type Memory struct {
	mu sync.Mutex
	v  float64
}

func NewMemory(v float64) *Memory {
	return &Memory{v: layout.Clamp(v)}
}

func (m *Memory) Get() (float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.v, true
}

func (m *Memory) Set(v float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.v = layout.Clamp(v)
	return nil
}

// value adapts a Provider to layout.Value
type value struct {
	p Provider
}

// AsValue lets a ValueLayout show and set the volume. A provider that
// can't read the volume reports layout.ErrUnavailable.
func AsValue(p Provider) layout.Value {
	return value{p: p}
}

func (v value) Get() (float64, error) {
	vol, ok := v.p.Get()
	if !ok {
		return 0, layout.ErrUnavailable
	}
	return vol, nil
}

func (v value) Set(vol float64) error {
	return v.p.Set(layout.Clamp(vol))
}
