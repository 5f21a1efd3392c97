package canvas

import (
	"errors"

	"go-launchvol/grid"
)

type multi []Backend

// Multi returns a backend that forwards every call to each of backends.
// Errors are joined; every backend sees every call.
func Multi(backends ...Backend) Backend {
	return multi(backends)
}

func (m multi) Set(c grid.Coord, color grid.Color) error {
	var errs []error
	for _, b := range m {
		errs = append(errs, b.Set(c, color))
	}
	return errors.Join(errs...)
}

func (m multi) Flush() error {
	var errs []error
	for _, b := range m {
		errs = append(errs, b.Flush())
	}
	return errors.Join(errs...)
}

func (m multi) Clear() error {
	var errs []error
	for _, b := range m {
		errs = append(errs, b.Clear())
	}
	return errors.Join(errs...)
}
