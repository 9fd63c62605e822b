package fluid

import "errors"

var (
	// ErrInvalidConfiguration is returned by New for a non-positive size or time
	// step, negative rates, or out-of-range options.
	ErrInvalidConfiguration = errors.New("fluid: invalid configuration")

	// ErrInvalidCoordinate is returned by field views for indices outside the grid.
	// Injection calls never return it: they clamp into the interior instead.
	ErrInvalidCoordinate = errors.New("fluid: invalid coordinate")
)
