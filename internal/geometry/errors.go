package geometry

import "errors"

// Domain errors for kernel operations.
var (
	// ErrNotFinite indicates a coordinate with a NaN or Inf component.
	ErrNotFinite = errors.New("geometry: non-finite coordinate")
)
