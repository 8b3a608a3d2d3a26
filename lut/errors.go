package lut

import "errors"

// Validation errors returned by Table.Validate.
var (
	// ErrBoundaryMismatch means adjacent regions disagree on their shared sample.
	ErrBoundaryMismatch = errors.New("lut: boundary samples disagree")

	// ErrNonMonotonic means sample coordinates are not strictly increasing.
	ErrNonMonotonic = errors.New("lut: coordinates not strictly increasing")

	// ErrGap means regions do not tile the domain.
	ErrGap = errors.New("lut: regions leave a gap or overlap")

	// ErrShape means a region's slices do not match its kind and count.
	ErrShape = errors.New("lut: malformed region")
)
