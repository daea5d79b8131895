// Copyright (C) 2024-2026, Tilework, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "errors"

var (
	// ErrEmptySequence is returned by operations that require at least
	// one element when given none.
	ErrEmptySequence = errors.New("empty sequence")

	// ErrInvalidWeight is returned by weighted operations when an
	// individual weight is negative or NaN, or when the total weight is
	// not strictly positive and finite.
	ErrInvalidWeight = errors.New("invalid weight")

	// ErrOutOfRange is returned when a sampled value cannot be mapped
	// back into the initialized range, or when a without-replacement
	// sampler has exhausted it.
	ErrOutOfRange = errors.New("out of range")
)
