// Copyright (C) 2024-2026, Tilework, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"
	"math"

	"github.com/tilework/sampling/utils"
)

// WeightFunc extracts the selection weight of an element. It is called
// exactly once per element per invocation, so it need not be pure
// across invocations.
type WeightFunc[T any] func(T) float64

// Weighted samples indices from a fixed distribution of non-negative
// weights.
type Weighted interface {
	// Initialize validates [weights] and prepares the sampler. Every
	// weight must be non-negative and their sum strictly positive and
	// finite; otherwise ErrInvalidWeight is returned.
	Initialize(weights []float64) error
	// Sample returns the index whose cumulative weight range contains
	// [value]. [value] must be in [0, Total()).
	Sample(value float64) (int, error)
	// Total returns the sum of the initialized weights.
	Total() float64
}

// NewWeighted returns a sampler that draws indices by walking a
// cumulative weight prefix.
//
// Initialization takes O(n) time and space; sampling takes O(n) time.
func NewWeighted() Weighted {
	return &weightedArray{}
}

type weightedArray struct {
	cumulative []float64
	// last is the index of the last element with a positive weight,
	// used as the fallback when floating-point rounding pushes a value
	// drawn in [0, total) past the final cumulative weight.
	last int
}

func (s *weightedArray) Initialize(weights []float64) error {
	if _, err := validateWeights(weights); err != nil {
		return err
	}

	if numWeights := len(weights); numWeights <= cap(s.cumulative) {
		s.cumulative = s.cumulative[:numWeights]
	} else {
		s.cumulative = make([]float64, numWeights)
	}

	total := float64(0)
	s.last = -1
	for i, weight := range weights {
		if weight > 0 {
			s.last = i
		}
		total += weight
		s.cumulative[i] = total
	}
	return nil
}

func (s *weightedArray) Sample(value float64) (int, error) {
	if len(s.cumulative) == 0 || value < 0 {
		return 0, ErrOutOfRange
	}
	for i, cumulative := range s.cumulative {
		if value < cumulative {
			return i, nil
		}
	}
	// The scan overran the final cumulative weight. For values drawn in
	// [0, Total()) this only happens through accumulated rounding
	// error, so the last selectable index is the correct answer.
	return s.last, nil
}

func (s *weightedArray) Total() float64 {
	if len(s.cumulative) == 0 {
		return 0
	}
	return s.cumulative[len(s.cumulative)-1]
}

// WeightedRandomElement returns one element of [s] chosen with
// probability weightOf(element)/totalWeight.
//
// Returns ErrEmptySequence if [s] is empty and ErrInvalidWeight if any
// weight is negative or NaN, or the total is not strictly positive and
// finite.
func WeightedRandomElement[T any](r *Rand, s []T, weightOf WeightFunc[T]) (T, error) {
	if len(s) == 0 {
		return utils.Zero[T](), ErrEmptySequence
	}

	w := NewWeighted()
	if err := w.Initialize(evaluateWeights(s, weightOf)); err != nil {
		return utils.Zero[T](), err
	}
	index, err := w.Sample(r.Float64() * w.Total())
	if err != nil {
		return utils.Zero[T](), err
	}
	return s[index], nil
}

// evaluateWeights calls [weightOf] once per element of [s].
func evaluateWeights[T any](s []T, weightOf WeightFunc[T]) []float64 {
	weights := make([]float64, len(s))
	for i, elt := range s {
		weights[i] = weightOf(elt)
	}
	return weights
}

// validateWeights checks that every weight is non-negative and not NaN
// and that the sum is strictly positive and finite, returning the sum.
func validateWeights(weights []float64) (float64, error) {
	total := float64(0)
	for i, weight := range weights {
		if weight < 0 || math.IsNaN(weight) {
			return 0, fmt.Errorf("%w: weight %v at index %d", ErrInvalidWeight, weight, i)
		}
		total += weight
	}
	switch {
	case math.IsInf(total, 0):
		return 0, fmt.Errorf("%w: total weight overflows", ErrInvalidWeight)
	case total <= 0:
		return 0, fmt.Errorf("%w: total weight %v is not positive", ErrInvalidWeight, total)
	}
	return total, nil
}
