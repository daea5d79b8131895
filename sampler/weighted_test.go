// Copyright (C) 2024-2026, Tilework, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func identityWeight(w float64) float64 {
	return w
}

func TestWeightedArray(t *testing.T) {
	require := require.New(t)

	w := NewWeighted()
	require.NoError(w.Initialize([]float64{1, 2, 3}))
	require.Equal(float64(6), w.Total())

	tests := []struct {
		value    float64
		expected int
	}{
		{value: 0, expected: 0},
		{value: 0.5, expected: 0},
		{value: 1, expected: 1},
		{value: 2.999, expected: 1},
		{value: 3, expected: 2},
		{value: 5.999, expected: 2},
		// Overrun falls back to the last selectable index.
		{value: 6, expected: 2},
		{value: 7, expected: 2},
	}
	for _, test := range tests {
		index, err := w.Sample(test.value)
		require.NoError(err)
		require.Equal(test.expected, index, "value %v", test.value)
	}

	_, err := w.Sample(-1)
	require.ErrorIs(err, ErrOutOfRange)
}

func TestWeightedArrayFallbackSkipsTrailingZero(t *testing.T) {
	require := require.New(t)

	w := NewWeighted()
	require.NoError(w.Initialize([]float64{1, 0}))

	index, err := w.Sample(1)
	require.NoError(err)
	require.Equal(0, index)
}

func TestWeightedInitializeErrors(t *testing.T) {
	require := require.New(t)

	w := NewWeighted()
	require.ErrorIs(w.Initialize([]float64{0, 0, 0}), ErrInvalidWeight)
	require.ErrorIs(w.Initialize(nil), ErrInvalidWeight)
	require.ErrorIs(w.Initialize([]float64{1, -1, 3}), ErrInvalidWeight)
	require.ErrorIs(w.Initialize([]float64{1, math.NaN()}), ErrInvalidWeight)
	require.ErrorIs(w.Initialize([]float64{math.MaxFloat64, math.MaxFloat64}), ErrInvalidWeight)
}

func TestWeightedRandomElementErrors(t *testing.T) {
	require := require.New(t)

	r := NewRand(NewMT19937(0))

	_, err := WeightedRandomElement(r, nil, identityWeight)
	require.ErrorIs(err, ErrEmptySequence)

	_, err = WeightedRandomElement(r, []float64{0, 0}, identityWeight)
	require.ErrorIs(err, ErrInvalidWeight)

	_, err = WeightedRandomElement(r, []float64{2, -1}, identityWeight)
	require.ErrorIs(err, ErrInvalidWeight)
}

func TestWeightedRandomElementZeroWeightNeverSelected(t *testing.T) {
	require := require.New(t)

	r := NewRand(NewMT19937(0))
	s := []string{"never", "always"}

	for i := 0; i < 1000; i++ {
		elt, err := WeightedRandomElement(r, s, func(elt string) float64 {
			if elt == "never" {
				return 0
			}
			return 1
		})
		require.NoError(err)
		require.Equal("always", elt)
	}
}

func TestWeightedRandomElementProportionality(t *testing.T) {
	require := require.New(t)

	const (
		iterations = 10000
		threshold  = 300
	)

	r := NewRand(NewMT19937(0))
	s := []int{0, 1, 2, 3}

	counts := [4]int{}
	for i := 0; i < iterations; i++ {
		elt, err := WeightedRandomElement(r, s, func(i int) float64 {
			return float64(i + 1)
		})
		require.NoError(err)
		counts[elt]++
	}

	for i, count := range counts {
		expected := float64(iterations) * float64(i+1) / 10
		require.LessOrEqual(
			math.Abs(float64(count)-expected),
			float64(threshold),
			"index %d seems biased: %v", i, counts,
		)
	}
}

func TestWeightFuncCalledOncePerElement(t *testing.T) {
	require := require.New(t)

	r := NewRand(NewMT19937(0))
	s := []int{0, 1, 2, 3}

	calls := [4]int{}
	_, err := WeightedRandomElement(r, s, func(i int) float64 {
		calls[i]++
		return 1
	})
	require.NoError(err)
	require.Equal([4]int{1, 1, 1, 1}, calls)

	calls = [4]int{}
	_, err = WeightedRandomElements(r, s, func(i int) float64 {
		calls[i]++
		return 1
	}, 3, false)
	require.NoError(err)
	require.Equal([4]int{1, 1, 1, 1}, calls)
}
