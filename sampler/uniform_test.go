// Copyright (C) 2024-2026, Tilework, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tilework/sampling/iterator"
)

func TestRandomElementEmpty(t *testing.T) {
	require := require.New(t)

	r := NewRand(NewMT19937(0))

	_, err := RandomElement[int](r, nil)
	require.ErrorIs(err, ErrEmptySequence)

	_, err = RandomElement(r, []string{})
	require.ErrorIs(err, ErrEmptySequence)

	_, err = RandomElementFromIterator(r, iterator.Empty[int]())
	require.ErrorIs(err, ErrEmptySequence)
}

func TestRandomElementSingle(t *testing.T) {
	require := require.New(t)

	r := NewRand(NewMT19937(0))

	elt, err := RandomElement(r, []string{"only"})
	require.NoError(err)
	require.Equal("only", elt)

	elt, err = RandomElementFromIterator(r, iterator.FromSlice("only"))
	require.NoError(err)
	require.Equal("only", elt)
}

func TestRandomElementFrequency(t *testing.T) {
	require := require.New(t)

	const (
		size       = 5
		iterations = 10000
		threshold  = 300
	)

	r := NewRand(NewMT19937(0))
	s := []int{0, 1, 2, 3, 4}

	counts := [size]int{}
	for i := 0; i < iterations; i++ {
		elt, err := RandomElement(r, s)
		require.NoError(err)
		counts[elt]++
	}

	expected := float64(iterations) / size
	for i, count := range counts {
		require.LessOrEqual(
			math.Abs(float64(count)-expected),
			float64(threshold),
			"index %d seems biased: %v", i, counts,
		)
	}
}

func TestRandomElementFromIteratorFrequency(t *testing.T) {
	require := require.New(t)

	const (
		size       = 5
		iterations = 10000
		threshold  = 300
	)

	r := NewRand(NewMT19937(0))

	counts := [size]int{}
	for i := 0; i < iterations; i++ {
		elt, err := RandomElementFromIterator(r, iterator.FromSlice(0, 1, 2, 3, 4))
		require.NoError(err)
		counts[elt]++
	}

	expected := float64(iterations) / size
	for i, count := range counts {
		require.LessOrEqual(
			math.Abs(float64(count)-expected),
			float64(threshold),
			"index %d seems biased: %v", i, counts,
		)
	}
}
