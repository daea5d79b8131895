// Copyright (C) 2024-2026, Tilework, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package sampler implements randomized selection and ordering over
// generic sequences: Fisher-Yates shuffles, single-pass reservoir
// sampling, uniform element selection, and weighted element selection
// with and without replacement.
//
// Every operation takes an explicit *Rand; there is no package-level
// generator. See the Rand documentation for the concurrency contract.
package sampler

import (
	"golang.org/x/exp/slices"

	"github.com/tilework/sampling/iterator"
)

// ShuffleInPlace permutes [s] uniformly at random, producing each of
// the n! orderings with equal probability. It uses n-1 draws from [r]
// and no auxiliary memory. No-op when len(s) <= 1.
func ShuffleInPlace[T any](r *Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Shuffle returns a one-shot iterator over the elements of [s] in a
// uniformly random order. [s] is not mutated.
//
// The permutation is fully computed before the iterator is returned;
// the iterator form is a consumption convenience, not a laziness
// guarantee.
func Shuffle[T any](r *Rand, s []T) iterator.Iterator[T] {
	shuffled := slices.Clone(s)
	ShuffleInPlace(r, shuffled)
	return iterator.FromSlice(shuffled...)
}
