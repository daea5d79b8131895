// Copyright (C) 2024-2026, Tilework, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"github.com/tilework/sampling/iterator"
	"github.com/tilework/sampling/utils"
)

// RandomElement returns one element of [s] chosen with probability
// 1/len(s) using a single draw, or ErrEmptySequence if [s] is empty.
func RandomElement[T any](r *Rand, s []T) (T, error) {
	if len(s) == 0 {
		return utils.Zero[T](), ErrEmptySequence
	}
	return s[r.Intn(len(s))], nil
}

// RandomElementFromIterator returns one element of [it] chosen with
// probability 1/n in a single pass with O(1) memory, without knowing n
// in advance: the i-th element replaces the current pick with
// probability 1/i, so at every prefix the pick is uniform over the
// elements seen so far.
//
// The source is consumed. Returns ErrEmptySequence if it was empty.
func RandomElementFromIterator[T any](r *Rand, it iterator.Iterator[T]) (T, error) {
	defer it.Release()

	var (
		pick T
		seen int
	)
	for it.Next() {
		seen++
		if r.Intn(seen) == 0 {
			pick = it.Value()
		}
	}
	if seen == 0 {
		return utils.Zero[T](), ErrEmptySequence
	}
	return pick, nil
}
