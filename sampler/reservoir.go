// Copyright (C) 2024-2026, Tilework, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"math"

	"github.com/tilework/sampling/iterator"
)

// ReservoirSample draws min(k, n) elements uniformly without
// replacement from [it], where n is the source length, which need not
// be known in advance. Every subset of that size is equally likely, and
// the returned order is itself uniformly random.
//
// The source is consumed; k <= 0 returns nil without consuming it.
//
// Sampling runs in O(n) time with O(k) auxiliary space. Replacement
// positions are drawn with Li's Algorithm L, so only O(k log(n/k))
// random draws are expected rather than one per element.
func ReservoirSample[T any](r *Rand, it iterator.Iterator[T], k int) []T {
	if k <= 0 {
		return nil
	}
	defer it.Release()

	reservoir := make([]T, 0, k)
	for len(reservoir) < k && it.Next() {
		reservoir = append(reservoir, it.Value())
	}
	if len(reservoir) < k {
		// Source exhausted before the reservoir filled; everything was
		// selected.
		ShuffleInPlace(r, reservoir)
		return reservoir
	}

	// Rather than deciding for every element whether it enters the
	// reservoir, draw how many elements to skip before the next
	// replacement. w tracks the running maximum of the k smallest
	// priorities seen so far.
	w := math.Exp(math.Log(r.float64NonZero()) / float64(k))
	next := k + skip(r, w)
	for pos := k; it.Next(); pos++ {
		if pos < next {
			continue
		}
		reservoir[r.Intn(k)] = it.Value()
		w *= math.Exp(math.Log(r.float64NonZero()) / float64(k))
		next = pos + 1 + skip(r, w)
	}

	// The fill order is not uniformly random by construction, so the
	// reservoir is shuffled before it is returned.
	ShuffleInPlace(r, reservoir)
	return reservoir
}

// skip returns the number of elements to pass over before the next
// reservoir replacement, geometrically distributed with parameter [w].
func skip(r *Rand, w float64) int {
	return int(math.Floor(math.Log(r.float64NonZero()) / math.Log(1-w)))
}
