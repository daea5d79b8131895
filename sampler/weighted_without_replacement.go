// Copyright (C) 2024-2026, Tilework, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

// WeightedRandomElements draws [count] elements of [s] with probability
// proportional to their weights.
//
// With replacement the draws are independent, so [count] may exceed
// len(s) and the same position may be drawn repeatedly. Without
// replacement each drawn position is removed from further
// consideration and the remaining weights are implicitly renormalized
// by the shrinking total; no position is ever returned twice, at most
// min(count, len(s)) elements are returned, and the result is shorter
// when the selectable weight is exhausted first. The early stop is a
// normal outcome, not an error.
//
// count <= 0 or an empty [s] yields an empty result. Otherwise the
// weights are validated as in WeightedRandomElement.
func WeightedRandomElements[T any](r *Rand, s []T, weightOf WeightFunc[T], count int, withReplacement bool) ([]T, error) {
	if count <= 0 || len(s) == 0 {
		return nil, nil
	}

	weights := evaluateWeights(s, weightOf)
	if withReplacement {
		return sampleWithReplacement(r, s, weights, count)
	}
	return sampleWithoutReplacement(r, s, weights, count)
}

func sampleWithReplacement[T any](r *Rand, s []T, weights []float64, count int) ([]T, error) {
	w := NewWeighted()
	if err := w.Initialize(weights); err != nil {
		return nil, err
	}

	picks := make([]T, count)
	for i := range picks {
		index, err := w.Sample(r.Float64() * w.Total())
		if err != nil {
			return nil, err
		}
		picks[i] = s[index]
	}
	return picks, nil
}

func sampleWithoutReplacement[T any](r *Rand, s []T, weights []float64, count int) ([]T, error) {
	remaining, err := validateWeights(weights)
	if err != nil {
		return nil, err
	}
	if count > len(s) {
		count = len(s)
	}

	picks := make([]T, 0, count)
	for len(picks) < count && remaining > 0 {
		value := r.Float64() * remaining

		// Walk the cumulative weight of the still-selectable positions.
		// If rounding pushes [value] past the final cumulative weight,
		// index is left at the last selectable position.
		index := -1
		cumulative := float64(0)
		for i, weight := range weights {
			if weight <= 0 {
				continue
			}
			index = i
			cumulative += weight
			if value < cumulative {
				break
			}
		}
		if index < 0 {
			// Rounding left a positive remainder with no selectable
			// position backing it.
			break
		}

		picks = append(picks, s[index])
		remaining -= weights[index]
		weights[index] = 0
	}
	return picks, nil
}
