// Copyright (C) 2024-2026, Tilework, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "golang.org/x/exp/maps"

// Uniform samples indices in [0, length) without replacement.
type Uniform interface {
	Initialize(length uint64)
	// Sample resets the sampler and returns [count] distinct indices.
	// Returns ErrOutOfRange if count exceeds the initialized length.
	Sample(count int) ([]uint64, error)

	Reset()
	// Next returns one more index not yet drawn since the last Reset,
	// or ErrOutOfRange once the range is exhausted.
	Next() (uint64, error)
}

// NewUniform returns a without-replacement index sampler drawing from
// [rng].
//
// Sampling is performed by sampling with replacement and resampling if
// a duplicate is sampled, so drawing [count] indices takes O(count)
// expected time while count remains small relative to the range.
func NewUniform(rng *Rand) Uniform {
	return &uniformResample{
		rng:   rng,
		drawn: make(map[uint64]struct{}),
	}
}

type uniformResample struct {
	rng    *Rand
	length uint64
	drawn  map[uint64]struct{}
}

func (s *uniformResample) Initialize(length uint64) {
	s.length = length
	maps.Clear(s.drawn)
}

func (s *uniformResample) Sample(count int) ([]uint64, error) {
	s.Reset()

	results := make([]uint64, count)
	for i := 0; i < count; i++ {
		ret, err := s.Next()
		if err != nil {
			return nil, err
		}
		results[i] = ret
	}
	return results, nil
}

func (s *uniformResample) Reset() {
	maps.Clear(s.drawn)
}

func (s *uniformResample) Next() (uint64, error) {
	i := uint64(len(s.drawn))
	if i >= s.length {
		return 0, ErrOutOfRange
	}

	for {
		draw := s.rng.Uint64Inclusive(s.length - 1)
		if _, ok := s.drawn[draw]; ok {
			continue
		}
		s.drawn[draw] = struct{}{}
		return draw, nil
	}
}

// RandomElements returns min(k, len(s)) elements of [s] drawn uniformly
// without replacement, in uniformly random order. It is the
// random-access counterpart of ReservoirSample: when the sequence is
// indexable there is no need for a streaming pass.
func RandomElements[T any](r *Rand, s []T, k int) []T {
	if k > len(s) {
		k = len(s)
	}
	if k <= 0 {
		return nil
	}

	u := NewUniform(r)
	u.Initialize(uint64(len(s)))
	indices, _ := u.Sample(k)

	picks := make([]T, k)
	for i, index := range indices {
		picks[i] = s[index]
	}
	return picks
}
