// Copyright (C) 2024-2026, Tilework, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"math"

	"gonum.org/v1/gonum/mathext/prng"
)

// Source produces the raw random words every sampler consumes.
type Source interface {
	// Uint64 returns a random number in [0, MaxUint64] and advances the
	// generator's state.
	Uint64() uint64
}

// NewMT19937 returns a Mersenne Twister backed Source seeded with
// [seed].
//
// We don't use a cryptographically secure source of randomness here, as
// there's no need to ensure a truly random sampling.
func NewMT19937(seed uint64) Source {
	source := prng.NewMT19937()
	source.Seed(seed)
	return source
}

// Rand adapts a Source into the two draw primitives the samplers are
// written against: a uniform integer in a bounded range and a uniform
// real in [0,1).
//
// Every draw advances the underlying Source as an observable side
// effect, so a Rand is not safe for concurrent use. Callers sharing one
// across goroutines must supply their own synchronization or give each
// goroutine its own instance.
type Rand struct {
	src Source
}

func NewRand(src Source) *Rand {
	return &Rand{src: src}
}

// Uint64Inclusive returns a pseudo-random number in [0,n].
func (r *Rand) Uint64Inclusive(n uint64) uint64 {
	switch {
	// n+1 is power of two, so we can just mask
	//
	// Note: This does work for MaxUint64 as overflow is explicitly part
	// of the compiler specification:
	// https://go.dev/ref/spec#Integer_overflow
	case n&(n+1) == 0:
		return r.src.Uint64() & n

	// n is greater than MaxUint64/2 so we need to just iterate until we
	// get a number in the requested range.
	case n > math.MaxInt64:
		v := r.src.Uint64()
		for v > n {
			v = r.src.Uint64()
		}
		return v

	// n is less than MaxUint64/2 so we generate a number in the range
	// [0, k*(n+1)) where k is the largest integer such that k*(n+1) is
	// less than or equal to MaxInt64, and then reduce modulo n+1.
	default:
		maximum := (1 << 63) - 1 - (1<<63)%(n+1)
		v := r.uint63()
		for v > maximum {
			v = r.uint63()
		}
		return v % (n + 1)
	}
}

// Intn returns a pseudo-random number in [0,n). Panics if n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		panic("invalid argument to Intn")
	}
	return int(r.Uint64Inclusive(uint64(n) - 1))
}

// Float64 returns a pseudo-random number in [0,1) with 53 bits of
// precision.
func (r *Rand) Float64() float64 {
	return float64(r.src.Uint64()>>11) / (1 << 53)
}

// float64NonZero returns a pseudo-random number in (0,1). The zero draw
// is rejected so that callers can take its logarithm.
func (r *Rand) float64NonZero() float64 {
	for {
		if v := r.Float64(); v != 0 {
			return v
		}
	}
}

// uint63 returns a random number in [0, MaxInt64]
func (r *Rand) uint63() uint64 {
	return r.src.Uint64() & math.MaxInt64
}
