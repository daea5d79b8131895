// Copyright (C) 2024-2026, Tilework, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// samplecheck runs empirical frequency experiments against the sampler
// package and reports a chi-square goodness-of-fit verdict. It exists
// to smoke-test distributions at larger trial counts than the unit
// tests run with.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/tilework/sampling/iterator"
	"github.com/tilework/sampling/logging"
	"github.com/tilework/sampling/sampler"
)

// Reject the hypothesis that the sampler is unbiased when the observed
// frequencies would occur with probability below this.
const rejectBelow = 1e-3

func main() {
	fs := buildFlagSet()
	v, err := getViper(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg, err := getConfig(v)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logging.NewLogger("samplecheck", cfg.LogLevel, os.Stderr)
	defer func() {
		_ = log.Sync()
	}()

	r := sampler.NewRand(sampler.NewMT19937(cfg.Seed))
	observed, expected, err := runExperiment(r, cfg)
	if err != nil {
		log.Fatal("experiment failed",
			zap.String("experiment", cfg.Experiment),
			zap.Error(err),
		)
	}

	statistic := stat.ChiSquare(observed, expected)
	pValue := distuv.ChiSquared{K: float64(len(observed) - 1)}.Survival(statistic)

	log.Info("experiment complete",
		zap.String("experiment", cfg.Experiment),
		zap.Int("trials", cfg.Trials),
		zap.Int("cells", len(observed)),
		zap.Float64("chiSquare", statistic),
		zap.Float64("pValue", pValue),
	)
	log.Debug("frequencies",
		zap.Float64s("observed", observed),
		zap.Float64s("expected", expected),
	)

	if pValue < rejectBelow {
		log.Error("distribution rejected",
			zap.Float64("pValue", pValue),
			zap.Float64("rejectBelow", rejectBelow),
		)
		os.Exit(1)
	}
}

func runExperiment(r *sampler.Rand, cfg config) ([]float64, []float64, error) {
	switch cfg.Experiment {
	case "shuffle":
		return runShuffle(r, cfg.Size, cfg.Trials)
	case "reservoir":
		return runReservoir(r, cfg.Size, cfg.SampleSize, cfg.Trials)
	case "uniform":
		return runUniform(r, cfg.Size, cfg.Trials)
	case "weighted":
		return runWeighted(r, cfg.Weights, cfg.Trials)
	default:
		return nil, nil, fmt.Errorf("unknown experiment %q", cfg.Experiment)
	}
}

// runShuffle counts how often each of the size! orderings occurs.
func runShuffle(r *sampler.Rand, size, trials int) ([]float64, []float64, error) {
	// 8! cells is already 40320; anything larger needs impractically
	// many trials to populate the expected counts.
	if size > 8 {
		return nil, nil, fmt.Errorf("shuffle experiment supports size <= 8, got %d", size)
	}

	base := make([]int, size)
	for i := range base {
		base[i] = i
	}
	cells := 1
	for i := 2; i <= size; i++ {
		cells *= i
	}

	observed := make([]float64, cells)
	for t := 0; t < trials; t++ {
		perm := iterator.ToSlice(sampler.Shuffle(r, base))
		observed[permutationIndex(perm)]++
	}
	return observed, uniformExpectation(cells, float64(trials)), nil
}

// runReservoir counts per-element inclusion frequencies, which should
// approach sampleSize/size for every element.
func runReservoir(r *sampler.Rand, size, sampleSize, trials int) ([]float64, []float64, error) {
	if sampleSize <= 0 || sampleSize > size {
		return nil, nil, fmt.Errorf("sample size %d must be in [1, %d]", sampleSize, size)
	}

	observed := make([]float64, size)
	for t := 0; t < trials; t++ {
		// ReservoirSample releases its source, so build a fresh one per
		// trial.
		source := make([]int, size)
		for i := range source {
			source[i] = i
		}
		for _, elt := range sampler.ReservoirSample(r, iterator.FromSlice(source...), sampleSize) {
			observed[elt]++
		}
	}
	return observed, uniformExpectation(size, float64(trials*sampleSize)), nil
}

func runUniform(r *sampler.Rand, size, trials int) ([]float64, []float64, error) {
	base := make([]int, size)
	for i := range base {
		base[i] = i
	}

	observed := make([]float64, size)
	for t := 0; t < trials; t++ {
		elt, err := sampler.RandomElement(r, base)
		if err != nil {
			return nil, nil, err
		}
		observed[elt]++
	}
	return observed, uniformExpectation(size, float64(trials)), nil
}

func runWeighted(r *sampler.Rand, weights []float64, trials int) ([]float64, []float64, error) {
	base := make([]int, len(weights))
	total := float64(0)
	for i, weight := range weights {
		base[i] = i
		total += weight
	}

	observed := make([]float64, len(weights))
	for t := 0; t < trials; t++ {
		elt, err := sampler.WeightedRandomElement(r, base, func(i int) float64 {
			return weights[i]
		})
		if err != nil {
			return nil, nil, err
		}
		observed[elt]++
	}

	expected := make([]float64, len(weights))
	for i, weight := range weights {
		expected[i] = float64(trials) * weight / total
	}
	return observed, expected, nil
}

func uniformExpectation(cells int, totalCount float64) []float64 {
	expected := make([]float64, cells)
	for i := range expected {
		expected[i] = totalCount / float64(cells)
	}
	return expected
}

// permutationIndex maps a permutation of 0..n-1 to its Lehmer code
// rank in [0, n!).
func permutationIndex(perm []int) int {
	index := 0
	for i, v := range perm {
		smaller := 0
		for _, u := range perm[i+1:] {
			if u < v {
				smaller++
			}
		}
		index = index*(len(perm)-i) + smaller
	}
	return index
}
