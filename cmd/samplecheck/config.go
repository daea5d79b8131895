// Copyright (C) 2024-2026, Tilework, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tilework/sampling/logging"
)

const (
	configFileKey = "config-file"
	experimentKey = "experiment"
	trialsKey     = "trials"
	seedKey       = "seed"
	sizeKey       = "size"
	sampleSizeKey = "sample-size"
	weightsKey    = "weights"
	logLevelKey   = "log-level"

	envPrefix = "samplecheck"
)

type config struct {
	Experiment string
	Trials     int
	Seed       uint64
	Size       int
	SampleSize int
	Weights    []float64
	LogLevel   logging.Level
}

func buildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("samplecheck", pflag.ContinueOnError)
	fs.String(configFileKey, "", "optional config file to read settings from")
	fs.String(experimentKey, "shuffle", "experiment to run: shuffle, reservoir, uniform or weighted")
	fs.Int(trialsKey, 100000, "number of trials per experiment")
	fs.Uint64(seedKey, 0, "seed for the Mersenne Twister source")
	fs.Int(sizeKey, 4, "population size")
	fs.Int(sampleSizeKey, 2, "reservoir size for the reservoir experiment")
	fs.String(weightsKey, "1,2,3,4", "comma separated weights for the weighted experiment")
	fs.String(logLevelKey, "info", "log level: debug, info, warn or error")
	return fs
}

// getViper parses [args] into [fs] and binds the resulting flags, the
// environment, and the optional config file into a viper environment.
func getViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if configFile := v.GetString(configFileKey); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("couldn't read config file %q: %w", configFile, err)
		}
	}
	return v, nil
}

// getConfig returns the experiment configuration defined in the [viper]
// environment.
func getConfig(v *viper.Viper) (config, error) {
	cfg := config{
		Experiment: v.GetString(experimentKey),
		Trials:     v.GetInt(trialsKey),
		Seed:       v.GetUint64(seedKey),
		Size:       v.GetInt(sizeKey),
		SampleSize: v.GetInt(sampleSizeKey),
	}

	if cfg.Trials <= 0 {
		return config{}, fmt.Errorf("%s must be positive, got %d", trialsKey, cfg.Trials)
	}
	if cfg.Size <= 0 {
		return config{}, fmt.Errorf("%s must be positive, got %d", sizeKey, cfg.Size)
	}

	weights, err := parseWeights(v.GetString(weightsKey))
	if err != nil {
		return config{}, err
	}
	cfg.Weights = weights

	level, err := logging.ToLevel(v.GetString(logLevelKey))
	if err != nil {
		return config{}, err
	}
	cfg.LogLevel = level
	return cfg, nil
}

func parseWeights(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	weights := make([]float64, len(parts))
	for i, part := range parts {
		weight, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("couldn't parse weight %q: %w", part, err)
		}
		weights[i] = weight
	}
	return weights, nil
}
