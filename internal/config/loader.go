/*
Copyright 2025 The llm-d Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config loads the optimizer configuration from defaults, an optional
// config file, SHELF_ environment variables and command line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/llm-d/llm-d-shelf-optimizer/internal/logging"
	"github.com/llm-d/llm-d-shelf-optimizer/pkg/config"
)

// Load returns the validated optimizer spec. path may be empty; flags may be nil.
func Load(path string, flags *pflag.FlagSet) (config.OptimizerSpec, error) {
	logger := logging.Log.WithName("config")
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config.OptimizerSpec{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
		logger.V(logging.DEBUG).Info("Read config file", "path", v.ConfigFileUsed())
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return config.OptimizerSpec{}, fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
	}

	var spec config.OptimizerSpec
	if err := v.Unmarshal(&spec); err != nil {
		return config.OptimizerSpec{}, fmt.Errorf("decoding config: %w", err)
	}
	spec.Seed = nil
	if v.IsSet(KeySeed) {
		seed := v.GetInt64(KeySeed)
		spec.Seed = &seed
	}

	if err := spec.Validate(); err != nil {
		return config.OptimizerSpec{}, err
	}

	logger.V(logging.DEBUG).Info("Loaded optimizer config",
		"shelves", spec.Shelves,
		"capacityWidth", spec.Capacity.Width,
		"capacityWeight", spec.Capacity.Weight,
		"strategy", spec.Strategy,
		"seedSet", spec.Seed != nil)
	return spec, nil
}

// Parse decodes a YAML document over the defaults and validates the result.
// Keys left out of the document keep their default value.
func Parse(data []byte) (config.OptimizerSpec, error) {
	spec := config.DefaultOptimizerSpec()
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return config.OptimizerSpec{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return config.OptimizerSpec{}, err
	}
	return spec, nil
}

// Dump renders spec as YAML.
func Dump(spec config.OptimizerSpec) ([]byte, error) {
	out, err := yaml.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return out, nil
}

// IsInvalid reports whether err comes from spec validation.
func IsInvalid(err error) bool {
	return errors.Is(err, config.ErrInvalidSpec)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := config.DefaultOptimizerSpec()
	v.SetDefault(KeyShelves, d.Shelves)
	v.SetDefault(KeyCapacityWidth, d.Capacity.Width)
	v.SetDefault(KeyCapacityWeight, d.Capacity.Weight)
	v.SetDefault(KeyInitialTemperature, d.Annealing.InitialTemperature)
	v.SetDefault(KeyAlpha, d.Annealing.Alpha)
	v.SetDefault(KeyMinTemperature, d.Annealing.MinTemperature)
	v.SetDefault(KeyMaxIterations, d.Annealing.MaxIterations)
	v.SetDefault(KeyMaxPlacementAttempts, d.Annealing.MaxPlacementAttempts)
	v.SetDefault(KeyMaxPerturbationAttempts, d.Annealing.MaxPerturbationAttempts)
	v.SetDefault(KeyWeightSpace, d.Weights.Space)
	v.SetDefault(KeyWeightVariance, d.Weights.Variance)
	v.SetDefault(KeyWeightAdjacency, d.Weights.Adjacency)
	v.SetDefault(KeyStrategy, d.Strategy)
	v.SetDefault(KeyRestarts, d.Restarts)
	v.SetDefault(KeyParallelism, d.Parallelism)
	_ = v.BindEnv(KeySeed)
	return v
}
