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

package config

import (
	"github.com/spf13/pflag"

	"github.com/llm-d/llm-d-shelf-optimizer/pkg/config"
)

// Configuration keys, as used in config files. Environment variables use the
// upper-cased key with dots replaced by underscores and the SHELF_ prefix,
// e.g. SHELF_CAPACITY_WIDTH.
const (
	KeyShelves                 = "shelves"
	KeyCapacityWidth           = "capacity.width"
	KeyCapacityWeight          = "capacity.weight"
	KeyInitialTemperature      = "annealing.initialTemperature"
	KeyAlpha                   = "annealing.alpha"
	KeyMinTemperature          = "annealing.minTemperature"
	KeyMaxIterations           = "annealing.maxIterations"
	KeyMaxPlacementAttempts    = "annealing.maxPlacementAttempts"
	KeyMaxPerturbationAttempts = "annealing.maxPerturbationAttempts"
	KeyWeightSpace             = "weights.space"
	KeyWeightVariance          = "weights.variance"
	KeyWeightAdjacency         = "weights.adjacency"
	KeyStrategy                = "strategy"
	KeySeed                    = "seed"
	KeyRestarts                = "restarts"
	KeyParallelism             = "parallelism"
)

// EnvPrefix is the prefix of the environment variables read by Load.
const EnvPrefix = "SHELF"

// flagKeys maps command line flag names to configuration keys.
var flagKeys = map[string]string{
	"shelves":          KeyShelves,
	"shelf-width":      KeyCapacityWidth,
	"shelf-weight":     KeyCapacityWeight,
	"temperature":      KeyInitialTemperature,
	"alpha":            KeyAlpha,
	"min-temperature":  KeyMinTemperature,
	"max-iterations":   KeyMaxIterations,
	"space-weight":     KeyWeightSpace,
	"variance-weight":  KeyWeightVariance,
	"adjacency-weight": KeyWeightAdjacency,
	"strategy":         KeyStrategy,
	"seed":             KeySeed,
	"restarts":         KeyRestarts,
	"parallelism":      KeyParallelism,
}

// AddFlags registers the optimizer flags on fs. Defaults shown in help are the
// built-in defaults; a flag only overrides the configuration when it is set.
func AddFlags(fs *pflag.FlagSet) {
	d := config.DefaultOptimizerSpec()
	fs.Int("shelves", d.Shelves, "number of shelves")
	fs.Int("shelf-width", d.Capacity.Width, "usable width of a shelf in mm")
	fs.Int("shelf-weight", d.Capacity.Weight, "maximum load of a shelf in g")
	fs.Float64("temperature", d.Annealing.InitialTemperature, "initial annealing temperature")
	fs.Float64("alpha", d.Annealing.Alpha, "geometric cooling factor")
	fs.Float64("min-temperature", d.Annealing.MinTemperature, "temperature at which annealing stops")
	fs.Int("max-iterations", d.Annealing.MaxIterations, "maximum annealing rounds")
	fs.Float64("space-weight", d.Weights.Space, "weight of the unused space penalty")
	fs.Float64("variance-weight", d.Weights.Variance, "weight of the shelf weight variance penalty")
	fs.Float64("adjacency-weight", d.Weights.Adjacency, "weight of the author adjacency penalty")
	fs.String("strategy", d.Strategy, "placement strategy: annealing, multistart or greedy")
	fs.Int64("seed", 0, "random seed; a time based seed is used when unset")
	fs.Int("restarts", d.Restarts, "independent chains of the multistart strategy")
	fs.Int("parallelism", d.Parallelism, "chains run at once by the multistart strategy; 0 means GOMAXPROCS")
}
