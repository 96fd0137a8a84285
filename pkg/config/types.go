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
	"github.com/llm-d/llm-d-shelf-optimizer/pkg/core"
)

// Placement strategies
const (
	// StrategyAnnealing runs a single simulated annealing chain.
	StrategyAnnealing = "annealing"
	// StrategyMultiStart runs several independent chains and keeps the best result.
	StrategyMultiStart = "multistart"
	// StrategyGreedy only builds the initial solution, without annealing.
	StrategyGreedy = "greedy"
)

// Default values
const (
	DefaultShelves                 = 7
	DefaultShelfWidth              = 800
	DefaultShelfWeight             = 10000
	DefaultInitialTemperature      = 1000.0
	DefaultAlpha                   = 0.95
	DefaultMinTemperature          = 1e-3
	DefaultMaxIterations           = 10000
	DefaultMaxPlacementAttempts    = 100
	DefaultMaxPerturbationAttempts = 100
	DefaultSpaceWeight             = 50.0
	DefaultVarianceWeight          = 20.0
	DefaultAdjacencyWeight         = 10.0
	DefaultRestarts                = 4
	DefaultStrategy                = StrategyAnnealing
)

// CapacitySpec holds the per-shelf limits.
type CapacitySpec struct {
	// Width is the usable width of a shelf in millimeters.
	Width int `json:"width" yaml:"width" mapstructure:"width" validate:"gt=0"`

	// Weight is the maximum load of a shelf in grams.
	Weight int `json:"weight" yaml:"weight" mapstructure:"weight" validate:"gt=0"`
}

// Capacity converts the spec into the core representation.
func (c CapacitySpec) Capacity() core.Capacity {
	return core.Capacity{Width: c.Width, Weight: c.Weight}
}

// AnnealingSpec holds the temperature schedule and the attempt budgets.
type AnnealingSpec struct {
	// InitialTemperature is the starting temperature of the geometric schedule.
	InitialTemperature float64 `json:"initialTemperature" yaml:"initialTemperature" mapstructure:"initialTemperature" validate:"gt=0"`

	// Alpha is the multiplicative cooling factor applied once per round.
	Alpha float64 `json:"alpha" yaml:"alpha" mapstructure:"alpha" validate:"gt=0,lt=1"`

	// MinTemperature is the floor at which annealing stops.
	MinTemperature float64 `json:"minTemperature" yaml:"minTemperature" mapstructure:"minTemperature" validate:"gt=0,ltfield=InitialTemperature"`

	// MaxIterations caps the number of rounds.
	MaxIterations int `json:"maxIterations" yaml:"maxIterations" mapstructure:"maxIterations" validate:"gt=0"`

	// MaxPlacementAttempts is the number of random shelves tried per group while
	// building the initial solution.
	MaxPlacementAttempts int `json:"maxPlacementAttempts" yaml:"maxPlacementAttempts" mapstructure:"maxPlacementAttempts" validate:"gt=0"`

	// MaxPerturbationAttempts is the number of random moves tried per perturbation.
	MaxPerturbationAttempts int `json:"maxPerturbationAttempts" yaml:"maxPerturbationAttempts" mapstructure:"maxPerturbationAttempts" validate:"gt=0"`
}

// PenaltyWeights holds the weights of the objective terms.
type PenaltyWeights struct {
	Space     float64 `json:"space" yaml:"space" mapstructure:"space" validate:"gte=0"`
	Variance  float64 `json:"variance" yaml:"variance" mapstructure:"variance" validate:"gte=0"`
	Adjacency float64 `json:"adjacency" yaml:"adjacency" mapstructure:"adjacency" validate:"gte=0"`
}

// OptimizerSpec is the complete optimizer configuration.
type OptimizerSpec struct {
	// Shelves is the number of shelves to fill.
	Shelves int `json:"shelves" yaml:"shelves" mapstructure:"shelves" validate:"gt=0"`

	// Capacity holds the per-shelf limits.
	Capacity CapacitySpec `json:"capacity" yaml:"capacity" mapstructure:"capacity"`

	// Annealing holds the schedule parameters.
	Annealing AnnealingSpec `json:"annealing" yaml:"annealing" mapstructure:"annealing"`

	// Weights holds the penalty weights.
	Weights PenaltyWeights `json:"weights" yaml:"weights" mapstructure:"weights"`

	// Strategy selects the placement engine.
	Strategy string `json:"strategy" yaml:"strategy" mapstructure:"strategy" validate:"oneof=annealing multistart greedy"`

	// Seed seeds the random source. Nil means a time based seed.
	Seed *int64 `json:"seed,omitempty" yaml:"seed,omitempty" mapstructure:"seed"`

	// Restarts is the number of independent chains of the multistart strategy.
	Restarts int `json:"restarts" yaml:"restarts" mapstructure:"restarts" validate:"gte=1"`

	// Parallelism bounds the chains running at once; 0 means GOMAXPROCS.
	Parallelism int `json:"parallelism" yaml:"parallelism" mapstructure:"parallelism" validate:"gte=0"`
}
