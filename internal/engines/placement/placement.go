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

package placement

import (
	"context"
	"fmt"

	"github.com/llm-d/llm-d-shelf-optimizer/pkg/config"
	"github.com/llm-d/llm-d-shelf-optimizer/pkg/core"
	"github.com/llm-d/llm-d-shelf-optimizer/pkg/solver"
)

// Engine is an interface that defines the method for arranging items onto shelves
type Engine interface {
	// Place arranges items and returns the outcome of the search
	Place(ctx context.Context, items []core.Item) (*Outcome, error)
}

// EngineStrategy is an enumeration of the different strategies that can be used by the Engine
type EngineStrategy int

// enumeration of EngineStrategy
const (
	AnnealingStrategy EngineStrategy = iota
	MultiStartStrategy
	GreedyStrategy
)

func (s EngineStrategy) String() string {
	switch s {
	case AnnealingStrategy:
		return config.StrategyAnnealing
	case MultiStartStrategy:
		return config.StrategyMultiStart
	case GreedyStrategy:
		return config.StrategyGreedy
	default:
		return fmt.Sprintf("EngineStrategy(%d)", int(s))
	}
}

// ParseStrategy maps a configured strategy name to an EngineStrategy
func ParseStrategy(name string) (EngineStrategy, error) {
	switch name {
	case config.StrategyAnnealing, "":
		return AnnealingStrategy, nil
	case config.StrategyMultiStart:
		return MultiStartStrategy, nil
	case config.StrategyGreedy:
		return GreedyStrategy, nil
	default:
		return 0, fmt.Errorf("unsupported placement strategy: %q", name)
	}
}

// EngineConfig holds configuration common to all engines
type EngineConfig struct {
	Spec config.OptimizerSpec
	// Seed is the base seed of the random source(s)
	Seed int64
}

// RunSummary describes a single annealing chain of an engine
type RunSummary struct {
	Index  int     `json:"index"`
	Seed   int64   `json:"seed"`
	Cost   float64 `json:"cost"`
	Rounds int     `json:"rounds"`
}

// Outcome is the result of a placement
type Outcome struct {
	// Strategy is the strategy that produced the outcome
	Strategy EngineStrategy
	// Best is the best result over all runs
	Best *solver.Result
	// BestRun is the index of the run that produced Best
	BestRun int
	// Runs summarizes every run, in run index order
	Runs []RunSummary
}

// NewEngine is a factory that creates a new Engine based on the strategy configured in spec
func NewEngine(spec config.OptimizerSpec, seed int64) (Engine, error) {
	strategy, err := ParseStrategy(spec.Strategy)
	if err != nil {
		return nil, err
	}
	base := EngineConfig{Spec: spec, Seed: seed}
	switch strategy {
	case AnnealingStrategy:
		return NewAnnealingEngine(&AnnealingEngineConfig{EngineConfig: base})
	case MultiStartStrategy:
		return NewMultiStartEngine(&MultiStartEngineConfig{
			EngineConfig: base,
			Restarts:     spec.Restarts,
			Parallelism:  spec.Parallelism,
		})
	case GreedyStrategy:
		return NewGreedyEngine(&GreedyEngineConfig{EngineConfig: base})
	default:
		return nil, fmt.Errorf("unsupported placement strategy: %v", strategy)
	}
}

func summarize(index int, seed int64, r *solver.Result) RunSummary {
	return RunSummary{Index: index, Seed: seed, Cost: r.Cost, Rounds: r.Rounds}
}
