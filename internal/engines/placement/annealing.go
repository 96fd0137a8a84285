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

	"github.com/go-logr/logr"

	"github.com/llm-d/llm-d-shelf-optimizer/pkg/core"
	"github.com/llm-d/llm-d-shelf-optimizer/pkg/solver"
)

// AnnealingEngineConfig holds configuration for the AnnealingEngine
type AnnealingEngineConfig struct {
	EngineConfig
	// Observer, when set, receives the statistics of every round
	Observer solver.RoundObserver
}

// AnnealingEngine runs a single simulated annealing chain
type AnnealingEngine struct {
	config *AnnealingEngineConfig
}

// NewAnnealingEngine creates a new AnnealingEngine instance.
func NewAnnealingEngine(config *AnnealingEngineConfig) (*AnnealingEngine, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	return &AnnealingEngine{
		config: config,
	}, nil
}

// Place anneals items on a single chain
func (e *AnnealingEngine) Place(ctx context.Context, items []core.Item) (*Outcome, error) {
	logger := logr.FromContextOrDiscard(ctx)
	seed := e.config.Seed

	annealer := solver.NewAnnealer(e.config.Spec, solver.NewRand(seed))
	if e.config.Observer != nil {
		annealer.WithObserver(e.config.Observer)
	}
	result, err := annealer.Run(ctx, items)
	result.Seed = seed

	outcome := &Outcome{
		Strategy: AnnealingStrategy,
		Best:     result,
		Runs:     []RunSummary{summarize(0, seed, result)},
	}
	if err != nil {
		return outcome, err
	}

	logger.Info("Annealing placement completed", "seed", seed, "cost", result.Cost, "rounds", result.Rounds)
	return outcome, nil
}
