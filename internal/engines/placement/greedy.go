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

// GreedyEngineConfig holds configuration for the GreedyEngine
type GreedyEngineConfig struct {
	EngineConfig
}

// GreedyEngine only builds the randomized initial arrangement. It is the
// baseline the annealing engines improve on.
type GreedyEngine struct {
	config *GreedyEngineConfig
}

// NewGreedyEngine creates a new GreedyEngine instance.
func NewGreedyEngine(config *GreedyEngineConfig) (*GreedyEngine, error) {
	if config == nil {
		return nil, fmt.Errorf("greedy engine config cannot be nil")
	}
	return &GreedyEngine{config: config}, nil
}

// Place builds the initial arrangement of items
func (e *GreedyEngine) Place(ctx context.Context, items []core.Item) (*Outcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	seed := e.config.Seed
	result := solver.NewAnnealer(e.config.Spec, solver.NewRand(seed)).Initial(ctx, items)
	result.Seed = seed

	logr.FromContextOrDiscard(ctx).Info("Greedy placement completed", "seed", seed, "cost", result.Cost)
	return &Outcome{
		Strategy: GreedyStrategy,
		Best:     result,
		Runs:     []RunSummary{summarize(0, seed, result)},
	}, nil
}
