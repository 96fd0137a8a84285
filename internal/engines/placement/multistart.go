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
	"runtime"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"

	"github.com/llm-d/llm-d-shelf-optimizer/internal/engines/common"
	"github.com/llm-d/llm-d-shelf-optimizer/internal/logging"
	"github.com/llm-d/llm-d-shelf-optimizer/pkg/core"
	"github.com/llm-d/llm-d-shelf-optimizer/pkg/solver"
)

// MultiStartEngineConfig holds configuration for the MultiStartEngine
type MultiStartEngineConfig struct {
	EngineConfig
	// Restarts is the number of independent chains
	Restarts int
	// Parallelism bounds the chains running at once; 0 means GOMAXPROCS
	Parallelism int
}

// MultiStartEngine runs independent annealing chains concurrently and keeps
// the best result. Chain i is seeded with Seed+i, so a fixed seed gives the
// same outcome regardless of scheduling.
type MultiStartEngine struct {
	config      *MultiStartEngineConfig
	parallelism int
}

// NewMultiStartEngine creates a new MultiStartEngine instance.
func NewMultiStartEngine(config *MultiStartEngineConfig) (*MultiStartEngine, error) {
	if config == nil {
		return nil, fmt.Errorf("multistart engine config cannot be nil")
	}
	if config.Restarts < 1 {
		return nil, fmt.Errorf("multistart engine needs at least one restart, got %d", config.Restarts)
	}
	parallelism := config.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}
	return &MultiStartEngine{config: config, parallelism: parallelism}, nil
}

// Place runs every chain and returns the best result
func (e *MultiStartEngine) Place(ctx context.Context, items []core.Item) (*Outcome, error) {
	logger := logr.FromContextOrDiscard(ctx)
	tracker := common.NewBestTracker()
	runs := make([]RunSummary, e.config.Restarts)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.parallelism)
	for i := 0; i < e.config.Restarts; i++ {
		seed := common.DeriveSeed(e.config.Seed, i)
		g.Go(func() error {
			// each chain gets its own copy of the input and its own random source
			chainItems := append([]core.Item(nil), items...)
			result, err := solver.NewAnnealer(e.config.Spec, solver.NewRand(seed)).Run(gctx, chainItems)
			result.Seed = seed
			runs[i] = summarize(i, seed, result)
			if tracker.Offer(i, result) {
				logger.V(logging.DEBUG).Info("New best chain", "run", i, "seed", seed, "cost", result.Cost)
			}
			return err
		})
	}
	err := g.Wait()

	best, bestRun := tracker.Best()
	outcome := &Outcome{
		Strategy: MultiStartStrategy,
		Best:     best,
		BestRun:  bestRun,
		Runs:     runs,
	}
	if err != nil {
		return outcome, err
	}

	logger.Info("Multistart placement completed",
		"restarts", e.config.Restarts,
		"parallelism", e.parallelism,
		"bestRun", bestRun,
		"cost", best.Cost)
	return outcome, nil
}
