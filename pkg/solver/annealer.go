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

package solver

import (
	"context"
	"math"
	"math/rand/v2"
	"time"

	"github.com/go-logr/logr"

	"github.com/llm-d/llm-d-shelf-optimizer/internal/logging"
	"github.com/llm-d/llm-d-shelf-optimizer/pkg/config"
	"github.com/llm-d/llm-d-shelf-optimizer/pkg/core"
)

// RoundStats describes the state of the annealer after one round.
type RoundStats struct {
	Round       int
	Temperature float64
	CurrentCost float64
	BestCost    float64
	Feasible    bool
	Accepted    bool
}

// RoundObserver is called once per evaluated round.
type RoundObserver func(RoundStats)

// Result is the outcome of an annealing run.
type Result struct {
	// Solution is the best solution seen.
	Solution *core.Solution
	// Cost is the penalty of Solution.
	Cost float64
	// Breakdown holds the sub-penalties of Solution.
	Breakdown Breakdown
	// InitialCost is the penalty of the initial solution.
	InitialCost float64
	// Rounds is the number of rounds that generated a candidate.
	Rounds int
	// Accepted, Rejected and Infeasible count candidate outcomes.
	Accepted   int
	Rejected   int
	Infeasible int
	// FinalTemperature is the temperature when the loop stopped.
	FinalTemperature float64
	// Dropped lists the groups the initial builder could not place.
	Dropped []DroppedGroup
	// Seed is the seed of the random source, when known.
	Seed int64
	// Duration is the wall time of the run.
	Duration time.Duration
}

// DroppedItems returns the number of items left out of the solution.
func (r *Result) DroppedItems() int {
	return CountItems(r.Dropped)
}

// Annealer drives the perturb-evaluate-accept loop.
type Annealer struct {
	shelves   int
	capacity  core.Capacity
	schedule  config.AnnealingSpec
	objective Objective
	rng       *rand.Rand
	observer  RoundObserver
}

// NewAnnealer creates an annealer for spec drawing every random number from rng.
func NewAnnealer(spec config.OptimizerSpec, rng *rand.Rand) *Annealer {
	capacity := spec.Capacity.Capacity()
	return &Annealer{
		shelves:   spec.Shelves,
		capacity:  capacity,
		schedule:  spec.Annealing,
		objective: NewObjective(capacity, spec.Weights),
		rng:       rng,
	}
}

// WithObserver registers a callback invoked after every evaluated round.
func (a *Annealer) WithObserver(observer RoundObserver) *Annealer {
	a.observer = observer
	return a
}

// Objective returns the objective used by the annealer.
func (a *Annealer) Objective() Objective {
	return a.objective
}

// Initial builds the starting solution without annealing it.
func (a *Annealer) Initial(ctx context.Context, items []core.Item) *Result {
	start := time.Now()
	logger := logr.FromContextOrDiscard(ctx)

	solution, dropped := BuildInitial(items, a.shelves, a.capacity, a.schedule.MaxPlacementAttempts, a.rng)
	for _, d := range dropped {
		logger.Info("Group could not be placed, dropping its items",
			"group", d.Group,
			"items", len(d.Items),
			"attempts", a.schedule.MaxPlacementAttempts)
	}
	breakdown := a.objective.Breakdown(solution)
	return &Result{
		Solution:         solution,
		Cost:             breakdown.Total,
		Breakdown:        breakdown,
		InitialCost:      breakdown.Total,
		FinalTemperature: a.schedule.InitialTemperature,
		Dropped:          dropped,
		Duration:         time.Since(start),
	}
}

// Run builds an initial solution from items and anneals it.
//
// The loop stops when the temperature reaches the floor or after MaxIterations
// rounds. When ctx is cancelled the best solution so far is returned together
// with the context error.
func (a *Annealer) Run(ctx context.Context, items []core.Item) (*Result, error) {
	start := time.Now()
	logger := logr.FromContextOrDiscard(ctx)

	result := a.Initial(ctx, items)
	current, currentCost := result.Solution, result.Cost
	best, bestCost := current, currentCost

	temperature := a.schedule.InitialTemperature
	var runErr error
	for round := 1; round <= a.schedule.MaxIterations; round++ {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}

		temperature *= a.schedule.Alpha
		if temperature <= a.schedule.MinTemperature {
			break
		}
		result.Rounds++

		candidate := Perturb(current, a.capacity, a.schedule.MaxPerturbationAttempts, a.rng)
		stats := RoundStats{Round: round, Temperature: temperature}
		if !candidate.Feasible(a.capacity) {
			result.Infeasible++
		} else {
			stats.Feasible = true
			candidateCost := a.objective.Evaluate(candidate)
			if a.rng.Float64() < acceptance(candidateCost-currentCost, temperature) {
				stats.Accepted = true
				result.Accepted++
				current, currentCost = candidate, candidateCost
				if candidateCost < bestCost {
					best, bestCost = candidate, candidateCost
				}
			} else {
				result.Rejected++
			}
		}

		stats.CurrentCost, stats.BestCost = currentCost, bestCost
		if a.observer != nil {
			a.observer(stats)
		}
		logger.V(logging.TRACE).Info("Annealing round",
			"round", round,
			"temperature", temperature,
			"currentCost", currentCost,
			"bestCost", bestCost,
			"accepted", stats.Accepted)
	}

	result.Solution = best
	result.Breakdown = a.objective.Breakdown(best)
	result.Cost = result.Breakdown.Total
	result.FinalTemperature = temperature
	result.Duration = time.Since(start)

	logger.V(logging.DEBUG).Info("Annealing completed",
		"rounds", result.Rounds,
		"initialCost", result.InitialCost,
		"bestCost", result.Cost,
		"accepted", result.Accepted,
		"rejected", result.Rejected,
		"infeasible", result.Infeasible,
		"droppedItems", result.DroppedItems(),
		"duration", result.Duration)
	return result, runErr
}

// acceptance is the Metropolis criterion: 1 for non-worsening moves, exp(-delta/T) otherwise.
func acceptance(delta, temperature float64) float64 {
	if delta <= 0 {
		return 1.0
	}
	return math.Exp(-delta / temperature)
}

// NewRand returns a PCG-backed random source for seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// ExpectedRounds returns the number of cooling steps after which a geometric
// schedule from initial with factor alpha reaches floor.
func ExpectedRounds(initial, alpha, floor float64) int {
	return int(math.Ceil(math.Log(floor/initial) / math.Log(alpha)))
}
