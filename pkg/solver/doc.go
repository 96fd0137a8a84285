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

// Package solver implements the simulated annealing search over shelf arrangements.
//
// Key Components:
//
//   - Objective: composite penalty (unused space, weight variance, group dispersion)
//   - BuildInitial: greedy placement of whole groups onto random shelves
//   - Perturb: single-item relocation between two random shelves
//   - Annealer: geometric cooling schedule and Metropolis acceptance loop
//
// Optimization Strategy:
//
//  1. Build an initial feasible solution group by group
//  2. Cool the temperature geometrically once per round
//  3. Relocate a random item; discard infeasible candidates
//  4. Accept improvements always, and worse candidates with probability exp(-delta/T)
//  5. Keep the best solution seen and return it when the floor or the round cap is hit
//
// Example usage:
//
//	rng := solver.NewRand(42)
//	annealer := solver.NewAnnealer(spec, rng)
//	result, err := annealer.Run(ctx, items)
//	if err != nil {
//	    return err
//	}
//	log.Info("annealing complete",
//	    "cost", result.Cost,
//	    "rounds", result.Rounds,
//	    "dropped", result.DroppedItems())
//
// Every stochastic step draws from the *rand.Rand handed to it, so a fixed seed
// reproduces a run exactly. A single run is not safe for concurrent use; run
// several annealers, each with its own random source, to search in parallel.
package solver
