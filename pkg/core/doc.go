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

// Package core provides the domain model of the shelf optimizer.
//
// This package contains the entities the solver works on:
//
//   - Item: a book with a physical footprint (width, weight) and a group key (author)
//   - Shelf: an ordered, capacity-bounded sequence of items
//   - Solution: a fixed-size ordered collection of shelves
//   - Capacity: the per-shelf width and weight limits
//
// Feasibility is a pure predicate over a Solution: every shelf must stay within
// both limits at the same time. The solver package uses it as the only gate for
// rejecting candidates and for short-circuiting the objective.
//
// Example usage:
//
//	capacity := core.Capacity{Width: 800, Weight: 10000}
//	solution := core.NewSolution(7)
//	solution.Shelves[0] = append(solution.Shelves[0], item)
//
//	if !solution.Feasible(capacity) {
//	    return errors.New("shelf overflow")
//	}
//
// Solutions have value semantics through Clone: a clone shares Item values
// (which are never mutated after ingestion) but owns its shelf slices, so a
// candidate can be modified and discarded without touching its origin.
//
// The core package is designed to be:
//   - Independent of I/O and configuration loading
//   - Cheap to copy (items are small immutable values)
//   - Well-tested with table-driven unit tests
package core
