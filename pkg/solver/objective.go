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
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/llm-d/llm-d-shelf-optimizer/pkg/config"
	"github.com/llm-d/llm-d-shelf-optimizer/pkg/core"
)

// Breakdown holds the sub-penalties of an evaluated solution.
type Breakdown struct {
	Space     float64 `json:"space"`
	Variance  float64 `json:"variance"`
	Adjacency float64 `json:"adjacency"`
	Total     float64 `json:"total"`
}

// Objective maps a solution to a scalar penalty.
type Objective struct {
	Capacity core.Capacity
	Weights  config.PenaltyWeights
}

// NewObjective creates an objective for the given limits and weights.
func NewObjective(capacity core.Capacity, weights config.PenaltyWeights) Objective {
	return Objective{Capacity: capacity, Weights: weights}
}

// Evaluate returns the weighted penalty of s, or +Inf when s is infeasible.
func (o Objective) Evaluate(s *core.Solution) float64 {
	return o.Breakdown(s).Total
}

// Breakdown evaluates s and returns every sub-penalty. An infeasible solution
// yields a Total of +Inf and zero sub-terms.
func (o Objective) Breakdown(s *core.Solution) Breakdown {
	if !s.Feasible(o.Capacity) {
		return Breakdown{Total: math.Inf(1)}
	}
	b := Breakdown{
		Space:     SpacePenalty(s, o.Capacity.Width),
		Variance:  WeightVariance(s),
		Adjacency: AdjacencyPenalty(s),
	}
	b.Total = o.Weights.Space*b.Space + o.Weights.Variance*b.Variance + o.Weights.Adjacency*b.Adjacency
	return b
}

// SpacePenalty sums the unused width of every shelf.
func SpacePenalty(s *core.Solution, width int) float64 {
	unused := 0
	for _, w := range s.Widths() {
		unused += width - w
	}
	return float64(unused)
}

// WeightVariance returns the sample variance (n-1 denominator) of the shelf
// weights. It is 0 when there are fewer than two shelves.
func WeightVariance(s *core.Solution) float64 {
	if len(s.Shelves) < 2 {
		return 0
	}
	weights := make([]float64, len(s.Shelves))
	for i, w := range s.Weights() {
		weights[i] = float64(w)
	}
	return stat.Variance(weights, nil)
}

type position struct {
	shelf, index int
}

// AdjacencyPenalty measures the dispersion of same-group items.
//
// Occurrences of a group are visited in traversal order (shelves in order,
// items in storage order); each consecutive pair of occurrences adds the shelf
// distance plus the position distance.
func AdjacencyPenalty(s *core.Solution) float64 {
	last := make(map[string]position)
	penalty := 0
	for i, shelf := range s.Shelves {
		for j, item := range shelf {
			if prev, ok := last[item.Group]; ok {
				penalty += abs(i-prev.shelf) + abs(j-prev.index)
			}
			last[item.Group] = position{shelf: i, index: j}
		}
	}
	return float64(penalty)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
