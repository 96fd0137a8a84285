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
	"math/rand/v2"

	"github.com/llm-d/llm-d-shelf-optimizer/pkg/core"
)

// DroppedGroup is a group the initial builder could not place within its attempt budget.
type DroppedGroup struct {
	Group string      `json:"group"`
	Items []core.Item `json:"items"`
}

// BuildInitial places whole groups onto uniformly random shelves.
//
// For each group, in discovery order, up to maxAttempts shelves are drawn; the
// group goes onto the first one that can take all of its items within both
// limits. Groups that never fit are left out of the solution and returned as
// dropped, so the solution may hold fewer items than the input.
func BuildInitial(
	items []core.Item,
	numShelves int,
	capacity core.Capacity,
	maxAttempts int,
	rng *rand.Rand,
) (*core.Solution, []DroppedGroup) {
	solution := core.NewSolution(numShelves)
	var dropped []DroppedGroup
	if numShelves <= 0 {
		for _, g := range core.GroupItems(items) {
			dropped = append(dropped, DroppedGroup{Group: g.Key, Items: g.Items})
		}
		return solution, dropped
	}

	for _, group := range core.GroupItems(items) {
		placed := false
		for attempt := 0; attempt < maxAttempts && !placed; attempt++ {
			idx := rng.IntN(numShelves)
			if solution.Shelves[idx].FitsAll(group.Items, capacity) {
				solution.Shelves[idx] = append(solution.Shelves[idx], group.Items...)
				placed = true
			}
		}
		if !placed {
			dropped = append(dropped, DroppedGroup{Group: group.Key, Items: group.Items})
		}
	}
	return solution, dropped
}

// CountItems returns the number of items across dropped groups.
func CountItems(dropped []DroppedGroup) int {
	n := 0
	for _, d := range dropped {
		n += len(d.Items)
	}
	return n
}
