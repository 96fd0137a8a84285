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
	"slices"

	"github.com/llm-d/llm-d-shelf-optimizer/pkg/core"
)

// Perturb returns a neighbor of s that differs by at most one relocated item.
//
// It never mutates s. Up to maxAttempts times it draws two distinct shelves,
// removes a random item from the source and appends it to the destination when
// the destination can take it; otherwise the item goes back to where it was.
// Every shelf of the returned solution is then sorted by group key. With fewer
// than two shelves no move exists and only the sort is applied.
func Perturb(s *core.Solution, capacity core.Capacity, maxAttempts int, rng *rand.Rand) *core.Solution {
	next := s.Clone()
	n := next.NumShelves()

	if n >= 2 {
		for attempt := 0; attempt < maxAttempts; attempt++ {
			src, dst := distinctPair(n, rng)
			if len(next.Shelves[src]) == 0 {
				continue
			}
			idx := rng.IntN(len(next.Shelves[src]))
			item := next.Shelves[src][idx]
			next.Shelves[src] = slices.Delete(next.Shelves[src], idx, idx+1)

			if next.Shelves[dst].Fits(item, capacity) {
				next.Shelves[dst] = append(next.Shelves[dst], item)
				break
			}
			next.Shelves[src] = slices.Insert(next.Shelves[src], idx, item)
		}
	}

	for _, shelf := range next.Shelves {
		shelf.SortByGroup()
	}
	return next
}

// distinctPair draws two different indices in [0, n) uniformly.
func distinctPair(n int, rng *rand.Rand) (int, int) {
	a := rng.IntN(n)
	b := rng.IntN(n - 1)
	if b >= a {
		b++
	}
	return a, b
}
