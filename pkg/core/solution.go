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

package core

// Solution is a fixed-length ordered collection of shelves.
type Solution struct {
	Shelves []Shelf `json:"shelves"`
}

// NewSolution creates a solution with numShelves empty shelves.
func NewSolution(numShelves int) *Solution {
	shelves := make([]Shelf, numShelves)
	for i := range shelves {
		shelves[i] = Shelf{}
	}
	return &Solution{Shelves: shelves}
}

// NumShelves returns the number of shelves.
func (s *Solution) NumShelves() int {
	return len(s.Shelves)
}

// ItemCount returns the number of items placed on all shelves.
func (s *Solution) ItemCount() int {
	n := 0
	for _, shelf := range s.Shelves {
		n += len(shelf)
	}
	return n
}

// Items returns all placed items in traversal order (shelves in order, items within
// a shelf in storage order).
func (s *Solution) Items() []Item {
	items := make([]Item, 0, s.ItemCount())
	for _, shelf := range s.Shelves {
		items = append(items, shelf...)
	}
	return items
}

// Feasible reports whether every shelf satisfies both capacity limits.
func (s *Solution) Feasible(capacity Capacity) bool {
	for _, shelf := range s.Shelves {
		if !shelf.WithinCapacity(capacity) {
			return false
		}
	}
	return true
}

// Clone returns a structurally independent copy: mutating the shelves of the clone
// never affects s.
func (s *Solution) Clone() *Solution {
	out := &Solution{Shelves: make([]Shelf, len(s.Shelves))}
	for i, shelf := range s.Shelves {
		out.Shelves[i] = shelf.Clone()
	}
	return out
}

// Widths returns the total width of every shelf.
func (s *Solution) Widths() []int {
	widths := make([]int, len(s.Shelves))
	for i, shelf := range s.Shelves {
		widths[i] = shelf.Width()
	}
	return widths
}

// Weights returns the total weight of every shelf.
func (s *Solution) Weights() []int {
	weights := make([]int, len(s.Shelves))
	for i, shelf := range s.Shelves {
		weights[i] = shelf.Weight()
	}
	return weights
}
