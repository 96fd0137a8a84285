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

import (
	"cmp"
	"slices"
)

// Shelf is an ordered sequence of items. Order matters for the adjacency penalty.
type Shelf []Item

// Width returns the sum of item widths.
func (s Shelf) Width() int {
	total := 0
	for _, item := range s {
		total += item.Width
	}
	return total
}

// Weight returns the sum of item weights.
func (s Shelf) Weight() int {
	total := 0
	for _, item := range s {
		total += item.Weight
	}
	return total
}

// WithinCapacity reports whether the shelf respects both limits.
func (s Shelf) WithinCapacity(capacity Capacity) bool {
	return s.Width() <= capacity.Width && s.Weight() <= capacity.Weight
}

// Fits reports whether item can be appended without exceeding either limit.
func (s Shelf) Fits(item Item, capacity Capacity) bool {
	return s.Width()+item.Width <= capacity.Width && s.Weight()+item.Weight <= capacity.Weight
}

// FitsAll reports whether all items can be appended together without exceeding either limit.
func (s Shelf) FitsAll(items []Item, capacity Capacity) bool {
	width, weight := s.Width(), s.Weight()
	for _, item := range items {
		width += item.Width
		weight += item.Weight
	}
	return width <= capacity.Width && weight <= capacity.Weight
}

// SortByGroup stably reorders the shelf by ascending group key.
//
// This is a heuristic normalization applied after every move: it pulls items of
// the same author together inside a shelf. It is not a constraint and is not
// what the adjacency penalty measures.
func (s Shelf) SortByGroup() {
	slices.SortStableFunc(s, func(a, b Item) int {
		return cmp.Compare(a.Group, b.Group)
	})
}

// Clone returns a copy of the shelf backed by a new array.
func (s Shelf) Clone() Shelf {
	if s == nil {
		return Shelf{}
	}
	out := make(Shelf, len(s))
	copy(out, s)
	return out
}
