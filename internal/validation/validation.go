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

// Package validation checks a final arrangement against the hard constraints
// and the group adjacency invariant.
package validation

import (
	"errors"
	"fmt"
	"slices"

	"github.com/llm-d/llm-d-shelf-optimizer/pkg/core"
)

// ShelfStatus holds the totals of one shelf against its limits.
type ShelfStatus struct {
	// Index is 1-based.
	Index       int
	Width       int
	Weight      int
	WidthLimit  int
	WeightLimit int
}

// WithinLimits reports whether the shelf respects both limits.
func (s ShelfStatus) WithinLimits() bool {
	return s.Width <= s.WidthLimit && s.Weight <= s.WeightLimit
}

// Report is the outcome of Check.
type Report struct {
	Shelves          []ShelfStatus
	GroupsContiguous bool
}

// Lines renders the report the way the command line prints it.
func (r *Report) Lines() []string {
	lines := make([]string, 0, len(r.Shelves)+1)
	for _, s := range r.Shelves {
		if !s.WithinLimits() {
			continue
		}
		lines = append(lines, fmt.Sprintf("Shelf %d is within limits: Width %d mm / %d mm, Weight %d g / %d g",
			s.Index, s.Width, s.WidthLimit, s.Weight, s.WeightLimit))
	}
	if r.GroupsContiguous {
		lines = append(lines, "All books by the same author are adjacent in each shelf.")
	}
	return lines
}

// Check verifies that every shelf is within capacity and that, on every shelf,
// the items of a group occupy consecutive positions. All violations are
// returned joined; use errors.Is with the package sentinels or Violations to
// inspect them. The report is always populated.
func Check(s *core.Solution, capacity core.Capacity) (*Report, error) {
	report := &Report{Shelves: make([]ShelfStatus, 0, s.NumShelves()), GroupsContiguous: true}
	var errs []error

	for i, shelf := range s.Shelves {
		status := ShelfStatus{
			Index:       i + 1,
			Width:       shelf.Width(),
			Weight:      shelf.Weight(),
			WidthLimit:  capacity.Width,
			WeightLimit: capacity.Weight,
		}
		report.Shelves = append(report.Shelves, status)
		if status.Width > capacity.Width {
			errs = append(errs, &ViolationError{Shelf: status.Index, Kind: KindWidth, Value: status.Width, Limit: capacity.Width})
		}
		if status.Weight > capacity.Weight {
			errs = append(errs, &ViolationError{Shelf: status.Index, Kind: KindWeight, Value: status.Weight, Limit: capacity.Weight})
		}
	}

	for i, shelf := range s.Shelves {
		for _, v := range contiguityViolations(i+1, shelf) {
			report.GroupsContiguous = false
			errs = append(errs, v)
		}
	}
	return report, errors.Join(errs...)
}

// CheckItems verifies that the arrangement plus the dropped items hold exactly
// the catalog items, compared by title and group.
func CheckItems(s *core.Solution, catalog []core.Item, dropped int) error {
	type key struct{ title, group string }
	counts := make(map[key]int, len(catalog))
	for _, it := range catalog {
		counts[key{it.Title, it.Group}]++
	}
	placed := 0
	for _, it := range s.Items() {
		k := key{it.Title, it.Group}
		counts[k]--
		placed++
		if counts[k] < 0 {
			return &ViolationError{Kind: KindItems, Value: placed + dropped, Limit: len(catalog)}
		}
	}
	if placed+dropped != len(catalog) {
		return &ViolationError{Kind: KindItems, Value: placed + dropped, Limit: len(catalog)}
	}
	return nil
}

// contiguityViolations returns one violation per group whose positions on the
// shelf are not consecutive.
func contiguityViolations(index int, shelf core.Shelf) []error {
	positions := make(map[string][]int)
	var order []string
	for pos, it := range shelf {
		if _, ok := positions[it.Group]; !ok {
			order = append(order, it.Group)
		}
		positions[it.Group] = append(positions[it.Group], pos)
	}

	var errs []error
	for _, group := range order {
		p := positions[group]
		if len(p) > 1 && slices.Max(p)-slices.Min(p) != len(p)-1 {
			errs = append(errs, &ViolationError{Shelf: index, Kind: KindContiguity, Group: group, Positions: p})
		}
	}
	return errs
}
