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

// Package common holds helpers shared by the placement engines.
package common

import (
	"sync"

	"github.com/llm-d/llm-d-shelf-optimizer/pkg/solver"
)

// BestTracker keeps the lowest cost result offered by concurrent runs.
// Ties are broken by the lower run index so the outcome does not depend on
// goroutine scheduling.
type BestTracker struct {
	mu     sync.Mutex
	best   *solver.Result
	index  int
	offers int
}

// NewBestTracker creates an empty tracker.
func NewBestTracker() *BestTracker {
	return &BestTracker{index: -1}
}

// Offer records the result of run index and reports whether it became the best.
// Nil results are ignored.
func (t *BestTracker) Offer(index int, result *solver.Result) bool {
	if result == nil {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.offers++
	if t.best == nil || result.Cost < t.best.Cost || (result.Cost == t.best.Cost && index < t.index) {
		t.best = result
		t.index = index
		return true
	}
	return false
}

// Best returns the best result so far and its run index, or nil and -1.
func (t *BestTracker) Best() (*solver.Result, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.best, t.index
}

// Offers returns the number of results offered.
func (t *BestTracker) Offers() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.offers
}

// DeriveSeed returns the seed of run index for a base seed.
func DeriveSeed(base int64, index int) int64 {
	return base + int64(index)
}
