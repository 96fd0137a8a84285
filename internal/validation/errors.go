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

package validation

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityExceeded is matched by violations of a shelf width or weight limit.
	ErrCapacityExceeded = errors.New("shelf capacity exceeded")
	// ErrGroupNotContiguous is matched by groups whose items are split within a shelf.
	ErrGroupNotContiguous = errors.New("group items are not adjacent")
	// ErrItemsMismatch is matched when placed and dropped items do not add up to the catalog.
	ErrItemsMismatch = errors.New("arrangement does not account for every item")
)

// Violation kinds
const (
	KindWidth      = "width"
	KindWeight     = "weight"
	KindContiguity = "contiguity"
	KindItems      = "items"
)

// ViolationError describes a single broken invariant. Shelf is 1-based, as
// shelves are reported to users; it is 0 for arrangement wide violations.
type ViolationError struct {
	Shelf int
	Kind  string
	// Group is set for contiguity violations.
	Group string
	// Value and Limit are set for capacity and item count violations.
	Value int
	Limit int
	// Positions are the in-shelf indices of the group for contiguity violations.
	Positions []int
}

func (e *ViolationError) Error() string {
	switch e.Kind {
	case KindWidth:
		return fmt.Sprintf("Shelf %d exceeds width limit: %d mm (limit: %d mm)", e.Shelf, e.Value, e.Limit)
	case KindWeight:
		return fmt.Sprintf("Shelf %d exceeds weight limit: %d g (limit: %d g)", e.Shelf, e.Value, e.Limit)
	case KindContiguity:
		return fmt.Sprintf("Books by the same author are not adjacent on shelf %d: %s at %v", e.Shelf, e.Group, e.Positions)
	case KindItems:
		return fmt.Sprintf("arrangement accounts for %d items, catalog has %d", e.Value, e.Limit)
	default:
		return fmt.Sprintf("unknown violation %q on shelf %d", e.Kind, e.Shelf)
	}
}

// Unwrap returns the sentinel error for the violation kind.
func (e *ViolationError) Unwrap() error {
	switch e.Kind {
	case KindWidth, KindWeight:
		return ErrCapacityExceeded
	case KindContiguity:
		return ErrGroupNotContiguous
	case KindItems:
		return ErrItemsMismatch
	default:
		return nil
	}
}

// Violations returns every ViolationError joined into err.
func Violations(err error) []*ViolationError {
	if err == nil {
		return nil
	}
	var out []*ViolationError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			out = append(out, Violations(e)...)
		}
		return out
	}
	var v *ViolationError
	if errors.As(err, &v) {
		out = append(out, v)
	}
	return out
}
