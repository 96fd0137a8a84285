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

package catalog

import "errors"

// Interpreted record fields.
const (
	FieldTitle      = "Title"
	FieldAuthor     = "Author"
	FieldDimensions = "Dimensions"
	FieldWeight     = "Weight"

	// UnknownAuthor is the group of records without an author.
	UnknownAuthor = "Unknown"
)

var (
	// ErrUnsupportedFormat is returned by NewSource for unknown file extensions.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")

	errNoDimensions = errors.New("record has no dimensions")
	errNoWeight     = errors.New("record has no weight")
)

// Record is a single catalog entry. Keys are field names as found in the catalog.
type Record map[string]string

// Get returns the trimmed value of field, or "" when absent.
func (r Record) Get(field string) string {
	return trim(r[field])
}

// Stats summarizes a catalog load.
type Stats struct {
	// Records is the number of records read from the source.
	Records int
	// Items is the number of records converted into items.
	Items int
	// Skipped counts excluded records by reason.
	Skipped map[string]int
}

// SkippedTotal returns the number of excluded records.
func (s Stats) SkippedTotal() int {
	n := 0
	for _, v := range s.Skipped {
		n += v
	}
	return n
}
