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

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/llm-d/llm-d-shelf-optimizer/internal/validation"
	"github.com/llm-d/llm-d-shelf-optimizer/pkg/core"
	"github.com/llm-d/llm-d-shelf-optimizer/pkg/solver"
)

// WriteText prints every shelf with its totals and its books in order,
// followed by a blank line.
func WriteText(w io.Writer, s *core.Solution) error {
	ew := &errWriter{w: w}
	for i, shelf := range s.Shelves {
		ew.printf("Shelf %d (Total Width: %d mm, Total Weight: %d g):\n", i+1, shelf.Width(), shelf.Weight())
		for _, it := range shelf {
			ew.printf("  - %s - %s (Width: %d mm, Weight: %d g)\n", it.Group, it.Title, it.Width, it.Weight)
		}
		ew.printf("\n")
	}
	return ew.err
}

// WriteSummary prints the penalty breakdown and search counters of result.
func WriteSummary(w io.Writer, result *solver.Result) error {
	ew := &errWriter{w: w}
	b := result.Breakdown
	ew.printf("Cost: %s (space %s, variance %s, adjacency %s), initial %s\n",
		FormatFloat(b.Total), FormatFloat(b.Space), FormatFloat(b.Variance), FormatFloat(b.Adjacency),
		FormatFloat(result.InitialCost))
	ew.printf("Rounds: %d (accepted %d, rejected %d, infeasible %d), seed %d\n",
		result.Rounds, result.Accepted, result.Rejected, result.Infeasible, result.Seed)
	if n := result.DroppedItems(); n > 0 {
		ew.printf("Dropped: %d items in %d groups\n", n, len(result.Dropped))
		for _, d := range result.Dropped {
			ew.printf("  - %s (%d items)\n", d.Group, len(d.Items))
		}
	}
	return ew.err
}

// WriteValidation prints the validation report lines, then one line per violation.
func WriteValidation(w io.Writer, report *validation.Report, err error) error {
	ew := &errWriter{w: w}
	for _, line := range report.Lines() {
		ew.printf("%s\n", line)
	}
	for _, v := range validation.Violations(err) {
		ew.printf("%s\n", v.Error())
	}
	return ew.err
}

// FormatFloat renders a penalty as the shortest exact decimal string.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
