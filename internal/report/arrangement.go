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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/yaml"

	"github.com/llm-d/llm-d-shelf-optimizer/api/v1alpha1"
	"github.com/llm-d/llm-d-shelf-optimizer/internal/engines/placement"
	"github.com/llm-d/llm-d-shelf-optimizer/internal/validation"
	"github.com/llm-d/llm-d-shelf-optimizer/pkg/config"
	"github.com/llm-d/llm-d-shelf-optimizer/pkg/core"
)

// Output formats
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

var (
	// ErrUnknownDocument is returned when a document is not a ShelfArrangement.
	ErrUnknownDocument = errors.New("document is not a ShelfArrangement")
	// ErrUnknownFormat is returned for unsupported output formats.
	ErrUnknownFormat = errors.New("unknown output format")
)

// Input gathers everything an arrangement document records.
type Input struct {
	// Catalog names the catalog source.
	Catalog string
	Spec    config.OptimizerSpec
	Seed    int64
	Outcome *placement.Outcome
	// Validation and ValidationErr are the outcome of validation.Check.
	Validation    *validation.Report
	ValidationErr error
	// ItemsErr is the outcome of validation.CheckItems.
	ItemsErr error
	Now      time.Time
}

// BuildArrangement creates a ShelfArrangement document of a run.
func BuildArrangement(in Input) *v1alpha1.ShelfArrangement {
	id := uuid.New()
	best := in.Outcome.Best
	now := metav1.NewTime(in.Now)

	doc := &v1alpha1.ShelfArrangement{
		TypeMeta: v1alpha1.TypeMeta(),
		ObjectMeta: metav1.ObjectMeta{
			Name:              "arrangement-" + id.String()[:8],
			UID:               types.UID(id.String()),
			CreationTimestamp: now,
		},
		Spec: v1alpha1.ShelfArrangementSpec{
			Catalog:  in.Catalog,
			Shelves:  in.Spec.Shelves,
			Capacity: v1alpha1.ShelfCapacity{WidthMM: in.Spec.Capacity.Width, WeightGrams: in.Spec.Capacity.Weight},
			Strategy: in.Outcome.Strategy.String(),
			Seed:     in.Seed,
			Weights: v1alpha1.PenaltyWeights{
				Space:     FormatFloat(in.Spec.Weights.Space),
				Variance:  FormatFloat(in.Spec.Weights.Variance),
				Adjacency: FormatFloat(in.Spec.Weights.Adjacency),
			},
		},
		Status: v1alpha1.ShelfArrangementStatus{
			Cost: v1alpha1.PenaltyBreakdown{
				Space:     FormatFloat(best.Breakdown.Space),
				Variance:  FormatFloat(best.Breakdown.Variance),
				Adjacency: FormatFloat(best.Breakdown.Adjacency),
				Total:     FormatFloat(best.Breakdown.Total),
			},
			Search: v1alpha1.SearchStatus{
				InitialCost: FormatFloat(best.InitialCost),
				Rounds:      best.Rounds,
				Accepted:    best.Accepted,
				Rejected:    best.Rejected,
				Infeasible:  best.Infeasible,
				Restarts:    len(in.Outcome.Runs),
				BestRun:     in.Outcome.BestRun,
				Duration:    metav1.Duration{Duration: best.Duration},
			},
			LastRunTime: now,
		},
	}

	for i, shelf := range best.Solution.Shelves {
		out := v1alpha1.Shelf{Index: i + 1, WidthMM: shelf.Width(), WeightGrams: shelf.Weight(), Books: []v1alpha1.Book{}}
		for _, it := range shelf {
			out.Books = append(out.Books, toBook(it))
		}
		doc.Status.Shelves = append(doc.Status.Shelves, out)
	}
	for _, d := range best.Dropped {
		for _, it := range d.Items {
			doc.Status.Dropped = append(doc.Status.Dropped, toBook(it))
		}
	}

	SetValidationConditions(doc, in.ValidationErr, in.ItemsErr, best.DroppedItems())
	return doc
}

// SetValidationConditions records the validation outcome as status conditions.
func SetValidationConditions(doc *v1alpha1.ShelfArrangement, checkErr, itemsErr error, dropped int) {
	valid := metav1.Condition{
		Type:    v1alpha1.TypeArrangementValid,
		Status:  metav1.ConditionTrue,
		Reason:  v1alpha1.ReasonConstraintsSatisfied,
		Message: "All shelves are within limits and books by the same author are adjacent",
	}
	switch {
	case errors.Is(checkErr, validation.ErrCapacityExceeded):
		valid.Status, valid.Reason, valid.Message = metav1.ConditionFalse, v1alpha1.ReasonCapacityExceeded, checkErr.Error()
	case errors.Is(checkErr, validation.ErrGroupNotContiguous):
		valid.Status, valid.Reason, valid.Message = metav1.ConditionFalse, v1alpha1.ReasonGroupNotContiguous, checkErr.Error()
	case itemsErr != nil:
		valid.Status, valid.Reason, valid.Message = metav1.ConditionFalse, v1alpha1.ReasonItemsMismatch, itemsErr.Error()
	}
	meta.SetStatusCondition(&doc.Status.Conditions, valid)

	placed := metav1.Condition{
		Type:    v1alpha1.TypeAllItemsPlaced,
		Status:  metav1.ConditionTrue,
		Reason:  v1alpha1.ReasonAllPlaced,
		Message: "Every catalog item is on a shelf",
	}
	if dropped > 0 {
		placed.Status = metav1.ConditionFalse
		placed.Reason = v1alpha1.ReasonGroupsDropped
		placed.Message = fmt.Sprintf("%d items could not be placed", dropped)
	}
	meta.SetStatusCondition(&doc.Status.Conditions, placed)
}

// IsValid reports whether the document carries a true ArrangementValid condition.
func IsValid(doc *v1alpha1.ShelfArrangement) bool {
	return meta.IsStatusConditionTrue(doc.Status.Conditions, v1alpha1.TypeArrangementValid)
}

// ToSolution rebuilds the solution and the capacity recorded in doc.
func ToSolution(doc *v1alpha1.ShelfArrangement) (*core.Solution, core.Capacity) {
	sol := core.NewSolution(len(doc.Status.Shelves))
	for i, shelf := range doc.Status.Shelves {
		for _, b := range shelf.Books {
			it := core.NewItem(b.Title, b.Author, b.WidthMM, b.WeightGrams)
			it.Extra = b.Extra
			sol.Shelves[i] = append(sol.Shelves[i], it)
		}
	}
	return sol, core.Capacity{Width: doc.Spec.Capacity.WidthMM, Weight: doc.Spec.Capacity.WeightGrams}
}

// WriteArrangement encodes doc as YAML or JSON.
func WriteArrangement(w io.Writer, doc *v1alpha1.ShelfArrangement, format string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatYAML:
		data, err = yaml.Marshal(doc)
	case FormatJSON:
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("encoding arrangement: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ReadArrangement decodes a YAML or JSON ShelfArrangement document.
func ReadArrangement(r io.Reader) (*v1alpha1.ShelfArrangement, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading arrangement: %w", err)
	}
	var doc v1alpha1.ShelfArrangement
	if err := yaml.UnmarshalStrict(bytes.TrimSpace(data), &doc); err != nil {
		return nil, fmt.Errorf("decoding arrangement: %w", err)
	}
	if doc.APIVersion != v1alpha1.GroupVersion.String() || doc.Kind != v1alpha1.KindShelfArrangement {
		return nil, fmt.Errorf("%w: apiVersion=%q kind=%q", ErrUnknownDocument, doc.APIVersion, doc.Kind)
	}
	return &doc, nil
}

func toBook(it core.Item) v1alpha1.Book {
	b := v1alpha1.Book{Title: it.Title, Author: it.Group, WidthMM: it.Width, WeightGrams: it.Weight}
	if len(it.Extra) > 0 {
		b.Extra = make(map[string]string, len(it.Extra))
		for k, v := range it.Extra {
			b.Extra[k] = v
		}
	}
	return b
}

// TotalCost returns the recorded total penalty of doc.
func TotalCost(doc *v1alpha1.ShelfArrangement) (float64, error) {
	v, err := strconv.ParseFloat(doc.Status.Cost.Total, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid total cost %q: %w", doc.Status.Cost.Total, err)
	}
	return v, nil
}
