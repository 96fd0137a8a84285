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

package optimizer

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-logr/logr"

	"github.com/llm-d/llm-d-shelf-optimizer/api/v1alpha1"
	"github.com/llm-d/llm-d-shelf-optimizer/internal/actuator"
	"github.com/llm-d/llm-d-shelf-optimizer/internal/catalog"
	"github.com/llm-d/llm-d-shelf-optimizer/internal/engines/placement"
	"github.com/llm-d/llm-d-shelf-optimizer/internal/logging"
	"github.com/llm-d/llm-d-shelf-optimizer/internal/report"
	"github.com/llm-d/llm-d-shelf-optimizer/internal/validation"
	"github.com/llm-d/llm-d-shelf-optimizer/pkg/config"
	"github.com/llm-d/llm-d-shelf-optimizer/pkg/core"
	"github.com/llm-d/llm-d-shelf-optimizer/pkg/solver"
)

// ErrInvalidArrangement is returned when the arrangement fails validation.
var ErrInvalidArrangement = errors.New("arrangement failed validation")

// Run holds everything produced by one pipeline execution.
type Run struct {
	Items   []core.Item
	Stats   catalog.Stats
	Seed    int64
	Outcome *placement.Outcome
	// Validation is the per shelf report; ValidationErr and ItemsErr are the
	// violations found, if any.
	Validation    *validation.Report
	ValidationErr error
	ItemsErr      error
	Arrangement   *v1alpha1.ShelfArrangement
}

// Valid reports whether the arrangement passed every check.
func (r *Run) Valid() bool {
	return r.ValidationErr == nil && r.ItemsErr == nil
}

// Optimizer wires a catalog source to a placement engine.
type Optimizer struct {
	spec    config.OptimizerSpec
	source  catalog.Source
	metrics *actuator.MetricsEmitter
	now     func() time.Time
}

// NewOptimizer creates an optimizer. metrics may be nil.
func NewOptimizer(spec config.OptimizerSpec, source catalog.Source, metrics *actuator.MetricsEmitter) *Optimizer {
	return &Optimizer{spec: spec, source: source, metrics: metrics, now: time.Now}
}

// Optimize runs the pipeline once. The returned run is non-nil whenever the
// placement completed, including when validation failed.
func (o *Optimizer) Optimize(ctx context.Context) (*Run, error) {
	logger := logr.FromContextOrDiscard(ctx).WithName("optimizer")
	ctx = logr.NewContext(ctx, logger)

	items, stats, err := catalog.Load(ctx, o.source)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	logger.Info("Loaded catalog",
		"source", o.source.Name(),
		"records", stats.Records,
		"items", stats.Items,
		"skipped", stats.SkippedTotal())

	run := &Run{Items: items, Stats: stats, Seed: o.spec.EffectiveSeed()}
	engine, err := placement.NewEngine(o.spec, run.Seed)
	if err != nil {
		return nil, err
	}

	logger.V(logging.DEBUG).Info("Placing items",
		"strategy", o.spec.Strategy,
		"shelves", o.spec.Shelves,
		"seed", run.Seed)
	run.Outcome, err = engine.Place(ctx, items)
	if err != nil {
		return nil, fmt.Errorf("placing items: %w", err)
	}
	best := run.Outcome.Best

	run.Validation, run.ValidationErr = validation.Check(best.Solution, o.spec.Capacity.Capacity())
	run.ItemsErr = validation.CheckItems(best.Solution, items, best.DroppedItems())
	for _, v := range validation.Violations(errors.Join(run.ValidationErr, run.ItemsErr)) {
		logger.Info("Arrangement violation", "shelf", v.Shelf, "kind", v.Kind, "error", v.Error())
	}

	if o.metrics != nil {
		o.metrics.EmitOutcome(run.Outcome)
		o.metrics.EmitValidation(errors.Join(run.ValidationErr, run.ItemsErr))
	}

	run.Arrangement = report.BuildArrangement(report.Input{
		Catalog:       o.source.Name(),
		Spec:          o.spec,
		Seed:          run.Seed,
		Outcome:       run.Outcome,
		Validation:    run.Validation,
		ValidationErr: run.ValidationErr,
		ItemsErr:      run.ItemsErr,
		Now:           o.now(),
	})

	logger.Info("Optimization complete",
		"arrangement", run.Arrangement.Name,
		"initialCost", best.InitialCost,
		"bestCost", best.Cost,
		"rounds", best.Rounds,
		"droppedItems", best.DroppedItems(),
		"valid", run.Valid())

	if !run.Valid() {
		return run, fmt.Errorf("%w: %w", ErrInvalidArrangement, errors.Join(run.ValidationErr, run.ItemsErr))
	}
	return run, nil
}

// Revalidation is the outcome of checking a saved arrangement again.
type Revalidation struct {
	Report    *validation.Report
	Breakdown solver.Breakdown
	// Recorded is the total cost stored in the document.
	Recorded float64
}

// Revalidate checks a saved arrangement. When override is non-nil its capacity
// and penalty weights replace the ones recorded in the document.
func Revalidate(ctx context.Context, doc *v1alpha1.ShelfArrangement, override *config.OptimizerSpec) (*Revalidation, error) {
	logger := logr.FromContextOrDiscard(ctx).WithName("optimizer")

	sol, capacity := report.ToSolution(doc)
	weights, err := recordedWeights(doc)
	if err != nil {
		return nil, err
	}
	if override != nil {
		capacity = override.Capacity.Capacity()
		weights = override.Weights
	}
	recorded, err := report.TotalCost(doc)
	if err != nil {
		return nil, err
	}

	out := &Revalidation{Recorded: recorded}
	out.Breakdown = solver.NewObjective(capacity, weights).Breakdown(sol)
	var checkErr error
	out.Report, checkErr = validation.Check(sol, capacity)

	logger.V(logging.DEBUG).Info("Revalidated arrangement",
		"arrangement", doc.Name,
		"shelves", sol.NumShelves(),
		"items", sol.ItemCount(),
		"recordedCost", recorded,
		"cost", out.Breakdown.Total)
	if checkErr != nil {
		return out, fmt.Errorf("%w: %w", ErrInvalidArrangement, checkErr)
	}
	return out, nil
}

func recordedWeights(doc *v1alpha1.ShelfArrangement) (config.PenaltyWeights, error) {
	var w config.PenaltyWeights
	for _, f := range []struct {
		name  string
		value string
		dst   *float64
	}{
		{"space", doc.Spec.Weights.Space, &w.Space},
		{"variance", doc.Spec.Weights.Variance, &w.Variance},
		{"adjacency", doc.Spec.Weights.Adjacency, &w.Adjacency},
	} {
		v, err := strconv.ParseFloat(f.value, 64)
		if err != nil {
			return w, fmt.Errorf("invalid %s weight %q: %w", f.name, f.value, err)
		}
		*f.dst = v
	}
	return w, nil
}
