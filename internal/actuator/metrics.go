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

package actuator

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/llm-d/llm-d-shelf-optimizer/internal/engines/placement"
)

const namespace = "shelf_optimizer"

// Label values
const (
	ComponentSpace     = "space"
	ComponentVariance  = "variance"
	ComponentAdjacency = "adjacency"

	OutcomeAccepted   = "accepted"
	OutcomeRejected   = "rejected"
	OutcomeInfeasible = "infeasible"
)

// MetricsEmitter registers and updates the optimizer metrics on its own registry.
type MetricsEmitter struct {
	registry *prometheus.Registry

	BestCost     prometheus.Gauge
	InitialCost  prometheus.Gauge
	Penalty      *prometheus.GaugeVec
	ShelfWidth   *prometheus.GaugeVec
	ShelfWeight  *prometheus.GaugeVec
	Rounds       prometheus.Counter
	Moves        *prometheus.CounterVec
	DroppedItems prometheus.Counter
	Restarts     prometheus.Gauge
	RunDuration  prometheus.Histogram
	Valid        prometheus.Gauge
}

// NewMetricsEmitter creates an emitter with every metric registered.
func NewMetricsEmitter() *MetricsEmitter {
	m := &MetricsEmitter{registry: prometheus.NewRegistry()}

	m.BestCost = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "best_cost",
		Help: "Penalty of the best arrangement found",
	})
	m.InitialCost = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "initial_cost",
		Help: "Penalty of the initial arrangement",
	})
	m.Penalty = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace, Name: "penalty",
		Help: "Unweighted penalty terms of the best arrangement",
	}, []string{"component"})
	m.ShelfWidth = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace, Name: "shelf_width_mm",
		Help: "Total width of the items on a shelf",
	}, []string{"shelf"})
	m.ShelfWeight = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace, Name: "shelf_weight_grams",
		Help: "Total weight of the items on a shelf",
	}, []string{"shelf"})
	m.Rounds = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace, Name: "rounds_total",
		Help: "Annealing rounds that generated a candidate",
	})
	m.Moves = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "moves_total",
		Help: "Candidate moves by outcome",
	}, []string{"outcome"})
	m.DroppedItems = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace, Name: "dropped_items_total",
		Help: "Items the initial placement could not fit on any shelf",
	})
	m.Restarts = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "restarts",
		Help: "Annealing chains run for the arrangement",
	})
	m.RunDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace, Name: "run_duration_seconds",
		Help:    "Wall time of an annealing chain",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
	})
	m.Valid = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "arrangement_valid",
		Help: "1 when the arrangement passed validation, 0 otherwise",
	})

	m.registry.MustRegister(
		m.BestCost, m.InitialCost, m.Penalty, m.ShelfWidth, m.ShelfWeight,
		m.Rounds, m.Moves, m.DroppedItems, m.Restarts, m.RunDuration, m.Valid,
	)
	return m
}

// Registry returns the registry holding the optimizer metrics.
func (m *MetricsEmitter) Registry() *prometheus.Registry {
	return m.registry
}

// EmitOutcome records the best result of outcome. Infinite costs are exported
// as +Inf, which the text format supports.
func (m *MetricsEmitter) EmitOutcome(outcome *placement.Outcome) {
	best := outcome.Best
	m.BestCost.Set(best.Cost)
	m.InitialCost.Set(best.InitialCost)
	m.Penalty.WithLabelValues(ComponentSpace).Set(best.Breakdown.Space)
	m.Penalty.WithLabelValues(ComponentVariance).Set(best.Breakdown.Variance)
	m.Penalty.WithLabelValues(ComponentAdjacency).Set(best.Breakdown.Adjacency)

	m.ShelfWidth.Reset()
	m.ShelfWeight.Reset()
	for i, shelf := range best.Solution.Shelves {
		label := strconv.Itoa(i + 1)
		m.ShelfWidth.WithLabelValues(label).Set(float64(shelf.Width()))
		m.ShelfWeight.WithLabelValues(label).Set(float64(shelf.Weight()))
	}

	m.Rounds.Add(float64(best.Rounds))
	m.Moves.WithLabelValues(OutcomeAccepted).Add(float64(best.Accepted))
	m.Moves.WithLabelValues(OutcomeRejected).Add(float64(best.Rejected))
	m.Moves.WithLabelValues(OutcomeInfeasible).Add(float64(best.Infeasible))
	m.DroppedItems.Add(float64(best.DroppedItems()))
	m.Restarts.Set(float64(len(outcome.Runs)))
	m.RunDuration.Observe(best.Duration.Seconds())
}

// EmitValidation records whether the arrangement passed validation.
func (m *MetricsEmitter) EmitValidation(err error) {
	if err != nil {
		m.Valid.Set(0)
		return
	}
	m.Valid.Set(1)
}

// WriteTextfile writes every metric in the Prometheus text format to path.
// The file is replaced atomically so a collector never reads a partial file.
func (m *MetricsEmitter) WriteTextfile(path string) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating metrics file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(tmp, mf); err != nil {
			_ = tmp.Close()
			return fmt.Errorf("encoding metric %s: %w", mf.GetName(), err)
		}
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing metrics file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("writing metrics file: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}
