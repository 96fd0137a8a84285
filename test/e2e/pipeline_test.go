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

package e2e

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"k8s.io/apimachinery/pkg/api/meta"
	"k8s.io/utils/ptr"

	"github.com/llm-d/llm-d-shelf-optimizer/api/v1alpha1"
	"github.com/llm-d/llm-d-shelf-optimizer/internal/actuator"
	"github.com/llm-d/llm-d-shelf-optimizer/internal/catalog"
	"github.com/llm-d/llm-d-shelf-optimizer/internal/optimizer"
	"github.com/llm-d/llm-d-shelf-optimizer/internal/report"
	"github.com/llm-d/llm-d-shelf-optimizer/pkg/config"
)

func specFor(strategy string) config.OptimizerSpec {
	spec := config.DefaultOptimizerSpec()
	spec.Strategy = strategy
	spec.Seed = ptr.To(baseSeed)
	return spec
}

func optimize(spec config.OptimizerSpec, metrics *actuator.MetricsEmitter) *optimizer.Run {
	src, err := catalog.NewSource(catalogPath)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())

	ctx, cancel := context.WithTimeout(logr.NewContext(context.Background(), logger), 2*time.Minute)
	defer cancel()
	run, err := optimizer.NewOptimizer(spec, src, metrics).Optimize(ctx)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	return run
}

var _ = Describe("Shelf arrangement pipeline", Ordered, func() {
	var (
		annealed *optimizer.Run
		metrics  *actuator.MetricsEmitter
	)

	BeforeAll(func() {
		metrics = actuator.NewMetricsEmitter()
		annealed = optimize(specFor(config.StrategyAnnealing), metrics)
	})

	It("should place or drop every valid catalog item exactly once", func() {
		best := annealed.Outcome.Best
		Expect(annealed.Valid()).To(BeTrue())
		Expect(best.Solution.NumShelves()).To(Equal(config.DefaultShelves))
		Expect(best.Solution.ItemCount() + best.DroppedItems()).To(Equal(len(annealed.Items)))
		if catalogOverride == "" {
			Expect(annealed.Stats.SkippedTotal()).To(Equal(2))
		}
	})

	It("should keep every shelf within its limits", func() {
		for _, shelf := range annealed.Validation.Shelves {
			Expect(shelf.WithinLimits()).To(BeTrue(), "shelf %d", shelf.Index)
		}
		Expect(annealed.Validation.GroupsContiguous).To(BeTrue())
	})

	It("should never end worse than it started", func() {
		best := annealed.Outcome.Best
		Expect(best.Cost).To(BeNumerically("<=", best.InitialCost))
		Expect(best.Rounds).To(BeNumerically(">", 0))
	})

	It("should record the outcome as conditions", func() {
		conds := annealed.Arrangement.Status.Conditions
		Expect(meta.IsStatusConditionTrue(conds, v1alpha1.TypeArrangementValid)).To(BeTrue())
		placed := meta.FindStatusCondition(conds, v1alpha1.TypeAllItemsPlaced)
		Expect(placed).NotTo(BeNil())
		if annealed.Outcome.Best.DroppedItems() == 0 {
			Expect(placed.Reason).To(Equal(v1alpha1.ReasonAllPlaced))
		} else {
			Expect(placed.Reason).To(Equal(v1alpha1.ReasonGroupsDropped))
		}
	})

	It("should export metrics as a textfile", func() {
		path := filepath.Join(workDir, "shelf.prom")
		Expect(metrics.WriteTextfile(path)).To(Succeed())
		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring("shelf_optimizer_best_cost"))
		Expect(string(data)).To(ContainSubstring(`shelf_optimizer_shelf_width_mm{shelf="7"}`))
		Expect(string(data)).To(ContainSubstring("shelf_optimizer_arrangement_valid 1"))
	})

	DescribeTable("saved documents revalidate to the recorded cost",
		func(format string) {
			var buf bytes.Buffer
			Expect(report.WriteArrangement(&buf, annealed.Arrangement, format)).To(Succeed())

			doc, err := report.ReadArrangement(&buf)
			Expect(err).NotTo(HaveOccurred())
			Expect(report.IsValid(doc)).To(BeTrue())

			rev, err := optimizer.Revalidate(context.Background(), doc, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(rev.Breakdown.Total).To(Equal(rev.Recorded))
			Expect(rev.Recorded).To(Equal(annealed.Outcome.Best.Cost))
		},
		Entry("YAML", report.FormatYAML),
		Entry("JSON", report.FormatJSON),
	)

	It("should not beat annealing with the greedy start of the same seed", func() {
		greedy := optimize(specFor(config.StrategyGreedy), nil)
		Expect(greedy.Outcome.Best.Rounds).To(BeZero())
		Expect(greedy.Outcome.Best.Cost).To(Equal(annealed.Outcome.Best.InitialCost))
		Expect(annealed.Outcome.Best.Cost).To(BeNumerically("<=", greedy.Outcome.Best.Cost))
	})

	It("should not lose to a single chain when restarting from the same seed", func() {
		spec := specFor(config.StrategyMultiStart)
		spec.Restarts = 4
		multi := optimize(spec, nil)
		Expect(multi.Outcome.Runs).To(HaveLen(4))
		Expect(multi.Outcome.Runs[0].Seed).To(Equal(baseSeed))
		Expect(multi.Outcome.Runs[0].Cost).To(Equal(annealed.Outcome.Best.Cost))
		Expect(multi.Outcome.Best.Cost).To(BeNumerically("<=", annealed.Outcome.Best.Cost))
	})

	It("should reproduce the arrangement for the same seed", func() {
		again := optimize(specFor(config.StrategyAnnealing), nil)
		Expect(again.Arrangement.Status.Shelves).To(Equal(annealed.Arrangement.Status.Shelves))
		Expect(again.Arrangement.Status.Cost).To(Equal(annealed.Arrangement.Status.Cost))
	})
})
