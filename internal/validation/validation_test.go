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

package validation_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/llm-d/llm-d-shelf-optimizer/internal/validation"
	"github.com/llm-d/llm-d-shelf-optimizer/pkg/core"
)

func book(title, author string, width, weight int) core.Item {
	return core.NewItem(title, author, width, weight)
}

var _ = Describe("Check", func() {
	var capacity core.Capacity

	BeforeEach(func() {
		capacity = core.Capacity{Width: 100, Weight: 1000}
	})

	Context("with a valid arrangement", func() {
		It("should report every shelf within limits", func() {
			sol := &core.Solution{Shelves: []core.Shelf{
				{book("a1", "A", 30, 400), book("a2", "A", 30, 400), book("b1", "B", 40, 200)},
				{},
			}}

			report, err := validation.Check(sol, capacity)
			Expect(err).NotTo(HaveOccurred())
			Expect(report.GroupsContiguous).To(BeTrue())
			Expect(report.Lines()).To(Equal([]string{
				"Shelf 1 is within limits: Width 100 mm / 100 mm, Weight 1000 g / 1000 g",
				"Shelf 2 is within limits: Width 0 mm / 100 mm, Weight 0 g / 1000 g",
				"All books by the same author are adjacent in each shelf.",
			}))
		})

		It("should accept a group split across shelves", func() {
			sol := &core.Solution{Shelves: []core.Shelf{
				{book("a1", "A", 10, 10)},
				{book("a2", "A", 10, 10)},
			}}
			_, err := validation.Check(sol, capacity)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Context("with capacity violations", func() {
		It("should report width and weight separately", func() {
			sol := &core.Solution{Shelves: []core.Shelf{
				{book("x", "X", 120, 10)},
				{book("y", "Y", 10, 1500)},
			}}

			report, err := validation.Check(sol, capacity)
			Expect(err).To(MatchError(validation.ErrCapacityExceeded))
			Expect(err).NotTo(MatchError(validation.ErrGroupNotContiguous))
			Expect(report.Shelves[0].WithinLimits()).To(BeFalse())
			Expect(report.Lines()).To(HaveLen(1))

			violations := validation.Violations(err)
			Expect(violations).To(HaveLen(2))
			Expect(violations[0].Error()).To(Equal("Shelf 1 exceeds width limit: 120 mm (limit: 100 mm)"))
			Expect(violations[1].Error()).To(Equal("Shelf 2 exceeds weight limit: 1500 g (limit: 1000 g)"))
		})
	})

	Context("with interleaved groups", func() {
		It("should report the group and its positions", func() {
			sol := &core.Solution{Shelves: []core.Shelf{
				{book("a1", "A", 10, 10), book("b1", "B", 10, 10), book("a2", "A", 10, 10)},
			}}

			report, err := validation.Check(sol, capacity)
			Expect(err).To(MatchError(validation.ErrGroupNotContiguous))
			Expect(report.GroupsContiguous).To(BeFalse())

			violations := validation.Violations(err)
			Expect(violations).To(HaveLen(1))
			Expect(violations[0].Shelf).To(Equal(1))
			Expect(violations[0].Group).To(Equal("A"))
			Expect(violations[0].Positions).To(Equal([]int{0, 2}))
		})
	})

	Context("after sorting by group", func() {
		It("should always pass contiguity", func() {
			shelf := core.Shelf{book("c", "C", 1, 1), book("a", "A", 1, 1), book("c2", "C", 1, 1), book("a2", "A", 1, 1)}
			shelf.SortByGroup()
			_, err := validation.Check(&core.Solution{Shelves: []core.Shelf{shelf}}, capacity)
			Expect(err).NotTo(HaveOccurred())
		})
	})
})

var _ = Describe("CheckItems", func() {
	catalog := []core.Item{book("a1", "A", 1, 1), book("a2", "A", 1, 1), book("b1", "B", 1, 1)}

	It("should accept placed plus dropped items", func() {
		sol := &core.Solution{Shelves: []core.Shelf{{catalog[0], catalog[1]}}}
		Expect(validation.CheckItems(sol, catalog, 1)).To(Succeed())
	})

	It("should reject missing items", func() {
		sol := &core.Solution{Shelves: []core.Shelf{{catalog[0]}}}
		Expect(validation.CheckItems(sol, catalog, 0)).To(MatchError(validation.ErrItemsMismatch))
	})

	It("should reject duplicated items", func() {
		sol := &core.Solution{Shelves: []core.Shelf{{catalog[0], catalog[0], catalog[2]}}}
		Expect(validation.CheckItems(sol, catalog, 0)).To(MatchError(validation.ErrItemsMismatch))
	})
})

var _ = Describe("Violations", func() {
	It("should return nil for nil", func() {
		Expect(validation.Violations(nil)).To(BeNil())
	})
})
