package measure

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ParseWidth", func() {
	Context("with well formed dimensions", func() {
		It("should read the second token", func() {
			Expect(ParseWidth("198 x 24 x 129 mm")).To(Equal(24))
		})

		It("should accept a missing height", func() {
			Expect(ParseWidth("198 x 31mm")).To(Equal(31))
		})

		It("should accept a zero width", func() {
			Expect(ParseWidth("100 x 0 x 100 mm")).To(Equal(0))
		})

		It("should tolerate extra spacing", func() {
			Expect(ParseWidth("  110x 17 x178  mm ")).To(Equal(17))
		})
	})

	Context("with malformed dimensions", func() {
		It("should reject an empty string", func() {
			_, err := ParseWidth("  ")
			Expect(err).To(MatchError(errEmpty))
		})

		It("should reject a single token", func() {
			_, err := ParseWidth("198 mm")
			Expect(err).To(MatchError(errMissingToken))
		})

		It("should reject a non integer width", func() {
			_, err := ParseWidth("198 x 2.5 x 129 mm")
			Expect(err).To(MatchError(errNotInteger))
		})

		It("should reject a width in another unit", func() {
			_, err := ParseWidth("19 x 2cm x 12")
			Expect(err).To(MatchError(errUnknownUnit))
		})

		It("should reject a negative width", func() {
			_, err := ParseWidth("198 x -3 x 129 mm")
			Expect(err).To(MatchError(errNegative))
		})
	})
})

var _ = Describe("ParseDimensions", func() {
	It("should read all three extents", func() {
		Expect(ParseDimensions("198 x 24 x 129 mm")).To(Equal(Dimensions{Length: 198, Width: 24, Height: 129}))
	})

	It("should leave unreadable optional extents at zero", func() {
		Expect(ParseDimensions("? x 24 x n/a")).To(Equal(Dimensions{Width: 24}))
	})
})

var _ = Describe("ParseWeight", func() {
	DescribeTable("valid weights",
		func(in string, want int) {
			Expect(ParseWeight(in)).To(Equal(want))
		},
		Entry("grams suffix", "350g", 350),
		Entry("spaced suffix", " 1200 g ", 1200),
		Entry("bare number", "95", 95),
		Entry("zero", "0g", 0),
	)

	DescribeTable("invalid weights",
		func(in string, want error) {
			_, err := ParseWeight(in)
			Expect(err).To(MatchError(want))
		},
		Entry("empty", "", errEmpty),
		Entry("kilograms", "1.2kg", errUnknownUnit),
		Entry("negative", "-5g", errNegative),
		Entry("decimal", "3.5g", errNotInteger),
	)
})
