package generator

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"pricing-datagen/internal/config"
)

var _ = Describe("Generate", func() {
	var params config.Params

	BeforeEach(func() {
		params = config.DefaultParams()
	})

	newDataset := func(seed int64) []Observation {
		return Generate(params, rand.New(rand.NewSource(seed)))
	}

	It("keeps only rows at or above the minimum price", func() {
		for seed := int64(1); seed <= 5; seed++ {
			for _, row := range newDataset(seed) {
				Expect(row.Price).To(BeNumerically(">=", params.MinPrice))
			}
		}
	})

	It("never produces negative quantities on base rows", func() {
		rows := newDataset(1)
		baseRows := rows[:len(rows)-2*params.OutlierRows]
		for _, row := range baseRows {
			Expect(row.Quantity).To(BeNumerically(">=", 0))
		}
	})

	It("keeps all outlier rows through the price filter", func() {
		// Outlier prices are drawn at or above the minimum price by
		// construction, so the total is always kept-base + 20.
		rows := newDataset(1)
		Expect(len(rows)).To(BeNumerically(">=", params.OutlierRows*2))
		Expect(len(rows)).To(BeNumerically("<=", params.BaseRows+params.OutlierRows*2))
	})

	It("produces between 100 and 120 rows for seed 1", func() {
		Expect(len(newDataset(1))).To(And(
			BeNumerically(">=", 100),
			BeNumerically("<=", 120),
		))
	})

	It("appends the low-price outlier batch before the high-price batch", func() {
		rows := newDataset(1)
		low := rows[len(rows)-2*params.OutlierRows : len(rows)-params.OutlierRows]
		high := rows[len(rows)-params.OutlierRows:]

		for _, row := range low {
			Expect(row.Price).To(BeNumerically(">=", params.LowOutliers.PriceLow))
			Expect(row.Price).To(BeNumerically("<=", params.LowOutliers.PriceHigh))
		}
		for _, row := range high {
			Expect(row.Price).To(BeNumerically(">=", params.HighOutliers.PriceLow))
			Expect(row.Price).To(BeNumerically("<=", params.HighOutliers.PriceHigh))
		}
	})

	It("keeps base rows sorted by ascending price", func() {
		rows := newDataset(1)
		baseRows := rows[:len(rows)-2*params.OutlierRows]
		for i := 1; i < len(baseRows); i++ {
			Expect(baseRows[i].Price).To(BeNumerically(">=", baseRows[i-1].Price))
		}
	})

	It("is deterministic for a fixed seed", func() {
		Expect(newDataset(42)).To(Equal(newDataset(42)))
	})

	It("produces different datasets for different seeds", func() {
		Expect(newDataset(1)).NotTo(Equal(newDataset(2)))
	})
})

var _ = Describe("Summarize", func() {
	It("returns zero statistics for an empty dataset", func() {
		s := Summarize(nil)
		Expect(s.Rows).To(Equal(0))
		Expect(s.MeanPrice).To(BeZero())
		Expect(s.StdQty).To(BeZero())
	})

	It("computes row count and means", func() {
		rows := []Observation{
			{Price: 10, Quantity: 100},
			{Price: 20, Quantity: 300},
		}
		s := Summarize(rows)
		Expect(s.Rows).To(Equal(2))
		Expect(s.MeanPrice).To(BeNumerically("~", 15, 1e-9))
		Expect(s.MeanQty).To(BeNumerically("~", 200, 1e-9))
		Expect(s.StdPrice).To(BeNumerically(">", 0))
	})
})
