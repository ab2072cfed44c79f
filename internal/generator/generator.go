// Package generator produces the synthetic price/quantity dataset used by
// downstream price-optimization experiments. Base rows follow a linear
// demand model over exponentially distributed prices; two small outlier
// batches are injected to stress-test the robustness of fitting procedures.
package generator

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat"

	"pricing-datagen/internal/config"
)

// Observation is a single (price, quantity) pair.
type Observation struct {
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

// Summary holds descriptive statistics for a generated dataset.
type Summary struct {
	Rows      int
	MeanPrice float64
	StdPrice  float64
	MeanQty   float64
	StdQty    float64
}

// Generate produces the dataset: base rows sorted by ascending price, then
// the low-price outlier batch, then the mid/high-price batch. Rows with a
// price below params.MinPrice are dropped. The result is deterministic for
// a given rng state.
func Generate(params config.Params, rng *rand.Rand) []Observation {
	prices := make([]float64, params.BaseRows)
	for i := range prices {
		prices[i] = rng.ExpFloat64() * params.PriceScale
	}
	sort.Float64s(prices)

	rows := make([]Observation, 0, params.BaseRows+2*params.OutlierRows)
	for _, p := range prices {
		q := params.DemandIntercept - params.DemandSlope*p + rng.NormFloat64()*params.NoiseStdDev
		// Demand can't go negative
		rows = append(rows, Observation{Price: p, Quantity: math.Max(q, 0)})
	}

	rows = append(rows, outlierBatch(params.LowOutliers, params.OutlierRows, params.NoiseStdDev, rng)...)
	rows = append(rows, outlierBatch(params.HighOutliers, params.OutlierRows, params.NoiseStdDev, rng)...)

	filtered := make([]Observation, 0, len(rows))
	for _, r := range rows {
		if r.Price >= params.MinPrice {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// outlierBatch draws n rows with prices uniform in the band's price range
// and quantities centered at the band's quantity level. Outlier quantities
// are deliberately not clipped: the bands sit far from zero and the raw
// draws are what downstream robustness checks expect.
func outlierBatch(band config.OutlierBand, n int, noiseStd float64, rng *rand.Rand) []Observation {
	batch := make([]Observation, n)
	for i := range batch {
		batch[i] = Observation{
			Price:    band.PriceLow + rng.Float64()*(band.PriceHigh-band.PriceLow),
			Quantity: band.Quantity + rng.NormFloat64()*noiseStd,
		}
	}
	return batch
}

// Summarize computes descriptive statistics over the dataset.
func Summarize(rows []Observation) Summary {
	prices := make([]float64, len(rows))
	quantities := make([]float64, len(rows))
	for i, r := range rows {
		prices[i] = r.Price
		quantities[i] = r.Quantity
	}

	s := Summary{Rows: len(rows)}
	if len(rows) == 0 {
		return s
	}
	s.MeanPrice = stat.Mean(prices, nil)
	s.MeanQty = stat.Mean(quantities, nil)
	if len(rows) > 1 {
		s.StdPrice = stat.StdDev(prices, nil)
		s.StdQty = stat.StdDev(quantities, nil)
	}
	return s
}
