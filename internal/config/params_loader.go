package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultParams returns the built-in model constants: 100 base prices drawn
// from an exponential distribution with scale 100, linear demand
// 1000 - 5*price with N(0,50) noise, two 10-row outlier batches, and a
// minimum price of 5.
func DefaultParams() Params {
	return Params{
		BaseRows:        100,
		PriceScale:      100,
		DemandIntercept: 1000,
		DemandSlope:     5,
		NoiseStdDev:     50,
		OutlierRows:     10,
		MinPrice:        5,
		LowOutliers: OutlierBand{
			PriceLow:  5,
			PriceHigh: 50,
			Quantity:  1100,
		},
		HighOutliers: OutlierBand{
			PriceLow:  51,
			PriceHigh: 100,
			Quantity:  900,
		},
	}
}

// LoadParams loads generation parameters from a JSON params file.
// A missing file is not an error: the built-in defaults are returned so the
// tool works out of the box without a configs directory.
func LoadParams(filepath string) (Params, error) {
	paramsFile, err := os.Open(filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultParams(), nil
		}
		return Params{}, fmt.Errorf("failed to open params file: %v", err)
	}
	defer func() {
		if closeErr := paramsFile.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close params file: %v\n", closeErr)
		}
	}()

	var params Params
	decoder := json.NewDecoder(paramsFile)
	if err := decoder.Decode(&params); err != nil {
		return Params{}, fmt.Errorf("failed to decode params file: %v", err)
	}

	if err := validateParams(params); err != nil {
		return Params{}, err
	}

	return params, nil
}

func validateParams(params Params) error {
	if params.BaseRows <= 0 {
		return fmt.Errorf("base_rows must be greater than 0")
	}
	if params.PriceScale <= 0 {
		return fmt.Errorf("price_scale must be greater than 0")
	}
	if params.NoiseStdDev < 0 {
		return fmt.Errorf("noise_std_dev must not be negative")
	}
	if params.OutlierRows < 0 {
		return fmt.Errorf("outlier_rows must not be negative")
	}
	for _, band := range []OutlierBand{params.LowOutliers, params.HighOutliers} {
		if band.PriceHigh < band.PriceLow {
			return fmt.Errorf("outlier band price_high must not be below price_low")
		}
	}
	return nil
}
