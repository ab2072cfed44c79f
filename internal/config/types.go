package config

// InputFlags holds all command line flag values
type InputFlags struct {
	Seed        int64
	ParamsFile  string
	OutputFile  string
	ChartFile   string
	LogDir      string
	MaxLogFiles int
	KeepGoing   bool

	Store        bool
	RunName      string
	DatabaseType string // "sqlite" or "postgres"
	PostgresURL  string // PostgreSQL connection string
}

// Params holds the statistical model constants for dataset generation.
// The demand model is quantity = DemandIntercept - DemandSlope*price + noise,
// with noise drawn from N(0, NoiseStdDev) and quantity clipped at zero.
type Params struct {
	BaseRows        int     `json:"base_rows"`
	PriceScale      float64 `json:"price_scale"`
	DemandIntercept float64 `json:"demand_intercept"`
	DemandSlope     float64 `json:"demand_slope"`
	NoiseStdDev     float64 `json:"noise_std_dev"`
	OutlierRows     int     `json:"outlier_rows"`
	MinPrice        float64 `json:"min_price"`

	LowOutliers  OutlierBand `json:"low_outliers"`
	HighOutliers OutlierBand `json:"high_outliers"`
}

// OutlierBand describes one injected outlier batch: prices drawn uniformly
// from [PriceLow, PriceHigh] and quantities centered at Quantity.
type OutlierBand struct {
	PriceLow  float64 `json:"price_low"`
	PriceHigh float64 `json:"price_high"`
	Quantity  float64 `json:"quantity"`
}
