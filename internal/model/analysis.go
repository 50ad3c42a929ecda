package model

import "time"

// CompanyInfo carries pass-through company metadata for display.
// Numeric fields are zero when the data source did not report them.
type CompanyInfo struct {
	Name          string
	Sector        string
	Industry      string
	MarketCap     float64
	TrailingPE    float64
	DividendYield float64
	High52w       float64
	Low52w        float64
}

// Analysis bundles everything one analysis request produces. It is derived
// fresh on every request; nothing is cached or mutated between runs.
type Analysis struct {
	Symbol      string
	Series      *PriceSeries
	Indicators  *IndicatorSet
	Signal      *SignalState
	Company     *CompanyInfo // nil when metadata is unavailable
	GeneratedAt time.Time
}
