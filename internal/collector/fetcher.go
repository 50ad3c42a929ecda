package collector

import "StockInsight/internal/model"

// Fetcher defines the interface for retrieving market data.
type Fetcher interface {
	// FetchDailyBars returns ascending daily bars covering the given range
	// expression (e.g. "1y", "6mo").
	FetchDailyBars(symbol, rng string) ([]model.PriceBar, error)
	// FetchCompanyInfo returns display-only company metadata.
	FetchCompanyInfo(symbol string) (*model.CompanyInfo, error)
	Name() string
}
