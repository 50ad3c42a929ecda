package collector

import (
	"fmt"
	"log"
	"time"

	"StockInsight/internal/model"
)

// Collector assembles the inputs for one analysis request.
type Collector struct {
	Fetcher Fetcher
	Range   string // history range expression, e.g. "1y"
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, rng string) *Collector {
	return &Collector{Fetcher: fetcher, Range: rng}
}

// Collect fetches the price history and company metadata for a symbol.
// Company metadata is best-effort: a failure there is logged, not fatal.
func (c *Collector) Collect(symbol string) (*model.PriceSeries, *model.CompanyInfo, error) {
	bars, err := c.Fetcher.FetchDailyBars(symbol, c.Range)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch daily bars: %w", err)
	}

	series := &model.PriceSeries{
		Symbol:    symbol,
		Bars:      bars,
		FetchedAt: time.Now(),
	}

	info, err := c.Fetcher.FetchCompanyInfo(symbol)
	if err != nil {
		log.Printf("[WARN] fetch company info for %s: %v", symbol, err)
		info = nil
	}
	return series, info, nil
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars []model.PriceBar
	Info *model.CompanyInfo
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_, _ string) ([]model.PriceBar, error) {
	if m.Bars != nil {
		return m.Bars, nil
	}
	return GenerateBars(100, 252), nil
}

func (m *MockFetcher) FetchCompanyInfo(symbol string) (*model.CompanyInfo, error) {
	if m.Info != nil {
		return m.Info, nil
	}
	return &model.CompanyInfo{Name: symbol + " Inc.", Sector: "Technology"}, nil
}

// GenerateBars produces a deterministic ascending daily series drifting
// gently around the base price.
func GenerateBars(basePrice float64, count int) []model.PriceBar {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]model.PriceBar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.PriceBar{
			Date:   start.AddDate(0, 0, i),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
