package analyzer

import (
	"fmt"
	"time"

	"StockInsight/internal/collector"
	"StockInsight/internal/indicator"
	"StockInsight/internal/model"
	"StockInsight/internal/signal"
)

// Analyzer runs the full pipeline for one symbol: collect the price history,
// compute the indicator series, classify the latest snapshot. Each call is
// independent; concurrent calls for different symbols do not interfere.
type Analyzer struct {
	Collector *collector.Collector
	Engine    *indicator.Engine
}

// New creates an Analyzer.
func New(col *collector.Collector, eng *indicator.Engine) *Analyzer {
	return &Analyzer{Collector: col, Engine: eng}
}

// Analyze produces a fresh Analysis for the symbol.
func (a *Analyzer) Analyze(symbol string) (*model.Analysis, error) {
	series, company, err := a.Collector.Collect(symbol)
	if err != nil {
		return nil, fmt.Errorf("collect %s: %w", symbol, err)
	}

	ind, err := a.Engine.Compute(series)
	if err != nil {
		return nil, fmt.Errorf("compute indicators for %s: %w", symbol, err)
	}

	lastClose, _ := series.LastClose() // Compute already rejected an empty series
	state := signal.Classify(ind, lastClose)

	return &model.Analysis{
		Symbol:      symbol,
		Series:      series,
		Indicators:  ind,
		Signal:      state,
		Company:     company,
		GeneratedAt: time.Now(),
	}, nil
}
