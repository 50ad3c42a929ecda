package analyzer

import (
	"errors"
	"math"
	"testing"

	"StockInsight/internal/collector"
	"StockInsight/internal/indicator"
	"StockInsight/internal/model"
)

func newTestAnalyzer(bars []model.PriceBar) *Analyzer {
	fetcher := &collector.MockFetcher{Bars: bars}
	col := collector.NewCollector(fetcher, "1y")
	return New(col, indicator.NewEngine(indicator.DefaultWindows()))
}

func TestAnalyze_FullYearOfHistory(t *testing.T) {
	a := newTestAnalyzer(collector.GenerateBars(100, 252))

	result, err := a.Analyze("AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n := len(result.Series.Bars)
	for name, s := range map[string]model.IndicatorSeries{
		"SMAShort":   result.Indicators.SMAShort,
		"SMALong":    result.Indicators.SMALong,
		"RSI":        result.Indicators.RSI,
		"BBUpper":    result.Indicators.BBUpper,
		"BBLower":    result.Indicators.BBLower,
		"Volatility": result.Indicators.Volatility,
	} {
		if len(s) != n {
			t.Errorf("%s: expected %d aligned positions, got %d", name, n, len(s))
		}
	}

	// The mock series rises linearly, so every state is determinable.
	if result.Signal.Trend != model.TrendUpward {
		t.Errorf("expected UPWARD trend, got %s", result.Signal.Trend)
	}
	if result.Signal.Momentum != model.MomentumOverbought {
		t.Errorf("expected OVERBOUGHT momentum for a pure ramp, got %s", result.Signal.Momentum)
	}
	if result.Signal.Band != model.BandWithin {
		t.Errorf("expected WITHIN bands, got %s", result.Signal.Band)
	}
	if math.IsNaN(result.Signal.VolatilityLevel) || result.Signal.VolatilityLevel <= 0 {
		t.Errorf("expected positive volatility level, got %.6f", result.Signal.VolatilityLevel)
	}
	if result.Company == nil {
		t.Error("expected company metadata from mock fetcher")
	}
}

func TestAnalyze_ShortHistoryYieldsUndeterminedTrend(t *testing.T) {
	a := newTestAnalyzer(collector.GenerateBars(100, 60))

	result, err := a.Analyze("AAPL")
	if err != nil {
		t.Fatalf("short history must not be an error: %v", err)
	}
	if result.Signal.Trend != model.TrendUndetermined {
		t.Errorf("expected UNDETERMINED trend with 60 bars, got %s", result.Signal.Trend)
	}
	if result.Signal.Momentum == model.MomentumUndetermined {
		t.Error("RSI should be determinable with 60 bars")
	}
}

func TestAnalyze_TooShortForAnything(t *testing.T) {
	a := newTestAnalyzer(collector.GenerateBars(100, 5))

	result, err := a.Analyze("AAPL")
	if err != nil {
		t.Fatalf("5 bars must not be an error: %v", err)
	}
	sig := result.Signal
	if sig.Trend != model.TrendUndetermined || sig.Momentum != model.MomentumUndetermined ||
		sig.Band != model.BandUndetermined || !math.IsNaN(sig.VolatilityLevel) {
		t.Errorf("expected all states undetermined for 5 bars, got %+v", sig)
	}
}

func TestAnalyze_MalformedSeriesFailsFast(t *testing.T) {
	bars := collector.GenerateBars(100, 30)
	bars[10].Close = -1

	a := newTestAnalyzer(bars)
	if _, err := a.Analyze("AAPL"); !errors.Is(err, indicator.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAnalyze_Stateless(t *testing.T) {
	a := newTestAnalyzer(collector.GenerateBars(100, 252))

	first, err := a.Analyze("AAPL")
	if err != nil {
		t.Fatal(err)
	}
	second, err := a.Analyze("AAPL")
	if err != nil {
		t.Fatal(err)
	}
	if first.Signal.Trend != second.Signal.Trend ||
		first.Signal.Momentum != second.Signal.Momentum ||
		first.Signal.Band != second.Signal.Band {
		t.Error("repeated analysis of the same series changed the signal states")
	}
	if math.Float64bits(first.Signal.VolatilityLevel) != math.Float64bits(second.Signal.VolatilityLevel) {
		t.Error("repeated analysis changed the volatility level")
	}
}
