package signal

import (
	"math"
	"testing"

	"StockInsight/internal/model"
)

var nan = math.NaN()

// set builds an IndicatorSet whose series each end in the given last value.
func set(smaShort, smaLong, rsi, upper, lower, vol float64) *model.IndicatorSet {
	return &model.IndicatorSet{
		SMAShort:   model.IndicatorSeries{nan, smaShort},
		SMALong:    model.IndicatorSeries{nan, smaLong},
		RSI:        model.IndicatorSeries{nan, rsi},
		BBUpper:    model.IndicatorSeries{nan, upper},
		BBLower:    model.IndicatorSeries{nan, lower},
		Volatility: model.IndicatorSeries{nan, vol},
	}
}

func TestClassify_UpwardTrendAndUpperBandBreach(t *testing.T) {
	state := Classify(set(150, 140, 55, 153, 145, 2.5), 155)
	if state.Trend != model.TrendUpward {
		t.Errorf("expected UPWARD trend, got %s", state.Trend)
	}
	if state.Band != model.BandAboveUpper {
		t.Errorf("expected ABOVE_UPPER band state, got %s", state.Band)
	}
	if state.Momentum != model.MomentumNeutral {
		t.Errorf("expected NEUTRAL momentum, got %s", state.Momentum)
	}
	if state.VolatilityLevel != 2.5 {
		t.Errorf("expected volatility pass-through 2.5, got %.4f", state.VolatilityLevel)
	}
}

func TestClassify_TrendStates(t *testing.T) {
	tests := []struct {
		name     string
		short    float64
		long     float64
		expected model.TrendState
	}{
		{"short above long", 150, 140, model.TrendUpward},
		{"short below long", 130, 140, model.TrendDownward},
		{"equal averages", 140, 140, model.TrendSideways},
	}
	for _, tt := range tests {
		state := Classify(set(tt.short, tt.long, 50, 160, 120, 1), 141)
		if state.Trend != tt.expected {
			t.Errorf("%s: expected %s, got %s", tt.name, tt.expected, state.Trend)
		}
	}
}

func TestClassify_MomentumBoundaries(t *testing.T) {
	tests := []struct {
		rsi      float64
		expected model.MomentumState
	}{
		{70.0, model.MomentumNeutral}, // boundary stays neutral
		{30.0, model.MomentumNeutral},
		{70.1, model.MomentumOverbought},
		{29.9, model.MomentumOversold},
		{50, model.MomentumNeutral},
		{0, model.MomentumOversold},
		{100, model.MomentumOverbought},
	}
	for _, tt := range tests {
		state := Classify(set(150, 140, tt.rsi, 160, 120, 1), 141)
		if state.Momentum != tt.expected {
			t.Errorf("RSI %.1f: expected %s, got %s", tt.rsi, tt.expected, state.Momentum)
		}
	}
}

func TestClassify_BandStates(t *testing.T) {
	tests := []struct {
		name     string
		close    float64
		expected model.BandState
	}{
		{"above upper", 161, model.BandAboveUpper},
		{"below lower", 119, model.BandBelowLower},
		{"within", 140, model.BandWithin},
		{"on upper boundary", 160, model.BandWithin},
		{"on lower boundary", 120, model.BandWithin},
	}
	for _, tt := range tests {
		state := Classify(set(150, 140, 50, 160, 120, 1), tt.close)
		if state.Band != tt.expected {
			t.Errorf("%s: expected %s, got %s", tt.name, tt.expected, state.Band)
		}
	}
}

func TestClassify_ShortHistoryIsUndetermined(t *testing.T) {
	empty := &model.IndicatorSet{
		SMAShort:   model.IndicatorSeries{nan, nan},
		SMALong:    model.IndicatorSeries{nan, nan},
		RSI:        model.IndicatorSeries{nan, nan},
		BBUpper:    model.IndicatorSeries{nan, nan},
		BBLower:    model.IndicatorSeries{nan, nan},
		Volatility: model.IndicatorSeries{nan, nan},
	}
	state := Classify(empty, 100)
	if state.Trend != model.TrendUndetermined {
		t.Errorf("expected UNDETERMINED trend, got %s", state.Trend)
	}
	if state.Momentum != model.MomentumUndetermined {
		t.Errorf("expected UNDETERMINED momentum, got %s", state.Momentum)
	}
	if state.Band != model.BandUndetermined {
		t.Errorf("expected UNDETERMINED band state, got %s", state.Band)
	}
	if !math.IsNaN(state.VolatilityLevel) {
		t.Errorf("expected NaN volatility level, got %.4f", state.VolatilityLevel)
	}
}

func TestClassify_PartiallyDefinedSet(t *testing.T) {
	// RSI and volatility ready, moving averages and bands still warming up.
	partial := &model.IndicatorSet{
		SMAShort:   model.IndicatorSeries{nan, nan},
		SMALong:    model.IndicatorSeries{nan, nan},
		RSI:        model.IndicatorSeries{nan, 75},
		BBUpper:    model.IndicatorSeries{nan, nan},
		BBLower:    model.IndicatorSeries{nan, nan},
		Volatility: model.IndicatorSeries{nan, 3.2},
	}
	state := Classify(partial, 100)
	if state.Trend != model.TrendUndetermined {
		t.Errorf("expected UNDETERMINED trend, got %s", state.Trend)
	}
	if state.Momentum != model.MomentumOverbought {
		t.Errorf("expected OVERBOUGHT momentum, got %s", state.Momentum)
	}
	if state.VolatilityLevel != 3.2 {
		t.Errorf("expected volatility 3.2, got %.4f", state.VolatilityLevel)
	}
}

func TestClassify_UsesLastDefinedValue(t *testing.T) {
	// Trailing NaN positions must not mask earlier defined values.
	ind := set(150, 140, 50, 160, 120, 1.5)
	ind.RSI = model.IndicatorSeries{nan, 80, nan}
	state := Classify(ind, 141)
	if state.Momentum != model.MomentumOverbought {
		t.Errorf("expected OVERBOUGHT from last defined RSI, got %s", state.Momentum)
	}
}
