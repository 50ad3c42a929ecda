package signal

import (
	"math"

	"StockInsight/internal/model"
)

// RSI thresholds. Readings strictly beyond them signal exhaustion; the
// boundary values themselves stay neutral.
const (
	RSIOverbought = 70.0
	RSIOversold   = 30.0
)

// Classify maps the last defined indicator values and the latest close to
// the four qualitative signal states. Indicators with no defined value yet
// (series shorter than their window) yield UNDETERMINED for the states that
// depend on them; that is valid output, not a failure. All four states are
// computed independently from the same snapshot.
func Classify(ind *model.IndicatorSet, lastClose float64) *model.SignalState {
	return &model.SignalState{
		Trend:           classifyTrend(ind.SMAShort, ind.SMALong),
		Momentum:        classifyMomentum(ind.RSI),
		Band:            classifyBand(ind.BBUpper, ind.BBLower, lastClose),
		VolatilityLevel: latestVolatility(ind.Volatility),
	}
}

func classifyTrend(short, long model.IndicatorSeries) model.TrendState {
	s, okShort := short.Last()
	l, okLong := long.Last()
	switch {
	case !okShort || !okLong:
		return model.TrendUndetermined
	case s > l:
		return model.TrendUpward
	case s < l:
		return model.TrendDownward
	default:
		return model.TrendSideways
	}
}

func classifyMomentum(rsi model.IndicatorSeries) model.MomentumState {
	r, ok := rsi.Last()
	switch {
	case !ok:
		return model.MomentumUndetermined
	case r > RSIOverbought:
		return model.MomentumOverbought
	case r < RSIOversold:
		return model.MomentumOversold
	default:
		return model.MomentumNeutral
	}
}

func classifyBand(upper, lower model.IndicatorSeries, lastClose float64) model.BandState {
	u, okUpper := upper.Last()
	l, okLower := lower.Last()
	switch {
	case !okUpper || !okLower:
		return model.BandUndetermined
	case lastClose > u:
		return model.BandAboveUpper
	case lastClose < l:
		return model.BandBelowLower
	default:
		return model.BandWithin
	}
}

func latestVolatility(vol model.IndicatorSeries) float64 {
	if v, ok := vol.Last(); ok {
		return v
	}
	return math.NaN()
}
