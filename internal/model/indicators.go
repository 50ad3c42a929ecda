package model

import "math"

// IndicatorSeries holds one value per input bar, index-aligned with the
// price series it was computed from. Positions where the indicator is not
// yet computable (too little trailing history) hold NaN.
type IndicatorSeries []float64

// Defined reports whether position i holds a computed value.
func (s IndicatorSeries) Defined(i int) bool {
	return i >= 0 && i < len(s) && !math.IsNaN(s[i])
}

// Last returns the most recent defined value.
func (s IndicatorSeries) Last() (float64, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if !math.IsNaN(s[i]) {
			return s[i], true
		}
	}
	return 0, false
}

// IndicatorSet holds all computed indicator series for one price series.
// Every series has the same length as the input bars.
type IndicatorSet struct {
	SMAShort   IndicatorSeries // short simple moving average (default 50 days)
	SMALong    IndicatorSeries // long simple moving average (default 200 days)
	RSI        IndicatorSeries // Wilder-smoothed relative strength index
	BBUpper    IndicatorSeries // upper Bollinger Band
	BBLower    IndicatorSeries // lower Bollinger Band
	Volatility IndicatorSeries // rolling standard deviation of close
}
