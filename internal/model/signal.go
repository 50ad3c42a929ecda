package model

// TrendState classifies the relation of the short and long moving averages.
type TrendState string

const (
	TrendUpward       TrendState = "UPWARD"
	TrendDownward     TrendState = "DOWNWARD"
	TrendSideways     TrendState = "SIDEWAYS"
	TrendUndetermined TrendState = "UNDETERMINED"
)

// MomentumState classifies the latest RSI reading.
type MomentumState string

const (
	MomentumOverbought   MomentumState = "OVERBOUGHT"
	MomentumOversold     MomentumState = "OVERSOLD"
	MomentumNeutral      MomentumState = "NEUTRAL"
	MomentumUndetermined MomentumState = "UNDETERMINED"
)

// BandState classifies the latest close against the Bollinger Bands.
type BandState string

const (
	BandAboveUpper   BandState = "ABOVE_UPPER"
	BandBelowLower   BandState = "BELOW_LOWER"
	BandWithin       BandState = "WITHIN"
	BandUndetermined BandState = "UNDETERMINED"
)

// SignalState is the qualitative snapshot derived from the latest defined
// indicator values and the latest close. VolatilityLevel carries the last
// defined rolling volatility and is NaN while the series is too short.
type SignalState struct {
	Trend           TrendState
	Momentum        MomentumState
	Band            BandState
	VolatilityLevel float64
}
