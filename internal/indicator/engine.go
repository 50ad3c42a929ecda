package indicator

import (
	"errors"
	"fmt"
	"math"

	"StockInsight/internal/model"
)

// Sentinel errors callers can match with errors.Is.
var (
	// ErrInvalidInput marks an empty or malformed price series.
	ErrInvalidInput = errors.New("invalid input series")
	// ErrInvalidParameter marks a non-positive window or negative band width.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Windows configures the lookback periods used by Compute.
type Windows struct {
	SMAShort   int
	SMALong    int
	RSI        int
	Bollinger  int
	BandWidth  float64 // standard deviations for the Bollinger Bands
	Volatility int
}

// DefaultWindows is the classic daily-chart setup: 50/200 SMA, RSI(14),
// Bollinger(20, 2σ), 20-day volatility.
func DefaultWindows() Windows {
	return Windows{
		SMAShort:   50,
		SMALong:    200,
		RSI:        14,
		Bollinger:  20,
		BandWidth:  2,
		Volatility: 20,
	}
}

// Engine computes all indicator series for a daily price series. It holds
// only configuration; Compute is a pure function of its input.
type Engine struct {
	windows Windows
}

// NewEngine creates an Engine with the given lookback windows.
func NewEngine(w Windows) *Engine {
	return &Engine{windows: w}
}

// Compute validates the series and produces all six indicator series, each
// index-aligned with the input bars. A series shorter than a window is not
// an error: the affected indicator is simply undefined throughout.
func (e *Engine) Compute(series *model.PriceSeries) (*model.IndicatorSet, error) {
	if err := validateSeries(series); err != nil {
		return nil, err
	}
	closes := series.Closes()

	smaShort, err := ComputeSMA(closes, e.windows.SMAShort)
	if err != nil {
		return nil, fmt.Errorf("short SMA: %w", err)
	}
	smaLong, err := ComputeSMA(closes, e.windows.SMALong)
	if err != nil {
		return nil, fmt.Errorf("long SMA: %w", err)
	}
	rsi, err := ComputeRSI(closes, e.windows.RSI)
	if err != nil {
		return nil, fmt.Errorf("RSI: %w", err)
	}
	upper, lower, err := ComputeBollingerBands(closes, e.windows.Bollinger, e.windows.BandWidth)
	if err != nil {
		return nil, fmt.Errorf("Bollinger Bands: %w", err)
	}
	vol, err := ComputeRollingVolatility(closes, e.windows.Volatility)
	if err != nil {
		return nil, fmt.Errorf("rolling volatility: %w", err)
	}

	return &model.IndicatorSet{
		SMAShort:   smaShort,
		SMALong:    smaLong,
		RSI:        rsi,
		BBUpper:    upper,
		BBLower:    lower,
		Volatility: vol,
	}, nil
}

func validateSeries(series *model.PriceSeries) error {
	if series == nil || len(series.Bars) == 0 {
		return fmt.Errorf("%w: empty series", ErrInvalidInput)
	}
	for i, b := range series.Bars {
		if b.Close <= 0 {
			return fmt.Errorf("%w: non-positive close %.4f at index %d", ErrInvalidInput, b.Close, i)
		}
		if i > 0 && !series.Bars[i-1].Date.Before(b.Date) {
			return fmt.Errorf("%w: dates not strictly ascending at index %d", ErrInvalidInput, i)
		}
	}
	return nil
}

// ComputeSMA returns the simple moving average of the closes over the given
// window. The leading window-1 positions are undefined. A window larger than
// the series yields an all-undefined result, not an error.
func ComputeSMA(closes []float64, window int) (model.IndicatorSeries, error) {
	if window <= 0 {
		return nil, fmt.Errorf("%w: SMA window %d must be positive", ErrInvalidParameter, window)
	}
	out := undefinedSeries(len(closes))
	sum := 0.0
	for i, c := range closes {
		sum += c
		if i >= window {
			sum -= closes[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		}
	}
	return out, nil
}

// ComputeRSI returns the Wilder-smoothed relative strength index. The seed
// average gain/loss is the simple mean of the first `window` price changes,
// later values carry the averages forward exponentially. The first `window`
// positions are undefined.
func ComputeRSI(closes []float64, window int) (model.IndicatorSeries, error) {
	if window <= 0 {
		return nil, fmt.Errorf("%w: RSI window %d must be positive", ErrInvalidParameter, window)
	}
	out := undefinedSeries(len(closes))
	if len(closes) <= window {
		return out, nil
	}

	var avgGain, avgLoss float64
	for i := 1; i <= window; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(window)
	avgLoss /= float64(window)
	out[window] = rsiValue(avgGain, avgLoss)

	for i := window + 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(window-1) + gain) / float64(window)
		avgLoss = (avgLoss*float64(window-1) + loss) / float64(window)
		out[i] = rsiValue(avgGain, avgLoss)
	}
	return out, nil
}

// rsiValue applies the RSI formula with the zero-loss edge cases fixed:
// no losses in the window means 100, a completely flat window means the
// neutral 50.
func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		if avgGain == 0 {
			return 50
		}
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}

// ComputeBollingerBands returns the upper and lower bands SMA ± width·σ,
// where σ is the sample standard deviation over the same trailing window.
// Both bands share the SMA's leading undefined positions.
func ComputeBollingerBands(closes []float64, window int, width float64) (upper, lower model.IndicatorSeries, err error) {
	if window <= 0 {
		return nil, nil, fmt.Errorf("%w: Bollinger window %d must be positive", ErrInvalidParameter, window)
	}
	if width < 0 {
		return nil, nil, fmt.Errorf("%w: band width %.2f must be non-negative", ErrInvalidParameter, width)
	}
	sma, err := ComputeSMA(closes, window)
	if err != nil {
		return nil, nil, err
	}
	sd, err := ComputeRollingVolatility(closes, window)
	if err != nil {
		return nil, nil, err
	}
	upper = undefinedSeries(len(closes))
	lower = undefinedSeries(len(closes))
	for i := range closes {
		if !sma.Defined(i) || !sd.Defined(i) {
			continue
		}
		upper[i] = sma[i] + width*sd[i]
		lower[i] = sma[i] - width*sd[i]
	}
	return upper, lower, nil
}

// ComputeRollingVolatility returns the trailing-window sample standard
// deviation of the closes (n-1 divisor). The same routine backs the
// Bollinger Bands so both stay consistent.
func ComputeRollingVolatility(closes []float64, window int) (model.IndicatorSeries, error) {
	if window <= 0 {
		return nil, fmt.Errorf("%w: volatility window %d must be positive", ErrInvalidParameter, window)
	}
	out := undefinedSeries(len(closes))
	for i := window - 1; i < len(closes); i++ {
		out[i] = sampleStdDev(closes[i-window+1 : i+1])
	}
	return out, nil
}

// sampleStdDev uses the n-1 divisor; a single-element window has no
// dispersion and yields 0.
func sampleStdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	mean := 0.0
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	variance := 0.0
	for _, x := range xs {
		variance += (x - mean) * (x - mean)
	}
	return math.Sqrt(variance / float64(len(xs)-1))
}

func undefinedSeries(n int) model.IndicatorSeries {
	s := make(model.IndicatorSeries, n)
	for i := range s {
		s[i] = math.NaN()
	}
	return s
}
