package notifier

import (
	"fmt"
	"math"
	"strings"

	"StockInsight/internal/model"
)

// FormatAnalysisReport renders one analysis into a Telegram HTML message:
// company basics, the latest indicator values, and the qualitative
// interpretation of each signal state.
func FormatAnalysisReport(a *model.Analysis) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📈 <b>%s</b> | %s\n\n", a.Symbol, a.GeneratedAt.Format("2006-01-02")))

	if a.Company != nil {
		writeCompanyBlock(&b, a.Company)
	}

	b.WriteString("📊 <b>Technical Indicators</b>\n")
	if close, ok := a.Series.LastClose(); ok {
		b.WriteString(fmt.Sprintf("Close: %.2f\n", close))
	}
	b.WriteString(fmt.Sprintf("SMA50: %s | SMA200: %s\n", lastValue(a.Indicators.SMAShort), lastValue(a.Indicators.SMALong)))
	b.WriteString(fmt.Sprintf("RSI: %s\n", lastValue(a.Indicators.RSI)))
	b.WriteString(fmt.Sprintf("Bollinger: %s ~ %s\n\n", lastValue(a.Indicators.BBLower), lastValue(a.Indicators.BBUpper)))

	b.WriteString("💡 <b>Key Insights</b>\n")
	b.WriteString(trendInsight(a.Signal.Trend) + "\n")
	b.WriteString(momentumInsight(a.Signal.Momentum) + "\n")
	b.WriteString(bandInsight(a.Signal.Band) + "\n")
	b.WriteString(volatilityInsight(a.Signal.VolatilityLevel) + "\n")

	b.WriteString("\n<i>For informational purposes only, not financial advice.</i>")
	return b.String()
}

func writeCompanyBlock(b *strings.Builder, c *model.CompanyInfo) {
	b.WriteString(fmt.Sprintf("🔍 <b>%s</b>\n", c.Name))
	if c.Sector != "" {
		b.WriteString(fmt.Sprintf("Sector: %s | Industry: %s\n", c.Sector, c.Industry))
	}
	if c.MarketCap > 0 {
		b.WriteString(fmt.Sprintf("Market Cap: %s\n", formatMarketCap(c.MarketCap)))
	}
	if c.TrailingPE > 0 {
		b.WriteString(fmt.Sprintf("P/E: %.2f", c.TrailingPE))
		if c.DividendYield > 0 {
			b.WriteString(fmt.Sprintf(" | Dividend Yield: %.2f%%", c.DividendYield*100))
		}
		b.WriteString("\n")
	}
	if c.High52w > 0 {
		b.WriteString(fmt.Sprintf("52-Week Range: %.2f ~ %.2f\n", c.Low52w, c.High52w))
	}
	b.WriteString("\n")
}

// lastValue formats the last defined value of a series, or "n/a" while the
// history is still too short.
func lastValue(s model.IndicatorSeries) string {
	v, ok := s.Last()
	if !ok {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", v)
}

func trendInsight(t model.TrendState) string {
	switch t {
	case model.TrendUpward:
		return "• Upward trend: the 50-day SMA is above the 200-day SMA."
	case model.TrendDownward:
		return "• Downward trend: the 50-day SMA is below the 200-day SMA."
	case model.TrendSideways:
		return "• Sideways: the 50-day and 200-day SMAs are equal."
	default:
		return "• Trend: not enough history to determine."
	}
}

func momentumInsight(m model.MomentumState) string {
	switch m {
	case model.MomentumOverbought:
		return "• RSI indicates the stock is overbought (>70)."
	case model.MomentumOversold:
		return "• RSI indicates the stock is oversold (<30)."
	case model.MomentumNeutral:
		return "• RSI is in a neutral range."
	default:
		return "• RSI: not enough history to determine."
	}
}

func bandInsight(s model.BandState) string {
	switch s {
	case model.BandAboveUpper:
		return "• Price is above the upper Bollinger Band: potential overbought conditions."
	case model.BandBelowLower:
		return "• Price is below the lower Bollinger Band: potential oversold conditions."
	case model.BandWithin:
		return "• Price is within the Bollinger Bands."
	default:
		return "• Bollinger Bands: not enough history to determine."
	}
}

func volatilityInsight(level float64) string {
	if math.IsNaN(level) {
		return "• Volatility: not enough history to determine."
	}
	return fmt.Sprintf("• Current volatility (rolling std dev): %.2f.", level)
}

func formatMarketCap(v float64) string {
	switch {
	case v >= 1e12:
		return fmt.Sprintf("%.2fT", v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.2fM", v/1e6)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
