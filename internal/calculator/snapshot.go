package calculator

import (
	"fmt"
	"strings"

	"AdvisorBot/internal/model"
)

// Snapshot summarizes recent price action as a few plain-text lines for
// inclusion in an advice prompt. Bars are expected newest-first, as the
// cache returns them. Returns "" when there is nothing to say.
func Snapshot(symbol string, bars []model.OHLCV) string {
	if len(bars) == 0 {
		return ""
	}

	closes := closesChronological(bars)
	latest := bars[0]

	var b strings.Builder
	fmt.Fprintf(&b, "%s latest close: $%s on %s\n",
		symbol, latest.Close.StringFixed(2), latest.Date.Format("2006-01-02"))

	if sma, err := CalculateSMA(closes, 20); err == nil {
		fmt.Fprintf(&b, "20-day SMA: $%.2f\n", sma)
	}
	if rsi, err := CalculateRSI(closes, 14); err == nil {
		fmt.Fprintf(&b, "14-day RSI: %.1f\n", rsi)
	}
	if len(closes) >= 2 && closes[0] != 0 {
		change := (closes[len(closes)-1] - closes[0]) / closes[0] * 100
		fmt.Fprintf(&b, "Change over period (%d bars): %+.2f%%\n", len(closes), change)
	}
	return strings.TrimRight(b.String(), "\n")
}
