package source

import (
	"fmt"
	"strings"

	"AdvisorBot/internal/model"
)

// FormatBar renders one price bar for display.
func FormatBar(symbol string, r model.OHLCV) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s Stock Price - %s\n", symbol, r.Date.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Open: $%s\n", r.Open.StringFixed(2)))
	b.WriteString(fmt.Sprintf("High: $%s\n", r.High.StringFixed(2)))
	b.WriteString(fmt.Sprintf("Low: $%s\n", r.Low.StringFixed(2)))
	b.WriteString(fmt.Sprintf("Close: $%s\n", r.Close.StringFixed(2)))
	b.WriteString(fmt.Sprintf("Volume: %s\n", groupDigits(r.Volume)))
	return b.String()
}

// FormatNews renders the newest items (at most five) as a readable digest.
func FormatNews(symbol string, items []model.NewsItem) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Recent news for %s:\n\n", symbol))

	shown := items
	if len(shown) > 5 {
		shown = shown[:5]
	}
	for _, it := range shown {
		summary := clipRunes(it.Summary, 200)
		if summary != it.Summary {
			summary += "..."
		}
		b.WriteString(fmt.Sprintf("📰 %s\n", it.Title))
		b.WriteString(fmt.Sprintf("📅 %s\n", it.Date.Format("2006-01-02")))
		b.WriteString(fmt.Sprintf("📊 Sentiment: %s\n", it.Sentiment))
		b.WriteString(fmt.Sprintf("📈 Relevance: %.2f\n", it.Relevance))
		b.WriteString(fmt.Sprintf("🔗 Source: %s\n", it.Source))
		b.WriteString(fmt.Sprintf("📝 %s\n", summary))
		b.WriteString(fmt.Sprintf("🌐 %s\n\n", it.URL))
	}
	return b.String()
}

// clipRunes returns at most n characters of s, always cutting on a rune
// boundary.
func clipRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// groupDigits formats an integer with thousands separators.
func groupDigits(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
