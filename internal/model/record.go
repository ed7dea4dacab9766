package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OHLCV represents one daily price bar for a symbol.
// At most one record exists per (symbol, date); the cache enforces this on write.
type OHLCV struct {
	Date   time.Time
	Open   decimal.Decimal
	High   decimal.Decimal
	Low    decimal.Decimal
	Close  decimal.Decimal
	Volume int64
}

// NewsItem represents one news article with per-symbol sentiment.
// Two items with the same title and date are the same item.
type NewsItem struct {
	Date      time.Time
	Title     string
	Summary   string
	URL       string
	Source    string
	Sentiment string
	Relevance float64
}

// DateRange is a closed calendar interval, always well-formed (Start <= End).
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls inside the range, inclusive on both ends.
func (r DateRange) Contains(d time.Time) bool {
	day := DateOnly(d)
	return !day.Before(DateOnly(r.Start)) && !day.After(DateOnly(r.End))
}

// DateOnly truncates a time to its calendar date in UTC.
// All date keys in the cache and extractor go through this.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether two times fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}

// Reply is the outbound payload for one routed message.
type Reply struct {
	Message     string            `json:"message"`
	Personality string            `json:"personality"`
	Data        map[string]string `json:"data,omitempty"`
}
