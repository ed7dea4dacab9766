// Package source fetches price and news records from upstream providers and
// glues them to the local cache.
package source

import (
	"context"

	"AdvisorBot/internal/model"
)

// FetchMode selects how much history a quote fetch returns.
type FetchMode string

const (
	// ModeCompact returns a bounded recent window, enough for current-price queries.
	ModeCompact FetchMode = "compact"
	// ModeFull returns the maximum available history, used for past-date lookups.
	ModeFull FetchMode = "full"
)

// QuoteSource fetches daily OHLCV bars for a symbol.
type QuoteSource interface {
	DailySeries(ctx context.Context, symbol string, mode FetchMode) ([]model.OHLCV, error)
	Name() string
}

// NewsSource fetches recent news items with per-symbol sentiment.
type NewsSource interface {
	News(ctx context.Context, symbol string, limit int) ([]model.NewsItem, error)
	Name() string
}
