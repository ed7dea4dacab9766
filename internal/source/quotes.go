package source

import (
	"context"
	"fmt"
	"log"
	"time"

	"AdvisorBot/internal/cache"
	"AdvisorBot/internal/model"
)

// QuoteAnswer is the user-facing result of a quote lookup. Weekend, holiday,
// and no-data outcomes are answers, not errors.
type QuoteAnswer struct {
	Text      string       // formatted bar or explanatory message
	Record    *model.OHLCV // nil when no record backs the answer
	Exact     bool         // false for closed-market / approximate / unavailable
	FromCache bool
}

// QuoteService answers point and current quote queries from the cache,
// falling back to the upstream source and writing everything fetched back.
type QuoteService struct {
	Store  *cache.Store
	Source QuoteSource
}

// Current answers a "current price" query. The cache satisfies it only when
// its newest bar carries today's date; anything older forces a fetch.
func (s *QuoteService) Current(ctx context.Context, symbol string) (*QuoteAnswer, error) {
	cached, err := s.Store.Quotes(symbol)
	if err != nil {
		log.Printf("[WARN] read quote cache for %s: %v", symbol, err)
	}
	if len(cached) > 0 && model.SameDate(cached[0].Date, time.Now()) {
		rec := cached[0]
		return &QuoteAnswer{
			Text:      FormatBar(symbol, rec),
			Record:    &rec,
			Exact:     true,
			FromCache: true,
		}, nil
	}

	recs, err := s.fetchAndCache(ctx, symbol, ModeCompact)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%w: %s returned no bars", model.ErrNoDataInRange, symbol)
	}
	latest := newestOf(recs)
	return &QuoteAnswer{Text: FormatBar(symbol, latest), Record: &latest, Exact: true}, nil
}

// On answers a point query for one exact date. When the date is absent from
// both cache and freshly fetched history, the answer explains why: weekend,
// closest trading day, or no history at all.
func (s *QuoteService) On(ctx context.Context, symbol string, date time.Time) (*QuoteAnswer, error) {
	if rec, ok, err := s.Store.QuoteOn(symbol, date); err == nil && ok {
		return &QuoteAnswer{Text: FormatBar(symbol, rec), Record: &rec, Exact: true, FromCache: true}, nil
	} else if err != nil {
		log.Printf("[WARN] read quote cache for %s: %v", symbol, err)
	}

	recs, err := s.fetchAndCache(ctx, symbol, ModeFull)
	if err != nil {
		return nil, err
	}

	for _, rec := range recs {
		if model.SameDate(rec.Date, date) {
			return &QuoteAnswer{Text: FormatBar(symbol, rec), Record: &rec, Exact: true}, nil
		}
	}
	return s.resolveMissingDate(symbol, date, recs), nil
}

// Refresh prefetches the recent window into the cache. Used by the scheduler.
func (s *QuoteService) Refresh(ctx context.Context, symbol string) error {
	_, err := s.fetchAndCache(ctx, symbol, ModeCompact)
	return err
}

func (s *QuoteService) fetchAndCache(ctx context.Context, symbol string, mode FetchMode) ([]model.OHLCV, error) {
	recs, err := s.Source.DailySeries(ctx, symbol, mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrSourceUnavailable, err)
	}
	// The whole fetched set goes into the cache, not just the bar being
	// answered; later lookups should hit locally.
	if err := s.Store.PutQuotes(symbol, recs); err != nil {
		log.Printf("[WARN] write quote cache for %s: %v", symbol, err)
	}
	return recs, nil
}

// resolveMissingDate classifies a date with no bar in the fetched history.
func (s *QuoteService) resolveMissingDate(symbol string, date time.Time, history []model.OHLCV) *QuoteAnswer {
	day := date.Weekday()
	dateStr := date.Format("2006-01-02")

	if day == time.Saturday || day == time.Sunday {
		return &QuoteAnswer{
			Text: fmt.Sprintf("%s stock data is not available for %s (%s).\n\n"+
				"The stock market is closed on weekends. Please try a weekday date instead.",
				symbol, dateStr, day),
		}
	}

	if len(history) == 0 {
		return &QuoteAnswer{
			Text: fmt.Sprintf("%s stock data is not available for %s.", symbol, dateStr),
		}
	}

	closest := history[0]
	best := absDays(closest.Date, date)
	for _, rec := range history[1:] {
		if d := absDays(rec.Date, date); d < best {
			best = d
			closest = rec
		}
	}
	return &QuoteAnswer{
		Text: fmt.Sprintf("%s stock data is not available for %s (%s). "+
			"This date may be a market holiday.\n\n"+
			"Here's the closest available trading data, from %s:\n%s",
			symbol, dateStr, day, closest.Date.Format("2006-01-02"), FormatBar(symbol, closest)),
		Record: &closest,
	}
}

func newestOf(recs []model.OHLCV) model.OHLCV {
	latest := recs[0]
	for _, r := range recs[1:] {
		if r.Date.After(latest.Date) {
			latest = r
		}
	}
	return latest
}

func absDays(a, b time.Time) int {
	d := int(model.DateOnly(a).Sub(model.DateOnly(b)).Hours() / 24)
	if d < 0 {
		d = -d
	}
	return d
}
