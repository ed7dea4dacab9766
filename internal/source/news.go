package source

import (
	"context"
	"fmt"
	"log"

	"AdvisorBot/internal/cache"
	"AdvisorBot/internal/model"
)

// NewsService answers news queries over a date range from the cache, fetching
// upstream on a miss and writing everything fetched back before filtering.
type NewsService struct {
	Store      *cache.Store
	Source     NewsSource
	FetchLimit int // items requested per upstream fetch; 0 means 50
}

// InRange returns the formatted news digest for a symbol within the range.
// An empty result after a successful fetch is ErrNoDataInRange, which callers
// must keep distinct from ErrSourceUnavailable.
func (s *NewsService) InRange(ctx context.Context, symbol string, r model.DateRange) (string, error) {
	cached, err := s.Store.NewsInRange(symbol, r)
	if err != nil {
		log.Printf("[WARN] read news cache for %s: %v", symbol, err)
	}
	if len(cached) > 0 {
		return FormatNews(symbol, cached), nil
	}

	items, err := s.fetchAndCache(ctx, symbol)
	if err != nil {
		return "", err
	}

	var inRange []model.NewsItem
	for _, it := range items {
		if r.Contains(it.Date) {
			inRange = append(inRange, it)
		}
	}
	if len(inRange) == 0 {
		return "", fmt.Errorf("%w: no news for %s between %s and %s",
			model.ErrNoDataInRange, symbol,
			r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"))
	}
	return FormatNews(symbol, inRange), nil
}

// Refresh prefetches the latest items into the cache. Used by the scheduler.
func (s *NewsService) Refresh(ctx context.Context, symbol string) error {
	_, err := s.fetchAndCache(ctx, symbol)
	return err
}

func (s *NewsService) fetchAndCache(ctx context.Context, symbol string) ([]model.NewsItem, error) {
	limit := s.FetchLimit
	if limit <= 0 {
		limit = 50
	}
	items, err := s.Source.News(ctx, symbol, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrSourceUnavailable, err)
	}
	// Cache everything fetched before filtering by the requested range.
	if err := s.Store.PutNews(symbol, items); err != nil {
		log.Printf("[WARN] write news cache for %s: %v", symbol, err)
	}
	return items, nil
}
