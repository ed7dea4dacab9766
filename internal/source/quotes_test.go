package source

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"AdvisorBot/internal/cache"
	"AdvisorBot/internal/model"
)

func newQuoteService(t *testing.T, src QuoteSource) *QuoteService {
	t.Helper()
	store, err := cache.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return &QuoteService{Store: store, Source: src}
}

func barOn(date time.Time, close float64) model.OHLCV {
	c := decimal.NewFromFloat(close)
	return model.OHLCV{Date: model.DateOnly(date), Open: c, High: c, Low: c, Close: c, Volume: 100}
}

func TestCurrent_CacheFreshToday(t *testing.T) {
	src := &MockQuoteSource{}
	s := newQuoteService(t, src)
	today := model.DateOnly(time.Now())
	if err := s.Store.PutQuotes("AAPL", []model.OHLCV{barOn(today, 101.5)}); err != nil {
		t.Fatal(err)
	}

	ans, err := s.Current(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if !ans.FromCache {
		t.Error("expected cache to satisfy a current query with today's bar")
	}
	if src.Calls != 0 {
		t.Errorf("expected no upstream call, got %d", src.Calls)
	}
}

func TestCurrent_StaleCacheFetches(t *testing.T) {
	yesterday := model.DateOnly(time.Now()).AddDate(0, 0, -1)
	src := &MockQuoteSource{Compact: []model.OHLCV{barOn(yesterday, 99), barOn(model.DateOnly(time.Now()), 100)}}
	s := newQuoteService(t, src)
	if err := s.Store.PutQuotes("AAPL", []model.OHLCV{barOn(yesterday, 99)}); err != nil {
		t.Fatal(err)
	}

	ans, err := s.Current(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if ans.FromCache {
		t.Error("stale cache must not satisfy a current query")
	}
	if src.Calls != 1 {
		t.Errorf("expected 1 upstream call, got %d", src.Calls)
	}
	// Fetched set was written back.
	recs, err := s.Store.Quotes("AAPL")
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Errorf("expected 2 cached records after write-back, got %d", len(recs))
	}
}

func TestCurrent_SourceDown(t *testing.T) {
	src := &MockQuoteSource{Err: errors.New("boom")}
	s := newQuoteService(t, src)
	_, err := s.Current(context.Background(), "AAPL")
	if !errors.Is(err, model.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestOn_CacheHitSkipsFetch(t *testing.T) {
	src := &MockQuoteSource{}
	s := newQuoteService(t, src)
	d, _ := time.Parse("2006-01-02", "2025-01-06") // a Monday
	if err := s.Store.PutQuotes("AAPL", []model.OHLCV{barOn(d, 42)}); err != nil {
		t.Fatal(err)
	}

	ans, err := s.On(context.Background(), "AAPL", d)
	if err != nil {
		t.Fatal(err)
	}
	if !ans.Exact || !ans.FromCache {
		t.Errorf("expected exact cached answer, got %+v", ans)
	}
	if src.Calls != 0 {
		t.Errorf("expected no upstream call, got %d", src.Calls)
	}
}

func TestOn_WeekendIsMarketClosed(t *testing.T) {
	friday, _ := time.Parse("2006-01-02", "2025-01-03")
	src := &MockQuoteSource{Full: []model.OHLCV{barOn(friday, 42)}}
	s := newQuoteService(t, src)

	saturday, _ := time.Parse("2006-01-02", "2025-01-04")
	ans, err := s.On(context.Background(), "AAPL", saturday)
	if err != nil {
		t.Fatal(err)
	}
	if ans.Exact {
		t.Error("weekend answer must not be exact")
	}
	if ans.Record != nil {
		t.Error("weekend answer must not carry an approximate record")
	}
	if !strings.Contains(ans.Text, "closed on weekends") {
		t.Errorf("expected market-closed message, got %q", ans.Text)
	}
}

func TestOn_HolidayReturnsClosestDay(t *testing.T) {
	jan2, _ := time.Parse("2006-01-02", "2025-01-02")
	jan6, _ := time.Parse("2006-01-02", "2025-01-06")
	src := &MockQuoteSource{Full: []model.OHLCV{barOn(jan2, 41), barOn(jan6, 42)}}
	s := newQuoteService(t, src)

	// Wednesday Jan 1: a holiday, no bar.
	jan1, _ := time.Parse("2006-01-02", "2025-01-01")
	ans, err := s.On(context.Background(), "AAPL", jan1)
	if err != nil {
		t.Fatal(err)
	}
	if ans.Exact {
		t.Error("holiday answer must be labeled non-exact")
	}
	if ans.Record == nil {
		t.Fatal("expected a closest-day record")
	}
	if !model.SameDate(ans.Record.Date, jan2) {
		t.Errorf("closest day = %v, want Jan 2", ans.Record.Date)
	}
	if !strings.Contains(ans.Text, "closest available trading data") {
		t.Errorf("expected approximate label in %q", ans.Text)
	}
}

func TestOn_NoHistoryAtAll(t *testing.T) {
	src := &MockQuoteSource{Full: []model.OHLCV{}}
	s := newQuoteService(t, src)

	jan1, _ := time.Parse("2006-01-02", "2025-01-01")
	_, err := s.On(context.Background(), "AAPL", jan1)
	// An empty series is a source-level failure from the mock's point of view
	// only when Err is set; an empty slice resolves to "unavailable" text.
	if err != nil {
		t.Fatalf("no-history must not be an error, got %v", err)
	}
}

func TestOn_ExactDateFromFetch(t *testing.T) {
	jan6, _ := time.Parse("2006-01-02", "2025-01-06")
	src := &MockQuoteSource{Full: []model.OHLCV{barOn(jan6, 42)}}
	s := newQuoteService(t, src)

	ans, err := s.On(context.Background(), "AAPL", jan6)
	if err != nil {
		t.Fatal(err)
	}
	if !ans.Exact || ans.FromCache {
		t.Errorf("expected exact fetched answer, got %+v", ans)
	}
}
