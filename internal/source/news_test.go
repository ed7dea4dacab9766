package source

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"AdvisorBot/internal/cache"
	"AdvisorBot/internal/model"
)

func newNewsService(t *testing.T, src NewsSource) *NewsService {
	t.Helper()
	store, err := cache.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return &NewsService{Store: store, Source: src}
}

func newsOn(date, title string) model.NewsItem {
	d, _ := time.Parse("2006-01-02", date)
	return model.NewsItem{
		Date: d, Title: title, Summary: "summary", URL: "https://example.com",
		Source: "Wire", Sentiment: "Bullish", Relevance: 0.9,
	}
}

func rangeOf(start, end string) model.DateRange {
	s, _ := time.Parse("2006-01-02", start)
	e, _ := time.Parse("2006-01-02", end)
	return model.DateRange{Start: s, End: e}
}

func TestInRange_CacheHit(t *testing.T) {
	src := &MockNewsSource{}
	s := newNewsService(t, src)
	if err := s.Store.PutNews("TSLA", []model.NewsItem{newsOn("2025-01-10", "Deliveries up")}); err != nil {
		t.Fatal(err)
	}

	text, err := s.InRange(context.Background(), "TSLA", rangeOf("2025-01-01", "2025-01-15"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, "Deliveries up") {
		t.Errorf("expected cached item in digest, got %q", text)
	}
	if src.Calls != 0 {
		t.Errorf("expected no upstream call, got %d", src.Calls)
	}
}

func TestInRange_FetchCachesAllFiltersSome(t *testing.T) {
	src := &MockNewsSource{Items: []model.NewsItem{
		newsOn("2025-01-10", "In range"),
		newsOn("2024-11-01", "Out of range"),
	}}
	s := newNewsService(t, src)

	text, err := s.InRange(context.Background(), "TSLA", rangeOf("2025-01-01", "2025-01-15"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, "In range") || strings.Contains(text, "Out of range") {
		t.Errorf("range filtering wrong: %q", text)
	}
	// Both items were cached regardless of the filter.
	all, err := s.Store.News("TSLA")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 cached items, got %d", len(all))
	}
}

func TestInRange_EmptyIsNoDataInRange(t *testing.T) {
	src := &MockNewsSource{Items: []model.NewsItem{newsOn("2024-11-01", "Old story")}}
	s := newNewsService(t, src)

	_, err := s.InRange(context.Background(), "TSLA", rangeOf("2025-01-01", "2025-01-15"))
	if !errors.Is(err, model.ErrNoDataInRange) {
		t.Fatalf("expected ErrNoDataInRange, got %v", err)
	}
	if errors.Is(err, model.ErrSourceUnavailable) {
		t.Fatal("NoDataInRange must stay distinct from SourceUnavailable")
	}
}

func TestInRange_SourceDown(t *testing.T) {
	src := &MockNewsSource{Err: errors.New("boom")}
	s := newNewsService(t, src)

	_, err := s.InRange(context.Background(), "TSLA", rangeOf("2025-01-01", "2025-01-15"))
	if !errors.Is(err, model.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestFormatNews_SummaryCutOnRuneBoundary(t *testing.T) {
	it := newsOn("2025-01-10", "overseas report")
	it.Summary = strings.Repeat("株", 250)

	text := FormatNews("TSLA", []model.NewsItem{it})
	if !utf8.ValidString(text) {
		t.Fatal("digest contains invalid UTF-8 after truncation")
	}
	if !strings.Contains(text, strings.Repeat("株", 200)+"...") {
		t.Error("summary should be cut to 200 characters plus ellipsis")
	}
	if strings.Contains(text, strings.Repeat("株", 201)) {
		t.Error("summary exceeds the 200-character budget")
	}
}

func TestFormatNews_TopFiveOnly(t *testing.T) {
	items := make([]model.NewsItem, 8)
	for i := range items {
		items[i] = newsOn("2025-01-10", "story")
		items[i].Title = "story " + string(rune('A'+i))
	}
	text := FormatNews("TSLA", items)
	if strings.Count(text, "📰") != 5 {
		t.Errorf("expected 5 items in digest, got %d", strings.Count(text, "📰"))
	}
}
