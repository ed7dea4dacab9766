package coordinator

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"AdvisorBot/internal/advisor"
	"AdvisorBot/internal/cache"
	"AdvisorBot/internal/model"
	"AdvisorBot/internal/recorder"
	"AdvisorBot/internal/source"
)

func bar(date string, close float64) model.OHLCV {
	d, _ := time.Parse("2006-01-02", date)
	c := decimal.NewFromFloat(close)
	return model.OHLCV{Date: d, Open: c, High: c, Low: c, Close: c, Volume: 1000}
}

func newTestSession(t *testing.T, quotes *source.MockQuoteSource, news *source.MockNewsSource, gen *advisor.MockGenerator) *Session {
	t.Helper()
	store, err := cache.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	qs := &source.QuoteService{Store: store, Source: quotes}
	ns := &source.NewsService{Store: store, Source: news}
	return NewSession(qs, ns, gen, recorder.NewNoopRecorder(), "Warren Buffett")
}

func TestRouteQuoteIntent(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	quotes := &source.MockQuoteSource{Compact: []model.OHLCV{bar(today, 185.5)}}
	s := newTestSession(t, quotes, &source.MockNewsSource{}, &advisor.MockGenerator{})

	reply := s.Route(context.Background(), "What is the price of AAPL?")
	if !strings.Contains(reply.Message, "AAPL") || !strings.Contains(reply.Message, "185.50") {
		t.Errorf("quote reply missing data: %q", reply.Message)
	}
	if reply.Data["stock_data"] == "" {
		t.Error("quote reply should carry stock_data")
	}
	if reply.Personality != "Warren Buffett" {
		t.Errorf("Personality = %q, want default", reply.Personality)
	}
}

func TestRouteQuoteNoSymbol(t *testing.T) {
	s := newTestSession(t, &source.MockQuoteSource{}, &source.MockNewsSource{}, &advisor.MockGenerator{})

	reply := s.Route(context.Background(), "what is the price today")
	if !strings.Contains(reply.Message, "couldn't identify a stock symbol") {
		t.Errorf("expected no-symbol message, got %q", reply.Message)
	}
}

func TestRouteNewsIntent(t *testing.T) {
	news := &source.MockNewsSource{Items: []model.NewsItem{
		{Date: time.Now().AddDate(0, 0, -2), Title: "Tesla expands factory", Summary: "expansion", Sentiment: "Bullish"},
	}}
	s := newTestSession(t, &source.MockQuoteSource{}, news, &advisor.MockGenerator{})

	reply := s.Route(context.Background(), "Any news about Tesla?")
	if !strings.Contains(reply.Message, "Tesla expands factory") {
		t.Errorf("news reply missing headline: %q", reply.Message)
	}
	if reply.Data["news_data"] == "" {
		t.Error("news reply should carry news_data")
	}
}

func TestRouteNewsEmptyRange(t *testing.T) {
	// Fetch succeeds but everything is older than the default 30-day window.
	news := &source.MockNewsSource{Items: []model.NewsItem{
		{Date: time.Now().AddDate(-1, 0, 0), Title: "Old story", Summary: "stale"},
	}}
	s := newTestSession(t, &source.MockQuoteSource{}, news, &advisor.MockGenerator{})

	reply := s.Route(context.Background(), "Any news about Tesla?")
	if !strings.Contains(reply.Message, "couldn't find any TSLA news") {
		t.Errorf("expected empty-range message, got %q", reply.Message)
	}
}

func TestRouteAdviceEndToEnd(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	quotes := &source.MockQuoteSource{Compact: []model.OHLCV{bar(today, 250)}}
	news := &source.MockNewsSource{Items: []model.NewsItem{
		{Date: time.Now().AddDate(0, 0, -1), Title: "Tesla beats estimates", Summary: "earnings", Sentiment: "Bullish"},
	}}
	gen := &advisor.MockGenerator{Reply: "**RECOMMENDATION: HOLD**\n**CONFIDENCE SCORE: 5/10**\nPatience."}
	s := newTestSession(t, quotes, news, gen)

	reply := s.Route(context.Background(), "Should I buy Tesla?")
	if reply.Message != gen.Reply {
		t.Errorf("advice reply = %q, want generator output", reply.Message)
	}
	if gen.Calls != 1 {
		t.Fatalf("generator calls = %d, want 1", gen.Calls)
	}
	if !strings.Contains(gen.LastSystem, "Warren Buffett") {
		t.Error("system prompt should carry the active persona")
	}
	if !strings.Contains(gen.LastUserInput, "Should I buy Tesla?") {
		t.Error("user prompt should carry the original question")
	}
	if !strings.Contains(gen.LastUserInput, "Relevant stock data:") {
		t.Errorf("user prompt missing stock context:\n%s", gen.LastUserInput)
	}
	if !strings.Contains(gen.LastUserInput, "Relevant news:") {
		t.Errorf("user prompt missing news context:\n%s", gen.LastUserInput)
	}
}

func TestRouteAdviceGeneratorDown(t *testing.T) {
	gen := &advisor.MockGenerator{Err: context.DeadlineExceeded}
	s := newTestSession(t, &source.MockQuoteSource{Err: model.ErrSourceUnavailable}, &source.MockNewsSource{Err: model.ErrSourceUnavailable}, gen)

	reply := s.Route(context.Background(), "Should I buy Tesla?")
	if !strings.Contains(reply.Message, "I apologize") {
		t.Errorf("expected apology fallback, got %q", reply.Message)
	}
}

func TestRoutePersonaSwitch(t *testing.T) {
	gen := &advisor.MockGenerator{Reply: "ten-bagger talk"}
	s := newTestSession(t, &source.MockQuoteSource{Err: model.ErrSourceUnavailable}, &source.MockNewsSource{Err: model.ErrSourceUnavailable}, gen)

	reply := s.Route(context.Background(), "switch to Peter Lynch")
	if reply.Personality != "Peter Lynch" {
		t.Fatalf("Personality = %q, want Peter Lynch", reply.Personality)
	}
	if !strings.Contains(reply.Message, "Switched to Peter Lynch") {
		t.Errorf("switch confirmation missing: %q", reply.Message)
	}

	// Persona sticks for later advice in the same session.
	s.Route(context.Background(), "what do you think of the market")
	if !strings.Contains(gen.LastSystem, "Peter Lynch") {
		t.Error("advice after switch should use the new persona prompt")
	}
}

func TestRoutePersonaSwitchUnknown(t *testing.T) {
	s := newTestSession(t, &source.MockQuoteSource{}, &source.MockNewsSource{}, &advisor.MockGenerator{})

	reply := s.Route(context.Background(), "switch to Zorro")
	if !strings.Contains(reply.Message, "don't recognize that personality") {
		t.Errorf("expected unknown-persona message, got %q", reply.Message)
	}
	if reply.Personality != "Warren Buffett" {
		t.Errorf("persona must stay unchanged, got %q", reply.Personality)
	}
}

func TestRouteRecordsInteraction(t *testing.T) {
	rec := &captureRecorder{}
	store, err := cache.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	today := time.Now().Format("2006-01-02")
	qs := &source.QuoteService{Store: store, Source: &source.MockQuoteSource{Compact: []model.OHLCV{bar(today, 99)}}}
	ns := &source.NewsService{Store: store, Source: &source.MockNewsSource{}}
	s := NewSession(qs, ns, &advisor.MockGenerator{}, rec, "Warren Buffett")

	s.Route(context.Background(), "MSFT stock price")
	if len(rec.events) != 1 {
		t.Fatalf("recorded %d events, want 1", len(rec.events))
	}
	evt := rec.events[0]
	if evt.Intent != "quote" || evt.Symbol != "MSFT" || evt.Outcome != "ok" {
		t.Errorf("event = %+v", evt)
	}
}

func TestTruncateKeepsRunesIntact(t *testing.T) {
	s := strings.Repeat("汽", 600)
	got := truncate(s, 500)
	if !utf8.ValidString(got) {
		t.Fatal("truncate produced invalid UTF-8")
	}
	if got != strings.Repeat("汽", 500)+"..." {
		t.Errorf("truncate cut %d characters, want 500", len([]rune(got))-3)
	}
	if short := truncate("short", 500); short != "short" {
		t.Errorf("short input must pass through, got %q", short)
	}
}

type captureRecorder struct {
	events []recorder.Event
}

func (c *captureRecorder) RecordInteraction(evt *recorder.Event) error {
	c.events = append(c.events, *evt)
	return nil
}

func (c *captureRecorder) Close() error { return nil }
