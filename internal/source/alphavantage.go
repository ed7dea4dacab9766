package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"AdvisorBot/internal/model"
)

// AlphaVantageClient fetches daily series and news sentiment from Alpha Vantage.
// Requests pass through a shared rate limiter sized for the free tier.
type AlphaVantageClient struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
	limiter *rate.Limiter
}

// NewAlphaVantageClient creates a client with optional proxy support.
func NewAlphaVantageClient(baseURL, apiKey, proxyURL string) *AlphaVantageClient {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &AlphaVantageClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		// Free tier allows 5 requests per minute.
		limiter: rate.NewLimiter(rate.Every(12*time.Second), 5),
	}
}

func (c *AlphaVantageClient) Name() string { return "alphavantage" }

// DailySeries fetches the TIME_SERIES_DAILY endpoint.
func (c *AlphaVantageClient) DailySeries(ctx context.Context, symbol string, mode FetchMode) ([]model.OHLCV, error) {
	q := url.Values{}
	q.Set("function", "TIME_SERIES_DAILY")
	q.Set("symbol", symbol)
	q.Set("outputsize", string(mode))
	q.Set("apikey", c.APIKey)

	body, err := c.get(ctx, q)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Series       map[string]map[string]string `json:"Time Series (Daily)"`
		ErrorMessage string                       `json:"Error Message"`
		Note         string                       `json:"Note"`
		Information  string                       `json:"Information"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode daily series: %w", err)
	}
	if payload.ErrorMessage != "" {
		return nil, fmt.Errorf("alphavantage: %s", payload.ErrorMessage)
	}
	if len(payload.Series) == 0 {
		detail := payload.Note
		if detail == "" {
			detail = payload.Information
		}
		return nil, fmt.Errorf("alphavantage: no daily series returned (%s)", detail)
	}

	recs := make([]model.OHLCV, 0, len(payload.Series))
	for dateStr, fields := range payload.Series {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			continue
		}
		open, err1 := decimal.NewFromString(fields["1. open"])
		high, err2 := decimal.NewFromString(fields["2. high"])
		low, err3 := decimal.NewFromString(fields["3. low"])
		cls, err4 := decimal.NewFromString(fields["4. close"])
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			continue
		}
		vol, _ := strconv.ParseInt(fields["5. volume"], 10, 64)
		recs = append(recs, model.OHLCV{
			Date: model.DateOnly(date),
			Open: open, High: high, Low: low, Close: cls, Volume: vol,
		})
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("alphavantage: daily series contained no parseable records")
	}
	return recs, nil
}

// avFeedItem is one entry of the NEWS_SENTIMENT feed.
type avFeedItem struct {
	Title           string `json:"title"`
	URL             string `json:"url"`
	TimePublished   string `json:"time_published"` // YYYYMMDDTHHMMSS
	Summary         string `json:"summary"`
	Source          string `json:"source"`
	TickerSentiment []struct {
		Ticker         string `json:"ticker"`
		RelevanceScore string `json:"relevance_score"`
		SentimentLabel string `json:"ticker_sentiment_label"`
	} `json:"ticker_sentiment"`
}

// News fetches the NEWS_SENTIMENT endpoint and keeps the sentiment entry that
// belongs to the requested symbol.
func (c *AlphaVantageClient) News(ctx context.Context, symbol string, limit int) ([]model.NewsItem, error) {
	q := url.Values{}
	q.Set("function", "NEWS_SENTIMENT")
	q.Set("tickers", symbol)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("apikey", c.APIKey)

	body, err := c.get(ctx, q)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Feed         []avFeedItem `json:"feed"`
		ErrorMessage string       `json:"Error Message"`
		Information  string       `json:"Information"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode news feed: %w", err)
	}
	if payload.ErrorMessage != "" {
		return nil, fmt.Errorf("alphavantage: %s", payload.ErrorMessage)
	}
	if payload.Feed == nil {
		return nil, fmt.Errorf("alphavantage: no news feed returned (%s)", payload.Information)
	}

	items := make([]model.NewsItem, 0, len(payload.Feed))
	for _, f := range payload.Feed {
		if len(f.TimePublished) < 8 {
			continue
		}
		date, err := time.Parse("20060102", f.TimePublished[:8])
		if err != nil {
			continue
		}
		sentiment := "Neutral"
		relevance := 0.0
		for _, ts := range f.TickerSentiment {
			if ts.Ticker == symbol {
				sentiment = ts.SentimentLabel
				relevance, _ = strconv.ParseFloat(ts.RelevanceScore, 64)
				break
			}
		}
		summary := clipRunes(f.Summary, 500)
		items = append(items, model.NewsItem{
			Date: model.DateOnly(date), Title: f.Title, Summary: summary,
			URL: f.URL, Source: f.Source, Sentiment: sentiment, Relevance: relevance,
		})
	}
	return items, nil
}

func (c *AlphaVantageClient) get(ctx context.Context, q url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	endpoint := c.BaseURL + "/query?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("alphavantage fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("alphavantage read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alphavantage: status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
