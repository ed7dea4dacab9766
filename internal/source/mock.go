package source

import (
	"context"

	"AdvisorBot/internal/model"
)

// MockQuoteSource returns controllable fixed data for development and testing.
type MockQuoteSource struct {
	Compact []model.OHLCV
	Full    []model.OHLCV
	Err     error
	Calls   int
}

func (m *MockQuoteSource) Name() string { return "mock" }

func (m *MockQuoteSource) DailySeries(_ context.Context, _ string, mode FetchMode) ([]model.OHLCV, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if mode == ModeFull {
		return m.Full, nil
	}
	return m.Compact, nil
}

// MockNewsSource returns controllable fixed news items.
type MockNewsSource struct {
	Items []model.NewsItem
	Err   error
	Calls int
}

func (m *MockNewsSource) Name() string { return "mock" }

func (m *MockNewsSource) News(_ context.Context, _ string, _ int) ([]model.NewsItem, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Items, nil
}
