// Package cache is a flat-file store of date-keyed records per symbol.
//
// One CSV file per (symbol, kind): <SYM>_data.csv for price bars and
// <SYM>_news.csv for news items. Files are read whole on every access and
// rewritten whole on every update, which keeps them human-inspectable and is
// fine for a handful of symbols. A per-symbol mutex is held across the whole
// read-merge-rewrite cycle so concurrent sessions sharing one store don't race.
package cache

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"AdvisorBot/internal/model"
)

const dateLayout = "2006-01-02"

var quoteHeader = []string{"Date", "Open", "High", "Low", "Close", "Volume"}
var newsHeader = []string{"Date", "Title", "Description", "URL", "Source", "Sentiment", "Relevance"}

// Store persists time-series records under a single directory.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore creates the data directory if needed and returns a Store.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &Store{dir: dir, locks: make(map[string]*sync.Mutex)}, nil
}

func (s *Store) symbolLock(symbol string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[symbol]
	if !ok {
		l = &sync.Mutex{}
		s.locks[symbol] = l
	}
	return l
}

func (s *Store) quotePath(symbol string) string {
	return filepath.Join(s.dir, symbol+"_data.csv")
}

func (s *Store) newsPath(symbol string) string {
	return filepath.Join(s.dir, symbol+"_news.csv")
}

// Quotes returns all cached price bars for a symbol, newest first.
// A missing cache file is an empty result, not an error.
func (s *Store) Quotes(symbol string) ([]model.OHLCV, error) {
	l := s.symbolLock(symbol)
	l.Lock()
	defer l.Unlock()
	return s.readQuotes(symbol)
}

// QuoteOn returns the bar for one exact date. ok is false on a cache miss.
func (s *Store) QuoteOn(symbol string, date time.Time) (model.OHLCV, bool, error) {
	recs, err := s.Quotes(symbol)
	if err != nil {
		return model.OHLCV{}, false, err
	}
	for _, r := range recs {
		if model.SameDate(r.Date, date) {
			return r, true, nil
		}
	}
	return model.OHLCV{}, false, nil
}

// QuotesInRange returns all bars inside [start, end] inclusive, newest first.
func (s *Store) QuotesInRange(symbol string, r model.DateRange) ([]model.OHLCV, error) {
	recs, err := s.Quotes(symbol)
	if err != nil {
		return nil, err
	}
	var out []model.OHLCV
	for _, rec := range recs {
		if r.Contains(rec.Date) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// PutQuotes merges new bars into the stored set, deduplicates by date with the
// incoming record winning, and rewrites the file sorted newest first.
// Idempotent: putting the same records twice leaves the file unchanged.
func (s *Store) PutQuotes(symbol string, recs []model.OHLCV) error {
	if len(recs) == 0 {
		return nil
	}
	l := s.symbolLock(symbol)
	l.Lock()
	defer l.Unlock()

	existing, err := s.readQuotes(symbol)
	if err != nil {
		return err
	}

	byDate := make(map[string]model.OHLCV, len(existing)+len(recs))
	for _, r := range existing {
		byDate[r.Date.Format(dateLayout)] = r
	}
	for _, r := range recs {
		r.Date = model.DateOnly(r.Date)
		byDate[r.Date.Format(dateLayout)] = r
	}

	merged := make([]model.OHLCV, 0, len(byDate))
	for _, r := range byDate {
		merged = append(merged, r)
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Date.After(merged[j].Date) })

	return s.writeQuotes(symbol, merged)
}

// News returns all cached news items for a symbol, newest first.
func (s *Store) News(symbol string) ([]model.NewsItem, error) {
	l := s.symbolLock(symbol)
	l.Lock()
	defer l.Unlock()
	return s.readNews(symbol)
}

// NewsInRange returns items inside [start, end] inclusive, newest first.
func (s *Store) NewsInRange(symbol string, r model.DateRange) ([]model.NewsItem, error) {
	items, err := s.News(symbol)
	if err != nil {
		return nil, err
	}
	var out []model.NewsItem
	for _, it := range items {
		if r.Contains(it.Date) {
			out = append(out, it)
		}
	}
	return out, nil
}

// PutNews merges items into the stored set, deduplicating by (title, date)
// with the incoming item winning, and rewrites the file sorted newest first.
func (s *Store) PutNews(symbol string, items []model.NewsItem) error {
	if len(items) == 0 {
		return nil
	}
	l := s.symbolLock(symbol)
	l.Lock()
	defer l.Unlock()

	existing, err := s.readNews(symbol)
	if err != nil {
		return err
	}

	byKey := make(map[string]model.NewsItem, len(existing)+len(items))
	for _, it := range existing {
		byKey[newsKey(it)] = it
	}
	for _, it := range items {
		it.Date = model.DateOnly(it.Date)
		byKey[newsKey(it)] = it
	}

	merged := make([]model.NewsItem, 0, len(byKey))
	for _, it := range byKey {
		merged = append(merged, it)
	}
	sort.Slice(merged, func(i, j int) bool {
		if !merged[i].Date.Equal(merged[j].Date) {
			return merged[i].Date.After(merged[j].Date)
		}
		return merged[i].Title < merged[j].Title
	})

	return s.writeNews(symbol, merged)
}

func newsKey(it model.NewsItem) string {
	return it.Title + "|" + it.Date.Format(dateLayout)
}

func (s *Store) readQuotes(symbol string) ([]model.OHLCV, error) {
	rows, err := readCSV(s.quotePath(symbol))
	if err != nil || rows == nil {
		return nil, err
	}
	recs := make([]model.OHLCV, 0, len(rows))
	for _, row := range rows {
		if len(row) != len(quoteHeader) {
			continue
		}
		date, err := time.Parse(dateLayout, row[0])
		if err != nil {
			continue
		}
		open, err1 := decimal.NewFromString(row[1])
		high, err2 := decimal.NewFromString(row[2])
		low, err3 := decimal.NewFromString(row[3])
		cls, err4 := decimal.NewFromString(row[4])
		vol, err5 := strconv.ParseInt(row[5], 10, 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
			continue
		}
		recs = append(recs, model.OHLCV{Date: date, Open: open, High: high, Low: low, Close: cls, Volume: vol})
	}
	return recs, nil
}

func (s *Store) writeQuotes(symbol string, recs []model.OHLCV) error {
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, []string{
			r.Date.Format(dateLayout),
			r.Open.String(), r.High.String(), r.Low.String(), r.Close.String(),
			strconv.FormatInt(r.Volume, 10),
		})
	}
	return writeCSV(s.quotePath(symbol), quoteHeader, rows)
}

func (s *Store) readNews(symbol string) ([]model.NewsItem, error) {
	rows, err := readCSV(s.newsPath(symbol))
	if err != nil || rows == nil {
		return nil, err
	}
	items := make([]model.NewsItem, 0, len(rows))
	for _, row := range rows {
		if len(row) != len(newsHeader) {
			continue
		}
		date, err := time.Parse(dateLayout, row[0])
		if err != nil {
			continue
		}
		rel, _ := strconv.ParseFloat(row[6], 64)
		items = append(items, model.NewsItem{
			Date: date, Title: row[1], Summary: row[2],
			URL: row[3], Source: row[4], Sentiment: row[5], Relevance: rel,
		})
	}
	return items, nil
}

func (s *Store) writeNews(symbol string, items []model.NewsItem) error {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			it.Date.Format(dateLayout), it.Title, it.Summary,
			it.URL, it.Source, it.Sentiment,
			strconv.FormatFloat(it.Relevance, 'f', -1, 64),
		})
	}
	return writeCSV(s.newsPath(symbol), newsHeader, rows)
}

// readCSV returns the data rows of a CSV file, or nil if the file is absent.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open cache file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse cache file %s: %w", path, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}
	return rows[1:], nil
}

// writeCSV rewrites the file wholesale: temp file then rename.
func writeCSV(path string, header []string, rows [][]string) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create cache file: %w", err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("write cache header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("write cache rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush cache file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close cache file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace cache file: %w", err)
	}
	return nil
}
