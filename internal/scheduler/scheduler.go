package scheduler

import (
	"context"
	"fmt"
	"log"

	"AdvisorBot/internal/source"

	"github.com/robfig/cron/v3"
)

// Scheduler warms the cache for watchlist symbols on a cron schedule so
// market-hours queries hit locally instead of burning upstream quota.
type Scheduler struct {
	Cron    *cron.Cron
	Quotes  *source.QuoteService
	News    *source.NewsService
	Symbols []string
	Ctx     context.Context
}

func NewScheduler(ctx context.Context, quotes *source.QuoteService, news *source.NewsService, symbols []string) *Scheduler {
	return &Scheduler{
		Cron:    cron.New(cron.WithSeconds()),
		Quotes:  quotes,
		News:    news,
		Symbols: symbols,
		Ctx:     ctx,
	}
}

// Register adds the watchlist refresh task.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunRefreshNow executes the refresh task immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunRefreshNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	if len(s.Symbols) == 0 {
		return
	}
	log.Printf("[INFO] refreshing watchlist: %v", s.Symbols)
	for _, sym := range s.Symbols {
		if err := s.Quotes.Refresh(s.Ctx, sym); err != nil {
			log.Printf("[ERROR] refresh quotes for %s: %v", sym, err)
		}
		if err := s.News.Refresh(s.Ctx, sym); err != nil {
			log.Printf("[ERROR] refresh news for %s: %v", sym, err)
		}
	}
	log.Println("[INFO] watchlist refresh done")
}
