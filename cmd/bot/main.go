package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"AdvisorBot/internal/advisor"
	"AdvisorBot/internal/cache"
	"AdvisorBot/internal/config"
	"AdvisorBot/internal/recorder"
	"AdvisorBot/internal/scheduler"
	"AdvisorBot/internal/server"
	"AdvisorBot/internal/source"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] AdvisorBot starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init cache store
	store, err := cache.NewStore(cfg.Cache.Dir)
	if err != nil {
		log.Fatalf("[FATAL] init cache store: %v", err)
	}

	// Init data sources. News always comes from Alpha Vantage; quotes can
	// come from Yahoo when configured.
	av := source.NewAlphaVantageClient(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	var quoteSource source.QuoteSource = av
	if cfg.DataSource.Provider == "yahoo" {
		quoteSource = source.NewYahooClient(cfg.Proxy)
	}
	log.Printf("[INFO] quote source: %s", quoteSource.Name())

	quotes := &source.QuoteService{Store: store, Source: quoteSource}
	news := &source.NewsService{Store: store, Source: av}

	// Init advice generator
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gen, err := advisor.NewGeminiGenerator(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatalf("[FATAL] init gemini generator: %v", err)
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init scheduler for watchlist cache warming
	sched := scheduler.NewScheduler(ctx, quotes, news, cfg.Watchlist.Symbols)
	if err := sched.Register(cfg.Watchlist.RefreshCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: warm the cache immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, refreshing watchlist now")
		go sched.RunRefreshNow()
	}

	// Start HTTP server
	srv := server.New(fmt.Sprintf(":%d", cfg.Server.Port), quotes, news, gen, rec, cfg.Persona.Default)
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	log.Println("[INFO] AdvisorBot is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal or server failure
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
		log.Println("[INFO] shutdown signal received, stopping...")
	case err := <-errCh:
		log.Printf("[ERROR] server stopped: %v", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[WARN] server shutdown: %v", err)
	}
	cancel()
	log.Println("[INFO] AdvisorBot stopped")
}
