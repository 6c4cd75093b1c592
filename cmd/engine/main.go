package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"GoldSentinel/internal/api"
	"GoldSentinel/internal/calendar"
	"GoldSentinel/internal/collector"
	"GoldSentinel/internal/config"
	"GoldSentinel/internal/engine"
	"GoldSentinel/internal/notifier"
	"GoldSentinel/internal/safety"
	"GoldSentinel/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] GoldSentinel starting...")

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

	// Init fetcher
	timeout := time.Duration(cfg.DataSource.TimeoutSeconds) * time.Second
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewBridgeFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy, timeout)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy, timeout)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init collector
	col := collector.NewCollector(fetcher, cfg)

	// Init news calendar; none configured means the news trigger is inactive
	var cal calendar.Calendar
	switch {
	case cfg.Calendar.SQLitePath != "":
		sc, err := calendar.NewSQLiteCalendar(cfg.Calendar.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite calendar failed, news trigger inactive: %v", err)
			cal = calendar.NewNoopCalendar()
		} else {
			cal = sc
			defer sc.Close()
		}
	case cfg.Calendar.FilePath != "":
		fc, err := calendar.NewFileCalendar(cfg.Calendar.FilePath)
		if err != nil {
			log.Printf("[WARN] init file calendar failed, news trigger inactive: %v", err)
			cal = calendar.NewNoopCalendar()
		} else {
			cal = fc
		}
	default:
		cal = calendar.NewNoopCalendar()
	}

	// Init safety gate and evaluator
	gate := safety.NewGate(cfg, cal)
	eval := engine.NewEvaluator(col, gate, cfg)

	// Init Telegram notifier
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, eval, tn)
	if err := sched.RegisterAll(cfg.Schedule.EvalCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start HTTP status server
	srv := api.NewServer(eval, cfg)
	go func() {
		if err := srv.Start(cfg.Server.Listen); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	}()
	log.Printf("[INFO] status server listening on %s", cfg.Server.Listen)

	// Start Telegram polling
	if tn.Enabled() {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing evaluation now")
		go sched.RunNow()
	}

	log.Println("[INFO] GoldSentinel is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[WARN] http shutdown: %v", err)
	}
	log.Println("[INFO] GoldSentinel stopped")
}
