package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"MarketScout/internal/charts"
	"MarketScout/internal/collector"
	"MarketScout/internal/config"
	"MarketScout/internal/notifier"
	"MarketScout/internal/recorder"
	"MarketScout/internal/scheduler"
	"MarketScout/internal/screener"
	"MarketScout/internal/universe"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	if os.Getenv("DEBUG") == "true" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	log.Info().Msg("MarketScout starting")

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}

	fetcher := collector.NewYahooFetcher(cfg.Proxy)
	log.Info().Str("source", fetcher.Name()).Msg("data source ready")

	scr := screener.NewScreener(fetcher, fetcher)
	orch := screener.NewOrchestrator(scr, universe.NewNasdaqTrader(cfg.Proxy))
	agg := screener.NewSnapshotAggregator(fetcher)
	renderer := charts.NewRenderer(cfg.Paths.ChartsDir)

	var tg *notifier.Telegram
	var rec recorder.Recorder = recorder.NewNoopRecorder()
	if cfg.DryRun {
		rec = recorder.NewFileRecorder(cfg.Paths.ReportsDir)
		log.Info().Str("dir", cfg.Paths.ReportsDir).Msg("dry run, reports go to disk")
	} else {
		tg, err = notifier.NewTelegram(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			log.Fatal().Err(err).Msg("init telegram")
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, orch, agg, tg, renderer, rec, cfg)

	if cfg.Schedule.Cron == "" {
		// No schedule configured: single scan and exit.
		sched.RunScanNow()
		return
	}

	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		log.Fatal().Err(err).Msg("register scan schedule")
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Info().Msg("RUN_ON_START enabled, scanning now")
		go sched.RunScanNow()
	}

	log.Info().Str("cron", cfg.Schedule.Cron).Msg("MarketScout is running")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping")
	cancel()
	log.Info().Msg("MarketScout stopped")
}
