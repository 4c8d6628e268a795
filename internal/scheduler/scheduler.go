// Package scheduler drives scan runs, either once or on a cron cadence,
// and pushes the resulting report through the configured delivery path.
package scheduler

import (
	"context"
	"fmt"
	"os"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"MarketScout/internal/charts"
	"MarketScout/internal/config"
	"MarketScout/internal/model"
	"MarketScout/internal/notifier"
	"MarketScout/internal/recorder"
	"MarketScout/internal/screener"
)

// Scheduler wires the scan pipeline together and runs it on demand or on
// a cron schedule. Telegram may be nil when running dry.
type Scheduler struct {
	Cron         *cron.Cron
	Orchestrator *screener.Orchestrator
	Indices      *screener.SnapshotAggregator
	Telegram     *notifier.Telegram
	Charts       *charts.Renderer
	Recorder     recorder.Recorder
	Config       *config.Config
	Ctx          context.Context
}

func NewScheduler(ctx context.Context, orch *screener.Orchestrator, agg *screener.SnapshotAggregator, tg *notifier.Telegram, ch *charts.Renderer, rec recorder.Recorder, cfg *config.Config) *Scheduler {
	return &Scheduler{
		Cron:         cron.New(cron.WithSeconds()),
		Orchestrator: orch,
		Indices:      agg,
		Telegram:     tg,
		Charts:       ch,
		Recorder:     rec,
		Config:       cfg,
		Ctx:          ctx,
	}
}

// Register adds the scan job under the given cron spec (with seconds).
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.runScan); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Msg("scheduler started")
}

func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Info().Msg("scheduler stopped")
}

// RunScanNow executes one full scan immediately.
func (s *Scheduler) RunScanNow() {
	s.runScan()
}

func (s *Scheduler) runScan() {
	log.Info().Msg("starting market scan")

	var indices []*model.IndexSnapshot
	if !s.Config.StocksOnly {
		indices = s.Indices.Snapshot(screener.DefaultBenchmarks)
	}

	results := s.Orchestrator.Run(screener.RunConfigFrom(s.Config))
	log.Info().Int("matches", len(results)).Msg("scan finished")

	page1, page2 := notifier.FormatReport(results, indices, s.Config.ETFAssetClassOrder)

	if s.Config.DryRun {
		if err := s.Recorder.RecordPages([]string{page1, page2}); err != nil {
			log.Error().Err(err).Msg("record report pages")
		}
		// Keep the rendered charts on disk for inspection.
		paths := s.Charts.RenderAll(results)
		log.Info().Int("charts", len(paths)).Msg("dry run complete")
		return
	}

	for _, page := range []string{page1, page2} {
		if err := s.Telegram.SendPage(s.Ctx, page); err != nil {
			log.Error().Err(err).Msg("send report page")
			return
		}
	}

	s.sendCharts(results)
}

// sendCharts delivers one chart per matched instrument. Delivery is best
// effort and the temporary files are removed either way.
func (s *Scheduler) sendCharts(results []*model.ScreeningResult) {
	paths := s.Charts.RenderAll(results)
	if len(paths) == 0 {
		return
	}
	defer func() {
		for _, path := range paths {
			if err := os.Remove(path); err != nil {
				log.Warn().Str("path", path).Err(err).Msg("remove chart file")
			}
		}
	}()

	if err := s.Telegram.SendPhotos(s.Ctx, paths); err != nil {
		log.Warn().Err(err).Msg("send charts")
	}
}
