package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-co-op/gocron/v2"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/mdpages/internal/config"
	"git.home.luguber.info/inful/mdpages/internal/logfields"
	"git.home.luguber.info/inful/mdpages/internal/metrics"
	"git.home.luguber.info/inful/mdpages/internal/preview"
	"git.home.luguber.info/inful/mdpages/internal/site"
)

// ServeCmd implements the 'serve' command: build once, serve the output
// directory, and rebuild on input changes or on a periodic schedule.
type ServeCmd struct {
	Addr    string `name:"addr" help:"Listen address (overrides config)"`
	NoWatch bool   `name:"no-watch" help:"Disable filesystem watching"`
}

func (s *ServeCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if s.Addr != "" {
		cfg.Serve.Addr = s.Addr
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	var promRecorder *metrics.PrometheusRecorder
	if cfg.Serve.Metrics {
		promRecorder = metrics.NewPrometheusRecorder(prom.NewRegistry())
		recorder = promRecorder
	}
	gen := site.NewGenerator(cfg).WithRecorder(recorder)

	// Initial build. Serving continues even if it fails so the next
	// change can fix the site.
	var buildMu sync.Mutex
	rebuild := func(ctx context.Context) {
		buildMu.Lock()
		defer buildMu.Unlock()
		if _, err := runBuildWith(ctx, gen); err != nil {
			slog.Warn("rebuild failed", logfields.Error(err))
		}
	}
	rebuild(ctx)

	if !s.NoWatch && cfg.Source == nil {
		watcher := preview.NewWatcher(cfg.Input, rebuild)
		go func() {
			if err := watcher.Run(ctx); err != nil {
				slog.Warn("watcher stopped", logfields.Error(err))
			}
		}()
	}

	scheduler, err := startRebuildScheduler(ctx, cfg, rebuild)
	if err != nil {
		return err
	}
	if scheduler != nil {
		defer func() {
			if err := scheduler.Shutdown(); err != nil {
				slog.Warn("scheduler shutdown error", logfields.Error(err))
			}
		}()
	}

	server := preview.NewServer(cfg.Serve.Addr, cfg.Output)
	if promRecorder != nil {
		server.WithMetricsHandler(promRecorder.HTTPHandler())
	}
	return server.Start(ctx)
}

// startRebuildScheduler schedules periodic rebuilds when rebuild_every is
// configured. Returns nil when disabled.
func startRebuildScheduler(ctx context.Context, cfg *config.Config, rebuild func(context.Context)) (gocron.Scheduler, error) {
	interval, err := cfg.Serve.RebuildInterval()
	if err != nil {
		return nil, err
	}
	if interval <= 0 {
		return nil, nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}
	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(rebuild, ctx),
		gocron.WithName("periodic-rebuild"),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return nil, fmt.Errorf("failed to create periodic rebuild job: %w", err)
	}
	scheduler.Start()
	slog.Info("periodic rebuild enabled", slog.Duration("interval", interval))
	return scheduler, nil
}
