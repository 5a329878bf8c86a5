package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/mdpages/internal/config"
	"git.home.luguber.info/inful/mdpages/internal/errors"
	"git.home.luguber.info/inful/mdpages/internal/logfields"
	"git.home.luguber.info/inful/mdpages/internal/preview"
	"git.home.luguber.info/inful/mdpages/internal/site"
)

// WatchCmd implements the 'watch' command: rebuild the site on every
// change to the input directory, without serving it.
type WatchCmd struct{}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if cfg.Source != nil {
		return errors.ValidationFailed("source", "watch requires a local input directory, not a git source")
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	gen := site.NewGenerator(cfg)
	rebuild := func(ctx context.Context) {
		if _, err := runBuildWith(ctx, gen); err != nil {
			slog.Warn("rebuild failed", logfields.Error(err))
		}
	}
	rebuild(ctx)

	return preview.NewWatcher(cfg.Input, rebuild).Run(ctx)
}
