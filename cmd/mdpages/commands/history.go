package commands

import (
	"context"
	"fmt"
	"time"

	"git.home.luguber.info/inful/mdpages/internal/errors"
	"git.home.luguber.info/inful/mdpages/internal/history"
)

// HistoryCmd implements the 'history' command.
type HistoryCmd struct {
	Limit int `short:"n" default:"10" help:"Number of recent builds to show"`
}

func (h *HistoryCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if cfg.History == nil || cfg.History.Path == "" {
		return errors.ValidationFailed("history", "no history database configured")
	}

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	records, err := store.Recent(context.Background(), h.Limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No builds recorded yet")
		return nil
	}

	for _, rec := range records {
		fmt.Printf("%s  %-8s  %3d pages  %2d skipped  %8s  %s\n",
			rec.Started.Format(time.RFC3339),
			rec.Outcome,
			rec.Pages,
			rec.Skipped,
			rec.Duration.Round(time.Millisecond),
			rec.BuildID)
	}
	return nil
}
