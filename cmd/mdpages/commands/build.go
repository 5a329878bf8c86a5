package commands

import (
	"context"
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/mdpages/internal/config"
	"git.home.luguber.info/inful/mdpages/internal/logfields"
	"git.home.luguber.info/inful/mdpages/internal/site"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Input  string `short:"i" help:"Input directory with markdown pages (overrides config)"`
	Output string `short:"o" help:"Output directory for the generated site (overrides config)"`
	Theme  string `name:"theme" help:"CSS theme to use (overrides config)"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	b.applyOverrides(cfg)

	fmt.Println("Starting mdpages build")
	report, err := RunBuild(context.Background(), cfg)
	if err != nil {
		return err
	}
	if report.Outcome == site.OutcomeWarning {
		fmt.Printf("Build finished with %d skipped page(s)\n", len(report.Issues))
		return nil
	}
	fmt.Printf("Build finished: %d page(s) written\n", report.PagesWritten)
	return nil
}

func (b *BuildCmd) applyOverrides(cfg *config.Config) {
	if b.Input != "" {
		cfg.Input = b.Input
		cfg.Source = nil
	}
	if b.Output != "" {
		cfg.Output = b.Output
	}
	if b.Theme != "" {
		cfg.Site.Theme = b.Theme
	}
}

// RunBuild validates the configuration and performs one site build.
func RunBuild(ctx context.Context, cfg *config.Config) (*site.BuildReport, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return runBuildWith(ctx, site.NewGenerator(cfg))
}

func runBuildWith(ctx context.Context, gen *site.Generator) (*site.BuildReport, error) {
	report, err := gen.Build(ctx)
	if err != nil {
		return report, err
	}
	for _, issue := range report.Issues {
		slog.Warn("page skipped", logfields.Page(issue.Page), logfields.Error(issue.Err))
	}
	return report, nil
}
