// Package commands contains the mdpages CLI subcommands.
package commands

import (
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/mdpages/internal/config"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags shared by all subcommands.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"mdpages.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build   BuildCmd   `cmd:"" help:"Build the HTML site from the configured input"`
	Init    InitCmd    `cmd:"" help:"Initialize a new configuration file"`
	Serve   ServeCmd   `cmd:"" help:"Build the site and serve it locally, rebuilding on changes"`
	Watch   WatchCmd   `cmd:"" help:"Rebuild the site whenever the input directory changes"`
	History HistoryCmd `cmd:"" help:"Show recent build history"`
	Verify  VerifyCmd  `cmd:"" help:"Check the generated site for broken relative references"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := parseLogLevel(c.Verbose)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// parseLogLevel resolves the log level from the verbose flag and the
// MDPAGES_LOG_LEVEL environment variable. The env var wins.
func parseLogLevel(verbose bool) slog.Level {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	switch strings.ToLower(os.Getenv("MDPAGES_LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return level
}

// loadConfig loads the configuration file named by the root flags, falling
// back to defaults when the file does not exist.
func loadConfig(root *CLI) (*config.Config, error) {
	return config.LoadOrDefault(root.Config)
}
