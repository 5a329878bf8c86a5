package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/mdpages/cmd/mdpages/commands"
	"git.home.luguber.info/inful/mdpages/internal/errors"
	"git.home.luguber.info/inful/mdpages/internal/version"
)

func main() {
	// Load .env if present so MDPAGES_* variables apply before parsing.
	_ = godotenv.Load()

	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("mdpages"),
		kong.Description("Convert a directory of sequenced markdown pages into a navigable HTML site."),
		kong.UsageOnError(),
		kong.Vars{"version": fmt.Sprintf("mdpages %s (commit %s, built %s)", version.Version, version.GitCommit, version.BuildTime)},
	)

	global := &commands.Global{Logger: slog.Default()}
	if err := ctx.Run(global, cli); err != nil {
		adapter := errors.NewCLIErrorAdapter(cli.Verbose, slog.Default())
		fmt.Fprintln(os.Stderr, adapter.FormatError(err))
		os.Exit(adapter.ExitCodeFor(err))
	}
}
