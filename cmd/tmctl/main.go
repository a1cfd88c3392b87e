// Command tmctl is the operator tool for the translation memory: it applies
// migrations, bulk-imports segments, runs searches from the shell and mints
// access tokens for testing.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/dingla0/TranslationTracker/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdout).RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "tmctl:", err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:                   "tmctl",
		Usage:                  "Translation memory administration",
		Version:                app.BuildVersion(),
		Writer:                 out,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path (default: $CONFIG_PATH or ./config.yaml)",
			},
		},
		Commands: []*cli.Command{
			migrateCommand(),
			importCommand(),
			searchCommand(),
			versionsCommand(),
			tokenCommand(),
		},
	}
}
