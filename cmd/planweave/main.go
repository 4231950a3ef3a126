package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/idelgado/planweave/internal/cli"
	"github.com/idelgado/planweave/internal/summarize"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{}

	// Wire the summarization model (only when enabled).
	cfg := summarize.LoadConfig()
	if cfg.Enabled {
		var observer summarize.Observer = summarize.NoopObserver{}
		if cfg.LogCalls {
			observer = summarize.NewLogObserver(os.Stderr)
		}
		app.Summarizer = summarize.NewOllamaClient(cfg, observer)
	}

	// Detect interactive terminal for wizard and TUI entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
