package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/koala-run/internal/core"
	"github.com/vovakirdan/koala-run/internal/games/koala"
	"github.com/vovakirdan/koala-run/internal/platform/tui"
	"github.com/vovakirdan/koala-run/internal/registry"
	"github.com/vovakirdan/koala-run/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run in this terminal.

Controls:
  Space/Up/W - Jump
  P/Esc      - Pause
  R          - Restart (after the run ends)
  H          - Run history (paused or after the run ends)
  ?          - More keys
  Q/Ctrl+C   - Quit

Logs are written to ~/.koalarun/koalarun.log.

Examples:
  koalarun play
  koalarun play --fps 30
  koalarun play --config ./my-koala.yaml --db ""`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	var logOut io.Writer = io.Discard
	if f, err := openLogFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
	} else {
		defer f.Close()
		logOut = f
	}

	logger, err := newLogger(logOut, "koalarun")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	koala.SetLogger(logger)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	game, err := registry.Create(koala.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	var store *storage.Store
	if flagDBPath != "" {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
			// Continue without storage - game still works
			store = nil
		}
	}

	logger.Info("starting run", "fps", flagFPS, "config", flagConfig, "db", flagDBPath)
	runErr := tui.Run(game, store, cfg, tui.WithModelLogger(logger))

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
