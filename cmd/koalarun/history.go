package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/koala-run/internal/games/koala"
	"github.com/vovakirdan/koala-run/internal/platform/tui"
	"github.com/vovakirdan/koala-run/internal/storage"
)

var (
	flagHistoryPlain bool
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View recorded runs",
	Long: `Show finished runs from the history database, newest first.

Examples:
  koalarun history
  koalarun history --plain --limit 5
  koalarun history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print a plain table instead of the interactive view")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of runs to print with --plain")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded runs")
}

func runHistory(_ *cobra.Command, _ []string) {
	if flagDBPath == "" {
		fmt.Fprintln(os.Stderr, "Error: run history is disabled (--db is empty)")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearRuns(koala.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	if flagHistoryPlain || !isTTY {
		if err := printHistory(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	if err := tui.RunHistory(store, koala.ID, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHistory(store *storage.Store) error {
	runs, err := store.RecentRuns(koala.ID, flagHistoryLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tOUTCOME\tPASSED\tTIME\tPLAYER\tDATE")
	for _, r := range runs {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\n",
			r.ID, r.Outcome, r.ObstaclesPassed,
			r.Duration.Round(100*time.Millisecond), r.Player,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return w.Flush()
}
