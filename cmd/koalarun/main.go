// koalarun is a terminal side-scrolling runner: jump a koala over five
// obstacles, then run from the bear.
//
// Usage:
//
//	koalarun play      - Play in this terminal
//	koalarun serve     - Start SSH server for remote play
//	koalarun history   - Show recorded runs
//	koalarun config    - Print the effective game config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--config <path>      - Custom game config YAML
//	--db <path>          - Run history database ("" disables it)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/koala-run/internal/games/koala"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "koalarun",
	Short: "Koala Run - a side-scrolling runner in your terminal",
	Long: `Koala Run is a side-scrolling runner for the terminal.

Jump over five obstacles as they scroll toward you. After the last one
the bear appears; reach it to win.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  history  - View recorded runs
  config   - Print the effective game config

Examples:
  koalarun play
  koalarun play --config ./my-koala.yaml
  koalarun serve --ssh :2222
  koalarun history`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		koala.SetConfigPath(flagConfig)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.koalarun/runs.db", "Path to run history database (empty to disable)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}
