// relicrun is a side-scrolling platformer: run through a level wider than
// the screen, beat its guardian, collect relics and reach the exit.
//
// Usage:
//
//	relicrun play     - Play from the start level (or --level)
//	relicrun levels   - Print the level table
//
// Global flags:
//
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var flagLogLevel string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "relicrun",
	Short: "Relic Run - a side-scrolling platformer",
	Long: `Relic Run is a side-scrolling action platformer. Cross each level,
defeat its guardian, answer the boss quiz and collect the relics.

Examples:
  relicrun play
  relicrun play --mode duo
  relicrun play --level 2 --debug
  relicrun levels`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
}

// newLogger builds the root logger from --log-level.
func newLogger() (*log.Logger, error) {
	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("relicrun: %w", err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "relicrun",
		Level:           lvl,
	}), nil
}
