// kidsquids is a terminal game that trains young children to use a mouse:
// clicking, catching, dragging and double-clicking friendly shapes.
//
// Usage:
//
//	kidsquids play               - Start at the difficulty menu
//	kidsquids levels             - Print the level table
//	kidsquids progress           - Show coins, stars and unlocks
//	kidsquids history            - Show recent attempts
//	kidsquids settings           - Show or change settings
//	kidsquids reset              - Reset progress
//	kidsquids serve              - Start SSH server for remote play
//	kidsquids snapshot           - Render a simulated level to PNG
//
// Global flags:
//
//	--config <path>    - Config file (default: search ~/.kidsquids, ./configs)
//	--db <path>        - Database path (default: ~/.kidsquids/kidsquids.db)
//	--profile <name>   - Player profile (default: OS user)
//	--fps <rate>       - Tick rate (default: 60)
//	--seed <value>     - RNG seed for reproducible gameplay
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagProfile  string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kidsquids",
	Short: "KidsQuids - mouse games for little hands",
	Long: `KidsQuids is a set of gentle mouse games for children aged 3 to 8.
Shapes with friendly faces appear on screen and wait to be clicked,
caught, dragged to their shadows or double-clicked.

Available commands:
  play      - Play in the terminal (needs mouse support)
  levels    - Print the level table
  progress  - Show coins, stars, unlocks and statistics
  history   - Show recent attempts
  settings  - Show or change language, sound and theme
  reset     - Reset a player's progress
  serve     - Start SSH server for remote play
  snapshot  - Render a simulated level to PNG

Examples:
  kidsquids play
  kidsquids play --mode catch --difficulty starter
  kidsquids progress --profile anna
  kidsquids serve --ssh :2222
  kidsquids snapshot --mode drag --out drag.png`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to progress database")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "Player profile (default: OS user)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(snapshotCmd)
}
