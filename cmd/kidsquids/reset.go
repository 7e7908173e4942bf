package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kidsquids/internal/progress"
)

var flagResetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset a player's progress",
	Long: `Erase coins, stars, unlocks, levels, statistics and attempt history
of a player. Settings are kept.

Examples:
  kidsquids reset
  kidsquids reset --yes --profile anna`,
	Run: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetYes, "yes", false, "Do not ask for confirmation")
}

func runReset(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, _ := newLogger(cfg, false)

	p := openPlayer(cfg, false)
	defer p.Close()

	if !flagResetYes {
		fmt.Printf("Reset all progress of %q? [y/N] ", p.name)
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Cancelled.")
			return
		}
	}

	progress.Open(p.kv, logger).Reset()
	if err := p.db.ClearAttempts(p.name); err != nil {
		fail("%v", err)
	}
	logger.Info("progress reset", "profile", p.name)
	fmt.Printf("Progress of %q reset.\n", p.name)
}
