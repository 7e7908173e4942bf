package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kidsquids/internal/catalog"
	"github.com/vovakirdan/kidsquids/internal/progress"
	"github.com/vovakirdan/kidsquids/internal/unlock"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show a player's progress",
	Long: `Display coins, stars, unlocked content, per-game levels and
statistics of a player.

Examples:
  kidsquids progress
  kidsquids progress --profile anna`,
	Run: runProgress,
}

func runProgress(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, _ := newLogger(cfg, false)

	p := openPlayer(cfg, false)
	defer p.Close()
	store := progress.Open(p.kv, logger)

	fmt.Printf("Progress - %s\n", p.name)
	fmt.Println()
	fmt.Printf("  Coins: %d\n", store.Coins())
	fmt.Printf("  Stars: %d\n", store.Stars())
	fmt.Printf("  Theme: %s\n", store.Theme())
	fmt.Println()

	fmt.Println("Content:")
	for _, d := range catalog.Difficulties {
		printLock(unlock.CategoryDifficulty, d.Title(), string(d), store.IsDifficultyUnlocked(d))
	}
	for _, m := range catalog.Modes {
		printLock(unlock.CategoryMode, m.Title(), string(m), store.IsModeUnlocked(m))
	}
	for _, t := range catalog.Themes {
		printLock(unlock.CategoryTheme, t.String(), string(t), store.IsThemeUnlocked(t))
	}
	fmt.Println()

	fmt.Println("Levels:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Difficulty\tGame\tLevel\tStars\tBest")
	fmt.Fprintln(w, "  ----------\t----\t-----\t-----\t----")
	for _, d := range catalog.Difficulties {
		for _, m := range catalog.Modes {
			lp := store.LevelProgress(d, m)
			fmt.Fprintf(w, "  %s\t%s\t%d\t%d\t%d\n", d.Title(), m.Title(), lp.Level, lp.Stars, lp.BestScore)
		}
	}
	w.Flush()
	fmt.Println()

	fmt.Println("Statistics:")
	stats := store.Stats()
	for _, name := range progress.StatNames {
		fmt.Printf("  %-20s %d\n", name, stats[name])
	}
}

// printLock prints one unlockable item with its requirement.
func printLock(category unlock.Category, title, name string, open bool) {
	kind := string(category)
	if open {
		fmt.Printf("  %-11s %-10s unlocked\n", kind, title)
		return
	}
	hint := unlock.Requirement(unlock.Unlock{Category: category, Name: name})
	fmt.Printf("  %-11s %-10s locked (%s)\n", kind, title, hint)
}
