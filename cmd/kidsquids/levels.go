package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kidsquids/internal/catalog"
	"github.com/vovakirdan/kidsquids/internal/session"
)

var flagLevelsMode string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print the level table",
	Long: `Print the parameters of every level, per game and difficulty.
Levels past the end of a list repeat the last one.

Examples:
  kidsquids levels
  kidsquids levels --mode drag`,
	Run: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsMode, "mode", "", "Only show one game")
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	levels := loadLevels(cfg)

	modes := catalog.Modes
	if flagLevelsMode != "" {
		mode, err := catalog.ParseMode(flagLevelsMode)
		if err != nil {
			fail("%v", err)
		}
		modes = []catalog.Mode{mode}
	}

	for _, mode := range modes {
		info := catalog.InfoForMode(mode)
		fmt.Printf("%s - %s\n", mode.Title(), info.Hint)
		fmt.Println()

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  Difficulty\tLevel\tGoal\tShapes\tSize\tDetail\tCoins\tMax score")
		fmt.Fprintln(w, "  ----------\t-----\t----\t------\t----\t------\t-----\t---------")
		for _, d := range catalog.Difficulties {
			for _, l := range levels.Levels(mode, d) {
				fmt.Fprintf(w, "  %s\t%d\t%d\t%d\t%g\t%s\t%d\t%d\n",
					d.Title(), l.Level, l.Goal, shapeCount(l), l.Size, levelDetail(l), l.Coins, l.MaxScore())
			}
		}
		w.Flush()
		fmt.Println()
	}
}

func shapeCount(l catalog.LevelConfig) int {
	if l.Mode == catalog.ModeDrag {
		return l.Pairs
	}
	return l.Shapes
}

// levelDetail describes the mode-specific parameters of a level.
func levelDetail(l catalog.LevelConfig) string {
	switch l.Mode {
	case catalog.ModeCatch:
		return fmt.Sprintf("speed %g, %ds", l.Speed, l.TimeLimit)
	case catalog.ModeDrag:
		return fmt.Sprintf("target %g, %ds", l.TargetSize, l.TimeLimit)
	case catalog.ModeDouble:
		return fmt.Sprintf("window %s, %s per shape", session.DoubleClickWindow, l.TimePerShape)
	default:
		return fmt.Sprintf("%s per shape", l.TimePerShape)
	}
}
