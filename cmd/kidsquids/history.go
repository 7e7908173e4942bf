package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent attempts",
	Long: `Display a player's most recent attempts and a summary per game.

Examples:
  kidsquids history
  kidsquids history --limit 50 --profile anna`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of attempts to show")
}

func runHistory(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	p := openPlayer(cfg, false)
	defer p.Close()

	attempts, err := p.db.RecentAttempts(p.name, flagHistoryLimit)
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("Recent attempts - %s\n", p.name)
	fmt.Println()

	if len(attempts) == 0 {
		fmt.Println("No attempts recorded yet.")
		fmt.Println()
		fmt.Println("Run 'kidsquids play' to start playing!")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Date\tGame\tDifficulty\tLevel\tResult\tScore\tStars\tTime")
	fmt.Fprintln(w, "  ----\t----\t----------\t-----\t------\t-----\t-----\t----")
	for _, a := range attempts {
		result := "time up"
		if a.Success {
			result = "won"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%d\t%s\t%d\t%d\t%s\n",
			a.CreatedAt.Format("2006-01-02 15:04"), a.Mode.Title(), a.Difficulty.Title(),
			a.Level, result, a.Score, a.Stars, a.Duration.Round(time.Second))
	}
	w.Flush()

	stats, err := p.db.AttemptStats(p.name)
	if err != nil {
		fail("%v", err)
	}
	fmt.Println()
	fmt.Println("Summary:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Game\tDifficulty\tPlayed\tWon\tBest\tAverage\tLast played")
	fmt.Fprintln(w, "  ----\t----------\t------\t---\t----\t-------\t-----------")
	for _, s := range stats {
		fmt.Fprintf(w, "  %s\t%s\t%d\t%d\t%d\t%.1f\t%s\n",
			s.Mode.Title(), s.Difficulty.Title(), s.Attempts, s.Successes,
			s.BestScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	w.Flush()
}
