package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/kidsquids/internal/catalog"
	"github.com/vovakirdan/kidsquids/internal/config"
	"github.com/vovakirdan/kidsquids/internal/platform/snapshot"
	"github.com/vovakirdan/kidsquids/internal/platform/tui"
	"github.com/vovakirdan/kidsquids/internal/progress"
)

var (
	flagPlayMode       string
	flagPlayDifficulty string
	flagPlayLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game. Without flags it opens the difficulty menu; with
--mode it starts that game right away.

Controls:
  Mouse        - Click, catch, drag and double-click shapes
  Up/Down/j/k  - Navigate menus
  Enter        - Select
  P            - Pause
  Esc          - Back to the menu
  Tab          - Progress
  T            - Themes
  Ctrl+S       - Save a PNG snapshot
  Q/Ctrl+C     - Quit

Examples:
  kidsquids play
  kidsquids play --mode click
  kidsquids play --mode catch --difficulty explorer --level 2
  kidsquids play --profile anna`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayMode, "mode", "", "Game to start: click, catch, drag, double")
	playCmd.Flags().StringVar(&flagPlayDifficulty, "difficulty", "starter", "Difficulty: starter, explorer, champion")
	playCmd.Flags().IntVar(&flagPlayLevel, "level", 0, "Level to start (default: the player's current level)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	var start *tui.StartRequest
	if flagPlayMode != "" {
		mode, err := catalog.ParseMode(flagPlayMode)
		if err != nil {
			fail("%v", err)
		}
		difficulty, err := catalog.ParseDifficulty(flagPlayDifficulty)
		if err != nil {
			fail("%v", err)
		}
		start = &tui.StartRequest{Mode: mode, Difficulty: difficulty, Level: flagPlayLevel}
	}

	// Logs go to a file; the TUI owns the terminal
	logger, closer := newLogger(cfg, true)
	defer closer.Close()

	levels := loadLevels(cfg)
	p := openPlayer(cfg, true)

	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	renderer, err := snapshot.NewRenderer()
	if err != nil {
		logger.Warn("snapshots disabled", "error", err)
	}

	runErr := tui.Run(tui.Options{
		Store:    progress.Open(p.kv, logger.With("profile", p.name)),
		Recorder: p.recorder,
		Levels:   levels,
		Logger:   logger,
		Runtime:  cfg.Runtime(),
		Renderer: renderer,
		ShotDir:  config.UserPath("snapshots"),
		Profile:  p.name,
		Width:    width,
		Height:   height,
		Start:    start,
	})

	// Close store before potential exit
	p.Close()

	if runErr != nil {
		fail("%v", runErr)
	}
}
