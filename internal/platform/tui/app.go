package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kidsquids/internal/catalog"
	"github.com/vovakirdan/kidsquids/internal/core"
	"github.com/vovakirdan/kidsquids/internal/platform/snapshot"
	"github.com/vovakirdan/kidsquids/internal/progress"
	"github.com/vovakirdan/kidsquids/internal/session"
)

type screen int

const (
	screenDifficulty screen = iota
	screenMode
	screenGame
	screenResult
	screenProgress
	screenTheme
)

// StartRequest skips the menus and starts a level right away.
type StartRequest struct {
	Mode       catalog.Mode
	Difficulty catalog.Difficulty
	Level      int // 0 means the player's current level
}

// Options configure an App.
type Options struct {
	Store    *progress.Store         // Required
	Recorder session.AttemptRecorder // Optional attempt history
	Levels   *catalog.Table
	Logger   *log.Logger
	Runtime  core.RuntimeConfig
	Renderer *snapshot.Renderer // Enables ctrl+s snapshots
	ShotDir  string
	Profile  string
	Width    int
	Height   int
	Start    *StartRequest
}

// App is the top-level model: difficulty menu -> mode menu -> game ->
// result -> mode menu, with progress and theme screens on the side.
type App struct {
	opts   Options
	keys   KeyMap
	help   help.Model
	width  int
	height int

	screen     screen
	back       screen // Where the side screens return to
	menu       MenuModel
	difficulty catalog.Difficulty
	mode       catalog.Mode
	level      int
	game       GameModel
	result     session.Result
	table      table.Model
	message    string
	quitting   bool
}

// NewApp creates the model. With opts.Start set the level starts at once,
// and an error is returned if it cannot.
func NewApp(opts Options) (App, error) {
	if opts.Store == nil {
		return App{}, errors.New("tui: progress store is required")
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 80, 24
	}

	a := App{
		opts:       opts,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		width:      opts.Width,
		height:     opts.Height,
		difficulty: catalog.DifficultyStarter,
	}
	a.help.Width = a.width
	a.showDifficulties()

	if opts.Start != nil {
		a.difficulty = opts.Start.Difficulty
		a.menu = modeMenu(opts.Store, a.difficulty)
		a.screen = screenMode
		if err := a.startGame(opts.Start.Mode, opts.Start.Level); err != nil {
			return a, err
		}
	}
	return a, nil
}

// Init starts the tick loop when the app opens on a game.
func (a App) Init() tea.Cmd {
	if a.screen == screenGame {
		return a.game.Init()
	}
	return nil
}

func (a *App) showDifficulties() {
	a.screen = screenDifficulty
	a.menu = difficultyMenu(a.opts.Store)
}

func (a *App) showModes() {
	a.screen = screenMode
	a.menu = modeMenu(a.opts.Store, a.difficulty)
}

// startGame builds a fresh controller for mode at level (0 = the player's
// current level) and switches to the game screen.
func (a *App) startGame(mode catalog.Mode, level int) error {
	if level <= 0 {
		level = a.opts.Store.LevelProgress(a.difficulty, mode).Level
	}
	ctrl := session.New(session.Deps{
		Progress: a.opts.Store,
		Recorder: a.opts.Recorder,
		Levels:   a.opts.Levels,
		Logger:   a.opts.Logger,
	}, a.opts.Runtime)

	game := NewGameModel(ctrl, a.opts.Runtime, a.width, a.height, a.opts.Renderer, a.opts.ShotDir, a.opts.Logger)
	if err := ctrl.Start(mode, a.difficulty, level); err != nil {
		return err
	}

	a.mode = mode
	a.level = level
	a.game = game
	a.screen = screenGame
	a.message = ""
	return nil
}

// Update handles messages and switches screens.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		a.width, a.height = wsm.Width, wsm.Height
		a.help.Width = wsm.Width
		if a.screen == screenProgress {
			a.table = newProgressTable(a.opts.Store, a.height)
		}
	}

	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, a.keys.Quit) {
		if a.screen == screenGame {
			a.game.Abort()
		}
		a.quitting = true
		return a, tea.Quit
	}

	switch a.screen {
	case screenGame:
		return a.updateGame(msg)
	case screenProgress:
		return a.updateProgress(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}
	switch a.screen {
	case screenResult:
		return a.updateResult(km)
	default:
		return a.updateMenu(km)
	}
}

func (a App) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Up):
		a.menu.Move(-1)
		a.message = ""
	case key.Matches(msg, a.keys.Down):
		a.menu.Move(1)
		a.message = ""
	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	case key.Matches(msg, a.keys.Progress):
		a.back = a.screen
		a.screen = screenProgress
		a.table = newProgressTable(a.opts.Store, a.height)
	case key.Matches(msg, a.keys.Theme):
		a.back = a.screen
		a.screen = screenTheme
		a.menu = themeMenu(a.opts.Store)
	case key.Matches(msg, a.keys.Back):
		switch a.screen {
		case screenMode:
			a.showDifficulties()
		case screenTheme:
			a.restore()
		}
	case key.Matches(msg, a.keys.Select):
		return a.selectItem()
	}
	return a, nil
}

func (a App) selectItem() (tea.Model, tea.Cmd) {
	item, ok := a.menu.Current()
	if !ok {
		return a, nil
	}
	if item.Locked {
		a.message = item.Title + " is locked"
		return a, nil
	}

	switch a.screen {
	case screenDifficulty:
		a.difficulty = catalog.Difficulty(item.ID)
		a.showModes()
	case screenMode:
		if err := a.startGame(catalog.Mode(item.ID), 0); err != nil {
			a.message = err.Error()
			return a, nil
		}
		return a, a.game.Init()
	case screenTheme:
		if err := a.opts.Store.SetTheme(catalog.Theme(item.ID)); err != nil {
			a.message = err.Error()
			return a, nil
		}
		a.menu = themeMenu(a.opts.Store)
		a.message = "Theme set to " + item.Title
	}
	return a, nil
}

// restore returns from a side screen.
func (a *App) restore() {
	if a.back == screenMode {
		a.showModes()
		return
	}
	a.showDifficulties()
}

func (a App) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.game, cmd = a.game.Update(msg)

	switch {
	case a.game.Finished():
		res, _ := a.game.Result()
		a.result = res
		a.screen = screenResult
		return a, nil
	case a.game.Exited():
		a.showModes()
		return a, nil
	}
	return a, cmd
}

func (a App) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Select):
		level := a.level
		if a.result.Success {
			level++
		}
		if err := a.startGame(a.mode, level); err != nil {
			a.message = err.Error()
			a.showModes()
			return a, nil
		}
		return a, a.game.Init()
	case key.Matches(msg, a.keys.Back):
		a.showModes()
	}
	return a, nil
}

func (a App) updateProgress(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, a.keys.Back) {
		a.restore()
		return a, nil
	}
	var cmd tea.Cmd
	a.table, cmd = a.table.Update(msg)
	return a, cmd
}

// View renders the current screen.
func (a App) View() string {
	if a.quitting {
		return ""
	}

	switch a.screen {
	case screenGame:
		return a.game.View()
	case screenResult:
		accent := catalog.PaletteFor(a.opts.Store.Theme()).Accent
		return resultView(a.result, accent, a.width)
	case screenProgress:
		return progressView(a.opts.Store, a.table, a.opts.Profile, a.width) + "\n" + a.footer()
	}

	var b strings.Builder
	b.WriteString(a.menu.View(a.width))
	if a.message != "" {
		b.WriteString("\n")
		b.WriteString(centerText(lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Render(a.message), a.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(a.footer())
	return b.String()
}

func (a App) footer() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return centerText(style.Render(a.help.View(menuKeys{a.keys})), a.width)
}

// Run starts the Bubble Tea program on the local terminal.
func Run(opts Options) error {
	app, err := NewApp(opts)
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover and drag need motion events
	)
	_, err = p.Run()
	return err
}
