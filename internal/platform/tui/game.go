package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kidsquids/internal/core"
	"github.com/vovakirdan/kidsquids/internal/platform/snapshot"
	"github.com/vovakirdan/kidsquids/internal/session"
)

const (
	feedbackTime = time.Second
	statusTime   = 3 * time.Second
	cellAspect   = 2.0 // Terminal cells are about twice as tall as wide
)

// GameModel runs one session controller in the terminal.
type GameModel struct {
	ctrl     *session.Controller
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	screen   *core.Screen
	styles   styleCache
	clicks   *core.ClickTracker
	viewport Viewport
	width    int
	height   int

	renderer *snapshot.Renderer
	shotDir  string
	logger   *log.Logger

	feedback     string
	feedbackLeft time.Duration
	status       string
	statusLeft   time.Duration

	finished bool
	exited   bool
}

// NewGameModel wraps a started controller.
func NewGameModel(ctrl *session.Controller, cfg core.RuntimeConfig, width, height int, renderer *snapshot.Renderer, shotDir string, logger *log.Logger) GameModel {
	m := GameModel{
		ctrl:     ctrl,
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		styles:   make(styleCache),
		renderer: renderer,
		shotDir:  shotDir,
		logger:   logger,
	}
	m.resize(width, height)
	return m
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (GameModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (GameModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Pause):
		if m.ctrl.State() == session.StatePaused {
			m.ctrl.Resume()
		} else {
			m.ctrl.Pause()
		}
	case key.Matches(msg, m.keys.Back):
		// Exiting during the celebration publishes the result
		m.ctrl.Exit()
		m.drainEvents()
		if !m.finished {
			m.exited = true
		}
	case key.Matches(msg, m.keys.Shot):
		m.saveSnapshot()
	}
	return m, nil
}

// handleMouse translates terminal mouse events into canvas pointer events.
func (m *GameModel) handleMouse(msg tea.MouseMsg) {
	pos, ok := m.viewport.ToCanvas(msg.X, msg.Y)
	if !ok {
		// A held shape follows the pointer to the edge and is dropped there.
		held := m.ctrl.Dragging()
		if msg.Action != tea.MouseActionRelease && (msg.Action != tea.MouseActionMotion || !held) {
			return
		}
		pos = m.viewport.ClampToCanvas(msg.X, msg.Y)
	}

	var ev core.PointerEvent
	switch {
	case msg.Action == tea.MouseActionMotion:
		ev = core.PointerEvent{Gesture: core.GestureMove, Pos: pos}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		ev = core.PointerEvent{Gesture: core.GestureDown, Pos: pos}
	case msg.Action == tea.MouseActionRelease:
		ev = core.PointerEvent{Gesture: core.GestureUp, Pos: pos}
	default:
		return
	}

	for _, e := range m.clicks.Feed(ev) {
		m.ctrl.HandlePointer(e)
	}
}

func (m GameModel) handleTick() (GameModel, tea.Cmd) {
	dt := m.config.FrameDuration()
	m.ctrl.Advance(dt)
	m.drainEvents()

	m.feedbackLeft -= dt
	if m.feedbackLeft <= 0 {
		m.feedback = ""
	}
	m.statusLeft -= dt
	if m.statusLeft <= 0 {
		m.status = ""
	}

	if m.finished || m.exited {
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

func (m *GameModel) drainEvents() {
	for _, ev := range m.ctrl.DrainEvents() {
		switch ev.Kind {
		case session.EventFeedback:
			m.feedback = ev.Word + "!"
			m.feedbackLeft = feedbackTime
		case session.EventTimeUp:
			m.feedback = "Time's up!"
			m.feedbackLeft = feedbackTime
		case session.EventResultReady:
			m.finished = true
		}
	}
}

// resize lays out the play area and keeps the canvas aspect matched to it.
func (m *GameModel) resize(width, height int) {
	m.width, m.height = max(width, 10), max(height, 5)
	m.help.Width = m.width
	rows := m.height - 2
	if m.screen == nil {
		m.screen = core.NewScreen(m.width, rows)
	} else {
		m.screen.Resize(m.width, rows)
	}

	canvasW := m.config.CanvasW
	canvasH := canvasW * float64(rows) * cellAspect / float64(m.width)
	m.config.CanvasH = canvasH
	m.ctrl.Resize(canvasW, canvasH)

	m.viewport = Viewport{Top: 1, Cols: m.width, Rows: rows, Canvas: core.NewRect(0, 0, canvasW, canvasH)}
	m.clicks = core.NewClickTracker(max(m.viewport.cellW(), m.viewport.cellH()))
}

// saveSnapshot renders the current frame to a PNG in the snapshot directory.
func (m *GameModel) saveSnapshot() {
	if m.renderer == nil {
		return
	}
	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("cannot create snapshot directory", "error", err)
		return
	}
	snap := m.ctrl.Snapshot()
	name := fmt.Sprintf("%s_%s.png", snap.Mode, time.Now().Format("20060102_150405"))
	path := filepath.Join(m.shotDir, name)
	if err := m.renderer.SavePNG(path, snap, snapshot.Options{HUD: true}); err != nil {
		m.logger.Warn("snapshot failed", "error", err)
		return
	}
	m.status = "saved " + path
	m.statusLeft = statusTime
	m.logger.Info("snapshot saved", "path", path)
}

// Finished reports whether the attempt produced a result.
func (m GameModel) Finished() bool {
	return m.finished
}

// Exited reports whether the player left without a result.
func (m GameModel) Exited() bool {
	return m.exited
}

// View renders the HUD, the play area and the key help.
func (m GameModel) View() string {
	snap := m.ctrl.Snapshot()

	m.screen.Clear()
	DrawScene(m.screen, m.viewport, snap)

	hud := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(snap.Palette.Accent)).
		Width(m.width)
	line := snapshot.HUDLine(snap)
	if m.feedback != "" {
		line += "   " + m.feedback
	}
	if snap.State == session.StatePaused {
		line += "   PAUSED"
	}

	var b strings.Builder
	b.WriteString(hud.Render(line))
	b.WriteString("\n")
	b.WriteString(RenderScreen(m.screen, m.styles))
	b.WriteString("\n")

	footer := m.help.View(gameKeys{m.keys})
	if m.status != "" {
		footer = m.status
	} else if snap.Hint != "" {
		footer = snap.Hint + "   " + footer
	}
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(footer))
	return b.String()
}

// Result returns the result of the finished attempt.
func (m GameModel) Result() (session.Result, bool) {
	return m.ctrl.Result()
}

// Abort exits a running attempt without a reward.
func (m GameModel) Abort() {
	m.ctrl.Exit()
}
