// Package session runs one level attempt at a time: it sets up the level,
// spawns and animates shapes, reacts to pointer input, scores, and settles
// rewards with the progress store when the level ends.
//
// A Controller is driven from a single goroutine: the presentation layer
// calls Advance once per frame and HandlePointer for input, never
// concurrently.
package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/kidsquids/internal/catalog"
	"github.com/vovakirdan/kidsquids/internal/core"
	"github.com/vovakirdan/kidsquids/internal/entity"
	"github.com/vovakirdan/kidsquids/internal/progress"
	"github.com/vovakirdan/kidsquids/internal/sched"
	"github.com/vovakirdan/kidsquids/internal/unlock"
)

// ErrLocked is returned when starting a mode or difficulty the player has
// not unlocked.
var ErrLocked = errors.New("session: locked")

// Timings.
const (
	DoubleClickWindow = 400 * time.Millisecond
	popRemoveDelay    = 150 * time.Millisecond
	expireRemoveDelay = 200 * time.Millisecond
	catchRespawnDelay = 300 * time.Millisecond
	dragFinishDelay   = 500 * time.Millisecond
	burstInterval     = 200 * time.Millisecond
	successDelay      = 1500 * time.Millisecond
	failureDelay      = 500 * time.Millisecond
	countdownStep     = time.Second
)

// Layout and effect sizes.
const (
	spawnMargin       = 20  // Added to the shape size when padding spawns
	dragPadding       = 100 // Canvas padding in drag mode
	popConfetti       = 15
	matchConfetti     = 20
	celebrationBursts = 5
	celebrationSize   = 40
)

// ProgressStore is the slice of the progress store the controller uses.
type ProgressStore interface {
	AddCoins(n int) int
	AddStars(n int) int
	LevelProgress(d catalog.Difficulty, m catalog.Mode) progress.LevelProgress
	UpdateLevelProgress(d catalog.Difficulty, m catalog.Mode, level, stars, score int)
	IncrementStat(name string, amount int)
	IsDifficultyUnlocked(d catalog.Difficulty) bool
	IsModeUnlocked(m catalog.Mode) bool
	DrainUnlocks() []unlock.Unlock
	Theme() catalog.Theme
}

// Deps are the collaborators of a controller.
type Deps struct {
	Progress ProgressStore   // Required
	Recorder AttemptRecorder // Optional attempt history
	Levels   *catalog.Table  // Defaults to the embedded table
	Logger   *log.Logger     // Defaults to log.Default()
	Theme    catalog.Theme   // Overrides the player's selected theme
}

type pendingClick struct {
	id entity.ID
	at time.Duration
}

// Controller is the session state machine.
type Controller struct {
	deps   Deps
	cfg    core.RuntimeConfig
	rng    *rand.Rand
	logger *log.Logger
	sched  *sched.Scheduler

	// Lifetime of the current attempt; cancelling it drops every task.
	ctx    context.Context
	cancel context.CancelFunc
	// Gameplay tasks (spawns, expiries, countdown); cancelled when the
	// level ends.
	playCtx    context.Context
	playCancel context.CancelFunc

	state      State
	mode       catalog.Mode
	difficulty catalog.Difficulty
	level      catalog.LevelConfig
	palette    catalog.Palette
	sessionID  string

	score         int
	completed     int
	elapsed       time.Duration
	timeRemaining int
	finishing     bool // Goal reached, success pending

	shapes   *entity.Arena
	targets  *entity.Arena
	confetti []*entity.Confetti
	dragged  entity.ID
	pending  *pendingClick

	events    []Event
	result    Result
	hasResult bool
}

// New creates an idle controller.
func New(deps Deps, cfg core.RuntimeConfig) *Controller {
	if deps.Levels == nil {
		deps.Levels = catalog.Default()
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.Default()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if cfg.CanvasW <= 0 || cfg.CanvasH <= 0 {
		def := core.DefaultConfig()
		cfg.CanvasW, cfg.CanvasH = def.CanvasW, def.CanvasH
	}

	return &Controller{
		deps:   deps,
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
		sched:  sched.New(),
		state:  StateIdle,
	}
}

// State returns the lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Dragging reports whether a shape is held.
func (c *Controller) Dragging() bool {
	return c.dragged != 0
}

// Level returns the configuration of the current or last level.
func (c *Controller) Level() catalog.LevelConfig {
	return c.level
}

// Start begins a level. Any running attempt is abandoned first.
func (c *Controller) Start(mode catalog.Mode, difficulty catalog.Difficulty, level int) error {
	if !c.deps.Progress.IsDifficultyUnlocked(difficulty) {
		return fmt.Errorf("%w: difficulty %s", ErrLocked, difficulty)
	}
	if !c.deps.Progress.IsModeUnlocked(mode) {
		return fmt.Errorf("%w: mode %s", ErrLocked, mode)
	}
	if level < 1 {
		level = 1
	}
	cfg, err := c.deps.Levels.Lookup(mode, difficulty, level)
	if err != nil {
		return fmt.Errorf("session: start %s/%s level %d: %w", mode, difficulty, level, err)
	}

	c.stop()
	c.state = StateConfiguring

	c.mode = mode
	c.difficulty = difficulty
	c.level = cfg
	c.sessionID = uuid.NewString()
	theme := c.deps.Theme
	if theme == "" {
		theme = c.deps.Progress.Theme()
	}
	c.palette = catalog.PaletteFor(theme)

	c.score = 0
	c.completed = 0
	c.elapsed = 0
	c.timeRemaining = 0
	c.finishing = false
	c.shapes = entity.NewArena()
	c.targets = entity.NewArena()
	c.confetti = nil
	c.dragged = 0
	c.pending = nil
	c.hasResult = false
	c.result = Result{}

	c.sched.Reset()
	c.ctx, c.cancel = context.WithCancel(context.Background())
	c.playCtx, c.playCancel = context.WithCancel(c.ctx)

	switch mode {
	case catalog.ModeClick:
		c.spawnTimedShape(false)
	case catalog.ModeCatch:
		for i := 0; i < cfg.Shapes; i++ {
			c.spawnCatchShape()
		}
	case catalog.ModeDrag:
		c.setupDrag()
	case catalog.ModeDouble:
		c.spawnTimedShape(true)
	}

	if mode.TimeLimited() {
		c.timeRemaining = cfg.TimeLimit
		c.sched.Every(c.playCtx, countdownStep, c.countdown)
	}

	c.state = StateActive
	c.emit(Event{Kind: EventLevelStart})
	c.logger.Debug("level started", "mode", mode, "difficulty", difficulty, "level", level, "session", c.sessionID)
	return nil
}

// Advance moves the session forward by one frame of length dt.
func (c *Controller) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}

	switch c.state {
	case StateActive:
		c.elapsed += dt
		c.sched.Advance(dt)
		if c.state == StateActive {
			c.updateEntities(dt)
		}
		c.confetti = entity.UpdateConfetti(c.confetti, dt)
	case StateEnding:
		c.sched.Advance(dt)
		c.confetti = entity.UpdateConfetti(c.confetti, dt)
	}
}

func (c *Controller) updateEntities(dt time.Duration) {
	c.shapes.Each(func(s *entity.Shape) bool {
		s.Update(dt)
		if c.mode == catalog.ModeCatch {
			c.bounce(s)
		}
		return true
	})
	c.targets.Update(dt)
}

// bounce reflects a shape off the canvas edges, inset by its size.
func (c *Controller) bounce(s *entity.Shape) {
	minX, maxX := s.Size, c.cfg.CanvasW-s.Size
	minY, maxY := s.Size, c.cfg.CanvasH-s.Size

	if s.Pos.X < minX || s.Pos.X > maxX {
		s.Velocity.X = -s.Velocity.X
		s.Pos.X = clampAxis(s.Pos.X, minX, maxX)
	}
	if s.Pos.Y < minY || s.Pos.Y > maxY {
		s.Velocity.Y = -s.Velocity.Y
		s.Pos.Y = clampAxis(s.Pos.Y, minY, maxY)
	}
	s.Target = s.Pos
}

// clampAxis clamps v into [lo, hi], collapsing to the middle when the range
// is empty.
func clampAxis(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return core.ClampF(v, lo, hi)
}

// countdown runs once per game second in time-limited modes.
func (c *Controller) countdown() {
	if c.state != StateActive || c.finishing {
		return
	}
	c.timeRemaining--
	c.emit(Event{Kind: EventTick, Seconds: c.timeRemaining})
	if c.timeRemaining <= 0 {
		c.timeRemaining = 0
		c.endLevel(false)
	}
}

// HandlePointer dispatches a pointer event. It is ignored unless a level is
// active.
func (c *Controller) HandlePointer(ev core.PointerEvent) {
	if c.state != StateActive {
		return
	}

	switch ev.Gesture {
	case core.GestureMove:
		c.handleMove(ev.Pos)
	case core.GestureDown:
		if c.mode == catalog.ModeDrag {
			c.handleDragStart(ev.Pos)
		}
	case core.GestureUp:
		if c.mode == catalog.ModeDrag {
			c.handleDragEnd()
		}
	case core.GestureClick:
		c.deps.Progress.IncrementStat(progress.StatTotalClicks, 1)
		switch c.mode {
		case catalog.ModeClick:
			c.handleClick(ev.Pos)
		case catalog.ModeCatch:
			c.handleCatch(ev.Pos)
		case catalog.ModeDouble:
			c.handleDouble(ev.Pos)
		}
	}
}

func (c *Controller) handleMove(pos core.Vec) {
	c.shapes.Each(func(s *entity.Shape) bool {
		s.Hovered = s.Hittable() && s.ContainsPoint(pos)
		return true
	})

	if s := c.draggedShape(); s != nil {
		s.Place(pos)
	}
}

// Pause stops game time.
func (c *Controller) Pause() {
	if c.state != StateActive {
		return
	}
	c.state = StatePaused
	c.emit(Event{Kind: EventPaused})
}

// Resume restarts game time after Pause.
func (c *Controller) Resume() {
	if c.state != StatePaused {
		return
	}
	c.state = StateActive
	c.emit(Event{Kind: EventResumed})
}

// Exit abandons the attempt without a reward. An attempt that already ended
// has its result published right away.
func (c *Controller) Exit() {
	switch c.state {
	case StateIdle:
		return
	case StateEnding:
		c.cancel()
		c.finish()
		return
	}
	c.logger.Debug("level exited", "mode", c.mode, "session", c.sessionID)
	c.stop()
	c.emit(Event{Kind: EventExited})
}

// stop cancels every task and clears the scene.
func (c *Controller) stop() {
	if c.cancel != nil {
		c.cancel()
	}
	c.state = StateIdle
	c.dragged = 0
	c.pending = nil
	if c.shapes != nil {
		c.shapes.Clear()
	}
	if c.targets != nil {
		c.targets.Clear()
	}
	c.confetti = nil
}

// Resize changes the canvas size and pulls shapes back inside it.
func (c *Controller) Resize(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	c.cfg.CanvasW, c.cfg.CanvasH = w, h

	keepInside := func(s *entity.Shape) bool {
		x := clampAxis(s.Pos.X, s.Size, w-s.Size)
		y := clampAxis(s.Pos.Y, s.Size, h-s.Size)
		s.Place(core.V(x, y))
		return true
	}
	if c.shapes != nil {
		c.shapes.Each(keepInside)
	}
	if c.targets != nil {
		c.targets.Each(keepInside)
	}
}

// DrainEvents returns the events since the last call.
func (c *Controller) DrainEvents() []Event {
	out := c.events
	c.events = nil
	return out
}

func (c *Controller) emit(ev Event) {
	ev.Score = c.score
	c.events = append(c.events, ev)
}

// Result returns the result of the last finished attempt.
func (c *Controller) Result() (Result, bool) {
	return c.result, c.hasResult
}

// endLevel settles the attempt. It runs once per attempt.
func (c *Controller) endLevel(success bool) {
	if c.state != StateActive {
		return
	}
	c.state = StateEnding
	c.playCancel()
	if s := c.draggedShape(); s != nil {
		s.Lifted = false
	}
	c.dragged = 0
	c.pending = nil

	res := Result{
		SessionID:  c.sessionID,
		Mode:       c.mode,
		Difficulty: c.difficulty,
		Level:      c.level.Level,
		Success:    success,
		Score:      c.score,
		MaxScore:   c.level.MaxScore(),
		Duration:   c.elapsed,
	}

	store := c.deps.Progress
	if success {
		res.Stars = catalog.CalculateStars(c.score, res.MaxScore)
		res.Coins = c.level.Coins
		res.NewRecord = c.score > store.LevelProgress(c.difficulty, c.mode).BestScore

		store.AddCoins(res.Coins)
		store.AddStars(res.Stars)
		store.UpdateLevelProgress(c.difficulty, c.mode, c.level.Level+1, res.Stars, c.score)
		store.IncrementStat(progress.StatTotalGamesPlayed, 1)
		res.Unlocks = store.DrainUnlocks()
	}
	store.IncrementStat(progress.StatTotalTimePlayed, int(c.elapsed/time.Second))

	c.result = res
	c.record(res)

	if success {
		c.emit(Event{Kind: EventLevelComplete})
		for _, u := range res.Unlocks {
			c.emit(Event{Kind: EventUnlock, Unlock: u})
		}
		for i := 0; i < celebrationBursts; i++ {
			c.sched.After(c.ctx, time.Duration(i)*burstInterval, c.celebrate)
		}
		c.sched.After(c.ctx, successDelay, c.finish)
	} else {
		c.emit(Event{Kind: EventTimeUp})
		c.emit(Event{Kind: EventMiss})
		c.sched.After(c.ctx, failureDelay, c.finish)
	}

	c.logger.Info("level ended",
		"mode", c.mode,
		"difficulty", c.difficulty,
		"level", c.level.Level,
		"success", success,
		"score", c.score,
		"stars", res.Stars)
}

func (c *Controller) record(res Result) {
	if c.deps.Recorder == nil {
		return
	}
	err := c.deps.Recorder.RecordAttempt(AttemptData{
		SessionID:  res.SessionID,
		Mode:       res.Mode,
		Difficulty: res.Difficulty,
		Level:      res.Level,
		Score:      res.Score,
		Stars:      res.Stars,
		Coins:      res.Coins,
		Success:    res.Success,
		Duration:   res.Duration,
	})
	if err != nil {
		c.logger.Warn("failed to record attempt", "error", err)
	}
}

// celebrate drops a confetti burst from a random point above the canvas.
func (c *Controller) celebrate() {
	pos := core.V(c.rng.Float64()*c.cfg.CanvasW, -20)
	c.confetti = append(c.confetti, entity.NewBurst(c.rng, pos, celebrationSize, c.palette.Colors)...)
}

// finish publishes the result and returns to idle.
func (c *Controller) finish() {
	if c.state != StateEnding {
		return
	}
	c.cancel()
	c.state = StateIdle
	c.shapes.Clear()
	c.targets.Clear()
	c.hasResult = true
	c.emit(Event{Kind: EventResultReady})
}
