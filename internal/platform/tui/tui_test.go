package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kidsquids/internal/catalog"
	"github.com/vovakirdan/kidsquids/internal/core"
	"github.com/vovakirdan/kidsquids/internal/entity"
	"github.com/vovakirdan/kidsquids/internal/progress"
	"github.com/vovakirdan/kidsquids/internal/session"
	"github.com/vovakirdan/kidsquids/internal/unlock"
)

func testOptions() Options {
	logger := log.New(io.Discard)
	return Options{
		Store:   progress.Open(progress.NewMapKV(), logger),
		Logger:  logger,
		Runtime: core.RuntimeConfig{CanvasW: 1000, CanvasH: 600, TickRate: 60, Seed: 5},
		Width:   100,
		Height:  30,
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	m, _ := a.Update(msg)
	next, ok := m.(App)
	if !ok {
		t.Fatalf("Update() returned %T", m)
	}
	return next
}

func TestViewportRoundTrip(t *testing.T) {
	vp := Viewport{Top: 1, Cols: 100, Rows: 30, Canvas: core.NewRect(0, 0, 1000, 600)}

	p, ok := vp.ToCanvas(0, 1)
	if !ok || p != core.V(5, 10) {
		t.Errorf("ToCanvas(0, 1) = %v, %v", p, ok)
	}
	if _, ok := vp.ToCanvas(0, 0); ok {
		t.Error("the HUD row is outside the play area")
	}
	if _, ok := vp.ToCanvas(100, 5); ok {
		t.Error("column past the edge is outside the play area")
	}

	for _, cell := range [][2]int{{0, 1}, {50, 15}, {99, 30}} {
		p, _ := vp.ToCanvas(cell[0], cell[1])
		col, row := vp.ToCell(p)
		if col != cell[0] || row != cell[1] {
			t.Errorf("round trip of %v = (%d, %d)", cell, col, row)
		}
	}
}

func TestDrawScene(t *testing.T) {
	vp := Viewport{Top: 1, Cols: 40, Rows: 12, Canvas: core.NewRect(0, 0, 400, 240)}
	scr := core.NewScreen(40, 12)
	snap := session.Snapshot{
		Palette: catalog.PaletteFor(catalog.ThemeDefault),
		Shapes: []session.ShapeView{{
			Pos: core.V(200, 120), Size: 40, Scale: 1, Alpha: 1,
			Color: "#FF6B6B", Type: entity.Circle, Expression: entity.Happy,
		}},
		Targets: []session.ShapeView{{
			Pos: core.V(60, 60), Size: 30, Scale: 1, Alpha: 0.3,
			Color: "#4ECDC4", Type: entity.Star, IsTarget: true,
		}},
	}
	DrawScene(scr, vp, snap)

	center := scr.GetCell(20, 6)
	if center.Rune != '☺' || center.BG != "#FF6B6B" {
		t.Errorf("shape center = %+v", center)
	}
	if edge := scr.GetCell(18, 6); edge.BG != "#FF6B6B" {
		t.Errorf("shape body = %+v", edge)
	}
	if corner := scr.GetCell(0, 11); corner.BG != snap.Palette.Background {
		t.Errorf("background = %+v", corner)
	}
	if ghost := scr.GetCell(6, 3); ghost.Rune != entity.Star.Glyph() {
		t.Errorf("ghost target center = %+v", ghost)
	}
}

func TestRenderScreenGroupsRuns(t *testing.T) {
	scr := core.NewScreen(4, 1)
	scr.SetCell(0, 0, core.Cell{Rune: 'a'})
	scr.SetCell(1, 0, core.Cell{Rune: 'b', FG: "#FF0000"})
	scr.SetCell(2, 0, core.Cell{Rune: 'c', FG: "#FF0000"})
	scr.SetCell(3, 0, core.Cell{Rune: 'd'})

	styles := make(styleCache)
	out := RenderScreen(scr, styles)
	if !strings.Contains(out, "a") || !strings.Contains(out, "bc") || !strings.Contains(out, "d") {
		t.Errorf("RenderScreen() = %q", out)
	}
	if len(styles) != 1 {
		t.Errorf("%d cached styles, expected one for the red run", len(styles))
	}
}

func TestMenuMoveClamps(t *testing.T) {
	m := NewMenuModel("t", "", []MenuItem{{ID: "a"}, {ID: "b"}})
	m.Move(-1)
	if cur, _ := m.Current(); cur.ID != "a" {
		t.Errorf("Current() = %s", cur.ID)
	}
	m.Move(5)
	if cur, _ := m.Current(); cur.ID != "b" {
		t.Errorf("Current() = %s", cur.ID)
	}
	if _, ok := NewMenuModel("t", "", nil).Current(); ok {
		t.Error("an empty menu has no current item")
	}
}

func TestLockedItemsShowHint(t *testing.T) {
	opts := testOptions()
	menu := modeMenu(opts.Store, catalog.DifficultyStarter)

	items := menu.Items()
	if items[0].Locked || !items[1].Locked {
		t.Fatalf("click should be open and catch locked: %+v", items)
	}
	menu.Move(1)
	if view := menu.View(100); !strings.Contains(view, "To unlock: reach Starter level 3 in Click") {
		t.Errorf("locked item view = %q", view)
	}
}

func TestAppFlow(t *testing.T) {
	a, err := NewApp(testOptions())
	if err != nil {
		t.Fatal(err)
	}
	if a.screen != screenDifficulty {
		t.Fatalf("app starts on screen %d", a.screen)
	}

	// Explorer is locked
	a = send(t, a, keyMsg("down"))
	a = send(t, a, keyMsg("enter"))
	if a.screen != screenDifficulty || !strings.Contains(a.message, "locked") {
		t.Fatalf("locked difficulty selected: screen %d, message %q", a.screen, a.message)
	}

	a = send(t, a, keyMsg("k"))
	a = send(t, a, keyMsg("enter"))
	if a.screen != screenMode || a.difficulty != catalog.DifficultyStarter {
		t.Fatalf("screen %d difficulty %s", a.screen, a.difficulty)
	}

	a = send(t, a, keyMsg("enter"))
	if a.screen != screenGame || a.mode != catalog.ModeClick || a.level != 1 {
		t.Fatalf("screen %d mode %s level %d", a.screen, a.mode, a.level)
	}
	if !strings.Contains(a.View(), "Score 0") {
		t.Error("game view should show the HUD")
	}

	a = send(t, a, keyMsg("esc"))
	if a.screen != screenMode {
		t.Errorf("esc in game should return to the mode menu, screen %d", a.screen)
	}
}

func TestAppPlaysLevelWithMouse(t *testing.T) {
	opts := testOptions()
	opts.Start = &StartRequest{Mode: catalog.ModeClick, Difficulty: catalog.DifficultyStarter}
	a, err := NewApp(opts)
	if err != nil {
		t.Fatal(err)
	}
	if a.screen != screenGame {
		t.Fatal("start request should open the game")
	}

	popped := 0
	for round := 0; round < 100 && popped < 3; round++ {
		for i := 0; i < 12; i++ {
			a = send(t, a, TickMsg{})
		}
		shapes := a.game.ctrl.Snapshot().Shapes
		if len(shapes) == 0 {
			continue
		}
		col, row := a.game.viewport.ToCell(shapes[0].Pos)
		a = send(t, a, tea.MouseMsg{X: col, Y: row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		a = send(t, a, tea.MouseMsg{X: col, Y: row, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
		popped = a.game.ctrl.Snapshot().Completed
	}
	if popped < 3 {
		t.Fatalf("popped %d shapes", popped)
	}

	for i := 0; i < 200 && a.screen == screenGame; i++ {
		a = send(t, a, TickMsg{})
	}
	if a.screen != screenResult {
		t.Fatalf("screen %d, expected the result screen", a.screen)
	}
	if !a.result.Success || a.result.Stars != 3 {
		t.Errorf("result = %+v", a.result)
	}
	if view := a.View(); !strings.Contains(view, "★★★") || !strings.Contains(view, "+2 coins") {
		t.Errorf("result view = %q", view)
	}

	a = send(t, a, keyMsg("enter"))
	if a.screen != screenGame || a.level != 2 {
		t.Errorf("enter after a win should start level 2, got screen %d level %d", a.screen, a.level)
	}
}

func TestAppDragReleasedOutsidePlayArea(t *testing.T) {
	opts := testOptions()
	opts.Store.UpdateLevelProgress(catalog.DifficultyStarter, catalog.ModeClick, 3, 0, 0)
	opts.Store.UpdateLevelProgress(catalog.DifficultyStarter, catalog.ModeCatch, 3, 0, 0)
	opts.Start = &StartRequest{Mode: catalog.ModeDrag, Difficulty: catalog.DifficultyStarter}
	a, err := NewApp(opts)
	if err != nil {
		t.Fatal(err)
	}
	a = send(t, a, TickMsg{})

	shapes := a.game.ctrl.Snapshot().Shapes
	if len(shapes) == 0 {
		t.Fatal("no shapes to drag")
	}
	col, row := a.game.viewport.ToCell(shapes[0].Pos)
	a = send(t, a, tea.MouseMsg{X: col, Y: row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !a.game.ctrl.Dragging() {
		t.Fatal("press on a shape should pick it up")
	}

	// Dragged over the HUD row and released there
	a = send(t, a, tea.MouseMsg{X: col, Y: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if !a.game.ctrl.Dragging() {
		t.Fatal("motion off the play area should not drop the shape")
	}
	a = send(t, a, tea.MouseMsg{X: col, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if a.game.ctrl.Dragging() {
		t.Fatal("release off the play area should drop the shape")
	}

	tests := []struct {
		name     string
		col, row int
	}{
		{"inside the play area", 50, 15},
		{"past the right edge", 150, 15},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a = send(t, a, tea.MouseMsg{X: tc.col, Y: tc.row, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
			p := a.game.viewport.ClampToCanvas(tc.col, tc.row)
			for _, s := range a.game.ctrl.Snapshot().Shapes {
				if s.Pos == p {
					t.Errorf("shape %d followed a pointer with no button held", s.ID)
				}
			}
		})
	}
}

func TestViewportClampToCanvas(t *testing.T) {
	vp := Viewport{Top: 1, Cols: 100, Rows: 28, Canvas: core.NewRect(0, 0, 1000, 560)}

	tests := []struct {
		name     string
		col, row int
		want     core.Vec
	}{
		{"inside", 50, 15, core.V(505, 290)},
		{"HUD row", 50, 0, core.V(505, 10)},
		{"below the play area", 50, 40, core.V(505, 550)},
		{"left of the play area", -3, 15, core.V(5, 290)},
		{"right of the play area", 120, 15, core.V(995, 290)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := vp.ClampToCanvas(tc.col, tc.row); got != tc.want {
				t.Errorf("ClampToCanvas(%d, %d) = %v, expected %v", tc.col, tc.row, got, tc.want)
			}
		})
	}
}

func TestAppStartLocked(t *testing.T) {
	opts := testOptions()
	opts.Start = &StartRequest{Mode: catalog.ModeDrag, Difficulty: catalog.DifficultyStarter}
	if _, err := NewApp(opts); err == nil {
		t.Error("starting a locked mode should fail")
	}
}

func TestAppProgressScreen(t *testing.T) {
	a, err := NewApp(testOptions())
	if err != nil {
		t.Fatal(err)
	}
	a = send(t, a, keyMsg("tab"))
	if a.screen != screenProgress {
		t.Fatalf("screen %d, expected progress", a.screen)
	}
	if view := a.View(); !strings.Contains(view, "PROGRESS") || !strings.Contains(view, "totalClicks") {
		t.Errorf("progress view = %q", view)
	}
	a = send(t, a, keyMsg("esc"))
	if a.screen != screenDifficulty {
		t.Errorf("esc should return to the difficulty menu, screen %d", a.screen)
	}
}

func TestAppThemeLocked(t *testing.T) {
	a, err := NewApp(testOptions())
	if err != nil {
		t.Fatal(err)
	}
	a = send(t, a, keyMsg("t"))
	a = send(t, a, keyMsg("down"))
	a = send(t, a, keyMsg("enter"))
	if a.opts.Store.Theme() != catalog.ThemeDefault {
		t.Error("a locked theme must not be selected")
	}
	if !strings.Contains(a.message, "locked") {
		t.Errorf("message = %q", a.message)
	}
}

func TestProgressRows(t *testing.T) {
	opts := testOptions()
	opts.Store.UpdateLevelProgress(catalog.DifficultyStarter, catalog.ModeClick, 3, 5, 40)

	rows := progressRows(opts.Store)
	if len(rows) != len(catalog.Difficulties)*len(catalog.Modes) {
		t.Fatalf("%d rows", len(rows))
	}
	first := rows[0]
	if first[2] != "3" || first[3] != "5" || first[4] != "40" || first[5] != "" {
		t.Errorf("first row = %v", first)
	}
	// Catch opened at click level 3, drag is still locked
	if rows[1][5] != "" || rows[2][5] != "locked" {
		t.Errorf("lock columns = %q %q", rows[1][5], rows[2][5])
	}
}

func TestResultViewFailure(t *testing.T) {
	view := resultView(session.Result{Success: false, Score: 10, MaxScore: 30}, "#6C5CE7", 80)
	if !strings.Contains(view, "Time's up!") || !strings.Contains(view, "try again") {
		t.Errorf("resultView() = %q", view)
	}
	if strings.Contains(view, "★") {
		t.Error("a failure shows no stars")
	}
}

func TestUnlockLabel(t *testing.T) {
	got := unlockLabel(unlock.Unlock{Category: unlock.CategoryTheme, Name: "neon"})
	if got != "New theme: neon" {
		t.Errorf("unlockLabel() = %q", got)
	}
}
