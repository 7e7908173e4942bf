package tui

import (
	"math"

	"github.com/vovakirdan/kidsquids/internal/core"
	"github.com/vovakirdan/kidsquids/internal/entity"
	"github.com/vovakirdan/kidsquids/internal/session"
)

const faceInk = "#2D3436"

// Viewport maps the terminal cells of the play area onto the canvas.
type Viewport struct {
	Top    int // First terminal row of the play area
	Cols   int
	Rows   int
	Canvas core.Rect
}

func (v Viewport) cellW() float64 { return v.Canvas.W / float64(max(v.Cols, 1)) }
func (v Viewport) cellH() float64 { return v.Canvas.H / float64(max(v.Rows, 1)) }

// ToCanvas converts a terminal cell to the canvas point at its center. The
// second result is false for cells outside the play area.
func (v Viewport) ToCanvas(col, row int) (core.Vec, bool) {
	r := row - v.Top
	if col < 0 || col >= v.Cols || r < 0 || r >= v.Rows {
		return core.Vec{}, false
	}
	return core.V(
		v.Canvas.X+(float64(col)+0.5)*v.cellW(),
		v.Canvas.Y+(float64(r)+0.5)*v.cellH(),
	), true
}

// ClampToCanvas is ToCanvas for a cell pulled back to the nearest edge of
// the play area.
func (v Viewport) ClampToCanvas(col, row int) core.Vec {
	col = min(max(col, 0), max(v.Cols, 1)-1)
	row = min(max(row, v.Top), v.Top+max(v.Rows, 1)-1)
	p, _ := v.ToCanvas(col, row)
	return p
}

// ToCell converts a canvas point to a terminal cell.
func (v Viewport) ToCell(p core.Vec) (col, row int) {
	col = int(math.Floor((p.X - v.Canvas.X) / v.cellW()))
	row = int(math.Floor((p.Y-v.Canvas.Y)/v.cellH())) + v.Top
	return col, row
}

// DrawScene draws the canvas of a snapshot into scr, which covers exactly
// the play area of vp.
func DrawScene(scr *core.Screen, vp Viewport, snap session.Snapshot) {
	vp.Top = 0
	bg := snap.Palette.Background
	for row := 0; row < vp.Rows; row++ {
		for col := 0; col < vp.Cols; col++ {
			scr.SetCell(col, vp.Top+row, core.Cell{Rune: ' ', BG: bg})
		}
	}

	for _, s := range snap.Targets {
		drawShapeCells(scr, vp, s, bg)
	}
	for _, s := range snap.Shapes {
		drawShapeCells(scr, vp, s, bg)
	}
	for _, c := range snap.Confetti {
		if c.Alpha < 0.2 {
			continue
		}
		col, row := vp.ToCell(c.Pos)
		if row < vp.Top || row >= vp.Top+vp.Rows {
			continue
		}
		cell := scr.GetCell(col, row)
		cell.Rune = confettiRune(c.Variant)
		cell.FG = c.Color
		scr.SetCell(col, row, cell)
	}
}

func drawShapeCells(scr *core.Screen, vp Viewport, s session.ShapeView, bg string) {
	r := s.Size * s.Scale
	if r <= 0 {
		return
	}
	ghost := s.IsTarget && !s.Matched

	c0, r0 := vp.ToCell(core.V(s.Pos.X-r, s.Pos.Y-r))
	c1, r1 := vp.ToCell(core.V(s.Pos.X+r, s.Pos.Y+r))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			p, ok := vp.ToCanvas(col, row)
			if !ok || !insideShape(s.Type, p.Sub(s.Pos), r) {
				continue
			}
			switch {
			case ghost:
				scr.SetCell(col, row, core.Cell{Rune: '░', FG: s.Color, BG: bg})
			case s.Alpha < 0.5:
				scr.SetCell(col, row, core.Cell{Rune: '▒', FG: s.Color, BG: bg})
			case s.Hovered:
				scr.SetCell(col, row, core.Cell{Rune: '▓', FG: "#FFFFFF", BG: s.Color})
			default:
				scr.SetCell(col, row, core.Cell{Rune: ' ', BG: s.Color})
			}
		}
	}

	if ghost {
		col, row := vp.ToCell(s.Pos)
		scr.SetCell(col, row, core.Cell{Rune: s.Type.Glyph(), FG: s.Color, BG: bg})
		return
	}
	col, row := vp.ToCell(s.Pos)
	cell := scr.GetCell(col, row)
	cell.Rune = faceRune(s)
	cell.FG = faceInk
	scr.SetCell(col, row, cell)
}

// insideShape reports whether offset d from the center lies within a shape
// of radius r.
func insideShape(t entity.ShapeType, d core.Vec, r float64) bool {
	ax, ay := math.Abs(d.X), math.Abs(d.Y)
	switch t {
	case entity.Square:
		return ax <= r*0.85 && ay <= r*0.85
	case entity.Diamond:
		return ax+ay <= r
	case entity.Oval:
		return (d.X*d.X)/(r*r)+(d.Y*d.Y)/(0.49*r*r) <= 1
	case entity.Triangle:
		// Point up, base at r/2 below the center
		if d.Y > r/2 || d.Y < -r {
			return false
		}
		return ax <= (d.Y+r)/1.5*0.87
	default:
		return d.Len() <= r
	}
}

func faceRune(s session.ShapeView) rune {
	switch {
	case s.Expression == entity.Sleeping:
		return 'z'
	case s.Expression == entity.Surprised:
		return 'o'
	case s.Blinking:
		return '-'
	default:
		return '☺'
	}
}

func confettiRune(v entity.ConfettiVariant) rune {
	switch v {
	case entity.ConfettiCircle:
		return '•'
	case entity.ConfettiTriangle:
		return '▴'
	default:
		return '▪'
	}
}
