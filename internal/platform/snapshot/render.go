// Package snapshot renders a session snapshot to a PNG image.
package snapshot

import (
	"fmt"
	"image"
	"io"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/vovakirdan/kidsquids/internal/entity"
	"github.com/vovakirdan/kidsquids/internal/session"
)

const (
	hudHeight   = 40.0
	hudFontSize = 18.0
	faceColor   = "#2D3436"
)

// Options control the rendered image.
type Options struct {
	Scale float64 // Pixels per canvas unit (default 1)
	HUD   bool    // Draw the score bar above the canvas
}

// Renderer draws snapshots. The font face is parsed once and reused.
type Renderer struct {
	face font.Face
}

// NewRenderer parses the embedded monospace font.
func NewRenderer() (*Renderer, error) {
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("snapshot: failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    hudFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return &Renderer{face: face}, nil
}

// Render draws snap into a new image.
func (r *Renderer) Render(snap session.Snapshot, opts Options) image.Image {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	top := 0.0
	if opts.HUD {
		top = hudHeight
	}

	w := int(math.Ceil(snap.Canvas.W * scale))
	h := int(math.Ceil((snap.Canvas.H + top) * scale))
	dc := gg.NewContext(max(w, 1), max(h, 1))
	dc.Scale(scale, scale)

	bg := snap.Palette.Background
	if bg == "" {
		bg = "#FFFFFF"
	}
	dc.SetHexColor(bg)
	dc.Clear()

	if opts.HUD {
		r.drawHUD(dc, snap)
	}

	dc.Push()
	dc.Translate(0, top)
	for _, v := range snap.Targets {
		drawShape(dc, v)
	}
	for _, v := range snap.Shapes {
		drawShape(dc, v)
	}
	for _, c := range snap.Confetti {
		drawConfetti(dc, c)
	}
	dc.Pop()

	return dc.Image()
}

// Encode renders snap and writes it to w as PNG.
func (r *Renderer) Encode(w io.Writer, snap session.Snapshot, opts Options) error {
	dc := gg.NewContextForImage(r.Render(snap, opts))
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("snapshot: encode png: %w", err)
	}
	return nil
}

// SavePNG renders snap to the file at path.
func (r *Renderer) SavePNG(path string, snap session.Snapshot, opts Options) error {
	dc := gg.NewContextForImage(r.Render(snap, opts))
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("snapshot: save %s: %w", path, err)
	}
	return nil
}

func (r *Renderer) drawHUD(dc *gg.Context, snap session.Snapshot) {
	accent := snap.Palette.Accent
	if accent == "" {
		accent = faceColor
	}
	dc.SetHexColor(accent)
	dc.DrawRectangle(0, 0, snap.Canvas.W, hudHeight)
	dc.Fill()

	dc.SetFontFace(r.face)
	dc.SetHexColor("#FFFFFF")
	dc.DrawStringAnchored(HUDLine(snap), 12, hudHeight/2, 0, 0.35)
}

// HUDLine formats the score bar.
func HUDLine(snap session.Snapshot) string {
	parts := []string{
		fmt.Sprintf("%s %s", snap.Mode, snap.Difficulty),
		fmt.Sprintf("Level %d", snap.Level),
		fmt.Sprintf("Score %d", snap.Score),
		fmt.Sprintf("%d/%d", snap.Completed, snap.Goal),
	}
	if snap.TimeLimited {
		parts = append(parts, fmt.Sprintf("Time %ds", snap.TimeRemaining))
	}
	return strings.Join(parts, "   ")
}

// withAlpha appends an alpha byte to a #RRGGBB color.
func withAlpha(hex string, alpha float64) string {
	a := int(math.Round(math.Max(0, math.Min(1, alpha)) * 255))
	return fmt.Sprintf("%s%02X", strings.TrimPrefix(hex, "#"), a)
}

func drawShape(dc *gg.Context, v session.ShapeView) {
	r := v.Size * v.Scale
	if r <= 0 || v.Alpha <= 0 {
		return
	}

	dc.Push()
	dc.Translate(v.Pos.X, v.Pos.Y)
	dc.Rotate(v.Rotation)

	shapePath(dc, v.Type, r)
	dc.SetHexColor(withAlpha(v.Color, v.Alpha))
	dc.FillPreserve()
	if v.IsTarget && !v.Matched {
		dc.SetHexColor(withAlpha(v.Color, 1))
		dc.SetDash(6, 4)
		dc.SetLineWidth(2)
		dc.Stroke()
		dc.SetDash()
	} else {
		dc.ClearPath()
	}
	if v.Hovered {
		shapePath(dc, v.Type, r+4)
		dc.SetHexColor(withAlpha("#FFFFFF", 0.8*v.Alpha))
		dc.SetLineWidth(3)
		dc.Stroke()
	}

	if !v.IsTarget || v.Matched {
		drawFace(dc, v, r)
	}
	dc.Pop()
}

// shapePath builds the outline of a shape of radius r centered at the origin.
func shapePath(dc *gg.Context, t entity.ShapeType, r float64) {
	switch t {
	case entity.Square:
		dc.DrawRoundedRectangle(-r*0.85, -r*0.85, r*1.7, r*1.7, r*0.15)
	case entity.Triangle:
		dc.DrawRegularPolygon(3, 0, 0, r, 0)
	case entity.Star:
		for i := 0; i < 10; i++ {
			rr := r
			if i%2 == 1 {
				rr = r * 0.45
			}
			a := float64(i)*math.Pi/5 - math.Pi/2
			dc.LineTo(math.Cos(a)*rr, math.Sin(a)*rr)
		}
		dc.ClosePath()
	case entity.Heart:
		for i := 0; i <= 48; i++ {
			a := float64(i) / 48 * 2 * math.Pi
			x := 16 * math.Pow(math.Sin(a), 3)
			y := -(13*math.Cos(a) - 5*math.Cos(2*a) - 2*math.Cos(3*a) - math.Cos(4*a))
			dc.LineTo(x*r/17, y*r/17)
		}
		dc.ClosePath()
	case entity.Hexagon:
		dc.DrawRegularPolygon(6, 0, 0, r, 0)
	case entity.Diamond:
		dc.DrawRegularPolygon(4, 0, 0, r, 0)
	case entity.Oval:
		dc.DrawEllipse(0, 0, r, r*0.7)
	default:
		dc.DrawCircle(0, 0, r)
	}
}

func drawFace(dc *gg.Context, v session.ShapeView, r float64) {
	ink := withAlpha(faceColor, v.Alpha)
	eyeX, eyeY := r*0.3, -r*0.15
	eyeR := math.Max(r*0.1, 1.5)

	dc.SetHexColor(ink)
	dc.SetLineWidth(math.Max(r*0.06, 1))

	switch {
	case v.Expression == entity.Sleeping || v.Blinking:
		for _, x := range []float64{-eyeX, eyeX} {
			dc.DrawLine(x-eyeR, eyeY, x+eyeR, eyeY)
		}
		dc.Stroke()
	case v.Expression == entity.Surprised:
		for _, x := range []float64{-eyeX, eyeX} {
			dc.DrawCircle(x, eyeY, eyeR*1.3)
		}
		dc.Fill()
	default:
		for _, x := range []float64{-eyeX, eyeX} {
			dc.DrawCircle(x, eyeY, eyeR)
		}
		dc.Fill()
	}

	switch v.Expression {
	case entity.Surprised:
		dc.DrawCircle(0, r*0.3, r*0.12)
		dc.Fill()
	case entity.Sleeping:
		dc.DrawLine(-r*0.15, r*0.3, r*0.15, r*0.3)
		dc.Stroke()
	default:
		dc.DrawArc(0, r*0.15, r*0.3, 0.15*math.Pi, 0.85*math.Pi)
		dc.Stroke()
	}
}

func drawConfetti(dc *gg.Context, c session.ConfettiView) {
	if c.Alpha <= 0 {
		return
	}
	dc.Push()
	dc.Translate(c.Pos.X, c.Pos.Y)
	dc.Rotate(c.Rotation)
	dc.SetHexColor(withAlpha(c.Color, c.Alpha))
	half := c.Size / 2
	switch c.Variant {
	case entity.ConfettiCircle:
		dc.DrawCircle(0, 0, half)
	case entity.ConfettiTriangle:
		dc.DrawRegularPolygon(3, 0, 0, half, 0)
	default:
		dc.DrawRectangle(-half, -half/2, c.Size, half)
	}
	dc.Fill()
	dc.Pop()
}
