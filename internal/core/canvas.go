package core

import "math"

// Canvas is the drawing surface games render into.
// Coordinates are world units; implementations project them onto
// character cells or pixels. No call returns anything the game depends on.
type Canvas interface {
	FillCircle(center Vec2, radius float64, c Color)
	FillRect(b Bounds, c Color)
	Text(pos Vec2, text string, c Color)
}

// Glyphs used when projecting shapes onto character cells.
const (
	GlyphDot   = '•'
	GlyphDisc  = '●'
	GlyphSolid = '█'
)

// ScreenCanvas projects a world-space view onto a Screen buffer.
// Circles smaller than a cell are drawn as a single glyph so nothing
// disappears at low terminal resolutions.
type ScreenCanvas struct {
	screen *Screen
	view   Bounds
}

// NewScreenCanvas creates a canvas that maps view onto the whole screen.
func NewScreenCanvas(dst *Screen, view Bounds) *ScreenCanvas {
	return &ScreenCanvas{screen: dst, view: view}
}

// Screen returns the underlying buffer.
func (sc *ScreenCanvas) Screen() *Screen {
	return sc.screen
}

// scale returns world units per cell horizontally and vertically.
func (sc *ScreenCanvas) scale() (float64, float64) {
	w := float64(max(sc.screen.Width(), 1))
	h := float64(max(sc.screen.Height(), 1))
	return sc.view.Width() / w, sc.view.Height() / h
}

// Cell returns the cell coordinates containing the world point p.
func (sc *ScreenCanvas) Cell(p Vec2) (int, int) {
	ux, uy := sc.scale()
	x := int(math.Floor((p.X - sc.view.Min.X) / ux))
	y := int(math.Floor((p.Y - sc.view.Min.Y) / uy))
	return x, y
}

// cellCenter returns the world position of the center of cell (x, y).
func (sc *ScreenCanvas) cellCenter(x, y int) Vec2 {
	ux, uy := sc.scale()
	return V(sc.view.Min.X+(float64(x)+0.5)*ux, sc.view.Min.Y+(float64(y)+0.5)*uy)
}

// FillCircle marks every cell whose center lies inside the circle.
func (sc *ScreenCanvas) FillCircle(center Vec2, radius float64, c Color) {
	ux, uy := sc.scale()
	cx, cy := sc.Cell(center)

	if radius < ux/2 && radius < uy/2 {
		sc.screen.SetColored(cx, cy, GlyphDot, c)
		return
	}

	x0, y0 := sc.Cell(center.Sub(V(radius, radius)))
	x1, y1 := sc.Cell(center.Add(V(radius, radius)))
	drawn := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if sc.cellCenter(x, y).DistSqr(center) <= radius*radius {
				sc.screen.SetColored(x, y, GlyphSolid, c)
				drawn = true
			}
		}
	}
	if !drawn {
		sc.screen.SetColored(cx, cy, GlyphDisc, c)
	}
}

// FillRect clears the covered cells and outlines them in the given color.
// Terminals only color the foreground, so a solid fill would hide everything.
func (sc *ScreenCanvas) FillRect(b Bounds, c Color) {
	x0, y0 := sc.Cell(b.Min)
	x1, y1 := sc.Cell(b.Max)
	r := NewRect(x0, y0, x1-x0+1, y1-y0+1)
	sc.screen.DrawRectColored(r, ' ', c)
	sc.screen.DrawBoxColored(r, c)
}

// Text writes text starting at the cell containing pos.
func (sc *ScreenCanvas) Text(pos Vec2, text string, c Color) {
	x, y := sc.Cell(pos)
	sc.screen.DrawTextColored(x, y, text, c)
}

var _ Canvas = (*ScreenCanvas)(nil)
