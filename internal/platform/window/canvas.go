package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/borno/internal/core"
)

// imageCanvas draws world shapes onto an ebiten image whose pixels map
// one-to-one onto the world view.
type imageCanvas struct {
	dst  *ebiten.Image
	view core.Bounds
}

// toPixel converts a world point to image coordinates.
func toPixel(view core.Bounds, p core.Vec2) (float32, float32) {
	return float32(p.X - view.Min.X), float32(p.Y - view.Min.Y)
}

func (c imageCanvas) FillCircle(center core.Vec2, radius float64, col core.Color) {
	x, y := toPixel(c.view, center)
	vector.FillCircle(c.dst, x, y, float32(radius), col.RGBA(), true)
}

func (c imageCanvas) FillRect(b core.Bounds, col core.Color) {
	x, y := toPixel(c.view, b.Min)
	vector.FillRect(c.dst, x, y, float32(b.Width()), float32(b.Height()), col.RGBA(), false)
}

// Text uses the built-in debug font, which only draws white.
func (c imageCanvas) Text(pos core.Vec2, text string, _ core.Color) {
	x, y := toPixel(c.view, pos)
	ebitenutil.DebugPrintAt(c.dst, text, int(x), int(y))
}

var _ core.Canvas = imageCanvas{}
