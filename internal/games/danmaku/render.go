package danmaku

import (
	"fmt"

	"github.com/vovakirdan/borno/internal/core"
)

// HUD layout in world units, left of the playing field.
const (
	hudX       = 24.0
	hudY       = 40.0
	hudSpacing = 36.0
)

// Render draws the game. It never changes simulation state.
func (g *Game) Render(dst core.Canvas) {
	dst.FillRect(g.world.field, core.ColorLightGray)

	for i := range g.destructibles {
		d := &g.destructibles[i]
		color := d.Color
		if d.Flash() > 0.5 {
			color = core.ColorWhite
		}
		dst.FillCircle(d.Position(), d.Radius, color)
	}

	for i := range g.playerShots {
		p := &g.playerShots[i]
		dst.FillCircle(p.Position(), p.Radius, p.Color)
	}

	for i := range g.enemyShots {
		p := &g.enemyShots[i]
		dst.FillCircle(p.Position(), p.Radius, p.Color)
	}

	if !g.player.Blinking() {
		dst.FillCircle(g.player.Position, g.player.Radius(), g.world.player.color)
	}

	g.renderHUD(dst)
}

type hudRow struct {
	text  string
	color core.Color
}

func (g *Game) renderHUD(dst core.Canvas) {
	lines := []hudRow{
		{g.Title(), core.ColorBrightWhite},
		{fmt.Sprintf("Score %d", g.score), core.ColorYellow},
		{fmt.Sprintf("Kills %d", g.kills), core.ColorWhite},
	}
	if g.world.player.lives > 0 {
		lines = append(lines, hudRow{fmt.Sprintf("Lives %d", g.player.Lives), core.ColorPink})
	} else {
		lines = append(lines, hudRow{fmt.Sprintf("Hits %d", g.hits), core.ColorPink})
	}

	for i, l := range lines {
		dst.Text(core.V(hudX, hudY+float64(i)*hudSpacing), l.text, l.color)
	}

	center := g.world.field.Center()
	switch {
	case g.cleared:
		dst.Text(center, "STAGE CLEAR", core.ColorBrightGreen)
	case g.gameOver:
		dst.Text(center, "GAME OVER", core.ColorBrightRed)
	case g.paused:
		dst.Text(center, "PAUSED", core.ColorBrightYellow)
	}
}
