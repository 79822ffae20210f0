package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/borno/internal/core"
)

// heldBindings are read with IsKeyPressed every frame.
var heldBindings = map[core.Action][]ebiten.Key{
	core.ActionUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionFocus: {ebiten.KeyShiftLeft, ebiten.KeyShiftRight, ebiten.KeyX},
	core.ActionFire:  {ebiten.KeyZ, ebiten.KeySpace},
}

// pressedBindings only trigger on the frame the key goes down.
var pressedBindings = map[core.Action][]ebiten.Key{
	core.ActionPause:   {ebiten.KeyP, ebiten.KeyEscape},
	core.ActionRestart: {ebiten.KeyR},
	core.ActionQuit:    {ebiten.KeyQ},
}

// keyReader abstracts ebiten's key queries.
type keyReader struct {
	down        func(ebiten.Key) bool
	justPressed func(ebiten.Key) bool
}

// ebitenKeys reads the real keyboard.
var ebitenKeys = keyReader{
	down:        ebiten.IsKeyPressed,
	justPressed: inpututil.IsKeyJustPressed,
}

// readInput builds the input frame for the current tick.
func readInput(keys keyReader) core.InputFrame {
	frame := core.NewInputFrame()
	for action, bound := range heldBindings {
		for _, k := range bound {
			if keys.down(k) {
				frame.Set(action)
				break
			}
		}
	}
	for action, bound := range pressedBindings {
		for _, k := range bound {
			if keys.justPressed(k) {
				frame.Set(action)
				break
			}
		}
	}
	return frame
}
