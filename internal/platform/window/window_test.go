package window

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/borno/internal/core"
	"github.com/vovakirdan/borno/internal/storage"
)

// fakeKeys reports the given keys as down and just pressed.
func fakeKeys(down []ebiten.Key, pressed ...ebiten.Key) keyReader {
	return keyReader{
		down:        func(k ebiten.Key) bool { return contains(down, k) },
		justPressed: func(k ebiten.Key) bool { return contains(pressed, k) },
	}
}

// held builds a keyReader with only held keys.
func held(keys ...ebiten.Key) keyReader {
	return keyReader{
		down:        func(k ebiten.Key) bool { return contains(keys, k) },
		justPressed: func(ebiten.Key) bool { return false },
	}
}

func contains(keys []ebiten.Key, k ebiten.Key) bool {
	for _, key := range keys {
		if key == k {
			return true
		}
	}
	return false
}

func TestReadInput(t *testing.T) {
	tests := []struct {
		name string
		keys keyReader
		want []core.Action
	}{
		{"nothing", held(), nil},
		{"arrows", held(ebiten.KeyArrowLeft, ebiten.KeyArrowUp), []core.Action{core.ActionLeft, core.ActionUp}},
		{"wasd", held(ebiten.KeyD, ebiten.KeyS), []core.Action{core.ActionRight, core.ActionDown}},
		{"focus fire", held(ebiten.KeyShiftLeft, ebiten.KeyZ), []core.Action{core.ActionFocus, core.ActionFire}},
		{"held pause is not a press", held(ebiten.KeyP), nil},
		{"pause press", fakeKeys(nil, ebiten.KeyP), []core.Action{core.ActionPause}},
		{"restart press", fakeKeys(nil, ebiten.KeyR), []core.Action{core.ActionRestart}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := readInput(tt.keys)
			if len(got.Actions) != len(tt.want) {
				t.Fatalf("readInput() = %v, want %v", got.Actions, tt.want)
			}
			for _, a := range tt.want {
				if !got.Has(a) {
					t.Errorf("missing %s in %v", a, got.Actions)
				}
			}
		})
	}
}

func TestToPixel(t *testing.T) {
	view := core.NewBounds(100, 50, 640, 480)
	x, y := toPixel(view, core.V(110, 80))
	if x != 10 || y != 30 {
		t.Errorf("toPixel() = (%g, %g), want (10, 30)", x, y)
	}
}

// fakeGame ends the run on its second step.
type fakeGame struct {
	steps []float64
	state core.GameState
}

func (g *fakeGame) ID() string               { return "fake" }
func (g *fakeGame) Title() string            { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) {}
func (g *fakeGame) Render(core.Canvas)       {}
func (g *fakeGame) View() core.Bounds        { return core.NewBounds(0, 0, 320, 240) }
func (g *fakeGame) State() core.GameState    { return g.state }
func (g *fakeGame) Stats() core.RunStats     { return core.RunStats{Score: g.state.Score} }

func (g *fakeGame) Step(dt float64, _ core.InputFrame) core.StepResult {
	g.steps = append(g.steps, dt)
	if len(g.steps) == 2 {
		g.state = core.GameState{Score: 70, GameOver: true}
	}
	return core.StepResult{State: g.state}
}

func TestWindowUpdate(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	game := &fakeGame{}
	w := New(game, core.RuntimeConfig{TickRate: 50}, Options{Store: store})
	w.keys = held()

	for range 3 {
		if err := w.Update(); err != nil {
			t.Fatalf("Update() = %v", err)
		}
	}
	if len(game.steps) != 3 || game.steps[0] != 0.02 {
		t.Errorf("steps = %v, want three steps of 0.02", game.steps)
	}

	runs, err := store.RecentRuns("fake", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Score != 70 || runs[0].Player != "local" {
		t.Errorf("runs = %+v, want one run of 70 by local", runs)
	}

	if lw, lh := w.Layout(1920, 1080); lw != 320 || lh != 240 {
		t.Errorf("Layout() = %dx%d, want the view size", lw, lh)
	}
}

func TestWindowQuit(t *testing.T) {
	game := &fakeGame{}
	w := New(game, core.RuntimeConfig{}, Options{})
	w.keys = fakeKeys(nil, ebiten.KeyQ)

	if err := w.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update() = %v, want ebiten.Termination", err)
	}
	if len(game.steps) != 0 {
		t.Error("quit frame should not step the game")
	}
}
