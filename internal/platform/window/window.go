// Package window runs a stage in a desktop window through Ebiten.
// Ebiten owns the frame loop; the stage advances by one fixed tick per Update.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/borno/internal/config"
	"github.com/vovakirdan/borno/internal/core"
	"github.com/vovakirdan/borno/internal/registry"
	"github.com/vovakirdan/borno/internal/storage"
)

var background = color.RGBA{24, 24, 32, 255}

// Options configures a window run.
type Options struct {
	Store   *storage.Store // Run history; nil disables saving
	Player  string
	Reloads <-chan string // Stage files to reload
	Logger  *log.Logger   // Optional
}

// reloader is implemented by games that can swap their stage script in place.
type reloader interface {
	Reload(stage config.Stage) error
}

// Window adapts a registry.Game to ebiten.Game.
type Window struct {
	game   registry.Game
	config core.RuntimeConfig
	opts   Options
	keys   keyReader
	state  core.GameState
	saved  bool
	status string
}

// New creates a window front-end for game.
func New(game registry.Game, cfg core.RuntimeConfig, opts Options) *Window {
	if opts.Player == "" {
		opts.Player = "local"
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	return &Window{
		game:   game,
		config: cfg,
		opts:   opts,
		keys:   ebitenKeys,
	}
}

// Update advances the stage by one tick.
func (w *Window) Update() error {
	w.pollReload()

	in := readInput(w.keys)
	if in.Has(core.ActionQuit) {
		w.saveRun()
		return ebiten.Termination
	}

	wasOver := w.state.GameOver
	w.state = w.game.Step(w.config.FrameDelta(), in).State

	if wasOver && !w.state.GameOver {
		w.saved = false
	}
	if w.state.GameOver && !w.saved {
		w.saveRun()
	}
	return nil
}

// pollReload applies at most one pending stage reload without blocking.
func (w *Window) pollReload() {
	if w.opts.Reloads == nil {
		return
	}
	var path string
	select {
	case p, ok := <-w.opts.Reloads:
		if !ok {
			w.opts.Reloads = nil
			return
		}
		path = p
	default:
		return
	}

	r, ok := w.game.(reloader)
	if !ok {
		return
	}
	stage, err := config.LoadStageFile(path)
	if err == nil {
		err = r.Reload(stage)
	}
	if err != nil {
		w.status = "reload failed: " + err.Error()
		w.logf(log.ErrorLevel, "stage reload failed", "path", path, "err", err)
		return
	}
	w.state = w.game.State()
	w.saved = false
	w.status = "reloaded " + filepath.Base(path)
	w.logf(log.InfoLevel, "stage reloaded", "path", path, "stage", stage.ID)
}

// Draw renders the stage and the frame counter.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	w.game.Render(imageCanvas{dst: screen, view: w.game.View()})

	bounds := screen.Bounds()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.0f fps", ebiten.ActualFPS()), bounds.Dx()-64, 4)
	if w.status != "" {
		ebitenutil.DebugPrintAt(screen, w.status, 8, bounds.Dy()-20)
	}
}

// Layout keeps the logical screen equal to the world view; ebiten scales
// it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	v := w.game.View()
	return int(v.Width()), int(v.Height())
}

// saveRun stores the current run once.
func (w *Window) saveRun() {
	if w.saved || w.opts.Store == nil {
		return
	}
	w.saved = true

	sr, ok := w.game.(registry.StatsReporter)
	if !ok {
		return
	}
	stats := sr.Stats()
	if stats.Score == 0 && !stats.Cleared {
		return
	}
	if _, err := w.opts.Store.SaveRun(storage.NewRunRecord(w.game.ID(), w.opts.Player, stats)); err != nil {
		w.logf(log.WarnLevel, "failed to save run", "stage", w.game.ID(), "err", err)
		return
	}
	w.logf(log.InfoLevel, "run saved", "stage", w.game.ID(), "score", stats.Score, "cleared", stats.Cleared)
}

func (w *Window) logf(level log.Level, msg string, keyvals ...any) {
	if w.opts.Logger != nil {
		w.opts.Logger.Log(level, msg, keyvals...)
	}
}

// Run opens a window and plays game until it is closed or Q is pressed.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	w := New(game, cfg, opts)
	game.Reset(w.config)

	v := game.View()
	ebiten.SetWindowSize(int(v.Width()), int(v.Height()))
	ebiten.SetWindowTitle("borno - " + game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.config.TickRate)

	w.logf(log.InfoLevel, "window opened", "stage", game.ID(), "tps", w.config.TickRate)
	err := ebiten.RunGame(w)
	w.saveRun()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
