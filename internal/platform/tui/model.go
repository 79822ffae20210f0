package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/borno/internal/config"
	"github.com/vovakirdan/borno/internal/core"
	"github.com/vovakirdan/borno/internal/registry"
	"github.com/vovakirdan/borno/internal/storage"
)

// statusDuration is how long a status line (reload, screenshot) stays visible.
const statusDuration = 3 * time.Second

// Options configures a Model beyond the game itself.
type Options struct {
	Store      *storage.Store // Run history; nil disables saving
	Player     string         // Name stored with each run
	Reloads    <-chan string  // Stage files to reload, usually StageWatcher.Events
	Logger     *log.Logger    // Optional; the alt screen hides stderr while running
	HoldWindow time.Duration  // See DefaultHoldWindow
}

// reloader is implemented by games that can swap their stage script in place.
type reloader interface {
	Reload(stage config.Stage) error
}

// stageChangedMsg carries the path of an edited stage file.
type stageChangedMsg string

// Model is the Bubble Tea model for running one stage.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	canvas   *core.ScreenCanvas
	config   core.RuntimeConfig
	opts     Options
	keys     KeyMap
	held     *HeldKeys
	state    core.GameState
	lastTick time.Time
	fps      float64
	status   string
	statusAt time.Time
	best     int  // Stage high score from the store
	saved    bool // Whether the current run has been stored
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	if opts.Player == "" {
		opts.Player = "local"
	}
	m := Model{
		game:   game,
		screen: screen,
		canvas: core.NewScreenCanvas(screen, game.View()),
		config: cfg,
		opts:   opts,
		keys:   DefaultKeyMap(),
		held:   NewHeldKeys(opts.HoldWindow),
	}
	if opts.Store != nil {
		best, err := opts.Store.HighScore(game.ID())
		if err != nil && opts.Logger != nil {
			opts.Logger.Warn("failed to read high score", "stage", game.ID(), "err", err)
		}
		m.best = best
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.opts.Reloads != nil {
		cmds = append(cmds, waitForReload(m.opts.Reloads))
	}
	return tea.Batch(cmds...)
}

// waitForReload blocks on the reload channel and turns the next path into a message.
func waitForReload(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		path, ok := <-ch
		if !ok {
			return nil
		}
		return stageChangedMsg(path)
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case stageChangedMsg:
		return m.handleReload(string(msg))
	}

	return m, nil
}

// handleKey records key events; the simulation reads them on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	now := time.Now()
	for _, a := range m.keys.Actions(msg) {
		if a == core.ActionQuit {
			m.quitting = true
			m.saveRun()
			return m, tea.Quit
		}
		m.held.Press(a, now)
	}
	return m, nil
}

// handleResize processes window resize events. The world keeps its size;
// only the projection onto cells changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.FrameDelta())
	m.lastTick = now
	if dt > 0 {
		m.fps = 0.9*m.fps + 0.1/dt
	}

	wasOver := m.state.GameOver
	result := m.game.Step(dt, m.held.Frame(now))
	m.state = result.State

	if wasOver && !m.state.GameOver {
		m.saved = false
	}
	if m.state.GameOver && !m.saved {
		m.saveRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// handleReload reloads an edited stage file and keeps listening.
func (m Model) handleReload(path string) (tea.Model, tea.Cmd) {
	next := waitForReload(m.opts.Reloads)

	r, ok := m.game.(reloader)
	if !ok {
		return m, next
	}

	stage, err := config.LoadStageFile(path)
	if err == nil {
		err = r.Reload(stage)
	}
	if err != nil {
		m.setStatus("reload failed: " + err.Error())
		if m.opts.Logger != nil {
			m.opts.Logger.Error("stage reload failed", "path", path, "err", err)
		}
		return m, next
	}

	m.state = m.game.State()
	m.saved = false
	m.held.Release()
	m.setStatus("reloaded " + filepath.Base(path))
	if m.opts.Logger != nil {
		m.opts.Logger.Info("stage reloaded", "path", path, "stage", stage.ID)
	}
	return m, next
}

// saveRun stores the current run once. Runs without a score are not kept.
func (m *Model) saveRun() {
	if m.saved || m.opts.Store == nil {
		return
	}
	m.saved = true

	var err error
	score := m.game.State().Score
	if sr, ok := m.game.(registry.StatsReporter); ok {
		stats := sr.Stats()
		if stats.Score == 0 && !stats.Cleared {
			return
		}
		score = stats.Score
		_, err = m.opts.Store.SaveRun(storage.NewRunRecord(m.game.ID(), m.opts.Player, stats))
	} else if score > 0 {
		_, err = m.opts.Store.SaveScore(m.game.ID(), score)
	} else {
		return
	}
	if err != nil {
		if m.opts.Logger != nil {
			m.opts.Logger.Warn("failed to save run", "stage", m.game.ID(), "err", err)
		}
		return
	}
	m.best = max(m.best, score)
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusAt = time.Now()
}

// saveScreenshot writes the current frame as plain text under ~/.borno/screenshots.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".borno", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err == nil {
		m.setStatus("saved " + path)
	}
}

// draw renders the game and the front-end overlay into the screen buffer.
func (m *Model) draw() {
	m.screen.Clear()
	m.game.Render(m.canvas)

	fps := fmt.Sprintf("%3.0f fps", m.fps)
	m.screen.DrawTextColored(m.screen.Width()-len(fps)-1, 0, fps, core.ColorGray)
	if m.best > 0 {
		best := fmt.Sprintf("best %d", m.best)
		m.screen.DrawTextColored(m.screen.Width()-len(best)-1, 1, best, core.ColorGray)
	}

	if m.status != "" && time.Since(m.statusAt) < statusDuration {
		m.screen.DrawTextColored(1, m.screen.Height()-1, m.status, core.ColorYellow)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for one game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(NewModel(game, cfg, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
