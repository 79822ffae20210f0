package danmaku

import (
	"fmt"

	"github.com/vovakirdan/borno/internal/config"
	"github.com/vovakirdan/borno/internal/core"
	"github.com/vovakirdan/borno/internal/registry"
)

// maxFrameDelta caps a single update so a stalled front-end cannot
// teleport entities through each other.
const maxFrameDelta = 0.1

// tuningPath stores the custom tuning path set via CLI.
var tuningPath string

// SetTuningPath sets the custom tuning file used by registered stages.
func SetTuningPath(path string) {
	tuningPath = path
}

// Game runs one stage script. It implements registry.Game.
type Game struct {
	stage  config.Stage
	tuning config.Tuning
	world  world
	script []SpawnEntry
	err    error

	player        Player
	destructibles []Destructible
	playerShots   []Projectile
	enemyShots    []Projectile
	emitters      *EmitterArena
	queue         *SpawnQueue

	score    int
	kills    int
	hits     int
	elapsed  float64
	gameOver bool
	cleared  bool
	paused   bool

	runtime core.RuntimeConfig
}

// New creates a game for a stage with the given tuning. The stage and
// tuning are expected to be validated; conversion errors are returned.
func New(stage config.Stage, tuning config.Tuning) (*Game, error) {
	g := &Game{emitters: NewEmitterArena()}
	if err := g.load(stage, tuning); err != nil {
		return nil, err
	}
	g.Reset(core.DefaultConfig())
	return g, nil
}

// NewFromID loads a stage by ID and the tuning set with SetTuningPath.
// Load failures leave an empty stage and are reported by Err.
func NewFromID(id string) *Game {
	g := &Game{emitters: NewEmitterArena()}

	tuning, err := config.LoadTuning(tuningPath)
	if err != nil {
		g.err = err
		tuning = config.DefaultTuning()
	}

	stage, serr := config.LoadStage(id)
	if serr != nil {
		if g.err == nil {
			g.err = serr
		}
		stage = config.Stage{ID: id, Name: id}
	}

	if err := g.load(stage, tuning); err != nil && g.err == nil {
		g.err = err
	}
	g.Reset(core.DefaultConfig())
	return g
}

func (g *Game) load(stage config.Stage, tuning config.Tuning) error {
	w, err := newWorld(tuning)
	if err != nil {
		return err
	}
	script, err := w.entries(stage)
	if err != nil {
		return err
	}
	g.stage = stage
	g.tuning = tuning
	g.world = w
	g.script = script
	return nil
}

// Err returns the error hit while loading the stage, if any.
func (g *Game) Err() error {
	return g.err
}

// Reload swaps in a new stage script and restarts the run.
func (g *Game) Reload(stage config.Stage) error {
	if err := g.load(stage, g.tuning); err != nil {
		return fmt.Errorf("danmaku: reload %q: %w", stage.ID, err)
	}
	g.err = nil
	g.Reset(g.runtime)
	return nil
}

// ID returns the stage ID.
func (g *Game) ID() string {
	return g.stage.ID
}

// Title returns the stage name.
func (g *Game) Title() string {
	if g.stage.Name != "" {
		return g.stage.Name
	}
	return g.stage.ID
}

// View returns the world rectangle the game draws into.
func (g *Game) View() core.Bounds {
	return g.world.screen
}

// Reset restarts the stage from its first wave.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	g.player = newPlayer(g.world.start, g.world.player, g.world.field)
	g.destructibles = g.destructibles[:0]
	g.playerShots = g.playerShots[:0]
	g.enemyShots = g.enemyShots[:0]
	g.emitters.Clear()
	g.queue = NewSpawnQueue(g.script)

	g.score = 0
	g.kills = 0
	g.hits = 0
	g.elapsed = 0
	g.gameOver = false
	g.cleared = false
	g.paused = false
}

// Step handles pause and restart, then advances the simulation by dt.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}
	return g.Update(dt, in)
}

// Update advances the simulation by exactly dt. The order of the phases
// is part of the game's observable behavior.
func (g *Game) Update(dt float64, in core.InputFrame) core.StepResult {
	var res core.StepResult
	if dt < 0 {
		dt = 0
	}

	// Scripted spawns.
	for _, spec := range g.queue.Update(dt) {
		g.spawn(spec)
	}

	// Player shots hit before anything moves; first destructible wins.
	res.Destroyed = g.resolvePlayerShots()

	g.playerShots = append(g.playerShots, g.player.Update(dt, in)...)

	target := g.player.Position
	g.emitters.Each(func(_ EmitterHandle, e *Emitter) {
		g.enemyShots = append(g.enemyShots, e.Update(dt, target)...)
	})

	g.playerShots = sweepProjectiles(g.playerShots)
	g.destructibles = sweepDestructibles(g.destructibles)
	for i := range g.playerShots {
		if g.playerShots[i].Update(dt, g.world.kill) {
			g.playerShots[i].dead = true
		}
	}
	g.playerShots = sweepProjectiles(g.playerShots)

	// Enemy shots move first, then test the player.
	for i := range g.enemyShots {
		p := &g.enemyShots[i]
		if p.Update(dt, g.world.kill) {
			p.dead = true
			continue
		}
		if p.Collide(g.player.Position, g.player.Radius()) && g.hitPlayer(p) {
			res.PlayerHit = true
		}
	}
	g.enemyShots = sweepProjectiles(g.enemyShots)

	for i := range g.destructibles {
		d := &g.destructibles[i]
		if d.Update(dt, g.world.kill) {
			d.dead = true
			g.emitters.Remove(d.Emitter)
			continue
		}
		if e := g.emitters.Get(d.Emitter); e != nil {
			e.Position = d.Position()
		}
	}
	g.destructibles = sweepDestructibles(g.destructibles)

	g.elapsed += dt
	if !g.gameOver && g.queue.Len() == 0 && len(g.destructibles) == 0 && len(g.enemyShots) == 0 {
		g.cleared = true
		g.gameOver = true
	}

	res.State = g.State()
	return res
}

func (g *Game) spawn(spec DestructibleSpec) {
	d := Destructible{
		Radius: spec.Radius,
		Color:  spec.Color,
		Path:   spec.Path,
		Health: spec.Health,
		Points: spec.Points,
	}
	if spec.Pattern != nil {
		d.Emitter = g.emitters.Insert(NewEmitter(*spec.Pattern, d.Position()))
	}
	g.destructibles = append(g.destructibles, d)
}

// resolvePlayerShots applies at most one hit per player projectile and
// frees the emitter of every destructible it destroys.
func (g *Game) resolvePlayerShots() int {
	destroyed := 0
	for i := range g.playerShots {
		p := &g.playerShots[i]
		for j := range g.destructibles {
			d := &g.destructibles[j]
			if d.dead || !p.Collide(d.Position(), d.Radius) {
				continue
			}
			p.dead = true
			if d.Hurt() {
				d.dead = true
				g.emitters.Remove(d.Emitter)
				g.score += d.Points
				g.kills++
				destroyed++
			}
			break
		}
	}
	return destroyed
}

// hitPlayer applies an enemy projectile touching the player and reports
// whether it counted as a hit. With lives disabled every projectile is
// counted once and keeps flying.
func (g *Game) hitPlayer(p *Projectile) bool {
	if g.world.player.lives == 0 {
		if p.touched {
			return false
		}
		p.touched = true
		g.hits++
		return true
	}

	if g.player.Invulnerable > 0 {
		return false
	}
	p.dead = true
	g.hits++
	g.player.Lives--
	g.player.Invulnerable = g.world.player.invulnerable
	if g.player.Lives <= 0 {
		g.player.Lives = 0
		g.gameOver = true
	}
	return true
}

// sweepProjectiles drops marked projectiles in place, keeping order.
func sweepProjectiles(ps []Projectile) []Projectile {
	kept := ps[:0]
	for _, p := range ps {
		if !p.dead {
			kept = append(kept, p)
		}
	}
	return kept
}

func sweepDestructibles(ds []Destructible) []Destructible {
	kept := ds[:0]
	for _, d := range ds {
		if !d.dead {
			kept = append(kept, d)
		}
	}
	return kept
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Cleared:  g.cleared,
		Paused:   g.paused,
	}
}

// Stats returns the run summary so far.
func (g *Game) Stats() core.RunStats {
	return core.RunStats{
		Score:   g.score,
		Kills:   g.kills,
		Hits:    g.hits,
		Elapsed: g.elapsed,
		Cleared: g.cleared,
	}
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Emitters returns the number of live emitters.
func (g *Game) Emitters() int {
	return g.emitters.Len()
}

// Counts returns the sizes of the entity collections.
func (g *Game) Counts() (destructibles, playerShots, enemyShots int) {
	return len(g.destructibles), len(g.playerShots), len(g.enemyShots)
}

// Ensure Game implements the registry interfaces.
var (
	_ registry.Game          = (*Game)(nil)
	_ registry.StatsReporter = (*Game)(nil)
)

func init() {
	for _, id := range config.StageIDs() {
		registry.Register(id, func() registry.Game {
			return NewFromID(id)
		})
	}
}
