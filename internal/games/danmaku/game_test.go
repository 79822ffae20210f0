package danmaku

import (
	"testing"

	"github.com/vovakirdan/borno/internal/config"
	"github.com/vovakirdan/borno/internal/core"
	"github.com/vovakirdan/borno/internal/registry"
)

const frame = 1.0 / 60

// targetStage has one stationary enemy at (640,300) that fires rings.
func targetStage(health int) config.Stage {
	return config.Stage{
		ID:   "target",
		Name: "Target",
		Waves: []config.Wave{{
			Delay: 0,
			Enemy: config.EnemyConfig{
				Health: health,
				Radius: 20,
				Points: 100,
				Color:  "blue",
				Trajectory: config.TrajectoryConfig{
					Kind: config.TrajectoryLinear,
					From: config.Point{640, 300},
				},
				Pattern: &config.PatternConfig{
					Kind:    config.PatternRing,
					Shots:   4,
					Cadence: 1,
				},
			},
		}},
	}
}

func newTestGame(t *testing.T, stage config.Stage, lives int) *Game {
	t.Helper()
	tun := config.DefaultTuning()
	tun.Player.Lives = lives
	g, err := New(stage, tun)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g
}

func shotAt(pos core.Vec2) Projectile {
	return NewProjectile(5, core.ColorBrightGreen, Linear(pos, core.V(0, 0)), 0)
}

func TestDoubleHitDestroysAndFreesEmitter(t *testing.T) {
	g := newTestGame(t, targetStage(2), 3)
	idle := core.NewInputFrame()

	g.Update(frame, idle)
	if n, _, _ := g.Counts(); n != 1 {
		t.Fatalf("expected 1 destructible after the first frame, got %d", n)
	}
	before := g.Emitters()
	if before != 1 {
		t.Fatalf("expected 1 emitter, got %d", before)
	}

	center := core.V(640, 300)
	g.playerShots = append(g.playerShots, shotAt(center), shotAt(center.Add(core.V(5, 0))))

	res := g.Update(frame, idle)

	if res.Destroyed != 1 {
		t.Errorf("Destroyed = %d, expected 1", res.Destroyed)
	}
	if got := g.Emitters(); got != before-1 {
		t.Errorf("emitters = %d, expected %d", got, before-1)
	}
	n, shots, _ := g.Counts()
	if n != 0 {
		t.Errorf("destructibles = %d, expected 0", n)
	}
	if shots != 0 {
		t.Errorf("player shots = %d, expected both consumed", shots)
	}
	if g.State().Score != 100 {
		t.Errorf("score = %d, expected 100", g.State().Score)
	}
}

func TestOneHitPerProjectile(t *testing.T) {
	stage := targetStage(5)
	second := stage.Waves[0]
	second.Enemy.Trajectory.From = config.Point{650, 300}
	stage.Waves = append(stage.Waves, second)

	g := newTestGame(t, stage, 3)
	idle := core.NewInputFrame()
	g.Update(frame, idle)
	if n, _, _ := g.Counts(); n != 2 {
		t.Fatalf("expected 2 destructibles, got %d", n)
	}

	// The shot overlaps both enemies; only the first in order is hurt.
	g.playerShots = append(g.playerShots, shotAt(core.V(645, 300)))
	g.Update(frame, idle)

	if h := g.destructibles[0].Health; h != 4 {
		t.Errorf("first destructible health = %d, expected 4", h)
	}
	if h := g.destructibles[1].Health; h != 5 {
		t.Errorf("second destructible health = %d, expected 5", h)
	}
}

func TestOutOfBoundsProjectileIsGoneNextFrame(t *testing.T) {
	g := newTestGame(t, targetStage(10), 3)
	idle := core.NewInputFrame()
	g.Update(frame, idle)

	stray := NewProjectile(8, core.ColorPurple, Linear(core.V(1325, 100), core.V(600, 0)), 0)
	g.enemyShots = append(g.enemyShots, stray)
	g.Update(frame, idle)

	c := &recordCanvas{}
	g.Render(c)
	for _, circle := range c.circles {
		if circle.X > 1330 {
			t.Errorf("projectile outside the kill boundary was drawn at %v", circle)
		}
	}
	if _, _, enemy := g.Counts(); enemy != 0 {
		t.Errorf("enemy shots = %d, expected 0", enemy)
	}
}

func TestPlayerLosesLife(t *testing.T) {
	stage := targetStage(10)
	stage.Waves[0].Enemy.Pattern = nil
	g := newTestGame(t, stage, 2)
	idle := core.NewInputFrame()
	g.Update(frame, idle)

	g.enemyShots = append(g.enemyShots, shotAt(g.player.Position))
	res := g.Update(frame, idle)

	if !res.PlayerHit {
		t.Fatal("expected a player hit")
	}
	if g.player.Lives != 1 {
		t.Errorf("lives = %d, expected 1", g.player.Lives)
	}
	if _, _, enemy := g.Counts(); enemy != 0 {
		t.Errorf("hitting projectile should be consumed, %d left", enemy)
	}

	// Invulnerable right after the hit.
	g.enemyShots = append(g.enemyShots, shotAt(g.player.Position))
	if res := g.Update(frame, idle); res.PlayerHit {
		t.Error("player should be invulnerable")
	}
	if g.player.Lives != 1 {
		t.Errorf("lives = %d, expected 1", g.player.Lives)
	}

	g.enemyShots = g.enemyShots[:0]
	for g.player.Invulnerable > 0 {
		g.Update(frame, idle)
	}
	g.enemyShots = append(g.enemyShots, shotAt(g.player.Position))
	res = g.Update(frame, idle)
	if !res.PlayerHit || !res.State.GameOver || res.State.Cleared {
		t.Errorf("last life lost should end the run, got %+v", res)
	}
	if g.Stats().Hits != 2 {
		t.Errorf("hits = %d, expected 2", g.Stats().Hits)
	}
}

func TestInvulnerablePlayerCountsHitsOnce(t *testing.T) {
	g := newTestGame(t, targetStage(10), 0)
	idle := core.NewInputFrame()
	g.Update(frame, idle)

	g.enemyShots = append(g.enemyShots, shotAt(g.player.Position))
	for i := 0; i < 5; i++ {
		g.Update(frame, idle)
	}

	if g.Stats().Hits != 1 {
		t.Errorf("hits = %d, expected 1", g.Stats().Hits)
	}
	if _, _, enemy := g.Counts(); enemy == 0 {
		t.Error("projectile should keep flying when lives are disabled")
	}
	if g.State().GameOver {
		t.Error("an invulnerable player cannot lose")
	}
}

func TestEmitterFollowsDestructible(t *testing.T) {
	stage := targetStage(10)
	stage.Waves[0].Enemy.Trajectory.Velocity = config.Point{60, 0}
	g := newTestGame(t, stage, 3)

	idle := core.NewInputFrame()
	for i := 0; i < 30; i++ {
		g.Update(frame, idle)
	}

	d := &g.destructibles[0]
	e := g.emitters.Get(d.Emitter)
	if e == nil {
		t.Fatal("destructible lost its emitter")
	}
	if e.Position != d.Position() {
		t.Errorf("emitter at %v, destructible at %v", e.Position, d.Position())
	}
}

func TestDestructibleLeavingFreesEmitter(t *testing.T) {
	stage := targetStage(10)
	stage.Waves[0].Enemy.Trajectory.Velocity = config.Point{0, 3000}
	g := newTestGame(t, stage, 3)

	idle := core.NewInputFrame()
	g.Update(frame, idle)
	if g.Emitters() != 1 {
		t.Fatalf("expected 1 emitter, got %d", g.Emitters())
	}
	for i := 0; i < 20; i++ {
		g.Update(frame, idle)
	}
	if n, _, _ := g.Counts(); n != 0 {
		t.Errorf("destructibles = %d, expected 0", n)
	}
	if g.Emitters() != 0 {
		t.Errorf("emitters = %d, expected 0", g.Emitters())
	}
}

func TestStageClear(t *testing.T) {
	g := newTestGame(t, targetStage(1), 3)
	idle := core.NewInputFrame()
	g.Update(frame, idle)

	g.playerShots = append(g.playerShots, shotAt(core.V(640, 300)))
	res := g.Update(frame, idle)

	if !res.State.GameOver || !res.State.Cleared {
		t.Errorf("expected cleared run, got %+v", res.State)
	}
	if !g.Stats().Cleared || g.Stats().Kills != 1 {
		t.Errorf("unexpected stats %+v", g.Stats())
	}
}

func TestDeathOnEmptyFieldIsNotClear(t *testing.T) {
	stage := targetStage(1)
	stage.Waves[0].Enemy.Pattern = nil
	g := newTestGame(t, stage, 1)
	idle := core.NewInputFrame()
	g.Update(frame, idle)

	// The last enemy dies and the last enemy shot kills the player in one frame.
	g.playerShots = append(g.playerShots, shotAt(core.V(640, 300)))
	g.enemyShots = append(g.enemyShots, shotAt(g.player.Position))
	res := g.Update(frame, idle)

	if !res.State.GameOver {
		t.Fatal("expected the run to be over")
	}
	if res.State.Cleared || g.Stats().Cleared {
		t.Error("a dead player must not clear the stage")
	}
	if g.player.Lives != 0 || g.Stats().Hits != 1 {
		t.Errorf("lives = %d hits = %d, expected 0 and 1", g.player.Lives, g.Stats().Hits)
	}

	c := &recordCanvas{}
	g.Render(c)
	found := false
	for _, text := range c.texts {
		if text == "STAGE CLEAR" {
			t.Error("HUD shows STAGE CLEAR for a lost run")
		}
		if text == "GAME OVER" {
			found = true
		}
	}
	if !found {
		t.Error("HUD should show GAME OVER")
	}
}

func TestPauseAndRestart(t *testing.T) {
	g := newTestGame(t, targetStage(1), 3)
	idle := core.NewInputFrame()

	g.Step(frame, idle)
	res := g.Step(frame, input(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}
	elapsed := g.Stats().Elapsed
	for i := 0; i < 10; i++ {
		g.Step(frame, idle)
	}
	if g.Stats().Elapsed != elapsed {
		t.Error("simulation advanced while paused")
	}

	g.Step(frame, input(core.ActionPause))
	g.playerShots = append(g.playerShots, shotAt(core.V(640, 300)))
	if res := g.Step(frame, idle); !res.State.GameOver {
		t.Fatalf("expected game over after the kill, got %+v", res.State)
	}

	res = g.Step(frame, input(core.ActionRestart))
	if res.State.GameOver || res.State.Score != 0 {
		t.Errorf("restart should reset the run, got %+v", res.State)
	}
	if g.queue.Len() != 1 || g.Emitters() != 0 {
		t.Error("restart should rebuild the spawn queue and clear emitters")
	}
}

func TestStepClampsLargeDelta(t *testing.T) {
	g := newTestGame(t, targetStage(10), 3)
	g.Step(5, core.NewInputFrame())
	if e := g.Stats().Elapsed; e != maxFrameDelta {
		t.Errorf("elapsed = %g, expected %g", e, maxFrameDelta)
	}
}

func TestRenderIsReadOnly(t *testing.T) {
	g := newTestGame(t, targetStage(1000), 0)
	fire := input(core.ActionFire)
	for i := 0; i < 90; i++ {
		g.Update(frame, fire)
	}

	stats := g.Stats()
	d, p, e := g.Counts()

	c := &recordCanvas{}
	g.Render(c)

	if g.Stats() != stats {
		t.Error("Render changed stats")
	}
	if d2, p2, e2 := g.Counts(); d2 != d || p2 != p || e2 != e {
		t.Error("Render changed entity counts")
	}
	// Field, destructibles, shots and the player.
	if want := d + p + e + 1; len(c.circles) != want {
		t.Errorf("drew %d circles, expected %d", len(c.circles), want)
	}
	if c.rects != 1 || len(c.texts) == 0 {
		t.Errorf("expected the field and HUD, got %d rects and %d texts", c.rects, len(c.texts))
	}
}

func TestBuiltinStagesRunDeterministically(t *testing.T) {
	for _, id := range config.StageIDs() {
		t.Run(id, func(t *testing.T) {
			g1 := NewFromID(id)
			g2 := NewFromID(id)
			if err := g1.Err(); err != nil {
				t.Fatalf("NewFromID(%q) failed: %v", id, err)
			}

			for i := 0; i < 600; i++ {
				in := core.NewInputFrame()
				in.Set(core.ActionFire)
				if i%120 < 60 {
					in.Set(core.ActionLeft)
				} else {
					in.Set(core.ActionRight)
				}
				g1.Step(frame, in)
				g2.Step(frame, in)
			}

			if g1.Stats() != g2.Stats() {
				t.Errorf("stats mismatch: %+v vs %+v", g1.Stats(), g2.Stats())
			}
			d1, p1, e1 := g1.Counts()
			d2, p2, e2 := g2.Counts()
			if d1 != d2 || p1 != p2 || e1 != e2 {
				t.Errorf("count mismatch: (%d,%d,%d) vs (%d,%d,%d)", d1, p1, e1, d2, p2, e2)
			}
			if g1.Player().Position != g2.Player().Position {
				t.Errorf("player mismatch: %v vs %v", g1.Player().Position, g2.Player().Position)
			}
		})
	}
}

func TestStagesAreRegistered(t *testing.T) {
	for _, id := range config.StageIDs() {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("registry.Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID = %q, expected %q", g.ID(), id)
		}
		if _, ok := g.(registry.StatsReporter); !ok {
			t.Errorf("%q does not report stats", id)
		}
	}
}

func TestReload(t *testing.T) {
	g := newTestGame(t, targetStage(1), 3)
	g.Update(frame, core.NewInputFrame())

	next := targetStage(3)
	next.ID = "reloaded"
	next.Waves = append(next.Waves, next.Waves[0])
	if err := g.Reload(next); err != nil {
		t.Fatalf("Reload() failed: %v", err)
	}
	if g.ID() != "reloaded" || g.queue.Len() != 2 {
		t.Errorf("reload did not take effect: id %q, queue %d", g.ID(), g.queue.Len())
	}

	bad := next
	bad.Waves = []config.Wave{{Enemy: config.EnemyConfig{Health: 1, Radius: 1, Color: "plaid"}}}
	if err := g.Reload(bad); err == nil {
		t.Error("expected error for an invalid color")
	}
	if g.ID() != "reloaded" {
		t.Error("failed reload should keep the previous stage")
	}
}

type recordCanvas struct {
	circles []core.Vec2
	rects   int
	texts   []string
}

func (c *recordCanvas) FillCircle(center core.Vec2, _ float64, _ core.Color) {
	c.circles = append(c.circles, center)
}

func (c *recordCanvas) FillRect(core.Bounds, core.Color) {
	c.rects++
}

func (c *recordCanvas) Text(_ core.Vec2, text string, _ core.Color) {
	c.texts = append(c.texts, text)
}
