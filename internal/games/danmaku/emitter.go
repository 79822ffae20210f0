package danmaku

import (
	"container/heap"

	"github.com/vovakirdan/borno/internal/core"
)

// Emitter turns a pattern into projectiles. Spawned events wait in a
// min-heap until the emitter's clock reaches their scheduled time.
type Emitter struct {
	Pattern  Pattern
	Position core.Vec2
	Elapsed  float64

	pending spawnHeap
	seq     uint64
}

// NewEmitter creates an emitter at pos.
func NewEmitter(pattern Pattern, pos core.Vec2) *Emitter {
	return &Emitter{Pattern: pattern, Position: pos}
}

// Update spawns this frame's events, advances the clock by dt and returns
// every projectile whose time has come, in scheduled order. Events due at
// the same time come out in the order they were spawned.
func (e *Emitter) Update(dt float64, target core.Vec2) []Projectile {
	for _, ev := range e.Pattern.Spawn(e.Elapsed, dt, e.Position, target) {
		heap.Push(&e.pending, pendingShot{at: ev.At, seq: e.seq, p: ev.Projectile})
		e.seq++
	}

	e.Elapsed += dt

	var due []Projectile
	for e.pending.Len() > 0 && e.pending[0].at <= e.Elapsed {
		shot := heap.Pop(&e.pending).(pendingShot)
		due = append(due, shot.p)
	}
	return due
}

// Pending returns the number of scheduled projectiles not yet released.
func (e *Emitter) Pending() int {
	return e.pending.Len()
}

// NextAt returns the time of the earliest pending projectile.
func (e *Emitter) NextAt() (float64, bool) {
	if e.pending.Len() == 0 {
		return 0, false
	}
	return e.pending[0].at, true
}

type pendingShot struct {
	at  float64
	seq uint64
	p   Projectile
}

// spawnHeap implements heap.Interface ordered by (at, seq).
type spawnHeap []pendingShot

func (h spawnHeap) Len() int { return len(h) }

func (h spawnHeap) Less(i, j int) bool {
	if h[i].at != h[j].at {
		return h[i].at < h[j].at
	}
	return h[i].seq < h[j].seq
}

func (h spawnHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *spawnHeap) Push(x any) {
	*h = append(*h, x.(pendingShot))
}

func (h *spawnHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
