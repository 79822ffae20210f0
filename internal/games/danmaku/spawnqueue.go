package danmaku

import "github.com/vovakirdan/borno/internal/core"

// DestructibleSpec is everything needed to instantiate an enemy.
type DestructibleSpec struct {
	Radius  float64
	Color   core.Color
	Path    Trajectory
	Health  int
	Points  int
	Pattern *Pattern // nil for enemies that do not shoot
}

// SpawnEntry schedules a destructible Delay seconds after the previous entry.
type SpawnEntry struct {
	Delay float64
	Spec  DestructibleSpec
}

// SpawnQueue is the scripted FIFO of enemy spawns. Only the front entry's
// delay counts down; time left over when it spawns carries into the next.
type SpawnQueue struct {
	entries   []SpawnEntry
	remaining float64
}

// NewSpawnQueue creates a queue over a copy of entries.
func NewSpawnQueue(entries []SpawnEntry) *SpawnQueue {
	q := &SpawnQueue{entries: append([]SpawnEntry(nil), entries...)}
	if len(q.entries) > 0 {
		q.remaining = q.entries[0].Delay
	}
	return q
}

// Update advances the queue by dt and returns the specs that became due,
// in script order.
func (q *SpawnQueue) Update(dt float64) []DestructibleSpec {
	if len(q.entries) == 0 {
		return nil
	}

	q.remaining -= dt

	var due []DestructibleSpec
	for len(q.entries) > 0 && q.remaining <= 0 {
		due = append(due, q.entries[0].Spec)
		q.entries = q.entries[1:]
		if len(q.entries) > 0 {
			q.remaining += q.entries[0].Delay
		}
	}
	return due
}

// Len returns the number of entries still waiting.
func (q *SpawnQueue) Len() int {
	return len(q.entries)
}

// Remaining returns the time until the front entry spawns.
func (q *SpawnQueue) Remaining() float64 {
	if len(q.entries) == 0 {
		return 0
	}
	return q.remaining
}
