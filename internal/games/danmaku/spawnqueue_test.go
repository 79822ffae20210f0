package danmaku

import "testing"

func entries(delays ...float64) []SpawnEntry {
	out := make([]SpawnEntry, len(delays))
	for i, d := range delays {
		out[i] = SpawnEntry{Delay: d, Spec: DestructibleSpec{Health: i + 1}}
	}
	return out
}

func TestSpawnQueueRelativeDelays(t *testing.T) {
	q := NewSpawnQueue(entries(0, 1, 0.5))

	due := q.Update(0.25)
	if len(due) != 1 || due[0].Health != 1 {
		t.Fatalf("expected first entry on the first frame, got %+v", due)
	}

	if due := q.Update(0.5); len(due) != 0 {
		t.Fatalf("second entry spawned early: %+v", due)
	}

	// The second entry is due one second after the first became due.
	due = q.Update(0.25)
	if len(due) != 1 || due[0].Health != 2 {
		t.Fatalf("expected second entry, got %+v", due)
	}
	if q.Len() != 1 {
		t.Errorf("Len = %d, expected 1", q.Len())
	}
}

func TestSpawnQueueCarriesLeftover(t *testing.T) {
	q := NewSpawnQueue(entries(1, 0.5, 0.5, 10))

	due := q.Update(2.1)
	if len(due) != 3 {
		t.Fatalf("expected 3 entries due, got %d", len(due))
	}
	for i, spec := range due {
		if spec.Health != i+1 {
			t.Errorf("entry %d out of order: health %d", i, spec.Health)
		}
	}
	if r := q.Remaining(); r < 9.89 || r > 9.91 {
		t.Errorf("Remaining = %g, expected 9.9", r)
	}
}

func TestSpawnQueueEmpty(t *testing.T) {
	q := NewSpawnQueue(nil)
	if due := q.Update(1); due != nil {
		t.Errorf("empty queue produced %+v", due)
	}
	if q.Len() != 0 || q.Remaining() != 0 {
		t.Error("empty queue should report nothing pending")
	}
}

func TestSpawnQueueCopiesEntries(t *testing.T) {
	src := entries(0, 1)
	q := NewSpawnQueue(src)
	src[0].Spec.Health = 99

	due := q.Update(0.1)
	if len(due) != 1 || due[0].Health != 1 {
		t.Errorf("queue shares the caller's slice: %+v", due)
	}
}
