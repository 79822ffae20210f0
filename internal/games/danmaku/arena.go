package danmaku

// EmitterHandle refers to an emitter slot in an EmitterArena.
// The zero value refers to nothing.
type EmitterHandle struct {
	index int
	gen   uint32
}

// Valid reports whether the handle was issued by an arena.
// A valid handle may still be stale if its emitter has been removed.
func (h EmitterHandle) Valid() bool {
	return h.gen != 0
}

type emitterSlot struct {
	emitter *Emitter
	gen     uint32
	live    bool
}

// EmitterArena owns every active emitter. Removal frees a slot in O(1) and
// bumps its generation so old handles stop resolving.
type EmitterArena struct {
	slots []emitterSlot
	free  []int
	live  int
}

// NewEmitterArena creates an empty arena.
func NewEmitterArena() *EmitterArena {
	return &EmitterArena{}
}

// Insert stores e and returns its handle.
func (a *EmitterArena) Insert(e *Emitter) EmitterHandle {
	a.live++

	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		slot := &a.slots[idx]
		slot.emitter = e
		slot.live = true
		return EmitterHandle{index: idx, gen: slot.gen}
	}

	a.slots = append(a.slots, emitterSlot{emitter: e, gen: 1, live: true})
	return EmitterHandle{index: len(a.slots) - 1, gen: 1}
}

// Get returns the emitter for h, or nil if h is zero or stale.
func (a *EmitterArena) Get(h EmitterHandle) *Emitter {
	if !a.resolves(h) {
		return nil
	}
	return a.slots[h.index].emitter
}

// Remove frees the slot for h. It reports false for zero or stale handles,
// so removing twice is harmless.
func (a *EmitterArena) Remove(h EmitterHandle) bool {
	if !a.resolves(h) {
		return false
	}

	slot := &a.slots[h.index]
	slot.emitter = nil
	slot.live = false
	slot.gen++
	if slot.gen == 0 {
		slot.gen = 1
	}
	a.free = append(a.free, h.index)
	a.live--
	return true
}

// Len returns the number of live emitters.
func (a *EmitterArena) Len() int {
	return a.live
}

// Each calls fn for every live emitter in slot order.
// fn must not insert into or remove from the arena.
func (a *EmitterArena) Each(fn func(h EmitterHandle, e *Emitter)) {
	for i := range a.slots {
		slot := &a.slots[i]
		if slot.live {
			fn(EmitterHandle{index: i, gen: slot.gen}, slot.emitter)
		}
	}
}

// Clear removes every emitter. Handles issued before Clear stay stale.
func (a *EmitterArena) Clear() {
	for i := range a.slots {
		if a.slots[i].live {
			a.Remove(EmitterHandle{index: i, gen: a.slots[i].gen})
		}
	}
}

func (a *EmitterArena) resolves(h EmitterHandle) bool {
	if h.gen == 0 || h.index < 0 || h.index >= len(a.slots) {
		return false
	}
	slot := a.slots[h.index]
	return slot.live && slot.gen == h.gen
}
