package core

import (
	"math"
	"testing"
)

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionFire) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionFire)
	clone := f.Clone()
	f.Clear()

	if f.Has(ActionFire) {
		t.Error("Clear should remove actions")
	}
	if !clone.Has(ActionFire) {
		t.Error("Clone should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("zero frame should report no actions")
	}
	zero.Set(ActionUp)
	if !zero.Has(ActionUp) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestInputDirection(t *testing.T) {
	diag := 1 / math.Sqrt2

	tests := []struct {
		name     string
		actions  []Action
		expected Vec2
	}{
		{"none", nil, V(0, 0)},
		{"left", []Action{ActionLeft}, V(-1, 0)},
		{"down", []Action{ActionDown}, V(0, 1)},
		{"opposite cancels", []Action{ActionLeft, ActionRight}, V(0, 0)},
		{"opposite cancels one axis", []Action{ActionUp, ActionDown, ActionRight}, V(1, 0)},
		{"diagonal normalized", []Action{ActionUp, ActionRight}, V(diag, -diag)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			got := f.Direction()
			if math.Abs(got.X-tc.expected.X) > 1e-9 || math.Abs(got.Y-tc.expected.Y) > 1e-9 {
				t.Errorf("Direction() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
