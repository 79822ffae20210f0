package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestVecArithmetic(t *testing.T) {
	a := V(1, 2)
	b := V(3, -4)

	if got := a.Add(b); got != V(4, -2) {
		t.Errorf("Add() = %v, expected (4, -2)", got)
	}
	if got := a.Sub(b); got != V(-2, 6) {
		t.Errorf("Sub() = %v, expected (-2, 6)", got)
	}
	if got := a.Scale(2); got != V(2, 4) {
		t.Errorf("Scale() = %v, expected (2, 4)", got)
	}
	if got := b.Len(); got != 5 {
		t.Errorf("Len() = %f, expected 5", got)
	}
	if got := a.DistSqr(b); got != 40 {
		t.Errorf("DistSqr() = %f, expected 40", got)
	}
}

func TestVecNormalize(t *testing.T) {
	n := V(3, 4).Normalize()
	if math.Abs(n.Len()-1) > eps {
		t.Errorf("Normalize() length = %f, expected 1", n.Len())
	}

	if z := (Vec2{}).Normalize(); z != (Vec2{}) {
		t.Errorf("Normalize() of zero = %v, expected zero", z)
	}
}

func TestVecLerpUnclamped(t *testing.T) {
	a := V(0, 0)
	b := V(10, 20)

	tests := []struct {
		u        float64
		expected Vec2
	}{
		{0, V(0, 0)},
		{0.5, V(5, 10)},
		{1, V(10, 20)},
		{2, V(20, 40)},
	}

	for _, tc := range tests {
		if got := a.Lerp(b, tc.u); got != tc.expected {
			t.Errorf("Lerp(%f) = %v, expected %v", tc.u, got, tc.expected)
		}
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi/2, 2)
	if math.Abs(v.X) > eps || math.Abs(v.Y-2) > eps {
		t.Errorf("FromAngle(pi/2, 2) = %v, expected (0, 2)", v)
	}
}

func TestBounds(t *testing.T) {
	b := NewBounds(-50, -50, 1380, 820)

	if b.Max != V(1330, 770) {
		t.Errorf("Max = %v, expected (1330, 770)", b.Max)
	}

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"inside", V(0, 0), true},
		{"on edge", V(1330, 770), true},
		{"left", V(-51, 0), false},
		{"right", V(1331, 0), false},
		{"above", V(0, -51), false},
		{"below", V(0, 771), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}

	if got := b.Clamp(V(-100, 1000)); got != V(-50, 770) {
		t.Errorf("Clamp() = %v, expected (-50, 770)", got)
	}
	if got := NewBounds(0, 0, 10, 20).Center(); got != V(5, 10) {
		t.Errorf("Center() = %v, expected (5, 10)", got)
	}
}
