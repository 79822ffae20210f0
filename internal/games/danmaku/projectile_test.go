package danmaku

import (
	"testing"

	"github.com/vovakirdan/borno/internal/core"
)

var testKill = core.Bounds{Min: core.V(-50, -50), Max: core.V(1330, 770)}

func TestCollideStrictAndSymmetric(t *testing.T) {
	tests := []struct {
		name     string
		dist     float64
		expected bool
	}{
		{"tangent", 8, false},
		{"just inside", 8 - 1e-6, true},
		{"apart", 9, false},
		{"same point", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewProjectile(3, core.ColorRed, Linear(core.V(0, 0), core.V(0, 0)), 0)
			b := NewProjectile(5, core.ColorRed, Linear(core.V(tc.dist, 0), core.V(0, 0)), 0)

			ab := a.Collide(b.Position(), b.Radius)
			ba := b.Collide(a.Position(), a.Radius)
			if ab != ba {
				t.Errorf("not symmetric: %v vs %v", ab, ba)
			}
			if ab != tc.expected {
				t.Errorf("Collide at %g = %v, expected %v", tc.dist, ab, tc.expected)
			}
		})
	}
}

func TestDormantProjectileDoesNotMove(t *testing.T) {
	p := NewProjectile(4, core.ColorPurple, Linear(core.V(100, 100), core.V(60, 0)), 0.25)

	p.Update(0.125, testKill)
	if !p.Dormant() {
		t.Fatal("projectile should still be dormant")
	}
	if got := p.Position(); got != core.V(100, 100) {
		t.Errorf("dormant projectile moved to %v", got)
	}

	p.Update(0.125, testKill)
	p.Update(0.5, testKill)
	if p.Dormant() {
		t.Fatal("projectile should be active")
	}
	if got := p.Position(); !near(got, core.V(130, 100)) {
		t.Errorf("position %v, expected (130,100)", got)
	}
}

func TestProjectileExpiresOutsideKillBoundary(t *testing.T) {
	p := NewProjectile(4, core.ColorPurple, Linear(core.V(1320, 100), core.V(600, 0)), 0)

	if p.Update(0.01, testKill) {
		t.Fatal("projectile at x=1326 should still be inside")
	}
	if !p.Update(0.01, testKill) {
		t.Error("projectile at x=1332 should have expired")
	}
}
