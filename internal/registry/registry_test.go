package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/borno/internal/core"
)

type stubGame struct {
	id    string
	steps int
}

func (g *stubGame) ID() string               { return g.id }
func (g *stubGame) Title() string            { return strings.ToUpper(g.id) }
func (g *stubGame) Reset(core.RuntimeConfig) { g.steps = 0 }
func (g *stubGame) Render(core.Canvas)       {}
func (g *stubGame) View() core.Bounds        { return core.NewBounds(0, 0, 100, 100) }
func (g *stubGame) State() core.GameState    { return core.GameState{Score: g.steps} }
func (g *stubGame) Step(float64, core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{State: g.State()}
}

func TestRegisterCreateList(t *testing.T) {
	t.Cleanup(func() {
		unregister("zz_stub_b")
		unregister("zz_stub_a")
	})

	Register("zz_stub_b", func() Game { return &stubGame{id: "zz_stub_b"} })
	Register("zz_stub_a", func() Game { return &stubGame{id: "zz_stub_a"} })

	if !Exists("zz_stub_a") || Exists("zz_missing") {
		t.Fatal("Exists reported the wrong result")
	}

	g, err := Create("zz_stub_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub_a" {
		t.Errorf("ID = %q", g.ID())
	}

	// Each Create returns a fresh instance.
	g.Step(0.1, core.NewInputFrame())
	g2, _ := Create("zz_stub_a")
	if g2.State().Score != 0 {
		t.Error("Create returned a shared instance")
	}

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "zz_stub_") {
			ids = append(ids, info.ID)
			if info.Title != strings.ToUpper(info.ID) {
				t.Errorf("title for %s = %q", info.ID, info.Title)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "zz_stub_a" || ids[1] != "zz_stub_b" {
		t.Errorf("List order = %v, expected sorted", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("zz_missing"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	t.Cleanup(func() { unregister("zz_dup") })
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}
