package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/borno/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorPurple)
	s.DrawTextColored(0, 1, "xyz", core.ColorLightGray)

	got := ansi.Strip(RenderScreen(s))
	want := "abcd  \nxyz   "
	if got != want {
		t.Errorf("RenderScreen() = %q, want %q", got, want)
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorLightGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for %s", c)
		}
	}
}
