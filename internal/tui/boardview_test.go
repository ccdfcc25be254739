package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
)

func newTestModel(t *testing.T) GameModel {
	t.Helper()
	return NewGameModel(nil, config.Default(), core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
}

func TestRenderGameShowsBoard(t *testing.T) {
	m := newTestModel(t)
	m.engine.Load([game.BoardSize][game.BoardSize]int{
		{2, 0, 0, 0},
		{0, 64, 0, 0},
		{0, 0, 512, 0},
		{0, 0, 0, 2048},
	})

	screen := core.NewScreen(80, 24)
	m.renderGame(screen)
	out := screen.String()

	for _, want := range []string{"2048", "512", "64", "Score: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen missing %q", want)
		}
	}
	if !strings.Contains(out, "┌") || !strings.Contains(out, "┼") {
		t.Error("rendered screen missing grid borders")
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	m := newTestModel(t)
	m.gameOver = true

	screen := core.NewScreen(80, 24)
	m.renderGame(screen)

	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay not rendered")
	}
}

func TestRenderTooSmall(t *testing.T) {
	m := newTestModel(t)

	screen := core.NewScreen(20, 8)
	m.renderGame(screen)

	if !strings.Contains(screen.String(), "too small") {
		t.Error("too-small message not rendered")
	}
}

func TestValueColorFallback(t *testing.T) {
	seen := map[core.Color]bool{}
	for v := 2; v <= 2048; v *= 2 {
		c := valueColor(v)
		if seen[c] {
			t.Errorf("color for %d reused", v)
		}
		seen[c] = true
	}

	// Everything beyond 2048 shares one fallback
	if valueColor(4096) != valueColor(8192) {
		t.Error("values beyond 2048 should share a fallback color")
	}
}

func TestRenderScreenPlainBoard(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")
	s.DrawTextColored(0, 1, "ef", core.ColorRed)

	out := RenderScreen(s)
	if !strings.Contains(out, "abcd") {
		t.Errorf("RenderScreen output missing plain text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen output should have 1 newline, got %d", strings.Count(out, "\n"))
	}
}
