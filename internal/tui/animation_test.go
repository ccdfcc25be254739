package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-2048/internal/game"
)

func TestEaseOutQuad(t *testing.T) {
	if easeOutQuad(0) != 0 {
		t.Errorf("easeOutQuad(0) = %v, want 0", easeOutQuad(0))
	}
	if easeOutQuad(1) != 1 {
		t.Errorf("easeOutQuad(1) = %v, want 1", easeOutQuad(1))
	}
	// Deceleration curve stays above the linear ramp
	if easeOutQuad(0.5) <= 0.5 {
		t.Errorf("easeOutQuad(0.5) = %v, want > 0.5", easeOutQuad(0.5))
	}
}

func TestAnimatorSlideProgress(t *testing.T) {
	effects := []game.Effect{
		{Kind: game.EffectSlide, ID: 1, FromRow: 0, FromCol: 3, ToRow: 0, ToCol: 0, Value: 2},
		{Kind: game.EffectMerge, ID: 2, Into: 3, FromRow: 1, FromCol: 2, ToRow: 1, ToCol: 0, Value: 4},
		{Kind: game.EffectSpawn, ID: 9, ToRow: 2, ToCol: 2, Value: 2},
	}

	start := time.Now()
	var a animator
	a.startSlide(effects, start, 100*time.Millisecond)

	if a.phase != PhaseSlide {
		t.Fatalf("phase = %v, want PhaseSlide", a.phase)
	}
	// Spawn effects are not part of a slide
	if len(a.tiles) != 2 {
		t.Fatalf("got %d animated tiles, want 2", len(a.tiles))
	}
	if !a.tiles[1].Merged {
		t.Error("merge effect should be flagged Merged")
	}

	a.update(start.Add(50 * time.Millisecond))
	if a.tiles[0].Progress != 0.5 {
		t.Errorf("progress at half duration = %v, want 0.5", a.tiles[0].Progress)
	}

	// Progress clamps at 1 even past the duration
	a.update(start.Add(300 * time.Millisecond))
	if a.tiles[0].Progress != 1.0 {
		t.Errorf("progress past duration = %v, want 1.0", a.tiles[0].Progress)
	}
	if !a.done(start.Add(300 * time.Millisecond)) {
		t.Error("done() should report true past the duration")
	}
}

func TestAnimatorInterpolateEndpoints(t *testing.T) {
	a := TileAnimation{FromRow: 0, FromCol: 3, ToRow: 0, ToCol: 0}

	a.Progress = 0
	row, col := a.interpolate()
	if row != 0 || col != 3 {
		t.Errorf("at progress 0: (%v, %v), want (0, 3)", row, col)
	}

	a.Progress = 1
	row, col = a.interpolate()
	if row != 0 || col != 0 {
		t.Errorf("at progress 1: (%v, %v), want (0, 0)", row, col)
	}
}

func TestAnimatorPop(t *testing.T) {
	spawn := &game.Effect{Kind: game.EffectSpawn, ID: 7, ToRow: 3, ToCol: 1, Value: 4}

	start := time.Now()
	var a animator
	a.startPop(spawn, start, 90*time.Millisecond)

	if a.phase != PhasePop {
		t.Fatalf("phase = %v, want PhasePop", a.phase)
	}
	if len(a.tiles) != 1 || !a.tiles[0].IsNew {
		t.Fatalf("pop should animate exactly the spawned tile: %+v", a.tiles)
	}
	if a.tiles[0].ToRow != 3 || a.tiles[0].ToCol != 1 {
		t.Errorf("pop tile at (%d, %d), want (3, 1)", a.tiles[0].ToRow, a.tiles[0].ToCol)
	}

	ids := a.animatedIDs()
	if !ids[7] || len(ids) != 1 {
		t.Errorf("animatedIDs() = %v, want {7}", ids)
	}

	a.stop()
	if a.phase != PhaseNone || len(a.tiles) != 0 {
		t.Error("stop() should clear all animation state")
	}
}
