package tui

import (
	"time"

	"github.com/vovakirdan/tui-2048/internal/game"
)

// AnimationPhase represents the current phase of board animation.
type AnimationPhase int

const (
	PhaseNone AnimationPhase = iota
	PhaseSlide
	PhasePop
)

// TileAnimation represents one animated tile.
type TileAnimation struct {
	ID       game.TileID
	Value    int     // Value shown during the animation (pre-merge)
	FromRow  int     // Start cell
	FromCol  int
	ToRow    int     // End cell
	ToCol    int
	Progress float64 // 0.0 -> 1.0
	Merged   bool    // Slides into another tile
	IsNew    bool    // Freshly spawned (pop effect)
}

// interpolate calculates the current cell position during animation.
func (a *TileAnimation) interpolate() (row, col float64) {
	t := easeOutQuad(a.Progress)
	row = float64(a.FromRow) + (float64(a.ToRow)-float64(a.FromRow))*t
	col = float64(a.FromCol) + (float64(a.ToCol)-float64(a.FromCol))*t
	return row, col
}

// easeOutQuad provides smooth deceleration.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// animator tracks the active animation phase and per-tile progress.
// Progress is wall-clock based so a dropped frame never desyncs the
// settle timing from the visuals.
type animator struct {
	phase    AnimationPhase
	tiles    []TileAnimation
	start    time.Time
	duration time.Duration
}

// startSlide begins a slide animation built from move effects.
func (a *animator) startSlide(effects []game.Effect, now time.Time, duration time.Duration) {
	a.tiles = a.tiles[:0]
	for _, eff := range effects {
		if eff.Kind != game.EffectSlide && eff.Kind != game.EffectMerge {
			continue
		}
		a.tiles = append(a.tiles, TileAnimation{
			ID:      eff.ID,
			Value:   eff.Value,
			FromRow: eff.FromRow,
			FromCol: eff.FromCol,
			ToRow:   eff.ToRow,
			ToCol:   eff.ToCol,
			Merged:  eff.Kind == game.EffectMerge,
		})
	}
	a.phase = PhaseSlide
	a.start = now
	a.duration = duration
}

// startPop begins a pop animation for a freshly spawned tile.
func (a *animator) startPop(spawn *game.Effect, now time.Time, duration time.Duration) {
	a.tiles = a.tiles[:0]
	a.tiles = append(a.tiles, TileAnimation{
		ID:      spawn.ID,
		Value:   spawn.Value,
		FromRow: spawn.ToRow,
		FromCol: spawn.ToCol,
		ToRow:   spawn.ToRow,
		ToCol:   spawn.ToCol,
		IsNew:   true,
	})
	a.phase = PhasePop
	a.start = now
	a.duration = duration
}

// update advances all tile progress based on elapsed time.
func (a *animator) update(now time.Time) {
	if a.phase == PhaseNone {
		return
	}

	progress := 1.0
	if a.duration > 0 {
		progress = float64(now.Sub(a.start)) / float64(a.duration)
	}
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0 {
		progress = 0
	}

	for i := range a.tiles {
		a.tiles[i].Progress = progress
	}
}

// elapsed reports how long the current phase has been running.
func (a *animator) elapsed(now time.Time) time.Duration {
	return now.Sub(a.start)
}

// done reports whether the current phase has run its full duration.
func (a *animator) done(now time.Time) bool {
	return a.phase == PhaseNone || a.elapsed(now) >= a.duration
}

// stop clears all animation state.
func (a *animator) stop() {
	a.phase = PhaseNone
	a.tiles = nil
}

// animatedIDs returns the set of tile IDs currently animating.
func (a *animator) animatedIDs() map[game.TileID]bool {
	ids := make(map[game.TileID]bool, len(a.tiles))
	for _, t := range a.tiles {
		ids[t.ID] = true
	}
	return ids
}
