package game

import "errors"

// Errors returned by Move. Both leave the engine completely untouched.
var (
	// ErrInvalidDirection is returned for a direction outside the four
	// known values. The board is not mutated.
	ErrInvalidDirection = errors.New("game: invalid direction")

	// ErrMoveInFlight is returned when a move arrives while a previous
	// move is still settling. The input is dropped, never queued.
	ErrMoveInFlight = errors.New("game: move already in flight")
)

// EffectKind classifies a per-tile effect within one move.
type EffectKind int

const (
	// EffectSlide: the tile moved to an empty destination cell.
	EffectSlide EffectKind = iota
	// EffectMerge: the tile moved onto an equal-valued tile. The moving
	// tile is destroyed at settle time; Into names the survivor.
	EffectMerge
	// EffectSpawn: a new tile appeared during the settle phase.
	EffectSpawn
)

// Effect describes one tile's change during a move. The presentation
// layer animates slides and merges from these, using the stable IDs to
// move existing visuals rather than re-creating them.
type Effect struct {
	Kind             EffectKind
	ID               TileID // the tile that slid, merged, or spawned
	Into             TileID // merge only: the surviving tile
	FromRow, FromCol int    // slide/merge only
	ToRow, ToCol     int
	Value            int // tile value at the start of the move; spawn: spawned value
}

// MoveResult reports the compute phase of one move: whether anything
// moved, the score that will be accrued at settle, and the per-tile
// effects in scan order.
type MoveResult struct {
	Changed    bool
	ScoreDelta int
	Effects    []Effect
}

// SettleResult reports the settle phase: the score actually accrued,
// the new total, the spawned tile (nil when the board was full), and
// whether the game ended.
type SettleResult struct {
	ScoreDelta int
	Score      int
	Spawned    *Effect
	GameOver   bool
}
