package game

import (
	"math/rand"
	"time"
)

// DefaultSpawnFourProb is the probability that a spawned tile is a 4
// rather than a 2.
const DefaultSpawnFourProb = 0.10

// Options configures a new engine. The zero value gives a time-seeded
// RNG and the default spawn distribution.
type Options struct {
	Seed          int64   // RNG seed; 0 means time-based
	SpawnFourProb float64 // probability of spawning a 4; 0 means DefaultSpawnFourProb
}

// phase tracks where the engine is within one move cycle.
type phase int

const (
	phaseIdle     phase = iota
	phaseSettling       // a changed move was computed, Settle not yet called
)

// pendingMerge records a merge computed by Move and applied by Settle.
type pendingMerge struct {
	mover    TileID
	survivor TileID
}

// Engine owns one game: the tile arena, the grid, the score, and the
// single-flight phase flag. Engines are independent; multiple games can
// run side by side. An Engine is not safe for concurrent use; the move
// cycle is a cooperative two-phase sequence on one goroutine.
type Engine struct {
	rng           *rand.Rand
	spawnFourProb float64

	nextID TileID
	tiles  map[TileID]*Tile
	cells  [BoardSize][BoardSize]TileID // 0 = empty

	score        int
	phase        phase
	pending      []pendingMerge
	pendingDelta int
	over         bool
}

// New creates an engine and starts a game: empty board seeded with two
// spawned tiles.
func New(opts Options) *Engine {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	prob := opts.SpawnFourProb
	if prob == 0 {
		prob = DefaultSpawnFourProb
	}

	e := &Engine{
		rng:           rand.New(rand.NewSource(seed)),
		spawnFourProb: prob,
	}
	e.Restart()
	return e
}

// Restart discards all game state and begins a fresh game with two
// spawned tiles. The RNG stream continues; use a new engine for a
// reproducible replay.
func (e *Engine) Restart() {
	e.nextID = 0
	e.tiles = make(map[TileID]*Tile)
	e.cells = [BoardSize][BoardSize]TileID{}
	e.score = 0
	e.phase = phaseIdle
	e.pending = nil
	e.pendingDelta = 0
	e.over = false

	e.spawnTile()
	e.spawnTile()
}

// Score returns the accumulated score. Pending merge points are not
// included until Settle runs.
func (e *Engine) Score() int {
	return e.score
}

// GameOver reports whether the game ended, as evaluated by the last
// settle phase.
func (e *Engine) GameOver() bool {
	return e.over
}

// Settling reports whether a move has been computed but not yet
// settled. While true, Move rejects input with ErrMoveInFlight.
func (e *Engine) Settling() bool {
	return e.phase == phaseSettling
}

// Tile returns a copy of the tile with the given ID.
func (e *Engine) Tile(id TileID) (Tile, bool) {
	t, ok := e.tiles[id]
	if !ok {
		return Tile{}, false
	}
	return *t, true
}

// Tiles returns copies of all live tiles in row-major order of their
// current coordinates. During the settling phase this includes merge
// movers parked on their survivor's cell.
func (e *Engine) Tiles() []Tile {
	out := make([]Tile, 0, len(e.tiles))
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if id := e.cells[row][col]; id != 0 {
				out = append(out, *e.tiles[id])
			}
		}
	}
	// Movers of pending merges are no longer in any cell.
	for _, pm := range e.pending {
		out = append(out, *e.tiles[pm.mover])
	}
	return out
}

// IDAt returns the tile ID occupying the cell, or 0 for an empty cell
// or out-of-range coordinates.
func (e *Engine) IDAt(row, col int) TileID {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return 0
	}
	return e.cells[row][col]
}

// Grid returns the board as a value matrix, 0 for empty cells.
func (e *Engine) Grid() [BoardSize][BoardSize]int {
	var g [BoardSize][BoardSize]int
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if id := e.cells[row][col]; id != 0 {
				g[row][col] = e.tiles[id].Value
			}
		}
	}
	return g
}

// MaxTile returns the highest tile value on the board.
func (e *Engine) MaxTile() int {
	maxVal := 0
	for _, t := range e.tiles {
		if t.Value > maxVal {
			maxVal = t.Value
		}
	}
	return maxVal
}

// Load replaces the board with the given value matrix, retiring all
// existing tiles and assigning fresh IDs to nonzero cells. Score and
// phase are reset. Zero values leave cells empty. Intended for tests
// and position analysis.
func (e *Engine) Load(values [BoardSize][BoardSize]int) {
	e.nextID = 0
	e.tiles = make(map[TileID]*Tile)
	e.cells = [BoardSize][BoardSize]TileID{}
	e.score = 0
	e.phase = phaseIdle
	e.pending = nil
	e.pendingDelta = 0
	e.over = false

	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if values[row][col] != 0 {
				e.place(row, col, values[row][col])
			}
		}
	}
}

// place creates a tile with a fresh ID at the given cell.
func (e *Engine) place(row, col, value int) *Tile {
	e.nextID++
	t := &Tile{ID: e.nextID, Value: value, Row: row, Col: col}
	e.tiles[t.ID] = t
	e.cells[row][col] = t.ID
	return t
}

// spawnTile creates a new tile (2 or 4) in a uniformly random empty
// cell. On a full board it is a defined no-op and returns nil.
func (e *Engine) spawnTile() *Effect {
	var empty [][2]int
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if e.cells[row][col] == 0 {
				empty = append(empty, [2]int{row, col})
			}
		}
	}
	if len(empty) == 0 {
		return nil
	}

	cell := empty[e.rng.Intn(len(empty))]

	value := 2
	if e.rng.Float64() < e.spawnFourProb {
		value = 4
	}

	t := e.place(cell[0], cell[1], value)
	return &Effect{
		Kind:  EffectSpawn,
		ID:    t.ID,
		ToRow: t.Row,
		ToCol: t.Col,
		Value: t.Value,
	}
}

// Settle completes the move computed by the last changed Move call:
// pending merges resolve (mover retired, survivor value doubled), the
// score accrues, one tile spawns, and the game-over predicate is
// re-evaluated. Calling Settle with no move in flight is a no-op that
// reports the current state.
//
// The presentation layer calls this after its slide animation has run;
// tests call it immediately for a synchronous move.
func (e *Engine) Settle() SettleResult {
	if e.phase != phaseSettling {
		return SettleResult{Score: e.score, GameOver: e.over}
	}

	for _, pm := range e.pending {
		delete(e.tiles, pm.mover)
		e.tiles[pm.survivor].Value *= 2
	}
	e.pending = nil

	delta := e.pendingDelta
	e.pendingDelta = 0
	e.score += delta

	spawned := e.spawnTile()
	e.over = e.IsGameOver()
	e.phase = phaseIdle

	return SettleResult{
		ScoreDelta: delta,
		Score:      e.score,
		Spawned:    spawned,
		GameOver:   e.over,
	}
}

// MoveAndSettle runs both phases back to back. Convenience for callers
// that do not animate.
func (e *Engine) MoveAndSettle(dir Direction) (MoveResult, SettleResult, error) {
	mv, err := e.Move(dir)
	if err != nil {
		return MoveResult{}, SettleResult{}, err
	}
	if !mv.Changed {
		return mv, SettleResult{Score: e.score, GameOver: e.over}, nil
	}
	return mv, e.Settle(), nil
}

// IsGameOver reports whether no move can change the board: every cell
// is occupied and no two orthogonally adjacent cells hold equal values.
// Pure predicate; checks each cell's right and bottom neighbor only.
func (e *Engine) IsGameOver() bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			id := e.cells[row][col]
			if id == 0 {
				return false
			}
			val := e.tiles[id].Value
			if col < BoardSize-1 {
				if right := e.cells[row][col+1]; right != 0 && e.tiles[right].Value == val {
					return false
				}
			}
			if row < BoardSize-1 {
				if below := e.cells[row+1][col]; below != 0 && e.tiles[below].Value == val {
					return false
				}
			}
		}
	}
	return true
}
