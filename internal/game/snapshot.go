package game

// Snapshot captures the observable game state for determinism checks
// and debugging.
type Snapshot struct {
	Grid     [BoardSize][BoardSize]int
	Score    int
	MaxTile  int
	Settling bool
	GameOver bool
}

// Snapshot returns the current observable state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Grid:     e.Grid(),
		Score:    e.score,
		MaxTile:  e.MaxTile(),
		Settling: e.phase == phaseSettling,
		GameOver: e.over,
	}
}
