package game

// cellPos is a grid coordinate used by the scan order.
type cellPos struct {
	row, col int
}

// scanOrder returns all cells ordered so that tiles farthest in the
// movement direction are processed first. A tile must claim its
// destination before the tiles behind it walk, otherwise tiles pass
// through or merge out of order.
func scanOrder(dir Direction) []cellPos {
	order := make([]cellPos, 0, BoardSize*BoardSize)
	switch dir {
	case DirLeft:
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				order = append(order, cellPos{row, col})
			}
		}
	case DirRight:
		for row := 0; row < BoardSize; row++ {
			for col := BoardSize - 1; col >= 0; col-- {
				order = append(order, cellPos{row, col})
			}
		}
	case DirUp:
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				order = append(order, cellPos{row, col})
			}
		}
	case DirDown:
		for row := BoardSize - 1; row >= 0; row-- {
			for col := 0; col < BoardSize; col++ {
				order = append(order, cellPos{row, col})
			}
		}
	}
	return order
}

// Move computes one move: every tile slides as far as possible in the
// direction, equal-valued tiles merge once per destination cell, and
// the logical grid is updated immediately so occupancy queries stay
// correct while the move settles.
//
// Merges are recorded as pending: the mover keeps its ID and is parked
// on the survivor's cell (outside the grid) until Settle retires it and
// doubles the survivor. This is what lets the presentation animate the
// slide before the value changes.
//
// A move that changes nothing is a complete no-op: no spawn, no score,
// no settling phase, and the engine accepts the next move immediately.
func (e *Engine) Move(dir Direction) (MoveResult, error) {
	if !dir.valid() {
		return MoveResult{}, ErrInvalidDirection
	}
	if e.phase == phaseSettling {
		return MoveResult{}, ErrMoveInFlight
	}

	// The flag guards the whole mutation; the no-op path below clears it.
	e.phase = phaseSettling

	dr, dc := dir.delta()

	// Cells that already received a merge this move. Such a cell is no
	// longer a merge target, only a blocking occupant: its survivor
	// still holds the pre-merge value until Settle, so a value check
	// alone would merge it twice.
	var merged [BoardSize][BoardSize]bool

	var effects []Effect
	delta := 0
	changed := false

	for _, pos := range scanOrder(dir) {
		id := e.cells[pos.row][pos.col]
		if id == 0 {
			continue
		}
		t := e.tiles[id]

		// Walk one step at a time to the farthest reachable cell.
		row, col := t.Row, t.Col
		for {
			nr, nc := row+dr, col+dc
			if nr < 0 || nr >= BoardSize || nc < 0 || nc >= BoardSize {
				break
			}
			occupant := e.cells[nr][nc]
			if occupant == 0 {
				row, col = nr, nc
				continue
			}
			if e.tiles[occupant].Value == t.Value && !merged[nr][nc] {
				// One more step onto the equal tile, then stop.
				row, col = nr, nc
			}
			break
		}

		if row == t.Row && col == t.Col {
			continue
		}
		changed = true

		e.cells[t.Row][t.Col] = 0
		dest := e.cells[row][col]
		if dest == 0 {
			e.cells[row][col] = id
			effects = append(effects, Effect{
				Kind:    EffectSlide,
				ID:      id,
				FromRow: t.Row, FromCol: t.Col,
				ToRow: row, ToCol: col,
				Value: t.Value,
			})
		} else {
			// Pending merge: the cell keeps the survivor's ID, the
			// mover is destroyed at settle time.
			merged[row][col] = true
			e.pending = append(e.pending, pendingMerge{mover: id, survivor: dest})
			delta += t.Value * 2
			effects = append(effects, Effect{
				Kind:    EffectMerge,
				ID:      id,
				Into:    dest,
				FromRow: t.Row, FromCol: t.Col,
				ToRow: row, ToCol: col,
				Value: t.Value,
			})
		}
		t.Row, t.Col = row, col
	}

	if !changed {
		e.phase = phaseIdle
		return MoveResult{}, nil
	}

	e.pendingDelta = delta
	return MoveResult{Changed: true, ScoreDelta: delta, Effects: effects}, nil
}
