// Package game implements the 2048 board engine: an identity-preserving
// tile grid with sliding, merging, spawning, and a two-phase move cycle
// that lets a presentation layer animate slides before merges resolve.
// The package has no dependencies outside the standard library.
package game

// BoardSize is the board dimension. The grid is always square.
const BoardSize = 4

// TileID is a stable identifier for a tile. A tile keeps its ID for as
// long as it exists: sliding never changes it, and a merge retires the
// moving tile's ID while the surviving tile keeps its own with a
// doubled value. The zero ID means "no tile".
type TileID int

// Tile is a single tile on the board: a power-of-two value and a grid
// coordinate. Tiles are addressed by ID; the structs handed out by the
// engine are copies.
type Tile struct {
	ID    TileID
	Value int
	Row   int
	Col   int
}

// Direction is one of the four move directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Invalid"
	}
}

// valid reports whether d is one of the four known directions.
func (d Direction) valid() bool {
	return d >= DirUp && d <= DirRight
}

// delta returns the per-step row/column offset for the direction.
func (d Direction) delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	}
	return 0, 0
}
