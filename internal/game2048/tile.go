package game2048

import "fmt"

// Tile is a single numbered piece on the board. A tile never moves or
// changes value after creation; sliding and merging produce new tiles.
type Tile struct {
	value int
	col   int
	row   int
}

// NewTile creates a tile with the given value at (col, row).
// Values are powers of two starting at 2.
func NewTile(value, col, row int) *Tile {
	return &Tile{value: value, col: col, row: row}
}

// Value returns the tile's number.
func (t *Tile) Value() int {
	return t.value
}

// Col returns the tile's column, 0 at the left edge.
func (t *Tile) Col() int {
	return t.col
}

// Row returns the tile's row, 0 at the bottom edge.
func (t *Tile) Row() int {
	return t.row
}

// String returns a compact debug form like "4@(1,2)".
func (t *Tile) String() string {
	return fmt.Sprintf("%d@(%d,%d)", t.value, t.col, t.row)
}
