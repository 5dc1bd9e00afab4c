package game2048

import (
	"fmt"
	"iter"
)

// Board is a square grid of cells, each holding at most one tile.
//
// The board works purely in physical coordinates: column 0 is the left
// edge and row 0 is the bottom edge. Direction-dependent views are
// expressed by translating coordinates through a Side transform at the
// call site, so the board carries no orientation state of its own.
type Board struct {
	grid [][]*Tile
}

// NewBoard creates an empty board with the given side length.
func NewBoard(size int) *Board {
	if size < 1 {
		panic(fmt.Sprintf("game2048: invalid board size %d", size))
	}
	grid := make([][]*Tile, size)
	for row := range grid {
		grid[row] = make([]*Tile, size)
	}
	return &Board{grid: grid}
}

// NewBoardFromRaw creates a board from raw tile values, where
// rawValues[row][col] gives the value at (col, row) with row 0 at the
// bottom, and 0 means the cell is empty. Used for deterministic setup.
func NewBoardFromRaw(rawValues [][]int) *Board {
	b := NewBoard(len(rawValues))
	for row, vals := range rawValues {
		if len(vals) != len(rawValues) {
			panic(fmt.Sprintf("game2048: raw row %d has %d values on a size-%d board", row, len(vals), len(rawValues)))
		}
		for col, v := range vals {
			if v != 0 {
				b.AddTile(NewTile(v, col, row))
			}
		}
	}
	return b
}

// Size returns the number of cells on one side of the board.
func (b *Board) Size() int {
	return len(b.grid)
}

// Tile returns the tile at (col, row), or nil if the cell is empty.
// Coordinates must be within 0..Size()-1.
func (b *Board) Tile(col, row int) *Tile {
	b.checkBounds(col, row)
	return b.grid[row][col]
}

// Clear removes all tiles from the board.
func (b *Board) Clear() {
	for row := range b.grid {
		for col := range b.grid[row] {
			b.grid[row][col] = nil
		}
	}
}

// AddTile places t at its own (col, row). The cell must be empty;
// adding over an existing tile is a contract violation and panics.
func (b *Board) AddTile(t *Tile) {
	b.checkBounds(t.col, t.row)
	if b.grid[t.row][t.col] != nil {
		panic(fmt.Sprintf("game2048: cell (%d,%d) is already occupied", t.col, t.row))
	}
	b.grid[t.row][t.col] = t
}

// Move relocates t to (col, row), vacating the cell t currently
// occupies. The destination must be empty or t's own cell. Returns
// whether the tile's position actually changed, which callers use to
// detect whether a tilt had any effect.
func (b *Board) Move(col, row int, t *Tile) bool {
	b.checkBounds(col, row)
	if b.grid[t.row][t.col] != nil {
		b.grid[t.row][t.col] = nil
	}
	if col == t.col && row == t.row {
		b.grid[row][col] = t
		return false
	}
	if b.grid[row][col] != nil {
		panic(fmt.Sprintf("game2048: cannot move tile onto occupied cell (%d,%d)", col, row))
	}
	b.grid[row][col] = NewTile(t.value, col, row)
	return true
}

// remove takes t off the board. Used when a tile is absorbed by a merge.
func (b *Board) remove(t *Tile) {
	b.grid[t.row][t.col] = nil
}

// All returns an iterator over every tile currently on the board, in
// row-major order from the bottom row up. The sequence is restartable.
func (b *Board) All() iter.Seq[*Tile] {
	return func(yield func(*Tile) bool) {
		for row := range b.grid {
			for col := range b.grid[row] {
				if t := b.grid[row][col]; t != nil {
					if !yield(t) {
						return
					}
				}
			}
		}
	}
}

func (b *Board) checkBounds(col, row int) {
	if col < 0 || col >= len(b.grid) || row < 0 || row >= len(b.grid) {
		panic(fmt.Sprintf("game2048: coordinates (%d,%d) out of range for size-%d board", col, row, len(b.grid)))
	}
}
