// Package game2048 implements the rules of the sliding-tile game 2048:
// board state, directional tilts with merging, score accounting, and
// game-over detection. It is a pure model layer with no rendering,
// input handling, or persistence; a platform drives it and reacts to
// change notifications. The model is not safe for concurrent use.
package game2048

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// MaxPiece is the largest tile value. A tile of this value on the
// board ends the game.
const MaxPiece = 2048

// ChangeFunc is called after every tilt so an external view can redraw.
type ChangeFunc func(*Model)

// Model is the complete state of one game: a board, the running score,
// the best score seen across finished games, and the game-over flag.
type Model struct {
	board    *Board
	score    int
	maxScore int
	gameOver bool
	onChange []ChangeFunc
}

// NewModel creates a game on an empty size x size board with score 0.
func NewModel(size int) *Model {
	return &Model{board: NewBoard(size)}
}

// NewModelFromRaw creates a game in an explicit state, for
// deterministic setup in tests. rawValues[row][col] gives tile values
// with row 0 at the bottom and 0 meaning empty.
func NewModelFromRaw(rawValues [][]int, score, maxScore int, gameOver bool) *Model {
	return &Model{
		board:    NewBoardFromRaw(rawValues),
		score:    score,
		maxScore: maxScore,
		gameOver: gameOver,
	}
}

// Tile returns the tile at (col, row), or nil if that cell is empty.
func (m *Model) Tile(col, row int) *Tile {
	return m.board.Tile(col, row)
}

// Board returns the model's board for read access, e.g. to evaluate
// the exported board predicates. Mutate it only through the model.
func (m *Model) Board() *Board {
	return m.board
}

// Size returns the number of cells on one side of the board.
func (m *Model) Size() int {
	return m.board.Size()
}

// Score returns the current score.
func (m *Model) Score() int {
	return m.score
}

// MaxScore returns the highest score reached by a finished game.
func (m *Model) MaxScore() int {
	return m.maxScore
}

// GameOver reports whether the game has ended: a tile of value
// MaxPiece exists, or no legal move remains. The board conditions are
// computed fresh on every call rather than cached.
func (m *Model) GameOver() bool {
	return m.gameOver || MaxTileExists(m.board) || !AtLeastOneMoveExists(m.board)
}

// Clear empties the board and resets the score. The best score is kept.
func (m *Model) Clear() {
	m.board.Clear()
	m.score = 0
	m.gameOver = false
}

// AddTile places t on the board. The cell at t's position must be
// empty; violating that is a programming error and panics.
func (m *Model) AddTile(t *Tile) {
	m.board.AddTile(t)
}

// OnChange registers fn to be called after every tilt.
func (m *Model) OnChange(fn ChangeFunc) {
	m.onChange = append(m.onChange, fn)
}

// Tilt slides every tile toward side and merges equal adjacent pairs.
// Returns whether the tilt changed the board.
//
// Merge rules: two tiles adjacent in the direction of motion with the
// same value merge into one tile of twice the value, which is added to
// the score; a tile that results from a merge cannot merge again in
// the same tilt; of three equal adjacent tiles, the two closest to the
// leading edge merge and the trailing one does not.
func (m *Model) Tilt(side Side) bool {
	changed := false
	size := m.board.Size()

	for lane := 0; lane < size; lane++ {
		// Collect the lane's tiles leading edge first.
		tiles := make([]*Tile, 0, size)
		for localCol := size - 1; localCol >= 0; localCol-- {
			t := m.board.Tile(side.Col(localCol, lane, size), side.Row(localCol, lane, size))
			if t != nil {
				tiles = append(tiles, t)
			}
		}

		// Merge adjacent equal pairs. Scanning from the leading edge
		// guarantees that of three equal tiles the leading pair merges,
		// and skipping past a fresh merge keeps it from merging twice.
		for i := 0; i < len(tiles)-1; i++ {
			if tiles[i].Value() != tiles[i+1].Value() {
				continue
			}
			absorbed := tiles[i+1]
			tiles[i] = NewTile(tiles[i].Value()*2, tiles[i].Col(), tiles[i].Row())
			tiles = append(tiles[:i+1], tiles[i+2:]...)
			m.board.remove(absorbed)
			m.score += tiles[i].Value()
			changed = true
		}

		// Pack survivors against the leading edge.
		for j, t := range tiles {
			localCol := size - 1 - j
			if m.board.Move(side.Col(localCol, lane, size), side.Row(localCol, lane, size), t) {
				changed = true
			}
		}
	}

	m.checkGameOver()
	m.notify()
	return changed
}

// checkGameOver latches the game-over flag and, when a game first
// ends, rolls the score into the best-score high-water mark.
func (m *Model) checkGameOver() {
	if m.gameOver {
		return
	}
	if MaxTileExists(m.board) || !AtLeastOneMoveExists(m.board) {
		m.gameOver = true
		if m.score > m.maxScore {
			m.maxScore = m.score
		}
	}
}

// notify calls every registered change callback.
func (m *Model) notify() {
	for _, fn := range m.onChange {
		fn(m)
	}
}

// EmptySpaceExists reports whether at least one cell of b is empty.
func EmptySpaceExists(b *Board) bool {
	for col := 0; col < b.Size(); col++ {
		for row := 0; row < b.Size(); row++ {
			if b.Tile(col, row) == nil {
				return true
			}
		}
	}
	return false
}

// MaxTileExists reports whether any tile on b has value MaxPiece.
func MaxTileExists(b *Board) bool {
	for t := range b.All() {
		if t.Value() == MaxPiece {
			return true
		}
	}
	return false
}

// AtLeastOneMoveExists reports whether b has a legal move: an empty
// cell, or two orthogonally adjacent tiles with equal values.
func AtLeastOneMoveExists(b *Board) bool {
	size := b.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			t := b.Tile(col, row)
			if t == nil {
				return true
			}
			if col < size-1 {
				if right := b.Tile(col+1, row); right != nil && right.Value() == t.Value() {
					return true
				}
			}
			if row < size-1 {
				if above := b.Tile(col, row+1); above != nil && above.Value() == t.Value() {
					return true
				}
			}
		}
	}
	return false
}

// String renders the model as multi-line text: the grid top row first,
// then the score, best score, and game status. The rendering is
// deterministic and doubles as the basis for Equal and Hash.
func (m *Model) String() string {
	var sb strings.Builder
	sb.WriteString("\n[\n")
	for row := m.Size() - 1; row >= 0; row-- {
		for col := 0; col < m.Size(); col++ {
			if t := m.Tile(col, row); t == nil {
				sb.WriteString("|    ")
			} else {
				fmt.Fprintf(&sb, "|%4d", t.Value())
			}
		}
		sb.WriteString("|\n")
	}
	over := "not over"
	if m.GameOver() {
		over = "over"
	}
	fmt.Fprintf(&sb, "] %d (max: %d) (game is %s) \n", m.Score(), m.MaxScore(), over)
	return sb.String()
}

// Equal reports whether two models render to the same text.
func (m *Model) Equal(o *Model) bool {
	if o == nil {
		return false
	}
	return m.String() == o.String()
}

// Hash returns a hash of the model's rendered text, consistent with Equal.
func (m *Model) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(m.String()))
	return h.Sum64()
}
