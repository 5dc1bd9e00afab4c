package twenty48

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StateWin         GameStateType = "win"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Mode    string // "classic" or "endless"
	Target  int
	Score   int
	Best    int
	Board   [][]int // Board[row][col], row 0 at the bottom
	MaxTile int
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver && g.won && g.mode == ModeClassic:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	}

	size := g.model.Size()
	board := make([][]int, size)
	for row := range size {
		board[row] = make([]int, size)
		for col := range size {
			if t := g.model.Tile(col, row); t != nil {
				board[row][col] = t.Value()
			}
		}
	}

	return Snapshot{
		Tick:    g.tick,
		Mode:    string(g.mode),
		Target:  g.cfg.Rules.Target,
		Score:   g.model.Score(),
		Best:    g.model.MaxScore(),
		Board:   board,
		MaxTile: g.maxTile,
		State:   state,
	}
}
