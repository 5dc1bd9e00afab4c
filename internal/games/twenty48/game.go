package twenty48

import (
	"math/rand"

	"github.com/vspivak/twenty48/internal/config"
	"github.com/vspivak/twenty48/internal/core"
	"github.com/vspivak/twenty48/internal/game2048"
	"github.com/vspivak/twenty48/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	// ModeClassic ends the game as soon as the target tile appears.
	ModeClassic Mode = "classic"
	// ModeEndless keeps going past the target until the board is stuck.
	ModeEndless Mode = "endless"
)

// Game drives a game2048.Model as a playable terminal game: it spawns
// tiles, maps input to tilts, and decides when a session is over.
type Game struct {
	mode Mode
	cfg  config.GameConfig
	rng  *rand.Rand
	tick uint64

	model   *game2048.Model
	maxTile int // Largest tile on the board, refreshed on every change

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver      bool
	won           bool // Target tile reached
	paused        bool
	tooSmall      bool
	moveProcessed bool // Prevent multiple tilts per tick
}

// Package-level config path, set by the CLI before creating games.
var configPath string

// SetConfigPath sets the path to a custom game config YAML.
// Empty means the default search order.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewEndless creates an endless mode game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register("classic", func() registry.Game {
		return New()
	})
	registry.Register("endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "2048 (Endless)"
	}
	return "2048"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.Load(configPath)
	if err != nil {
		gameCfg = config.Default()
	}
	g.cfg = gameCfg

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.won = false
	g.paused = false
	g.moveProcessed = false

	// Keep the model across restarts so the best-score high-water mark
	// survives; recreate only when the configured size changed.
	if g.model == nil || g.model.Size() != g.cfg.Board.Size {
		g.model = game2048.NewModel(g.cfg.Board.Size)
		g.model.OnChange(func(m *game2048.Model) {
			g.refreshMaxTile()
		})
	} else {
		g.model.Clear()
	}

	for range g.cfg.Spawn.StartTiles {
		g.spawnTile()
	}
	g.refreshMaxTile()

	g.checkScreenSize()
}

// Model returns the underlying rules engine, for tests and debugging.
func (g *Game) Model() *game2048.Model {
	return g.model
}

// spawnTile places a new tile (2 or 4) in a random empty cell.
func (g *Game) spawnTile() {
	type cell struct{ col, row int }
	var empty []cell

	size := g.model.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if g.model.Tile(col, row) == nil {
				empty = append(empty, cell{col, row})
			}
		}
	}
	if len(empty) == 0 {
		return
	}

	c := empty[g.rng.Intn(len(empty))]

	value := 2
	if g.rng.Float64() < g.cfg.Spawn.FourProbability {
		value = 4
	}

	g.model.AddTile(game2048.NewTile(value, c.col, c.row))
}

// refreshMaxTile rescans the board for the largest tile value.
func (g *Game) refreshMaxTile() {
	maxVal := 0
	for t := range g.model.Board().All() {
		if t.Value() > maxVal {
			maxVal = t.Value()
		}
	}
	g.maxTile = maxVal
}

// MaxTile returns the largest tile value on the board.
func (g *Game) MaxTile() int {
	return g.maxTile
}

// checkScreenSize checks if the screen is large enough for the board
// plus the HUD.
func (g *Game) checkScreenSize() {
	minW := g.model.Size()*cellWidth + 1 + 4
	minH := g.model.Size()*cellHeight + 1 + hudHeight + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.moveProcessed = false

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.gameOver {
		// Will be reset by the platform
		return core.StepResult{State: g.State()}
	}

	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	var side game2048.Side
	moved := false

	switch {
	case in.Has(core.ActionUp):
		side = game2048.SideUp
		moved = true
	case in.Has(core.ActionDown):
		side = game2048.SideDown
		moved = true
	case in.Has(core.ActionLeft):
		side = game2048.SideLeft
		moved = true
	case in.Has(core.ActionRight):
		side = game2048.SideRight
		moved = true
	}

	if moved && !g.moveProcessed {
		g.processTilt(side)
		g.moveProcessed = true
	}

	return core.StepResult{State: g.State()}
}

// processTilt runs one tilt and the follow-up bookkeeping: spawning a
// tile if the board changed and deciding whether the session is over.
func (g *Game) processTilt(side game2048.Side) {
	changed := g.model.Tilt(side)
	if !changed {
		// The board didn't move - no new tile appears.
		return
	}

	g.spawnTile()

	if g.maxTile >= g.cfg.Rules.Target {
		g.won = true
	}

	switch g.mode {
	case ModeClassic:
		// Classic stops at the target tile or a dead board.
		if g.won || g.model.GameOver() {
			g.gameOver = true
		}
	case ModeEndless:
		// Endless only stops when no move remains.
		if !game2048.AtLeastOneMoveExists(g.model.Board()) {
			g.gameOver = true
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.model.Score(),
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
