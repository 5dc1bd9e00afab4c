package twenty48

import (
	"testing"

	"github.com/vspivak/twenty48/internal/core"
	"github.com/vspivak/twenty48/internal/game2048"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func newTestGame(t *testing.T, mode Mode) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var g *Game
	if mode == ModeEndless {
		g = NewEndless()
	} else {
		g = New()
	}
	g.Reset(testConfig())
	return g
}

// injectBoard swaps in a fixed board, keeping score bookkeeping wired.
func injectBoard(g *Game, raw [][]int) {
	g.model = game2048.NewModelFromRaw(raw, g.model.Score(), g.model.MaxScore(), false)
	g.model.OnChange(func(m *game2048.Model) {
		g.refreshMaxTile()
	})
	g.refreshMaxTile()
}

func boardValues(g *Game) [][]int {
	size := g.model.Size()
	vals := make([][]int, size)
	for row := range size {
		vals[row] = make([]int, size)
		for col := range size {
			if tile := g.model.Tile(col, row); tile != nil {
				vals[row][col] = tile.Value()
			}
		}
	}
	return vals
}

func countTiles(g *Game) int {
	n := 0
	for range g.model.Board().All() {
		n++
	}
	return n
}

func TestDeterministicSpawn(t *testing.T) {
	g1 := newTestGame(t, ModeClassic)
	g2 := newTestGame(t, ModeClassic)

	if !g1.Model().Equal(g2.Model()) {
		t.Errorf("Same seed should produce same initial board:\n%v\nvs\n%v", g1.Model(), g2.Model())
	}
}

func TestResetSpawnsStartTiles(t *testing.T) {
	g := newTestGame(t, ModeClassic)

	if got, want := countTiles(g), g.cfg.Spawn.StartTiles; got != want {
		t.Errorf("Reset spawned %d tiles, want %d", got, want)
	}
	for tile := range g.model.Board().All() {
		if v := tile.Value(); v != 2 && v != 4 {
			t.Errorf("Spawned tile value = %d, want 2 or 4", v)
		}
	}
}

func TestStepTiltSpawnsTile(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	injectBoard(g, [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 2, 0, 0},
		{0, 2, 0, 0},
	})

	input := core.NewInputFrame()
	input.Set(core.ActionUp)
	g.Step(input)

	// The pair merges into 4, then one tile spawns.
	if got := countTiles(g); got != 2 {
		t.Errorf("After merging tilt: %d tiles, want 2", got)
	}
	if g.model.Score() != 4 {
		t.Errorf("Score = %d, want 4", g.model.Score())
	}
}

func TestNoChangeNoSpawn(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	injectBoard(g, [][]int{
		{2, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	// Both tiles already rest on the bottom edge and cannot merge.
	input := core.NewInputFrame()
	input.Set(core.ActionDown)
	g.Step(input)

	if got := countTiles(g); got != 2 {
		t.Errorf("No-op tilt spawned a tile: %d tiles, want 2", got)
	}
}

func TestOneTiltPerTick(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	injectBoard(g, [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	// Up and Left both held; only one tilt may run. Up slides both
	// tiles to the top without merging; a Left tilt would merge them
	// and score.
	input := core.NewInputFrame()
	input.Set(core.ActionUp)
	input.Set(core.ActionLeft)
	g.Step(input)

	if got := countTiles(g); got != 3 {
		t.Errorf("After one tick: %d tiles, want 3 (two moved plus one spawn)", got)
	}
	if g.model.Score() != 0 {
		t.Errorf("Score = %d, want 0 (second tilt must not run)", g.model.Score())
	}
}

func TestClassicWinAtTarget(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	injectBoard(g, [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{1024, 1024, 0, 0},
	})

	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	g.Step(input)

	if !g.won {
		t.Error("Reaching the target tile should set won")
	}
	if !g.gameOver {
		t.Error("Classic mode should end when the target tile appears")
	}
	if got := g.Snapshot().State; got != StateWin {
		t.Errorf("Snapshot state = %q, want %q", got, StateWin)
	}
}

func TestEndlessContinuesPastTarget(t *testing.T) {
	g := newTestGame(t, ModeEndless)
	injectBoard(g, [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{1024, 1024, 0, 0},
	})

	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	g.Step(input)

	if !g.won {
		t.Error("Reaching the target tile should set won")
	}
	if g.gameOver {
		t.Error("Endless mode should keep going past the target tile")
	}

	// Still accepts tilts.
	input = core.NewInputFrame()
	input.Set(core.ActionDown)
	g.Step(input)
	if g.gameOver {
		t.Error("Endless mode ended on a live board")
	}
}

func TestEndlessEndsWhenStuck(t *testing.T) {
	g := newTestGame(t, ModeEndless)

	// One merge left. After it the spawned tile (2 or 4) cannot touch
	// an equal neighbor, so the board is stuck whatever spawns.
	injectBoard(g, [][]int{
		{2, 2, 8, 16},
		{64, 32, 128, 256},
		{512, 1024, 64, 4096},
		{8192, 16384, 32768, 65536},
	})

	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	g.Step(input)

	if game2048.AtLeastOneMoveExists(g.model.Board()) {
		t.Fatal("Fixture error: board should be stuck after the tilt")
	}
	if !g.gameOver {
		t.Error("Endless mode should end when no move remains")
	}
}

func TestGameOverIgnoresTilts(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	g.gameOver = true
	before := countTiles(g)

	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	g.Step(input)

	if got := countTiles(g); got != before {
		t.Errorf("Tilt after game over changed the board: %d tiles, want %d", got, before)
	}
}

func TestPauseTogglesAndBlocksTilts(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	before := boardValues(g)

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	input.Set(core.ActionLeft)
	g.Step(input)

	if !g.paused {
		t.Error("Pause action should pause the game")
	}
	after := boardValues(g)
	for row := range before {
		for col := range before[row] {
			if before[row][col] != after[row][col] {
				t.Fatal("Board changed while paused")
			}
		}
	}

	input = core.NewInputFrame()
	input.Set(core.ActionPause)
	g.Step(input)
	if g.paused {
		t.Error("Second pause action should resume the game")
	}
}

func TestRestartKeepsBestScore(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	injectBoard(g, [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{1024, 1024, 0, 0},
	})

	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	g.Step(input)

	best := g.model.MaxScore()
	if best < 2048 {
		t.Fatalf("MaxScore = %d after winning merge, want >= 2048", best)
	}

	g.Reset(testConfig())

	if g.model.MaxScore() != best {
		t.Errorf("MaxScore after restart = %d, want %d", g.model.MaxScore(), best)
	}
	if g.model.Score() != 0 {
		t.Errorf("Score after restart = %d, want 0", g.model.Score())
	}
}

func TestMaxTileTracking(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	injectBoard(g, [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 512, 0, 0},
		{2, 2, 0, 4},
	})

	if g.MaxTile() != 512 {
		t.Errorf("MaxTile = %d, want 512", g.MaxTile())
	}

	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	g.Step(input)

	if g.MaxTile() < 4 {
		t.Errorf("MaxTile = %d after merge, want >= 4", g.MaxTile())
	}
}

func TestTooSmallScreen(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 10, ScreenH: 5, TickRate: 60, Seed: 1})

	if !g.tooSmall {
		t.Error("10x5 screen should be flagged too small")
	}
	if got := g.Snapshot().State; got != StatePausedSmall {
		t.Errorf("Snapshot state = %q, want %q", got, StatePausedSmall)
	}

	before := countTiles(g)
	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	g.Step(input)
	if got := countTiles(g); got != before {
		t.Error("Input should be ignored while the window is too small")
	}
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	injectBoard(g, [][]int{
		{2, 0, 0, 0},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	snap := g.Snapshot()

	if snap.Mode != "classic" {
		t.Errorf("Snapshot.Mode = %q, want %q", snap.Mode, "classic")
	}
	if snap.State != StatePlaying {
		t.Errorf("Snapshot.State = %q, want %q", snap.State, StatePlaying)
	}
	if snap.Board[0][0] != 2 || snap.Board[1][2] != 4 {
		t.Errorf("Snapshot.Board = %v, want 2 at (0,0) and 4 at (2,1)", snap.Board)
	}
	if snap.MaxTile != 4 {
		t.Errorf("Snapshot.MaxTile = %d, want 4", snap.MaxTile)
	}
}

func TestRenderSmoke(t *testing.T) {
	g := newTestGame(t, ModeClassic)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if out == "" {
		t.Fatal("Render produced empty output")
	}
}

func TestIDAndTitle(t *testing.T) {
	if got := New().ID(); got != "classic" {
		t.Errorf("ID = %q, want %q", got, "classic")
	}
	if got := NewEndless().ID(); got != "endless" {
		t.Errorf("ID = %q, want %q", got, "endless")
	}
	if got := NewEndless().Title(); got != "2048 (Endless)" {
		t.Errorf("Title = %q, want %q", got, "2048 (Endless)")
	}
}
