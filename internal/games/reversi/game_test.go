package reversi

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-reversi/internal/config"
	"github.com/vovakirdan/tui-reversi/internal/core"
	"github.com/vovakirdan/tui-reversi/internal/registry"
)

// newTestGame resets g on an 80x24 screen at 60 ticks per second with the
// default config, independent of any user config file.
func newTestGame(t *testing.T, g *Game) *Game {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reversi.yaml")
	if err := os.WriteFile(path, config.DefaultYAML(), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	return g
}

// useController swaps in a controller at an arbitrary position.
func useController(g *Game, c *Controller) {
	g.ctrl = c
	g.ctrl.OnEvent(g.onEvent)
}

func press(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func idle(g *Game, n int) {
	for range n {
		g.Step(core.NewInputFrame())
	}
}

func render(g *Game) *core.Screen {
	s := core.NewScreen(g.screenW, g.screenH)
	g.Render(s)
	return s
}

// playOpening moves the cursor from (2,2) to (1,3) and places Black there.
func playOpening(g *Game) {
	press(g, core.ActionUp)
	press(g, core.ActionRight)
	press(g, core.ActionConfirm)
}

func TestGameRegistered(t *testing.T) {
	tests := []struct {
		id, title string
	}{
		{"reversi", "Reversi"},
		{"reversi_cpu", "Reversi vs CPU"},
	}
	for _, tt := range tests {
		g, err := registry.Create(tt.id)
		if err != nil {
			t.Fatalf("Create(%q) error: %v", tt.id, err)
		}
		if g.ID() != tt.id || g.Title() != tt.title {
			t.Errorf("Create(%q) = %q/%q", tt.id, g.ID(), g.Title())
		}
	}

	if GameID(ModeCPU) != "reversi_cpu" {
		t.Error("CPU mode should map to reversi_cpu")
	}
}

func TestGameResetState(t *testing.T) {
	g := newTestGame(t, NewVsCPU())

	st := g.State()
	if st.Score1 != 2 || st.Score2 != 2 || st.Moves != 0 || st.GameOver || st.Mode != "cpu" {
		t.Errorf("State() = %+v", st)
	}
	if g.Cursor() != (Coord{2, 2}) {
		t.Errorf("Cursor() = %v, want (2,2)", g.Cursor())
	}
}

func TestGameCursorClamps(t *testing.T) {
	g := newTestGame(t, New())

	for range 5 {
		press(g, core.ActionUp)
	}
	for range 5 {
		press(g, core.ActionLeft)
	}
	if g.Cursor() != (Coord{0, 0}) {
		t.Errorf("Cursor() = %v, want (0,0)", g.Cursor())
	}

	for range 9 {
		press(g, core.ActionDown)
		press(g, core.ActionRight)
	}
	if g.Cursor() != (Coord{5, 5}) {
		t.Errorf("Cursor() = %v, want (5,5)", g.Cursor())
	}
}

func TestGameConfirmPlacesDisc(t *testing.T) {
	g := newTestGame(t, New())

	// Cursor starts on an occupied cell; confirming there is ignored
	press(g, core.ActionConfirm)
	if g.State().Moves != 0 {
		t.Fatal("illegal confirm should be ignored")
	}

	playOpening(g)

	st := g.State()
	if st.Score1 != 4 || st.Score2 != 1 || st.Moves != 1 || st.Mode != "friend" {
		t.Errorf("State() = %+v", st)
	}
	if g.Controller().Current() != White {
		t.Error("White should move next")
	}
	if g.OpponentPending() {
		t.Error("friend mode should not schedule the CPU")
	}
}

func TestGameCPUReplyAfterDelay(t *testing.T) {
	g := newTestGame(t, NewVsCPU())
	playOpening(g)

	if !g.OpponentPending() {
		t.Fatal("CPU reply should be pending")
	}

	// Confirm ran on tick 3; the reply is due OpponentDelay later
	idle(g, int(g.ticks(OpponentDelay))-1)
	if g.Controller().Board().At(Coord{1, 2}) != Empty {
		t.Fatal("CPU replied before its delay")
	}

	idle(g, 1)
	b := g.Controller().Board()
	if b.At(Coord{1, 2}) != White || b.At(Coord{2, 2}) != White {
		t.Error("CPU should reply (1,2) flipping (2,2)")
	}
	if g.Controller().Current() != Black || g.OpponentPending() {
		t.Error("Black should be back on move with nothing pending")
	}
}

func TestGameUndoAgainstCPU(t *testing.T) {
	g := newTestGame(t, NewVsCPU())
	ctrl := g.Controller()
	playOpening(g)
	afterBlack := ctrl.Board()
	idle(g, 30)

	if g.State().Moves != 2 || ctrl.HistoryLen() != 2 {
		t.Fatalf("Moves = %d, history = %d; want 2 and 2 after the CPU reply", g.State().Moves, ctrl.HistoryLen())
	}

	// One undo takes back only the CPU reply
	press(g, core.ActionUndo)
	if ctrl.HistoryLen() != 1 {
		t.Errorf("history = %d after one undo, want 1", ctrl.HistoryLen())
	}
	if ctrl.Current() != White || ctrl.Board() != afterBlack {
		t.Error("undo should restore the position after Black's move with White to move")
	}

	// The CPU plays its reply again once the delay has passed
	idle(g, int(g.ticks(OpponentDelay))+1)
	if g.State().Moves != 2 || ctrl.Current() != Black {
		t.Errorf("Moves = %d, current = %v; want the CPU to have replied again", g.State().Moves, ctrl.Current())
	}
	if ctrl.HistoryLen() != 2 {
		t.Errorf("history = %d after the repeated reply, want 2", ctrl.HistoryLen())
	}
}

func TestGameUndoCancelsPendingCPU(t *testing.T) {
	g := newTestGame(t, NewVsCPU())
	playOpening(g)
	press(g, core.ActionUndo)

	idle(g, 40)
	if g.Controller().Board() != NewBoard() {
		t.Error("cancelled CPU reply still landed")
	}
	if g.OpponentPending() {
		t.Error("stale task should be dropped")
	}
}

func TestGameUndoEmptyIgnored(t *testing.T) {
	g := newTestGame(t, New())
	press(g, core.ActionUndo)
	if g.State().Moves != 0 || g.Controller().Current() != Black {
		t.Error("undo with no history should do nothing")
	}
}

func TestGameToggleModeHandsWhiteToCPU(t *testing.T) {
	g := newTestGame(t, New())
	playOpening(g)

	press(g, core.ActionToggleMode)
	if g.State().Mode != "cpu" {
		t.Fatalf("Mode = %q, want cpu", g.State().Mode)
	}
	if g.Toast() != "Mode: vs CPU" {
		t.Errorf("Toast() = %q", g.Toast())
	}
	if g.Controller().HistoryLen() != 1 {
		t.Error("mode change should not add history")
	}

	idle(g, 30)
	if g.Controller().Board().At(Coord{1, 2}) != White {
		t.Error("CPU should take over White's move")
	}
}

func TestGameRestartKeepsMode(t *testing.T) {
	g := newTestGame(t, New())
	playOpening(g)
	press(g, core.ActionToggleMode)

	press(g, core.ActionRestart)
	st := g.State()
	if st.Moves != 0 || st.Mode != "cpu" || g.Controller().CanUndo() {
		t.Errorf("after restart State() = %+v", st)
	}
}

func TestGameClick(t *testing.T) {
	g := newTestGame(t, New())

	// Grid lines are not cells
	in := core.NewInputFrame()
	in.SetClick(g.board.X, g.board.Y)
	g.Step(in)
	if g.State().Moves != 0 || g.Cursor() != (Coord{2, 2}) {
		t.Fatal("click on the grid should be ignored")
	}

	x, y := g.cellOrigin(Coord{1, 3})
	in = core.NewInputFrame()
	in.SetClick(x, y)
	g.Step(in)

	if g.Cursor() != (Coord{1, 3}) {
		t.Errorf("Cursor() = %v, want (1,3)", g.Cursor())
	}
	if g.State().Moves != 1 {
		t.Error("click on a legal cell should play it")
	}
}

func TestGamePassToast(t *testing.T) {
	g := newTestGame(t, New())
	useController(g, NewControllerAt(stuckWhite(t), Black, ModeFriend))
	g.cursor = Coord{0, 2}

	press(g, core.ActionConfirm)
	if g.Toast() != "PASS: White has no moves" {
		t.Fatalf("Toast() = %q", g.Toast())
	}
	if !strings.Contains(render(g).String(), "PASS: White has no moves") {
		t.Error("toast should be rendered")
	}

	idle(g, int(g.ticks(ToastDuration)))
	if g.Toast() != "" {
		t.Errorf("toast should expire, got %q", g.Toast())
	}
}

func TestGameConfirmPassesStuckSide(t *testing.T) {
	g := newTestGame(t, New())
	useController(g, NewControllerAt(stuckWhite(t), Black, ModeFriend))
	g.cursor = Coord{0, 2}
	press(g, core.ActionConfirm)

	// Undoing the forced pass leaves White on move without a move
	press(g, core.ActionUndo)
	if g.Controller().Current() != White {
		t.Fatal("undo should restore White on move")
	}
	if !strings.Contains(render(g).String(), "No moves: Enter to pass") {
		t.Error("stuck side should be prompted to pass")
	}

	press(g, core.ActionConfirm)
	if g.Controller().Current() != Black {
		t.Error("confirm should pass for the stuck side")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, New())
	s := render(g)

	check := func(at Coord, want rune, color core.Color) {
		t.Helper()
		x, y := g.cellOrigin(at)
		if c := s.GetCell(x, y); c.Rune != want || c.Color != color {
			t.Errorf("cell %v = %q/%v, want %q/%v", at, c.Rune, c.Color, want, color)
		}
	}
	check(Coord{2, 2}, '●', core.ColorDefault)
	check(Coord{2, 3}, '○', core.ColorDefault)
	check(Coord{1, 3}, '·', core.ColorGray)
	check(Coord{4, 2}, '·', core.ColorGray)

	x, y := g.cellOrigin(Coord{2, 2})
	if s.Get(x-1, y) != '[' || s.Get(x+1, y) != ']' {
		t.Error("cursor brackets missing around (2,2)")
	}

	if !strings.Contains(s.Row(0), "vs Friend") {
		t.Errorf("row 0 = %q, want mode label", s.Row(0))
	}
	if !strings.Contains(s.Row(2), "Black to move") {
		t.Errorf("row 2 = %q, want turn", s.Row(2))
	}
}

func TestGameRenderHidesHintsOnCPUTurn(t *testing.T) {
	g := newTestGame(t, NewVsCPU())
	playOpening(g)

	out := render(g).String()
	if strings.ContainsRune(out, '·') {
		t.Error("hints should be hidden while the CPU is on move")
	}
	if !strings.Contains(out, "CPU is thinking...") {
		t.Error("turn line should show the CPU thinking")
	}
}

func TestGameRenderGameOver(t *testing.T) {
	g := newTestGame(t, New())
	lone := boardFrom(t,
		"B.....",
		"......",
		"......",
		"......",
		"......",
		"......",
	)
	useController(g, NewControllerAt(lone, White, ModeFriend))

	if !g.State().GameOver {
		t.Fatal("State() should report game over")
	}
	out := render(g).String()
	for _, want := range []string{"GAME OVER", "Black wins 1-0"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	if strings.ContainsRune(out, '·') {
		t.Error("hints should be hidden after game over")
	}
}

func TestGameTooSmall(t *testing.T) {
	g := newTestGame(t, New())
	g.Resize(20, 10)

	press(g, core.ActionUp)
	press(g, core.ActionConfirm)
	if g.Cursor() != (Coord{2, 2}) {
		t.Error("input should be ignored on a tiny screen")
	}
	if !strings.Contains(render(g).String(), "Window too small") {
		t.Error("tiny screen should say so")
	}
}

func TestGameResizeKeepsState(t *testing.T) {
	g := newTestGame(t, New())
	playOpening(g)

	g.Resize(100, 30)
	if g.State().Moves != 1 {
		t.Error("resize should keep the game")
	}
	if g.board.X != (100-boardW)/2 || g.board.Y != hudHeight {
		t.Errorf("board rect = %+v after resize", g.board)
	}
}
