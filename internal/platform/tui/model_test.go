package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// fakeGame records the inputs it is stepped with.
type fakeGame struct {
	resets int
	inputs []core.InputFrame
	endAt  int // step number that ends the run, 0 = never
	score  int
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, copyFrame(in))
	ended := len(g.inputs) == g.endAt
	return core.StepResult{
		State: core.GameState{Score: g.score, GameOver: len(g.inputs) >= g.endAt && g.endAt > 0},
		Ended: ended,
	}
}

// copyFrame keeps a frame past the tick; the model clears its maps afterwards.
func copyFrame(in core.InputFrame) core.InputFrame {
	out := core.NewInputFrame()
	for a, on := range in.Actions {
		out.Actions[a] = on
	}
	for a, on := range in.Held {
		out.Held[a] = on
	}
	return out
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState { return core.GameState{Score: g.score} }

func testRC() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelInitResetsGame(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testRC(), Options{})

	if cmd := m.Init(); cmd == nil {
		t.Error("Init should start the tick loop")
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
}

func TestModelKeyInputReachesOneTick(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testRC(), Options{})

	m, _ = update(t, m, runeKey('w'))
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	m, _ = update(t, m, TickMsg{})

	if len(g.inputs) != 2 {
		t.Fatalf("steps = %d, expected 2", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionActivate) {
		t.Error("first tick missing activate")
	}
	if g.inputs[1].Active(core.ActionActivate) {
		t.Error("key press leaked into the second tick")
	}
}

func TestModelMouseHold(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testRC(), Options{})

	m, _ = update(t, m, tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	m, _ = update(t, m, TickMsg{})

	if !g.inputs[0].Has(core.ActionActivate) {
		t.Error("press tick missing activate event")
	}
	if !g.inputs[1].IsHeld(core.ActionActivate) || g.inputs[1].Has(core.ActionActivate) {
		t.Error("second tick should carry only the held level")
	}
	if g.inputs[2].Active(core.ActionActivate) {
		t.Error("released button still active")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&fakeGame{}, testRC(), Options{})

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelRecordsFinishedRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	g := &fakeGame{endAt: 3, score: 7}
	m := NewModel(g, testRC(), Options{History: store, Player: "alice"})

	for iter := 0; iter < 6; iter++ {
		m, _ = update(t, m, TickMsg{})
	}

	if m.Runs() != 1 {
		t.Errorf("runs = %d, expected 1", m.Runs())
	}
	if !m.State().GameOver {
		t.Error("model state should report game over")
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 || scores[0].Player != "alice" || scores[0].Score != 7 {
		t.Errorf("history = %+v, expected one run by alice scoring 7", scores)
	}
}

func TestModelDefaultPlayer(t *testing.T) {
	m := NewModel(&fakeGame{}, testRC(), Options{})
	if m.player != storage.DefaultPlayer {
		t.Errorf("player = %q, expected %q", m.player, storage.DefaultPlayer)
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testRC(), Options{})
	m.Init()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})

	if g.resets != 1 {
		t.Errorf("resize reset the game (%d resets)", g.resets)
	}
	if m.screen.Width() != 40 || m.screen.Height() != 12 {
		t.Errorf("screen = %dx%d, expected 40x12", m.screen.Width(), m.screen.Height())
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := NewModel(&fakeGame{}, testRC(), Options{ScreenshotDir: dir})

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one screenshot, got %v (%v)", entries, err)
	}
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "fake") {
		t.Errorf("screenshot content = %q", data)
	}
	if !strings.HasPrefix(entries[0].Name(), "fake_") {
		t.Errorf("screenshot name = %q", entries[0].Name())
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorGreen)
	s.DrawText(2, 0, "cd")

	out := RenderScreen(s, NewPalette(nil))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "cd") {
		t.Errorf("first line = %q", lines[0])
	}
}

func TestTickInterval(t *testing.T) {
	if got := tickInterval(0); got != tickInterval(60) {
		t.Errorf("tickInterval(0) = %v, expected the 60Hz default", got)
	}
}
