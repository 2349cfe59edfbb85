package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Game is what the terminal loop drives: one Step per tick, one Render per frame.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Options configures a Model. All fields are optional.
type Options struct {
	History       *storage.Store     // Run history; nil disables recording
	Player        string             // Name recorded with each run
	Logger        *log.Logger        // Defaults to discarding output
	Renderer      *lipgloss.Renderer // Per-session renderer (SSH)
	ScreenshotDir string             // Defaults to <app dir>/screenshots
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	game       Game
	screen     *core.Screen
	history    *storage.Store
	player     string
	logger     *log.Logger
	palette    Palette
	shotDir    string
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keys       *KeyMapper
	gameState  core.GameState
	runs       int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	player := opts.Player
	if player == "" {
		player = storage.DefaultPlayer
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		history:    opts.History,
		player:     player,
		logger:     logger,
		palette:    NewPalette(opts.Renderer),
		shotDir:    opts.ScreenshotDir,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       NewKeyMapper(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		// World coordinates do not depend on the terminal size, so the run survives.
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick runs one simulation step with the input gathered since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.keys.HoldPointer(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if result.Ended {
		m.recordRun(result.State)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordRun appends a finished run with a non-zero score to the history.
// Failures are logged only.
func (m *Model) recordRun(st core.GameState) {
	m.runs++
	if m.history == nil || st.Score == 0 {
		return
	}
	if _, err := m.history.SaveScore(m.player, st.Score); err != nil {
		m.logger.Warn("could not record run", "player", m.player, "score", st.Score, "error", err)
		return
	}
	m.logger.Debug("run recorded", "player", m.player, "score", st.Score)
}

// saveScreenshot writes the current frame as plain text and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.shotDir
	if dir == "" {
		appDir, err := config.AppDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(appDir, "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.palette)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Runs returns how many runs ended in this session.
func (m Model) Runs() int {
	return m.runs
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
