package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-reversi/internal/config"
	"github.com/vovakirdan/tui-reversi/internal/core"
	"github.com/vovakirdan/tui-reversi/internal/registry"
	"github.com/vovakirdan/tui-reversi/internal/storage"
)

// helpHeight is the number of rows reserved below the game for key help.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       *KeyMapper
	help       help.Model
	tickChain  uint64

	// Result bookkeeping for the current game
	matchID     string
	fresh       bool
	startedAt   time.Time
	resultSaved bool
	lastResult  *storage.Result

	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil store disables result saving; a nil logger discards logs.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		store:      store,
		logger:     logger.WithPrefix(game.ID()),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       NewKeyMapper(),
		help:       h,
		tickChain:  nextTickChain(),
	}
}

// gameHeight is the screen height left for the game once help is drawn.
func gameHeight(h int) int {
	return max(h-helpHeight, 0)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	cfg := m.config
	cfg.ScreenH = gameHeight(cfg.ScreenH)
	m.game.Reset(cfg)
	return tickCmd(m.config.TickRate, m.tickChain)
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
		return m.handleResize(msg)

	case TickMsg:
		if msg.chain != m.tickChain {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.backToMenu = true
		return m, tea.Quit
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events.
// Games that can relayout keep their state; others are restarted.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	h := gameHeight(msg.Height)
	m.screen.Resize(msg.Width, h)
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, h)
		return m, nil
	}

	cfg := m.config
	cfg.ScreenH = h
	m.game.Reset(cfg)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.Mode != prev.Mode && prev.Mode != "" {
		m.logger.Debug("mode changed", "from", prev.Mode, "to", m.gameState.Mode)
	}

	// A position with no moves played starts a new match
	if m.gameState.Moves == 0 && !m.gameState.GameOver {
		if !m.fresh {
			m.matchID = uuid.NewString()
			m.resultSaved = false
			m.lastResult = nil
			m.fresh = true
		}
		m.startedAt = time.Now()
	} else {
		m.fresh = false
	}

	if m.gameState.GameOver && !m.resultSaved {
		m.saveResult()
		m.resultSaved = true
	}

	return m, tickCmd(m.config.TickRate, m.tickChain)
}

// saveResult records the finished game. Failures are logged, never fatal.
func (m *Model) saveResult() {
	s := m.gameState
	m.logger.Info("game over", "black", s.Score1, "white", s.Score2, "moves", s.Moves, "mode", s.Mode)
	if m.store == nil {
		return
	}

	saved, err := m.store.SaveResult(storage.Result{
		MatchID:  m.matchID,
		GameID:   m.game.ID(),
		Mode:     s.Mode,
		Black:    s.Score1,
		White:    s.Score2,
		Moves:    s.Moves,
		Duration: int(time.Since(m.startedAt).Seconds()),
	})
	if err != nil {
		m.logger.Warn("could not save result", "error", err)
		return
	}
	m.lastResult = &saved
	m.logger.Debug("result saved", "match", saved.MatchID, "winner", saved.Winner)
}

// saveScreenshot writes the current frame as plain text and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path, err := xdg.DataFile(filepath.Join(config.AppName, "screenshots", name))
	if err != nil {
		return "", fmt.Errorf("cannot resolve screenshot path: %w", err)
	}
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// LastResult returns the result saved for the current game, if any.
func (m Model) LastResult() *storage.Result {
	return m.lastResult
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
// Returns true if the user asked to go back to the menu rather than quit.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}
