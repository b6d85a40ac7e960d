package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/virus-dodge/internal/config"
	"github.com/vovakirdan/virus-dodge/internal/core"
	"github.com/vovakirdan/virus-dodge/internal/registry"
	"github.com/vovakirdan/virus-dodge/internal/storage"
)

// footerHeight is the number of rows reserved for the help line.
const footerHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Reconfigurable games accept new tuning while running.
type Reconfigurable interface {
	ApplyConfig(cfg config.DodgeConfig)
}

// ModelOptions carries the optional parts of a Model.
type ModelOptions struct {
	Source  string          // Recorded with saved runs; defaults to storage.SourceTerminal
	Player  string          // Recorded with saved runs
	Watcher *config.Watcher // Hot reload source; nil disables it
	Logger  *log.Logger     // nil discards
}

// configMsg carries reloaded tuning from the watcher.
type configMsg config.DodgeConfig

// configErrMsg reports a rejected config edit.
type configErrMsg struct{ err error }

// Model is the Bubble Tea model for one game session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       ModelOptions
	holds      *core.HoldTracker
	inputFrame core.InputFrame // One-shot actions for the next tick
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	status     string
	quitting   bool
	scoreSaved bool // Whether the score has been saved for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if opts.Source == "" {
		opts.Source = storage.SourceTerminal
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerHeight, 0)),
		store:      store,
		config:     cfg,
		opts:       opts,
		holds:      core.NewHoldTracker(HoldTicks(cfg.TickRate)),
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
	}
}

// HoldTicks is how long a terminal key press counts as held. Terminals
// send no release events, so a press holds for about a quarter second and
// key auto-repeat keeps refreshing it.
func HoldTicks(tickRate int) int {
	return max(tickRate/4, 2)
}

// Init starts the game, the tick loop and the config watcher.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(tickCmd(m.config.TickRate), waitForConfig(m.opts.Watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case configMsg:
		if g, ok := m.game.(Reconfigurable); ok {
			g.ApplyConfig(config.DodgeConfig(msg))
			m.status = "config reloaded, applies on restart"
			m.opts.Logger.Info("config reloaded")
		}
		return m, waitForConfig(m.opts.Watcher)

	case configErrMsg:
		m.status = "config rejected: " + msg.err.Error()
		m.opts.Logger.Warn("config rejected", "error", msg.err)
		return m, waitForConfig(m.opts.Watcher)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.status = "screenshot failed"
			m.opts.Logger.Warn("screenshot failed", "error", err)
		} else {
			m.status = "saved " + path
		}
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft:
		m.holds.Release(core.ActionRight)
		m.holds.Press(core.ActionLeft)
	case core.ActionRight:
		m.holds.Release(core.ActionLeft)
		m.holds.Press(core.ActionRight)
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize keeps the game running; the renderer scales to any size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 0))
	m.help.Width = msg.Width
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.inputFrame.Clone()
	m.holds.Apply(&frame)

	wasOver := m.gameState.GameOver
	result := m.game.Step(frame)
	m.gameState = result.State

	if wasOver && !m.gameState.GameOver {
		m.scoreSaved = false
		m.holds.Reset()
		m.status = ""
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	m.keys.Restart.SetEnabled(m.gameState.GameOver)
	m.keys.Pause.SetEnabled(!m.gameState.GameOver)
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun stores a finished run. Zero scores are not worth keeping.
func (m Model) saveRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Ticks:  m.gameState.Ticks,
		Seed:   m.config.Seed,
		Source: m.opts.Source,
		Player: m.opts.Player,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save run", "error", err)
	}
}

// saveScreenshot writes the current frame as plain text under
// ~/.arcade/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

// View renders the game and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer += "  " + m.status
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(footer)
}

// GameState returns the state after the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// waitForConfig blocks on the watcher until it has something to report.
func waitForConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case cfg, ok := <-w.Updates:
			if !ok {
				return nil
			}
			return configMsg(cfg)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return configErrMsg{err: err}
		}
	}
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) error {
	p := tea.NewProgram(
		NewModel(game, store, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
