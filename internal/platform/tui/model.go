package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/storage"
	"github.com/vovakirdan/gridsnake/internal/ticker"
)

var (
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// GameOptions configures one game model.
type GameOptions struct {
	Snake     config.SnakeConfig
	Runtime   core.RuntimeConfig
	Store     *storage.Store // nil disables persistence
	Logger    *log.Logger
	SessionID string
}

// Model is the Bubble Tea model for one snake game. It owns the game and its
// ticker; every tick and key press is handled on the event loop goroutine.
type Model struct {
	game     *snake.Game
	ticker   *ticker.Ticker
	renderer *ScreenRenderer
	banner   *Banner
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	done     chan struct{}
	doneOnce *sync.Once

	lastShot   string
	quitting   bool
	backToMenu bool
}

// NewModel builds a game and its ticker. The ticker is armed by Init.
func NewModel(opts GameOptions) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	tk := ticker.New(opts.Snake.Tick.Interval())
	renderer := &ScreenRenderer{}

	var recorder RoundRecorder
	gameOpts := []snake.Option{
		snake.WithRenderer(renderer),
		snake.WithTimer(tk),
		snake.WithLogger(logger),
		snake.WithRand(rand.New(rand.NewSource(seed))),
	}
	if opts.Store != nil {
		recorder = opts.Store
		gameOpts = append(gameOpts, snake.WithStore(opts.Store))
	}
	banner := NewBanner(opts.SessionID, recorder, logger)
	gameOpts = append(gameOpts, snake.WithNotifier(banner))

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	return Model{
		game:     snake.NewGame(opts.Snake, gameOpts...),
		ticker:   tk,
		renderer: renderer,
		banner:   banner,
		screen:   core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH-1),
		keys:     DefaultKeyMap(),
		help:     h,
		logger:   logger,
		done:     make(chan struct{}),
		doneOnce: &sync.Once{},
	}
}

// Init arms the ticker and starts waiting for ticks.
func (m Model) Init() tea.Cmd {
	if err := m.game.Start(); err != nil {
		m.logger.Error("could not start ticker", "error", err)
	}
	m.logger.Info("game started", "interval", m.ticker.Interval())
	return waitForTick(m.ticker, m.done)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)

	case bannerExpiredMsg:
		return m, nil
	}

	return m, nil
}

// handleTick advances the game. Crashes are handled inside the game, which
// stops, resets and re-arms the ticker itself.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.src != m.ticker || m.closed() {
		return m, nil
	}
	// A tick from before the last restart was already queued; drop it but
	// keep waiting, it consumed the outstanding wait.
	if msg.gen != m.ticker.Generation() {
		return m, waitForTick(m.ticker, m.done)
	}

	if m.game.Update() == snake.OutcomeCrashed {
		return m, tea.Batch(waitForTick(m.ticker, m.done), expireBanner())
	}
	return m, waitForTick(m.ticker, m.done)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.closed() {
		return m, nil
	}

	action := m.keys.Action(msg)

	if name, ok := action.Direction(); ok {
		//nolint:errcheck // Rejected names are logged by the game
		m.game.ChangeDirection(name)
		return m, nil
	}

	switch action {
	case core.ActionQuit:
		m.leave()
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.leave()
		m.backToMenu = true

	case core.ActionPause:
		if err := m.game.TogglePause(); err != nil {
			m.logger.Error("could not resume", "error", err)
		}

	case core.ActionRestart:
		m.restart()

	case core.ActionConfirm:
		if m.game.State() == snake.StateWaiting {
			m.restart()
		}

	case core.ActionScreenshot:
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
			break
		}
		m.lastShot = path
		m.logger.Info("screenshot saved", "path", path)
	}

	return m, nil
}

func (m Model) restart() {
	if err := m.game.Restart(); err != nil {
		m.logger.Error("could not restart", "error", err)
	}
}

// leave stops the game before the model is dropped.
func (m *Model) leave() {
	m.game.Stop()
	m.Close()
}

// Close stops the ticker for good and releases the pending tick wait. Unlike
// the rest of the model it may be called from any goroutine. Messages handled
// after Close are ignored.
func (m Model) Close() {
	m.ticker.Close()
	m.doneOnce.Do(func() { close(m.done) })
}

// closed reports whether Close has run.
func (m Model) closed() bool {
	select {
	case <-m.done:
		return true
	default:
		return false
	}
}

// saveScreenshot writes the current screen to ~/.gridsnake/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	m.renderer.Draw(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".gridsnake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", dir, err)
	}

	name := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405.000"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the board followed by a footer line.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.renderer.Draw(m.screen)

	footer := footerStyle.Render(m.help.View(m.keys))
	if text, ok := m.banner.Message(); ok {
		footer = bannerStyle.Render(text)
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Game returns the underlying game.
func (m Model) Game() *snake.Game {
	return m.game
}

// Renderer returns the renderer the game draws through.
func (m Model) Renderer() *ScreenRenderer {
	return m.renderer
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// LastScreenshot returns the path of the last saved screenshot.
func (m Model) LastScreenshot() string {
	return m.lastShot
}
