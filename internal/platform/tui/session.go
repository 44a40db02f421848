package tui

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScores
)

// SessionModel manages the full flow of one player: menu -> game or
// scoreboard -> menu. Local play and SSH sessions both run it.
type SessionModel struct {
	opts       GameOptions
	view       sessionView
	menu       MenuModel
	game       *Model
	scoreboard ScoreboardModel
	live       *liveGame
	quitting   bool
}

// liveGame tracks the game on screen so the session can be closed from
// outside the event loop, e.g. when an SSH client drops.
type liveGame struct {
	mu    sync.Mutex
	close func()
}

func (l *liveGame) set(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.close = fn
}

func (l *liveGame) stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.close != nil {
		l.close()
		l.close = nil
	}
}

// NewSessionModel creates a session. An empty SessionID gets a fresh UUID.
func NewSessionModel(opts GameOptions) SessionModel {
	if opts.SessionID == "" {
		opts.SessionID = uuid.NewString()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return SessionModel{
		opts: opts,
		live: &liveGame{},
		menu: NewMenuModel(opts.Store, opts.Runtime.ScreenW, opts.Runtime.ScreenH),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menu, ok := newMenu.(MenuModel); ok {
		m.menu = menu
	}

	switch m.menu.Selected() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoicePlay:
		game := NewModel(m.opts)
		m.game = &game
		m.live.set(game.Close)
		m.view = viewGame
		return m, m.game.Init()

	case ChoiceScores:
		m.scoreboard = NewScoreboardModel(m.opts.Store, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		m.view = viewScores
		return m, m.scoreboard.Init()
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if game, ok := newModel.(Model); ok {
		m.game = &game
	}

	if m.game.IsQuitting() {
		m.live.set(nil)
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.live.set(nil)
		m.game = nil
		return m.showMenu()
	}

	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.showMenu()
	}

	return m, cmd
}

// showMenu rebuilds the menu so it shows the latest best score.
func (m SessionModel) showMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.opts.Store, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
	m.view = viewMenu
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.game.View()
	case viewScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// SessionID returns the identifier recorded with every round.
func (m SessionModel) SessionID() string {
	return m.opts.SessionID
}

// Close stops the running game, if any. It is safe to call from any
// goroutine and more than once.
func (m SessionModel) Close() {
	m.live.stop()
}

// Run starts a local session on the current terminal.
func Run(opts GameOptions) error {
	model := NewSessionModel(opts)
	logger := model.opts.Logger.With("session", model.SessionID())
	logger.Info("session started")

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	model.Close()
	logger.Info("session ended")
	return err
}
