// Package snake implements the grid snake game as a state machine. It has no
// terminal or storage dependency: rendering, persistence, notifications and
// the tick timer are injected.
package snake

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
)

// Renderer draws a game snapshot. It is called after every surviving tick,
// after score changes and after a reset.
type Renderer interface {
	Render(snap Snapshot)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Snapshot)

// Render calls f(snap).
func (f RendererFunc) Render(snap Snapshot) { f(snap) }

// Notifier is told about the end of every round, before the best score is
// saved and the board is reset.
type Notifier interface {
	GameOver(score int)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(score int)

// GameOver calls f(score).
func (f NotifierFunc) GameOver(score int) { f(score) }

// Timer is the repeating tick source driving Update.
type Timer interface {
	// Start arms the timer. Starting a running timer is an error.
	Start() error
	// Stop disarms the timer. Stopping a stopped timer does nothing.
	Stop()
}

// Outcome is the result of one Update.
type Outcome int

const (
	OutcomeIdle    Outcome = iota // not running, nothing happened
	OutcomeMoved                  // snake moved
	OutcomeAte                    // snake moved onto food and grew
	OutcomeCrashed                // snake hit a wall or itself, round restarted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeCrashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// Option configures a Game.
type Option func(*Game)

// WithRenderer sets the render collaborator.
func WithRenderer(r Renderer) Option {
	return func(g *Game) { g.renderer = r }
}

// WithNotifier sets the game over collaborator.
func WithNotifier(n Notifier) Option {
	return func(g *Game) { g.notifier = n }
}

// WithStore sets where the best score is persisted.
func WithStore(s BestScoreStore) Option {
	return func(g *Game) { g.store = s }
}

// WithTimer sets the tick source started and stopped by the game.
func WithTimer(t Timer) Option {
	return func(g *Game) { g.timer = t }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithRand sets the RNG used for food placement.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) { g.rng = rng }
}

// Game orchestrates the snake, the food and the score on a fixed board.
// It is not safe for concurrent use; the owner serializes ticks and input.
type Game struct {
	rows    int
	columns int
	start   core.Point
	restart config.RestartMode

	snake *Snake
	food  *Food
	score *Score

	state     State
	tick      uint64
	round     int
	lastScore int

	rng      *rand.Rand
	store    BestScoreStore
	renderer Renderer
	notifier Notifier
	timer    Timer
	logger   *log.Logger
}

// NewGame builds a game for cfg and draws the first board.
// The timer is not armed until Start. cfg must pass Validate; config.LoadSnake
// and config.DefaultSnakeConfig always do. An invalid cfg panics.
func NewGame(cfg config.SnakeConfig, opts ...Option) *Game {
	if err := cfg.Validate(); err != nil {
		panic("snake: invalid config: " + err.Error())
	}
	g := &Game{
		rows:    cfg.Board.Rows,
		columns: cfg.Board.Columns,
		start:   core.Point{X: cfg.Start.HeadX, Y: cfg.Start.HeadY},
		restart: cfg.Restart,
		state:   StateReady,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.renderer == nil {
		g.renderer = RendererFunc(func(Snapshot) {})
	}
	if g.notifier == nil {
		g.notifier = NotifierFunc(func(int) {})
	}
	if g.timer == nil {
		g.timer = nopTimer{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	g.score = NewScore(g.store, g.logger)
	g.newRound()
	g.render()
	return g
}

// Start arms the timer and puts the game in the running state.
func (g *Game) Start() error {
	if err := g.timer.Start(); err != nil {
		return err
	}
	g.state = StateRunning
	g.render()
	return nil
}

// Stop disarms the timer. The board is kept.
func (g *Game) Stop() {
	g.timer.Stop()
	if g.state == StateRunning {
		g.state = StateReady
	}
}

// TogglePause stops or restarts the timer without touching the board.
func (g *Game) TogglePause() error {
	switch g.state {
	case StateRunning:
		g.timer.Stop()
		g.state = StatePaused
		g.render()
	case StatePaused:
		return g.Start()
	}
	return nil
}

// Restart is the manual reset trigger: the timer is stopped before the board
// is reset and armed again afterwards, so two tick loops never overlap.
// A game waiting after a crash already has a fresh board and only starts.
func (g *Game) Restart() error {
	g.timer.Stop()
	if g.state != StateWaiting {
		g.Reset()
	}
	return g.Start()
}

// Update advances the game by one tick. It does nothing unless running.
//
// The snake moves first. A wall or self collision ends the round: the notifier
// gets the final score, the best score is saved, the timer is stopped, the
// board is reset and, in auto restart mode, the timer is armed again. A
// surviving move is rendered; eating scores a point, saves the best score and
// renders again.
func (g *Game) Update() Outcome {
	if g.state != StateRunning {
		return OutcomeIdle
	}
	g.tick++

	ate := g.snake.Move()

	if g.HitSelf() || g.snake.HitWall(g.rows, g.columns) {
		g.gameOver()
		return OutcomeCrashed
	}

	g.render()

	if ate {
		g.score.Increment()
		g.score.Save()
		g.render()
		return OutcomeAte
	}
	return OutcomeMoved
}

// gameOver runs the end-of-round transition.
func (g *Game) gameOver() {
	final := g.score.Current()
	g.state = StateOver
	g.lastScore = final

	g.logger.Info("round over",
		"round", g.round,
		"score", final,
		"length", g.snake.Len(),
		"head", g.snake.Head().String(),
	)

	g.notifier.GameOver(final)
	g.score.Save()
	g.timer.Stop()
	g.Reset()

	if g.restart == config.RestartManual {
		g.state = StateWaiting
		g.render()
		return
	}
	if err := g.Start(); err != nil {
		g.logger.Error("could not re-arm timer", "error", err)
	}
}

// HitSelf reports whether the head shares a cell with any other segment.
func (g *Game) HitSelf() bool {
	head := g.snake.body[0]
	for _, seg := range g.snake.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// ChangeDirection turns the snake on the next Update. Later calls before that
// tick override earlier ones. Invalid names are logged and returned.
func (g *Game) ChangeDirection(name string) error {
	if err := g.snake.ChangeDirection(name); err != nil {
		g.logger.Debug("direction ignored", "direction", name)
		return err
	}
	return nil
}

// Reset replaces the snake and the food, zeroes the current score and redraws.
// The timer and the state are left to the caller.
func (g *Game) Reset() {
	g.score.Reset()
	g.newRound()
	g.render()
}

func (g *Game) newRound() {
	g.food = NewFood(g.rows, g.columns, g.rng)
	g.snake = NewSnake(g.start, g.food)
	g.round++
}

func (g *Game) render() {
	g.renderer.Render(g.Snapshot())
}

// Score returns the current and best scores.
func (g *Game) Score() (current, best int) {
	return g.score.Current(), g.score.Best()
}

// State returns the lifecycle state.
func (g *Game) State() State {
	return g.state
}

// IsRunning reports whether ticks currently advance the game.
func (g *Game) IsRunning() bool {
	return g.state == StateRunning
}

// nopTimer is used when the owner drives Update itself.
type nopTimer struct{}

func (nopTimer) Start() error { return nil }
func (nopTimer) Stop()        {}
