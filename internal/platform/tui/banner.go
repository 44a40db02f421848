package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// bannerDuration is how long the game over message stays in the footer.
const bannerDuration = 2 * time.Second

// RoundRecorder stores the final score of a round.
type RoundRecorder interface {
	SaveScore(sessionID string, score int) (int64, error)
}

// Banner is the game over notifier of a session. It records the round,
// logs it and keeps a message for the footer. It never blocks the game.
type Banner struct {
	sessionID string
	recorder  RoundRecorder
	logger    *log.Logger
	now       func() time.Time

	text  string
	until time.Time
}

// NewBanner creates a notifier for one session. recorder may be nil.
func NewBanner(sessionID string, recorder RoundRecorder, logger *log.Logger) *Banner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Banner{
		sessionID: sessionID,
		recorder:  recorder,
		logger:    logger,
		now:       time.Now,
	}
}

// GameOver implements snake.Notifier.
func (b *Banner) GameOver(score int) {
	b.text = fmt.Sprintf("Game over! Score: %d", score)
	b.until = b.now().Add(bannerDuration)

	b.logger.Info("game over", "score", score)

	if b.recorder == nil {
		return
	}
	if _, err := b.recorder.SaveScore(b.sessionID, score); err != nil {
		b.logger.Warn("could not record round", "error", err)
	}
}

// Message returns the current banner text, if it has not expired.
func (b *Banner) Message() (string, bool) {
	if b.text == "" || !b.now().Before(b.until) {
		return "", false
	}
	return b.text, true
}

var _ snake.Notifier = (*Banner)(nil)

// ScreenRenderer keeps the latest snapshot the game rendered and paints it
// into a screen buffer when the view is drawn.
type ScreenRenderer struct {
	snap    snake.Snapshot
	renders int
}

// Render implements snake.Renderer.
func (r *ScreenRenderer) Render(snap snake.Snapshot) {
	r.snap = snap
	r.renders++
}

// Snapshot returns the last rendered snapshot.
func (r *ScreenRenderer) Snapshot() snake.Snapshot {
	return r.snap
}

// Renders returns how many frames the game has produced.
func (r *ScreenRenderer) Renders() int {
	return r.renders
}

// Draw paints the last snapshot into dst.
func (r *ScreenRenderer) Draw(dst *core.Screen) {
	r.snap.Draw(dst)
}

var _ snake.Renderer = (*ScreenRenderer)(nil)
