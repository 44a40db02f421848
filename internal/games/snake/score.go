package snake

import (
	"io"

	"github.com/charmbracelet/log"
)

// BestScoreStore persists the best score between sessions.
type BestScoreStore interface {
	// BestScore returns the stored best score, 0 when none was stored.
	BestScore() (int, error)
	// SetBestScore replaces the stored best score.
	SetBestScore(score int) error
}

// Score tracks the current round's score and the best score seen so far.
type Score struct {
	current int
	best    int
	store   BestScoreStore
	logger  *log.Logger
}

// NewScore starts at zero with best loaded from store. A nil store keeps the
// best score in memory only; an unreadable store counts as empty.
func NewScore(store BestScoreStore, logger *log.Logger) *Score {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Score{store: store, logger: logger}

	if store != nil {
		best, err := store.BestScore()
		if err != nil {
			logger.Warn("could not load best score", "error", err)
		} else if best > 0 {
			s.best = best
		}
	}
	return s
}

// Save raises best to current when current is strictly higher and persists it.
// A failed write keeps the new best in memory.
func (s *Score) Save() {
	if s.current <= s.best {
		return
	}
	s.best = s.current
	if s.store == nil {
		return
	}
	if err := s.store.SetBestScore(s.best); err != nil {
		s.logger.Warn("could not persist best score", "best", s.best, "error", err)
	}
}

// Reset zeroes the current score. Best is untouched.
func (s *Score) Reset() {
	s.current = 0
}

// Increment adds one point for eaten food.
func (s *Score) Increment() {
	s.current++
}

// Current returns the current round's score.
func (s *Score) Current() int {
	return s.current
}

// Best returns the best score.
func (s *Score) Best() int {
	return s.best
}
