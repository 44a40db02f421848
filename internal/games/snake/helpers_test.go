package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// seqSource feeds rand.Rand a fixed cycle of values so Intn(n) returns
// vals[i] for every vals[i] < n.
type seqSource struct {
	vals []int64
	i    int
}

func (s *seqSource) Int63() int64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v << 32
}

func (s *seqSource) Seed(int64) {}

func seqRand(vals ...int64) *rand.Rand {
	return rand.New(&seqSource{vals: vals})
}

// memStore is an in-memory BestScoreStore.
type memStore struct {
	best     int
	writes   int
	readErr  error
	writeErr error
}

func (m *memStore) BestScore() (int, error) {
	if m.readErr != nil {
		return 0, m.readErr
	}
	return m.best, nil
}

func (m *memStore) SetBestScore(score int) error {
	m.writes++
	if m.writeErr != nil {
		return m.writeErr
	}
	m.best = score
	return nil
}

var errTimerRunning = errors.New("timer already running")

// fakeTimer counts Start/Stop calls and refuses double starts.
type fakeTimer struct {
	running bool
	starts  int
	stops   int
}

func (f *fakeTimer) Start() error {
	if f.running {
		return errTimerRunning
	}
	f.running = true
	f.starts++
	return nil
}

func (f *fakeTimer) Stop() {
	f.running = false
	f.stops++
}

func pts(xy ...int) []core.Point {
	out := make([]core.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, core.Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}

func equalBody(a, b []core.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
