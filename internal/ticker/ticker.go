// Package ticker provides the game's repeating timer. At most one tick loop
// runs per Ticker: Stop waits for the loop goroutine to exit, so a Restart
// can never leave two loops ticking side by side.
package ticker

import (
	"errors"
	"sync"
	"time"
)

// ErrAlreadyRunning is returned by Start on a running ticker.
var ErrAlreadyRunning = errors.New("ticker: already running")

// ErrClosed is returned by Start after Close.
var ErrClosed = errors.New("ticker: closed")

// Tick is one firing of the ticker. Gen is the start generation that produced
// it; every Start begins a new generation.
type Tick struct {
	Time time.Time
	Gen  uint64
}

// Ticker delivers ticks on C at a fixed interval while running.
// Ticks are coalesced: a slow consumer sees at most one pending tick.
type Ticker struct {
	interval time.Duration
	c        chan Tick

	mu      sync.Mutex
	running bool
	closed  bool
	gen     uint64
	stop    chan struct{}
	done    chan struct{}
}

// New creates a stopped ticker.
func New(interval time.Duration) *Ticker {
	if interval <= 0 {
		panic("ticker: non-positive interval")
	}
	return &Ticker{
		interval: interval,
		c:        make(chan Tick, 1),
	}
}

// C returns the tick channel. It stays the same across restarts.
func (t *Ticker) C() <-chan Tick {
	return t.c
}

// Interval returns the tick period.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Running reports whether the tick loop is active.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Generation returns the generation of the latest Start.
func (t *Ticker) Generation() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.gen
}

// Start launches the tick loop.
func (t *Ticker) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}
	if t.running {
		return ErrAlreadyRunning
	}
	t.running = true
	t.gen++
	t.stop = make(chan struct{})
	t.done = make(chan struct{})

	go t.loop(t.gen, t.stop, t.done)
	return nil
}

// Stop halts the tick loop, waits for it to exit and drops any pending tick.
// Stopping a stopped ticker does nothing.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

// Close stops the ticker for good. Later Starts return ErrClosed.
func (t *Ticker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
	t.closed = true
}

func (t *Ticker) stopLocked() {
	if !t.running {
		return
	}
	close(t.stop)
	<-t.done
	t.running = false

	select {
	case <-t.c:
	default:
	}
}

// Restart stops the current loop, if any, and starts a fresh one.
func (t *Ticker) Restart() error {
	t.Stop()
	return t.Start()
}

func (t *Ticker) loop(gen uint64, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	tk := time.NewTicker(t.interval)
	defer tk.Stop()

	for {
		select {
		case <-stop:
			return
		case now := <-tk.C:
			select {
			case t.c <- Tick{Time: now, Gen: gen}:
			default:
			}
		}
	}
}
