package ticker

import (
	"errors"
	"runtime"
	"testing"
	"time"
)

func TestStartDeliversTicks(t *testing.T) {
	tk := New(5 * time.Millisecond)
	if err := tk.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	defer tk.Stop()

	for i := range 3 {
		select {
		case <-tk.C():
		case <-time.After(time.Second):
			t.Fatalf("tick %d never arrived", i)
		}
	}
}

func TestDoubleStart(t *testing.T) {
	tk := New(time.Hour)
	if err := tk.Start(); err != nil {
		t.Fatal(err)
	}
	defer tk.Stop()

	if err := tk.Start(); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second Start() = %v, expected ErrAlreadyRunning", err)
	}
}

func TestStopHaltsTicks(t *testing.T) {
	tk := New(2 * time.Millisecond)
	if err := tk.Start(); err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)
	tk.Stop()

	if tk.Running() {
		t.Error("Running() should be false after Stop()")
	}

	select {
	case <-tk.C():
		t.Error("tick delivered after Stop()")
	case <-time.After(20 * time.Millisecond):
	}

	// Stopping again is harmless.
	tk.Stop()
}

func TestRestartKeepsSingleLoop(t *testing.T) {
	before := runtime.NumGoroutine()

	tk := New(time.Millisecond)
	for range 50 {
		if err := tk.Restart(); err != nil {
			t.Fatalf("Restart() failed: %v", err)
		}
	}

	// One loop goroutine at most, however many restarts.
	if n := runtime.NumGoroutine(); n > before+1 {
		t.Errorf("goroutines grew from %d to %d after restarts", before, n)
	}

	tk.Stop()
	if !waitFor(func() bool { return runtime.NumGoroutine() <= before }) {
		t.Errorf("loop goroutine still alive after Stop(): %d > %d", runtime.NumGoroutine(), before)
	}
}

func TestStartAfterStop(t *testing.T) {
	tk := New(2 * time.Millisecond)
	if err := tk.Start(); err != nil {
		t.Fatal(err)
	}
	tk.Stop()
	if err := tk.Start(); err != nil {
		t.Fatalf("Start() after Stop() failed: %v", err)
	}
	defer tk.Stop()

	select {
	case <-tk.C():
	case <-time.After(time.Second):
		t.Fatal("no tick after restart")
	}
}

func TestNewPanicsOnBadInterval(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New(0) should panic")
		}
	}()
	New(0)
}

func waitFor(cond func() bool) bool {
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return cond()
}

func TestCloseIsFinal(t *testing.T) {
	tk := New(time.Millisecond)
	if err := tk.Start(); err != nil {
		t.Fatal(err)
	}

	tk.Close()
	if tk.Running() {
		t.Error("Running() should be false after Close()")
	}
	if err := tk.Start(); !errors.Is(err, ErrClosed) {
		t.Errorf("Start() after Close() = %v, expected ErrClosed", err)
	}
	if err := tk.Restart(); !errors.Is(err, ErrClosed) {
		t.Errorf("Restart() after Close() = %v, expected ErrClosed", err)
	}
	if tk.Running() {
		t.Error("a closed ticker must not run again")
	}

	// Closing twice is harmless.
	tk.Close()
}

func TestGenerationPerStart(t *testing.T) {
	tk := New(2 * time.Millisecond)
	if tk.Generation() != 0 {
		t.Errorf("Generation() = %d before Start, expected 0", tk.Generation())
	}

	for want := uint64(1); want <= 3; want++ {
		if err := tk.Restart(); err != nil {
			t.Fatal(err)
		}
		if got := tk.Generation(); got != want {
			t.Errorf("Generation() = %d, expected %d", got, want)
		}
	}
	defer tk.Stop()

	select {
	case tick := <-tk.C():
		if tick.Gen != 3 {
			t.Errorf("tick generation = %d, expected 3", tick.Gen)
		}
	case <-time.After(time.Second):
		t.Fatal("no tick delivered")
	}
}
