package tui

import (
	"errors"
	"testing"
	"time"
)

type recordedRound struct {
	session string
	score   int
}

type fakeRecorder struct {
	rounds []recordedRound
	err    error
}

func (f *fakeRecorder) SaveScore(sessionID string, score int) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.rounds = append(f.rounds, recordedRound{sessionID, score})
	return int64(len(f.rounds)), nil
}

func TestBannerRecordsRound(t *testing.T) {
	rec := &fakeRecorder{}
	b := NewBanner("abc", rec, nil)

	b.GameOver(4)
	b.GameOver(0)

	if len(rec.rounds) != 2 {
		t.Fatalf("Expected 2 recorded rounds, got %d", len(rec.rounds))
	}
	if rec.rounds[0] != (recordedRound{"abc", 4}) {
		t.Errorf("first round = %+v", rec.rounds[0])
	}
}

func TestBannerMessageExpires(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	b := NewBanner("abc", nil, nil)
	b.now = func() time.Time { return now }

	if _, ok := b.Message(); ok {
		t.Error("Message() should be empty before any game over")
	}

	b.GameOver(7)

	text, ok := b.Message()
	if !ok || text != "Game over! Score: 7" {
		t.Errorf("Message() = %q, %v", text, ok)
	}

	now = now.Add(bannerDuration)
	if _, ok := b.Message(); ok {
		t.Error("Message() should expire after the banner duration")
	}
}

func TestBannerRecorderFailure(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	b := NewBanner("abc", rec, nil)

	// Must not panic or block.
	b.GameOver(3)

	if _, ok := b.Message(); !ok {
		t.Error("Message() should still be shown when recording fails")
	}
}
