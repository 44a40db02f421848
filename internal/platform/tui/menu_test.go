package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/storage"
)

func menuSend(m MenuModel, msg tea.Msg) MenuModel {
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, 80, 24)

	m = menuSend(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d, expected to stay at 0", m.cursor)
	}

	for range 5 {
		m = menuSend(m, runeKey('j'))
	}
	if m.cursor != len(menuChoices)-1 {
		t.Errorf("cursor = %d, expected to stop at the last entry", m.cursor)
	}

	if m.Selected() != ChoiceNone {
		t.Error("nothing should be selected before enter")
	}
	m = menuSend(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() != ChoiceQuit {
		t.Errorf("Selected() = %v, expected Quit", m.Selected())
	}
}

func TestMenuShowsBest(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SetBestScore(23)

	m := NewMenuModel(store, 80, 24)
	if !strings.Contains(m.View(), "Best: 23") {
		t.Errorf("menu is missing the best score:\n%s", m.View())
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"abc", 6, " abc"},
		{"abcdef", 4, "abcdef"},
	}
	for _, tt := range tests {
		if got := centerText(tt.text, tt.width); got != tt.want {
			t.Errorf("centerText(%q, %d) = %q, expected %q", tt.text, tt.width, got, tt.want)
		}
	}
}
