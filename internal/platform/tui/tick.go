// Package tui runs the snake game in a terminal through Bubble Tea. It maps
// keys to game actions, turns ticker ticks into game updates and hosts the
// menu, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/ticker"
)

// TickMsg carries one tick from a game's ticker into the event loop.
type TickMsg struct {
	Time time.Time
	gen  uint64
	src  *ticker.Ticker
}

// bannerExpiredMsg redraws the view once the game over banner has expired.
type bannerExpiredMsg struct{}

// waitForTick blocks until the ticker fires or done is closed.
// Exactly one of these is outstanding per running game model.
func waitForTick(tk *ticker.Ticker, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case t := <-tk.C():
			return TickMsg{Time: t.Time, gen: t.Gen, src: tk}
		case <-done:
			return nil
		}
	}
}

// expireBanner schedules a redraw for when the banner times out.
func expireBanner() tea.Cmd {
	return tea.Tick(bannerDuration, func(time.Time) tea.Msg {
		return bannerExpiredMsg{}
	})
}
