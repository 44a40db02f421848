package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsnake/internal/storage"
)

// MenuChoice is an entry of the start menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

func (c MenuChoice) String() string {
	switch c {
	case ChoicePlay:
		return "Play"
	case ChoiceScores:
		return "High scores"
	case ChoiceQuit:
		return "Quit"
	default:
		return ""
	}
}

var menuChoices = []MenuChoice{ChoicePlay, ChoiceScores, ChoiceQuit}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuCursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuSubtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	cursor   int
	width    int
	height   int
	best     int
	keys     KeyMap
	selected MenuChoice
}

// NewMenuModel creates a new menu model. The best score is read from store
// when one is available.
func NewMenuModel(store *storage.Store, width, height int) MenuModel {
	m := MenuModel{
		width:  width,
		height: height,
		keys:   DefaultKeyMap(),
	}
	if store != nil {
		if best, err := store.BestScore(); err == nil {
			m.best = best
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.selected = ChoiceQuit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(menuChoices)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Confirm):
		m.selected = menuChoices[m.cursor]
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("G R I D S N A K E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuSubtitleStyle.Render(fmt.Sprintf("Best: %d", m.best)), m.width))
	b.WriteString("\n\n")

	for i, c := range menuChoices {
		line := "  " + c.String()
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + c.String())
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(footerStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry, or ChoiceNone while the menu is open.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// centerText centers text within the given width.
// Width is measured without ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
