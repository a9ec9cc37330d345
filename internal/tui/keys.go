package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/valentine/internal/card"
)

type keyMap struct {
	Open  key.Binding
	Music key.Binding
	Heart key.Binding
	Back  key.Binding
	Yes   key.Binding
	No    key.Binding
	Quit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Open:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
		Music: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "music")),
		Heart: key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "heart")),
		Back:  key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Yes:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		No:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// screenKeys narrows the help footer to the bindings live on one screen.
type screenKeys struct {
	keyMap
	screen card.Screen
}

func (k screenKeys) ShortHelp() []key.Binding {
	switch k.screen {
	case card.ScreenStart:
		return []key.Binding{k.Open, k.Quit}
	case card.ScreenMenu:
		return []key.Binding{k.Music, k.Heart, k.Quit}
	case card.ScreenQuestion:
		return []key.Binding{k.Yes, k.No, k.Back, k.Quit}
	default:
		return []key.Binding{k.Quit}
	}
}

func (k screenKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// trigger maps a key press to a card trigger. Whether the trigger does
// anything on the current screen is the machine's call.
func (k keyMap) trigger(msg tea.KeyMsg) (card.Trigger, bool) {
	switch {
	case key.Matches(msg, k.Open):
		return card.TriggerTapCard, true
	case key.Matches(msg, k.Music):
		return card.TriggerTapMusic, true
	case key.Matches(msg, k.Heart):
		return card.TriggerTapHeart, true
	case key.Matches(msg, k.Back):
		return card.TriggerTapBack, true
	case key.Matches(msg, k.Yes):
		return card.TriggerTapYes, true
	case key.Matches(msg, k.No):
		return card.TriggerHoverNo, true
	}
	return "", false
}
