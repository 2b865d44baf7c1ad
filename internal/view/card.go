// Package view renders the board with lipgloss. Nothing here holds game
// state; every function draws from the values it is given.
package view

import (
	"github.com/charmbracelet/lipgloss"

	"go-pairs/internal/state"
)

// faceWidth is the number of cells a face label may occupy. Decks only
// carry faces that fit.
const faceWidth = state.MaxFaceWidth

// Card is the presentational form of one deck card.
type Card struct {
	Index    int
	Face     string
	Flipped  bool // selected or matched
	Matched  bool
	Disabled bool // input is locked
}

// CardsFromState builds the card views for the current deck.
func CardsFromState(s *state.State) []Card {
	locked := s.IsLocked()
	cards := make([]Card, len(s.Deck))
	for i, c := range s.Deck {
		cards[i] = Card{
			Index:    i,
			Face:     c.Face,
			Flipped:  s.IsFlipped(i),
			Matched:  c.Matched,
			Disabled: locked,
		}
	}
	return cards
}

// Click forwards the card to choose unless input is locked.
func (c Card) Click(choose func(index int) bool) bool {
	if c.Disabled {
		return false
	}
	return choose(c.Index)
}

// Render draws the face when flipped, otherwise the theme's card back.
func (c Card) Render(st Styles, focused bool) string {
	style := st.Card
	content := st.BackPattern
	switch {
	case c.Matched:
		style = st.Matched
		content = c.Face
	case c.Flipped:
		style = st.Flipped
		content = c.Face
	default:
		content = st.Back.Render(content)
	}
	if focused {
		style = style.BorderForeground(st.CursorColor)
	}
	return style.Render(content)
}

// Styles is the palette for one theme.
type Styles struct {
	Title       lipgloss.Style
	Status      lipgloss.Style
	Win         lipgloss.Style
	Notice      lipgloss.Style
	Card        lipgloss.Style
	Flipped     lipgloss.Style
	Matched     lipgloss.Style
	Back        lipgloss.Style
	BackPattern string
	CursorColor lipgloss.Color
}

func baseCard() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(faceWidth+2).
		Padding(0, 1).
		Align(lipgloss.Center).
		MarginRight(1)
}

// StylesFor returns the palette for theme.
func StylesFor(theme state.Theme) Styles {
	if theme == state.ThemeLight {
		return Styles{
			Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")),
			Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			Win:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("28")),
			Notice:      lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
			Card:        baseCard().BorderForeground(lipgloss.Color("249")),
			Flipped:     baseCard().BorderForeground(lipgloss.Color("25")).Foreground(lipgloss.Color("25")).Bold(true),
			Matched:     baseCard().BorderForeground(lipgloss.Color("28")).Foreground(lipgloss.Color("28")),
			Back:        lipgloss.NewStyle().Foreground(lipgloss.Color("110")),
			BackPattern: "▚▚▚▚▚",
			CursorColor: lipgloss.Color("166"),
		}
	}
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Win:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		Notice:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Card:        baseCard().BorderForeground(lipgloss.Color("240")),
		Flipped:     baseCard().BorderForeground(lipgloss.Color("15")).Foreground(lipgloss.Color("15")).Bold(true),
		Matched:     baseCard().BorderForeground(lipgloss.Color("10")).Foreground(lipgloss.Color("10")),
		Back:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		BackPattern: "░░░░░",
		CursorColor: lipgloss.Color("11"),
	}
}
