package view

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-pairs/internal/scoring"
	"go-pairs/internal/state"
)

func TestCard_ClickForwardsUnlessDisabled(t *testing.T) {
	var got []int
	choose := func(i int) bool {
		got = append(got, i)
		return true
	}

	assert.True(t, Card{Index: 3}.Click(choose))
	assert.False(t, Card{Index: 4, Disabled: true}.Click(choose))
	assert.Equal(t, []int{3}, got)
}

func TestCard_RenderFaceOrBack(t *testing.T) {
	dark := StylesFor(state.ThemeDark)
	light := StylesFor(state.ThemeLight)

	up := Card{Face: "Q", Flipped: true}.Render(dark, false)
	assert.Contains(t, up, "Q")
	assert.NotContains(t, up, dark.BackPattern)

	down := Card{Face: "Q"}.Render(dark, false)
	assert.NotContains(t, down, "Q")
	assert.Contains(t, down, dark.BackPattern)

	downLight := Card{Face: "Q"}.Render(light, false)
	assert.Contains(t, downLight, light.BackPattern)
	assert.NotEqual(t, dark.BackPattern, light.BackPattern)

	matched := Card{Face: "Q", Flipped: true, Matched: true}.Render(light, false)
	assert.Contains(t, matched, "Q")
}

func TestCard_WidestFacesKeepCardSize(t *testing.T) {
	st := StylesFor(state.ThemeDark)
	back := Card{}.Render(st, false)

	for _, face := range []string{"eleph", "猫猫", "A"} {
		require.NoError(t, state.ValidateFaces([]string{face}))
		out := Card{Face: face, Flipped: true}.Render(st, false)
		assert.Contains(t, out, face)
		assert.Equal(t, lipgloss.Height(back), lipgloss.Height(out), "face %q", face)
		assert.Equal(t, lipgloss.Width(back), lipgloss.Width(out), "face %q", face)
	}
}

func TestCardsFromState(t *testing.T) {
	s := state.NewState(state.GameOptions{})
	require.NoError(t, s.Deal(4))

	// pick a mismatching pair so the deck stays locked
	other := 1
	for s.Deck[other].ImageID == s.Deck[0].ImageID {
		other++
	}
	s.Choose(0)
	s.Choose(other)

	cards := CardsFromState(s)
	require.Len(t, cards, 16)
	assert.True(t, cards[0].Flipped)
	assert.True(t, cards[other].Flipped)
	for i, c := range cards {
		assert.True(t, c.Disabled, "card %d should be disabled while locked", i)
		assert.Equal(t, s.Deck[i].Face, c.Face)
	}
}

func TestLayout_CellAt(t *testing.T) {
	st := StylesFor(state.ThemeDark)
	l := NewLayout(st, 4)
	require.Positive(t, l.CellWidth)
	require.Positive(t, l.CellHeight)

	i, ok := l.CellAt(0, BoardTop)
	assert.True(t, ok)
	assert.Equal(t, 0, i)

	i, ok = l.CellAt(l.CellWidth*2+1, BoardTop+l.CellHeight*3+1)
	assert.True(t, ok)
	assert.Equal(t, 3*4+2, i)

	_, ok = l.CellAt(0, BoardTop-1)
	assert.False(t, ok, "header rows are not cards")
	_, ok = l.CellAt(l.CellWidth*4, BoardTop)
	assert.False(t, ok, "right of the board")
	_, ok = l.CellAt(l.CellWidth-1, BoardTop)
	assert.False(t, ok, "margin between cards")
}

func TestRenderBoard_Dimensions(t *testing.T) {
	st := StylesFor(state.ThemeDark)
	cards := make([]Card, 36)
	out := RenderBoard(cards, 6, 0, st)
	l := NewLayout(st, 6)

	assert.Equal(t, 6*l.CellHeight, lipgloss.Height(out))
	assert.Equal(t, 6*l.CellWidth, lipgloss.Width(out))
}

func TestMoveCursor(t *testing.T) {
	assert.Equal(t, 5, MoveCursor(1, 4, 1, 0))
	assert.Equal(t, 0, MoveCursor(0, 4, -1, -1))
	assert.Equal(t, 15, MoveCursor(15, 4, 1, 1))
	assert.Equal(t, 14, MoveCursor(15, 4, 0, -1))
}

func TestScreen_Render(t *testing.T) {
	sc := Screen{
		Cards:   make([]Card, 16),
		Size:    4,
		Theme:   state.ThemeDark,
		Turns:   7,
		Elapsed: 83 * time.Second,
		Pairs:   3,
		Attempt: 4,
		Best:    &scoring.ResultEntry{Turns: 11},
		Help:    "q quit",
	}

	out := sc.Render()
	assert.Contains(t, out, "Turns: 7")
	assert.Contains(t, out, "Time: 01:23")
	assert.Contains(t, out, "Pairs: 3/8")
	assert.Contains(t, out, "Grid: 4x4")
	assert.Contains(t, out, "Best: 11 turns")
	assert.Contains(t, out, "Attempt: 4")
	assert.Contains(t, out, "q quit")
	assert.NotContains(t, out, "cleared")

	current := scoring.ResultEntry{ID: "now", Turns: 7, ElapsedSeconds: 83}
	sc.Top = []scoring.ResultEntry{current, {ID: "old", Turns: 11, ElapsedSeconds: 95}}
	sc.Current = &current
	assert.NotContains(t, sc.Render(), "Top results", "results stay hidden until the board is won")

	sc.Won, sc.NewBest = true, true
	out = sc.Render()
	assert.Contains(t, out, "cleared the board in 7 turns")
	assert.Contains(t, out, "New best!")
	assert.Contains(t, out, "Top results (4x4):")
	assert.Contains(t, out, "1. 7 turns in 01:23  <- this game")
	assert.Contains(t, out, "2. 11 turns in 01:35")
	assert.NotContains(t, out, "01:35  <- this game")
}
