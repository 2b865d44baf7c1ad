package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"go-pairs/internal/scoring"
	"go-pairs/internal/state"
)

// BoardTop is the screen row where the first card row starts.
const BoardTop = 2

// Layout maps screen cells to card indexes.
type Layout struct {
	Top        int
	CellWidth  int
	CellHeight int
	Size       int
}

// NewLayout measures a rendered card to size the grid cells.
func NewLayout(st Styles, size int) Layout {
	sample := Card{}.Render(st, false)
	return Layout{
		Top:        BoardTop,
		CellWidth:  lipgloss.Width(sample),
		CellHeight: lipgloss.Height(sample),
		Size:       size,
	}
}

// CellAt returns the card index under screen position x, y.
// Clicks on the gap between cards hit nothing.
func (l Layout) CellAt(x, y int) (int, bool) {
	if l.CellWidth == 0 || l.CellHeight == 0 || x < 0 || y < l.Top {
		return 0, false
	}
	col := x / l.CellWidth
	row := (y - l.Top) / l.CellHeight
	if col >= l.Size || row >= l.Size {
		return 0, false
	}
	// the last column of a cell is its margin
	if x%l.CellWidth == l.CellWidth-1 {
		return 0, false
	}
	return row*l.Size + col, true
}

// RenderBoard lays the cards out in size rows.
func RenderBoard(cards []Card, size, cursor int, st Styles) string {
	rows := make([]string, 0, size)
	for r := 0; r < size; r++ {
		cells := make([]string, 0, size)
		for c := 0; c < size; c++ {
			i := r*size + c
			if i >= len(cards) {
				break
			}
			cells = append(cells, cards[i].Render(st, i == cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Screen is everything shown in one frame.
type Screen struct {
	Cards   []Card
	Size    int
	Cursor  int
	Theme   state.Theme
	Turns   int
	Elapsed time.Duration
	Pairs   int
	Attempt int // 1 for the first game at this size
	Best    *scoring.ResultEntry
	Won     bool
	NewBest bool
	Top     []scoring.ResultEntry // shown once Won
	Current *scoring.ResultEntry  // this game's result, marked in Top
	Notice  string
	Help    string
}

// FormatElapsed renders d as MM:SS.
func FormatElapsed(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func (s Screen) statusLine() string {
	parts := []string{
		fmt.Sprintf("Turns: %d", s.Turns),
		"Time: " + FormatElapsed(s.Elapsed),
		fmt.Sprintf("Pairs: %d/%d", s.Pairs, s.Size*s.Size/2),
		fmt.Sprintf("Grid: %dx%d", s.Size, s.Size),
	}
	if s.Attempt > 0 {
		parts = append(parts, fmt.Sprintf("Attempt: %d", s.Attempt))
	}
	if s.Best != nil {
		parts = append(parts, fmt.Sprintf("Best: %d turns", s.Best.Turns))
	}
	return strings.Join(parts, " | ")
}

func (s Screen) topResults() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Top results (%dx%d):", s.Size, s.Size)
	for i, e := range s.Top {
		fmt.Fprintf(&b, "\n  %d. %d turns in %s", i+1, e.Turns, FormatElapsed(time.Duration(e.ElapsedSeconds)*time.Second))
		if s.Current != nil && e.ID == s.Current.ID {
			b.WriteString("  <- this game")
		}
	}
	return b.String()
}

// Render draws the title, status line, board, and any end-of-game summary.
func (s Screen) Render() string {
	st := StylesFor(s.Theme)

	var b strings.Builder
	b.WriteString(st.Title.Render("Memory Game"))
	b.WriteString("\n")
	b.WriteString(st.Status.Render(s.statusLine()))
	b.WriteString("\n")
	b.WriteString(RenderBoard(s.Cards, s.Size, s.Cursor, st))
	b.WriteString("\n")

	if s.Won {
		msg := fmt.Sprintf("You cleared the board in %d turns (%s)!", s.Turns, FormatElapsed(s.Elapsed))
		if s.NewBest {
			msg += " New best!"
		}
		b.WriteString(st.Win.Render(msg))
		b.WriteString("\n")
		if len(s.Top) > 0 {
			b.WriteString(st.Status.Render(s.topResults()))
			b.WriteString("\n")
		}
	}

	if s.Notice != "" {
		b.WriteString(st.Notice.Render(s.Notice))
		b.WriteString("\n")
	}

	if s.Help != "" {
		b.WriteString("\n")
		b.WriteString(s.Help)
	}
	return b.String()
}
