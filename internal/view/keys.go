package view

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the game's key bindings. It satisfies help.KeyMap.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Flip    key.Binding
	NewGame key.Binding
	Theme   key.Binding
	Grid    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Flip:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "flip")),
		NewGame: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new game")),
		Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle theme")),
		Grid:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "grid size")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flip, k.NewGame, k.Theme, k.Grid, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Flip, k.NewGame, k.Theme, k.Grid},
		{k.Help, k.Quit},
	}
}

// MoveCursor returns the cursor after a step of dRow, dCol on a size x size
// grid, clamped to the board.
func MoveCursor(cursor, size, dRow, dCol int) int {
	row := cursor/size + dRow
	col := cursor%size + dCol
	row = max(0, min(size-1, row))
	col = max(0, min(size-1, col))
	return row*size + col
}
