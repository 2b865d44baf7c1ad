package game

import (
	"time"

	"go-pairs/internal/state"
)

// Game encapsulates the core game logic, independent of the UI.
type Game struct {
	State *state.State
}

// NewGame creates a controller. No cards are dealt until StartNewGame.
func NewGame(opts state.GameOptions) *Game {
	return &Game{
		State: state.NewState(opts),
	}
}

// StartNewGame deals a fresh deck of size*size cards, resets turns and the
// clock, and cancels any pending flip-back.
func (g *Game) StartNewGame(size int) error {
	return g.State.Deal(size)
}

// Configure changes the grid size and reshuffles in one step. An unsupported
// size returns an error and leaves the current game untouched.
func (g *Game) Configure(size int) error {
	if err := state.ValidateGridSize(size); err != nil {
		return err
	}
	return g.StartNewGame(size)
}

// SelectCard offers the card at index as the next choice. Choices made while
// locked, on matched cards, or on the current selection are ignored.
// It reports whether the choice was taken.
func (g *Game) SelectCard(index int) bool {
	return g.State.Choose(index)
}

// PendingFlip returns the scheduled flip-back, or nil.
func (g *Game) PendingFlip() *state.PendingFlip {
	return g.State.Pending
}

// ResolveFlipBack hides a mismatched pair once its delay has elapsed.
// Stale handles are ignored.
func (g *Game) ResolveFlipBack(seq uint64) bool {
	return g.State.FlipBack(seq)
}

// ToggleTheme flips between dark and light and returns the new theme.
func (g *Game) ToggleTheme() state.Theme {
	g.State.Theme = g.State.Theme.Toggle()
	return g.State.Theme
}

func (g *Game) Turns() int {
	return g.State.Turns
}

func (g *Game) IsLocked() bool {
	return g.State.IsLocked()
}

func (g *Game) IsComplete() bool {
	return g.State.IsComplete()
}

func (g *Game) Elapsed() time.Duration {
	return g.State.Elapsed()
}
