package state

import (
	"context"
	"fmt"
	"time"

	"github.com/looplab/fsm"
)

// DefaultFlipDelay is how long a mismatched pair stays face-up.
const DefaultFlipDelay = time.Second

const noSelection = -1

// Theme selects the card back and palette.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// ParseTheme maps a config value to a Theme. Empty means dark.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case "", ThemeDark:
		return ThemeDark, nil
	case ThemeLight:
		return ThemeLight, nil
	}
	return "", fmt.Errorf("invalid theme %q (use dark or light)", s)
}

// GameOptions configures a new State. Unset options other than GridSize
// fall back to defaults.
type GameOptions struct {
	GridSize  int
	FlipDelay time.Duration
	Theme     Theme
	Faces     []string
}

// PendingFlip is the handle of a scheduled flip-back. Seq identifies it;
// a flip-back carrying any other Seq is stale and ignored.
type PendingFlip struct {
	Seq      uint64
	Deadline time.Time
}

// State is one dealt game together with the FSM that moves it from
// selection to flip-back.
type State struct {
	Deck      []Card
	Turns     int
	First     int // deck index of the first selection, -1 when empty
	Second    int // deck index of the second selection, -1 when empty
	GridSize  int
	Theme     Theme
	StartTime time.Time
	EndTime   time.Time
	FlipDelay time.Duration
	Faces     []string
	Pending   *PendingFlip
	FSM       *fsm.FSM
	Now       func() time.Time

	seq    uint64
	chosen int // index carried by the in-flight "choose" event
}

func NewState(opts GameOptions) *State {
	s := &State{
		First:     noSelection,
		Second:    noSelection,
		GridSize:  opts.GridSize,
		Theme:     opts.Theme,
		FlipDelay: opts.FlipDelay,
		Faces:     opts.Faces,
		Now:       time.Now,
		chosen:    noSelection,
	}
	if s.Theme == "" {
		s.Theme = ThemeDark
	}
	if s.FlipDelay <= 0 {
		s.FlipDelay = DefaultFlipDelay
	}
	if len(s.Faces) == 0 {
		s.Faces = DefaultFaces()
	}

	s.FSM = fsm.NewFSM(
		"start",
		getStateTransitions(),
		getStateCallbacks(s),
	)

	return s
}

// Deal replaces the deck with a fresh shuffle of size*size cards and resets
// the round. Any pending flip-back is cancelled. On error the state is left
// untouched.
func (s *State) Deal(size int) error {
	deck, err := NewDeck(s.Faces, size)
	if err != nil {
		return err
	}

	s.Deck = deck
	s.GridSize = size
	s.Turns = 0
	s.clearSelection()
	s.CancelPending()
	s.StartTime = s.Now()
	s.EndTime = time.Time{}
	s.FSM.SetState("idle")
	return nil
}

// Choose offers the card at index as the next selection.
// It reports whether the selection was accepted.
func (s *State) Choose(index int) bool {
	return s.FSM.Event(context.Background(), "choose", index) == nil
}

// FlipBack resolves the pending mismatch identified by seq.
// It reports whether anything changed.
func (s *State) FlipBack(seq uint64) bool {
	return s.FSM.Event(context.Background(), "flipBack", seq) == nil
}

// CancelPending drops the scheduled flip-back, if any.
func (s *State) CancelPending() {
	s.seq++
	s.Pending = nil
}

func (s *State) clearSelection() {
	s.First = noSelection
	s.Second = noSelection
}

func getStateTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: "choose", Src: []string{"idle"}, Dst: "oneChosen"},
		{Name: "choose", Src: []string{"oneChosen"}, Dst: "evaluating"},

		// Evaluation
		{Name: "matched", Src: []string{"evaluating"}, Dst: "idle"},
		{Name: "completed", Src: []string{"evaluating"}, Dst: "won"},
		{Name: "mismatched", Src: []string{"evaluating"}, Dst: "revealing"},

		// Mismatch delay
		{Name: "flipBack", Src: []string{"revealing"}, Dst: "idle"},
	}
}

func getStateCallbacks(s *State) map[string]fsm.Callback {
	return fsm.Callbacks{
		"before_choose": func(ctx context.Context, e *fsm.Event) {
			index := noSelection
			if len(e.Args) > 0 {
				index, _ = e.Args[0].(int)
			}
			if index < 0 || index >= len(s.Deck) || s.Deck[index].Matched || index == s.First {
				e.Cancel()
				return
			}
			s.chosen = index
		},
		"enter_oneChosen": func(ctx context.Context, e *fsm.Event) {
			s.First = s.chosen
			s.chosen = noSelection
		},
		"enter_evaluating": func(ctx context.Context, e *fsm.Event) {
			s.Second = s.chosen
			s.chosen = noSelection

			if !s.PairMatches() {
				e.FSM.Event(ctx, "mismatched")
				return
			}

			s.Deck[s.First].Matched = true
			s.Deck[s.Second].Matched = true
			s.clearSelection()
			s.Turns++

			if s.AllMatched() {
				s.EndTime = s.Now()
				e.FSM.Event(ctx, "completed")
				return
			}
			e.FSM.Event(ctx, "matched")
		},
		"enter_revealing": func(ctx context.Context, e *fsm.Event) {
			s.seq++
			s.Pending = &PendingFlip{
				Seq:      s.seq,
				Deadline: s.Now().Add(s.FlipDelay),
			}
		},
		"before_flipBack": func(ctx context.Context, e *fsm.Event) {
			var seq uint64
			if len(e.Args) > 0 {
				seq, _ = e.Args[0].(uint64)
			}
			if s.Pending == nil || s.Pending.Seq != seq {
				e.Cancel()
			}
		},
		"after_flipBack": func(ctx context.Context, e *fsm.Event) {
			s.Pending = nil
			s.clearSelection()
			s.Turns++
		},
	}
}
