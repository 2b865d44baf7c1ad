package state

import "time"

// IsLocked is true while a chosen pair is evaluated or shown before flip-back.
func (s *State) IsLocked() bool {
	return s.FSM.Is("evaluating") || s.FSM.Is("revealing")
}

// IsComplete is true once the last pair has been matched.
func (s *State) IsComplete() bool {
	return s.FSM.Is("won")
}

// AllMatched reports whether a dealt deck has no hidden cards left.
func (s State) AllMatched() bool {
	if len(s.Deck) == 0 {
		return false
	}
	for _, c := range s.Deck {
		if !c.Matched {
			return false
		}
	}
	return true
}

// PairMatches reports whether both selected cards share an image.
func (s State) PairMatches() bool {
	if s.First == noSelection || s.Second == noSelection {
		return false
	}
	return s.Deck[s.First].ImageID == s.Deck[s.Second].ImageID
}

// IsSelected reports whether index is one of the current selections.
func (s State) IsSelected(index int) bool {
	return index != noSelection && (index == s.First || index == s.Second)
}

// IsFlipped reports whether the card at index shows its face.
func (s State) IsFlipped(index int) bool {
	if index < 0 || index >= len(s.Deck) {
		return false
	}
	return s.Deck[index].Matched || s.IsSelected(index)
}

// MatchedPairs counts the pairs found so far.
func (s State) MatchedPairs() int {
	n := 0
	for _, c := range s.Deck {
		if c.Matched {
			n++
		}
	}
	return n / 2
}

// Elapsed is the time since the deal, frozen once the deck is cleared.
func (s State) Elapsed() time.Duration {
	if s.StartTime.IsZero() {
		return 0
	}
	end := s.EndTime
	if end.IsZero() {
		end = s.Now()
	}
	return end.Sub(s.StartTime)
}
