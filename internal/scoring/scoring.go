package scoring

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Scoring tracks completed-game results for one grid size.
type Scoring struct {
	GridSize int

	storage ScoreStorage
	history ScoreHistory
	now     func() time.Time
}

// InitScoring loads the result history for gridSize from storage.
func InitScoring(gridSize int, storage ScoreStorage) (*Scoring, error) {
	s := &Scoring{
		GridSize: gridSize,
		storage:  storage,
		now:      time.Now,
	}

	allEntries, err := s.storage.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("could not load result history: %w", err)
	}

	filtered := []ResultEntry{}
	for _, entry := range allEntries {
		if entry.GridSize == gridSize {
			filtered = append(filtered, entry)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Better(filtered[j])
	})

	s.history.Entries = filtered
	s.history.Attempts = len(filtered)
	if len(filtered) > 0 {
		s.history.BestEntry = &filtered[0]
	}

	return s, nil
}

// Record sets the result of the current game. Recording again replaces it.
func (s *Scoring) Record(turns int, elapsed time.Duration) ResultEntry {
	entry := ResultEntry{
		ID:             uuid.NewString(),
		GridSize:       s.GridSize,
		Turns:          turns,
		ElapsedSeconds: int(elapsed / time.Second),
		Timestamp:      s.now().Format(time.RFC3339),
	}
	s.history.Current = &entry
	return entry
}

// SaveEntries appends the current result to storage.
func (s *Scoring) SaveEntries() error {
	if s.history.Current == nil {
		return nil
	}

	allEntries, err := s.storage.LoadAll()
	if err != nil {
		return fmt.Errorf("could not load results for saving: %w", err)
	}

	updated := make([]ResultEntry, 0, len(allEntries)+1)
	for _, entry := range allEntries {
		if entry.ID != s.history.Current.ID {
			updated = append(updated, entry)
		}
	}
	updated = append(updated, *s.history.Current)

	return s.storage.SaveAll(updated)
}

// Best returns the best result loaded for this grid size, or nil.
func (s *Scoring) Best() *ResultEntry {
	return s.history.Best()
}

// Current returns the result recorded for the running game, or nil.
func (s *Scoring) Current() *ResultEntry {
	return s.history.Current
}

// Attempts is the number of earlier results for this grid size.
func (s *Scoring) Attempts() int {
	return s.history.Attempts
}

func (s *Scoring) GotBestResult() bool {
	return s.history.GotBestResult()
}

func (s *Scoring) TopN(n int) []ResultEntry {
	return s.history.TopN(n)
}
