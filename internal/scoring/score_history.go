package scoring

import (
	"sort"
)

// ScoreHistory holds the completed games for one grid size, including
// the current game's result once recorded.
type ScoreHistory struct {
	Entries   []ResultEntry
	BestEntry *ResultEntry
	Current   *ResultEntry
	Attempts  int
}

// ResultEntry is a single completed game.
type ResultEntry struct {
	ID             string `json:"id"`
	GridSize       int    `json:"gridSize"`
	Turns          int    `json:"turns"`
	ElapsedSeconds int    `json:"elapsedSeconds"`
	Timestamp      string `json:"timestamp"`
}

// Better reports whether e beats other: fewer turns, then less time.
func (e ResultEntry) Better(other ResultEntry) bool {
	if e.Turns != other.Turns {
		return e.Turns < other.Turns
	}
	return e.ElapsedSeconds < other.ElapsedSeconds
}

// Best returns the best result from the loaded history.
func (sh ScoreHistory) Best() *ResultEntry {
	return sh.BestEntry
}

// TopN returns the top n results, the current one included.
func (sh ScoreHistory) TopN(n int) []ResultEntry {
	entries := make([]ResultEntry, len(sh.Entries), len(sh.Entries)+1)
	copy(entries, sh.Entries)
	if sh.Current != nil {
		entries = append(entries, *sh.Current)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Better(entries[j])
	})

	if len(entries) < n {
		return entries
	}
	return entries[:n]
}

// GotBestResult checks if the current result ties or beats the previous best.
func (sh ScoreHistory) GotBestResult() bool {
	if sh.Current == nil {
		return false
	}
	if sh.BestEntry == nil {
		return true
	}
	return !sh.BestEntry.Better(*sh.Current)
}
