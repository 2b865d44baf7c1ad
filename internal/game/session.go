package game

import (
	"fmt"
	"log/slog"

	"go-pairs/internal/prefs"
	"go-pairs/internal/scoring"
	"go-pairs/internal/state"
)

// Session ties a Game to its persistence: the theme preference and the
// history of completed games.
type Session struct {
	Game         *Game
	Prefs        prefs.Store
	ScoreStorage scoring.ScoreStorage
	Score        *scoring.Scoring
	Logger       *slog.Logger

	GamesPlayed int
	GamesWon    int

	recorded bool
}

// NewSession restores the saved theme (unless opts.Theme is set), deals the
// first game and loads its result history.
func NewSession(opts state.GameOptions, prefStore prefs.Store, storage scoring.ScoreStorage, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if opts.Theme == "" {
		p, err := prefStore.Load()
		if err != nil {
			logger.Warn("could not load preferences", "error", err)
		}
		opts.Theme = p.Theme
	}

	s := &Session{
		Game:         NewGame(opts),
		Prefs:        prefStore,
		ScoreStorage: storage,
		Logger:       logger,
	}

	if err := s.StartNewGame(opts.GridSize); err != nil {
		return nil, err
	}
	return s, nil
}

// StartNewGame loads the history for size, then deals size*size cards.
// On error the running game and its history are left as they were.
func (s *Session) StartNewGame(size int) error {
	if err := state.ValidateGridSize(size); err != nil {
		return fmt.Errorf("could not start game: %w", err)
	}

	sc, err := scoring.InitScoring(size, s.ScoreStorage)
	if err != nil {
		return err
	}

	if err := s.Game.Configure(size); err != nil {
		return fmt.Errorf("could not start game: %w", err)
	}

	s.Score = sc
	s.recorded = false
	s.GamesPlayed++
	s.Logger.Info("game started", "gridSize", size, "game", s.GamesPlayed)
	return nil
}

// Restart deals a new game at the current size.
func (s *Session) Restart() error {
	return s.StartNewGame(s.Game.State.GridSize)
}

// CycleGridSize switches to the next supported grid size.
func (s *Session) CycleGridSize() error {
	return s.StartNewGame(state.NextGridSize(s.Game.State.GridSize))
}

// SelectCard forwards a choice to the game and records the result when the
// choice clears the deck.
func (s *Session) SelectCard(index int) bool {
	if !s.Game.SelectCard(index) {
		return false
	}

	g := s.Game.State
	if g.First == -1 && g.Second == -1 {
		s.Logger.Debug("pair matched", "turns", g.Turns, "pairs", g.MatchedPairs())
	}
	if s.Game.IsComplete() {
		s.recordResult()
	}
	return true
}

// ResolveFlipBack hides a mismatched pair. Stale handles are ignored.
func (s *Session) ResolveFlipBack(seq uint64) bool {
	ok := s.Game.ResolveFlipBack(seq)
	if !ok {
		s.Logger.Debug("stale flip-back ignored", "seq", seq)
	}
	return ok
}

// ToggleTheme flips the theme and saves it. Save failures are logged only.
func (s *Session) ToggleTheme() state.Theme {
	theme := s.Game.ToggleTheme()
	if err := s.Prefs.Save(prefs.Prefs{Theme: theme}); err != nil {
		s.Logger.Error("could not save preferences", "error", err)
	}
	return theme
}

func (s *Session) recordResult() {
	if s.recorded {
		return
	}
	s.recorded = true
	s.GamesWon++

	entry := s.Score.Record(s.Game.Turns(), s.Game.Elapsed())
	s.Logger.Info("game won",
		"gridSize", entry.GridSize,
		"turns", entry.Turns,
		"elapsedSeconds", entry.ElapsedSeconds,
		"best", s.Score.GotBestResult())

	if err := s.Score.SaveEntries(); err != nil {
		s.Logger.Error("could not save result", "error", err)
	}
}
