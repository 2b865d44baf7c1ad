package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"go-pairs/internal/config"
	"go-pairs/internal/game"
	"go-pairs/internal/logger"
	"go-pairs/internal/prefs"
	"go-pairs/internal/scoring"
	"go-pairs/internal/state"
	"go-pairs/internal/view"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type LocalState struct {
	Session *game.Session
	Keys    view.KeyMap
	Help    help.Model
	Cursor  int
	Notice  string
}

// topResults is how many results the win screen lists.
const topResults = 5

type TickMsg time.Time

// FlipBackMsg fires when a mismatched pair's delay has elapsed.
type FlipBackMsg struct {
	Seq uint64
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func flipBackCmd(p *state.PendingFlip) tea.Cmd {
	seq := p.Seq
	return tea.Tick(time.Until(p.Deadline), func(time.Time) tea.Msg {
		return FlipBackMsg{Seq: seq}
	})
}

func initialModel(opts state.GameOptions, cfg config.Config, log *slog.Logger) (*LocalState, error) {
	sess, err := game.NewSession(
		opts,
		prefs.NewJSONFileStore(cfg.DataDir),
		scoring.NewJSONFileStorage(cfg.DataDir),
		log,
	)
	if err != nil {
		return nil, err
	}

	return &LocalState{
		Session: sess,
		Keys:    view.DefaultKeyMap(),
		Help:    help.New(),
	}, nil
}

func (s *LocalState) Init() tea.Cmd {
	return tickCmd()
}

// choose forwards the card at index through its view so locked input is dropped.
func (s *LocalState) choose(index int) tea.Cmd {
	cards := view.CardsFromState(s.Session.Game.State)
	if index < 0 || index >= len(cards) {
		return nil
	}
	if !cards[index].Click(s.Session.SelectCard) {
		return nil
	}
	if p := s.Session.Game.PendingFlip(); p != nil {
		return flipBackCmd(p)
	}
	return nil
}

func (s *LocalState) startOver(start func() error) {
	if err := start(); err != nil {
		s.Session.Logger.Error("could not deal", "error", err)
		s.Notice = err.Error()
		return
	}
	s.Notice = ""
	s.Cursor = 0
}

func (s *LocalState) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	size := s.Session.Game.State.GridSize

	switch msg := msg.(type) {
	case TickMsg:
		return s, tickCmd()
	case FlipBackMsg:
		s.Session.ResolveFlipBack(msg.Seq)
	case tea.WindowSizeMsg:
		s.Help.Width = msg.Width
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return s, nil
		}
		layout := view.NewLayout(view.StylesFor(s.Session.Game.State.Theme), size)
		if i, ok := layout.CellAt(msg.X, msg.Y); ok {
			s.Cursor = i
			return s, s.choose(i)
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.Keys.Quit):
			return s, tea.Quit
		case key.Matches(msg, s.Keys.Up):
			s.Cursor = view.MoveCursor(s.Cursor, size, -1, 0)
		case key.Matches(msg, s.Keys.Down):
			s.Cursor = view.MoveCursor(s.Cursor, size, 1, 0)
		case key.Matches(msg, s.Keys.Left):
			s.Cursor = view.MoveCursor(s.Cursor, size, 0, -1)
		case key.Matches(msg, s.Keys.Right):
			s.Cursor = view.MoveCursor(s.Cursor, size, 0, 1)
		case key.Matches(msg, s.Keys.Flip):
			return s, s.choose(s.Cursor)
		case key.Matches(msg, s.Keys.NewGame):
			s.startOver(s.Session.Restart)
		case key.Matches(msg, s.Keys.Grid):
			s.startOver(s.Session.CycleGridSize)
		case key.Matches(msg, s.Keys.Theme):
			s.Session.ToggleTheme()
		case key.Matches(msg, s.Keys.Help):
			s.Help.ShowAll = !s.Help.ShowAll
		}
	}

	return s, nil
}

func (s *LocalState) View() string {
	g := s.Session.Game
	screen := view.Screen{
		Cards:   view.CardsFromState(g.State),
		Size:    g.State.GridSize,
		Cursor:  s.Cursor,
		Theme:   g.State.Theme,
		Turns:   g.Turns(),
		Elapsed: g.Elapsed(),
		Pairs:   g.State.MatchedPairs(),
		Attempt: s.Session.Score.Attempts() + 1,
		Best:    s.Session.Score.Best(),
		Won:     g.IsComplete(),
		Notice:  s.Notice,
		Help:    s.Help.View(s.Keys),
	}
	if screen.Won {
		screen.NewBest = s.Session.Score.GotBestResult()
		screen.Top = s.Session.Score.TopN(topResults)
		screen.Current = s.Session.Score.Current()
	}
	return screen.Render()
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	flag.IntVar(&cfg.GridSize, "size", cfg.GridSize, "Grid size: 4 (4x4) or 6 (6x6)")
	flag.IntVar(&cfg.GridSize, "s", cfg.GridSize, "Grid size (shorthand)")
	flag.StringVar(&cfg.Theme, "theme", cfg.Theme, "Theme: dark or light (default: last used)")
	flag.DurationVar(&cfg.FlipDelay, "delay", cfg.FlipDelay, "How long a mismatched pair stays visible")
	flag.StringVar(&cfg.FacesPath, "faces", cfg.FacesPath, "File or directory of card faces, one per line")
	flag.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Write JSON logs to this file")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		fmt.Fprintf(os.Stderr, "   -s, --size=N        Grid size: 4 (4x4) or 6 (6x6)\n")
		fmt.Fprintf(os.Stderr, "       --theme=NAME    dark or light (default: last used)\n")
		fmt.Fprintf(os.Stderr, "       --delay=D       Mismatch delay, e.g. 1s or 750ms\n")
		fmt.Fprintf(os.Stderr, "       --faces=PATH    File or directory of card faces\n")
		fmt.Fprintf(os.Stderr, "       --log=FILE      Write JSON logs to FILE\n")
		fmt.Fprintf(os.Stderr, "   -h, --help          Show this help message\n")
		fmt.Fprintf(os.Stderr, "\nEnvironment: GO_PAIRS_GRID_SIZE, GO_PAIRS_THEME, GO_PAIRS_FLIP_DELAY,\n")
		fmt.Fprintf(os.Stderr, "  GO_PAIRS_FACES, GO_PAIRS_DATA_DIR, GO_PAIRS_LOG_FILE, GO_PAIRS_LOG_LEVEL\n")
	}

	flag.Parse()

	if err := config.Validate(cfg); err != nil {
		return err
	}

	log, closer, err := logger.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	// An empty theme means "use the saved preference".
	opts := state.GameOptions{
		GridSize:  cfg.GridSize,
		FlipDelay: cfg.FlipDelay,
		Theme:     state.Theme(cfg.Theme),
	}
	if cfg.FacesPath != "" {
		faces, err := game.LoadFaces(strings.Split(cfg.FacesPath, string(os.PathListSeparator)))
		if err != nil {
			return fmt.Errorf("loading faces: %w", err)
		}
		opts.Faces = faces
	}

	model, err := initialModel(opts, cfg, log)
	if err != nil {
		return fmt.Errorf("initializing model: %w", err)
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Error("program failed", "error", err)
		return fmt.Errorf("running the program: %w", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
