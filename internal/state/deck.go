package state

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

var (
	ErrInvalidGridSize = errors.New("invalid grid size")
	ErrNotEnoughFaces  = errors.New("not enough card faces")
	ErrInvalidFace     = errors.New("invalid card face")
)

// MaxFaceWidth is the number of terminal columns a face may occupy.
const MaxFaceWidth = 5

// SupportedGridSizes lists the board edge lengths the game can deal.
// Each must have an even square so every card has a partner.
var SupportedGridSizes = []int{4, 6}

// Card is one tile in the deck. Both cards of a pair share ImageID.
type Card struct {
	ImageID   int
	DisplayID string
	Face      string
	Matched   bool
}

// DefaultFaces returns the built-in face set, one glyph per letter.
func DefaultFaces() []string {
	faces := make([]string, 0, 26)
	for r := 'A'; r <= 'Z'; r++ {
		faces = append(faces, string(r))
	}
	return faces
}

// ValidateGridSize rejects sizes the game cannot deal.
func ValidateGridSize(size int) error {
	if !slices.Contains(SupportedGridSizes, size) {
		return fmt.Errorf("%w: %d (supported: %v)", ErrInvalidGridSize, size, SupportedGridSizes)
	}
	return nil
}

// NextGridSize returns the supported size following size, wrapping around.
func NextGridSize(size int) int {
	i := slices.Index(SupportedGridSizes, size)
	return SupportedGridSizes[(i+1)%len(SupportedGridSizes)]
}

// ValidateFaces rejects faces that are empty, wider than MaxFaceWidth
// columns, or repeated. Width is measured in terminal cells, so wide runes
// count double.
func ValidateFaces(faces []string) error {
	seen := make(map[string]struct{}, len(faces))
	for i, face := range faces {
		if face == "" {
			return fmt.Errorf("%w: face %d is empty", ErrInvalidFace, i)
		}
		if w := lipgloss.Width(face); w > MaxFaceWidth {
			return fmt.Errorf("%w: %q is %d columns wide (max %d)", ErrInvalidFace, face, w, MaxFaceWidth)
		}
		if _, dup := seen[face]; dup {
			return fmt.Errorf("%w: %q appears twice", ErrInvalidFace, face)
		}
		seen[face] = struct{}{}
	}
	return nil
}

// NewDeck builds size*size cards: size²/2 distinct images, each dealt twice,
// in uniformly random order.
func NewDeck(faces []string, size int) ([]Card, error) {
	if err := ValidateGridSize(size); err != nil {
		return nil, err
	}

	pairs := size * size / 2
	if len(faces) < pairs {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrNotEnoughFaces, pairs, len(faces))
	}
	if err := ValidateFaces(faces[:pairs]); err != nil {
		return nil, err
	}

	deck := make([]Card, 0, pairs*2)
	for id := 0; id < pairs; id++ {
		deck = append(deck, Card{ImageID: id, Face: faces[id]}, Card{ImageID: id, Face: faces[id]})
	}

	// rand.Shuffle is a Fisher-Yates permutation.
	rand.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	for i := range deck {
		deck[i].DisplayID = uuid.NewString()
	}

	return deck, nil
}
