// Package prefs persists player preferences between runs.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go-pairs/internal/state"
)

const FileName = "prefs.json"

type Prefs struct {
	Theme state.Theme `json:"theme"`
}

// Store loads and saves preferences.
type Store interface {
	Load() (Prefs, error)
	Save(p Prefs) error
}

// JSONFileStore keeps preferences in a single JSON document.
type JSONFileStore struct {
	path string
}

func NewJSONFileStore(dir string) *JSONFileStore {
	return &JSONFileStore{path: filepath.Join(dir, FileName)}
}

func (s *JSONFileStore) Path() string {
	return s.path
}

// Load returns the stored preferences. A missing file yields zero Prefs.
func (s *JSONFileStore) Load() (Prefs, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Prefs{}, nil
	}
	if err != nil {
		return Prefs{}, fmt.Errorf("error reading prefs file: %w", err)
	}

	var p Prefs
	if len(data) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return Prefs{}, fmt.Errorf("error decoding prefs file: %w", err)
	}
	if _, err := state.ParseTheme(string(p.Theme)); err != nil {
		return Prefs{}, fmt.Errorf("error decoding prefs file: %w", err)
	}
	return p, nil
}

func (s *JSONFileStore) Save(p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("error creating prefs directory: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding prefs: %w", err)
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("error writing prefs file: %w", err)
	}
	return nil
}
