package scoring

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ResultsFileName is the results file inside the data directory.
const ResultsFileName = "results.json"

// ScoreStorage defines the interface for loading and saving results.
type ScoreStorage interface {
	// LoadAll loads all result entries from the persistence layer.
	LoadAll() ([]ResultEntry, error)
	// SaveAll saves entries, overwriting existing data.
	SaveAll(entries []ResultEntry) error
}

// JSONFileStorage stores results as a stream of JSON objects.
type JSONFileStorage struct {
	path string
}

// NewJSONFileStorage returns storage for results.json inside dir.
func NewJSONFileStorage(dir string) *JSONFileStorage {
	return &JSONFileStorage{path: filepath.Join(dir, ResultsFileName)}
}

func (jfs *JSONFileStorage) Path() string {
	return jfs.path
}

// LoadAll reads and decodes all result entries. A missing file is empty.
func (jfs *JSONFileStorage) LoadAll() ([]ResultEntry, error) {
	file, err := os.Open(jfs.path)
	if errors.Is(err, os.ErrNotExist) {
		return []ResultEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error opening results file for reading: %w", err)
	}
	defer file.Close()

	entries := make([]ResultEntry, 0)
	decoder := json.NewDecoder(file)
	for decoder.More() {
		var entry ResultEntry
		if err := decoder.Decode(&entry); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("error decoding JSON entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// SaveAll encodes and writes all result entries.
func (jfs *JSONFileStorage) SaveAll(entries []ResultEntry) error {
	if err := os.MkdirAll(filepath.Dir(jfs.path), 0755); err != nil {
		return fmt.Errorf("error creating results directory: %w", err)
	}

	file, err := os.OpenFile(jfs.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("error opening results file for writing: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	encoder := json.NewEncoder(writer)

	for _, entry := range entries {
		if err := encoder.Encode(entry); err != nil {
			return fmt.Errorf("error encoding JSON entry: %w", err)
		}
	}

	return writer.Flush()
}
