package scoring

import (
	"os"
	"path/filepath"
	"testing"
)

func TestJSONFileStorage_SaveAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	storage := NewJSONFileStorage(dir)

	// 1. Load on a missing file returns nothing
	entries, err := storage.LoadAll()
	if err != nil {
		t.Errorf("LoadAll on non-existent file returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected 0 entries, got %d", len(entries))
	}

	// 2. Save creates the directory and file
	testEntries := []ResultEntry{
		{ID: "abc", GridSize: 4, Turns: 12, ElapsedSeconds: 40, Timestamp: "2023-01-01"},
		{ID: "def", GridSize: 6, Turns: 30, ElapsedSeconds: 200, Timestamp: "2023-01-02"},
	}
	if err := storage.SaveAll(testEntries); err != nil {
		t.Fatalf("SaveAll returned error: %v", err)
	}
	if _, err := os.Stat(storage.Path()); err != nil {
		t.Errorf("File was not created at %s: %v", storage.Path(), err)
	}

	// 3. Load returns what was saved
	loaded, err := storage.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll returned error: %v", err)
	}
	if len(loaded) != len(testEntries) {
		t.Fatalf("Expected %d entries, got %d", len(testEntries), len(loaded))
	}
	if loaded[0] != testEntries[0] || loaded[1] != testEntries[1] {
		t.Errorf("Loaded content mismatch. Got: %+v", loaded)
	}
}

func TestJSONFileStorage_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ResultsFileName), []byte("{ not valid json }"), 0644); err != nil {
		t.Fatalf("Failed to write corrupt file: %v", err)
	}

	if _, err := NewJSONFileStorage(dir).LoadAll(); err == nil {
		t.Error("Expected error when loading corrupt file, got nil")
	}
}

func TestJSONFileStorage_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ResultsFileName), []byte(""), 0644); err != nil {
		t.Fatalf("Failed to write empty file: %v", err)
	}

	entries, err := NewJSONFileStorage(dir).LoadAll()
	if err != nil {
		t.Errorf("LoadAll on empty file returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected 0 entries from empty file, got %d", len(entries))
	}
}
