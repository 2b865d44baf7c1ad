package game

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go-pairs/internal/state"
)

// LoadFaces loads card faces from a list of paths (files or directories).
// Each non-empty line is one face; lines starting with # are comments.
// Duplicate faces are kept once, in first-seen order. A face wider than
// state.MaxFaceWidth columns fails the whole load.
func LoadFaces(paths []string) ([]string, error) {
	var faces []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to access path %s: %w", path, err)
		}

		if info.IsDir() {
			files, err := os.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read dir %s: %w", path, err)
			}
			for _, entry := range files {
				if entry.IsDir() {
					continue
				}
				f, err := loadFile(filepath.Join(path, entry.Name()))
				if err != nil {
					return nil, err
				}
				faces = appendUnique(faces, f...)
			}
		} else {
			f, err := loadFile(path)
			if err != nil {
				return nil, err
			}
			faces = appendUnique(faces, f...)
		}
	}

	if err := state.ValidateFaces(faces); err != nil {
		return nil, err
	}
	return faces, nil
}

func appendUnique(faces []string, more ...string) []string {
	for _, f := range more {
		if !slices.Contains(faces, f) {
			faces = append(faces, f)
		}
	}
	return faces
}

func loadFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	var faces []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		faces = append(faces, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan file %s: %w", path, err)
	}

	return faces, nil
}
