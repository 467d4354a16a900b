// Package score persists the best score as a single decimal integer.
package score

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const fileName = "high_score.txt"

// File stores the high score at a fixed path.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

// DefaultPath returns the high score location inside the user config directory.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "gridsnake", fileName), nil
}

func (f *File) Path() string {
	return f.path
}

// Load returns the saved high score or 0 if there is none or it cannot be read.
func (f *File) Load() int {
	n, err := f.read()
	if err != nil {
		return 0
	}
	return n
}

func (f *File) read() (int, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("score: malformed high score file %s: %w", f.path, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("score: negative high score %d in %s", n, f.path)
	}
	return n, nil
}

// Save overwrites the high score.
func (f *File) Save(n int) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("score: %w", err)
	}
	if err := os.WriteFile(f.path, []byte(strconv.Itoa(n)), 0644); err != nil {
		return fmt.Errorf("score: %w", err)
	}
	return nil
}

// Reset removes the saved high score.
func (f *File) Reset() error {
	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("score: %w", err)
	}
	return nil
}
