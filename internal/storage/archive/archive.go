// Package archive persists the meal list as a single versioned file.
package archive

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/mmynk/mealtracker/internal/models"
	"github.com/mmynk/mealtracker/internal/storage"
)

var (
	_ storage.Persister     = (*FileStore)(nil)
	_ storage.SnapshotTimer = (*FileStore)(nil)
)

// FileStore implements storage.Persister with one archive file.
// Writes go to a temp file in the same directory and are renamed into place.
type FileStore struct {
	path string
}

// New returns a FileStore for path, creating its parent directory.
func New(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Path returns the archive file location.
func (s *FileStore) Path() string { return s.path }

// Save writes meals to the archive atomically.
func (s *FileStore) Save(ctx context.Context, meals []models.Meal) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".meals-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp archive: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(Encode(meals)); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write archive: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync archive: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close archive: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace archive: %w", err)
	}
	return nil
}

// Load reads the archive. A missing file is storage.ErrNotFound.
func (s *FileStore) Load(ctx context.Context) ([]models.Meal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read archive: %w", err)
	}

	meals, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode archive %s: %w", s.path, err)
	}
	return meals, nil
}

// SavedAt returns the archive's modification time.
// A missing file is storage.ErrNotFound.
func (s *FileStore) SavedAt(ctx context.Context) (time.Time, error) {
	info, err := os.Stat(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return time.Time{}, storage.ErrNotFound
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to stat archive: %w", err)
	}
	return info.ModTime(), nil
}

// Close is a no-op; the file is only open during Save and Load.
func (s *FileStore) Close() error { return nil }
