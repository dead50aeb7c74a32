// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/mmynk/mealtracker/internal/models"
)

// ErrNotFound is returned by Load when nothing has been saved yet.
// A saved empty list is not ErrNotFound.
var ErrNotFound = errors.New("no saved meals")

// Persister defines durable save and load of the ordered meal list.
// This abstraction allows swapping storage backends (SQLite, archive file, memory)
// without changing the store or service layer.
type Persister interface {
	// Save replaces whatever was saved before with meals, in order.
	Save(ctx context.Context, meals []models.Meal) error

	// Load returns the last saved list in the order it was saved.
	// Returns ErrNotFound if Save has never succeeded.
	Load(ctx context.Context) ([]models.Meal, error)

	// Close releases any resources held by the persister.
	Close() error
}

// SnapshotTimer is implemented by persisters that can tell when Save last
// succeeded. SavedAt returns ErrNotFound if nothing has been saved.
type SnapshotTimer interface {
	SavedAt(ctx context.Context) (time.Time, error)
}
