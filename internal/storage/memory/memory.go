// Package memory provides an in-process storage.Persister.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/mmynk/mealtracker/internal/models"
	"github.com/mmynk/mealtracker/internal/storage"
)

var (
	_ storage.Persister     = (*Persister)(nil)
	_ storage.SnapshotTimer = (*Persister)(nil)
)

// Persister keeps the last saved list in memory.
type Persister struct {
	mu    sync.Mutex
	meals []models.Meal
	saved   bool
	savedAt time.Time
	fail  error
	saves int
}

// New returns an empty persister. Load reports storage.ErrNotFound until Save is called.
func New() *Persister {
	return &Persister{}
}

// FailWith makes every following Save and Load return err. Pass nil to recover.
func (p *Persister) FailWith(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fail = err
}

// Saves returns the number of successful saves.
func (p *Persister) Saves() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.saves
}

// Save stores a copy of meals.
func (p *Persister) Save(ctx context.Context, meals []models.Meal) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail != nil {
		return p.fail
	}
	p.meals = slices.Clone(meals)
	p.saved = true
	p.savedAt = time.Now()
	p.saves++
	return nil
}

// Load returns a copy of the last saved list.
func (p *Persister) Load(ctx context.Context) ([]models.Meal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail != nil {
		return nil, p.fail
	}
	if !p.saved {
		return nil, storage.ErrNotFound
	}
	return slices.Clone(p.meals), nil
}

// SavedAt returns the time of the last successful Save.
func (p *Persister) SavedAt(ctx context.Context) (time.Time, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.saved {
		return time.Time{}, storage.ErrNotFound
	}
	return p.savedAt, nil
}

// Close is a no-op.
func (p *Persister) Close() error { return nil }
