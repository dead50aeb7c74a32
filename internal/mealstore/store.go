// Package mealstore keeps the ordered list of meals and saves it through a
// storage.Persister.
//
// A Store is not safe for concurrent use; callers sharing one across
// goroutines must serialize access.
package mealstore

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/mmynk/mealtracker/internal/models"
	"github.com/mmynk/mealtracker/internal/storage"
)

// Store is an ordered collection of meals. Position is identity.
type Store struct {
	meals     []models.Meal
	persister storage.Persister
}

// New creates an empty store backed by persister.
func New(persister storage.Persister) *Store {
	return &Store{persister: persister}
}

// Append adds meal at the end and returns its index.
func (s *Store) Append(meal models.Meal) int {
	s.meals = append(s.meals, meal)
	return len(s.meals) - 1
}

// Get returns the meal at index.
func (s *Store) Get(index int) (models.Meal, error) {
	if err := s.checkIndex("get", index); err != nil {
		return models.Meal{}, err
	}
	return s.meals[index], nil
}

// Replace overwrites the meal at index.
func (s *Store) Replace(index int, meal models.Meal) error {
	if err := s.checkIndex("replace", index); err != nil {
		return err
	}
	s.meals[index] = meal
	return nil
}

// RemoveAt deletes the meal at index; later meals move down by one.
func (s *Store) RemoveAt(index int) error {
	if err := s.checkIndex("remove", index); err != nil {
		return err
	}
	s.meals = slices.Delete(s.meals, index, index+1)
	return nil
}

// List returns the meals in order. The returned slice is a copy.
func (s *Store) List() []models.Meal {
	return slices.Clone(s.meals)
}

// Count returns the number of meals.
func (s *Store) Count() int {
	return len(s.meals)
}

// Persist saves the full list. A failure is returned as *PersistenceError and
// leaves the in-memory list as it was.
func (s *Store) Persist(ctx context.Context) error {
	if err := s.persister.Save(ctx, s.meals); err != nil {
		slog.Warn("Failed to save meals", "count", len(s.meals), "error", err)
		return &PersistenceError{Op: "save", Err: err}
	}
	slog.Debug("Meals saved", "count", len(s.meals))
	return nil
}

// Reload replaces the list with the saved one.
// It reports false with a nil error when nothing was saved; the list is
// then left unchanged and seeding is up to the caller.
func (s *Store) Reload(ctx context.Context) (bool, error) {
	meals, err := s.persister.Load(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		slog.Info("No saved meals found")
		return false, nil
	}
	if err != nil {
		slog.Warn("Failed to load meals", "error", err)
		return false, &PersistenceError{Op: "load", Err: err}
	}

	s.meals = meals
	slog.Info("Meals loaded", "count", len(meals))
	return true, nil
}

// SavedAt reports when the list was last saved. It returns
// storage.ErrNotFound when nothing was saved or the persister cannot tell.
func (s *Store) SavedAt(ctx context.Context) (time.Time, error) {
	timer, ok := s.persister.(storage.SnapshotTimer)
	if !ok {
		return time.Time{}, storage.ErrNotFound
	}
	return timer.SavedAt(ctx)
}

func (s *Store) checkIndex(op string, index int) error {
	if index < 0 || index >= len(s.meals) {
		return &IndexError{Op: op, Index: index, Len: len(s.meals)}
	}
	return nil
}
