// Package sqlite provides a SQLite-backed implementation of the storage.Persister interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/mealtracker/internal/models"
	"github.com/mmynk/mealtracker/internal/storage"
)

// Ensure SQLiteStore implements storage.Persister
var (
	_ storage.Persister     = (*SQLiteStore)(nil)
	_ storage.SnapshotTimer = (*SQLiteStore)(nil)
)

// SQLiteStore implements storage.Persister using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save replaces the saved meal list in a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, meals []models.Meal) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM meals"); err != nil {
		return fmt.Errorf("failed to clear meals: %w", err)
	}

	for i, meal := range meals {
		// NULL marks a meal without a photo
		var photo any
		if meal.HasPhoto() {
			photo = []byte(meal.Photo())
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO meals (position, name, photo, rating) VALUES (?, ?, ?, ?)",
			i, meal.Name(), photo, meal.Rating(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert meal %d: %w", i, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO snapshots (id, meal_count, saved_at) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET meal_count = excluded.meal_count, saved_at = excluded.saved_at`,
		len(meals), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to record snapshot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Load retrieves the saved meal list ordered by position.
// Every row is re-validated through models.NewMeal.
func (s *SQLiteStore) Load(ctx context.Context) ([]models.Meal, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT meal_count FROM snapshots WHERE id = 1",
	).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT name, photo, rating FROM meals ORDER BY position",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get meals: %w", err)
	}
	defer rows.Close()

	meals := make([]models.Meal, 0, count)
	for rows.Next() {
		var (
			name   string
			photo  []byte
			rating int
		)
		if err := rows.Scan(&name, &photo, &rating); err != nil {
			return nil, fmt.Errorf("failed to scan meal: %w", err)
		}

		meal, err := models.NewMeal(name, photo, rating)
		if err != nil {
			return nil, fmt.Errorf("failed to decode meal at %d: %w", len(meals), err)
		}
		meals = append(meals, meal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate meals: %w", err)
	}

	if len(meals) != count {
		return nil, fmt.Errorf("snapshot lists %d meals, found %d", count, len(meals))
	}

	return meals, nil
}

// SavedAt returns when Save last succeeded.
// Returns storage.ErrNotFound if nothing has been saved.
func (s *SQLiteStore) SavedAt(ctx context.Context) (time.Time, error) {
	var unix int64
	err := s.db.QueryRowContext(ctx,
		"SELECT saved_at FROM snapshots WHERE id = 1",
	).Scan(&unix)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, storage.ErrNotFound
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get snapshot: %w", err)
	}
	return time.Unix(unix, 0), nil
}
