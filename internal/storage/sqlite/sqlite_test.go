package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mmynk/mealtracker/internal/models"
	"github.com/mmynk/mealtracker/internal/storage"
)

func mustMeal(t *testing.T, name string, photo models.Photo, rating int) models.Meal {
	t.Helper()
	meal, err := models.NewMeal(name, photo, rating)
	if err != nil {
		t.Fatalf("NewMeal(%q) failed: %v", name, err)
	}
	return meal
}

func TestSQLiteStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	t.Run("Load before any save returns ErrNotFound", func(t *testing.T) {
		_, err := store.Load(ctx)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
		if _, err := store.SavedAt(ctx); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound from SavedAt, got %v", err)
		}
	})

	t.Run("Save then Load round-trips in order", func(t *testing.T) {
		original := []models.Meal{
			mustMeal(t, "Caprese Salad", nil, 4),
			mustMeal(t, "Chicken and Potatoes", models.Photo{0xff, 0xd8, 0xff}, 5),
			mustMeal(t, "Pasta with Meatballs", nil, 3),
		}

		if err := store.Save(ctx, original); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		loaded, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(loaded) != len(original) {
			t.Fatalf("Meal count mismatch: got %d, want %d", len(loaded), len(original))
		}
		for i := range original {
			if !loaded[i].Equal(original[i]) {
				t.Errorf("Meal %d mismatch: got %v, want %v", i, loaded[i], original[i])
			}
		}
		if loaded[0].HasPhoto() {
			t.Error("Expected meal 0 to have no photo")
		}
	})

	t.Run("Save replaces previous list", func(t *testing.T) {
		if err := store.Save(ctx, []models.Meal{mustMeal(t, "Omelette", nil, 2)}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		loaded, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(loaded) != 1 || loaded[0].Name() != "Omelette" {
			t.Errorf("Expected only Omelette, got %v", loaded)
		}
	})

	t.Run("Saved empty list is found", func(t *testing.T) {
		if err := store.Save(ctx, nil); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		loaded, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Expected empty list, got error %v", err)
		}
		if len(loaded) != 0 {
			t.Errorf("Expected 0 meals, got %d", len(loaded))
		}
		if _, err := store.SavedAt(ctx); err != nil {
			t.Errorf("SavedAt failed: %v", err)
		}
	})
}

func TestReopenKeepsMeals(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "meals.db")
	ctx := context.Background()

	first, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	if err := first.Save(ctx, []models.Meal{mustMeal(t, "Pho", nil, 5)}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	first.Close()

	second, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer second.Close()

	loaded, err := second.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Name() != "Pho" || loaded[0].Rating() != 5 {
		t.Errorf("Unexpected meals after reopen: %v", loaded)
	}
}
