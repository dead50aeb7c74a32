package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmynk/mealtracker/internal/config"
	"github.com/mmynk/mealtracker/internal/mealstore"
	"github.com/mmynk/mealtracker/internal/models"
	"github.com/mmynk/mealtracker/internal/storage"
	"github.com/mmynk/mealtracker/internal/storage/memory"
	"github.com/mmynk/mealtracker/pkg/logging"
)

// readOnlyPersister has nothing saved and refuses every save.
type readOnlyPersister struct{}

func (readOnlyPersister) Save(ctx context.Context, meals []models.Meal) error {
	return errors.New("read-only filesystem")
}

func (readOnlyPersister) Load(ctx context.Context) ([]models.Meal, error) {
	return nil, storage.ErrNotFound
}

func (readOnlyPersister) Close() error { return nil }

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(logging.New(&buf, slog.LevelDebug))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLoadMeals(t *testing.T) {
	ctx := context.Background()

	t.Run("seed save failure is reported as a save failure", func(t *testing.T) {
		logs := captureLogs(t)
		store := mealstore.New(readOnlyPersister{})

		loadMeals(ctx, store, true)

		if store.Count() != 3 {
			t.Errorf("expected 3 sample meals in memory, got %d", store.Count())
		}
		out := logs.String()
		if !strings.Contains(out, "Failed to save sample meals") {
			t.Errorf("expected save failure log, got:\n%s", out)
		}
		if strings.Contains(out, "Failed to load meals") {
			t.Errorf("save failure logged as load failure:\n%s", out)
		}
	})

	t.Run("load failure does not seed", func(t *testing.T) {
		logs := captureLogs(t)
		persister := memory.New()
		persister.FailWith(errors.New("permission denied"))
		store := mealstore.New(persister)

		loadMeals(ctx, store, true)

		if store.Count() != 0 {
			t.Errorf("expected empty store, got %d meals", store.Count())
		}
		if !strings.Contains(logs.String(), "Failed to load meals") {
			t.Errorf("expected load failure log, got:\n%s", logs.String())
		}
	})

	t.Run("seeding disabled leaves store empty", func(t *testing.T) {
		captureLogs(t)
		store := mealstore.New(memory.New())

		loadMeals(ctx, store, false)

		if store.Count() != 0 {
			t.Errorf("expected empty store, got %d meals", store.Count())
		}
	})
}

func TestOpenPersister(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		backend string
		wantErr bool
	}{
		{config.BackendSQLite, false},
		{config.BackendArchive, false},
		{config.BackendMemory, false},
		{"postgres", true},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			p, err := openPersister(config.Config{
				Backend:     tt.backend,
				DBPath:      filepath.Join(dir, "meals.db"),
				ArchivePath: filepath.Join(dir, "meals.archive"),
			})
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("openPersister failed: %v", err)
			}
			p.Close()
		})
	}
}

func TestCorsPreflight(t *testing.T) {
	called := false
	handler := corsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if called {
		t.Error("preflight should not reach the wrapped handler")
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing CORS origin header")
	}
}
