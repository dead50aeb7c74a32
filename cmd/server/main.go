package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/mealtracker/internal/auth"
	"github.com/mmynk/mealtracker/internal/config"
	"github.com/mmynk/mealtracker/internal/mealstore"
	"github.com/mmynk/mealtracker/internal/metrics"
	"github.com/mmynk/mealtracker/internal/middleware"
	"github.com/mmynk/mealtracker/internal/service"
	"github.com/mmynk/mealtracker/internal/storage"
	"github.com/mmynk/mealtracker/internal/storage/archive"
	"github.com/mmynk/mealtracker/internal/storage/memory"
	"github.com/mmynk/mealtracker/internal/storage/sqlite"
	"github.com/mmynk/mealtracker/pkg/logging"
	"github.com/mmynk/mealtracker/pkg/mealrpc"
)

const tokenDuration = 30 * 24 * time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("info")
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	persister, err := openPersister(cfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "backend", cfg.Backend, "error", err)
		os.Exit(1)
	}
	defer persister.Close()
	slog.Info("Storage initialized", "backend", cfg.Backend)

	store := mealstore.New(persister)
	loadMeals(context.Background(), store, cfg.SeedSamples)

	m := metrics.New()

	interceptors := []connect.Interceptor{middleware.LoggingInterceptor()}
	if cfg.AuthEnabled() {
		interceptors = append(interceptors, middleware.RequireAuth(auth.NewJWTManager(cfg.JWTSecret, tokenDuration)))
		slog.Info("Bearer token auth enabled")
	} else {
		slog.Warn("JWT_SECRET not set, meal service is unauthenticated")
	}

	mux := http.NewServeMux()
	mealPath, mealHandler := mealrpc.NewMealServiceHandler(
		service.NewMealService(store, m),
		connect.WithInterceptors(interceptors...),
	)
	mux.Handle(mealPath, mealHandler)
	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Wrap with h2c for HTTP/2 without TLS
	h2cHandler := h2c.NewHandler(corsMiddleware(mux), &http2.Server{})

	addr := fmt.Sprintf(":%d", cfg.Port)
	slog.Info("Connect server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

// loadMeals fills store from the persister, seeding samples when seed is
// set and nothing was saved. Failures are logged and the server keeps
// serving from memory.
func loadMeals(ctx context.Context, store *mealstore.Store, seed bool) {
	if !seed {
		if _, err := store.Reload(ctx); err != nil {
			slog.Error("Failed to load meals", "error", err)
		}
		slog.Info("Meals ready", "count", store.Count())
		return
	}

	seeded, err := mealstore.LoadOrSeed(ctx, store)
	switch {
	case err != nil && seeded:
		// samples stay in memory until the next successful save
		slog.Error("Failed to save sample meals", "error", err)
	case err != nil:
		// saved data is left untouched
		slog.Error("Failed to load meals", "error", err)
	}
	slog.Info("Meals ready", "count", store.Count(), "seeded", seeded)
}

// openPersister builds the storage backend named in cfg.
func openPersister(cfg config.Config) (storage.Persister, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		return sqlite.New(cfg.DBPath)
	case config.BackendArchive:
		return archive.New(cfg.ArchivePath)
	case config.BackendMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms, "+middleware.RequestIDHeader)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
