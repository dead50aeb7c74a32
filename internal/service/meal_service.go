// Package service implements the meal RPC service on top of mealstore.
package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"connectrpc.com/connect"

	"github.com/mmynk/mealtracker/internal/mealstore"
	"github.com/mmynk/mealtracker/internal/metrics"
	"github.com/mmynk/mealtracker/internal/middleware"
	"github.com/mmynk/mealtracker/internal/models"
	"github.com/mmynk/mealtracker/internal/rating"
	"github.com/mmynk/mealtracker/internal/storage"
	"github.com/mmynk/mealtracker/pkg/mealrpc"
)

var _ mealrpc.MealServiceHandler = (*MealService)(nil)

// MealService implements the Connect MealService.
// Every call holds mu for its whole store operation and save.
type MealService struct {
	mealrpc.UnimplementedMealServiceHandler

	mu      sync.Mutex
	store   *mealstore.Store
	metrics *metrics.Metrics
}

// NewMealService creates a MealService around store.
// The store should already be loaded or seeded.
func NewMealService(store *mealstore.Store, m *metrics.Metrics) *MealService {
	m.Meals.Set(float64(store.Count()))
	return &MealService{store: store, metrics: m}
}

// ListMeals returns every meal in display order.
func (s *MealService) ListMeals(ctx context.Context, req *connect.Request[mealrpc.ListMealsRequest]) (*connect.Response[mealrpc.ListMealsResponse], error) {
	s.mu.Lock()
	meals := s.store.List()
	s.mu.Unlock()

	protoMeals := make([]*mealrpc.Meal, len(meals))
	for i, meal := range meals {
		protoMeals[i] = toProto(meal)
	}

	s.metrics.Observe("list", metrics.ResultOK)
	slog.Debug("ListMeals successful",
		"request_id", middleware.GetRequestID(ctx),
		"subject", middleware.GetSubject(ctx),
		"count", len(meals),
	)

	return connect.NewResponse(&mealrpc.ListMealsResponse{Meals: protoMeals}), nil
}

// GetMeal returns the meal at an index.
func (s *MealService) GetMeal(ctx context.Context, req *connect.Request[mealrpc.GetMealRequest]) (*connect.Response[mealrpc.GetMealResponse], error) {
	s.mu.Lock()
	meal, err := s.store.Get(int(req.Msg.Index))
	s.mu.Unlock()
	if err != nil {
		return nil, s.fail(ctx, "get", err)
	}

	s.metrics.Observe("get", metrics.ResultOK)
	return connect.NewResponse(&mealrpc.GetMealResponse{Meal: toProto(meal)}), nil
}

// AddMeal validates a new meal, appends it and saves the list.
func (s *MealService) AddMeal(ctx context.Context, req *connect.Request[mealrpc.AddMealRequest]) (*connect.Response[mealrpc.AddMealResponse], error) {
	slog.Info("AddMeal request received",
		"request_id", middleware.GetRequestID(ctx),
		"subject", middleware.GetSubject(ctx),
		"name", req.Msg.Name,
		"rating", req.Msg.Rating,
		"has_photo", len(req.Msg.Photo) > 0,
	)

	meal, err := models.NewMeal(req.Msg.Name, req.Msg.Photo, int(req.Msg.Rating))
	if err != nil {
		return nil, s.fail(ctx, "add", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.store.Append(meal)
	persisted := s.persist(ctx)
	s.metrics.Observe("add", metrics.ResultOK)

	slog.Info("Meal added", "index", index, "persisted", persisted)

	return connect.NewResponse(&mealrpc.AddMealResponse{
		Index:     int32(index),
		Meal:      toProto(meal),
		Persisted: persisted,
	}), nil
}

// UpdateMeal replaces the meal at an index with a newly validated one.
func (s *MealService) UpdateMeal(ctx context.Context, req *connect.Request[mealrpc.UpdateMealRequest]) (*connect.Response[mealrpc.UpdateMealResponse], error) {
	slog.Info("UpdateMeal request received",
		"request_id", middleware.GetRequestID(ctx),
		"subject", middleware.GetSubject(ctx),
		"index", req.Msg.Index,
		"name", req.Msg.Name,
		"rating", req.Msg.Rating,
	)

	meal, err := models.NewMeal(req.Msg.Name, req.Msg.Photo, int(req.Msg.Rating))
	if err != nil {
		return nil, s.fail(ctx, "update", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Replace(int(req.Msg.Index), meal); err != nil {
		return nil, s.fail(ctx, "update", err)
	}
	persisted := s.persist(ctx)
	s.metrics.Observe("update", metrics.ResultOK)

	slog.Info("Meal updated", "index", req.Msg.Index, "persisted", persisted)

	return connect.NewResponse(&mealrpc.UpdateMealResponse{
		Meal:      toProto(meal),
		Persisted: persisted,
	}), nil
}

// DeleteMeal removes the meal at an index.
func (s *MealService) DeleteMeal(ctx context.Context, req *connect.Request[mealrpc.DeleteMealRequest]) (*connect.Response[mealrpc.DeleteMealResponse], error) {
	slog.Info("DeleteMeal request received",
		"request_id", middleware.GetRequestID(ctx),
		"subject", middleware.GetSubject(ctx),
		"index", req.Msg.Index,
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.RemoveAt(int(req.Msg.Index)); err != nil {
		return nil, s.fail(ctx, "delete", err)
	}
	persisted := s.persist(ctx)
	s.metrics.Observe("delete", metrics.ResultOK)

	slog.Info("Meal deleted", "index", req.Msg.Index, "persisted", persisted)

	return connect.NewResponse(&mealrpc.DeleteMealResponse{
		Count:     int32(s.store.Count()),
		Persisted: persisted,
	}), nil
}

// RateMeal taps a star on the meal at an index.
func (s *MealService) RateMeal(ctx context.Context, req *connect.Request[mealrpc.RateMealRequest]) (*connect.Response[mealrpc.RateMealResponse], error) {
	slog.Info("RateMeal request received",
		"request_id", middleware.GetRequestID(ctx),
		"subject", middleware.GetSubject(ctx),
		"index", req.Msg.Index,
		"star", req.Msg.Star,
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.store.Get(int(req.Msg.Index))
	if err != nil {
		return nil, s.fail(ctx, "rate", err)
	}

	control, err := rating.NewWithRating(current.Rating())
	if err != nil {
		return nil, s.fail(ctx, "rate", err)
	}
	newRating, err := control.Tap(int(req.Msg.Star))
	if err != nil {
		return nil, s.fail(ctx, "rate", err)
	}

	meal, err := current.WithRating(newRating)
	if err != nil {
		return nil, s.fail(ctx, "rate", err)
	}
	if err := s.store.Replace(int(req.Msg.Index), meal); err != nil {
		return nil, s.fail(ctx, "rate", err)
	}
	persisted := s.persist(ctx)
	s.metrics.Observe("rate", metrics.ResultOK)

	slog.Info("Meal rated", "index", req.Msg.Index, "rating", newRating, "persisted", persisted)

	return connect.NewResponse(&mealrpc.RateMealResponse{
		Meal:      toProto(meal),
		Selected:  control.Selected(),
		Persisted: persisted,
	}), nil
}

// ReloadMeals replaces the in-memory list with the saved one.
func (s *MealService) ReloadMeals(ctx context.Context, req *connect.Request[mealrpc.ReloadMealsRequest]) (*connect.Response[mealrpc.ReloadMealsResponse], error) {
	slog.Info("ReloadMeals request received",
		"request_id", middleware.GetRequestID(ctx),
		"subject", middleware.GetSubject(ctx),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	found, err := s.store.Reload(ctx)
	if err != nil {
		s.metrics.PersistFailures.Inc()
		return nil, s.fail(ctx, "reload", err)
	}
	s.metrics.Meals.Set(float64(s.store.Count()))
	s.metrics.Observe("reload", metrics.ResultOK)

	resp := &mealrpc.ReloadMealsResponse{
		Found: found,
		Count: int32(s.store.Count()),
	}
	if savedAt, err := s.store.SavedAt(ctx); err == nil {
		resp.SavedAt = savedAt.Unix()
	} else if !errors.Is(err, storage.ErrNotFound) {
		slog.Warn("Failed to read save time", "error", err)
	}

	return connect.NewResponse(resp), nil
}

// persist saves the list after a mutation. A failed save is logged and
// counted but does not fail the call; the change stays in memory.
// Callers must hold mu.
func (s *MealService) persist(ctx context.Context) bool {
	s.metrics.Meals.Set(float64(s.store.Count()))
	if err := s.store.Persist(ctx); err != nil {
		s.metrics.PersistFailures.Inc()
		slog.Error("Meal list not saved",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		return false
	}
	return true
}

// fail maps a domain error to a Connect error and records it.
func (s *MealService) fail(ctx context.Context, op string, err error) error {
	code, result := classify(err)
	s.metrics.Observe(op, result)
	slog.Warn("Meal operation failed",
		"request_id", middleware.GetRequestID(ctx),
		"subject", middleware.GetSubject(ctx),
		"op", op,
		"error", err,
	)
	return connect.NewError(code, err)
}

func classify(err error) (connect.Code, string) {
	switch {
	case errors.Is(err, models.ErrInvalidMeal),
		errors.Is(err, rating.ErrStarOutOfRange),
		errors.Is(err, rating.ErrRatingOutOfRange):
		return connect.CodeInvalidArgument, metrics.ResultInvalid
	case errors.Is(err, mealstore.ErrIndexOutOfRange):
		return connect.CodeOutOfRange, metrics.ResultNotFound
	case errors.Is(err, mealstore.ErrPersistence):
		return connect.CodeUnavailable, metrics.ResultError
	default:
		return connect.CodeInternal, metrics.ResultError
	}
}

func toProto(meal models.Meal) *mealrpc.Meal {
	return &mealrpc.Meal{
		Name:   meal.Name(),
		Photo:  meal.Photo(),
		Rating: int32(meal.Rating()),
	}
}
