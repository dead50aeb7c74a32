package mealstore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/mealtracker/internal/models"
)

// samples are the meals shown on first launch.
var samples = []struct {
	name   string
	rating int
}{
	{"Caprese Salad", 4},
	{"Chicken and Potatoes", 5},
	{"Pasta with Meatballs", 3},
}

// SampleMeals returns the default meal list, in display order.
func SampleMeals() []models.Meal {
	meals := make([]models.Meal, 0, len(samples))
	for _, sample := range samples {
		meal, err := models.NewMeal(sample.name, nil, sample.rating)
		if err != nil {
			// samples are literals; a failure here is a programming error
			panic(fmt.Sprintf("invalid sample meal %q: %v", sample.name, err))
		}
		meals = append(meals, meal)
	}
	return meals
}

// LoadOrSeed reloads s and, when nothing has been saved, fills it with
// SampleMeals and saves them. It reports whether samples were used.
// A failed reload is returned without seeding so saved data is never overwritten.
func LoadOrSeed(ctx context.Context, s *Store) (bool, error) {
	found, err := s.Reload(ctx)
	if err != nil {
		return false, err
	}
	if found {
		return false, nil
	}

	for _, meal := range SampleMeals() {
		s.Append(meal)
	}
	slog.Info("Seeded sample meals", "count", s.Count())

	if err := s.Persist(ctx); err != nil {
		return true, err
	}
	return true, nil
}
