package models

import (
	"errors"
	"testing"
)

func TestNewMealSucceeds(t *testing.T) {
	tests := []struct {
		name   string
		photo  Photo
		rating int
	}{
		{"Zero", nil, 0},
		{"Positive", nil, 5},
		{"Middle", Photo{0x89, 0x50, 0x4e, 0x47}, 3},
		{" ", nil, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meal, err := NewMeal(tt.name, tt.photo, tt.rating)
			if err != nil {
				t.Fatalf("NewMeal(%q, _, %d) failed: %v", tt.name, tt.rating, err)
			}
			if meal.Name() != tt.name {
				t.Errorf("Name() = %q, want %q", meal.Name(), tt.name)
			}
			if meal.Rating() != tt.rating {
				t.Errorf("Rating() = %d, want %d", meal.Rating(), tt.rating)
			}
			if meal.HasPhoto() != (tt.photo != nil) {
				t.Errorf("HasPhoto() = %v, want %v", meal.HasPhoto(), tt.photo != nil)
			}
		})
	}
}

func TestNewMealEveryValidRating(t *testing.T) {
	for rating := MinRating; rating <= MaxRating; rating++ {
		if _, err := NewMeal("Soup", nil, rating); err != nil {
			t.Errorf("rating %d rejected: %v", rating, err)
		}
	}
}

func TestNewMealFails(t *testing.T) {
	tests := []struct {
		desc      string
		name      string
		rating    int
		wantField string
	}{
		{"negative rating", "Negative", -1, "rating"},
		{"rating exceeds maximum", "Large", 6, "rating"},
		{"far out of range", "Huge", 1000, "rating"},
		{"empty name", "", 0, "name"},
		{"empty name with valid rating", "", 5, "name"},
		{"empty name with bad rating", "", 9, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			meal, err := NewMeal(tt.name, nil, tt.rating)
			if err == nil {
				t.Fatalf("expected error, got meal %v", meal)
			}
			if !errors.Is(err, ErrInvalidMeal) {
				t.Errorf("error %v does not match ErrInvalidMeal", err)
			}

			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if vErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", vErr.Field, tt.wantField)
			}
		})
	}
}

func TestEmptyPhotoIsNoPhoto(t *testing.T) {
	meal, err := NewMeal("Toast", Photo{}, 2)
	if err != nil {
		t.Fatalf("NewMeal failed: %v", err)
	}
	if meal.HasPhoto() {
		t.Error("empty photo should be treated as no photo")
	}
}

func TestWithRatingBuildsNewMeal(t *testing.T) {
	original, err := NewMeal("Ramen", nil, 2)
	if err != nil {
		t.Fatalf("NewMeal failed: %v", err)
	}

	updated, err := original.WithRating(4)
	if err != nil {
		t.Fatalf("WithRating failed: %v", err)
	}
	if original.Rating() != 2 {
		t.Errorf("original changed: rating = %d", original.Rating())
	}
	if updated.Rating() != 4 || updated.Name() != "Ramen" {
		t.Errorf("updated = %v, want Ramen (4/5)", updated)
	}

	if _, err := original.WithRating(6); !errors.Is(err, ErrInvalidMeal) {
		t.Errorf("WithRating(6) error = %v, want ErrInvalidMeal", err)
	}
}

func TestMealEqual(t *testing.T) {
	a, _ := NewMeal("Tacos", Photo("img"), 3)
	b, _ := NewMeal("Tacos", Photo("img"), 3)
	c, _ := NewMeal("Tacos", nil, 3)
	d, _ := NewMeal("Tacos", Photo("img"), 4)

	if !a.Equal(b) {
		t.Error("identical meals should be equal")
	}
	if a.Equal(c) {
		t.Error("meal with photo should differ from meal without")
	}
	if a.Equal(d) {
		t.Error("meals with different ratings should differ")
	}
}
