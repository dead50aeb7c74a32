package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Rating bounds, inclusive.
const (
	MinRating = 0
	MaxRating = 5
)

// ErrInvalidMeal is matched by every error NewMeal returns.
var ErrInvalidMeal = errors.New("invalid meal")

var validate = validator.New()

// Photo is an opaque image payload owned by the caller.
// Nil means the meal has no photo. The bytes are never decoded.
type Photo []byte

// Meal represents a single logged meal.
// The zero value is not a valid meal; use NewMeal.
type Meal struct {
	name   string
	photo  Photo
	rating int
}

// mealFields carries the constructor input through the struct validator.
type mealFields struct {
	Name   string `validate:"required"`
	Rating int    `validate:"min=0,max=5"`
}

// ValidationError describes why a meal could not be constructed.
type ValidationError struct {
	// Field is the rejected input, "name" or "rating".
	Field string

	// Reason is a short human readable explanation.
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid meal %s: %s", e.Field, e.Reason)
}

// Is reports whether target is ErrInvalidMeal.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidMeal
}

// NewMeal validates its input and returns a Meal.
// It fails when name is empty or rating is outside [MinRating, MaxRating].
// photo may be nil; an empty photo is stored as nil.
func NewMeal(name string, photo Photo, rating int) (Meal, error) {
	if len(photo) == 0 {
		photo = nil
	}
	if err := validate.Struct(mealFields{Name: name, Rating: rating}); err != nil {
		return Meal{}, toValidationError(err, rating)
	}
	return Meal{name: name, photo: photo, rating: rating}, nil
}

// toValidationError converts the first validator failure into a ValidationError.
func toValidationError(err error, rating int) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidMeal, err)
	}

	switch fieldErrs[0].Field() {
	case "Name":
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	default:
		return &ValidationError{
			Field:  "rating",
			Reason: fmt.Sprintf("%d is outside %d..%d", rating, MinRating, MaxRating),
		}
	}
}

// Name returns the meal's display name.
func (m Meal) Name() string { return m.name }

// Photo returns the meal's photo, or nil.
func (m Meal) Photo() Photo { return m.photo }

// HasPhoto reports whether a photo is attached.
func (m Meal) HasPhoto() bool { return m.photo != nil }

// Rating returns the star rating.
func (m Meal) Rating() int { return m.rating }

// WithRating returns a copy of m with a new rating.
func (m Meal) WithRating(rating int) (Meal, error) {
	return NewMeal(m.name, m.photo, rating)
}

// Equal reports whether two meals have the same name, rating and photo bytes.
func (m Meal) Equal(other Meal) bool {
	if m.name != other.name || m.rating != other.rating {
		return false
	}
	if m.HasPhoto() != other.HasPhoto() {
		return false
	}
	return string(m.photo) == string(other.photo)
}

func (m Meal) String() string {
	return fmt.Sprintf("%s (%d/%d)", m.name, m.rating, MaxRating)
}
