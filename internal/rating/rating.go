// Package rating holds the selection state of a row of rating stars,
// independent of how the stars are drawn.
package rating

import (
	"errors"
	"fmt"
)

// DefaultStarCount is the number of stars a new control shows.
const DefaultStarCount = 5

var (
	ErrStarOutOfRange   = errors.New("star index out of range")
	ErrRatingOutOfRange = errors.New("rating out of range")
	ErrInvalidStarCount = errors.New("star count must be at least 1")
)

// Control tracks which stars are selected.
// Stars are indexed from 0; a rating of n selects stars 0..n-1.
type Control struct {
	starCount int
	rating    int
}

// New creates a control with the given number of stars and no rating.
func New(starCount int) (*Control, error) {
	if starCount < 1 {
		return nil, ErrInvalidStarCount
	}
	return &Control{starCount: starCount}, nil
}

// NewWithRating creates a control with DefaultStarCount stars preset to rating.
func NewWithRating(rating int) (*Control, error) {
	c := &Control{starCount: DefaultStarCount}
	if err := c.SetRating(rating); err != nil {
		return nil, err
	}
	return c, nil
}

// Rating returns the current rating.
func (c *Control) Rating() int { return c.rating }

// StarCount returns the number of stars.
func (c *Control) StarCount() int { return c.starCount }

// Tap handles a tap on the star at index.
// Tapping the star that represents the current rating resets it to 0.
func (c *Control) Tap(index int) (int, error) {
	if index < 0 || index >= c.starCount {
		return c.rating, fmt.Errorf("%w: %d not in 0..%d", ErrStarOutOfRange, index, c.starCount-1)
	}

	selected := index + 1
	if selected == c.rating {
		c.rating = 0
	} else {
		c.rating = selected
	}
	return c.rating, nil
}

// SetRating sets the rating directly.
func (c *Control) SetRating(rating int) error {
	if rating < 0 || rating > c.starCount {
		return fmt.Errorf("%w: %d not in 0..%d", ErrRatingOutOfRange, rating, c.starCount)
	}
	c.rating = rating
	return nil
}

// Selected returns the selection state of every star.
func (c *Control) Selected() []bool {
	states := make([]bool, c.starCount)
	for i := range states {
		states[i] = i < c.rating
	}
	return states
}
