// Package mealrpc defines the wire messages and Connect handler/client
// constructors of the meal service.
//
// Messages are plain structs encoded as JSON; photos travel as base64.
package mealrpc

// Meal is the wire form of models.Meal.
type Meal struct {
	Name   string `json:"name"`
	Photo  []byte `json:"photo,omitempty"`
	Rating int32  `json:"rating"`
}

type ListMealsRequest struct{}

type ListMealsResponse struct {
	Meals []*Meal `json:"meals"`
}

type GetMealRequest struct {
	Index int32 `json:"index"`
}

type GetMealResponse struct {
	Meal *Meal `json:"meal"`
}

type AddMealRequest struct {
	Name   string `json:"name"`
	Photo  []byte `json:"photo,omitempty"`
	Rating int32  `json:"rating"`
}

type AddMealResponse struct {
	Index int32 `json:"index"`
	Meal  *Meal `json:"meal"`

	// Persisted is false when the meal was added in memory but could not be saved.
	Persisted bool `json:"persisted"`
}

type UpdateMealRequest struct {
	Index  int32  `json:"index"`
	Name   string `json:"name"`
	Photo  []byte `json:"photo,omitempty"`
	Rating int32  `json:"rating"`
}

type UpdateMealResponse struct {
	Meal      *Meal `json:"meal"`
	Persisted bool  `json:"persisted"`
}

type DeleteMealRequest struct {
	Index int32 `json:"index"`
}

type DeleteMealResponse struct {
	Count     int32 `json:"count"`
	Persisted bool  `json:"persisted"`
}

// RateMealRequest taps star Star (0-based) on the meal at Index.
// Tapping the star matching the current rating clears it.
type RateMealRequest struct {
	Index int32 `json:"index"`
	Star  int32 `json:"star"`
}

type RateMealResponse struct {
	Meal      *Meal  `json:"meal"`
	Selected  []bool `json:"selected"`
	Persisted bool   `json:"persisted"`
}

type ReloadMealsRequest struct{}

type ReloadMealsResponse struct {
	// Found is false when nothing has been saved; the list is then unchanged.
	Found bool  `json:"found"`
	Count int32 `json:"count"`

	// SavedAt is the Unix time of the last successful save, or 0 if unknown.
	SavedAt int64 `json:"saved_at,omitempty"`
}
