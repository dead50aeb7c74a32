// Package models defines the core domain models for the meal tracker.
//
// # Meals
//
// A Meal is one logged meal: a name, an optional photo and a 0-5 star
// rating. Meals are only created through NewMeal, which rejects empty names
// and out-of-range ratings, so every Meal held by the rest of the program is
// valid.
//
// Meals have no mutation API. Editing a meal means building a new one
// (NewMeal, or WithRating for a rating change) and replacing the old one in
// the store.
//
// # Identity
//
// Meals carry no ID. A meal is identified by its position in the list it
// belongs to; adding a persistent identifier would be needed before
// concurrent editors or cross-reload references are supported.
package models
