// Package recipe contains the recipe domain model. Recipes are produced by
// the external generator and become immutable once stamped at ingestion;
// membership in the history/saved/excluded collections is the only thing
// that changes afterwards.
package recipe

import (
	"time"

	"github.com/google/uuid"
)

// Ingredient is one line of a recipe's ingredient list as returned by the
// generator (free-text quantity and unit, not normalized).
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
}

// Recipe is a generated recipe. ID, Timestamp and Cuisine are stamped locally
// when the generator's draft is ingested; everything else comes from the
// generator verbatim.
type Recipe struct {
	ID              string       `json:"id"`
	Timestamp       int64        `json:"timestamp"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	PrepTime        string       `json:"prepTime"`
	CookTime        string       `json:"cookTime"`
	Servings        string       `json:"servings"`
	IngredientsUsed []Ingredient `json:"ingredientsUsed"`
	Instructions    []string     `json:"instructions"`
	Notes           string       `json:"notes,omitempty"`
	Cuisine         CuisineType  `json:"cuisine,omitempty"`
}

// Draft is the generator's response body before local stamping.
type Draft struct {
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	PrepTime        string       `json:"prepTime"`
	CookTime        string       `json:"cookTime"`
	Servings        string       `json:"servings"`
	IngredientsUsed []Ingredient `json:"ingredientsUsed"`
	Instructions    []string     `json:"instructions"`
	Notes           string       `json:"notes,omitempty"`
}

// FromDraft stamps a generator draft into a full Recipe.
func FromDraft(d Draft, cuisine CuisineType, now time.Time) Recipe {
	return Recipe{
		ID:              uuid.NewString(),
		Timestamp:       now.UnixMilli(),
		Title:           d.Title,
		Description:     d.Description,
		PrepTime:        d.PrepTime,
		CookTime:        d.CookTime,
		Servings:        d.Servings,
		IngredientsUsed: d.IngredientsUsed,
		Instructions:    d.Instructions,
		Notes:           d.Notes,
		Cuisine:         cuisine,
	}
}

// CookedEntry records one "marked as cooked" event. Re-marking a recipe
// replaces its previous entry rather than duplicating it.
type CookedEntry struct {
	RecipeID string `json:"recipeId"`
	Title    string `json:"title"`
	CookedAt int64  `json:"cookedAt"`
}

// MinimalInfo is the subset of a recipe needed for calendar placement when
// the full recipe object is unavailable.
type MinimalInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// CuisineType categorizes a recipe's cuisine.
type CuisineType string

// Supported cuisines; CuisineAny lets the generator choose.
const (
	CuisineAny           CuisineType = "Any"
	CuisineAmerican      CuisineType = "American"
	CuisineChinese       CuisineType = "Chinese"
	CuisineFrench        CuisineType = "French"
	CuisineIndian        CuisineType = "Indian"
	CuisineItalian       CuisineType = "Italian"
	CuisineJapanese      CuisineType = "Japanese"
	CuisineKorean        CuisineType = "Korean"
	CuisineMediterranean CuisineType = "Mediterranean"
	CuisineMexican       CuisineType = "Mexican"
	CuisineMiddleEastern CuisineType = "Middle Eastern"
	CuisineThai          CuisineType = "Thai"
	CuisineDessert       CuisineType = "Dessert"
)

// AudienceType narrows a recipe to an eater group.
type AudienceType string

const (
	AudienceEveryone   AudienceType = "Everyone"
	AudienceBaby6To8   AudienceType = "Baby (6-8 months)"
	AudienceBaby9To12  AudienceType = "Baby (9-12 months)"
	AudienceBaby12Plus AudienceType = "Baby (12+ months)"
)
