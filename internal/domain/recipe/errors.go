package recipe

import "errors"

// Validation errors caught before any quota or network activity.
var (
	ErrNoIngredients   = errors.New("please select some ingredients")
	ErrInvalidServings = errors.New("please enter a valid number of servings")
	ErrEmptyKitchen    = errors.New("your kitchen is empty, add some ingredients first")
	ErrNotFound        = errors.New("recipe not found")
)
