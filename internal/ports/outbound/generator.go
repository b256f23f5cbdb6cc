package outbound

import (
	"context"

	"github.com/recipify/v2/internal/domain/recipe"
)

// GenerateRequest carries the full prompt for the recipe generation backend.
type GenerateRequest struct {
	Ingredients   []string            `json:"ingredients"`
	Cuisine       recipe.CuisineType  `json:"cuisine"`
	Audience      recipe.AudienceType `json:"audience"`
	Servings      int                 `json:"servings"`
	TitlesToAvoid []string            `json:"titlesToAvoid"`
}

// RecipeGenerator produces a recipe draft from a set of ingredients and
// constraints. Errors are returned as *GenerationError with a message safe
// to show to the end user.
type RecipeGenerator interface {
	Generate(ctx context.Context, req GenerateRequest) (*recipe.Draft, error)
}

// GenerationError is a user-readable failure from the generation backend.
// Every transport, protocol, or backend failure is normalized into one of
// these; callers surface Message verbatim.
type GenerationError struct {
	Message string
}

func (e *GenerationError) Error() string {
	return e.Message
}

// Profile is the identity backend's view of the signed-in user.
type Profile struct {
	ID        string
	Name      string
	Email     string
	AvatarURL string
	IsPaid    bool
}

// ProfileClient fetches the account profile for a bearer token. A response
// missing the display name or the paid flag is a hard failure: entitlement
// decisions cannot be made against a partial profile.
type ProfileClient interface {
	FetchProfile(ctx context.Context, token string) (*Profile, error)
}
