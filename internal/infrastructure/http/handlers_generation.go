package httpapi

import (
	"errors"
	"net/http"

	"github.com/recipify/v2/internal/application/generation"
	"github.com/recipify/v2/internal/domain/entitlement"
	"github.com/recipify/v2/internal/domain/recipe"
	"github.com/recipify/v2/internal/ports/outbound"
	apperrors "github.com/recipify/v2/pkg/errors"
)

type generateRequest struct {
	Ingredients []string `json:"ingredients" validate:"required,min=1"`
	Cuisine     string   `json:"cuisine"`
	Audience    string   `json:"audience"`
	Servings    int      `json:"servings" validate:"required,min=1"`
	AvoidTitles []string `json:"avoidTitles"`
}

type surpriseRequest struct {
	Cuisine  string `json:"cuisine"`
	Audience string `json:"audience"`
	Servings int    `json:"servings" validate:"required,min=1"`
}

type regenerateRequest struct {
	RecipeID string `json:"recipeId" validate:"required"`
	Audience string `json:"audience"`
	Servings int    `json:"servings" validate:"required,min=1"`
}

type generationResponse struct {
	Recipe  recipe.Recipe   `json:"recipe"`
	History []recipe.Recipe `json:"history"`
	// Unlocked carries an achievement earned by this generation, if any.
	Unlocked *achievementView `json:"unlockedAchievement,omitempty"`
}

func (a *API) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := a.decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}

	u := UserFrom(r.Context())
	result, decision, err := a.services.Generation.Generate(r.Context(), u, generation.Input{
		Ingredients: req.Ingredients,
		Cuisine:     recipe.CuisineType(req.Cuisine),
		Audience:    recipe.AudienceType(req.Audience),
		Servings:    req.Servings,
		AvoidTitles: req.AvoidTitles,
	})
	a.writeGenerationOutcome(w, r, "standard", result, decision, err)
}

func (a *API) handleSurpriseMe(w http.ResponseWriter, r *http.Request) {
	var req surpriseRequest
	if err := a.decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}

	u := UserFrom(r.Context())
	result, decision, err := a.services.Generation.SurpriseMe(r.Context(), u,
		recipe.CuisineType(req.Cuisine), recipe.AudienceType(req.Audience), req.Servings)
	a.writeGenerationOutcome(w, r, "surprise", result, decision, err)
}

func (a *API) handleRegenerate(w http.ResponseWriter, r *http.Request) {
	var req regenerateRequest
	if err := a.decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}

	u := UserFrom(r.Context())
	original, found := a.services.Collections.FindRecipe(r.Context(), u, req.RecipeID)
	if !found {
		a.writeError(w, r, apperrors.NewAppError(apperrors.CodeRecipeNotFound, "Recipe not found", ""))
		return
	}

	result, decision, err := a.services.Generation.Regenerate(r.Context(), u, original,
		recipe.AudienceType(req.Audience), req.Servings)
	a.writeGenerationOutcome(w, r, "regenerate", result, decision, err)
}

func (a *API) writeGenerationOutcome(w http.ResponseWriter, r *http.Request, kind string, result generation.Result, decision entitlement.Decision, err error) {
	if err != nil {
		a.metricsRecord(kind, "error")
		var genErr *outbound.GenerationError
		switch {
		case errors.As(err, &genErr):
			a.writeError(w, r, apperrors.NewAppError(apperrors.CodeExternalServiceError, genErr.Message, ""))
		case errors.Is(err, recipe.ErrNoIngredients), errors.Is(err, recipe.ErrInvalidServings), errors.Is(err, recipe.ErrEmptyKitchen):
			a.writeError(w, r, apperrors.NewBadRequestError(err.Error()))
		default:
			a.writeError(w, r, err)
		}
		return
	}
	if !decision.Allowed {
		a.metricsRecord(kind, "denied")
		a.writeDecision(w, decision)
		return
	}

	a.metricsRecord(kind, "ok")
	a.writeJSON(w, http.StatusOK, generationResponse{
		Recipe:   result.Recipe,
		History:  result.History,
		Unlocked: newAchievementView(result.Unlocked),
	})
}
