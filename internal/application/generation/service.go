// Package generation orchestrates the recipe generation flows: standard
// generation from a selection, the kitchen-driven surprise flow, and
// re-rolling an existing recipe. Validation runs before any quota check or
// network call; after a successful call the history, quota and progress
// updates fan out independently.
package generation

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/recipify/v2/internal/application/collections"
	"github.com/recipify/v2/internal/application/pantry"
	"github.com/recipify/v2/internal/application/progress"
	"github.com/recipify/v2/internal/application/quota"
	"github.com/recipify/v2/internal/domain/entitlement"
	progressdomain "github.com/recipify/v2/internal/domain/progress"
	"github.com/recipify/v2/internal/domain/recipe"
	"github.com/recipify/v2/internal/domain/user"
	"github.com/recipify/v2/internal/ports/outbound"
)

// Input is one generation request from the user.
type Input struct {
	Ingredients []string
	Cuisine     recipe.CuisineType
	Audience    recipe.AudienceType
	Servings    int
	// AvoidTitles are extra titles to steer the generator away from, on top
	// of the avoid list derived from the user's collections.
	AvoidTitles []string
}

// Result is the outcome of a permitted generation attempt.
type Result struct {
	Recipe  recipe.Recipe
	History []recipe.Recipe
	// Unlocked is the achievement newly earned by this generation, if any.
	Unlocked *progressdomain.Achievement
}

// Service coordinates the quota engine, the generator client and the
// post-generation bookkeeping.
type Service struct {
	quota       *quota.Service
	collections *collections.Service
	pantry      *pantry.Service
	progress    *progress.Service
	generator   outbound.RecipeGenerator
	logger      *zap.Logger
	now         func() time.Time
}

// NewService creates a generation orchestrator.
func NewService(
	quotaSvc *quota.Service,
	collectionsSvc *collections.Service,
	pantrySvc *pantry.Service,
	progressSvc *progress.Service,
	generator outbound.RecipeGenerator,
	logger *zap.Logger,
) *Service {
	return &Service{
		quota:       quotaSvc,
		collections: collectionsSvc,
		pantry:      pantrySvc,
		progress:    progressSvc,
		generator:   generator,
		logger:      logger.Named("generation-service"),
		now:         time.Now,
	}
}

// Generate runs the standard flow: validate, check quota, call the
// generator, then record history, quota usage and progress. A quota denial
// comes back as the Decision, not an error; generator failures surface as a
// *outbound.GenerationError with a user-readable message.
func (s *Service) Generate(ctx context.Context, u *user.User, in Input) (Result, entitlement.Decision, error) {
	return s.generate(ctx, u, in, false)
}

// SurpriseMe generates from the user's entire kitchen. The weekly surprise
// counter is recorded on success; the free daily cap does not block this
// flow.
func (s *Service) SurpriseMe(ctx context.Context, u *user.User, cuisine recipe.CuisineType, audience recipe.AudienceType, servings int) (Result, entitlement.Decision, error) {
	kitchen := s.pantry.Kitchen(ctx, u)
	if len(kitchen) == 0 {
		return Result{}, entitlement.Decision{}, recipe.ErrEmptyKitchen
	}
	names := make([]string, len(kitchen))
	for i, item := range kitchen {
		names[i] = item.Name
	}
	return s.generate(ctx, u, Input{
		Ingredients: names,
		Cuisine:     cuisine,
		Audience:    audience,
		Servings:    servings,
	}, true)
}

// Regenerate re-rolls an existing recipe with its own ingredients, avoiding
// its current title. Recipes whose ingredients no longer resolve against the
// catalog cannot be re-rolled.
func (s *Service) Regenerate(ctx context.Context, u *user.User, original recipe.Recipe, audience recipe.AudienceType, servings int) (Result, entitlement.Decision, error) {
	var names []string
	for _, ing := range original.IngredientsUsed {
		if item, ok := s.pantry.Catalog().Lookup(ing.Name); ok {
			names = append(names, item.Name)
		}
	}
	if len(names) == 0 {
		return Result{}, entitlement.Decision{}, errors.New("cannot re-roll: original recipe ingredients couldn't be processed or found")
	}
	cuisine := original.Cuisine
	if cuisine == "" {
		cuisine = recipe.CuisineAny
	}
	return s.generate(ctx, u, Input{
		Ingredients: names,
		Cuisine:     cuisine,
		Audience:    audience,
		Servings:    servings,
		AvoidTitles: []string{original.Title},
	}, false)
}

func (s *Service) generate(ctx context.Context, u *user.User, in Input, surprise bool) (Result, entitlement.Decision, error) {
	if len(in.Ingredients) == 0 {
		return Result{}, entitlement.Decision{}, recipe.ErrNoIngredients
	}
	if in.Servings <= 0 {
		return Result{}, entitlement.Decision{}, recipe.ErrInvalidServings
	}

	if decision := s.quota.CanGenerate(ctx, u, surprise); !decision.Allowed {
		return Result{}, decision, nil
	}

	avoid := s.collections.TitlesToAvoid(ctx, u, in.AvoidTitles)
	draft, err := s.generator.Generate(ctx, outbound.GenerateRequest{
		Ingredients:   in.Ingredients,
		Cuisine:       in.Cuisine,
		Audience:      in.Audience,
		Servings:      in.Servings,
		TitlesToAvoid: avoid,
	})
	if err != nil {
		return Result{}, entitlement.Decision{}, err
	}

	full := recipe.FromDraft(*draft, in.Cuisine, s.now())
	result := Result{Recipe: full}
	result.History = s.collections.AddToHistory(ctx, u, full)
	s.quota.RecordGeneration(ctx, u)
	if surprise {
		s.quota.RecordSurpriseUse(ctx, u)
	}

	if u != nil {
		_, unlocked := s.progress.RecordGenerated(ctx, u)
		result.Unlocked = unlocked
	}
	if !surprise {
		s.pantry.RecordGeneratorUse(ctx, u, in.Ingredients)
		if u != nil {
			_, fromIngredients := s.progress.AddDistinctIngredients(ctx, u, s.canonicalNames(full))
			if result.Unlocked == nil {
				result.Unlocked = fromIngredients
			}
		}
	}
	return result, entitlement.Allow(), nil
}

// canonicalNames maps the generated recipe's ingredient lines back to
// catalog names, dropping lines the catalog does not know.
func (s *Service) canonicalNames(full recipe.Recipe) []string {
	var names []string
	for _, ing := range full.IngredientsUsed {
		if item, ok := s.pantry.Catalog().Lookup(ing.Name); ok {
			names = append(names, item.Name)
		}
	}
	return names
}
