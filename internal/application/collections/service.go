// Package collections manages the bounded recipe collections: generation
// history, saved recipes, cooked history and the excluded-title set, plus
// the avoid-list assembled from them for the generator prompt.
package collections

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/recipify/v2/internal/domain/entitlement"
	"github.com/recipify/v2/internal/domain/progress"
	"github.com/recipify/v2/internal/domain/recipe"
	"github.com/recipify/v2/internal/domain/user"
	"github.com/recipify/v2/internal/ports/outbound"
	apperrors "github.com/recipify/v2/pkg/errors"
)

const (
	// RecentlyGeneratedCount caps how many recent distinct history titles
	// feed the avoid list.
	RecentlyGeneratedCount = 5
	// CookedAvoidWindow is how long a cooked recipe's title stays on the
	// avoid list.
	CookedAvoidWindow = 7 * 24 * time.Hour
)

// SavedCountRecorder receives the authoritative saved-list size after every
// save or unsave, feeding the achievement metrics.
type SavedCountRecorder interface {
	SetSavedCount(ctx context.Context, u *user.User, count int) (progress.Progress, *progress.Achievement)
}

// Service owns the per-user recipe collections. Reads fail open to empty
// lists; writes are logged and swallowed.
type Service struct {
	repo     outbound.StateRepository
	recorder SavedCountRecorder
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates a collections service. recorder may be nil when no
// progress tracking is wired.
func NewService(repo outbound.StateRepository, recorder SavedCountRecorder, logger *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		recorder: recorder,
		logger:   logger.Named("collections-service"),
		now:      time.Now,
	}
}

// History returns the generation history, newest first.
func (s *Service) History(ctx context.Context, u *user.User) []recipe.Recipe {
	var out []recipe.Recipe
	s.load(ctx, u, outbound.KindRecipeHistory, &out)
	return out
}

// AddToHistory prepends a recipe, deduplicating by id and truncating to the
// tier's cap. The anonymous session shares the free-tier cap. Returns the
// updated history.
func (s *Service) AddToHistory(ctx context.Context, u *user.User, rec recipe.Recipe) []recipe.Recipe {
	maxItems := user.FreeMaxHistoryItems
	if u != nil {
		maxItems = u.MaxHistoryItems()
	}
	history := s.History(ctx, u)
	updated := make([]recipe.Recipe, 0, len(history)+1)
	updated = append(updated, rec)
	for _, r := range history {
		if r.ID != rec.ID {
			updated = append(updated, r)
		}
	}
	if len(updated) > maxItems {
		updated = updated[:maxItems]
	}
	s.save(ctx, u, outbound.KindRecipeHistory, updated)
	return updated
}

// RemoveFromHistory deletes a recipe from the history.
func (s *Service) RemoveFromHistory(ctx context.Context, u *user.User, recipeID string) error {
	if u == nil {
		return apperrors.NewUnauthorizedError("")
	}
	history := s.History(ctx, u)
	kept := history[:0]
	for _, r := range history {
		if r.ID != recipeID {
			kept = append(kept, r)
		}
	}
	s.save(ctx, u, outbound.KindRecipeHistory, kept)
	return nil
}

// Saved returns the saved recipes, newest first.
func (s *Service) Saved(ctx context.Context, u *user.User) []recipe.Recipe {
	if u == nil {
		return nil
	}
	var out []recipe.Recipe
	s.load(ctx, u, outbound.KindSavedRecipes, &out)
	return out
}

// Save adds a recipe to the saved list. Free users at their cap get an
// upsell denial; paid users at the hard cap get an error. Saving an already
// saved recipe is a no-op.
func (s *Service) Save(ctx context.Context, u *user.User, rec recipe.Recipe) (entitlement.Decision, error) {
	if u == nil {
		return entitlement.DenySignIn("Sign in to save recipes."), nil
	}
	saved := s.Saved(ctx, u)
	maxSaved := u.MaxSavedRecipes()
	if !u.IsPaid() && len(saved) >= maxSaved {
		return entitlement.DenyUpsell(
			fmt.Sprintf("You've reached the limit of %d saved recipes for free users.", maxSaved),
			entitlement.Upsell{
				FeatureName:    "Saving Recipes",
				LimitDetails:   fmt.Sprintf("You've reached the limit of %d saved recipes for free users.", maxSaved),
				PremiumBenefit: fmt.Sprintf("Save up to %d recipes with Recipify Pro.", user.PremiumMaxSavedRecipes),
			},
		), nil
	}
	if u.IsPaid() && len(saved) >= maxSaved {
		return entitlement.Decision{}, apperrors.NewAppError(apperrors.CodeQuotaExceeded,
			fmt.Sprintf("You have reached the maximum of %d saved recipes.", maxSaved), "")
	}
	for _, r := range saved {
		if r.ID == rec.ID {
			return entitlement.Allow(), nil
		}
	}
	updated := append([]recipe.Recipe{rec}, saved...)
	s.save(ctx, u, outbound.KindSavedRecipes, updated)
	if s.recorder != nil {
		s.recorder.SetSavedCount(ctx, u, len(updated))
	}
	return entitlement.Allow(), nil
}

// Unsave removes a recipe from the saved list.
func (s *Service) Unsave(ctx context.Context, u *user.User, recipeID string) error {
	if u == nil {
		return apperrors.NewUnauthorizedError("")
	}
	saved := s.Saved(ctx, u)
	kept := make([]recipe.Recipe, 0, len(saved))
	for _, r := range saved {
		if r.ID != recipeID {
			kept = append(kept, r)
		}
	}
	s.save(ctx, u, outbound.KindSavedRecipes, kept)
	if s.recorder != nil {
		s.recorder.SetSavedCount(ctx, u, len(kept))
	}
	return nil
}

// CookedHistory returns cooked entries, newest first.
func (s *Service) CookedHistory(ctx context.Context, u *user.User) []recipe.CookedEntry {
	if u == nil {
		return nil
	}
	var out []recipe.CookedEntry
	s.load(ctx, u, outbound.KindCookedHistory, &out)
	return out
}

// MarkCooked records a cook now, replacing any previous entry for the same
// recipe rather than duplicating it.
func (s *Service) MarkCooked(ctx context.Context, u *user.User, rec recipe.MinimalInfo) error {
	if u == nil {
		return apperrors.NewUnauthorizedError("")
	}
	cooked := s.CookedHistory(ctx, u)
	updated := make([]recipe.CookedEntry, 0, len(cooked)+1)
	updated = append(updated, recipe.CookedEntry{
		RecipeID: rec.ID,
		Title:    rec.Title,
		CookedAt: s.now().UnixMilli(),
	})
	for _, e := range cooked {
		if e.RecipeID != rec.ID {
			updated = append(updated, e)
		}
	}
	s.save(ctx, u, outbound.KindCookedHistory, updated)
	return nil
}

// UnmarkCooked removes a recipe's cooked entry.
func (s *Service) UnmarkCooked(ctx context.Context, u *user.User, recipeID string) error {
	if u == nil {
		return apperrors.NewUnauthorizedError("")
	}
	cooked := s.CookedHistory(ctx, u)
	kept := cooked[:0]
	for _, e := range cooked {
		if e.RecipeID != recipeID {
			kept = append(kept, e)
		}
	}
	s.save(ctx, u, outbound.KindCookedHistory, kept)
	return nil
}

// IsRecentlyCooked reports whether the recipe was cooked within the avoid
// window.
func (s *Service) IsRecentlyCooked(ctx context.Context, u *user.User, recipeID string) bool {
	now := s.now().UnixMilli()
	for _, e := range s.CookedHistory(ctx, u) {
		if e.RecipeID == recipeID && now-e.CookedAt < CookedAvoidWindow.Milliseconds() {
			return true
		}
	}
	return false
}

// Excluded returns the ids excluded from future generations.
func (s *Service) Excluded(ctx context.Context, u *user.User) []string {
	if u == nil {
		return nil
	}
	var out []string
	s.load(ctx, u, outbound.KindExcludedRecipeIDs, &out)
	return out
}

// ToggleExcluded flips a recipe's membership in the excluded set and returns
// the updated set.
func (s *Service) ToggleExcluded(ctx context.Context, u *user.User, recipeID string) ([]string, error) {
	if u == nil {
		return nil, apperrors.NewUnauthorizedError("")
	}
	excluded := s.Excluded(ctx, u)
	updated := make([]string, 0, len(excluded)+1)
	removed := false
	for _, id := range excluded {
		if id == recipeID {
			removed = true
			continue
		}
		updated = append(updated, id)
	}
	if !removed {
		updated = append(updated, recipeID)
	}
	s.save(ctx, u, outbound.KindExcludedRecipeIDs, updated)
	return updated, nil
}

// TitlesToAvoid assembles the generator's avoid list: titles cooked within
// the last seven days, the five most recent distinct history titles, titles
// of explicitly excluded history entries, and any extra titles from the
// caller, deduplicated in that order.
func (s *Service) TitlesToAvoid(ctx context.Context, u *user.User, extra []string) []string {
	nowMillis := s.now().UnixMilli()
	history := s.History(ctx, u)
	excluded := make(map[string]bool)
	for _, id := range s.Excluded(ctx, u) {
		excluded[id] = true
	}

	seen := make(map[string]bool)
	var titles []string
	add := func(title string) {
		if title == "" || seen[title] {
			return
		}
		seen[title] = true
		titles = append(titles, title)
	}

	for _, e := range s.CookedHistory(ctx, u) {
		if nowMillis-e.CookedAt < CookedAvoidWindow.Milliseconds() {
			add(e.Title)
		}
	}
	distinct := 0
	recentSeen := make(map[string]bool)
	for _, r := range history {
		if recentSeen[r.Title] {
			continue
		}
		recentSeen[r.Title] = true
		distinct++
		if distinct > RecentlyGeneratedCount {
			break
		}
		add(r.Title)
	}
	for _, r := range history {
		if excluded[r.ID] {
			add(r.Title)
		}
	}
	for _, t := range extra {
		add(t)
	}
	return titles
}

// FindRecipe looks a recipe up by id in history first, then saved.
func (s *Service) FindRecipe(ctx context.Context, u *user.User, recipeID string) (recipe.Recipe, bool) {
	for _, r := range s.History(ctx, u) {
		if r.ID == recipeID {
			return r, true
		}
	}
	for _, r := range s.Saved(ctx, u) {
		if r.ID == recipeID {
			return r, true
		}
	}
	return recipe.Recipe{}, false
}

func (s *Service) load(ctx context.Context, u *user.User, kind outbound.EntityKind, v any) {
	if _, err := s.repo.Load(ctx, user.ScopeOf(u), kind, v); err != nil {
		s.logger.Warn("failed to load collection, using empty list",
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
	}
}

func (s *Service) save(ctx context.Context, u *user.User, kind outbound.EntityKind, v any) {
	if err := s.repo.Save(ctx, user.ScopeOf(u), kind, v); err != nil {
		s.logger.Warn("failed to save collection",
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
	}
}
