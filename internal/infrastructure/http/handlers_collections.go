package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	progressdomain "github.com/recipify/v2/internal/domain/progress"
	"github.com/recipify/v2/internal/domain/recipe"
	apperrors "github.com/recipify/v2/pkg/errors"
)

type cookedResponse struct {
	Cooked   []recipe.CookedEntry    `json:"cooked"`
	Progress progressdomain.Progress `json:"progress"`
	Unlocked *achievementView        `json:"unlockedAchievement,omitempty"`
}

func (a *API) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, a.services.Collections.History(r.Context(), UserFrom(r.Context())))
}

func (a *API) handleRemoveFromHistory(w http.ResponseWriter, r *http.Request) {
	u := UserFrom(r.Context())
	if err := a.services.Collections.RemoveFromHistory(r.Context(), u, chi.URLParam(r, "id")); err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, a.services.Collections.History(r.Context(), u))
}

func (a *API) handleGetSaved(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, a.services.Collections.Saved(r.Context(), UserFrom(r.Context())))
}

func (a *API) handleSaveRecipe(w http.ResponseWriter, r *http.Request) {
	u := UserFrom(r.Context())
	rec, found := a.services.Collections.FindRecipe(r.Context(), u, chi.URLParam(r, "id"))
	if !found {
		a.writeError(w, r, apperrors.NewAppError(apperrors.CodeRecipeNotFound, "Recipe not found", ""))
		return
	}

	decision, err := a.services.Collections.Save(r.Context(), u, rec)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	if !decision.Allowed {
		a.writeDecision(w, decision)
		return
	}
	a.writeJSON(w, http.StatusOK, a.services.Collections.Saved(r.Context(), u))
}

func (a *API) handleUnsaveRecipe(w http.ResponseWriter, r *http.Request) {
	u := UserFrom(r.Context())
	if err := a.services.Collections.Unsave(r.Context(), u, chi.URLParam(r, "id")); err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, a.services.Collections.Saved(r.Context(), u))
}

func (a *API) handleGetCooked(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, a.services.Collections.CookedHistory(r.Context(), UserFrom(r.Context())))
}

// handleMarkCooked records the cook and advances the streak in one call, the
// way the product treats "I cooked this" as a single action.
func (a *API) handleMarkCooked(w http.ResponseWriter, r *http.Request) {
	u := UserFrom(r.Context())
	id := chi.URLParam(r, "id")

	rec, found := a.services.Collections.FindRecipe(r.Context(), u, id)
	if !found {
		a.writeError(w, r, apperrors.NewAppError(apperrors.CodeRecipeNotFound, "Recipe not found", ""))
		return
	}

	if err := a.services.Collections.MarkCooked(r.Context(), u, recipe.MinimalInfo{ID: rec.ID, Title: rec.Title}); err != nil {
		a.writeError(w, r, err)
		return
	}
	progress, unlocked := a.services.Progress.RecordCooked(r.Context(), u)

	a.writeJSON(w, http.StatusOK, cookedResponse{
		Cooked:   a.services.Collections.CookedHistory(r.Context(), u),
		Progress: progress,
		Unlocked: newAchievementView(unlocked),
	})
}

func (a *API) handleUnmarkCooked(w http.ResponseWriter, r *http.Request) {
	u := UserFrom(r.Context())
	if err := a.services.Collections.UnmarkCooked(r.Context(), u, chi.URLParam(r, "id")); err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, a.services.Collections.CookedHistory(r.Context(), u))
}

func (a *API) handleGetExcluded(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, a.services.Collections.Excluded(r.Context(), UserFrom(r.Context())))
}

func (a *API) handleToggleExcluded(w http.ResponseWriter, r *http.Request) {
	excluded, err := a.services.Collections.ToggleExcluded(r.Context(), UserFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, excluded)
}
