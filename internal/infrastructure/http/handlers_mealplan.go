package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	mealplandomain "github.com/recipify/v2/internal/domain/mealplan"
	"github.com/recipify/v2/internal/domain/recipe"
)

type addEntryRequest struct {
	RecipeID   string `json:"recipeId" validate:"required"`
	Title      string `json:"title" validate:"required"`
	Date       string `json:"date" validate:"required"`
	Slot       string `json:"slot"`
	CustomSlot string `json:"customSlot"`
}

type updateEntryRequest struct {
	Date       string `json:"date" validate:"required"`
	Slot       string `json:"slot"`
	CustomSlot string `json:"customSlot"`
}

type moveEntryRequest struct {
	Date string `json:"date" validate:"required"`
	Slot string `json:"slot" validate:"required"`
}

func (a *API) handleGetCalendar(w http.ResponseWriter, r *http.Request) {
	u := UserFrom(r.Context())
	if date := r.URL.Query().Get("date"); date != "" {
		a.writeJSON(w, http.StatusOK, a.services.MealPlan.EntriesForDay(r.Context(), u, date))
		return
	}
	a.writeJSON(w, http.StatusOK, a.services.MealPlan.Entries(r.Context(), u))
}

func (a *API) handleAddCalendarEntry(w http.ResponseWriter, r *http.Request) {
	var req addEntryRequest
	if err := a.decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}

	u := UserFrom(r.Context())
	decision, err := a.services.MealPlan.Add(r.Context(), u,
		recipe.MinimalInfo{ID: req.RecipeID, Title: req.Title},
		req.Date, mealplandomain.Slot(req.Slot), req.CustomSlot)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	if !decision.Allowed {
		a.writeDecision(w, decision)
		return
	}
	a.writeJSON(w, http.StatusCreated, a.services.MealPlan.Entries(r.Context(), u))
}

func (a *API) handleUpdateCalendarEntry(w http.ResponseWriter, r *http.Request) {
	var req updateEntryRequest
	if err := a.decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}

	u := UserFrom(r.Context())
	decision, err := a.services.MealPlan.Update(r.Context(), u, chi.URLParam(r, "id"),
		req.Date, mealplandomain.Slot(req.Slot), req.CustomSlot)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	if !decision.Allowed {
		a.writeDecision(w, decision)
		return
	}
	a.writeJSON(w, http.StatusOK, a.services.MealPlan.Entries(r.Context(), u))
}

func (a *API) handleMoveCalendarEntry(w http.ResponseWriter, r *http.Request) {
	var req moveEntryRequest
	if err := a.decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}

	u := UserFrom(r.Context())
	decision, err := a.services.MealPlan.Move(r.Context(), u, chi.URLParam(r, "id"),
		req.Date, mealplandomain.Slot(req.Slot))
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	if !decision.Allowed {
		a.writeDecision(w, decision)
		return
	}
	a.writeJSON(w, http.StatusOK, a.services.MealPlan.Entries(r.Context(), u))
}

func (a *API) handleRemoveCalendarEntry(w http.ResponseWriter, r *http.Request) {
	u := UserFrom(r.Context())
	if err := a.services.MealPlan.Remove(r.Context(), u, chi.URLParam(r, "id")); err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, a.services.MealPlan.Entries(r.Context(), u))
}
