package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/recipify/v2/internal/application/pantry"
	"github.com/recipify/v2/internal/domain/ingredient"
	apperrors "github.com/recipify/v2/pkg/errors"
)

type addIngredientRequest struct {
	Name string `json:"name" validate:"required"`
}

type batchAddRequest struct {
	Names []string `json:"names" validate:"required,min=1"`
}

type selectionBatchRequest struct {
	// Selection is the client's current generator selection, by name.
	Selection []string `json:"selection"`
	Names     []string `json:"names" validate:"required,min=1"`
}

type selectionFromKitchenRequest struct {
	Selection []string `json:"selection"`
}

type selectionResponse struct {
	Selection []ingredient.Item `json:"selection"`
	Message   string            `json:"message,omitempty"`
}

type batchResponse struct {
	Items   []ingredient.Item   `json:"items"`
	Outcome pantry.BatchOutcome `json:"outcome"`
}

func (a *API) handleGetIngredients(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, a.services.Pantry.Catalog().Items())
}

func (a *API) handleGetKitchen(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, a.services.Pantry.Kitchen(r.Context(), UserFrom(r.Context())))
}

func (a *API) handleAddToKitchen(w http.ResponseWriter, r *http.Request) {
	var req addIngredientRequest
	if err := a.decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}

	item, ok := a.services.Pantry.Catalog().Resolve(req.Name)
	if !ok {
		a.writeError(w, r, apperrors.NewNotFoundError("ingredient"))
		return
	}

	u := UserFrom(r.Context())
	if err := a.services.Pantry.AddToKitchen(r.Context(), u, item); err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, a.services.Pantry.Kitchen(r.Context(), u))
}

func (a *API) handleRemoveFromKitchen(w http.ResponseWriter, r *http.Request) {
	u := UserFrom(r.Context())
	if err := a.services.Pantry.RemoveFromKitchen(r.Context(), u, chi.URLParam(r, "id")); err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, a.services.Pantry.Kitchen(r.Context(), u))
}

func (a *API) handleBatchAddToKitchen(w http.ResponseWriter, r *http.Request) {
	var req batchAddRequest
	if err := a.decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}

	items, outcome, err := a.services.Pantry.BatchAddToKitchen(r.Context(), UserFrom(r.Context()), req.Names)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, batchResponse{Items: items, Outcome: outcome})
}

func (a *API) handleRecentlyAdded(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, a.services.Pantry.RecentlyAddedToKitchen(r.Context(), UserFrom(r.Context())))
}

func (a *API) handleRecentlyUsed(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, a.services.Pantry.RecentlyUsedForGenerator(r.Context(), UserFrom(r.Context())))
}

// handleSelectionBatch folds a pasted ingredient list into the client's
// generator selection. The selection is client state, so it rides in the
// request and the updated version rides back.
func (a *API) handleSelectionBatch(w http.ResponseWriter, r *http.Request) {
	var req selectionBatchRequest
	if err := a.decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}

	selection := a.resolveSelection(req.Selection)
	updated, outcome := a.services.Pantry.BatchAddToSelection(r.Context(), UserFrom(r.Context()), selection, req.Names)
	a.writeJSON(w, http.StatusOK, batchResponse{Items: updated, Outcome: outcome})
}

func (a *API) handleSelectionFromKitchen(w http.ResponseWriter, r *http.Request) {
	var req selectionFromKitchenRequest
	if err := a.decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}

	selection := a.resolveSelection(req.Selection)
	updated, message := a.services.Pantry.AddAllFromKitchen(r.Context(), UserFrom(r.Context()), selection)
	a.writeJSON(w, http.StatusOK, selectionResponse{Selection: updated, Message: message})
}

// resolveSelection maps client-held selection names back to catalog items,
// dropping anything that no longer resolves.
func (a *API) resolveSelection(names []string) []ingredient.Item {
	catalog := a.services.Pantry.Catalog()
	selection := make([]ingredient.Item, 0, len(names))
	for _, name := range names {
		if item, ok := catalog.Resolve(name); ok {
			selection = append(selection, item)
		}
	}
	return selection
}
