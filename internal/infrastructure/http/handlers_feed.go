package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (a *API) handleGetFeed(w http.ResponseWriter, r *http.Request) {
	posts, err := a.services.Feed.List(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, posts)
}

func (a *API) handleLikePost(w http.ResponseWriter, r *http.Request) {
	post, err := a.services.Feed.Like(r.Context(), UserFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, post)
}
