package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// RouterDeps carries everything the router mounts besides the handlers.
type RouterDeps struct {
	Auth      *Authenticator
	RateLimit *RateLimiter
	Metrics   *Metrics
	Logger    *zap.Logger
}

// NewRouter wires the full route table. Read endpoints work for anonymous
// visitors; account endpoints require a session; everything else decides
// per-tier inside the application layer.
func NewRouter(api *API, deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID, middleware.RealIP)
	r.Use(RequestLogger(deps.Logger))
	r.Use(middleware.Recoverer)
	if deps.RateLimit != nil {
		r.Use(deps.RateLimit.Middleware)
	}
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	r.Get("/health", api.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(deps.Auth.Optional)

		r.Route("/recipes", func(r chi.Router) {
			r.Post("/generate", api.handleGenerate)
			r.Post("/surprise", api.handleSurpriseMe)
			r.Post("/regenerate", api.handleRegenerate)

			r.Post("/{id}/save", api.handleSaveRecipe)
			r.Delete("/{id}/save", api.handleUnsaveRecipe)
			r.Post("/{id}/cooked", api.handleMarkCooked)
			r.Delete("/{id}/cooked", api.handleUnmarkCooked)
			r.Post("/{id}/exclude", api.handleToggleExcluded)
		})

		r.Get("/history", api.handleGetHistory)
		r.Delete("/history/{id}", api.handleRemoveFromHistory)
		r.Get("/saved", api.handleGetSaved)
		r.Get("/cooked", api.handleGetCooked)
		r.Get("/excluded", api.handleGetExcluded)

		r.Get("/quota", api.handleQuotaStatus)
		r.Post("/quota/extra", api.handleGrantExtra)

		r.Get("/ingredients", api.handleGetIngredients)
		r.Route("/kitchen", func(r chi.Router) {
			r.Get("/", api.handleGetKitchen)
			r.Post("/", api.handleAddToKitchen)
			r.Delete("/{id}", api.handleRemoveFromKitchen)
			r.Post("/batch", api.handleBatchAddToKitchen)
			r.Get("/recently-added", api.handleRecentlyAdded)
		})
		r.Route("/selection", func(r chi.Router) {
			r.Post("/batch", api.handleSelectionBatch)
			r.Post("/from-kitchen", api.handleSelectionFromKitchen)
			r.Get("/recently-used", api.handleRecentlyUsed)
		})

		r.Route("/calendar", func(r chi.Router) {
			r.Get("/", api.handleGetCalendar)
			r.Post("/", api.handleAddCalendarEntry)
			r.Put("/{id}", api.handleUpdateCalendarEntry)
			r.Post("/{id}/move", api.handleMoveCalendarEntry)
			r.Delete("/{id}", api.handleRemoveCalendarEntry)
		})

		r.Get("/progress", api.handleGetProgress)
		r.Get("/achievements", api.handleListAchievements)
		r.Post("/achievements/{id}/viewed", api.handleMarkAchievementViewed)

		r.Get("/feed", api.handleGetFeed)
		r.Post("/feed/{id}/like", api.handleLikePost)

		r.Group(func(r chi.Router) {
			r.Use(deps.Auth.Required)
			r.Get("/users/me", api.handleMe)
			r.Post("/users/me/tier", api.handleSetTier)
		})
	})

	return r
}
