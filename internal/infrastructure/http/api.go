// Package httpapi exposes the entitlement and quota engine over a JSON REST
// API. Handlers stay thin: they decode and validate the request, call one
// application service, and render either the result, a denial decision, or
// an error envelope.
package httpapi

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/recipify/v2/internal/application/account"
	"github.com/recipify/v2/internal/application/collections"
	"github.com/recipify/v2/internal/application/feed"
	"github.com/recipify/v2/internal/application/generation"
	"github.com/recipify/v2/internal/application/mealplan"
	"github.com/recipify/v2/internal/application/pantry"
	"github.com/recipify/v2/internal/application/progress"
	"github.com/recipify/v2/internal/application/quota"
)

// Services bundles the application services the API fronts.
type Services struct {
	Account     *account.Service
	Collections *collections.Service
	Feed        *feed.Service
	Generation  *generation.Service
	MealPlan    *mealplan.Service
	Pantry      *pantry.Service
	Progress    *progress.Service
	Quota       *quota.Service
}

// API holds the handler dependencies.
type API struct {
	services Services
	validate *validator.Validate
	metrics  *Metrics
	logger   *zap.Logger
}

// NewAPI creates the handler set. metrics may be nil in tests.
func NewAPI(services Services, metrics *Metrics, logger *zap.Logger) *API {
	return &API{
		services: services,
		validate: validator.New(),
		metrics:  metrics,
		logger:   logger.Named("http-api"),
	}
}

func (a *API) metricsRecord(kind, outcome string) {
	if a.metrics != nil {
		a.metrics.RecordGeneration(kind, outcome)
	}
}
