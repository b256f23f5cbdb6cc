package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/recipify/v2/internal/domain/entitlement"
	apperrors "github.com/recipify/v2/pkg/errors"
)

// decisionResponse wraps a denial so clients can distinguish "not allowed"
// from transport failures. Denials are part of the product flow, not errors.
type decisionResponse struct {
	Decision entitlement.Decision `json:"decision"`
}

func (a *API) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.logger.Warn("failed to encode response", zap.Error(err))
	}
}

// writeDecision renders a denial: 401 when the remedy is signing in, 403
// when it is upgrading or waiting for the quota window.
func (a *API) writeDecision(w http.ResponseWriter, d entitlement.Decision) {
	code := http.StatusForbidden
	if d.SignInRequired {
		code = http.StatusUnauthorized
	}
	a.writeJSON(w, code, decisionResponse{Decision: d})
}

func (a *API) writeError(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetReqID(r.Context())

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			appErr = apperrors.NewValidationError(vErrs.Error())
		} else {
			appErr = apperrors.NewInternalError("An unexpected error occurred").WithCause(err)
		}
	}

	status := appErr.StatusCode()
	if status >= http.StatusInternalServerError {
		a.logger.Error("request failed",
			zap.String("requestId", requestID),
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}
	a.writeJSON(w, status, apperrors.ToErrorResponse(appErr, requestID))
}

// writeErrorBody encodes a bare error envelope, for middleware that rejects
// a request before it reaches a handler.
func writeErrorBody(w http.ResponseWriter, appErr *apperrors.AppError) error {
	return json.NewEncoder(w).Encode(apperrors.ToErrorResponse(appErr, ""))
}

// decodeJSON reads and validates a request body.
func (a *API) decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.NewBadRequestError("request body is not valid JSON")
	}
	if err := a.validate.Struct(v); err != nil {
		return err
	}
	return nil
}
