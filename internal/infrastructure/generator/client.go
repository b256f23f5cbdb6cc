// Package generator implements the HTTP client for the LLM-backed recipe
// generation backend. Every failure mode is folded into a GenerationError
// whose message can be shown to the end user verbatim.
package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/recipify/v2/internal/domain/recipe"
	"github.com/recipify/v2/internal/ports/outbound"
)

// Client calls the generation backend over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient creates a generator client. timeout bounds the full request,
// which can run long while the model composes a recipe.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger.Named("generator-client"),
	}
}

// response is the backend's reply: either recipe-shaped or an error payload.
type response struct {
	recipe.Draft
	Error string `json:"error"`
}

// valid reports whether the payload carries the fields a recipe must have.
func (r response) valid() bool {
	return r.Title != "" && r.Description != "" && r.PrepTime != "" &&
		r.CookTime != "" && r.Servings != "" &&
		r.IngredientsUsed != nil && r.Instructions != nil
}

// Generate implements outbound.RecipeGenerator.
func (c *Client) Generate(ctx context.Context, req outbound.GenerateRequest) (*recipe.Draft, error) {
	if req.TitlesToAvoid == nil {
		req.TitlesToAvoid = []string{}
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, &outbound.GenerationError{Message: "An unknown error occurred while Recipify was preparing your recipe."}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate-recipe", bytes.NewReader(body))
	if err != nil {
		return nil, &outbound.GenerationError{Message: "Recipify's kitchen is currently offline: API configuration error."}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.Warn("generator request failed", zap.Error(err))
		return nil, &outbound.GenerationError{
			Message: fmt.Sprintf("Failed to connect to Recipify's kitchen: %v. Please check your internet connection and try again.", err),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errPayload struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errPayload); decodeErr == nil && errPayload.Error != "" {
			return nil, &outbound.GenerationError{
				Message: fmt.Sprintf("Backend Error: %s (Status: %d)", errPayload.Error, resp.StatusCode),
			}
		}
		return nil, &outbound.GenerationError{
			Message: fmt.Sprintf("Recipify's kitchen encountered an issue communicating with the server (Status: %d). Please try again.", resp.StatusCode),
		}
	}

	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Warn("generator returned malformed JSON", zap.Error(err))
		return nil, &outbound.GenerationError{
			Message: "Recipify received an improperly structured recipe from the server. The content might be missing key fields.",
		}
	}
	if payload.Error != "" {
		return nil, &outbound.GenerationError{Message: payload.Error}
	}
	if !payload.valid() {
		return nil, &outbound.GenerationError{
			Message: "Recipify received an improperly structured recipe from the server. The content might be missing key fields.",
		}
	}
	draft := payload.Draft
	return &draft, nil
}
