package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/recipify/v2/internal/domain/recipe"
	"github.com/recipify/v2/internal/ports/outbound"
)

// GeneratorClientTestSuite exercises the backend client against httptest
// servers.
type GeneratorClientTestSuite struct {
	suite.Suite
	ctx context.Context
}

func (suite *GeneratorClientTestSuite) SetupTest() {
	suite.ctx = context.Background()
}

func (suite *GeneratorClientTestSuite) client(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	suite.T().Cleanup(server.Close)
	return NewClient(server.URL, 5*time.Second, zap.NewNop()), server
}

func (suite *GeneratorClientTestSuite) request() outbound.GenerateRequest {
	return outbound.GenerateRequest{
		Ingredients: []string{"Tomato", "Onion"},
		Cuisine:     recipe.CuisineItalian,
		Audience:    recipe.AudienceEveryone,
		Servings:    2,
	}
}

func (suite *GeneratorClientTestSuite) TestGenerate() {
	suite.Run("ValidRecipe_ShouldDecodeDraft", func() {
		// Arrange
		var gotBody map[string]any
		client, _ := suite.client(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(suite.T(), http.MethodPost, r.Method)
			require.Equal(suite.T(), "/api/generate-recipe", r.URL.Path)
			require.NoError(suite.T(), json.NewDecoder(r.Body).Decode(&gotBody))
			json.NewEncoder(w).Encode(map[string]any{
				"title":           "Tomato Onion Stew",
				"description":     "A simple stew.",
				"prepTime":        "10 min",
				"cookTime":        "30 min",
				"servings":        "2",
				"ingredientsUsed": []map[string]string{{"name": "Tomato", "quantity": "2", "unit": "pieces"}},
				"instructions":    []string{"Chop.", "Simmer."},
			})
		})

		// Act
		draft, err := client.Generate(suite.ctx, suite.request())

		// Assert
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "Tomato Onion Stew", draft.Title)
		assert.Len(suite.T(), draft.IngredientsUsed, 1)
		// titlesToAvoid is always present in the request body, even when empty.
		assert.Equal(suite.T(), []any{}, gotBody["titlesToAvoid"])
		assert.Equal(suite.T(), float64(2), gotBody["servings"])
	})

	suite.Run("ErrorPayloadWith200_ShouldSurfaceBackendMessage", func() {
		// Arrange
		client, _ := suite.client(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{"error": "No recipe could be composed from these ingredients."})
		})

		// Act
		_, err := client.Generate(suite.ctx, suite.request())

		// Assert
		var genErr *outbound.GenerationError
		require.ErrorAs(suite.T(), err, &genErr)
		assert.Equal(suite.T(), "No recipe could be composed from these ingredients.", genErr.Message)
	})

	suite.Run("ErrorStatusWithJSONBody_ShouldIncludeStatus", func() {
		// Arrange
		client, _ := suite.client(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(map[string]string{"error": "model overloaded"})
		})

		// Act
		_, err := client.Generate(suite.ctx, suite.request())

		// Assert
		var genErr *outbound.GenerationError
		require.ErrorAs(suite.T(), err, &genErr)
		assert.Equal(suite.T(), "Backend Error: model overloaded (Status: 502)", genErr.Message)
	})

	suite.Run("ErrorStatusWithoutBody_ShouldUseGenericMessage", func() {
		// Arrange
		client, _ := suite.client(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		// Act
		_, err := client.Generate(suite.ctx, suite.request())

		// Assert
		var genErr *outbound.GenerationError
		require.ErrorAs(suite.T(), err, &genErr)
		assert.Contains(suite.T(), genErr.Message, "(Status: 500)")
	})

	suite.Run("MissingRequiredFields_ShouldRejectPayload", func() {
		// Arrange: response lacks instructions and timing fields.
		client, _ := suite.client(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"title": "Half a Recipe"})
		})

		// Act
		_, err := client.Generate(suite.ctx, suite.request())

		// Assert
		var genErr *outbound.GenerationError
		require.ErrorAs(suite.T(), err, &genErr)
		assert.Contains(suite.T(), genErr.Message, "improperly structured recipe")
	})

	suite.Run("ConnectionFailure_ShouldReturnUserReadableError", func() {
		// Arrange
		client, server := suite.client(func(w http.ResponseWriter, r *http.Request) {})
		server.Close()

		// Act
		_, err := client.Generate(suite.ctx, suite.request())

		// Assert
		var genErr *outbound.GenerationError
		require.ErrorAs(suite.T(), err, &genErr)
		assert.Contains(suite.T(), genErr.Message, "Failed to connect to Recipify's kitchen")
	})
}

func TestGeneratorClientTestSuite(t *testing.T) {
	suite.Run(t, new(GeneratorClientTestSuite))
}
