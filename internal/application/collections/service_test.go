package collections

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	progressapp "github.com/recipify/v2/internal/application/progress"
	"github.com/recipify/v2/internal/domain/recipe"
	"github.com/recipify/v2/internal/domain/user"
	"github.com/recipify/v2/internal/infrastructure/persistence/memory"
)

// CollectionsServiceTestSuite exercises the bounded collections and the
// avoid-list builder.
type CollectionsServiceTestSuite struct {
	suite.Suite
	service  *Service
	progress *progressapp.Service
	ctx      context.Context
	clock    time.Time
}

func (suite *CollectionsServiceTestSuite) SetupTest() {
	repo := memory.NewRepository()
	suite.progress = progressapp.NewService(repo, zap.NewNop())
	suite.service = NewService(repo, suite.progress, zap.NewNop())
	suite.ctx = context.Background()
	suite.clock = time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)
	suite.service.now = func() time.Time { return suite.clock }
}

func (suite *CollectionsServiceTestSuite) user(id string, paid bool) *user.User {
	u, err := user.New(id, "Alex", "alex@example.com", "", paid)
	require.NoError(suite.T(), err)
	return u
}

func (suite *CollectionsServiceTestSuite) recipe(id, title string) recipe.Recipe {
	return recipe.Recipe{ID: id, Title: title, Timestamp: suite.clock.UnixMilli()}
}

func (suite *CollectionsServiceTestSuite) TestHistory() {
	suite.Run("AddToHistory_PrependsNewestFirst", func() {
		// Arrange
		u := suite.user("hist-order", false)
		suite.service.AddToHistory(suite.ctx, u, suite.recipe("r1", "Pasta"))

		// Act
		history := suite.service.AddToHistory(suite.ctx, u, suite.recipe("r2", "Soup"))

		// Assert
		require.Len(suite.T(), history, 2)
		assert.Equal(suite.T(), "r2", history[0].ID)
	})

	suite.Run("AddToHistory_SameID_MovesToFront", func() {
		// Arrange
		u := suite.user("hist-dedupe", false)
		suite.service.AddToHistory(suite.ctx, u, suite.recipe("r1", "Pasta"))
		suite.service.AddToHistory(suite.ctx, u, suite.recipe("r2", "Soup"))

		// Act
		history := suite.service.AddToHistory(suite.ctx, u, suite.recipe("r1", "Pasta"))

		// Assert
		require.Len(suite.T(), history, 2)
		assert.Equal(suite.T(), "r1", history[0].ID)
	})

	suite.Run("FreeTier_TruncatesAtCap", func() {
		// Arrange
		u := suite.user("hist-cap", false)
		for i := 0; i < user.FreeMaxHistoryItems; i++ {
			suite.service.AddToHistory(suite.ctx, u, suite.recipe(fmt.Sprintf("r%d", i), fmt.Sprintf("Recipe %d", i)))
		}

		// Act
		history := suite.service.AddToHistory(suite.ctx, u, suite.recipe("overflow", "Overflow"))

		// Assert: the oldest entry falls off the end.
		assert.Len(suite.T(), history, user.FreeMaxHistoryItems)
		assert.Equal(suite.T(), "overflow", history[0].ID)
		assert.Equal(suite.T(), "r1", history[len(history)-1].ID)
	})

	suite.Run("RemoveFromHistory_DeletesEntry", func() {
		// Arrange
		u := suite.user("hist-remove", false)
		suite.service.AddToHistory(suite.ctx, u, suite.recipe("r1", "Pasta"))

		// Act
		err := suite.service.RemoveFromHistory(suite.ctx, u, "r1")

		// Assert
		require.NoError(suite.T(), err)
		assert.Empty(suite.T(), suite.service.History(suite.ctx, u))
	})
}

func (suite *CollectionsServiceTestSuite) TestSavedRecipes() {
	suite.Run("Save_UpdatesSavedCountMetric", func() {
		// Arrange
		u := suite.user("saved-metric", false)

		// Act
		decision, err := suite.service.Save(suite.ctx, u, suite.recipe("r1", "Pasta"))

		// Assert
		require.NoError(suite.T(), err)
		assert.True(suite.T(), decision.Allowed)
		assert.Equal(suite.T(), 1, suite.progress.Get(suite.ctx, u).Metrics.SavedRecipeCount)
	})

	suite.Run("Save_AlreadySaved_IsNoOp", func() {
		// Arrange
		u := suite.user("saved-dup", false)
		_, err := suite.service.Save(suite.ctx, u, suite.recipe("r1", "Pasta"))
		require.NoError(suite.T(), err)

		// Act
		decision, err := suite.service.Save(suite.ctx, u, suite.recipe("r1", "Pasta"))

		// Assert
		require.NoError(suite.T(), err)
		assert.True(suite.T(), decision.Allowed)
		assert.Len(suite.T(), suite.service.Saved(suite.ctx, u), 1)
	})

	suite.Run("FreeAtCap_ShouldDenyWithUpsell", func() {
		// Arrange
		u := suite.user("saved-cap", false)
		for i := 0; i < user.FreeMaxSavedRecipes; i++ {
			_, err := suite.service.Save(suite.ctx, u, suite.recipe(fmt.Sprintf("r%d", i), fmt.Sprintf("Recipe %d", i)))
			require.NoError(suite.T(), err)
		}

		// Act
		decision, err := suite.service.Save(suite.ctx, u, suite.recipe("overflow", "Overflow"))

		// Assert
		require.NoError(suite.T(), err)
		assert.False(suite.T(), decision.Allowed)
		require.NotNil(suite.T(), decision.Upsell)
		assert.Equal(suite.T(), "Saving Recipes", decision.Upsell.FeatureName)
		assert.Len(suite.T(), suite.service.Saved(suite.ctx, u), user.FreeMaxSavedRecipes)
	})

	suite.Run("Unsave_LowersSavedCountMetric", func() {
		// Arrange
		u := suite.user("saved-unsave", false)
		_, err := suite.service.Save(suite.ctx, u, suite.recipe("r1", "Pasta"))
		require.NoError(suite.T(), err)

		// Act
		err = suite.service.Unsave(suite.ctx, u, "r1")

		// Assert
		require.NoError(suite.T(), err)
		assert.Empty(suite.T(), suite.service.Saved(suite.ctx, u))
		assert.Equal(suite.T(), 0, suite.progress.Get(suite.ctx, u).Metrics.SavedRecipeCount)
	})

	suite.Run("Anonymous_ShouldRequireSignIn", func() {
		// Act
		decision, err := suite.service.Save(suite.ctx, nil, suite.recipe("r1", "Pasta"))

		// Assert
		require.NoError(suite.T(), err)
		assert.False(suite.T(), decision.Allowed)
		assert.True(suite.T(), decision.SignInRequired)
	})
}

func (suite *CollectionsServiceTestSuite) TestCookedHistory() {
	suite.Run("MarkCooked_ReplacesExistingEntry", func() {
		// Arrange
		u := suite.user("cooked-replace", false)
		require.NoError(suite.T(), suite.service.MarkCooked(suite.ctx, u, recipe.MinimalInfo{ID: "r1", Title: "Pasta"}))
		firstCookedAt := suite.service.CookedHistory(suite.ctx, u)[0].CookedAt
		suite.clock = suite.clock.Add(time.Hour)

		// Act
		require.NoError(suite.T(), suite.service.MarkCooked(suite.ctx, u, recipe.MinimalInfo{ID: "r1", Title: "Pasta"}))

		// Assert
		cooked := suite.service.CookedHistory(suite.ctx, u)
		require.Len(suite.T(), cooked, 1)
		assert.Greater(suite.T(), cooked[0].CookedAt, firstCookedAt)
	})

	suite.Run("IsRecentlyCooked_RespectsSevenDayWindow", func() {
		// Arrange
		u := suite.user("cooked-window", false)
		require.NoError(suite.T(), suite.service.MarkCooked(suite.ctx, u, recipe.MinimalInfo{ID: "r1", Title: "Pasta"}))

		// Act / Assert
		suite.clock = suite.clock.Add(6 * 24 * time.Hour)
		assert.True(suite.T(), suite.service.IsRecentlyCooked(suite.ctx, u, "r1"))
		suite.clock = suite.clock.Add(2 * 24 * time.Hour)
		assert.False(suite.T(), suite.service.IsRecentlyCooked(suite.ctx, u, "r1"))
	})

	suite.Run("UnmarkCooked_RemovesEntry", func() {
		// Arrange
		u := suite.user("cooked-unmark", false)
		require.NoError(suite.T(), suite.service.MarkCooked(suite.ctx, u, recipe.MinimalInfo{ID: "r1", Title: "Pasta"}))

		// Act
		require.NoError(suite.T(), suite.service.UnmarkCooked(suite.ctx, u, "r1"))

		// Assert
		assert.Empty(suite.T(), suite.service.CookedHistory(suite.ctx, u))
	})
}

func (suite *CollectionsServiceTestSuite) TestExcludedAndAvoidList() {
	suite.Run("ToggleExcluded_FlipsMembership", func() {
		// Arrange
		u := suite.user("excluded-toggle", false)

		// Act
		on, err := suite.service.ToggleExcluded(suite.ctx, u, "r1")
		require.NoError(suite.T(), err)
		off, err := suite.service.ToggleExcluded(suite.ctx, u, "r1")
		require.NoError(suite.T(), err)

		// Assert
		assert.Equal(suite.T(), []string{"r1"}, on)
		assert.Empty(suite.T(), off)
	})

	suite.Run("TitlesToAvoid_CombinesSourcesDeduplicated", func() {
		// Arrange: a recently cooked recipe, an old cooked recipe, six
		// history entries, one excluded, plus an extra title.
		u := suite.user("avoid-list", false)
		require.NoError(suite.T(), suite.service.MarkCooked(suite.ctx, u, recipe.MinimalInfo{ID: "old", Title: "Old Stew"}))
		suite.clock = suite.clock.Add(8 * 24 * time.Hour)
		require.NoError(suite.T(), suite.service.MarkCooked(suite.ctx, u, recipe.MinimalInfo{ID: "c1", Title: "Fresh Curry"}))
		for i := 6; i >= 1; i-- {
			suite.service.AddToHistory(suite.ctx, u, suite.recipe(fmt.Sprintf("h%d", i), fmt.Sprintf("History %d", i)))
		}
		_, err := suite.service.ToggleExcluded(suite.ctx, u, "h6")
		require.NoError(suite.T(), err)

		// Act
		titles := suite.service.TitlesToAvoid(suite.ctx, u, []string{"Extra Title", "History 1"})

		// Assert: recently cooked first, then the five most recent distinct
		// history titles, then excluded titles, then extras, no duplicates.
		assert.Equal(suite.T(), []string{
			"Fresh Curry",
			"History 1", "History 2", "History 3", "History 4", "History 5",
			"History 6",
			"Extra Title",
		}, titles)
	})
}

func TestCollectionsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CollectionsServiceTestSuite))
}
