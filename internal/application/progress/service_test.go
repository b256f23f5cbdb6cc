package progress

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	domain "github.com/recipify/v2/internal/domain/progress"
	"github.com/recipify/v2/internal/domain/user"
	"github.com/recipify/v2/internal/infrastructure/persistence/memory"
)

// ProgressServiceTestSuite exercises streaks, metrics and the unlock pass.
type ProgressServiceTestSuite struct {
	suite.Suite
	service *Service
	ctx     context.Context
	clock   time.Time
}

func (suite *ProgressServiceTestSuite) SetupTest() {
	suite.service = NewService(memory.NewRepository(), zap.NewNop())
	suite.ctx = context.Background()
	suite.clock = time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local)
	suite.service.now = func() time.Time { return suite.clock }
}

func (suite *ProgressServiceTestSuite) user(id string, paid bool) *user.User {
	u, err := user.New(id, "Alex", "alex@example.com", "", paid)
	require.NoError(suite.T(), err)
	return u
}

func (suite *ProgressServiceTestSuite) TestStreaks() {
	suite.Run("FirstCook_StartsStreakAtOne", func() {
		// Arrange
		u := suite.user("streak-first", false)

		// Act
		p, _ := suite.service.RecordCooked(suite.ctx, u)

		// Assert
		assert.Equal(suite.T(), 1, p.CurrentStreak)
		assert.Equal(suite.T(), 1, p.LongestStreak)
		assert.Equal(suite.T(), 1, p.Metrics.CookedRecipeCount)
	})

	suite.Run("SecondCookSameDay_DoesNotAdvanceStreak", func() {
		// Arrange
		u := suite.user("streak-sameday", false)
		suite.service.RecordCooked(suite.ctx, u)

		// Act
		p, _ := suite.service.RecordCooked(suite.ctx, u)

		// Assert
		assert.Equal(suite.T(), 1, p.CurrentStreak)
		assert.Equal(suite.T(), 2, p.Metrics.CookedRecipeCount)
	})

	suite.Run("ConsecutiveDays_ExtendStreak", func() {
		// Arrange
		u := suite.user("streak-run", false)
		suite.service.RecordCooked(suite.ctx, u)
		suite.clock = suite.clock.AddDate(0, 0, 1)

		// Act
		p, _ := suite.service.RecordCooked(suite.ctx, u)

		// Assert
		assert.Equal(suite.T(), 2, p.CurrentStreak)
		assert.Equal(suite.T(), 2, p.LongestStreak)
	})

	suite.Run("GapDay_ResetsStreakButKeepsLongest", func() {
		// Arrange: cook on day 1, day 2, then skip a day and cook on day 4.
		u := suite.user("streak-gap", false)
		suite.service.RecordCooked(suite.ctx, u)
		suite.clock = suite.clock.AddDate(0, 0, 1)
		suite.service.RecordCooked(suite.ctx, u)
		suite.clock = suite.clock.AddDate(0, 0, 2)

		// Act
		p, _ := suite.service.RecordCooked(suite.ctx, u)

		// Assert
		assert.Equal(suite.T(), 1, p.CurrentStreak)
		assert.Equal(suite.T(), 2, p.LongestStreak)
	})
}

func (suite *ProgressServiceTestSuite) TestUnlockPass() {
	suite.Run("FirstGeneration_UnlocksRookieCook", func() {
		// Arrange
		u := suite.user("unlock-rookie", false)

		// Act
		p, unlocked := suite.service.RecordGenerated(suite.ctx, u)

		// Assert
		require.NotNil(suite.T(), unlocked)
		assert.Equal(suite.T(), domain.AchievementRookieCook, unlocked.ID)
		assert.Equal(suite.T(), unlocked.XP, p.XP)
		assert.True(suite.T(), p.HasUnlocked(domain.AchievementRookieCook))
	})

	suite.Run("UnlockPass_AwardsAtMostOnePerCheck", func() {
		// Arrange: a paid user's first generation makes both rookieCook and
		// premiumPioneer eligible at once.
		u := suite.user("unlock-single", true)

		// Act
		p1, first := suite.service.RecordGenerated(suite.ctx, u)
		p2, second := suite.service.CheckAndUnlock(suite.ctx, u)

		// Assert: one per pass, in registry declaration order.
		require.NotNil(suite.T(), first)
		assert.Equal(suite.T(), domain.AchievementRookieCook, first.ID)
		assert.False(suite.T(), p1.HasUnlocked(domain.AchievementPremiumPioneer))
		require.NotNil(suite.T(), second)
		assert.Equal(suite.T(), domain.AchievementPremiumPioneer, second.ID)
		assert.True(suite.T(), p2.HasUnlocked(domain.AchievementPremiumPioneer))
	})

	suite.Run("UnlockedAchievement_IsNotAwardedTwice", func() {
		// Arrange
		u := suite.user("unlock-idempotent", false)
		p1, _ := suite.service.RecordGenerated(suite.ctx, u)

		// Act
		p2, unlocked := suite.service.RecordGenerated(suite.ctx, u)

		// Assert
		assert.Nil(suite.T(), unlocked)
		assert.Equal(suite.T(), p1.XP, p2.XP)
		assert.Len(suite.T(), p2.UnlockedAchievementIDs, 1)
	})

	suite.Run("SavedCount_IsSetNotIncremented", func() {
		// Arrange
		u := suite.user("saved-authoritative", false)
		suite.service.SetSavedCount(suite.ctx, u, 7)

		// Act
		p, _ := suite.service.SetSavedCount(suite.ctx, u, 3)

		// Assert
		assert.Equal(suite.T(), 3, p.Metrics.SavedRecipeCount)
	})

	suite.Run("TenSaves_UnlockRecipeSaver", func() {
		// Arrange
		u := suite.user("unlock-saver", false)

		// Act
		p, unlocked := suite.service.SetSavedCount(suite.ctx, u, 10)

		// Assert
		require.NotNil(suite.T(), unlocked)
		assert.Equal(suite.T(), domain.AchievementRecipeSaver, unlocked.ID)
		assert.Equal(suite.T(), 10, p.Metrics.SavedRecipeCount)
	})
}

func (suite *ProgressServiceTestSuite) TestMetricsAndViews() {
	suite.Run("DistinctIngredients_AreSetUnion", func() {
		// Arrange
		u := suite.user("metrics-distinct", false)
		suite.service.AddDistinctIngredients(suite.ctx, u, []string{"Onion", "Garlic"})

		// Act
		p, _ := suite.service.AddDistinctIngredients(suite.ctx, u, []string{"Garlic", "Tomato"})

		// Assert
		assert.Equal(suite.T(), []string{"Onion", "Garlic", "Tomato"}, p.Metrics.DistinctIngredientsUsed)
	})

	suite.Run("MarkViewed_IsIdempotent", func() {
		// Arrange
		u := suite.user("views", false)
		suite.service.RecordGenerated(suite.ctx, u)
		suite.service.MarkViewed(suite.ctx, u, domain.AchievementRookieCook)

		// Act
		p := suite.service.MarkViewed(suite.ctx, u, domain.AchievementRookieCook)

		// Assert
		assert.Equal(suite.T(), []domain.AchievementID{domain.AchievementRookieCook}, p.ViewedAchievements)
	})

	suite.Run("AnonymousCaller_IsNoOp", func() {
		// Act
		p, unlocked := suite.service.RecordCooked(suite.ctx, nil)

		// Assert
		assert.Nil(suite.T(), unlocked)
		assert.Zero(suite.T(), p.Metrics.CookedRecipeCount)
	})
}

func TestProgressServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProgressServiceTestSuite))
}
