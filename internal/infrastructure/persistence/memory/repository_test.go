package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/recipify/v2/internal/domain/user"
	"github.com/recipify/v2/internal/ports/outbound"
)

type payload struct {
	Count int    `json:"count"`
	Note  string `json:"note,omitempty"`
}

type RepositoryTestSuite struct {
	suite.Suite
	repo *Repository
	ctx  context.Context
}

func (suite *RepositoryTestSuite) SetupTest() {
	suite.repo = NewRepository()
	suite.ctx = context.Background()
}

func (suite *RepositoryTestSuite) TestLoad() {
	suite.Run("Miss_ShouldReportNotFoundWithoutError", func() {
		var got payload
		found, err := suite.repo.Load(suite.ctx, user.ScopeFor("u1"), outbound.KindGenerationStatus, &got)

		suite.NoError(err)
		suite.False(found)
		suite.Zero(got)
	})

	suite.Run("AfterSave_ShouldRoundTrip", func() {
		scope := user.ScopeFor("u2")
		suite.Require().NoError(suite.repo.Save(suite.ctx, scope, outbound.KindUserProgress, payload{Count: 3, Note: "x"}))

		var got payload
		found, err := suite.repo.Load(suite.ctx, scope, outbound.KindUserProgress, &got)

		suite.Require().NoError(err)
		suite.True(found)
		suite.Equal(payload{Count: 3, Note: "x"}, got)
	})

	suite.Run("ScopesAreIsolated", func() {
		suite.Require().NoError(suite.repo.Save(suite.ctx, user.ScopeFor("u3"), outbound.KindMyKitchen, payload{Count: 1}))

		var got payload
		found, err := suite.repo.Load(suite.ctx, user.ScopeFor("u4"), outbound.KindMyKitchen, &got)

		suite.NoError(err)
		suite.False(found)

		found, err = suite.repo.Load(suite.ctx, user.Anonymous(), outbound.KindMyKitchen, &got)
		suite.NoError(err)
		suite.False(found)
	})

	suite.Run("KindsAreIsolated", func() {
		scope := user.ScopeFor("u5")
		suite.Require().NoError(suite.repo.Save(suite.ctx, scope, outbound.KindSavedRecipes, payload{Count: 9}))

		var got payload
		found, err := suite.repo.Load(suite.ctx, scope, outbound.KindRecipeHistory, &got)

		suite.NoError(err)
		suite.False(found)
	})
}

func (suite *RepositoryTestSuite) TestSave() {
	suite.Run("ShouldReplaceExistingBlob", func() {
		scope := user.ScopeFor("u6")
		suite.Require().NoError(suite.repo.Save(suite.ctx, scope, outbound.KindGenerationStatus, payload{Count: 1}))
		suite.Require().NoError(suite.repo.Save(suite.ctx, scope, outbound.KindGenerationStatus, payload{Count: 2}))

		var got payload
		found, err := suite.repo.Load(suite.ctx, scope, outbound.KindGenerationStatus, &got)

		suite.Require().NoError(err)
		suite.True(found)
		suite.Equal(2, got.Count)
	})

	suite.Run("StoredBlobIsDetached", func() {
		// Mutating the value after Save must not leak into the store.
		scope := user.ScopeFor("u7")
		value := payload{Count: 1}
		suite.Require().NoError(suite.repo.Save(suite.ctx, scope, outbound.KindGenerationStatus, value))
		value.Count = 99

		var got payload
		_, err := suite.repo.Load(suite.ctx, scope, outbound.KindGenerationStatus, &got)
		suite.Require().NoError(err)
		suite.Equal(1, got.Count)
	})
}

func (suite *RepositoryTestSuite) TestDelete() {
	suite.Run("ShouldRemoveBlob", func() {
		scope := user.ScopeFor("u8")
		suite.Require().NoError(suite.repo.Save(suite.ctx, scope, outbound.KindSurpriseMeStatus, payload{Count: 1}))
		suite.Require().NoError(suite.repo.Delete(suite.ctx, scope, outbound.KindSurpriseMeStatus))

		var got payload
		found, err := suite.repo.Load(suite.ctx, scope, outbound.KindSurpriseMeStatus, &got)

		suite.NoError(err)
		suite.False(found)
	})

	suite.Run("MissingBlob_ShouldNotError", func() {
		suite.NoError(suite.repo.Delete(suite.ctx, user.ScopeFor("u9"), outbound.KindCookedHistory))
	})
}

func (suite *RepositoryTestSuite) TestContextCancellation() {
	cancelled, cancel := context.WithCancel(suite.ctx)
	cancel()

	suite.Error(suite.repo.Save(cancelled, user.ScopeFor("u10"), outbound.KindGenerationStatus, payload{}))

	var got payload
	_, err := suite.repo.Load(cancelled, user.ScopeFor("u10"), outbound.KindGenerationStatus, &got)
	suite.Error(err)
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
