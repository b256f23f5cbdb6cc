package feed

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	domain "github.com/recipify/v2/internal/domain/feed"
	"github.com/recipify/v2/internal/domain/user"
	"github.com/recipify/v2/internal/infrastructure/persistence/memory"
	"github.com/recipify/v2/internal/ports/outbound"
	apperrors "github.com/recipify/v2/pkg/errors"
)

type FeedServiceTestSuite struct {
	suite.Suite
	service *Service
	repo    *memory.Repository
	ctx     context.Context
	clock   time.Time
}

func (suite *FeedServiceTestSuite) SetupTest() {
	suite.repo = memory.NewRepository()
	suite.service = NewService(suite.repo, zap.NewNop())
	suite.ctx = context.Background()
	suite.clock = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	suite.service.now = func() time.Time { return suite.clock }
}

func (suite *FeedServiceTestSuite) signedInUser() *user.User {
	u, err := user.New("user-feed", gofakeit.Name(), gofakeit.Email(), "", false)
	suite.Require().NoError(err)
	return u
}

func (suite *FeedServiceTestSuite) fakePost(id string) domain.Post {
	return domain.Post{
		ID:          id,
		AuthorID:    gofakeit.UUID(),
		AuthorName:  gofakeit.Name(),
		Title:       gofakeit.Dinner(),
		Description: gofakeit.Sentence(8),
		Timestamp:   suite.clock.UnixMilli(),
		Likes:       gofakeit.Number(0, 100),
	}
}

func (suite *FeedServiceTestSuite) TestList() {
	suite.Run("EmptyStore_ShouldSeedStarterPosts", func() {
		// Act
		posts, err := suite.service.List(suite.ctx)

		// Assert
		suite.Require().NoError(err)
		suite.Len(posts, 4)
		suite.Equal("My Famous Lasagna", posts[0].Title)
		suite.Equal(150, posts[0].Likes)

		// Seeding persists, so a second read returns the same feed.
		var stored []domain.Post
		found, err := suite.repo.Load(suite.ctx, user.Anonymous(), outbound.KindCommunityPosts, &stored)
		suite.Require().NoError(err)
		suite.True(found)
		suite.Len(stored, 4)
	})

	suite.Run("ExistingPosts_ShouldNotReseed", func() {
		// Arrange
		posts := []domain.Post{suite.fakePost("custom1")}
		suite.Require().NoError(suite.repo.Save(suite.ctx, user.Anonymous(), outbound.KindCommunityPosts, posts))

		// Act
		got, err := suite.service.List(suite.ctx)

		// Assert
		suite.Require().NoError(err)
		suite.Len(got, 1)
		suite.Equal("custom1", got[0].ID)
	})
}

func (suite *FeedServiceTestSuite) TestLike() {
	suite.Run("SignedIn_ShouldIncrementLikes", func() {
		// Arrange
		post := suite.fakePost("liked1")
		post.Likes = 7
		suite.Require().NoError(suite.repo.Save(suite.ctx, user.Anonymous(), outbound.KindCommunityPosts, []domain.Post{post}))

		// Act
		updated, err := suite.service.Like(suite.ctx, suite.signedInUser(), "liked1")

		// Assert
		suite.Require().NoError(err)
		suite.Equal(8, updated.Likes)

		got, err := suite.service.List(suite.ctx)
		suite.Require().NoError(err)
		suite.Equal(8, got[0].Likes)
	})

	suite.Run("Anonymous_ShouldBeRejected", func() {
		_, err := suite.service.Like(suite.ctx, nil, "post1")

		suite.Require().Error(err)
		suite.Equal(apperrors.CodeUnauthorized, apperrors.GetCode(err))
	})

	suite.Run("UnknownPost_ShouldBeNotFound", func() {
		_, err := suite.service.Like(suite.ctx, suite.signedInUser(), "missing")

		suite.Require().Error(err)
		suite.Equal(apperrors.CodeNotFound, apperrors.GetCode(err))
	})

	suite.Run("EmptyStore_ShouldSeedThenLike", func() {
		// No prior feed stored under a fresh repository.
		repo := memory.NewRepository()
		service := NewService(repo, zap.NewNop())

		updated, err := service.Like(suite.ctx, suite.signedInUser(), "post2")

		suite.Require().NoError(err)
		suite.Equal(76, updated.Likes)
	})
}

func TestFeedServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FeedServiceTestSuite))
}
