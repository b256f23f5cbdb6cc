// Package feed implements the community feed: a shared, globally scoped
// list of posts seeded on first read. Browsing is open to everyone;
// reacting requires a signed-in account.
package feed

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/recipify/v2/internal/domain/feed"
	"github.com/recipify/v2/internal/domain/user"
	"github.com/recipify/v2/internal/ports/outbound"
	apperrors "github.com/recipify/v2/pkg/errors"
)

// Service manages the community feed.
type Service struct {
	repo   outbound.StateRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates the feed service.
func NewService(repo outbound.StateRepository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.Named("feed-service"),
		now:    time.Now,
	}
}

// List returns the feed, newest first. An empty store is seeded with the
// starter posts so the feed is never blank.
func (s *Service) List(ctx context.Context) ([]domain.Post, error) {
	posts, found := s.loadPosts(ctx)
	if !found {
		posts = s.seedPosts()
		s.savePosts(ctx, posts)
	}
	return posts, nil
}

// Like records one like on a post for a signed-in user. Anonymous visitors
// are rejected; the caller prompts them to sign in.
func (s *Service) Like(ctx context.Context, u *user.User, postID string) (*domain.Post, error) {
	if u == nil {
		return nil, apperrors.NewUnauthorizedError("Please sign in to like posts.")
	}

	posts, found := s.loadPosts(ctx)
	if !found {
		posts = s.seedPosts()
	}

	for i := range posts {
		if posts[i].ID == postID {
			posts[i].Likes++
			s.savePosts(ctx, posts)
			return &posts[i], nil
		}
	}
	return nil, apperrors.NewNotFoundError("post")
}

// seedPosts returns the starter feed content, timestamped relative to now.
func (s *Service) seedPosts() []domain.Post {
	now := s.now().UnixMilli()
	const day = int64(24 * time.Hour / time.Millisecond)
	return []domain.Post{
		{
			ID: "post1", AuthorID: "user123", AuthorName: "Chef Recipify", IsAuthorPro: true,
			Title:       "My Famous Lasagna",
			Description: "A classic lasagna recipe that everyone loves!",
			Timestamp:   now - 2*day, Likes: 150, CommentsCount: 12,
			ImageURL: "https://via.placeholder.com/600x400.png?text=Lasagna",
			RecipeID: "recipe-lasagna-1",
			Tags:     []string{"italian", "pasta", "comfortfood"},
		},
		{
			ID: "post2", AuthorID: "user456", AuthorName: "Foodie Fan", IsAuthorPro: false,
			Title:       "Quick Weeknight Stir-fry",
			Description: "Super easy and delicious stir-fry for busy nights.",
			Timestamp:   now - day, Likes: 75, CommentsCount: 5,
			ImageURL: "https://via.placeholder.com/600x400.png?text=Stir-fry",
			RecipeID: "recipe-stirfry-2",
			Tags:     []string{"asian", "quickmeal", "healthy"},
		},
		{
			ID: "post3", AuthorID: "user789", AuthorName: "Baker Extraordinaire", IsAuthorPro: true,
			Title:       "Ultimate Chocolate Chip Cookies",
			Description: "The only chocolate chip cookie recipe you will ever need. So chewy and good!",
			Timestamp:   now - 5*day, Likes: 230, CommentsCount: 25,
			ImageURL: "https://via.placeholder.com/600x400.png?text=Cookies",
			Tags:     []string{"dessert", "baking", "cookies", "chocolate"},
		},
		{
			ID: "post4", AuthorID: "user123", AuthorName: "Chef Recipify", IsAuthorPro: true,
			Title:       "Refreshing Summer Salad",
			Description: "A light and vibrant salad perfect for warm days. Packed with seasonal veggies.",
			Timestamp:   now - day/2, Likes: 45, CommentsCount: 3,
			ImageURL: "https://via.placeholder.com/600x400.png?text=Summer+Salad",
			RecipeID: "recipe-salad-3",
			Tags:     []string{"salad", "healthy", "summer", "vegetarian"},
		},
	}
}

func (s *Service) loadPosts(ctx context.Context) ([]domain.Post, bool) {
	var posts []domain.Post
	found, err := s.repo.Load(ctx, user.Anonymous(), outbound.KindCommunityPosts, &posts)
	if err != nil {
		s.logger.Warn("failed to load community posts", zap.Error(err))
		return nil, false
	}
	return posts, found
}

func (s *Service) savePosts(ctx context.Context, posts []domain.Post) {
	if err := s.repo.Save(ctx, user.Anonymous(), outbound.KindCommunityPosts, posts); err != nil {
		s.logger.Warn("failed to save community posts", zap.Error(err))
	}
}
