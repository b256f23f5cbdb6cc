// Package progress implements the achievement and XP engine. Every
// qualifying action routes through here so that each mutation is followed by
// one unlock pass over the registry.
package progress

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/recipify/v2/internal/domain/progress"
	"github.com/recipify/v2/internal/domain/user"
	"github.com/recipify/v2/internal/ports/outbound"
	"github.com/recipify/v2/pkg/dateutil"
)

// Service accumulates metrics and evaluates unlock predicates. Progress is
// authenticated-only; every method is a no-op for the anonymous caller.
// Storage reads fail open to fresh progress and writes are logged and
// swallowed, like the rest of the per-user state.
type Service struct {
	repo   outbound.StateRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a progress service.
func NewService(repo outbound.StateRepository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.Named("progress-service"),
		now:    time.Now,
	}
}

// Get returns the user's progress, fresh progress when none is stored.
func (s *Service) Get(ctx context.Context, u *user.User) domain.Progress {
	if u == nil {
		return domain.Progress{}
	}
	return s.load(ctx, u)
}

// RecordGenerated counts one successful recipe generation.
func (s *Service) RecordGenerated(ctx context.Context, u *user.User) (domain.Progress, *domain.Achievement) {
	if u == nil {
		return domain.Progress{}, nil
	}
	p := s.load(ctx, u)
	p.Metrics.GeneratedRecipeCount++
	return s.finish(ctx, u, p)
}

// RecordCooked counts a cook and advances the daily streak: a second cook on
// the same day leaves the streak untouched, a cook the day after the last
// one extends it, and any larger gap restarts it at 1.
func (s *Service) RecordCooked(ctx context.Context, u *user.User) (domain.Progress, *domain.Achievement) {
	if u == nil {
		return domain.Progress{}, nil
	}
	now := s.now()
	p := s.load(ctx, u)
	p.Metrics.CookedRecipeCount++

	today := dateutil.DayString(now)
	if p.LastCookedDate != today {
		if dateutil.IsYesterdayOf(p.LastCookedDate, now) {
			p.CurrentStreak++
		} else {
			p.CurrentStreak = 1
		}
		p.LastCookedDate = today
		if p.CurrentStreak > p.LongestStreak {
			p.LongestStreak = p.CurrentStreak
		}
	}
	return s.finish(ctx, u, p)
}

// AddDistinctIngredients unions canonical ingredient names into the
// distinct-ingredient metric.
func (s *Service) AddDistinctIngredients(ctx context.Context, u *user.User, names []string) (domain.Progress, *domain.Achievement) {
	if u == nil || len(names) == 0 {
		return s.Get(ctx, u), nil
	}
	p := s.load(ctx, u)
	p.AddDistinctIngredients(names)
	return s.finish(ctx, u, p)
}

// SetSavedCount records the authoritative size of the saved-recipes list.
func (s *Service) SetSavedCount(ctx context.Context, u *user.User, count int) (domain.Progress, *domain.Achievement) {
	if u == nil {
		return domain.Progress{}, nil
	}
	p := s.load(ctx, u)
	p.Metrics.SavedRecipeCount = count
	return s.finish(ctx, u, p)
}

// CheckAndUnlock runs a bare unlock pass with no metric change, used after
// actions like a tier upgrade that alter predicate inputs directly.
func (s *Service) CheckAndUnlock(ctx context.Context, u *user.User) (domain.Progress, *domain.Achievement) {
	if u == nil {
		return domain.Progress{}, nil
	}
	return s.finish(ctx, u, s.load(ctx, u))
}

// MarkViewed dismisses the "new" badge for an unlocked achievement.
func (s *Service) MarkViewed(ctx context.Context, u *user.User, id domain.AchievementID) domain.Progress {
	if u == nil {
		return domain.Progress{}
	}
	p := s.load(ctx, u)
	if !p.HasViewed(id) {
		p.ViewedAchievements = append(p.ViewedAchievements, id)
		s.save(ctx, u, p)
	}
	return p
}

// finish runs one unlock pass over the registry in declaration order,
// awarding at most one achievement per pass, then persists.
func (s *Service) finish(ctx context.Context, u *user.User, p domain.Progress) (domain.Progress, *domain.Achievement) {
	var unlocked *domain.Achievement
	for _, a := range domain.Registry() {
		if p.HasUnlocked(a.ID) || !a.IsUnlocked(p, u.IsPaid()) {
			continue
		}
		p.XP += a.XP
		p.UnlockedAchievementIDs = append(p.UnlockedAchievementIDs, a.ID)
		ach := a
		unlocked = &ach
		break
	}
	s.save(ctx, u, p)
	return p, unlocked
}

func (s *Service) load(ctx context.Context, u *user.User) domain.Progress {
	p := domain.New(u.ID())
	if _, err := s.repo.Load(ctx, user.ScopeOf(u), outbound.KindUserProgress, &p); err != nil {
		s.logger.Warn("failed to load user progress, starting fresh", zap.Error(err))
		return domain.New(u.ID())
	}
	if p.UserID == "" {
		p.UserID = u.ID()
	}
	return p
}

func (s *Service) save(ctx context.Context, u *user.User, p domain.Progress) {
	if err := s.repo.Save(ctx, user.ScopeOf(u), outbound.KindUserProgress, p); err != nil {
		s.logger.Warn("failed to save user progress", zap.Error(err))
	}
}
