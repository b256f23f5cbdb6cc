// Package account handles session lifecycle side effects: migrating a
// visitor into a signed-in session and flipping the subscription tier.
package account

import (
	"context"

	"go.uber.org/zap"

	"github.com/recipify/v2/internal/application/progress"
	"github.com/recipify/v2/internal/application/quota"
	progressdomain "github.com/recipify/v2/internal/domain/progress"
	"github.com/recipify/v2/internal/domain/user"
)

// Service coordinates the cross-cutting effects of sign-in and tier changes.
type Service struct {
	quota    *quota.Service
	progress *progress.Service
	logger   *zap.Logger
}

// NewService creates the account service.
func NewService(quotaSvc *quota.Service, progressSvc *progress.Service, logger *zap.Logger) *Service {
	return &Service{
		quota:    quotaSvc,
		progress: progressSvc,
		logger:   logger.Named("account-service"),
	}
}

// Session is the state a client needs right after authenticating.
type Session struct {
	User     *user.User
	Quota    quota.Snapshot
	Progress progressdomain.Progress
}

// SignIn completes authentication: the anonymous allowance is cleared so a
// future sign-out starts fresh, and the user's quota and progress are
// loaded for the client.
func (s *Service) SignIn(ctx context.Context, u *user.User) Session {
	s.quota.ClearAnonymous(ctx)
	s.logger.Info("user signed in", zap.String("userId", u.ID()), zap.Bool("isPaid", u.IsPaid()))

	return Session{
		User:     u,
		Quota:    s.quota.Status(ctx, u),
		Progress: s.progress.Get(ctx, u),
	}
}

// SetTier flips the subscription tier. Upgrading resets both generation
// counters so Pro limits apply immediately, and runs an achievement pass for
// the premium unlock. Downgrading keeps all counters as they are.
func (s *Service) SetTier(ctx context.Context, u *user.User, paid bool) (Session, *progressdomain.Achievement) {
	wasPaid := u.IsPaid()
	u.SetPaid(paid)

	var unlocked *progressdomain.Achievement
	if paid && !wasPaid {
		s.quota.ResetOnUpgrade(ctx, u)
		_, unlocked = s.progress.CheckAndUnlock(ctx, u)
		s.logger.Info("user upgraded to pro", zap.String("userId", u.ID()))
	} else if !paid && wasPaid {
		s.logger.Info("user downgraded from pro", zap.String("userId", u.ID()))
	}

	return Session{
		User:     u,
		Quota:    s.quota.Status(ctx, u),
		Progress: s.progress.Get(ctx, u),
	}, unlocked
}
