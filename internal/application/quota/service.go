package quota

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/recipify/v2/internal/domain/entitlement"
	"github.com/recipify/v2/internal/domain/user"
	"github.com/recipify/v2/internal/ports/outbound"
	"github.com/recipify/v2/pkg/dateutil"
)

// Service is the quota engine. Storage reads fail open to the zero status and
// storage writes are logged and swallowed, so a degraded store never blocks a
// generation that the counters would allow.
type Service struct {
	repo   outbound.StateRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a quota service.
func NewService(repo outbound.StateRepository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.Named("quota-service"),
		now:    time.Now,
	}
}

// CanGenerate decides whether a generation is permitted right now.
// Anonymous exhaustion produces a sign-in prompt, never an upsell; the
// upsell is reserved for authenticated free users at their daily cap.
// Surprise generations bypass the free-tier daily cap check; only standard
// generations are blocked by it.
func (s *Service) CanGenerate(ctx context.Context, u *user.User, surprise bool) entitlement.Decision {
	now := s.now()

	if u == nil {
		var anon AnonymousGenerationStatus
		s.load(ctx, user.Anonymous(), outbound.KindAnonymousGeneration, &anon)
		if anon.Count >= user.AnonymousFreeGenerations {
			return entitlement.DenySignIn("You've used your free recipe generation. Sign in to keep cooking.")
		}
		return entitlement.Allow()
	}

	scope := user.ScopeOf(u)
	var stored UserGenerationStatus
	s.load(ctx, scope, outbound.KindGenerationStatus, &stored)
	status := stored.ForDay(now)

	if u.IsPaid() {
		if status.Count >= user.PremiumGenerationsPerDay {
			return entitlement.Deny(fmt.Sprintf("You've used your %d recipe generations for today.", user.PremiumGenerationsPerDay))
		}
		return entitlement.Allow()
	}

	if surprise {
		return entitlement.Allow()
	}

	limit := user.FreeGenerationsPerDay + status.ExtraGenerationsGranted
	if status.Count >= limit {
		d := entitlement.DenyUpsell(
			fmt.Sprintf("You've used your %d recipe generations for today.", limit),
			entitlement.Upsell{
				FeatureName:    "Recipe Generations",
				LimitDetails:   fmt.Sprintf("You've used your %d recipe generations for today.", limit),
				PremiumBenefit: fmt.Sprintf("Get up to %d daily generations with Recipify Pro.", user.PremiumGenerationsPerDay),
			},
		)
		d.ExtraGrantAvailable = status.ExtraGenerationsGranted < 1
		return d
	}
	return entitlement.Allow()
}

// RecordGeneration counts one successful generation against the caller's
// quota. Surprise and standard generations share the authenticated counter.
func (s *Service) RecordGeneration(ctx context.Context, u *user.User) {
	now := s.now()

	if u == nil {
		var anon AnonymousGenerationStatus
		s.load(ctx, user.Anonymous(), outbound.KindAnonymousGeneration, &anon)
		anon.Count++
		s.save(ctx, user.Anonymous(), outbound.KindAnonymousGeneration, anon)
		return
	}

	scope := user.ScopeOf(u)
	var stored UserGenerationStatus
	s.load(ctx, scope, outbound.KindGenerationStatus, &stored)
	status := stored.ForDay(now)
	status.Count++
	status.LastUsedDate = dateutil.DayString(now)
	s.save(ctx, scope, outbound.KindGenerationStatus, status)
}

// RecordSurpriseUse counts one surprise generation in the weekly window:
// reset to 1 when seven days have passed since the last use, increment
// otherwise. Anonymous surprise uses are counted by RecordGeneration alone.
func (s *Service) RecordSurpriseUse(ctx context.Context, u *user.User) {
	if u == nil {
		return
	}
	now := s.now()
	scope := user.ScopeOf(u)

	var stored SurpriseMeStatus
	s.load(ctx, scope, outbound.KindSurpriseMeStatus, &stored)
	status := stored.ForWindow(now)
	status.CountThisWeek++
	status.LastUsedTimestamp = now.UnixMilli()
	s.save(ctx, scope, outbound.KindSurpriseMeStatus, status)
}

// GrantExtra adds one bonus generation to today's allowance. The engine does
// not cap repeated grants; the single-use affordance is the caller's concern.
func (s *Service) GrantExtra(ctx context.Context, u *user.User) entitlement.Decision {
	if u == nil {
		return entitlement.DenySignIn("Sign in to earn extra generations.")
	}
	scope := user.ScopeOf(u)

	var stored UserGenerationStatus
	s.load(ctx, scope, outbound.KindGenerationStatus, &stored)
	status := stored.ForDay(s.now())
	status.ExtraGenerationsGranted++
	s.save(ctx, scope, outbound.KindGenerationStatus, status)
	return entitlement.Allow()
}

// Status reports current quota standing for display.
func (s *Service) Status(ctx context.Context, u *user.User) Snapshot {
	now := s.now()

	if u == nil {
		var anon AnonymousGenerationStatus
		s.load(ctx, user.Anonymous(), outbound.KindAnonymousGeneration, &anon)
		return Snapshot{Used: anon.Count, Limit: user.AnonymousFreeGenerations}
	}

	scope := user.ScopeOf(u)
	var stored UserGenerationStatus
	s.load(ctx, scope, outbound.KindGenerationStatus, &stored)
	status := stored.ForDay(now)

	var surprise SurpriseMeStatus
	s.load(ctx, scope, outbound.KindSurpriseMeStatus, &surprise)

	limit := u.DailyGenerationLimit()
	if !u.IsPaid() {
		limit += status.ExtraGenerationsGranted
	}
	return Snapshot{
		Used:                 status.Count,
		Limit:                limit,
		ExtraGranted:         status.ExtraGenerationsGranted,
		SurpriseUsedThisWeek: surprise.ForWindow(now).CountThisWeek,
		SignedIn:             true,
	}
}

// ResetOnUpgrade zeroes the daily and weekly counters when a user upgrades,
// so the new tier starts with a clean allowance.
func (s *Service) ResetOnUpgrade(ctx context.Context, u *user.User) {
	if u == nil {
		return
	}
	scope := user.ScopeOf(u)
	s.save(ctx, scope, outbound.KindGenerationStatus, UserGenerationStatus{
		LastUsedDate: dateutil.DayString(s.now()),
	})
	s.save(ctx, scope, outbound.KindSurpriseMeStatus, SurpriseMeStatus{})
}

// ClearAnonymous discards the anonymous usage blob, called on sign-in so the
// device's anonymous allowance does not leak into the account session.
func (s *Service) ClearAnonymous(ctx context.Context) {
	if err := s.repo.Delete(ctx, user.Anonymous(), outbound.KindAnonymousGeneration); err != nil {
		s.logger.Warn("failed to clear anonymous generation status", zap.Error(err))
	}
}

// load reads a status blob, failing open to the untouched zero value.
func (s *Service) load(ctx context.Context, scope user.Scope, kind outbound.EntityKind, v any) {
	if _, err := s.repo.Load(ctx, scope, kind, v); err != nil {
		s.logger.Warn("failed to load quota status, using defaults",
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
	}
}

// save writes a status blob, logging and swallowing failures.
func (s *Service) save(ctx context.Context, scope user.Scope, kind outbound.EntityKind, v any) {
	if err := s.repo.Save(ctx, scope, kind, v); err != nil {
		s.logger.Warn("failed to save quota status",
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
	}
}
