// Package mealplan implements the calendar entitlement engine: tier checks
// on entry placement and deterministic conflict handling. The add and move
// paths silently evict a free-tier conflict in favor of the incoming entry,
// while the update path rejects the same conflict with a message. That
// asymmetry is carried over deliberately; see DESIGN.md.
package mealplan

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/recipify/v2/internal/domain/entitlement"
	domain "github.com/recipify/v2/internal/domain/mealplan"
	"github.com/recipify/v2/internal/domain/recipe"
	"github.com/recipify/v2/internal/domain/user"
	"github.com/recipify/v2/internal/ports/outbound"
	"github.com/recipify/v2/pkg/dateutil"
	apperrors "github.com/recipify/v2/pkg/errors"
)

// Service enforces calendar entitlements and mutates the entry list. The
// list is kept sorted by (date desc, timestamp desc) after every mutation.
type Service struct {
	repo   outbound.StateRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a meal-plan service.
func NewService(repo outbound.StateRepository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.Named("mealplan-service"),
		now:    time.Now,
	}
}

// Entries returns the user's calendar entries in display order. A missing or
// unreadable blob reads as an empty calendar.
func (s *Service) Entries(ctx context.Context, u *user.User) []domain.Entry {
	if u == nil {
		return nil
	}
	return s.loadEntries(ctx, user.ScopeOf(u))
}

// Add places a recipe at (date, slot). A non-empty customSlot overrides slot
// for paid users only; free users supplying one are denied the custom-slot
// feature. On the free tier an existing entry at the target slot is evicted
// in favor of the new one.
func (s *Service) Add(ctx context.Context, u *user.User, rec recipe.MinimalInfo, date string, slot domain.Slot, customSlot string) (entitlement.Decision, error) {
	if u == nil {
		return entitlement.DenySignIn("Sign in to plan your meals."), nil
	}
	finalSlot := resolveSlot(slot, customSlot, u.IsPaid())
	if finalSlot == "" {
		return entitlement.Decision{}, apperrors.NewValidationError("slot name cannot be empty")
	}
	if _, err := dateutil.ParseDay(date); err != nil {
		return entitlement.Decision{}, apperrors.NewValidationError("date must be YYYY-MM-DD")
	}

	now := s.now()
	if !u.IsPaid() {
		if dateutil.AfterDay(date, dateutil.DayString(now)) {
			return entitlement.DenyUpsell("Free users can only log meals for today or past dates.", entitlement.Upsell{
				FeatureName:    "Future Meal Planning",
				LimitDetails:   "Free users can only log meals for today or past dates.",
				PremiumBenefit: "Plan your meals ahead with Recipify Pro!",
			}), nil
		}
		if dateutil.BeforeDay(date, dateutil.DaysAgo(now, user.FreeCalendarViewDays)) {
			return entitlement.DenyUpsell(
				fmt.Sprintf("Free users can log meals only within the last %d days.", user.FreeCalendarViewDays),
				pastWindowUpsell("Free users can log meals only within the last %d days."),
			), nil
		}
		if customSlot != "" || !finalSlot.IsStandard() {
			return entitlement.DenyUpsell("Custom meal slots are a premium feature.", entitlement.Upsell{
				FeatureName:    "Custom Meal Slots",
				LimitDetails:   "Custom meal slots are a premium feature.",
				PremiumBenefit: "Organize your meal plan with custom slots in Recipify Pro!",
			}), nil
		}
	}

	scope := user.ScopeOf(u)
	entries := s.loadEntries(ctx, scope)
	if !u.IsPaid() {
		entries = evict(entries, date, finalSlot, "")
	}
	entries = append(entries, domain.NewEntry(rec.ID, rec.Title, date, finalSlot, now))
	domain.SortEntries(entries)
	s.saveEntries(ctx, scope, entries)
	return entitlement.Allow(), nil
}

// Update rewrites an entry's date, slot or both. Unlike Add, a free-tier
// conflict at the target slot rejects the update instead of evicting.
func (s *Service) Update(ctx context.Context, u *user.User, entryID, newDate string, newSlot domain.Slot, newCustomSlot string) (entitlement.Decision, error) {
	if u == nil {
		return entitlement.DenySignIn("Please sign in to update calendar entries."), nil
	}
	scope := user.ScopeOf(u)
	entries := s.loadEntries(ctx, scope)
	idx := indexOf(entries, entryID)
	if idx < 0 {
		return entitlement.Decision{}, apperrors.NewAppError(apperrors.CodeEntryNotFound, "Entry not found.", "")
	}

	finalDate := newDate
	if finalDate == "" {
		finalDate = entries[idx].Date
	}
	finalSlot := entries[idx].Slot
	if newSlot != "" {
		finalSlot = newSlot
	}
	if newCustomSlot != "" && u.IsPaid() {
		finalSlot = domain.Slot(strings.TrimSpace(newCustomSlot))
	}
	if finalSlot == "" {
		return entitlement.Decision{}, apperrors.NewValidationError("slot name cannot be empty")
	}

	now := s.now()
	if !u.IsPaid() {
		if dateutil.AfterDay(finalDate, dateutil.DayString(now)) {
			return entitlement.DenyUpsell("Free users cannot move meals to future dates.", entitlement.Upsell{
				FeatureName:    "Future Meal Planning",
				LimitDetails:   "Free users cannot move meals to future dates.",
				PremiumBenefit: "Plan your meals ahead with Recipify Pro!",
			}), nil
		}
		if dateutil.BeforeDay(finalDate, dateutil.DaysAgo(now, user.FreeCalendarViewDays)) {
			return entitlement.DenyUpsell(
				fmt.Sprintf("Free users can move meals only within the last %d days.", user.FreeCalendarViewDays),
				pastWindowUpsell("Free users can move meals only within the last %d days."),
			), nil
		}
		if newCustomSlot != "" || !finalSlot.IsStandard() {
			return entitlement.DenyUpsell("Custom meal slots are a premium feature.", entitlement.Upsell{
				FeatureName:    "Custom Meal Slots",
				LimitDetails:   "Custom meal slots are a premium feature.",
				PremiumBenefit: "Organize your meal plan with custom slots in Recipify Pro!",
			}), nil
		}
		if conflict := findConflict(entries, finalDate, finalSlot, entryID); conflict != nil {
			return entitlement.Deny(fmt.Sprintf(
				"The slot '%s' on %s is already taken by %q. Free users can only have one item per slot.",
				finalSlot, finalDate, conflict.RecipeTitle,
			)), nil
		}
	}

	entries[idx].Date = finalDate
	entries[idx].Slot = finalSlot
	entries[idx].Timestamp = now.UnixMilli()
	domain.SortEntries(entries)
	s.saveEntries(ctx, scope, entries)
	return entitlement.Allow(), nil
}

// Move relocates an entry to (newDate, newSlot), evicting a free-tier
// conflict like Add does. Moving an entry onto its own slot is a no-op.
func (s *Service) Move(ctx context.Context, u *user.User, entryID, newDate string, newSlot domain.Slot) (entitlement.Decision, error) {
	if u == nil {
		return entitlement.DenySignIn("Sign in to plan your meals."), nil
	}
	scope := user.ScopeOf(u)
	entries := s.loadEntries(ctx, scope)
	idx := indexOf(entries, entryID)
	if idx < 0 {
		return entitlement.Decision{}, apperrors.NewAppError(apperrors.CodeEntryNotFound, "Entry not found.", "")
	}
	if entries[idx].Date == newDate && entries[idx].Slot == newSlot {
		return entitlement.Allow(), nil
	}

	now := s.now()
	if !u.IsPaid() {
		if dateutil.AfterDay(newDate, dateutil.DayString(now)) {
			return entitlement.DenyUpsell("Free users cannot move meals to future dates.", entitlement.Upsell{
				FeatureName:    "Future Meal Planning",
				LimitDetails:   "Free users cannot move meals to future dates.",
				PremiumBenefit: "Plan your meals ahead with Recipify Pro!",
			}), nil
		}
		if dateutil.BeforeDay(newDate, dateutil.DaysAgo(now, user.FreeCalendarViewDays)) {
			return entitlement.DenyUpsell(
				fmt.Sprintf("Free users can move meals only within the last %d days.", user.FreeCalendarViewDays),
				pastWindowUpsell("Free users can move meals only within the last %d days."),
			), nil
		}
		if !newSlot.IsStandard() {
			return entitlement.DenyUpsell("Free users cannot use custom meal slots.", entitlement.Upsell{
				FeatureName:    "Custom Meal Slots",
				LimitDetails:   "Free users cannot use custom meal slots.",
				PremiumBenefit: "Organize with custom slots in Recipify Pro!",
			}), nil
		}
		entries = evict(entries, newDate, newSlot, entryID)
		idx = indexOf(entries, entryID)
	}

	entries[idx].Date = newDate
	entries[idx].Slot = newSlot
	entries[idx].Timestamp = now.UnixMilli()
	domain.SortEntries(entries)
	s.saveEntries(ctx, scope, entries)
	return entitlement.Allow(), nil
}

// Remove deletes an entry. Removing an unknown id is a no-op.
func (s *Service) Remove(ctx context.Context, u *user.User, entryID string) error {
	if u == nil {
		return apperrors.NewUnauthorizedError("")
	}
	scope := user.ScopeOf(u)
	entries := s.loadEntries(ctx, scope)
	kept := entries[:0]
	for _, e := range entries {
		if e.ID != entryID {
			kept = append(kept, e)
		}
	}
	s.saveEntries(ctx, scope, kept)
	return nil
}

// EntriesForDay returns the entries placed on one calendar day.
func (s *Service) EntriesForDay(ctx context.Context, u *user.User, date string) []domain.Entry {
	var out []domain.Entry
	for _, e := range s.Entries(ctx, u) {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

func resolveSlot(slot domain.Slot, customSlot string, isPaid bool) domain.Slot {
	if customSlot != "" && isPaid {
		return domain.Slot(strings.TrimSpace(customSlot))
	}
	return slot
}

func pastWindowUpsell(limitFormat string) entitlement.Upsell {
	return entitlement.Upsell{
		FeatureName:    "Extended Past Meal Logging",
		LimitDetails:   fmt.Sprintf(limitFormat, user.FreeCalendarViewDays),
		PremiumBenefit: fmt.Sprintf("Upgrade to Pro to access and manage your full meal history beyond %d days.", user.FreeCalendarViewDays),
	}
}

func indexOf(entries []domain.Entry, id string) int {
	for i, e := range entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// evict drops any entry occupying (date, slot) other than keepID.
func evict(entries []domain.Entry, date string, slot domain.Slot, keepID string) []domain.Entry {
	kept := entries[:0]
	for _, e := range entries {
		if e.Date == date && e.Slot == slot && e.ID != keepID {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

func findConflict(entries []domain.Entry, date string, slot domain.Slot, excludeID string) *domain.Entry {
	for i, e := range entries {
		if e.ID != excludeID && e.Date == date && e.Slot == slot {
			return &entries[i]
		}
	}
	return nil
}

func (s *Service) loadEntries(ctx context.Context, scope user.Scope) []domain.Entry {
	var entries []domain.Entry
	if _, err := s.repo.Load(ctx, scope, outbound.KindCalendarEntries, &entries); err != nil {
		s.logger.Warn("failed to load calendar entries, using empty calendar", zap.Error(err))
		return nil
	}
	return entries
}

func (s *Service) saveEntries(ctx context.Context, scope user.Scope, entries []domain.Entry) {
	if entries == nil {
		entries = []domain.Entry{}
	}
	if err := s.repo.Save(ctx, scope, outbound.KindCalendarEntries, entries); err != nil {
		s.logger.Warn("failed to save calendar entries", zap.Error(err))
	}
}
