// Package pantry manages the kitchen ingredient set, the generator
// selection, the recently-used quick lists, and batch resolution of
// free-text ingredient names against the catalog.
package pantry

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/recipify/v2/internal/domain/ingredient"
	"github.com/recipify/v2/internal/domain/user"
	"github.com/recipify/v2/internal/ports/outbound"
	apperrors "github.com/recipify/v2/pkg/errors"
)

// MaxRecentItems caps the recently-used and recently-added quick lists.
const MaxRecentItems = 7

// BatchOutcome partitions one batch-add input into its four per-name
// buckets plus the rendered summary message.
type BatchOutcome struct {
	Added          []string `json:"added"`
	NotFound       []string `json:"notFound"`
	AlreadyPresent []string `json:"alreadyPresent"`
	LimitReached   []string `json:"limitReached"`
	Message        string   `json:"message"`
}

// Service owns the kitchen and selection ingredient sets. Both are insertion
// ordered and deduplicated by id; only the generator selection is capped.
type Service struct {
	repo    outbound.StateRepository
	catalog *ingredient.Catalog
	logger  *zap.Logger
}

// NewService creates a pantry service over the given catalog.
func NewService(repo outbound.StateRepository, catalog *ingredient.Catalog, logger *zap.Logger) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
		logger:  logger.Named("pantry-service"),
	}
}

// Catalog exposes the underlying ingredient catalog.
func (s *Service) Catalog() *ingredient.Catalog {
	return s.catalog
}

// Kitchen returns the user's kitchen ingredients in insertion order.
func (s *Service) Kitchen(ctx context.Context, u *user.User) []ingredient.Item {
	var items []ingredient.Item
	s.load(ctx, u, outbound.KindMyKitchen, &items)
	return items
}

// AddToKitchen adds a catalog item to the kitchen, also promoting it in the
// recently-added quick list. Duplicates are ignored.
func (s *Service) AddToKitchen(ctx context.Context, u *user.User, item ingredient.Item) error {
	if u == nil {
		return apperrors.NewUnauthorizedError("Please sign in to manage your kitchen.")
	}
	kitchen := s.Kitchen(ctx, u)
	for _, existing := range kitchen {
		if existing.ID == item.ID {
			return nil
		}
	}
	kitchen = append(kitchen, item)
	s.save(ctx, u, outbound.KindMyKitchen, kitchen)

	var recent []ingredient.Item
	s.load(ctx, u, outbound.KindRecentlyAdded, &recent)
	s.save(ctx, u, outbound.KindRecentlyAdded, promote(recent, item))
	return nil
}

// RemoveFromKitchen drops an ingredient from the kitchen.
func (s *Service) RemoveFromKitchen(ctx context.Context, u *user.User, itemID string) error {
	if u == nil {
		return apperrors.NewUnauthorizedError("Please sign in to manage your kitchen.")
	}
	kitchen := s.Kitchen(ctx, u)
	kept := kitchen[:0]
	for _, item := range kitchen {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	s.save(ctx, u, outbound.KindMyKitchen, kept)
	return nil
}

// RecentlyAddedToKitchen returns the recently-added quick list.
func (s *Service) RecentlyAddedToKitchen(ctx context.Context, u *user.User) []ingredient.Item {
	var items []ingredient.Item
	s.load(ctx, u, outbound.KindRecentlyAdded, &items)
	return items
}

// RecentlyUsedForGenerator returns the ingredients used by the most recent
// standard generation.
func (s *Service) RecentlyUsedForGenerator(ctx context.Context, u *user.User) []ingredient.Item {
	var items []ingredient.Item
	s.load(ctx, u, outbound.KindRecentlyUsed, &items)
	return items
}

// RecordGeneratorUse remembers the ingredients of a standard generation for
// the quick list, capped at MaxRecentItems.
func (s *Service) RecordGeneratorUse(ctx context.Context, u *user.User, names []string) {
	var items []ingredient.Item
	for _, name := range names {
		if item, ok := s.catalog.Lookup(name); ok {
			items = append(items, item)
		}
	}
	if len(items) > MaxRecentItems {
		items = items[:MaxRecentItems]
	}
	s.save(ctx, u, outbound.KindRecentlyUsed, items)
}

// AddAllFromKitchen merges the kitchen into the selection up to the
// selection cap, returning the updated selection and a summary message.
func (s *Service) AddAllFromKitchen(ctx context.Context, u *user.User, selection []ingredient.Item) ([]ingredient.Item, string) {
	kitchen := s.Kitchen(ctx, u)
	selected := make(map[string]bool, len(selection))
	for _, item := range selection {
		selected[item.ID] = true
	}
	var toAdd []ingredient.Item
	for _, item := range kitchen {
		if !selected[item.ID] {
			toAdd = append(toAdd, item)
		}
	}
	slots := ingredient.MaxSelection - len(selection)
	if slots < 0 {
		slots = 0
	}
	overflow := len(toAdd) > slots
	if overflow {
		toAdd = toAdd[:slots]
	}
	updated := append(selection, toAdd...)

	switch {
	case overflow:
		return updated, fmt.Sprintf("Added %d ingredients. Max limit reached.", len(toAdd))
	case len(toAdd) > 0:
		return updated, fmt.Sprintf("Added %d ingredients from your kitchen.", len(toAdd))
	case len(kitchen) > 0:
		return updated, "All your kitchen ingredients are already in the selection."
	default:
		return updated, "Your kitchen is empty."
	}
}

// BatchAddToSelection resolves free-text names into the generator selection,
// bounded by the selection cap.
func (s *Service) BatchAddToSelection(ctx context.Context, u *user.User, selection []ingredient.Item, names []string) ([]ingredient.Item, BatchOutcome) {
	return s.batchAdd(selection, names, ingredient.MaxSelection)
}

// BatchAddToKitchen resolves free-text names into the kitchen, which has no
// cap. Requires a signed-in user.
func (s *Service) BatchAddToKitchen(ctx context.Context, u *user.User, names []string) ([]ingredient.Item, BatchOutcome, error) {
	if u == nil {
		return nil, BatchOutcome{}, apperrors.NewUnauthorizedError("Please sign in to manage your kitchen.")
	}
	kitchen := s.Kitchen(ctx, u)
	updated, outcome := s.batchAdd(kitchen, names, -1)
	if len(outcome.Added) > 0 {
		s.save(ctx, u, outbound.KindMyKitchen, updated)
		var recent []ingredient.Item
		s.load(ctx, u, outbound.KindRecentlyAdded, &recent)
		for _, name := range outcome.Added {
			if item, ok := s.catalog.Lookup(name); ok {
				recent = promote(recent, item)
			}
		}
		s.save(ctx, u, outbound.KindRecentlyAdded, recent)
	}
	return updated, outcome, nil
}

// batchAdd classifies each input name as added, not-found, already-present
// or limit-reached. A negative limit means unbounded. Names resolve through
// the alias table; the second occurrence of a name within one batch counts
// as already-present.
func (s *Service) batchAdd(current []ingredient.Item, names []string, limit int) ([]ingredient.Item, BatchOutcome) {
	var outcome BatchOutcome
	updated := append([]ingredient.Item(nil), current...)
	present := make(map[string]bool, len(current))
	for _, item := range current {
		present[strings.ToLower(item.Name)] = true
	}

	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if limit >= 0 && len(updated) >= limit {
			outcome.LimitReached = append(outcome.LimitReached, name)
			continue
		}
		if present[strings.ToLower(name)] {
			outcome.AlreadyPresent = append(outcome.AlreadyPresent, name)
			continue
		}
		item, ok := s.catalog.Resolve(name)
		if !ok {
			outcome.NotFound = append(outcome.NotFound, name)
			continue
		}
		if present[strings.ToLower(item.Name)] {
			outcome.AlreadyPresent = append(outcome.AlreadyPresent, name)
			continue
		}
		updated = append(updated, item)
		present[strings.ToLower(item.Name)] = true
		outcome.Added = append(outcome.Added, item.Name)
	}
	outcome.Message = renderBatchMessage(outcome)
	return updated, outcome
}

func renderBatchMessage(o BatchOutcome) string {
	var b strings.Builder
	if len(o.Added) > 0 {
		fmt.Fprintf(&b, "Added: %s. ", strings.Join(o.Added, ", "))
	}
	if len(o.NotFound) > 0 {
		fmt.Fprintf(&b, "Not found: %s. ", strings.Join(o.NotFound, ", "))
	}
	if len(o.AlreadyPresent) > 0 {
		fmt.Fprintf(&b, "Already present/in list: %s. ", strings.Join(o.AlreadyPresent, ", "))
	}
	if len(o.LimitReached) > 0 {
		fmt.Fprintf(&b, "Max limit reached, could not add: %s.", strings.Join(o.LimitReached, ", "))
	}
	msg := strings.TrimSpace(b.String())
	if msg == "" {
		return "No new ingredients were added from the list."
	}
	return msg
}

// promote moves item to the front of a recent list, capping its length.
func promote(recent []ingredient.Item, item ingredient.Item) []ingredient.Item {
	updated := make([]ingredient.Item, 0, len(recent)+1)
	updated = append(updated, item)
	for _, r := range recent {
		if r.ID != item.ID {
			updated = append(updated, r)
		}
	}
	if len(updated) > MaxRecentItems {
		updated = updated[:MaxRecentItems]
	}
	return updated
}

func (s *Service) load(ctx context.Context, u *user.User, kind outbound.EntityKind, v any) {
	if _, err := s.repo.Load(ctx, user.ScopeOf(u), kind, v); err != nil {
		s.logger.Warn("failed to load pantry state, using empty list",
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
	}
}

func (s *Service) save(ctx context.Context, u *user.User, kind outbound.EntityKind, v any) {
	if err := s.repo.Save(ctx, user.ScopeOf(u), kind, v); err != nil {
		s.logger.Warn("failed to save pantry state",
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
	}
}
