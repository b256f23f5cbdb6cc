// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"

	"github.com/recipify/v2/internal/domain/user"
)

// EntityKind names one persisted per-scope state blob. Kinds combine with a
// user scope to form the storage key, keeping key construction out of the
// business logic.
type EntityKind string

const (
	KindRecipeHistory     EntityKind = "recipeHistory"
	KindSavedRecipes      EntityKind = "savedRecipes"
	KindCookedHistory     EntityKind = "cookedHistory"
	KindExcludedRecipeIDs EntityKind = "excludedRecipeIds"
	KindCalendarEntries   EntityKind = "calendarEntries"
	KindMyKitchen         EntityKind = "myKitchen"
	KindRecentlyUsed      EntityKind = "recentlyUsedForGenerator"
	KindRecentlyAdded     EntityKind = "recentlyAddedToKitchen"
	KindGenerationStatus  EntityKind = "generationStatus"
	KindSurpriseMeStatus  EntityKind = "surpriseMeStatus"
	KindUserProgress      EntityKind = "userProgress"
	// Global kinds, always stored under the anonymous scope.
	KindCommunityPosts      EntityKind = "communityPosts"
	KindAnonymousGeneration EntityKind = "anonymousGenerationStatus"
)

// Key renders the stable storage key for a kind within a scope:
// "recipify_<kind>" for the anonymous/global namespace and
// "recipify_<kind>_<userID>" for a signed-in user.
func Key(kind EntityKind, scope user.Scope) string {
	if scope.IsAnonymous() {
		return "recipify_" + string(kind)
	}
	return "recipify_" + string(kind) + "_" + scope.UserID()
}

// StateRepository persists one JSON blob per (kind, scope) pair. It is the
// sole writer of durable state; in-memory state acts as the read-through
// cache for the session.
//
// Implementations must treat read misses as (false, nil) so callers can
// fail open to a zero value. Corrupt blobs are a read failure: callers
// default to the entity's initial value rather than failing the operation.
type StateRepository interface {
	// Load unmarshals the blob for (kind, scope) into v. The bool reports
	// whether a blob existed.
	Load(ctx context.Context, scope user.Scope, kind EntityKind, v any) (bool, error)
	// Save marshals v and stores it under (kind, scope), replacing any
	// previous blob (last writer wins).
	Save(ctx context.Context, scope user.Scope, kind EntityKind, v any) error
	// Delete removes the blob for (kind, scope). Missing blobs are not an error.
	Delete(ctx context.Context, scope user.Scope, kind EntityKind) error
}
