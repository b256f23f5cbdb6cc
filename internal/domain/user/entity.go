// Package user defines the user domain entity and the scoping of per-user
// state. Identity is owned by the external auth provider; this entity carries
// only what the entitlement engines need, with isPaid as the sole tier
// discriminant.
package user

import (
	"errors"
	"strings"
)

// Tier limits driven by the paid flag.
const (
	AnonymousFreeGenerations = 1
	FreeGenerationsPerDay    = 5
	PremiumGenerationsPerDay = 200

	FreeSurpriseUsesPerWeek = 1

	FreeMaxSavedRecipes    = 25
	PremiumMaxSavedRecipes = 1000

	FreeMaxHistoryItems    = 50
	PremiumMaxHistoryItems = 500

	// FreeCalendarViewDays is the rolling window of past days a free user can
	// log meals into.
	FreeCalendarViewDays = 14
)

var (
	ErrInvalidID   = errors.New("user id must not be empty")
	ErrInvalidName = errors.New("user name must not be empty")
)

// User represents an authenticated user in the system.
type User struct {
	id        string
	name      string
	email     string
	avatarURL string
	isPaid    bool
}

// New creates a user from a provider identity and a fetched profile.
func New(id, name, email, avatarURL string, isPaid bool) (*User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidID
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidName
	}
	return &User{
		id:        id,
		name:      name,
		email:     strings.ToLower(email),
		avatarURL: avatarURL,
		isPaid:    isPaid,
	}, nil
}

// ID returns the provider-issued user identifier.
func (u *User) ID() string {
	return u.id
}

// Name returns the display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the user's email, empty if the provider withheld it.
func (u *User) Email() string {
	return u.email
}

// AvatarURL returns the avatar location.
func (u *User) AvatarURL() string {
	return u.avatarURL
}

// IsPaid reports whether the user is on the Pro tier.
func (u *User) IsPaid() bool {
	return u.isPaid
}

// SetPaid flips the tier flag on upgrade or downgrade.
func (u *User) SetPaid(paid bool) {
	u.isPaid = paid
}

// DailyGenerationLimit returns the tier's base daily generation allowance.
func (u *User) DailyGenerationLimit() int {
	if u.isPaid {
		return PremiumGenerationsPerDay
	}
	return FreeGenerationsPerDay
}

// MaxSavedRecipes returns the saved-recipes cap for the tier.
func (u *User) MaxSavedRecipes() int {
	if u.isPaid {
		return PremiumMaxSavedRecipes
	}
	return FreeMaxSavedRecipes
}

// MaxHistoryItems returns the history cap for the tier.
func (u *User) MaxHistoryItems() int {
	if u.isPaid {
		return PremiumMaxHistoryItems
	}
	return FreeMaxHistoryItems
}

// Scope identifies the namespace owning a piece of persisted state:
// either a signed-in user or the shared anonymous visitor.
type Scope struct {
	userID string
}

// Anonymous returns the scope for a visitor without a session.
func Anonymous() Scope {
	return Scope{}
}

// ScopeFor returns the scope owning a user's state.
func ScopeFor(userID string) Scope {
	return Scope{userID: userID}
}

// ScopeOf returns the scope for u, or the anonymous scope when u is nil.
func ScopeOf(u *User) Scope {
	if u == nil {
		return Anonymous()
	}
	return ScopeFor(u.id)
}

// IsAnonymous reports whether the scope belongs to the anonymous visitor.
func (s Scope) IsAnonymous() bool {
	return s.userID == ""
}

// UserID returns the owning user id, empty for the anonymous scope.
func (s Scope) UserID() string {
	return s.userID
}
