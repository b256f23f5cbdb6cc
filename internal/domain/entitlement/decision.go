// Package entitlement models the yes/no decisions that gate actions on tier
// and current usage. Denials are ordinary values carrying an upsell payload,
// never errors: the caller decides whether to show an upgrade prompt or an
// auth prompt.
package entitlement

// Upsell is the payload shown with a tier-limit denial.
type Upsell struct {
	FeatureName    string `json:"featureName"`
	LimitDetails   string `json:"limitDetails"`
	PremiumBenefit string `json:"premiumBenefit"`
}

// Decision is the outcome of an entitlement check.
type Decision struct {
	Allowed bool `json:"allowed"`
	// Reason is a user-facing denial message, empty when allowed.
	Reason string `json:"reason,omitempty"`
	// SignInRequired marks denials that should surface an auth prompt
	// instead of a paywall (anonymous quota exhaustion).
	SignInRequired bool    `json:"signInRequired,omitempty"`
	Upsell         *Upsell `json:"upsell,omitempty"`
	// ExtraGrantAvailable marks quota denials where the caller may offer the
	// one-shot "+1 generation" affordance.
	ExtraGrantAvailable bool `json:"extraGrantAvailable,omitempty"`
}

// Allow returns a permitting decision.
func Allow() Decision {
	return Decision{Allowed: true}
}

// DenySignIn denies with an auth prompt.
func DenySignIn(reason string) Decision {
	return Decision{Reason: reason, SignInRequired: true}
}

// DenyUpsell denies with an upgrade prompt.
func DenyUpsell(reason string, upsell Upsell) Decision {
	return Decision{Reason: reason, Upsell: &upsell}
}

// Deny denies with a plain message and no prompt.
func Deny(reason string) Decision {
	return Decision{Reason: reason}
}
