// Package progress contains the XP/streak progress model and the fixed
// achievement registry. Achievement predicates are pure functions over a
// progress snapshot so they stay independently testable.
package progress

// Metrics aggregates the counters feeding achievement predicates.
type Metrics struct {
	GeneratedRecipeCount int `json:"generatedRecipeCount"`
	CookedRecipeCount    int `json:"cookedRecipeCount"`
	// DistinctIngredientsUsed holds canonical ingredient names, set semantics.
	DistinctIngredientsUsed []string `json:"distinctIngredientsUsed"`
	// SavedRecipeCount is authoritative: set from the saved list's length,
	// never incremented, so add/remove churn cannot drift it.
	SavedRecipeCount int `json:"savedRecipeCount"`
}

// Progress is one user's gamification state.
type Progress struct {
	UserID        string `json:"userId"`
	XP            int    `json:"xp"`
	CurrentStreak int    `json:"currentStreak"`
	LongestStreak int    `json:"longestStreak"`
	// LastCookedDate is a YYYY-MM-DD day string, empty before the first cook.
	LastCookedDate          string        `json:"lastCookedDate,omitempty"`
	UnlockedAchievementIDs  []AchievementID `json:"unlockedAchievementIds"`
	Metrics                 Metrics       `json:"metrics"`
	ViewedAchievements      []AchievementID `json:"viewedAchievements"`
}

// New returns zeroed progress for a user.
func New(userID string) Progress {
	return Progress{
		UserID:                 userID,
		UnlockedAchievementIDs: []AchievementID{},
		ViewedAchievements:     []AchievementID{},
		Metrics:                Metrics{DistinctIngredientsUsed: []string{}},
	}
}

// HasUnlocked reports whether the achievement is already unlocked.
func (p Progress) HasUnlocked(id AchievementID) bool {
	for _, u := range p.UnlockedAchievementIDs {
		if u == id {
			return true
		}
	}
	return false
}

// HasViewed reports whether the achievement's "new" badge was dismissed.
func (p Progress) HasViewed(id AchievementID) bool {
	for _, v := range p.ViewedAchievements {
		if v == id {
			return true
		}
	}
	return false
}

// AddDistinctIngredients unions canonical names into the distinct-ingredient
// metric. Idempotent per name.
func (p *Progress) AddDistinctIngredients(names []string) {
	seen := make(map[string]struct{}, len(p.Metrics.DistinctIngredientsUsed))
	for _, n := range p.Metrics.DistinctIngredientsUsed {
		seen[n] = struct{}{}
	}
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		p.Metrics.DistinctIngredientsUsed = append(p.Metrics.DistinctIngredientsUsed, n)
	}
}
