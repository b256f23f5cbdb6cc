package progress

import "fmt"

// AchievementID identifies an achievement in the registry.
type AchievementID string

const (
	AchievementRookieCook         AchievementID = "rookieCook"
	AchievementHomeChef           AchievementID = "homeChef"
	AchievementIngredientExplorer AchievementID = "ingredientExplorer"
	AchievementStreakStarter      AchievementID = "streakStarter"
	AchievementStreakMaster       AchievementID = "streakMaster"
	AchievementRecipeSaver        AchievementID = "recipeSaver"
	AchievementPremiumPioneer     AchievementID = "premiumPioneer"
)

// Achievement is one immutable registry entry. IsUnlocked and UnlockHint are
// pure functions of the progress snapshot (and the paid flag) with no side
// effects.
type Achievement struct {
	ID          AchievementID
	Name        string
	Description string
	Icon        string
	XP          int
	UnlockHint  func(p Progress) string
	IsUnlocked  func(p Progress, isPaid bool) bool
}

// Registry returns the fixed achievement list in declaration order. The
// unlock pass walks this order and stops at the first newly eligible entry.
func Registry() []Achievement {
	return registry
}

var registry = []Achievement{
	{
		ID:          AchievementRookieCook,
		Name:        "Rookie Cook",
		Description: "Generate your first recipe.",
		Icon:        "🧑‍🍳",
		XP:          10,
		UnlockHint: func(p Progress) string {
			return fmt.Sprintf("Generate 1 recipe to unlock. (%d/1)", p.Metrics.GeneratedRecipeCount)
		},
		IsUnlocked: func(p Progress, _ bool) bool {
			return p.Metrics.GeneratedRecipeCount >= 1
		},
	},
	{
		ID:          AchievementHomeChef,
		Name:        "Home Chef",
		Description: "Mark 10 recipes as cooked.",
		Icon:        "🍳",
		XP:          50,
		UnlockHint: func(p Progress) string {
			return fmt.Sprintf("Mark 10 recipes as cooked. (%d/10)", p.Metrics.CookedRecipeCount)
		},
		IsUnlocked: func(p Progress, _ bool) bool {
			return p.Metrics.CookedRecipeCount >= 10
		},
	},
	{
		ID:          AchievementIngredientExplorer,
		Name:        "Ingredient Explorer",
		Description: "Use 20 unique ingredients in generated recipes.",
		Icon:        "🥕",
		XP:          30,
		UnlockHint: func(p Progress) string {
			return fmt.Sprintf("Use 20 unique ingredients. (%d/20)", len(p.Metrics.DistinctIngredientsUsed))
		},
		IsUnlocked: func(p Progress, _ bool) bool {
			return len(p.Metrics.DistinctIngredientsUsed) >= 20
		},
	},
	{
		ID:          AchievementStreakStarter,
		Name:        "Streak Starter",
		Description: "Cook 3 days in a row.",
		Icon:        "🔥",
		XP:          20,
		UnlockHint: func(p Progress) string {
			return fmt.Sprintf("Cook 3 days in a row. (Current: %d/3)", p.CurrentStreak)
		},
		IsUnlocked: func(p Progress, _ bool) bool {
			return p.CurrentStreak >= 3
		},
	},
	{
		ID:          AchievementStreakMaster,
		Name:        "Streak Master",
		Description: "Cook 14 days in a row.",
		Icon:        "🏆",
		XP:          100,
		UnlockHint: func(p Progress) string {
			return fmt.Sprintf("Cook 14 days in a row. (Current: %d/14)", p.CurrentStreak)
		},
		IsUnlocked: func(p Progress, _ bool) bool {
			return p.CurrentStreak >= 14
		},
	},
	{
		ID:          AchievementRecipeSaver,
		Name:        "Recipe Saver",
		Description: "Save 10 recipes.",
		Icon:        "💾",
		XP:          25,
		UnlockHint: func(p Progress) string {
			return fmt.Sprintf("Save 10 recipes. (%d/10)", p.Metrics.SavedRecipeCount)
		},
		IsUnlocked: func(p Progress, _ bool) bool {
			return p.Metrics.SavedRecipeCount >= 10
		},
	},
	{
		ID:          AchievementPremiumPioneer,
		Name:        "Premium Pioneer",
		Description: "Become a Recipify Pro user.",
		Icon:        "⭐",
		XP:          50,
		UnlockHint: func(Progress) string {
			return "Upgrade to Recipify Pro."
		},
		IsUnlocked: func(_ Progress, isPaid bool) bool {
			return isPaid
		},
	},
}

// Find returns the registry entry for id.
func Find(id AchievementID) (Achievement, bool) {
	for _, a := range registry {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
