// Package ingredient holds the static ingredient reference catalog and the
// alias table used to resolve free-text names to canonical entries. Both are
// process-wide immutable constants, safely read-shared without locking.
package ingredient

import "strings"

// Category groups catalog entries for display and filtering.
type Category string

const (
	CategoryVegetable        Category = "Vegetable"
	CategoryFruit            Category = "Fruit"
	CategoryProtein          Category = "Protein"
	CategoryDairy            Category = "Dairy"
	CategoryDairyAlternative Category = "Dairy Alternative"
	CategoryPantryStaple     Category = "Pantry Staple"
	CategorySpice            Category = "Spice"
	CategoryHerb             Category = "Herb"
	CategoryGrain            Category = "Grain"
	CategoryLegume           Category = "Legume"
	CategoryCondiment        Category = "Condiment"
	CategoryOilFat           Category = "Oil/Fat"
	CategorySweetener        Category = "Sweetener"
	CategoryBeverage         Category = "Beverage"
	CategoryNut              Category = "Nut"
	CategorySeed             Category = "Seed"
	CategoryOther            Category = "Other"
)

// Item is one canonical catalog entry.
type Item struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
}

// MaxSelection caps how many ingredients can feed one generation request.
// The kitchen pantry itself is unbounded.
const MaxSelection = 15

// Catalog resolves ingredient names, applying the alias table for common
// plurals, misspellings and synonyms before giving up.
type Catalog struct {
	items   []Item
	byName  map[string]Item
	aliases map[string]string
}

// NewCatalog builds a catalog over the given items and aliases. Alias values
// must be canonical item names; unknown targets simply never resolve.
func NewCatalog(items []Item, aliases map[string]string) *Catalog {
	byName := make(map[string]Item, len(items))
	for _, it := range items {
		byName[strings.ToLower(it.Name)] = it
	}
	normalized := make(map[string]string, len(aliases))
	for alias, canonical := range aliases {
		normalized[strings.ToLower(alias)] = canonical
	}
	return &Catalog{items: items, byName: byName, aliases: normalized}
}

// Default returns the catalog over the built-in ingredient data and aliases.
func Default() *Catalog {
	return NewCatalog(AllIngredients, Aliases)
}

// Items returns all catalog entries in declaration order.
func (c *Catalog) Items() []Item {
	return c.items
}

// Lookup finds an item by exact (case-insensitive) canonical name.
func (c *Catalog) Lookup(name string) (Item, bool) {
	it, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	return it, ok
}

// Resolve finds an item by canonical name or alias.
func (c *Catalog) Resolve(name string) (Item, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	if it, ok := c.byName[trimmed]; ok {
		return it, true
	}
	if canonical, ok := c.aliases[trimmed]; ok {
		if it, ok := c.byName[strings.ToLower(canonical)]; ok {
			return it, true
		}
	}
	return Item{}, false
}

// CanonicalName resolves a free-text name to its canonical catalog name,
// or returns false when the name is unknown.
func (c *Catalog) CanonicalName(name string) (string, bool) {
	it, ok := c.Resolve(name)
	if !ok {
		return "", false
	}
	return it.Name, true
}

// Aliases maps common plurals, misspellings and synonyms to canonical names.
var Aliases = map[string]string{
	"strawberries": "Strawberry",
	"onions":       "Onion",
	"apples":       "Apple",
	"tomatoes":     "Tomato",
	"potatoes":     "Potato",
	"carrots":      "Carrot",
	"mangoes":      "Mango",
	"peaches":      "Peach",
	"cherries":     "Cherry",
	"grape":        "Grapes",
	"mushrooms":    "Mushroom",
	"scallions":    "Green Onion (Scallion)",
	"chillis":      "Chili Pepper",
	"chillies":     "Chili Pepper",
	"bell peppers": "Bell Pepper",
	"pepper":       "Bell Pepper",
	"courgette":    "Zucchini",
	"aubergine":    "Eggplant",
	"coriander":    "Cilantro (Fresh)",
	"potatoe":      "Potato",
	"tomatoe":      "Tomato",
}
