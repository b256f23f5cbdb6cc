// Package mealplan defines calendar entries and meal slots.
package mealplan

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Slot is a named meal-time bucket within a day. The four standard slots are
// available to everyone; any other value is a custom slot, paid-only.
type Slot string

const (
	SlotBreakfast Slot = "Breakfast"
	SlotLunch     Slot = "Lunch"
	SlotDinner    Slot = "Dinner"
	SlotSnack     Slot = "Snack"
)

// StandardSlots lists the slots usable on the free tier, in day order.
var StandardSlots = []Slot{SlotBreakfast, SlotLunch, SlotDinner, SlotSnack}

// IsStandard reports whether s is one of the four standard slots.
func (s Slot) IsStandard() bool {
	for _, std := range StandardSlots {
		if s == std {
			return true
		}
	}
	return false
}

// Entry places a recipe on a calendar day and slot.
type Entry struct {
	ID          string `json:"id"`
	RecipeID    string `json:"recipeId"`
	RecipeTitle string `json:"recipeTitle"`
	// Date is the local calendar day, YYYY-MM-DD.
	Date string `json:"date"`
	Slot Slot   `json:"slot"`
	// Timestamp is when the entry was created or last updated.
	Timestamp int64 `json:"timestamp"`
	// OrderInSlot orders multiple paid-tier entries within one slot.
	OrderInSlot int    `json:"orderInSlot,omitempty"`
	UserNotes   string `json:"userNotes,omitempty"`
}

// NewEntry creates an entry for a recipe at (date, slot).
func NewEntry(recipeID, recipeTitle, date string, slot Slot, now time.Time) Entry {
	return Entry{
		ID:          uuid.NewString(),
		RecipeID:    recipeID,
		RecipeTitle: recipeTitle,
		Date:        date,
		Slot:        slot,
		Timestamp:   now.UnixMilli(),
	}
}

// SortEntries orders entries by (date desc, timestamp desc), the invariant
// kept after every mutation.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date > entries[j].Date
		}
		return entries[i].Timestamp > entries[j].Timestamp
	})
}
