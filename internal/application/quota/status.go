// Package quota implements the generation quota engine: daily counters for
// authenticated users, the single-use anonymous allowance and the weekly
// surprise counter. Resets are lazy, evaluated at point of use against the
// local calendar day or the rolling seven-day window.
package quota

import (
	"time"

	"github.com/recipify/v2/pkg/dateutil"
)

// SurpriseWindow is the rolling window for the surprise counter.
const SurpriseWindow = 7 * 24 * time.Hour

// UserGenerationStatus tracks an authenticated user's daily generation usage.
// Count and ExtraGenerationsGranted are only meaningful for the day stamped
// in LastUsedDate; any other day reads as zero.
type UserGenerationStatus struct {
	Count        int    `json:"count"`
	LastUsedDate string `json:"lastUsedDate"`
	// ExtraGenerationsGranted is the bonus earned through the one-shot
	// "+1 generation" affordance, reset with the day.
	ExtraGenerationsGranted int `json:"extraGenerationsGranted"`
}

// ForDay returns the status as effective on now's calendar day: the stored
// value when the day stamp matches, a fresh zeroed status otherwise. The
// stored blob is never rewritten by reads.
func (s UserGenerationStatus) ForDay(now time.Time) UserGenerationStatus {
	today := dateutil.DayString(now)
	if s.LastUsedDate != today {
		return UserGenerationStatus{LastUsedDate: today}
	}
	return s
}

// AnonymousGenerationStatus tracks the shared anonymous visitor's usage.
// It never resets; the anonymous allowance is once per install, not per day.
type AnonymousGenerationStatus struct {
	Count int `json:"count"`
}

// SurpriseMeStatus tracks surprise generations inside a rolling seven-day
// window anchored at the most recent use.
type SurpriseMeStatus struct {
	CountThisWeek int `json:"countThisWeek"`
	// LastUsedTimestamp is the last use in Unix milliseconds, 0 for never.
	LastUsedTimestamp int64 `json:"lastUsedTimestamp"`
}

// ForWindow returns the status as effective at now: zeroed when the window
// has rolled over, the stored value otherwise.
func (s SurpriseMeStatus) ForWindow(now time.Time) SurpriseMeStatus {
	if dateutil.RolledOver(time.UnixMilli(s.LastUsedTimestamp), now, SurpriseWindow) {
		return SurpriseMeStatus{}
	}
	return s
}

// Snapshot summarizes current quota standing for display.
type Snapshot struct {
	Used                 int  `json:"used"`
	Limit                int  `json:"limit"`
	ExtraGranted         int  `json:"extraGranted"`
	SurpriseUsedThisWeek int  `json:"surpriseUsedThisWeek"`
	SignedIn             bool `json:"signedIn"`
}
