package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	progressdomain "github.com/recipify/v2/internal/domain/progress"
)

// achievementView is the wire form of a registry entry; the registry's
// predicate functions never cross the API boundary.
type achievementView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	XP          int    `json:"xp"`
}

func newAchievementView(a *progressdomain.Achievement) *achievementView {
	if a == nil {
		return nil
	}
	return &achievementView{
		ID:          string(a.ID),
		Name:        a.Name,
		Description: a.Description,
		Icon:        a.Icon,
		XP:          a.XP,
	}
}

// achievementStatus is one row of the achievements screen.
type achievementStatus struct {
	achievementView
	Unlocked   bool   `json:"unlocked"`
	Viewed     bool   `json:"viewed"`
	UnlockHint string `json:"unlockHint,omitempty"`
}

func (a *API) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	p := a.services.Progress.Get(r.Context(), UserFrom(r.Context()))
	a.writeJSON(w, http.StatusOK, p)
}

func (a *API) handleListAchievements(w http.ResponseWriter, r *http.Request) {
	p := a.services.Progress.Get(r.Context(), UserFrom(r.Context()))

	registry := progressdomain.Registry()
	statuses := make([]achievementStatus, 0, len(registry))
	for _, entry := range registry {
		status := achievementStatus{
			achievementView: *newAchievementView(&entry),
			Unlocked:        p.HasUnlocked(entry.ID),
			Viewed:          p.HasViewed(entry.ID),
		}
		if !status.Unlocked {
			status.UnlockHint = entry.UnlockHint(p)
		}
		statuses = append(statuses, status)
	}
	a.writeJSON(w, http.StatusOK, statuses)
}

func (a *API) handleMarkAchievementViewed(w http.ResponseWriter, r *http.Request) {
	id := progressdomain.AchievementID(chi.URLParam(r, "id"))
	p := a.services.Progress.MarkViewed(r.Context(), UserFrom(r.Context()), id)
	a.writeJSON(w, http.StatusOK, p)
}

func (a *API) handleQuotaStatus(w http.ResponseWriter, r *http.Request) {
	snapshot := a.services.Quota.Status(r.Context(), UserFrom(r.Context()))
	a.writeJSON(w, http.StatusOK, snapshot)
}

func (a *API) handleGrantExtra(w http.ResponseWriter, r *http.Request) {
	u := UserFrom(r.Context())
	decision := a.services.Quota.GrantExtra(r.Context(), u)
	if !decision.Allowed {
		a.writeDecision(w, decision)
		return
	}
	a.writeJSON(w, http.StatusOK, a.services.Quota.Status(r.Context(), u))
}
