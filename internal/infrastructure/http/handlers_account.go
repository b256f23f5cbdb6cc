package httpapi

import (
	"net/http"

	"github.com/recipify/v2/internal/application/account"
	"github.com/recipify/v2/internal/application/quota"
	progressdomain "github.com/recipify/v2/internal/domain/progress"
)

type setTierRequest struct {
	IsPaid *bool `json:"isPaid" validate:"required"`
}

type sessionResponse struct {
	User     userView                `json:"user"`
	Quota    quota.Snapshot          `json:"quota"`
	Progress progressdomain.Progress `json:"progress"`
	Unlocked *achievementView        `json:"unlockedAchievement,omitempty"`
}

type userView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	IsPaid    bool   `json:"isPaid"`
}

func newSessionResponse(s account.Session, unlocked *achievementView) sessionResponse {
	return sessionResponse{
		User: userView{
			ID:        s.User.ID(),
			Name:      s.User.Name(),
			Email:     s.User.Email(),
			AvatarURL: s.User.AvatarURL(),
			IsPaid:    s.User.IsPaid(),
		},
		Quota:    s.Quota,
		Progress: s.Progress,
		Unlocked: unlocked,
	}
}

// handleMe completes sign-in: the session's quota and progress are loaded
// and the anonymous allowance is cleared for the next visitor.
func (a *API) handleMe(w http.ResponseWriter, r *http.Request) {
	session := a.services.Account.SignIn(r.Context(), UserFrom(r.Context()))
	a.writeJSON(w, http.StatusOK, newSessionResponse(session, nil))
}

func (a *API) handleSetTier(w http.ResponseWriter, r *http.Request) {
	var req setTierRequest
	if err := a.decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}

	session, unlocked := a.services.Account.SetTier(r.Context(), UserFrom(r.Context()), *req.IsPaid)
	a.writeJSON(w, http.StatusOK, newSessionResponse(session, newAchievementView(unlocked)))
}
