package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/recipify/v2/internal/domain/user"
	"github.com/recipify/v2/internal/ports/outbound"
	apperrors "github.com/recipify/v2/pkg/errors"
)

// Client fetches account profiles from the identity backend.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient creates a profile client against the identity backend base URL.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger.Named("identity-client"),
	}
}

// profileResponse mirrors the backend /api/users/me payload. Name and the
// paid flag are decoded through pointers so an absent field is
// distinguishable from a zero value.
type profileResponse struct {
	ID           string  `json:"id"`
	Name         *string `json:"name"`
	Email        string  `json:"email"`
	AvatarURL    string  `json:"avatar_url"`
	IsPaidStatus *bool   `json:"is_paid_status"`
}

// FetchProfile retrieves the profile for the bearer token's account. A
// response missing the display name or the paid flag is rejected: tier
// decisions cannot be made against a partial profile.
func (c *Client) FetchProfile(ctx context.Context, token string) (*outbound.Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/users/me", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperrors.NewExternalServiceError("identity backend", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, apperrors.NewUnauthorizedError("session is no longer valid")
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.Error("profile fetch failed",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, apperrors.NewAppError(apperrors.CodeExternalServiceError,
			fmt.Sprintf("failed to fetch profile from backend: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode)), "")
	}

	var payload profileResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperrors.NewAppError(apperrors.CodeProfileInvalid,
			"Backend profile response is missing required fields.",
			"response body is not valid JSON").WithCause(err)
	}
	if payload.Name == nil {
		return nil, apperrors.NewProfileInvalidError("name")
	}
	if payload.IsPaidStatus == nil {
		return nil, apperrors.NewProfileInvalidError("is_paid_status")
	}

	return &outbound.Profile{
		ID:        payload.ID,
		Name:      *payload.Name,
		Email:     payload.Email,
		AvatarURL: payload.AvatarURL,
		IsPaid:    *payload.IsPaidStatus,
	}, nil
}

// UserFromProfile builds the domain user, filling the display name and
// avatar with the same fallbacks the clients apply.
func UserFromProfile(p *outbound.Profile) (*user.User, error) {
	name := p.Name
	if name == "" {
		if at := strings.IndexByte(p.Email, '@'); at > 0 {
			name = p.Email[:at]
		} else {
			name = "Recipify User"
		}
	}
	avatar := p.AvatarURL
	if avatar == "" {
		avatar = fmt.Sprintf("https://avatar.iran.liara.run/username?username=%s&length=1",
			url.QueryEscape(name))
	}
	return user.New(p.ID, name, p.Email, avatar, p.IsPaid)
}
