package httpapi

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/recipify/v2/internal/domain/user"
	"github.com/recipify/v2/internal/infrastructure/config"
	"github.com/recipify/v2/internal/infrastructure/identity"
	"github.com/recipify/v2/internal/ports/outbound"
	apperrors "github.com/recipify/v2/pkg/errors"
)

type contextKey string

const userContextKey contextKey = "recipify.user"

// UserFrom returns the authenticated user for the request, nil for an
// anonymous visitor.
func UserFrom(ctx context.Context) *user.User {
	u, _ := ctx.Value(userContextKey).(*user.User)
	return u
}

// Authenticator resolves bearer tokens into domain users.
type Authenticator struct {
	verifier *identity.TokenVerifier
	profiles outbound.ProfileClient
	logger   *zap.Logger
}

// NewAuthenticator creates the auth middleware provider.
func NewAuthenticator(verifier *identity.TokenVerifier, profiles outbound.ProfileClient, logger *zap.Logger) *Authenticator {
	return &Authenticator{
		verifier: verifier,
		profiles: profiles,
		logger:   logger.Named("auth"),
	}
}

// Optional authenticates requests that carry a bearer token and lets the
// rest through as anonymous. A token that fails verification is rejected
// rather than downgraded, so a stale session never silently loses its tier.
func (a *Authenticator) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		u, err := a.resolve(r.Context(), token)
		if err != nil {
			a.deny(w, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userContextKey, u)))
	})
}

// Required rejects requests without a valid signed-in session. Stacked
// under Optional it reuses the already resolved user.
func (a *Authenticator) Required(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserFrom(r.Context()) != nil {
			next.ServeHTTP(w, r)
			return
		}
		token, ok := bearerToken(r)
		if !ok {
			a.deny(w, apperrors.NewUnauthorizedError("Authentication required"))
			return
		}

		u, err := a.resolve(r.Context(), token)
		if err != nil {
			a.deny(w, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userContextKey, u)))
	})
}

func (a *Authenticator) resolve(ctx context.Context, token string) (*user.User, error) {
	claims, err := a.verifier.Verify(token)
	if err != nil {
		a.logger.Debug("token verification failed", zap.Error(err))
		return nil, apperrors.NewUnauthorizedError("Invalid or expired token")
	}

	profile, err := a.profiles.FetchProfile(ctx, token)
	if err != nil {
		return nil, err
	}
	if profile.ID == "" {
		profile.ID = claims.Subject
	}
	if profile.Email == "" {
		profile.Email = claims.Email
	}

	u, err := identity.UserFromProfile(profile)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("Profile could not be resolved")
	}
	return u, nil
}

func (a *Authenticator) deny(w http.ResponseWriter, err error) {
	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		appErr = apperrors.NewUnauthorizedError("Authentication failed")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())
	_ = writeErrorBody(w, appErr)
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// RequestLogger logs one structured line per request.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	logger = logger.Named("http")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request completed",
				zap.String("requestId", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)))
		})
	}
}

// clientLimiter pairs a token bucket with its last use, for idle eviction.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles requests per client IP with a token bucket each.
type RateLimiter struct {
	cfg      config.RateLimitConfig
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	logger   *zap.Logger
}

// NewRateLimiter creates the per-client limiter and starts idle eviction.
func NewRateLimiter(cfg config.RateLimitConfig, logger *zap.Logger) *RateLimiter {
	rl := &RateLimiter{
		cfg:      cfg,
		limiters: make(map[string]*clientLimiter),
		logger:   logger.Named("rate-limit"),
	}
	go rl.evictLoop()
	return rl
}

// Middleware rejects clients that exceed their request budget with 429.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	if !rl.cfg.Enabled {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(r.RemoteAddr) {
			appErr := apperrors.NewAppError(apperrors.CodeTooManyRequests,
				"Too many requests", "slow down and try again shortly")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(appErr.StatusCode())
			_ = writeErrorBody(w, appErr)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(clientID string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.limiters[clientID]
	if !ok {
		cl = &clientLimiter{
			limiter: rate.NewLimiter(rate.Limit(rl.cfg.RequestsPerSecond), rl.cfg.Burst),
		}
		rl.limiters[clientID] = cl
	}
	cl.lastSeen = time.Now()
	return cl.limiter.Allow()
}

func (rl *RateLimiter) evictLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().Add(-10 * time.Minute)
		rl.mu.Lock()
		for id, cl := range rl.limiters {
			if cl.lastSeen.Before(cutoff) {
				delete(rl.limiters, id)
			}
		}
		rl.mu.Unlock()
	}
}
