// Package identity verifies bearer tokens issued by the external auth
// provider and fetches account profiles from the identity backend. The
// engine never mints tokens itself; it only validates what the provider
// signed and resolves the subject into a full user.
package identity

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/recipify/v2/internal/infrastructure/config"
)

// Claims is the subset of provider token claims the engine relies on.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenVerifier validates provider-signed access tokens.
type TokenVerifier struct {
	secret []byte
	issuer string
	logger *zap.Logger
}

// NewTokenVerifier creates a verifier for tokens signed with the shared
// provider secret.
func NewTokenVerifier(cfg config.AuthConfig, logger *zap.Logger) *TokenVerifier {
	return &TokenVerifier{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.Issuer,
		logger: logger.Named("token-verifier"),
	}
}

// Verify validates the signature, expiry, and issuer of a token and returns
// its claims. The subject claim carries the provider-issued user id.
func (v *TokenVerifier) Verify(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithExpirationRequired()}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject")
	}

	return claims, nil
}
