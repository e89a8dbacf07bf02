package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/SolarInitiative/Cloud-Solar-Backend/config"
)

type sessionTokenClaims struct {
	UserID int64 `json:"user_id,omitempty"`
	jwt.RegisteredClaims
}

// JWKSSessionVerifier validates session access tokens issued by the external session service
// against the keys it publishes.
type JWKSSessionVerifier struct {
	jwks   *keyfunc.JWKS
	parser *jwt.Parser
}

var _ SessionVerifier = (*JWKSSessionVerifier)(nil)

// NewJWKSSessionVerifier fetches the JWKS once and keeps it refreshed in the background until
// ctx is done or Close is called.
func NewJWKSSessionVerifier(ctx context.Context, cfg config.SessionConfig, logger *slog.Logger) (*JWKSSessionVerifier, error) {
	if cfg.JWKSURL == "" {
		return nil, fmt.Errorf("%w: session jwks url is not configured", ErrConfiguration)
	}
	jwks, err := keyfunc.Get(cfg.JWKSURL, keyfunc.Options{
		Ctx:               ctx,
		RefreshInterval:   cfg.RefreshInterval,
		RefreshRateLimit:  time.Minute,
		RefreshTimeout:    10 * time.Second,
		RefreshUnknownKID: true,
		RefreshErrorHandler: func(err error) {
			logger.Error("Failed to refresh session JWKS", slog.String("url", cfg.JWKSURL), slog.Any("error", err))
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load session JWKS from %s: %w", cfg.JWKSURL, err)
	}
	return NewJWKSSessionVerifierFromKeys(jwks), nil
}

func NewJWKSSessionVerifierFromKeys(jwks *keyfunc.JWKS) *JWKSSessionVerifier {
	return &JWKSSessionVerifier{
		jwks: jwks,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{"RS256", "RS384", "RS512", "ES256", "ES384", "PS256"}),
			jwt.WithExpirationRequired(),
		),
	}
}

func (v *JWKSSessionVerifier) VerifySession(_ context.Context, token string) (*SessionClaims, error) {
	claims := &sessionTokenClaims{}
	if _, err := v.parser.ParseWithClaims(token, claims, v.jwks.Keyfunc); err != nil {
		return nil, fmt.Errorf("%w: session token: %w", ErrInvalidCredential, err)
	}
	return &SessionClaims{Subject: claims.Subject, UserID: claims.UserID}, nil
}

func (v *JWKSSessionVerifier) Close() {
	v.jwks.EndBackground()
}
