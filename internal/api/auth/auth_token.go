package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/SolarInitiative/Cloud-Solar-Backend/config"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/api"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/types"
)

const DefaultAccessTokenTTL = 30 * time.Minute

// Claims is the payload of an access token. Subject carries the username.
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// TokenVerifier is what the bearer strategy needs from the token service.
type TokenVerifier interface {
	Verify(token string) (*Claims, error)
}

// TokenService issues and verifies HS256 access tokens with the configured secret.
type TokenService struct {
	secret   []byte
	ttl      time.Duration
	issuer   string
	audience string
	now      func() time.Time
}

var _ TokenVerifier = (*TokenService)(nil)

func NewTokenService(cfg config.JWTConfig) (*TokenService, error) {
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("%w: jwt secret key is not configured", ErrConfiguration)
	}
	ttl := cfg.AccessTokenTTL
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}
	return &TokenService{
		secret:   []byte(cfg.SecretKey),
		ttl:      ttl,
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		now:      time.Now,
	}, nil
}

func (s *TokenService) TTL() time.Duration { return s.ttl }

// Issue signs claims valid from now for ttl.
func (s *TokenService) Issue(claims Claims, ttl time.Duration) (string, error) {
	if claims.Subject == "" {
		return "", errors.New("token subject is required")
	}
	if ttl <= 0 {
		return "", fmt.Errorf("token ttl must be positive, got %s", ttl)
	}
	now := s.now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = expiry(now, ttl)
	if claims.Issuer == "" {
		claims.Issuer = s.issuer
	}
	if len(claims.Audience) == 0 && s.audience != "" {
		claims.Audience = jwt.ClaimStrings{s.audience}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// expiry is now+ttl at whole-second precision, never earlier than the next second after now.
func expiry(now time.Time, ttl time.Duration) *jwt.NumericDate {
	exp := now.Add(ttl).Truncate(time.Second)
	if !now.Before(exp) {
		exp = now.Truncate(time.Second).Add(time.Second)
	}
	return jwt.NewNumericDate(exp)
}

// IssueForUser issues an access token for u with the configured lifetime.
func (s *TokenService) IssueForUser(u *types.User) (string, error) {
	return s.Issue(Claims{
		UserID:   u.ID,
		Username: u.Username,
		IsAdmin:  u.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{Subject: u.Username},
	}, s.ttl)
}

// Verify checks the signature (HS256 only), then expiry and issued-at, then structure.
// Every failure wraps ErrInvalidCredential.
func (s *TokenService) Verify(token string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &Claims{}
	_, err := jwt.NewParser(opts...).ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: token has no subject", ErrInvalidCredential)
	}
	if !api.VerifyAudience(claims.Audience, s.audience) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredential, jwt.ErrTokenInvalidAudience)
	}
	return claims, nil
}
