package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const (
	DevKeyHeader      = "X-API-Key"
	DefaultCookieName = "sAccessToken"

	StrategyDevKey  = "dev_key"
	StrategyBearer  = "bearer"
	StrategySession = "session"
)

// Candidate is the identity a strategy extracted from a request, before the user store confirms it.
type Candidate struct {
	Strategy   string
	UserID     int64
	ExternalID string
}

// Strategy produces a candidate identity from a request. It returns (nil, nil) when the
// request carries nothing it recognizes, so the resolver moves on to the next strategy.
// A non-nil error ends resolution.
type Strategy interface {
	Name() string
	Candidate(r *http.Request) (*Candidate, error)
}

// DevKeyStrategy maps a static developer key to a fixed user id. Only for non-production use.
type DevKeyStrategy struct {
	key    []byte
	userID int64
}

func NewDevKeyStrategy(key string, userID int64) *DevKeyStrategy {
	return &DevKeyStrategy{key: []byte(key), userID: userID}
}

func (s *DevKeyStrategy) Name() string { return StrategyDevKey }

func (s *DevKeyStrategy) Candidate(r *http.Request) (*Candidate, error) {
	presented := r.Header.Get(DevKeyHeader)
	if presented == "" || len(s.key) == 0 {
		return nil, nil
	}
	if subtle.ConstantTimeCompare([]byte(presented), s.key) != 1 {
		return nil, nil
	}
	return &Candidate{Strategy: StrategyDevKey, UserID: s.userID}, nil
}

type BearerStrategy struct {
	verifier TokenVerifier
}

func NewBearerStrategy(verifier TokenVerifier) *BearerStrategy {
	return &BearerStrategy{verifier: verifier}
}

func (s *BearerStrategy) Name() string { return StrategyBearer }

func (s *BearerStrategy) Candidate(r *http.Request) (*Candidate, error) {
	token, ok := bearerToken(r)
	if !ok {
		return nil, nil
	}
	if token == "" {
		return nil, fmt.Errorf("%w: empty bearer token", ErrInvalidCredential)
	}
	claims, err := s.verifier.Verify(token)
	if err != nil {
		return nil, err
	}
	if claims.UserID <= 0 {
		return nil, fmt.Errorf("%w: token carries no user id", ErrInvalidCredential)
	}
	return &Candidate{Strategy: StrategyBearer, UserID: claims.UserID}, nil
}

// bearerToken reports whether the Authorization header uses the Bearer scheme and returns its token.
func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if h == "" {
		return "", false
	}
	scheme, token, _ := strings.Cut(h, " ")
	if !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	return strings.TrimSpace(token), true
}

// SessionClaims is what the external session service vouches for.
type SessionClaims struct {
	Subject string
	UserID  int64
}

type SessionVerifier interface {
	VerifySession(ctx context.Context, token string) (*SessionClaims, error)
}

// SessionStrategy reads the session service's access token from a cookie.
type SessionStrategy struct {
	cookieName string
	verifier   SessionVerifier
}

func NewSessionStrategy(cookieName string, verifier SessionVerifier) *SessionStrategy {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	return &SessionStrategy{cookieName: cookieName, verifier: verifier}
}

func (s *SessionStrategy) Name() string { return StrategySession }

func (s *SessionStrategy) Candidate(r *http.Request) (*Candidate, error) {
	c, err := r.Cookie(s.cookieName)
	if errors.Is(err, http.ErrNoCookie) || (err == nil && c.Value == "") {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}
	claims, err := s.verifier.VerifySession(r.Context(), c.Value)
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" && claims.UserID <= 0 {
		return nil, fmt.Errorf("%w: session carries no identity", ErrInvalidCredential)
	}
	return &Candidate{Strategy: StrategySession, UserID: claims.UserID, ExternalID: claims.Subject}, nil
}
