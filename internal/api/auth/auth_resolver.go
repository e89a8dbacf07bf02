package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/SolarInitiative/Cloud-Solar-Backend/app/observability/metrics"
	"github.com/SolarInitiative/Cloud-Solar-Backend/config"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/types"
)

// UserStore is the read side of the user repository used during resolution.
// Both lookups return types.ErrNotFound when no row matches.
type UserStore interface {
	GetUserByID(ctx context.Context, id int64) (*types.User, error)
	GetUserByExternalID(ctx context.Context, externalID string) (*types.User, error)
}

// IdentityResolver turns a request into the acting user.
type IdentityResolver interface {
	Resolve(r *http.Request) (*types.User, error)
}

// Resolver tries its strategies in order and stops at the first one that applies. The user row
// is read on every resolution, so is_active and is_admin changes apply to tokens already issued.
type Resolver struct {
	strategies []Strategy
	users      UserStore
	logger     *slog.Logger
}

var _ IdentityResolver = (*Resolver)(nil)

func NewResolver(users UserStore, logger *slog.Logger, strategies ...Strategy) *Resolver {
	return &Resolver{
		strategies: strategies,
		users:      users,
		logger:     logger,
	}
}

// BuildStrategies assembles the chain: developer key (outside production, when configured),
// bearer token, then the session service when a verifier is given.
func BuildStrategies(cfg *config.Config, tokens TokenVerifier, sessions SessionVerifier) []Strategy {
	var chain []Strategy
	if cfg.DevBypassAllowed() {
		chain = append(chain, NewDevKeyStrategy(cfg.Auth.DevAPIKey, cfg.Auth.DevUserID))
	}
	chain = append(chain, NewBearerStrategy(tokens))
	if sessions != nil {
		chain = append(chain, NewSessionStrategy(cfg.Auth.Session.CookieName, sessions))
	}
	return chain
}

func (res *Resolver) Resolve(r *http.Request) (*types.User, error) {
	ctx, span := otel.Tracer("AuthResolver").Start(r.Context(), "Resolve")
	defer span.End()

	for _, s := range res.strategies {
		cand, err := s.Candidate(r)
		if err != nil {
			res.logger.DebugContext(ctx, "Credential rejected", slog.String("strategy", s.Name()), slog.Any("error", err))
			metrics.RecordResolution(ctx, s.Name(), "invalid_credential")
			span.RecordError(err)
			span.SetStatus(codes.Error, "credential rejected")
			return nil, err
		}
		if cand == nil {
			continue
		}
		span.SetAttributes(attribute.String("auth.strategy", cand.Strategy))

		user, err := res.lookup(ctx, cand)
		if err != nil {
			metrics.RecordResolution(ctx, cand.Strategy, outcome(err))
			span.RecordError(err)
			span.SetStatus(codes.Error, "identity lookup failed")
			return nil, err
		}
		if !user.IsActive {
			metrics.RecordResolution(ctx, cand.Strategy, "inactive")
			span.SetStatus(codes.Error, "inactive account")
			return nil, fmt.Errorf("%w: user %d", ErrInactiveAccount, user.ID)
		}
		metrics.RecordResolution(ctx, cand.Strategy, "ok")
		span.SetAttributes(attribute.Int64("auth.user_id", user.ID))
		span.SetStatus(codes.Ok, "resolved")
		return user, nil
	}

	metrics.RecordResolution(ctx, "none", "unauthenticated")
	span.SetStatus(codes.Error, "no credentials")
	return nil, ErrUnauthenticated
}

func (res *Resolver) lookup(ctx context.Context, cand *Candidate) (*types.User, error) {
	var (
		user *types.User
		err  error
	)
	if cand.ExternalID != "" {
		user, err = res.users.GetUserByExternalID(ctx, cand.ExternalID)
		if errors.Is(err, types.ErrNotFound) && cand.UserID > 0 {
			user, err = res.users.GetUserByID(ctx, cand.UserID)
		}
	} else {
		user, err = res.users.GetUserByID(ctx, cand.UserID)
	}
	if errors.Is(err, types.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s candidate", ErrUserNotFound, cand.Strategy)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user for %s candidate: %w", cand.Strategy, err)
	}
	return user, nil
}

func outcome(err error) string {
	if errors.Is(err, ErrUserNotFound) {
		return "user_not_found"
	}
	return "error"
}
