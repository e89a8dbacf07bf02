package auth

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/types"
)

type contextKey string

const userKey contextKey = "user"

func WithUser(ctx context.Context, u *types.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFromContext returns the user attached by one of the guards, if any.
func UserFromContext(ctx context.Context) (*types.User, bool) {
	u, ok := ctx.Value(userKey).(*types.User)
	return u, ok && u != nil
}

// Guard wraps handlers with authentication preconditions.
type Guard struct {
	resolver IdentityResolver
	logger   *slog.Logger
}

func NewGuard(resolver IdentityResolver, logger *slog.Logger) *Guard {
	return &Guard{resolver: resolver, logger: logger}
}

// RequireAuthenticated rejects the request unless an active user can be resolved.
func (g *Guard) RequireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := g.resolver.Resolve(r)
		if err != nil {
			g.logger.WarnContext(r.Context(), "Authentication failed",
				slog.String("path", r.URL.Path), slog.Any("error", err))
			WriteError(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

// RequireAdmin is RequireAuthenticated plus an is_admin check.
func (g *Guard) RequireAdmin(next http.Handler) http.Handler {
	return g.RequireAuthenticated(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, _ := UserFromContext(r.Context())
		if !user.IsAdmin {
			g.logger.WarnContext(r.Context(), "Admin route refused", slog.Int64("user_id", user.ID))
			WriteError(w, r, ErrInsufficientPrivilege)
			return
		}
		next.ServeHTTP(w, r)
	}))
}

// OptionalAuthenticated attaches the user when one resolves and otherwise lets the request
// through anonymously.
func (g *Guard) OptionalAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := g.resolver.Resolve(r)
		if err != nil {
			g.logger.DebugContext(r.Context(), "Proceeding without identity", slog.Any("error", err))
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}
