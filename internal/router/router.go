package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/api"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/api/auth"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/api/customer"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/api/energy"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/api/farm"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/api/health"
)

// Config contains dependencies needed for the router setup
type Config struct {
	AuthHandler     *auth.AuthHandler
	FarmHandler     *farm.Handler
	EnergyHandler   *energy.Handler
	CustomerHandler *customer.Handler
	Guard           *auth.Guard
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (request id, logging, recoverer, CORS) is applied by the caller.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Get("/health", health.Health)
	r.With(cfg.Guard.OptionalAuthenticated).Get("/", health.Root)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api/v1", func(r chi.Router) {
		// Public auth routes
		r.Post("/auth/signup", cfg.AuthHandler.Signup)
		r.Post("/auth/login", cfg.AuthHandler.Login)
		r.With(cfg.Guard.OptionalAuthenticated).Get("/auth/session", cfg.AuthHandler.Session)

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(cfg.Guard.RequireAuthenticated)

			r.Get("/auth/me", cfg.AuthHandler.Me)
			r.Put("/auth/me", cfg.AuthHandler.UpdateMe)

			r.Mount("/farms", farm.Routes(cfg.FarmHandler))
			r.Mount("/energy", energy.Routes(cfg.EnergyHandler))
			r.Mount("/customers", customer.Routes(cfg.CustomerHandler))
		})

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Use(cfg.Guard.RequireAdmin)
			r.Get("/users", cfg.AuthHandler.ListUsers)
			r.Put("/users/{userID}", cfg.AuthHandler.UpdateUser)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		api.ErrorResponse(w, r, http.StatusNotFound, "Not Found")
	})

	return r
}
