package appMiddleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	appLogger "github.com/SolarInitiative/Cloud-Solar-Backend/app/logger"
)

// Use installs the middleware shared by every route: request ids, real ip, structured request
// logging, panic recovery, a request timeout, response compression and CORS.
func Use(r chi.Router, logger *slog.Logger, timeout time.Duration) {
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(appLogger.StructuredLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	if timeout > 0 {
		r.Use(middleware.Timeout(timeout))
	}
	r.Use(middleware.Compress(5, "application/json"))
	r.Use(CORS())
}

func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-API-Key", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "WWW-Authenticate"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
