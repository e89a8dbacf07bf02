package container

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/patrickmn/go-cache"

	database "github.com/SolarInitiative/Cloud-Solar-Backend/app/db"
	"github.com/SolarInitiative/Cloud-Solar-Backend/config"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/api/auth"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/api/customer"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/api/energy"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/api/farm"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/router"
)

// Container holds all application dependencies
type Container struct {
	Config          *config.Config
	Logger          *slog.Logger
	Pool            *pgxpool.Pool
	AuthService     *auth.AuthServiceImpl
	AuthHandler     *auth.AuthHandler
	FarmHandler     *farm.Handler
	EnergyHandler   *energy.Handler
	CustomerHandler *customer.Handler
	Guard           *auth.Guard
	sessions        *auth.JWKSSessionVerifier
}

// NewContainer initializes and returns a new dependency container. The pool is created here;
// migrations are expected to have run already.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	dbConfig, err := database.NewDatabaseConfig(cfg, logger)
	if err != nil {
		logger.Error("Failed to generate database config", slog.Any("error", err))
		return nil, err
	}

	pool, err := database.Init(ctx, dbConfig.ConnectionURL, logger)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.Any("error", err))
		return nil, err
	}

	c, err := newContainer(ctx, cfg, pool, logger)
	if err != nil {
		pool.Close()
		return nil, err
	}
	c.Pool = pool
	return c, nil
}

func newContainer(ctx context.Context, cfg *config.Config, db database.DB, logger *slog.Logger) (*Container, error) {
	tokens, err := auth.NewTokenService(cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("token service: %w", err)
	}

	var (
		sessions       *auth.JWKSSessionVerifier
		sessionChecker auth.SessionVerifier
	)
	if cfg.Auth.Session.Enabled {
		sessions, err = auth.NewJWKSSessionVerifier(ctx, cfg.Auth.Session, logger)
		if err != nil {
			return nil, err
		}
		sessionChecker = sessions
	}

	// Initialize repositories
	userRepo := auth.NewPostgresUserRepo(db, logger)
	farmRepo := farm.NewRepository(db, logger)
	energyRepo := energy.NewRepository(db, logger)
	customerRepo := customer.NewRepository(db, logger)

	// Initialize services
	authService := auth.NewAuthService(userRepo, tokens, logger)
	farmService := farm.NewService(farmRepo, cache.New(cfg.Cache.DefaultExpiration, cfg.Cache.CleanupInterval), logger)
	energyService := energy.NewService(energyRepo, logger)
	customerService := customer.NewService(customerRepo, logger)

	strategies := auth.BuildStrategies(cfg, tokens, sessionChecker)
	resolver := auth.NewResolver(userRepo, logger, strategies...)
	if cfg.DevBypassAllowed() {
		logger.Warn("Developer API key bypass is enabled", slog.Int64("dev_user_id", cfg.Auth.DevUserID))
	}

	return &Container{
		Config:          cfg,
		Logger:          logger,
		AuthService:     authService,
		AuthHandler:     auth.NewAuthHandler(authService, logger),
		FarmHandler:     farm.NewHandler(farmService, logger),
		EnergyHandler:   energy.NewHandler(energyService, logger),
		CustomerHandler: customer.NewHandler(customerService, logger),
		Guard:           auth.NewGuard(resolver, logger),
		sessions:        sessions,
	}, nil
}

// RouterConfig returns the handlers and guard the router is built from.
func (c *Container) RouterConfig() *router.Config {
	return &router.Config{
		AuthHandler:     c.AuthHandler,
		FarmHandler:     c.FarmHandler,
		EnergyHandler:   c.EnergyHandler,
		CustomerHandler: c.CustomerHandler,
		Guard:           c.Guard,
	}
}

// SeedUsers loads the configured users file, if any, and creates the users it lists.
func (c *Container) SeedUsers(ctx context.Context) error {
	path := c.Config.Seed.UsersFile
	if path == "" {
		return nil
	}
	users, err := auth.LoadSeedUsers(path)
	if err != nil {
		return err
	}
	_, err = c.AuthService.SeedUsers(ctx, users)
	return err
}

// Close releases all resources held by the container
func (c *Container) Close() {
	if c.sessions != nil {
		c.sessions.Close()
	}
	if c.Pool != nil {
		c.Pool.Close()
	}
}

// WaitForDB waits for the database to be ready
func (c *Container) WaitForDB(ctx context.Context) bool {
	return database.WaitForDB(ctx, c.Pool, c.Logger)
}
