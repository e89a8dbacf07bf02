// Command create-admin creates the administrator account, or promotes and reactivates it when
// the username is already registered.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	database "github.com/SolarInitiative/Cloud-Solar-Backend/app/db"
	appLogger "github.com/SolarInitiative/Cloud-Solar-Backend/app/logger"
	"github.com/SolarInitiative/Cloud-Solar-Backend/config"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/api/auth"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/types"
)

const passwordEnv = config.EnvPrefix + "_ADMIN_PASSWORD"

type adminEnsurer interface {
	EnsureAdmin(ctx context.Context, spec auth.AdminUserSpec) (*types.User, bool, error)
}

func parseFlags(args []string, getenv func(string) string) (auth.AdminUserSpec, error) {
	var spec auth.AdminUserSpec
	fs := flag.NewFlagSet("create-admin", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&spec.Username, "username", "admin", "admin username")
	fs.StringVar(&spec.Email, "email", "admin@cloudsolar.com", "admin email")
	fs.StringVar(&spec.Password, "password", "", "admin password (or "+passwordEnv+")")
	fs.StringVar(&spec.FullName, "full-name", "Solar Admin", "display name")
	fs.StringVar(&spec.Location, "location", "Headquarters", "location")
	if err := fs.Parse(args); err != nil {
		return spec, err
	}
	if spec.Password == "" {
		spec.Password = getenv(passwordEnv)
	}
	switch {
	case strings.TrimSpace(spec.Username) == "":
		return spec, errors.New("username must not be empty")
	case !strings.Contains(spec.Email, "@"):
		return spec, fmt.Errorf("invalid email %q", spec.Email)
	case len(spec.Password) < 8:
		return spec, fmt.Errorf("password must be at least 8 characters (flag -password or %s)", passwordEnv)
	}
	return spec, nil
}

func run(ctx context.Context, svc adminEnsurer, spec auth.AdminUserSpec, out io.Writer) error {
	user, created, err := svc.EnsureAdmin(ctx, spec)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, strings.Repeat("=", 60))
	if created {
		fmt.Fprintln(out, "Admin user created")
	} else {
		fmt.Fprintf(out, "User %q already existed and now has admin rights\n", user.Username)
	}
	fmt.Fprintln(out, strings.Repeat("=", 60))
	fmt.Fprintf(out, "  ID:        %d\n", user.ID)
	fmt.Fprintf(out, "  Username:  %s\n", user.Username)
	fmt.Fprintf(out, "  Email:     %s\n", user.Email)
	fmt.Fprintf(out, "  Is Admin:  %t\n", user.IsAdmin)
	fmt.Fprintf(out, "  Is Active: %t\n", user.IsActive)
	fmt.Fprintln(out, "\nLog in with POST /api/v1/auth/login")
	return nil
}

func main() {
	_ = godotenv.Load()

	spec, err := parseFlags(os.Args[1:], os.Getenv)
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("FATAL: Error initializing config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
	logger := appLogger.New(cfg.Mode)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	dbConfig, err := database.NewDatabaseConfig(&cfg, logger)
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}
	pool, err := database.Init(ctx, dbConfig.ConnectionURL, logger)
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}
	defer pool.Close()

	tokens, err := auth.NewTokenService(cfg.JWT)
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}
	svc := auth.NewAuthService(auth.NewPostgresUserRepo(pool, logger), tokens, logger)

	if err := run(ctx, svc, spec, os.Stdout); err != nil {
		logger.Error("Failed to create admin user", slog.Any("error", err))
		pool.Close()
		os.Exit(1)
	}
}
