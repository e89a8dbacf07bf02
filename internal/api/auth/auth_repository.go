package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	database "github.com/SolarInitiative/Cloud-Solar-Backend/app/db"
	"github.com/SolarInitiative/Cloud-Solar-Backend/app/observability/metrics"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/types"
)

var _ UserRepo = (*PostgresUserRepo)(nil)

// UserRepo defines the contract for user persistence.
type UserRepo interface {
	UserStore
	GetUserByUsername(ctx context.Context, username string) (*types.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, params types.CreateUserParams) (*types.User, error)
	// UpdateProfile changes only the non-nil fields of params.
	UpdateProfile(ctx context.Context, id int64, params types.UpdateProfileParams) (*types.User, error)
	UpdateStatus(ctx context.Context, id int64, params types.UpdateUserStatusParams) (*types.User, error)
	ListUsers(ctx context.Context, page types.Pagination) ([]types.User, error)
	UpdateLastLogin(ctx context.Context, id int64) error
}

const userColumns = `id, username, email, hashed_password, full_name, location, first_name, last_name,
	phone, address, city, state, postal_code, utility_provider, utility_account_number,
	registration_date, account_status, external_id, is_active, is_admin, created_at, updated_at,
	last_login_at`

type PostgresUserRepo struct {
	logger *slog.Logger
	pgpool database.DB
}

func NewPostgresUserRepo(pgpool database.DB, logger *slog.Logger) *PostgresUserRepo {
	return &PostgresUserRepo{
		logger: logger,
		pgpool: pgpool,
	}
}

func scanUser(row pgx.Row) (*types.User, error) {
	var u types.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.HashedPassword, &u.FullName, &u.Location,
		&u.FirstName, &u.LastName, &u.Phone, &u.Address, &u.City, &u.State, &u.PostalCode,
		&u.UtilityProvider, &u.UtilityAccountNumber, &u.RegistrationDate, &u.AccountStatus,
		&u.ExternalID, &u.IsActive, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt, &u.LastLoginAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *PostgresUserRepo) getOne(ctx context.Context, op, where string, arg any) (*types.User, error) {
	ctx, span := otel.Tracer("UserRepo").Start(ctx, op, trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "users"),
	))
	defer span.End()

	start := time.Now()
	user, err := scanUser(r.pgpool.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE "+where, arg))
	metrics.ObserveQuery(ctx, op, start, database.IgnoreNotFound(err))
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			span.SetStatus(codes.Error, "user not found")
			return nil, err
		}
		r.logger.ErrorContext(ctx, "Failed to query user", slog.String("method", op), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return nil, fmt.Errorf("error querying user: %w", err)
	}
	span.SetStatus(codes.Ok, "user found")
	return user, nil
}

func (r *PostgresUserRepo) GetUserByID(ctx context.Context, id int64) (*types.User, error) {
	return r.getOne(ctx, "GetUserByID", "id = $1", id)
}

func (r *PostgresUserRepo) GetUserByExternalID(ctx context.Context, externalID string) (*types.User, error) {
	return r.getOne(ctx, "GetUserByExternalID", "external_id = $1", externalID)
}

func (r *PostgresUserRepo) GetUserByUsername(ctx context.Context, username string) (*types.User, error) {
	return r.getOne(ctx, "GetUserByUsername", "username = $1", username)
}

func (r *PostgresUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username", username)
}

func (r *PostgresUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email", email)
}

func (r *PostgresUserRepo) exists(ctx context.Context, col string, v string) (bool, error) {
	var exists bool
	start := time.Now()
	err := r.pgpool.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE "+col+" = $1)", v).Scan(&exists)
	metrics.ObserveQuery(ctx, "ExistsBy_"+col, start, err)
	if err != nil {
		return false, fmt.Errorf("error checking %s: %w", col, err)
	}
	return exists, nil
}

func (r *PostgresUserRepo) CreateUser(ctx context.Context, params types.CreateUserParams) (*types.User, error) {
	ctx, span := otel.Tracer("UserRepo").Start(ctx, "CreateUser", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "INSERT"),
		attribute.String("db.sql.table", "users"),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "CreateUser"), slog.String("username", params.Username))
	l.DebugContext(ctx, "Inserting user")

	query := `INSERT INTO users (username, email, hashed_password, full_name, location, external_id, is_active, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + userColumns

	start := time.Now()
	user, err := scanUser(r.pgpool.QueryRow(ctx, query,
		params.Username, params.Email, params.HashedPassword, params.FullName, params.Location,
		params.ExternalID, params.IsActive, params.IsAdmin))
	metrics.ObserveQuery(ctx, "CreateUser", start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		if database.IsUniqueViolation(err) {
			return nil, fmt.Errorf("user %q: %w", params.Username, types.ErrConflict)
		}
		l.ErrorContext(ctx, "Failed to insert user", slog.Any("error", err))
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	span.SetAttributes(attribute.Int64("db.user.id", user.ID))
	span.SetStatus(codes.Ok, "user created")
	l.InfoContext(ctx, "User created", slog.Int64("userID", user.ID))
	return user, nil
}

func (r *PostgresUserRepo) UpdateProfile(ctx context.Context, id int64, params types.UpdateProfileParams) (*types.User, error) {
	var set database.UpdateSet
	database.Set(&set, "full_name", params.FullName)
	database.Set(&set, "location", params.Location)
	database.Set(&set, "first_name", params.FirstName)
	database.Set(&set, "last_name", params.LastName)
	database.Set(&set, "phone", params.Phone)
	database.Set(&set, "address", params.Address)
	database.Set(&set, "city", params.City)
	database.Set(&set, "state", params.State)
	database.Set(&set, "postal_code", params.PostalCode)
	database.Set(&set, "utility_provider", params.UtilityProvider)
	database.Set(&set, "utility_account_number", params.UtilityAccountNumber)
	return r.update(ctx, "UpdateProfile", id, &set)
}

func (r *PostgresUserRepo) UpdateStatus(ctx context.Context, id int64, params types.UpdateUserStatusParams) (*types.User, error) {
	var set database.UpdateSet
	database.Set(&set, "is_admin", params.IsAdmin)
	database.Set(&set, "is_active", params.IsActive)
	database.Set(&set, "account_status", params.AccountStatus)
	return r.update(ctx, "UpdateStatus", id, &set)
}

func (r *PostgresUserRepo) update(ctx context.Context, op string, id int64, set *database.UpdateSet) (*types.User, error) {
	ctx, span := otel.Tracer("UserRepo").Start(ctx, op, trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "UPDATE"),
		attribute.String("db.sql.table", "users"),
		attribute.Int64("db.user.id", id),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", op), slog.Int64("userID", id))
	if set.Len() == 0 {
		l.DebugContext(ctx, "No fields to update")
		return r.GetUserByID(ctx, id)
	}
	set.SetRaw("updated_at", "now()")

	query, args, err := set.Build("users", "id", id, userColumns)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	user, err := scanUser(r.pgpool.QueryRow(ctx, query, args...))
	metrics.ObserveQuery(ctx, op, start, database.IgnoreNotFound(err))
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			span.SetStatus(codes.Error, "user not found")
			return nil, err
		}
		l.ErrorContext(ctx, "Failed to update user", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	span.SetStatus(codes.Ok, "user updated")
	return user, nil
}

func (r *PostgresUserRepo) ListUsers(ctx context.Context, page types.Pagination) ([]types.User, error) {
	ctx, span := otel.Tracer("UserRepo").Start(ctx, "ListUsers", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "users"),
	))
	defer span.End()

	page = page.Normalize()
	start := time.Now()
	rows, err := r.pgpool.Query(ctx,
		"SELECT "+userColumns+" FROM users ORDER BY id OFFSET $1 LIMIT $2", page.Skip, page.Limit)
	if err != nil {
		metrics.ObserveQuery(ctx, "ListUsers", start, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	users := make([]types.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, *u)
	}
	err = rows.Err()
	metrics.ObserveQuery(ctx, "ListUsers", start, err)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	span.SetStatus(codes.Ok, "users listed")
	return users, nil
}

func (r *PostgresUserRepo) UpdateLastLogin(ctx context.Context, id int64) error {
	start := time.Now()
	tag, err := r.pgpool.Exec(ctx, "UPDATE users SET last_login_at = now() WHERE id = $1", id)
	metrics.ObserveQuery(ctx, "UpdateLastLogin", start, err)
	if err != nil {
		return fmt.Errorf("error updating last login: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return types.ErrNotFound
	}
	return nil
}
