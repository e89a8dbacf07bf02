package energy

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	database "github.com/SolarInitiative/Cloud-Solar-Backend/app/db"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/types"
)

var _ Repository = (*PostgresEnergyRepo)(nil)

type Repository interface {
	CreateGeneration(ctx context.Context, params types.CreateEnergyGenerationParams) (*types.EnergyGeneration, error)
	ListGeneration(ctx context.Context, filter types.GenerationFilter, page types.Pagination) ([]types.EnergyGeneration, error)
	GetGeneration(ctx context.Context, id int64) (*types.EnergyGeneration, error)
	UpdateGeneration(ctx context.Context, id int64, params types.UpdateEnergyGenerationParams) (*types.EnergyGeneration, error)
	DeleteGeneration(ctx context.Context, id int64) error
}

// energy_generation has no updated_at column.
var generation = database.Table[types.EnergyGeneration]{
	Name: "energy_generation",
	Key:  "generation_id",
	Columns: `generation_id, panel_id, timestamp, energy_generated_kwh, voltage, current,
		temperature, irradiance, efficiency_percentage, created_at`,
	Scan: func(row pgx.Row) (*types.EnergyGeneration, error) {
		var g types.EnergyGeneration
		err := row.Scan(&g.GenerationID, &g.PanelID, &g.Timestamp, &g.EnergyGeneratedKWh, &g.Voltage,
			&g.Current, &g.Temperature, &g.Irradiance, &g.EfficiencyPercentage, &g.CreatedAt)
		if err != nil {
			return nil, err
		}
		return &g, nil
	},
}

type PostgresEnergyRepo struct {
	logger *slog.Logger
	pgpool database.DB
}

func NewRepository(pgpool database.DB, logger *slog.Logger) *PostgresEnergyRepo {
	return &PostgresEnergyRepo{
		logger: logger,
		pgpool: pgpool,
	}
}

func (r *PostgresEnergyRepo) start(ctx context.Context, name, op string) (context.Context, trace.Span) {
	return otel.Tracer("EnergyRepo").Start(ctx, name, trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", op),
		attribute.String("db.sql.table", generation.Name),
	))
}

func (r *PostgresEnergyRepo) end(ctx context.Context, span trace.Span, method string, err error) {
	defer span.End()
	if err == nil {
		span.SetStatus(codes.Ok, "")
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	if database.IgnoreNotFound(err) != nil {
		r.logger.ErrorContext(ctx, "Energy query failed", slog.String("method", method), slog.Any("error", err))
	}
}

func generationSet(p types.UpdateEnergyGenerationParams) *database.UpdateSet {
	var set database.UpdateSet
	database.Set(&set, "panel_id", p.PanelID)
	database.Set(&set, "timestamp", p.Timestamp)
	database.Set(&set, "energy_generated_kwh", p.EnergyGeneratedKWh)
	database.Set(&set, "voltage", p.Voltage)
	database.Set(&set, "current", p.Current)
	database.Set(&set, "temperature", p.Temperature)
	database.Set(&set, "irradiance", p.Irradiance)
	database.Set(&set, "efficiency_percentage", p.EfficiencyPercentage)
	return &set
}

func (r *PostgresEnergyRepo) CreateGeneration(ctx context.Context, params types.CreateEnergyGenerationParams) (*types.EnergyGeneration, error) {
	ctx, span := r.start(ctx, "CreateGeneration", "INSERT")
	g, err := generation.Insert(ctx, r.pgpool, generationSet(types.UpdateEnergyGenerationParams{
		PanelID:              params.PanelID,
		Timestamp:            &params.Timestamp,
		EnergyGeneratedKWh:   params.EnergyGeneratedKWh,
		Voltage:              params.Voltage,
		Current:              params.Current,
		Temperature:          params.Temperature,
		Irradiance:           params.Irradiance,
		EfficiencyPercentage: params.EfficiencyPercentage,
	}))
	r.end(ctx, span, "CreateGeneration", err)
	return g, err
}

func (r *PostgresEnergyRepo) ListGeneration(ctx context.Context, filter types.GenerationFilter, page types.Pagination) ([]types.EnergyGeneration, error) {
	ctx, span := r.start(ctx, "ListGeneration", "SELECT")
	var f database.Filter
	database.Eq(&f, "panel_id", filter.PanelID)
	out, err := generation.List(ctx, r.pgpool, &f, page)
	r.end(ctx, span, "ListGeneration", err)
	return out, err
}

func (r *PostgresEnergyRepo) GetGeneration(ctx context.Context, id int64) (*types.EnergyGeneration, error) {
	ctx, span := r.start(ctx, "GetGeneration", "SELECT")
	g, err := generation.Get(ctx, r.pgpool, id)
	r.end(ctx, span, "GetGeneration", err)
	return g, err
}

func (r *PostgresEnergyRepo) UpdateGeneration(ctx context.Context, id int64, params types.UpdateEnergyGenerationParams) (*types.EnergyGeneration, error) {
	ctx, span := r.start(ctx, "UpdateGeneration", "UPDATE")
	g, err := generation.Update(ctx, r.pgpool, id, generationSet(params))
	r.end(ctx, span, "UpdateGeneration", err)
	return g, err
}

func (r *PostgresEnergyRepo) DeleteGeneration(ctx context.Context, id int64) error {
	ctx, span := r.start(ctx, "DeleteGeneration", "DELETE")
	err := generation.Delete(ctx, r.pgpool, id)
	r.end(ctx, span, "DeleteGeneration", err)
	return err
}
