package energy

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	CreateGeneration(ctx context.Context, params types.CreateEnergyGenerationParams) (*types.EnergyGeneration, error)
	ListGeneration(ctx context.Context, filter types.GenerationFilter, page types.Pagination) ([]types.EnergyGeneration, error)
	GetGeneration(ctx context.Context, id int64) (*types.EnergyGeneration, error)
	UpdateGeneration(ctx context.Context, id int64, params types.UpdateEnergyGenerationParams) (*types.EnergyGeneration, error)
	DeleteGeneration(ctx context.Context, id int64) error
}

type ServiceImpl struct {
	logger *slog.Logger
	repo   Repository
}

func NewService(repo Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

func (s *ServiceImpl) CreateGeneration(ctx context.Context, params types.CreateEnergyGenerationParams) (*types.EnergyGeneration, error) {
	attrs := []attribute.KeyValue{attribute.String("generation.timestamp", params.Timestamp.String())}
	if params.PanelID != nil {
		attrs = append(attrs, attribute.Int64("panel.id", *params.PanelID))
	}
	ctx, span := otel.Tracer("EnergyService").Start(ctx, "CreateGeneration", trace.WithAttributes(attrs...))
	defer span.End()

	g, err := s.repo.CreateGeneration(ctx, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create failed")
		return nil, fmt.Errorf("error recording energy generation: %w", err)
	}
	s.logger.DebugContext(ctx, "Energy generation recorded", slog.Int64("generationID", g.GenerationID))
	span.SetStatus(codes.Ok, "generation recorded")
	return g, nil
}

func (s *ServiceImpl) ListGeneration(ctx context.Context, filter types.GenerationFilter, page types.Pagination) ([]types.EnergyGeneration, error) {
	out, err := s.repo.ListGeneration(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("error listing energy generation: %w", err)
	}
	return out, nil
}

func (s *ServiceImpl) GetGeneration(ctx context.Context, id int64) (*types.EnergyGeneration, error) {
	g, err := s.repo.GetGeneration(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error fetching energy generation %d: %w", id, err)
	}
	return g, nil
}

func (s *ServiceImpl) UpdateGeneration(ctx context.Context, id int64, params types.UpdateEnergyGenerationParams) (*types.EnergyGeneration, error) {
	ctx, span := otel.Tracer("EnergyService").Start(ctx, "UpdateGeneration", trace.WithAttributes(
		attribute.Int64("generation.id", id),
	))
	defer span.End()

	g, err := s.repo.UpdateGeneration(ctx, id, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
		return nil, fmt.Errorf("error updating energy generation %d: %w", id, err)
	}
	return g, nil
}

func (s *ServiceImpl) DeleteGeneration(ctx context.Context, id int64) error {
	if err := s.repo.DeleteGeneration(ctx, id); err != nil {
		return fmt.Errorf("error deleting energy generation %d: %w", id, err)
	}
	return nil
}
