package farm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	CreateFarm(ctx context.Context, params types.CreateSolarFarmParams) (*types.SolarFarm, error)
	ListFarms(ctx context.Context, page types.Pagination) ([]types.SolarFarm, error)
	GetFarm(ctx context.Context, id int64) (*types.SolarFarm, error)
	UpdateFarm(ctx context.Context, id int64, params types.UpdateSolarFarmParams) (*types.SolarFarm, error)
	DeleteFarm(ctx context.Context, id int64) error

	CreatePanel(ctx context.Context, params types.SolarPanelParams) (*types.SolarPanel, error)
	ListPanels(ctx context.Context, filter types.PanelFilter, page types.Pagination) ([]types.SolarPanel, error)
	GetPanel(ctx context.Context, id int64) (*types.SolarPanel, error)
	UpdatePanel(ctx context.Context, id int64, params types.SolarPanelParams) (*types.SolarPanel, error)
	DeletePanel(ctx context.Context, id int64) error

	CreateMaintenance(ctx context.Context, params types.MaintenanceRecordParams) (*types.MaintenanceRecord, error)
	ListMaintenance(ctx context.Context, filter types.MaintenanceFilter, page types.Pagination) ([]types.MaintenanceRecord, error)
	GetMaintenance(ctx context.Context, id int64) (*types.MaintenanceRecord, error)
	UpdateMaintenance(ctx context.Context, id int64, params types.MaintenanceRecordParams) (*types.MaintenanceRecord, error)
	DeleteMaintenance(ctx context.Context, id int64) error
}

type ServiceImpl struct {
	logger *slog.Logger
	repo   Repository
	cache  *cache.Cache
}

// NewService wires the farm service. Farm detail reads go through c.
func NewService(repo Repository, c *cache.Cache, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
		cache:  c,
	}
}

func farmKey(id int64) string { return fmt.Sprintf("farm:%d", id) }

func (s *ServiceImpl) CreateFarm(ctx context.Context, params types.CreateSolarFarmParams) (*types.SolarFarm, error) {
	ctx, span := otel.Tracer("FarmService").Start(ctx, "CreateFarm", trace.WithAttributes(
		attribute.String("farm.name", params.FarmName),
	))
	defer span.End()

	farm, err := s.repo.CreateFarm(ctx, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create failed")
		return nil, fmt.Errorf("error creating solar farm: %w", err)
	}
	s.logger.InfoContext(ctx, "Solar farm created", slog.Int64("farmID", farm.FarmID))
	span.SetStatus(codes.Ok, "farm created")
	return farm, nil
}

func (s *ServiceImpl) ListFarms(ctx context.Context, page types.Pagination) ([]types.SolarFarm, error) {
	farms, err := s.repo.ListFarms(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("error listing solar farms: %w", err)
	}
	return farms, nil
}

func (s *ServiceImpl) GetFarm(ctx context.Context, id int64) (*types.SolarFarm, error) {
	ctx, span := otel.Tracer("FarmService").Start(ctx, "GetFarm", trace.WithAttributes(
		attribute.Int64("farm.id", id),
	))
	defer span.End()

	key := farmKey(id)
	if cached, found := s.cache.Get(key); found {
		if farm, ok := cached.(*types.SolarFarm); ok {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			cp := *farm
			return &cp, nil
		}
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))

	farm, err := s.repo.GetFarm(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "lookup failed")
		return nil, fmt.Errorf("error fetching solar farm %d: %w", id, err)
	}
	cp := *farm
	s.cache.Set(key, &cp, cache.DefaultExpiration)
	span.SetStatus(codes.Ok, "farm found")
	return farm, nil
}

func (s *ServiceImpl) UpdateFarm(ctx context.Context, id int64, params types.UpdateSolarFarmParams) (*types.SolarFarm, error) {
	ctx, span := otel.Tracer("FarmService").Start(ctx, "UpdateFarm", trace.WithAttributes(
		attribute.Int64("farm.id", id),
	))
	defer span.End()

	farm, err := s.repo.UpdateFarm(ctx, id, params)
	s.cache.Delete(farmKey(id))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
		return nil, fmt.Errorf("error updating solar farm %d: %w", id, err)
	}
	span.SetStatus(codes.Ok, "farm updated")
	return farm, nil
}

func (s *ServiceImpl) DeleteFarm(ctx context.Context, id int64) error {
	ctx, span := otel.Tracer("FarmService").Start(ctx, "DeleteFarm", trace.WithAttributes(
		attribute.Int64("farm.id", id),
	))
	defer span.End()

	err := s.repo.DeleteFarm(ctx, id)
	s.cache.Delete(farmKey(id))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delete failed")
		return fmt.Errorf("error deleting solar farm %d: %w", id, err)
	}
	s.logger.InfoContext(ctx, "Solar farm deleted", slog.Int64("farmID", id))
	span.SetStatus(codes.Ok, "farm deleted")
	return nil
}

func (s *ServiceImpl) CreatePanel(ctx context.Context, params types.SolarPanelParams) (*types.SolarPanel, error) {
	ctx, span := otel.Tracer("FarmService").Start(ctx, "CreatePanel")
	defer span.End()

	panel, err := s.repo.CreatePanel(ctx, params)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("error creating solar panel: %w", err)
	}
	return panel, nil
}

func (s *ServiceImpl) ListPanels(ctx context.Context, filter types.PanelFilter, page types.Pagination) ([]types.SolarPanel, error) {
	panels, err := s.repo.ListPanels(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("error listing solar panels: %w", err)
	}
	return panels, nil
}

func (s *ServiceImpl) GetPanel(ctx context.Context, id int64) (*types.SolarPanel, error) {
	panel, err := s.repo.GetPanel(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error fetching solar panel %d: %w", id, err)
	}
	return panel, nil
}

func (s *ServiceImpl) UpdatePanel(ctx context.Context, id int64, params types.SolarPanelParams) (*types.SolarPanel, error) {
	ctx, span := otel.Tracer("FarmService").Start(ctx, "UpdatePanel", trace.WithAttributes(
		attribute.Int64("panel.id", id),
	))
	defer span.End()

	panel, err := s.repo.UpdatePanel(ctx, id, params)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("error updating solar panel %d: %w", id, err)
	}
	return panel, nil
}

func (s *ServiceImpl) DeletePanel(ctx context.Context, id int64) error {
	if err := s.repo.DeletePanel(ctx, id); err != nil {
		return fmt.Errorf("error deleting solar panel %d: %w", id, err)
	}
	s.logger.InfoContext(ctx, "Solar panel deleted", slog.Int64("panelID", id))
	return nil
}

func (s *ServiceImpl) CreateMaintenance(ctx context.Context, params types.MaintenanceRecordParams) (*types.MaintenanceRecord, error) {
	ctx, span := otel.Tracer("FarmService").Start(ctx, "CreateMaintenance")
	defer span.End()

	rec, err := s.repo.CreateMaintenance(ctx, params)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("error creating maintenance record: %w", err)
	}
	return rec, nil
}

func (s *ServiceImpl) ListMaintenance(ctx context.Context, filter types.MaintenanceFilter, page types.Pagination) ([]types.MaintenanceRecord, error) {
	recs, err := s.repo.ListMaintenance(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("error listing maintenance records: %w", err)
	}
	return recs, nil
}

func (s *ServiceImpl) GetMaintenance(ctx context.Context, id int64) (*types.MaintenanceRecord, error) {
	rec, err := s.repo.GetMaintenance(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error fetching maintenance record %d: %w", id, err)
	}
	return rec, nil
}

func (s *ServiceImpl) UpdateMaintenance(ctx context.Context, id int64, params types.MaintenanceRecordParams) (*types.MaintenanceRecord, error) {
	rec, err := s.repo.UpdateMaintenance(ctx, id, params)
	if err != nil {
		return nil, fmt.Errorf("error updating maintenance record %d: %w", id, err)
	}
	return rec, nil
}

func (s *ServiceImpl) DeleteMaintenance(ctx context.Context, id int64) error {
	if err := s.repo.DeleteMaintenance(ctx, id); err != nil {
		return fmt.Errorf("error deleting maintenance record %d: %w", id, err)
	}
	return nil
}
