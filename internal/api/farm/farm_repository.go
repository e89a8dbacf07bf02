package farm

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

var _ Repository = (*PostgresFarmRepo)(nil)

type Repository interface {
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

var farms = database.Table[types.SolarFarm]{
	Name: "solar_farms",
	Key:  "farm_id",
	Columns: `farm_id, farm_name, location_address, latitude, longitude, total_capacity_kw,
		available_capacity_kw, land_lease_start_date, land_lease_end_date, land_owner,
		operational_status, commissioning_date, created_at, updated_at`,
	Scan: func(row pgx.Row) (*types.SolarFarm, error) {
		var f types.SolarFarm
		err := row.Scan(&f.FarmID, &f.FarmName, &f.LocationAddress, &f.Latitude, &f.Longitude,
			&f.TotalCapacityKW, &f.AvailableCapacityKW, &f.LandLeaseStartDate, &f.LandLeaseEndDate,
			&f.LandOwner, &f.OperationalStatus, &f.CommissioningDate, &f.CreatedAt, &f.UpdatedAt)
		if err != nil {
			return nil, err
		}
		return &f, nil
	},
	Touch: []string{"updated_at"},
}

var panels = database.Table[types.SolarPanel]{
	Name: "solar_panels",
	Key:  "panel_id",
	Columns: `panel_id, farm_id, panel_serial_number, manufacturer, model, capacity_watts,
		manufacture_date, installation_date, warranty_expiry_date, panel_status, orientation,
		tilt_angle, created_at, updated_at`,
	Scan: func(row pgx.Row) (*types.SolarPanel, error) {
		var p types.SolarPanel
		err := row.Scan(&p.PanelID, &p.FarmID, &p.PanelSerialNumber, &p.Manufacturer, &p.Model,
			&p.CapacityWatts, &p.ManufactureDate, &p.InstallationDate, &p.WarrantyExpiryDate,
			&p.PanelStatus, &p.Orientation, &p.TiltAngle, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		return &p, nil
	},
	Touch: []string{"updated_at"},
}

var maintenance = database.Table[types.MaintenanceRecord]{
	Name: "maintenance_records",
	Key:  "maintenance_id",
	Columns: `maintenance_id, panel_id, farm_id, maintenance_type, scheduled_date, completed_date,
		description, technician_name, cost, status, created_at, updated_at`,
	Scan: func(row pgx.Row) (*types.MaintenanceRecord, error) {
		var m types.MaintenanceRecord
		err := row.Scan(&m.MaintenanceID, &m.PanelID, &m.FarmID, &m.MaintenanceType, &m.ScheduledDate,
			&m.CompletedDate, &m.Description, &m.TechnicianName, &m.Cost, &m.Status,
			&m.CreatedAt, &m.UpdatedAt)
		if err != nil {
			return nil, err
		}
		return &m, nil
	},
	Touch: []string{"updated_at"},
}

type PostgresFarmRepo struct {
	logger *slog.Logger
	pgpool database.DB
}

func NewRepository(pgpool database.DB, logger *slog.Logger) *PostgresFarmRepo {
	return &PostgresFarmRepo{
		logger: logger,
		pgpool: pgpool,
	}
}

func (r *PostgresFarmRepo) span(ctx context.Context, name, op, table string) (context.Context, trace.Span) {
	return otel.Tracer("FarmRepo").Start(ctx, name, trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", op),
		attribute.String("db.sql.table", table),
	))
}

// finish records err on the span. Not-found is expected traffic and is not logged.
func (r *PostgresFarmRepo) finish(ctx context.Context, span trace.Span, method string, err error) {
	if err == nil {
		span.SetStatus(codes.Ok, "")
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	if database.IgnoreNotFound(err) != nil {
		r.logger.ErrorContext(ctx, "Farm query failed", slog.String("method", method), slog.Any("error", err))
	}
}

func farmSet(p types.UpdateSolarFarmParams) *database.UpdateSet {
	var set database.UpdateSet
	database.Set(&set, "farm_name", p.FarmName)
	database.Set(&set, "location_address", p.LocationAddress)
	database.Set(&set, "latitude", p.Latitude)
	database.Set(&set, "longitude", p.Longitude)
	database.Set(&set, "total_capacity_kw", p.TotalCapacityKW)
	database.Set(&set, "available_capacity_kw", p.AvailableCapacityKW)
	database.Set(&set, "land_lease_start_date", p.LandLeaseStartDate)
	database.Set(&set, "land_lease_end_date", p.LandLeaseEndDate)
	database.Set(&set, "land_owner", p.LandOwner)
	database.Set(&set, "operational_status", p.OperationalStatus)
	database.Set(&set, "commissioning_date", p.CommissioningDate)
	return &set
}

func (r *PostgresFarmRepo) CreateFarm(ctx context.Context, params types.CreateSolarFarmParams) (*types.SolarFarm, error) {
	ctx, span := r.span(ctx, "CreateFarm", "INSERT", farms.Name)
	defer span.End()

	set := farmSet(types.UpdateSolarFarmParams{
		FarmName:            &params.FarmName,
		LocationAddress:     params.LocationAddress,
		Latitude:            params.Latitude,
		Longitude:           params.Longitude,
		TotalCapacityKW:     params.TotalCapacityKW,
		AvailableCapacityKW: params.AvailableCapacityKW,
		LandLeaseStartDate:  params.LandLeaseStartDate,
		LandLeaseEndDate:    params.LandLeaseEndDate,
		LandOwner:           params.LandOwner,
		OperationalStatus:   params.OperationalStatus,
		CommissioningDate:   params.CommissioningDate,
	})
	farm, err := farms.Insert(ctx, r.pgpool, set)
	r.finish(ctx, span, "CreateFarm", err)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int64("farm.id", farm.FarmID))
	return farm, nil
}

func (r *PostgresFarmRepo) ListFarms(ctx context.Context, page types.Pagination) ([]types.SolarFarm, error) {
	ctx, span := r.span(ctx, "ListFarms", "SELECT", farms.Name)
	defer span.End()

	out, err := farms.List(ctx, r.pgpool, nil, page)
	r.finish(ctx, span, "ListFarms", err)
	return out, err
}

func (r *PostgresFarmRepo) GetFarm(ctx context.Context, id int64) (*types.SolarFarm, error) {
	ctx, span := r.span(ctx, "GetFarm", "SELECT", farms.Name)
	defer span.End()

	farm, err := farms.Get(ctx, r.pgpool, id)
	r.finish(ctx, span, "GetFarm", err)
	return farm, err
}

func (r *PostgresFarmRepo) UpdateFarm(ctx context.Context, id int64, params types.UpdateSolarFarmParams) (*types.SolarFarm, error) {
	ctx, span := r.span(ctx, "UpdateFarm", "UPDATE", farms.Name)
	defer span.End()

	farm, err := farms.Update(ctx, r.pgpool, id, farmSet(params))
	r.finish(ctx, span, "UpdateFarm", err)
	return farm, err
}

func (r *PostgresFarmRepo) DeleteFarm(ctx context.Context, id int64) error {
	ctx, span := r.span(ctx, "DeleteFarm", "DELETE", farms.Name)
	defer span.End()

	err := farms.Delete(ctx, r.pgpool, id)
	r.finish(ctx, span, "DeleteFarm", err)
	return err
}

func panelSet(p types.SolarPanelParams) *database.UpdateSet {
	var set database.UpdateSet
	database.Set(&set, "farm_id", p.FarmID)
	database.Set(&set, "panel_serial_number", p.PanelSerialNumber)
	database.Set(&set, "manufacturer", p.Manufacturer)
	database.Set(&set, "model", p.Model)
	database.Set(&set, "capacity_watts", p.CapacityWatts)
	database.Set(&set, "manufacture_date", p.ManufactureDate)
	database.Set(&set, "installation_date", p.InstallationDate)
	database.Set(&set, "warranty_expiry_date", p.WarrantyExpiryDate)
	database.Set(&set, "panel_status", p.PanelStatus)
	database.Set(&set, "orientation", p.Orientation)
	database.Set(&set, "tilt_angle", p.TiltAngle)
	return &set
}

func (r *PostgresFarmRepo) CreatePanel(ctx context.Context, params types.SolarPanelParams) (*types.SolarPanel, error) {
	ctx, span := r.span(ctx, "CreatePanel", "INSERT", panels.Name)
	defer span.End()

	panel, err := panels.Insert(ctx, r.pgpool, panelSet(params))
	r.finish(ctx, span, "CreatePanel", err)
	return panel, err
}

func (r *PostgresFarmRepo) ListPanels(ctx context.Context, filter types.PanelFilter, page types.Pagination) ([]types.SolarPanel, error) {
	ctx, span := r.span(ctx, "ListPanels", "SELECT", panels.Name)
	defer span.End()

	var f database.Filter
	database.Eq(&f, "farm_id", filter.FarmID)
	out, err := panels.List(ctx, r.pgpool, &f, page)
	r.finish(ctx, span, "ListPanels", err)
	return out, err
}

func (r *PostgresFarmRepo) GetPanel(ctx context.Context, id int64) (*types.SolarPanel, error) {
	ctx, span := r.span(ctx, "GetPanel", "SELECT", panels.Name)
	defer span.End()

	panel, err := panels.Get(ctx, r.pgpool, id)
	r.finish(ctx, span, "GetPanel", err)
	return panel, err
}

func (r *PostgresFarmRepo) UpdatePanel(ctx context.Context, id int64, params types.SolarPanelParams) (*types.SolarPanel, error) {
	ctx, span := r.span(ctx, "UpdatePanel", "UPDATE", panels.Name)
	defer span.End()

	panel, err := panels.Update(ctx, r.pgpool, id, panelSet(params))
	r.finish(ctx, span, "UpdatePanel", err)
	return panel, err
}

func (r *PostgresFarmRepo) DeletePanel(ctx context.Context, id int64) error {
	ctx, span := r.span(ctx, "DeletePanel", "DELETE", panels.Name)
	defer span.End()

	err := panels.Delete(ctx, r.pgpool, id)
	r.finish(ctx, span, "DeletePanel", err)
	return err
}

func maintenanceSet(p types.MaintenanceRecordParams) *database.UpdateSet {
	var set database.UpdateSet
	database.Set(&set, "panel_id", p.PanelID)
	database.Set(&set, "farm_id", p.FarmID)
	database.Set(&set, "maintenance_type", p.MaintenanceType)
	database.Set(&set, "scheduled_date", p.ScheduledDate)
	database.Set(&set, "completed_date", p.CompletedDate)
	database.Set(&set, "description", p.Description)
	database.Set(&set, "technician_name", p.TechnicianName)
	database.Set(&set, "cost", p.Cost)
	database.Set(&set, "status", p.Status)
	return &set
}

func (r *PostgresFarmRepo) CreateMaintenance(ctx context.Context, params types.MaintenanceRecordParams) (*types.MaintenanceRecord, error) {
	ctx, span := r.span(ctx, "CreateMaintenance", "INSERT", maintenance.Name)
	defer span.End()

	rec, err := maintenance.Insert(ctx, r.pgpool, maintenanceSet(params))
	r.finish(ctx, span, "CreateMaintenance", err)
	return rec, err
}

func (r *PostgresFarmRepo) ListMaintenance(ctx context.Context, filter types.MaintenanceFilter, page types.Pagination) ([]types.MaintenanceRecord, error) {
	ctx, span := r.span(ctx, "ListMaintenance", "SELECT", maintenance.Name)
	defer span.End()

	var f database.Filter
	database.Eq(&f, "farm_id", filter.FarmID)
	database.Eq(&f, "panel_id", filter.PanelID)
	out, err := maintenance.List(ctx, r.pgpool, &f, page)
	r.finish(ctx, span, "ListMaintenance", err)
	return out, err
}

func (r *PostgresFarmRepo) GetMaintenance(ctx context.Context, id int64) (*types.MaintenanceRecord, error) {
	ctx, span := r.span(ctx, "GetMaintenance", "SELECT", maintenance.Name)
	defer span.End()

	rec, err := maintenance.Get(ctx, r.pgpool, id)
	r.finish(ctx, span, "GetMaintenance", err)
	return rec, err
}

func (r *PostgresFarmRepo) UpdateMaintenance(ctx context.Context, id int64, params types.MaintenanceRecordParams) (*types.MaintenanceRecord, error) {
	ctx, span := r.span(ctx, "UpdateMaintenance", "UPDATE", maintenance.Name)
	defer span.End()

	rec, err := maintenance.Update(ctx, r.pgpool, id, maintenanceSet(params))
	r.finish(ctx, span, "UpdateMaintenance", err)
	return rec, err
}

func (r *PostgresFarmRepo) DeleteMaintenance(ctx context.Context, id int64) error {
	ctx, span := r.span(ctx, "DeleteMaintenance", "DELETE", maintenance.Name)
	defer span.End()

	err := maintenance.Delete(ctx, r.pgpool, id)
	r.finish(ctx, span, "DeleteMaintenance", err)
	return err
}
