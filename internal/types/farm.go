package types

import "time"

type SolarFarm struct {
	FarmID              int64     `json:"farm_id"`
	FarmName            string    `json:"farm_name"`
	LocationAddress     *string   `json:"location_address"`
	Latitude            *float64  `json:"latitude"`
	Longitude           *float64  `json:"longitude"`
	TotalCapacityKW     *float64  `json:"total_capacity_kw"` // NUMERIC(10,2)
	AvailableCapacityKW *float64  `json:"available_capacity_kw"`
	LandLeaseStartDate  *Date     `json:"land_lease_start_date"`
	LandLeaseEndDate    *Date     `json:"land_lease_end_date"`
	LandOwner           *string   `json:"land_owner"`
	OperationalStatus   *string   `json:"operational_status"`
	CommissioningDate   *Date     `json:"commissioning_date"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type CreateSolarFarmParams struct {
	FarmName            string   `json:"farm_name" validate:"required,max=255"`
	LocationAddress     *string  `json:"location_address,omitempty"`
	Latitude            *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude           *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
	TotalCapacityKW     *float64 `json:"total_capacity_kw,omitempty" validate:"omitempty,gte=0"`
	AvailableCapacityKW *float64 `json:"available_capacity_kw,omitempty" validate:"omitempty,gte=0"`
	LandLeaseStartDate  *Date    `json:"land_lease_start_date,omitempty"`
	LandLeaseEndDate    *Date    `json:"land_lease_end_date,omitempty"`
	LandOwner           *string  `json:"land_owner,omitempty" validate:"omitempty,max=255"`
	OperationalStatus   *string  `json:"operational_status,omitempty" validate:"omitempty,max=20"`
	CommissioningDate   *Date    `json:"commissioning_date,omitempty"`
}

// UpdateSolarFarmParams only touches the fields that are set.
type UpdateSolarFarmParams struct {
	FarmName            *string  `json:"farm_name,omitempty" validate:"omitempty,min=1,max=255"`
	LocationAddress     *string  `json:"location_address,omitempty"`
	Latitude            *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude           *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
	TotalCapacityKW     *float64 `json:"total_capacity_kw,omitempty" validate:"omitempty,gte=0"`
	AvailableCapacityKW *float64 `json:"available_capacity_kw,omitempty" validate:"omitempty,gte=0"`
	LandLeaseStartDate  *Date    `json:"land_lease_start_date,omitempty"`
	LandLeaseEndDate    *Date    `json:"land_lease_end_date,omitempty"`
	LandOwner           *string  `json:"land_owner,omitempty" validate:"omitempty,max=255"`
	OperationalStatus   *string  `json:"operational_status,omitempty" validate:"omitempty,max=20"`
	CommissioningDate   *Date    `json:"commissioning_date,omitempty"`
}

type SolarPanel struct {
	PanelID            int64     `json:"panel_id"`
	FarmID             *int64    `json:"farm_id"`
	PanelSerialNumber  *string   `json:"panel_serial_number"`
	Manufacturer       *string   `json:"manufacturer"`
	Model              *string   `json:"model"`
	CapacityWatts      *float64  `json:"capacity_watts"`
	ManufactureDate    *Date     `json:"manufacture_date"`
	InstallationDate   *Date     `json:"installation_date"`
	WarrantyExpiryDate *Date     `json:"warranty_expiry_date"`
	PanelStatus        *string   `json:"panel_status"`
	Orientation        *string   `json:"orientation"`
	TiltAngle          *float64  `json:"tilt_angle"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// SolarPanelParams is used both for creation and for partial updates; every column is optional.
type SolarPanelParams struct {
	FarmID             *int64   `json:"farm_id,omitempty" validate:"omitempty,gt=0"`
	PanelSerialNumber  *string  `json:"panel_serial_number,omitempty" validate:"omitempty,max=100"`
	Manufacturer       *string  `json:"manufacturer,omitempty" validate:"omitempty,max=100"`
	Model              *string  `json:"model,omitempty" validate:"omitempty,max=100"`
	CapacityWatts      *float64 `json:"capacity_watts,omitempty" validate:"omitempty,gte=0"`
	ManufactureDate    *Date    `json:"manufacture_date,omitempty"`
	InstallationDate   *Date    `json:"installation_date,omitempty"`
	WarrantyExpiryDate *Date    `json:"warranty_expiry_date,omitempty"`
	PanelStatus        *string  `json:"panel_status,omitempty" validate:"omitempty,max=20"`
	Orientation        *string  `json:"orientation,omitempty" validate:"omitempty,max=50"`
	TiltAngle          *float64 `json:"tilt_angle,omitempty" validate:"omitempty,gte=0,lte=90"`
}

type PanelFilter struct {
	FarmID *int64
}

type MaintenanceRecord struct {
	MaintenanceID   int64     `json:"maintenance_id"`
	PanelID         *int64    `json:"panel_id"`
	FarmID          *int64    `json:"farm_id"`
	MaintenanceType *string   `json:"maintenance_type"`
	ScheduledDate   *Date     `json:"scheduled_date"`
	CompletedDate   *Date     `json:"completed_date"`
	Description     *string   `json:"description"`
	TechnicianName  *string   `json:"technician_name"`
	Cost            *float64  `json:"cost"`
	Status          *string   `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type MaintenanceRecordParams struct {
	PanelID         *int64   `json:"panel_id,omitempty" validate:"omitempty,gt=0"`
	FarmID          *int64   `json:"farm_id,omitempty" validate:"omitempty,gt=0"`
	MaintenanceType *string  `json:"maintenance_type,omitempty" validate:"omitempty,max=50"`
	ScheduledDate   *Date    `json:"scheduled_date,omitempty"`
	CompletedDate   *Date    `json:"completed_date,omitempty"`
	Description     *string  `json:"description,omitempty"`
	TechnicianName  *string  `json:"technician_name,omitempty" validate:"omitempty,max=100"`
	Cost            *float64 `json:"cost,omitempty" validate:"omitempty,gte=0"`
	Status          *string  `json:"status,omitempty" validate:"omitempty,max=20"`
}

type MaintenanceFilter struct {
	FarmID  *int64
	PanelID *int64
}
