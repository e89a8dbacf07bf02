package types

import "time"

// EnergyGeneration is one meter reading for a single panel.
type EnergyGeneration struct {
	GenerationID         int64     `json:"generation_id"`
	PanelID              *int64    `json:"panel_id"`
	Timestamp            time.Time `json:"timestamp"`
	EnergyGeneratedKWh   *float64  `json:"energy_generated_kwh"`
	Voltage              *float64  `json:"voltage"`
	Current              *float64  `json:"current"`
	Temperature          *float64  `json:"temperature"`
	Irradiance           *float64  `json:"irradiance"`
	EfficiencyPercentage *float64  `json:"efficiency_percentage"`
	CreatedAt            time.Time `json:"created_at"`
}

type CreateEnergyGenerationParams struct {
	PanelID              *int64    `json:"panel_id,omitempty" validate:"omitempty,gt=0"`
	Timestamp            time.Time `json:"timestamp" validate:"required"`
	EnergyGeneratedKWh   *float64  `json:"energy_generated_kwh,omitempty" validate:"omitempty,gte=0"`
	Voltage              *float64  `json:"voltage,omitempty"`
	Current              *float64  `json:"current,omitempty"`
	Temperature          *float64  `json:"temperature,omitempty"`
	Irradiance           *float64  `json:"irradiance,omitempty" validate:"omitempty,gte=0"`
	EfficiencyPercentage *float64  `json:"efficiency_percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
}

type UpdateEnergyGenerationParams struct {
	PanelID              *int64     `json:"panel_id,omitempty" validate:"omitempty,gt=0"`
	Timestamp            *time.Time `json:"timestamp,omitempty"`
	EnergyGeneratedKWh   *float64   `json:"energy_generated_kwh,omitempty" validate:"omitempty,gte=0"`
	Voltage              *float64   `json:"voltage,omitempty"`
	Current              *float64   `json:"current,omitempty"`
	Temperature          *float64   `json:"temperature,omitempty"`
	Irradiance           *float64   `json:"irradiance,omitempty" validate:"omitempty,gte=0"`
	EfficiencyPercentage *float64   `json:"efficiency_percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
}

type GenerationFilter struct {
	PanelID *int64
}
