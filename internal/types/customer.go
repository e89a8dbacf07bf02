package types

import (
	"time"

	"github.com/google/uuid"
)

type PanelOwnership struct {
	OwnershipID        int64     `json:"ownership_id"`
	CustomerID         *int64    `json:"customer_id"`
	PanelID            *int64    `json:"panel_id"`
	OwnershipType      *string   `json:"ownership_type"`
	PurchaseDate       *Date     `json:"purchase_date"`
	PurchasePrice      *float64  `json:"purchase_price"`
	LeaseStartDate     *Date     `json:"lease_start_date"`
	LeaseEndDate       *Date     `json:"lease_end_date"`
	MonthlyLeaseAmount *float64  `json:"monthly_lease_amount"`
	OwnershipStatus    *string   `json:"ownership_status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type PanelOwnershipParams struct {
	CustomerID         *int64   `json:"customer_id,omitempty" validate:"omitempty,gt=0"`
	PanelID            *int64   `json:"panel_id,omitempty" validate:"omitempty,gt=0"`
	OwnershipType      *string  `json:"ownership_type,omitempty" validate:"omitempty,max=20"`
	PurchaseDate       *Date    `json:"purchase_date,omitempty"`
	PurchasePrice      *float64 `json:"purchase_price,omitempty" validate:"omitempty,gte=0"`
	LeaseStartDate     *Date    `json:"lease_start_date,omitempty"`
	LeaseEndDate       *Date    `json:"lease_end_date,omitempty"`
	MonthlyLeaseAmount *float64 `json:"monthly_lease_amount,omitempty" validate:"omitempty,gte=0"`
	OwnershipStatus    *string  `json:"ownership_status,omitempty" validate:"omitempty,max=20"`
}

// CustomerConsumption aggregates one customer's usage for a calendar month.
type CustomerConsumption struct {
	ConsumptionID     int64     `json:"consumption_id"`
	CustomerID        *int64    `json:"customer_id"`
	Month             *Date     `json:"month"`
	EnergyConsumedKWh *float64  `json:"energy_consumed_kwh"`
	TotalCost         *float64  `json:"total_cost"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type CustomerConsumptionParams struct {
	CustomerID        *int64   `json:"customer_id,omitempty" validate:"omitempty,gt=0"`
	Month             *Date    `json:"month,omitempty"`
	EnergyConsumedKWh *float64 `json:"energy_consumed_kwh,omitempty" validate:"omitempty,gte=0"`
	TotalCost         *float64 `json:"total_cost,omitempty" validate:"omitempty,gte=0"`
}

type EnergyCredit struct {
	CreditID           int64     `json:"credit_id"`
	CustomerID         *int64    `json:"customer_id"`
	BillingPeriodStart *Date     `json:"billing_period_start"`
	BillingPeriodEnd   *Date     `json:"billing_period_end"`
	TotalGeneratedKWh  *float64  `json:"total_generated_kwh"`
	TotalConsumedKWh   *float64  `json:"total_consumed_kwh"`
	NetEnergyKWh       *float64  `json:"net_energy_kwh"`
	CreditAmount       *float64  `json:"credit_amount"`
	DebitAmount        *float64  `json:"debit_amount"`
	NetAmount          *float64  `json:"net_amount"`
	GridRatePerKWh     *float64  `json:"grid_rate_per_kwh"`
	Status             *string   `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type EnergyCreditParams struct {
	CustomerID         *int64   `json:"customer_id,omitempty" validate:"omitempty,gt=0"`
	BillingPeriodStart *Date    `json:"billing_period_start,omitempty"`
	BillingPeriodEnd   *Date    `json:"billing_period_end,omitempty"`
	TotalGeneratedKWh  *float64 `json:"total_generated_kwh,omitempty" validate:"omitempty,gte=0"`
	TotalConsumedKWh   *float64 `json:"total_consumed_kwh,omitempty" validate:"omitempty,gte=0"`
	NetEnergyKWh       *float64 `json:"net_energy_kwh,omitempty"`
	CreditAmount       *float64 `json:"credit_amount,omitempty" validate:"omitempty,gte=0"`
	DebitAmount        *float64 `json:"debit_amount,omitempty" validate:"omitempty,gte=0"`
	NetAmount          *float64 `json:"net_amount,omitempty"`
	GridRatePerKWh     *float64 `json:"grid_rate_per_kwh,omitempty" validate:"omitempty,gte=0"`
	Status             *string  `json:"status,omitempty" validate:"omitempty,max=20"`
}

type Transaction struct {
	TransactionID   int64      `json:"transaction_id"`
	CustomerID      *int64     `json:"customer_id"`
	TransactionType *string    `json:"transaction_type"`
	Amount          *float64   `json:"amount"`
	TransactionDate time.Time  `json:"transaction_date"`
	PaymentMethod   *string    `json:"payment_method"`
	PaymentStatus   *string    `json:"payment_status"`
	ReferenceID     *uuid.UUID `json:"reference_id"`
	Description     *string    `json:"description"`
	CreatedAt       time.Time  `json:"created_at"`
}

// TransactionParams omits ReferenceID on create; the repository generates one when missing.
type TransactionParams struct {
	CustomerID      *int64     `json:"customer_id,omitempty" validate:"omitempty,gt=0"`
	TransactionType *string    `json:"transaction_type,omitempty" validate:"omitempty,max=20"`
	Amount          *float64   `json:"amount,omitempty"`
	TransactionDate *time.Time `json:"transaction_date,omitempty"`
	PaymentMethod   *string    `json:"payment_method,omitempty" validate:"omitempty,max=50"`
	PaymentStatus   *string    `json:"payment_status,omitempty" validate:"omitempty,max=20"`
	ReferenceID     *uuid.UUID `json:"reference_id,omitempty"`
	Description     *string    `json:"description,omitempty"`
}

type Notification struct {
	NotificationID   int64     `json:"notification_id"`
	CustomerID       *int64    `json:"customer_id"`
	NotificationType *string   `json:"notification_type"`
	Title            *string   `json:"title"`
	Message          *string   `json:"message"`
	Priority         *string   `json:"priority"`
	IsRead           bool      `json:"is_read"`
	CreatedAt        time.Time `json:"created_at"`
}

type NotificationParams struct {
	CustomerID       *int64  `json:"customer_id,omitempty" validate:"omitempty,gt=0"`
	NotificationType *string `json:"notification_type,omitempty" validate:"omitempty,max=50"`
	Title            *string `json:"title,omitempty" validate:"omitempty,max=255"`
	Message          *string `json:"message,omitempty"`
	Priority         *string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	IsRead           *bool   `json:"is_read,omitempty"`
}

// CustomerFilter narrows the customer-scoped listings.
type CustomerFilter struct {
	CustomerID *int64
}
