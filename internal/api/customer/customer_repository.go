package customer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	database "github.com/SolarInitiative/Cloud-Solar-Backend/app/db"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/types"
)

var _ Repository = (*PostgresCustomerRepo)(nil)

type Repository interface {
	CreateOwnership(ctx context.Context, params types.PanelOwnershipParams) (*types.PanelOwnership, error)
	ListOwnership(ctx context.Context, filter types.CustomerFilter, page types.Pagination) ([]types.PanelOwnership, error)
	GetOwnership(ctx context.Context, id int64) (*types.PanelOwnership, error)
	UpdateOwnership(ctx context.Context, id int64, params types.PanelOwnershipParams) (*types.PanelOwnership, error)
	DeleteOwnership(ctx context.Context, id int64) error

	CreateConsumption(ctx context.Context, params types.CustomerConsumptionParams) (*types.CustomerConsumption, error)
	ListConsumption(ctx context.Context, filter types.CustomerFilter, page types.Pagination) ([]types.CustomerConsumption, error)
	GetConsumption(ctx context.Context, id int64) (*types.CustomerConsumption, error)
	UpdateConsumption(ctx context.Context, id int64, params types.CustomerConsumptionParams) (*types.CustomerConsumption, error)
	DeleteConsumption(ctx context.Context, id int64) error

	CreateCredit(ctx context.Context, params types.EnergyCreditParams) (*types.EnergyCredit, error)
	ListCredits(ctx context.Context, filter types.CustomerFilter, page types.Pagination) ([]types.EnergyCredit, error)
	GetCredit(ctx context.Context, id int64) (*types.EnergyCredit, error)
	UpdateCredit(ctx context.Context, id int64, params types.EnergyCreditParams) (*types.EnergyCredit, error)
	DeleteCredit(ctx context.Context, id int64) error

	CreateTransaction(ctx context.Context, params types.TransactionParams) (*types.Transaction, error)
	ListTransactions(ctx context.Context, filter types.CustomerFilter, page types.Pagination) ([]types.Transaction, error)
	GetTransaction(ctx context.Context, id int64) (*types.Transaction, error)
	UpdateTransaction(ctx context.Context, id int64, params types.TransactionParams) (*types.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error

	CreateNotification(ctx context.Context, params types.NotificationParams) (*types.Notification, error)
	ListNotifications(ctx context.Context, filter types.CustomerFilter, page types.Pagination) ([]types.Notification, error)
	GetNotification(ctx context.Context, id int64) (*types.Notification, error)
	UpdateNotification(ctx context.Context, id int64, params types.NotificationParams) (*types.Notification, error)
	DeleteNotification(ctx context.Context, id int64) error
}

var ownership = database.Table[types.PanelOwnership]{
	Name: "panel_ownership",
	Key:  "ownership_id",
	Columns: `ownership_id, customer_id, panel_id, ownership_type, purchase_date, purchase_price,
		lease_start_date, lease_end_date, monthly_lease_amount, ownership_status, created_at, updated_at`,
	Scan: func(row pgx.Row) (*types.PanelOwnership, error) {
		var o types.PanelOwnership
		err := row.Scan(&o.OwnershipID, &o.CustomerID, &o.PanelID, &o.OwnershipType, &o.PurchaseDate,
			&o.PurchasePrice, &o.LeaseStartDate, &o.LeaseEndDate, &o.MonthlyLeaseAmount,
			&o.OwnershipStatus, &o.CreatedAt, &o.UpdatedAt)
		if err != nil {
			return nil, err
		}
		return &o, nil
	},
	Touch: []string{"updated_at"},
}

var consumption = database.Table[types.CustomerConsumption]{
	Name:    "customer_consumption",
	Key:     "consumption_id",
	Columns: `consumption_id, customer_id, month, energy_consumed_kwh, total_cost, created_at, updated_at`,
	Scan: func(row pgx.Row) (*types.CustomerConsumption, error) {
		var c types.CustomerConsumption
		err := row.Scan(&c.ConsumptionID, &c.CustomerID, &c.Month, &c.EnergyConsumedKWh, &c.TotalCost,
			&c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, err
		}
		return &c, nil
	},
	Touch: []string{"updated_at"},
}

var credits = database.Table[types.EnergyCredit]{
	Name: "energy_credits",
	Key:  "credit_id",
	Columns: `credit_id, customer_id, billing_period_start, billing_period_end, total_generated_kwh,
		total_consumed_kwh, net_energy_kwh, credit_amount, debit_amount, net_amount, grid_rate_per_kwh,
		status, created_at, updated_at`,
	Scan: func(row pgx.Row) (*types.EnergyCredit, error) {
		var c types.EnergyCredit
		err := row.Scan(&c.CreditID, &c.CustomerID, &c.BillingPeriodStart, &c.BillingPeriodEnd,
			&c.TotalGeneratedKWh, &c.TotalConsumedKWh, &c.NetEnergyKWh, &c.CreditAmount, &c.DebitAmount,
			&c.NetAmount, &c.GridRatePerKWh, &c.Status, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, err
		}
		return &c, nil
	},
	Touch: []string{"updated_at"},
}

var transactions = database.Table[types.Transaction]{
	Name: "transactions",
	Key:  "transaction_id",
	Columns: `transaction_id, customer_id, transaction_type, amount, transaction_date, payment_method,
		payment_status, reference_id, description, created_at`,
	Scan: func(row pgx.Row) (*types.Transaction, error) {
		var t types.Transaction
		err := row.Scan(&t.TransactionID, &t.CustomerID, &t.TransactionType, &t.Amount, &t.TransactionDate,
			&t.PaymentMethod, &t.PaymentStatus, &t.ReferenceID, &t.Description, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		return &t, nil
	},
}

var notifications = database.Table[types.Notification]{
	Name:    "notifications",
	Key:     "notification_id",
	Columns: `notification_id, customer_id, notification_type, title, message, priority, is_read, created_at`,
	Scan: func(row pgx.Row) (*types.Notification, error) {
		var n types.Notification
		err := row.Scan(&n.NotificationID, &n.CustomerID, &n.NotificationType, &n.Title, &n.Message,
			&n.Priority, &n.IsRead, &n.CreatedAt)
		if err != nil {
			return nil, err
		}
		return &n, nil
	},
}

type PostgresCustomerRepo struct {
	logger *slog.Logger
	pgpool database.DB
	// newReference issues transaction reference ids.
	newReference func() uuid.UUID
}

func NewRepository(pgpool database.DB, logger *slog.Logger) *PostgresCustomerRepo {
	return &PostgresCustomerRepo{
		logger:       logger,
		pgpool:       pgpool,
		newReference: uuid.New,
	}
}

// traced runs fn inside a repository span and logs failures other than not-found.
func traced[T any](ctx context.Context, r *PostgresCustomerRepo, method, op, table string, fn func(context.Context) (T, error)) (T, error) {
	ctx, span := otel.Tracer("CustomerRepo").Start(ctx, method, trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", op),
		attribute.String("db.sql.table", table),
	))
	defer span.End()

	v, err := fn(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if database.IgnoreNotFound(err) != nil {
			r.logger.ErrorContext(ctx, "Customer query failed", slog.String("method", method), slog.Any("error", err))
		}
		return v, err
	}
	span.SetStatus(codes.Ok, "")
	return v, nil
}

func customerFilter(filter types.CustomerFilter) *database.Filter {
	var f database.Filter
	database.Eq(&f, "customer_id", filter.CustomerID)
	return &f
}

func deleted(err error) (struct{}, error) { return struct{}{}, err }

func ownershipSet(p types.PanelOwnershipParams) *database.UpdateSet {
	var set database.UpdateSet
	database.Set(&set, "customer_id", p.CustomerID)
	database.Set(&set, "panel_id", p.PanelID)
	database.Set(&set, "ownership_type", p.OwnershipType)
	database.Set(&set, "purchase_date", p.PurchaseDate)
	database.Set(&set, "purchase_price", p.PurchasePrice)
	database.Set(&set, "lease_start_date", p.LeaseStartDate)
	database.Set(&set, "lease_end_date", p.LeaseEndDate)
	database.Set(&set, "monthly_lease_amount", p.MonthlyLeaseAmount)
	database.Set(&set, "ownership_status", p.OwnershipStatus)
	return &set
}

func consumptionSet(p types.CustomerConsumptionParams) *database.UpdateSet {
	var set database.UpdateSet
	database.Set(&set, "customer_id", p.CustomerID)
	database.Set(&set, "month", p.Month)
	database.Set(&set, "energy_consumed_kwh", p.EnergyConsumedKWh)
	database.Set(&set, "total_cost", p.TotalCost)
	return &set
}

func creditSet(p types.EnergyCreditParams) *database.UpdateSet {
	var set database.UpdateSet
	database.Set(&set, "customer_id", p.CustomerID)
	database.Set(&set, "billing_period_start", p.BillingPeriodStart)
	database.Set(&set, "billing_period_end", p.BillingPeriodEnd)
	database.Set(&set, "total_generated_kwh", p.TotalGeneratedKWh)
	database.Set(&set, "total_consumed_kwh", p.TotalConsumedKWh)
	database.Set(&set, "net_energy_kwh", p.NetEnergyKWh)
	database.Set(&set, "credit_amount", p.CreditAmount)
	database.Set(&set, "debit_amount", p.DebitAmount)
	database.Set(&set, "net_amount", p.NetAmount)
	database.Set(&set, "grid_rate_per_kwh", p.GridRatePerKWh)
	database.Set(&set, "status", p.Status)
	return &set
}

func transactionSet(p types.TransactionParams) *database.UpdateSet {
	var set database.UpdateSet
	database.Set(&set, "customer_id", p.CustomerID)
	database.Set(&set, "transaction_type", p.TransactionType)
	database.Set(&set, "amount", p.Amount)
	database.Set(&set, "transaction_date", p.TransactionDate)
	database.Set(&set, "payment_method", p.PaymentMethod)
	database.Set(&set, "payment_status", p.PaymentStatus)
	database.Set(&set, "reference_id", p.ReferenceID)
	database.Set(&set, "description", p.Description)
	return &set
}

func notificationSet(p types.NotificationParams) *database.UpdateSet {
	var set database.UpdateSet
	database.Set(&set, "customer_id", p.CustomerID)
	database.Set(&set, "notification_type", p.NotificationType)
	database.Set(&set, "title", p.Title)
	database.Set(&set, "message", p.Message)
	database.Set(&set, "priority", p.Priority)
	database.Set(&set, "is_read", p.IsRead)
	return &set
}

// Panel ownership

func (r *PostgresCustomerRepo) CreateOwnership(ctx context.Context, params types.PanelOwnershipParams) (*types.PanelOwnership, error) {
	return traced(ctx, r, "CreateOwnership", "INSERT", ownership.Name, func(ctx context.Context) (*types.PanelOwnership, error) {
		return ownership.Insert(ctx, r.pgpool, ownershipSet(params))
	})
}

func (r *PostgresCustomerRepo) ListOwnership(ctx context.Context, filter types.CustomerFilter, page types.Pagination) ([]types.PanelOwnership, error) {
	return traced(ctx, r, "ListOwnership", "SELECT", ownership.Name, func(ctx context.Context) ([]types.PanelOwnership, error) {
		return ownership.List(ctx, r.pgpool, customerFilter(filter), page)
	})
}

func (r *PostgresCustomerRepo) GetOwnership(ctx context.Context, id int64) (*types.PanelOwnership, error) {
	return traced(ctx, r, "GetOwnership", "SELECT", ownership.Name, func(ctx context.Context) (*types.PanelOwnership, error) {
		return ownership.Get(ctx, r.pgpool, id)
	})
}

func (r *PostgresCustomerRepo) UpdateOwnership(ctx context.Context, id int64, params types.PanelOwnershipParams) (*types.PanelOwnership, error) {
	return traced(ctx, r, "UpdateOwnership", "UPDATE", ownership.Name, func(ctx context.Context) (*types.PanelOwnership, error) {
		return ownership.Update(ctx, r.pgpool, id, ownershipSet(params))
	})
}

func (r *PostgresCustomerRepo) DeleteOwnership(ctx context.Context, id int64) error {
	_, err := traced(ctx, r, "DeleteOwnership", "DELETE", ownership.Name, func(ctx context.Context) (struct{}, error) {
		return deleted(ownership.Delete(ctx, r.pgpool, id))
	})
	return err
}

// Customer consumption

func (r *PostgresCustomerRepo) CreateConsumption(ctx context.Context, params types.CustomerConsumptionParams) (*types.CustomerConsumption, error) {
	return traced(ctx, r, "CreateConsumption", "INSERT", consumption.Name, func(ctx context.Context) (*types.CustomerConsumption, error) {
		return consumption.Insert(ctx, r.pgpool, consumptionSet(params))
	})
}

func (r *PostgresCustomerRepo) ListConsumption(ctx context.Context, filter types.CustomerFilter, page types.Pagination) ([]types.CustomerConsumption, error) {
	return traced(ctx, r, "ListConsumption", "SELECT", consumption.Name, func(ctx context.Context) ([]types.CustomerConsumption, error) {
		return consumption.List(ctx, r.pgpool, customerFilter(filter), page)
	})
}

func (r *PostgresCustomerRepo) GetConsumption(ctx context.Context, id int64) (*types.CustomerConsumption, error) {
	return traced(ctx, r, "GetConsumption", "SELECT", consumption.Name, func(ctx context.Context) (*types.CustomerConsumption, error) {
		return consumption.Get(ctx, r.pgpool, id)
	})
}

func (r *PostgresCustomerRepo) UpdateConsumption(ctx context.Context, id int64, params types.CustomerConsumptionParams) (*types.CustomerConsumption, error) {
	return traced(ctx, r, "UpdateConsumption", "UPDATE", consumption.Name, func(ctx context.Context) (*types.CustomerConsumption, error) {
		return consumption.Update(ctx, r.pgpool, id, consumptionSet(params))
	})
}

func (r *PostgresCustomerRepo) DeleteConsumption(ctx context.Context, id int64) error {
	_, err := traced(ctx, r, "DeleteConsumption", "DELETE", consumption.Name, func(ctx context.Context) (struct{}, error) {
		return deleted(consumption.Delete(ctx, r.pgpool, id))
	})
	return err
}

// Energy credits

func (r *PostgresCustomerRepo) CreateCredit(ctx context.Context, params types.EnergyCreditParams) (*types.EnergyCredit, error) {
	return traced(ctx, r, "CreateCredit", "INSERT", credits.Name, func(ctx context.Context) (*types.EnergyCredit, error) {
		return credits.Insert(ctx, r.pgpool, creditSet(params))
	})
}

func (r *PostgresCustomerRepo) ListCredits(ctx context.Context, filter types.CustomerFilter, page types.Pagination) ([]types.EnergyCredit, error) {
	return traced(ctx, r, "ListCredits", "SELECT", credits.Name, func(ctx context.Context) ([]types.EnergyCredit, error) {
		return credits.List(ctx, r.pgpool, customerFilter(filter), page)
	})
}

func (r *PostgresCustomerRepo) GetCredit(ctx context.Context, id int64) (*types.EnergyCredit, error) {
	return traced(ctx, r, "GetCredit", "SELECT", credits.Name, func(ctx context.Context) (*types.EnergyCredit, error) {
		return credits.Get(ctx, r.pgpool, id)
	})
}

func (r *PostgresCustomerRepo) UpdateCredit(ctx context.Context, id int64, params types.EnergyCreditParams) (*types.EnergyCredit, error) {
	return traced(ctx, r, "UpdateCredit", "UPDATE", credits.Name, func(ctx context.Context) (*types.EnergyCredit, error) {
		return credits.Update(ctx, r.pgpool, id, creditSet(params))
	})
}

func (r *PostgresCustomerRepo) DeleteCredit(ctx context.Context, id int64) error {
	_, err := traced(ctx, r, "DeleteCredit", "DELETE", credits.Name, func(ctx context.Context) (struct{}, error) {
		return deleted(credits.Delete(ctx, r.pgpool, id))
	})
	return err
}

// Transactions

// CreateTransaction assigns a fresh reference id when the caller did not supply one.
func (r *PostgresCustomerRepo) CreateTransaction(ctx context.Context, params types.TransactionParams) (*types.Transaction, error) {
	if params.ReferenceID == nil {
		ref := r.newReference()
		params.ReferenceID = &ref
	}
	return traced(ctx, r, "CreateTransaction", "INSERT", transactions.Name, func(ctx context.Context) (*types.Transaction, error) {
		return transactions.Insert(ctx, r.pgpool, transactionSet(params))
	})
}

func (r *PostgresCustomerRepo) ListTransactions(ctx context.Context, filter types.CustomerFilter, page types.Pagination) ([]types.Transaction, error) {
	return traced(ctx, r, "ListTransactions", "SELECT", transactions.Name, func(ctx context.Context) ([]types.Transaction, error) {
		return transactions.List(ctx, r.pgpool, customerFilter(filter), page)
	})
}

func (r *PostgresCustomerRepo) GetTransaction(ctx context.Context, id int64) (*types.Transaction, error) {
	return traced(ctx, r, "GetTransaction", "SELECT", transactions.Name, func(ctx context.Context) (*types.Transaction, error) {
		return transactions.Get(ctx, r.pgpool, id)
	})
}

func (r *PostgresCustomerRepo) UpdateTransaction(ctx context.Context, id int64, params types.TransactionParams) (*types.Transaction, error) {
	return traced(ctx, r, "UpdateTransaction", "UPDATE", transactions.Name, func(ctx context.Context) (*types.Transaction, error) {
		return transactions.Update(ctx, r.pgpool, id, transactionSet(params))
	})
}

func (r *PostgresCustomerRepo) DeleteTransaction(ctx context.Context, id int64) error {
	_, err := traced(ctx, r, "DeleteTransaction", "DELETE", transactions.Name, func(ctx context.Context) (struct{}, error) {
		return deleted(transactions.Delete(ctx, r.pgpool, id))
	})
	return err
}

// Notifications

func (r *PostgresCustomerRepo) CreateNotification(ctx context.Context, params types.NotificationParams) (*types.Notification, error) {
	return traced(ctx, r, "CreateNotification", "INSERT", notifications.Name, func(ctx context.Context) (*types.Notification, error) {
		return notifications.Insert(ctx, r.pgpool, notificationSet(params))
	})
}

func (r *PostgresCustomerRepo) ListNotifications(ctx context.Context, filter types.CustomerFilter, page types.Pagination) ([]types.Notification, error) {
	return traced(ctx, r, "ListNotifications", "SELECT", notifications.Name, func(ctx context.Context) ([]types.Notification, error) {
		return notifications.List(ctx, r.pgpool, customerFilter(filter), page)
	})
}

func (r *PostgresCustomerRepo) GetNotification(ctx context.Context, id int64) (*types.Notification, error) {
	return traced(ctx, r, "GetNotification", "SELECT", notifications.Name, func(ctx context.Context) (*types.Notification, error) {
		return notifications.Get(ctx, r.pgpool, id)
	})
}

func (r *PostgresCustomerRepo) UpdateNotification(ctx context.Context, id int64, params types.NotificationParams) (*types.Notification, error) {
	return traced(ctx, r, "UpdateNotification", "UPDATE", notifications.Name, func(ctx context.Context) (*types.Notification, error) {
		return notifications.Update(ctx, r.pgpool, id, notificationSet(params))
	})
}

func (r *PostgresCustomerRepo) DeleteNotification(ctx context.Context, id int64) error {
	_, err := traced(ctx, r, "DeleteNotification", "DELETE", notifications.Name, func(ctx context.Context) (struct{}, error) {
		return deleted(notifications.Delete(ctx, r.pgpool, id))
	})
	return err
}
