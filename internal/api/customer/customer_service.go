package customer

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

// Service exposes the customer-facing records: panel ownership, monthly consumption, energy
// credits, payment transactions and notifications.
type Service interface {
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

func wrap[T any](v T, err error, format string, args ...any) (T, error) {
	if err != nil {
		var zero T
		return zero, fmt.Errorf(format+": %w", append(args, err)...)
	}
	return v, nil
}

func customerAttrs(customerID *int64) []attribute.KeyValue {
	if customerID == nil {
		return nil
	}
	return []attribute.KeyValue{attribute.Int64("customer.id", *customerID)}
}

func (s *ServiceImpl) CreateOwnership(ctx context.Context, params types.PanelOwnershipParams) (*types.PanelOwnership, error) {
	o, err := s.repo.CreateOwnership(ctx, params)
	return wrap(o, err, "error creating panel ownership")
}

func (s *ServiceImpl) ListOwnership(ctx context.Context, filter types.CustomerFilter, page types.Pagination) ([]types.PanelOwnership, error) {
	out, err := s.repo.ListOwnership(ctx, filter, page)
	return wrap(out, err, "error listing panel ownership")
}

func (s *ServiceImpl) GetOwnership(ctx context.Context, id int64) (*types.PanelOwnership, error) {
	o, err := s.repo.GetOwnership(ctx, id)
	return wrap(o, err, "error fetching panel ownership %d", id)
}

func (s *ServiceImpl) UpdateOwnership(ctx context.Context, id int64, params types.PanelOwnershipParams) (*types.PanelOwnership, error) {
	o, err := s.repo.UpdateOwnership(ctx, id, params)
	return wrap(o, err, "error updating panel ownership %d", id)
}

func (s *ServiceImpl) DeleteOwnership(ctx context.Context, id int64) error {
	_, err := wrap(struct{}{}, s.repo.DeleteOwnership(ctx, id), "error deleting panel ownership %d", id)
	return err
}

func (s *ServiceImpl) CreateConsumption(ctx context.Context, params types.CustomerConsumptionParams) (*types.CustomerConsumption, error) {
	c, err := s.repo.CreateConsumption(ctx, params)
	return wrap(c, err, "error creating customer consumption")
}

func (s *ServiceImpl) ListConsumption(ctx context.Context, filter types.CustomerFilter, page types.Pagination) ([]types.CustomerConsumption, error) {
	out, err := s.repo.ListConsumption(ctx, filter, page)
	return wrap(out, err, "error listing customer consumption")
}

func (s *ServiceImpl) GetConsumption(ctx context.Context, id int64) (*types.CustomerConsumption, error) {
	c, err := s.repo.GetConsumption(ctx, id)
	return wrap(c, err, "error fetching customer consumption %d", id)
}

func (s *ServiceImpl) UpdateConsumption(ctx context.Context, id int64, params types.CustomerConsumptionParams) (*types.CustomerConsumption, error) {
	c, err := s.repo.UpdateConsumption(ctx, id, params)
	return wrap(c, err, "error updating customer consumption %d", id)
}

func (s *ServiceImpl) DeleteConsumption(ctx context.Context, id int64) error {
	_, err := wrap(struct{}{}, s.repo.DeleteConsumption(ctx, id), "error deleting customer consumption %d", id)
	return err
}

func (s *ServiceImpl) CreateCredit(ctx context.Context, params types.EnergyCreditParams) (*types.EnergyCredit, error) {
	ctx, span := otel.Tracer("CustomerService").Start(ctx, "CreateCredit", trace.WithAttributes(customerAttrs(params.CustomerID)...))
	defer span.End()

	c, err := s.repo.CreateCredit(ctx, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create failed")
		return nil, fmt.Errorf("error creating energy credit: %w", err)
	}
	span.SetStatus(codes.Ok, "credit created")
	return c, nil
}

func (s *ServiceImpl) ListCredits(ctx context.Context, filter types.CustomerFilter, page types.Pagination) ([]types.EnergyCredit, error) {
	out, err := s.repo.ListCredits(ctx, filter, page)
	return wrap(out, err, "error listing energy credits")
}

func (s *ServiceImpl) GetCredit(ctx context.Context, id int64) (*types.EnergyCredit, error) {
	c, err := s.repo.GetCredit(ctx, id)
	return wrap(c, err, "error fetching energy credit %d", id)
}

func (s *ServiceImpl) UpdateCredit(ctx context.Context, id int64, params types.EnergyCreditParams) (*types.EnergyCredit, error) {
	c, err := s.repo.UpdateCredit(ctx, id, params)
	return wrap(c, err, "error updating energy credit %d", id)
}

func (s *ServiceImpl) DeleteCredit(ctx context.Context, id int64) error {
	_, err := wrap(struct{}{}, s.repo.DeleteCredit(ctx, id), "error deleting energy credit %d", id)
	return err
}

func (s *ServiceImpl) CreateTransaction(ctx context.Context, params types.TransactionParams) (*types.Transaction, error) {
	ctx, span := otel.Tracer("CustomerService").Start(ctx, "CreateTransaction", trace.WithAttributes(customerAttrs(params.CustomerID)...))
	defer span.End()

	t, err := s.repo.CreateTransaction(ctx, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create failed")
		return nil, fmt.Errorf("error creating transaction: %w", err)
	}
	if t.ReferenceID != nil {
		span.SetAttributes(attribute.String("transaction.reference_id", t.ReferenceID.String()))
	}
	s.logger.InfoContext(ctx, "Transaction recorded", slog.Int64("transactionID", t.TransactionID))
	span.SetStatus(codes.Ok, "transaction created")
	return t, nil
}

func (s *ServiceImpl) ListTransactions(ctx context.Context, filter types.CustomerFilter, page types.Pagination) ([]types.Transaction, error) {
	out, err := s.repo.ListTransactions(ctx, filter, page)
	return wrap(out, err, "error listing transactions")
}

func (s *ServiceImpl) GetTransaction(ctx context.Context, id int64) (*types.Transaction, error) {
	t, err := s.repo.GetTransaction(ctx, id)
	return wrap(t, err, "error fetching transaction %d", id)
}

func (s *ServiceImpl) UpdateTransaction(ctx context.Context, id int64, params types.TransactionParams) (*types.Transaction, error) {
	t, err := s.repo.UpdateTransaction(ctx, id, params)
	return wrap(t, err, "error updating transaction %d", id)
}

func (s *ServiceImpl) DeleteTransaction(ctx context.Context, id int64) error {
	_, err := wrap(struct{}{}, s.repo.DeleteTransaction(ctx, id), "error deleting transaction %d", id)
	return err
}

func (s *ServiceImpl) CreateNotification(ctx context.Context, params types.NotificationParams) (*types.Notification, error) {
	n, err := s.repo.CreateNotification(ctx, params)
	return wrap(n, err, "error creating notification")
}

func (s *ServiceImpl) ListNotifications(ctx context.Context, filter types.CustomerFilter, page types.Pagination) ([]types.Notification, error) {
	out, err := s.repo.ListNotifications(ctx, filter, page)
	return wrap(out, err, "error listing notifications")
}

func (s *ServiceImpl) GetNotification(ctx context.Context, id int64) (*types.Notification, error) {
	n, err := s.repo.GetNotification(ctx, id)
	return wrap(n, err, "error fetching notification %d", id)
}

func (s *ServiceImpl) UpdateNotification(ctx context.Context, id int64, params types.NotificationParams) (*types.Notification, error) {
	n, err := s.repo.UpdateNotification(ctx, id, params)
	return wrap(n, err, "error updating notification %d", id)
}

func (s *ServiceImpl) DeleteNotification(ctx context.Context, id int64) error {
	_, err := wrap(struct{}{}, s.repo.DeleteNotification(ctx, id), "error deleting notification %d", id)
	return err
}
