package customer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/types"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

var (
	transactionCols = []string{"transaction_id", "customer_id", "transaction_type", "amount", "transaction_date",
		"payment_method", "payment_status", "reference_id", "description", "created_at"}
	notificationCols = []string{"notification_id", "customer_id", "notification_type", "title", "message",
		"priority", "is_read", "created_at"}
	consumptionCols = []string{"consumption_id", "customer_id", "month", "energy_consumed_kwh", "total_cost",
		"created_at", "updated_at"}
)

func ptr[T any](v T) *T { return &v }

func newRepo(t *testing.T) (*PostgresCustomerRepo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewRepository(mock, testLogger), mock
}

func TestPostgresCustomerRepo_CreateTransaction(t *testing.T) {
	ts := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	t.Run("generates a reference id when missing", func(t *testing.T) {
		repo, mock := newRepo(t)
		ref := uuid.MustParse("6f1c2a8e-8d4b-4c61-9a57-0b5c1d2e3f40")
		repo.newReference = func() uuid.UUID { return ref }

		mock.ExpectQuery(`INSERT INTO transactions \(customer_id, amount, reference_id\) VALUES \(\$1, \$2, \$3\) RETURNING transaction_id`).
			WithArgs(int64(2), 19.99, ref).
			WillReturnRows(pgxmock.NewRows(transactionCols).
				AddRow(int64(1), ptr(int64(2)), nil, ptr(19.99), ts, nil, ptr("pending"), &ref, nil, ts))

		tx, err := repo.CreateTransaction(context.Background(), types.TransactionParams{
			CustomerID: ptr(int64(2)),
			Amount:     ptr(19.99),
		})
		require.NoError(t, err)
		require.NotNil(t, tx.ReferenceID)
		assert.Equal(t, ref, *tx.ReferenceID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("keeps a supplied reference id", func(t *testing.T) {
		repo, mock := newRepo(t)
		repo.newReference = func() uuid.UUID {
			t.Fatal("reference generator must not be called")
			return uuid.Nil
		}
		ref := uuid.New()

		mock.ExpectQuery(`INSERT INTO transactions \(reference_id\) VALUES \(\$1\)`).
			WithArgs(ref).
			WillReturnRows(pgxmock.NewRows(transactionCols).
				AddRow(int64(2), nil, nil, nil, ts, nil, nil, &ref, nil, ts))

		_, err := repo.CreateTransaction(context.Background(), types.TransactionParams{ReferenceID: &ref})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate reference is a conflict", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery(`INSERT INTO transactions`).
			WithArgs(pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		_, err := repo.CreateTransaction(context.Background(), types.TransactionParams{})
		assert.ErrorIs(t, err, types.ErrConflict)
	})
}

func TestPostgresCustomerRepo_TransactionUpdateHasNoUpdatedAt(t *testing.T) {
	repo, mock := newRepo(t)
	ts := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	mock.ExpectQuery(`UPDATE transactions SET payment_status = \$1 WHERE transaction_id = \$2 RETURNING`).
		WithArgs("completed", int64(1)).
		WillReturnRows(pgxmock.NewRows(transactionCols).
			AddRow(int64(1), nil, nil, nil, ts, nil, ptr("completed"), nil, nil, ts))

	tx, err := repo.UpdateTransaction(context.Background(), 1, types.TransactionParams{PaymentStatus: ptr("completed")})
	require.NoError(t, err)
	assert.Equal(t, "completed", *tx.PaymentStatus)
	assert.Nil(t, tx.ReferenceID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCustomerRepo_Notifications(t *testing.T) {
	ctx := context.Background()
	repo, mock := newRepo(t)
	ts := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM notifications WHERE customer_id = \$1 ORDER BY notification_id OFFSET \$2 LIMIT \$3`).
		WithArgs(int64(2), 10, 5).
		WillReturnRows(pgxmock.NewRows(notificationCols).
			AddRow(int64(1), ptr(int64(2)), ptr("billing"), ptr("Invoice"), ptr("Your invoice is ready"), ptr("high"), false, ts).
			AddRow(int64(2), ptr(int64(2)), nil, nil, nil, ptr("medium"), true, ts))
	mock.ExpectQuery(`UPDATE notifications SET is_read = \$1 WHERE notification_id = \$2`).
		WithArgs(true, int64(1)).
		WillReturnRows(pgxmock.NewRows(notificationCols).
			AddRow(int64(1), ptr(int64(2)), nil, nil, nil, ptr("high"), true, ts))

	out, err := repo.ListNotifications(ctx, types.CustomerFilter{CustomerID: ptr(int64(2))}, types.Pagination{Skip: 10, Limit: 5})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.False(t, out[0].IsRead)
	assert.True(t, out[1].IsRead)

	n, err := repo.UpdateNotification(ctx, 1, types.NotificationParams{IsRead: ptr(true)})
	require.NoError(t, err)
	assert.True(t, n.IsRead)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCustomerRepo_Consumption(t *testing.T) {
	ctx := context.Background()
	repo, mock := newRepo(t)
	ts := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	month := types.NewDate(2025, time.February, 1)

	mock.ExpectQuery(`UPDATE customer_consumption SET month = \$1, updated_at = now\(\) WHERE consumption_id = \$2`).
		WithArgs(month, int64(4)).
		WillReturnRows(pgxmock.NewRows(consumptionCols).
			AddRow(int64(4), ptr(int64(2)), &month, ptr(320.5), ptr(41.2), ts, ts))
	mock.ExpectQuery(`FROM customer_consumption WHERE consumption_id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows(consumptionCols))
	mock.ExpectExec(`DELETE FROM customer_consumption WHERE consumption_id = \$1`).
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	c, err := repo.UpdateConsumption(ctx, 4, types.CustomerConsumptionParams{Month: &month})
	require.NoError(t, err)
	assert.Equal(t, "2025-02-01", c.Month.String())

	_, err = repo.GetConsumption(ctx, 5)
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteConsumption(ctx, 5), types.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCustomerRepo_ListErrorIsReturned(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(`FROM energy_credits ORDER BY credit_id`).
		WithArgs(0, 100).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.ListCredits(context.Background(), types.CustomerFilter{}, types.Pagination{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}
