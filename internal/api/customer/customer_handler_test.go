package customer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/types"
)

// MockService is a mock implementation of Service
type MockService struct {
	mock.Mock
}

var _ Service = (*MockService)(nil)

func (m *MockService) CreateOwnership(ctx context.Context, params types.PanelOwnershipParams) (*types.PanelOwnership, error) {
	return result[types.PanelOwnership](m.Called(ctx, params))
}
func (m *MockService) ListOwnership(ctx context.Context, filter types.CustomerFilter, page types.Pagination) ([]types.PanelOwnership, error) {
	return results[types.PanelOwnership](m.Called(ctx, filter, page))
}
func (m *MockService) GetOwnership(ctx context.Context, id int64) (*types.PanelOwnership, error) {
	return result[types.PanelOwnership](m.Called(ctx, id))
}
func (m *MockService) UpdateOwnership(ctx context.Context, id int64, params types.PanelOwnershipParams) (*types.PanelOwnership, error) {
	return result[types.PanelOwnership](m.Called(ctx, id, params))
}
func (m *MockService) DeleteOwnership(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockService) CreateConsumption(ctx context.Context, params types.CustomerConsumptionParams) (*types.CustomerConsumption, error) {
	return result[types.CustomerConsumption](m.Called(ctx, params))
}
func (m *MockService) ListConsumption(ctx context.Context, filter types.CustomerFilter, page types.Pagination) ([]types.CustomerConsumption, error) {
	return results[types.CustomerConsumption](m.Called(ctx, filter, page))
}
func (m *MockService) GetConsumption(ctx context.Context, id int64) (*types.CustomerConsumption, error) {
	return result[types.CustomerConsumption](m.Called(ctx, id))
}
func (m *MockService) UpdateConsumption(ctx context.Context, id int64, params types.CustomerConsumptionParams) (*types.CustomerConsumption, error) {
	return result[types.CustomerConsumption](m.Called(ctx, id, params))
}
func (m *MockService) DeleteConsumption(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockService) CreateCredit(ctx context.Context, params types.EnergyCreditParams) (*types.EnergyCredit, error) {
	return result[types.EnergyCredit](m.Called(ctx, params))
}
func (m *MockService) ListCredits(ctx context.Context, filter types.CustomerFilter, page types.Pagination) ([]types.EnergyCredit, error) {
	return results[types.EnergyCredit](m.Called(ctx, filter, page))
}
func (m *MockService) GetCredit(ctx context.Context, id int64) (*types.EnergyCredit, error) {
	return result[types.EnergyCredit](m.Called(ctx, id))
}
func (m *MockService) UpdateCredit(ctx context.Context, id int64, params types.EnergyCreditParams) (*types.EnergyCredit, error) {
	return result[types.EnergyCredit](m.Called(ctx, id, params))
}
func (m *MockService) DeleteCredit(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockService) CreateTransaction(ctx context.Context, params types.TransactionParams) (*types.Transaction, error) {
	return result[types.Transaction](m.Called(ctx, params))
}
func (m *MockService) ListTransactions(ctx context.Context, filter types.CustomerFilter, page types.Pagination) ([]types.Transaction, error) {
	return results[types.Transaction](m.Called(ctx, filter, page))
}
func (m *MockService) GetTransaction(ctx context.Context, id int64) (*types.Transaction, error) {
	return result[types.Transaction](m.Called(ctx, id))
}
func (m *MockService) UpdateTransaction(ctx context.Context, id int64, params types.TransactionParams) (*types.Transaction, error) {
	return result[types.Transaction](m.Called(ctx, id, params))
}
func (m *MockService) DeleteTransaction(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockService) CreateNotification(ctx context.Context, params types.NotificationParams) (*types.Notification, error) {
	return result[types.Notification](m.Called(ctx, params))
}
func (m *MockService) ListNotifications(ctx context.Context, filter types.CustomerFilter, page types.Pagination) ([]types.Notification, error) {
	return results[types.Notification](m.Called(ctx, filter, page))
}
func (m *MockService) GetNotification(ctx context.Context, id int64) (*types.Notification, error) {
	return result[types.Notification](m.Called(ctx, id))
}
func (m *MockService) UpdateNotification(ctx context.Context, id int64, params types.NotificationParams) (*types.Notification, error) {
	return result[types.Notification](m.Called(ctx, id, params))
}
func (m *MockService) DeleteNotification(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func do(svc Service, method, target, body string) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	Routes(NewHandler(svc, testLogger)).ServeHTTP(rr, r)
	return rr
}

func errorOf(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	msg, _ := body["error"].(string)
	return msg
}

func TestHandler_NotFoundMessages(t *testing.T) {
	tests := []struct {
		path   string
		method string
		want   string
	}{
		{"/ownership/9", "GetOwnership", "Panel Ownership not found"},
		{"/consumption/9", "GetConsumption", "Customer Consumption not found"},
		{"/credits/9", "GetCredit", "Energy Credit not found"},
		{"/transactions/9", "GetTransaction", "Transaction not found"},
		{"/notifications/9", "GetNotification", "Notification not found"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			svc := new(MockService)
			svc.On(tt.method, mock.Anything, int64(9)).Return(nil, types.ErrNotFound).Once()

			rr := do(svc, http.MethodGet, tt.path, "")
			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, tt.want, errorOf(t, rr))
			svc.AssertExpectations(t)
		})
	}
}

func TestHandler_ListFilters(t *testing.T) {
	t.Run("customer filter and pagination", func(t *testing.T) {
		svc := new(MockService)
		customerID := int64(2)
		svc.On("ListCredits", mock.Anything, types.CustomerFilter{CustomerID: &customerID}, types.Pagination{Skip: 10, Limit: 1000}).
			Return([]types.EnergyCredit{}, nil).Once()

		rr := do(svc, http.MethodGet, "/credits?customer_id=2&skip=10&limit=5000", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("no filter", func(t *testing.T) {
		svc := new(MockService)
		svc.On("ListOwnership", mock.Anything, types.CustomerFilter{}, types.Pagination{Limit: 100}).
			Return([]types.PanelOwnership{{OwnershipID: 1}}, nil).Once()

		rr := do(svc, http.MethodGet, "/ownership", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		svc.AssertExpectations(t)
	})

	t.Run("bad customer id", func(t *testing.T) {
		rr := do(new(MockService), http.MethodGet, "/transactions?customer_id=abc", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "customer_id must be an integer", errorOf(t, rr))
	})

	t.Run("negative skip", func(t *testing.T) {
		rr := do(new(MockService), http.MethodGet, "/notifications?skip=-1", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandler_Create(t *testing.T) {
	t.Run("notification", func(t *testing.T) {
		svc := new(MockService)
		svc.On("CreateNotification", mock.Anything, types.NotificationParams{
			CustomerID: ptr(int64(2)),
			Title:      ptr("Maintenance"),
			Priority:   ptr("high"),
		}).Return(&types.Notification{NotificationID: 5, Priority: ptr("high")}, nil).Once()

		rr := do(svc, http.MethodPost, "/notifications", `{"customer_id":2,"title":"Maintenance","priority":"high"}`)
		assert.Equal(t, http.StatusCreated, rr.Code)
		var got types.Notification
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, int64(5), got.NotificationID)
		svc.AssertExpectations(t)
	})

	t.Run("unknown priority", func(t *testing.T) {
		rr := do(new(MockService), http.MethodPost, "/notifications", `{"priority":"urgent"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Contains(t, errorOf(t, rr), "priority (oneof)")
	})

	t.Run("consumption month", func(t *testing.T) {
		svc := new(MockService)
		svc.On("CreateConsumption", mock.Anything, mock.MatchedBy(func(p types.CustomerConsumptionParams) bool {
			return p.Month != nil && p.Month.String() == "2025-02-01"
		})).Return(&types.CustomerConsumption{ConsumptionID: 1}, nil).Once()

		rr := do(svc, http.MethodPost, "/consumption", `{"customer_id":2,"month":"2025-02-01","energy_consumed_kwh":320.5}`)
		assert.Equal(t, http.StatusCreated, rr.Code)
		svc.AssertExpectations(t)
	})

	t.Run("negative purchase price", func(t *testing.T) {
		rr := do(new(MockService), http.MethodPost, "/ownership", `{"purchase_price":-1}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})

	t.Run("conflict", func(t *testing.T) {
		svc := new(MockService)
		svc.On("CreateTransaction", mock.Anything, mock.Anything).Return(nil, types.ErrConflict).Once()

		rr := do(svc, http.MethodPost, "/transactions", `{"reference_id":"6f1c2a8e-8d4b-4c61-9a57-0b5c1d2e3f40"}`)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestHandler_UpdateAndDelete(t *testing.T) {
	t.Run("mark notification read", func(t *testing.T) {
		svc := new(MockService)
		svc.On("UpdateNotification", mock.Anything, int64(5), types.NotificationParams{IsRead: ptr(true)}).
			Return(&types.Notification{NotificationID: 5, IsRead: true}, nil).Once()

		rr := do(svc, http.MethodPut, "/notifications/5", `{"is_read":true}`)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"is_read":true`)
		svc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		rr := do(new(MockService), http.MethodPut, "/credits/zero", `{}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("delete", func(t *testing.T) {
		svc := new(MockService)
		svc.On("DeleteOwnership", mock.Anything, int64(3)).Return(nil).Once()

		rr := do(svc, http.MethodDelete, "/ownership/3", "")
		assert.Equal(t, http.StatusNoContent, rr.Code)
		svc.AssertExpectations(t)
	})

	t.Run("delete missing", func(t *testing.T) {
		svc := new(MockService)
		svc.On("DeleteTransaction", mock.Anything, int64(3)).Return(types.ErrNotFound).Once()

		rr := do(svc, http.MethodDelete, "/transactions/3", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Transaction not found", errorOf(t, rr))
	})
}
