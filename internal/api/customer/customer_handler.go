package customer

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/api"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/types"
)

const (
	ownershipNotFound    = "Panel Ownership not found"
	consumptionNotFound  = "Customer Consumption not found"
	creditNotFound       = "Energy Credit not found"
	transactionNotFound  = "Transaction not found"
	notificationNotFound = "Notification not found"
)

type Handler struct {
	service Service
	logger  *slog.Logger
}

func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Routes is mounted at /customers.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Route("/ownership", func(r chi.Router) {
		r.Post("/", h.CreateOwnership)
		r.Get("/", h.ListOwnership)
		r.Get("/{ownershipID}", h.GetOwnership)
		r.Put("/{ownershipID}", h.UpdateOwnership)
		r.Delete("/{ownershipID}", h.DeleteOwnership)
	})
	r.Route("/consumption", func(r chi.Router) {
		r.Post("/", h.CreateConsumption)
		r.Get("/", h.ListConsumption)
		r.Get("/{consumptionID}", h.GetConsumption)
		r.Put("/{consumptionID}", h.UpdateConsumption)
		r.Delete("/{consumptionID}", h.DeleteConsumption)
	})
	r.Route("/credits", func(r chi.Router) {
		r.Post("/", h.CreateCredit)
		r.Get("/", h.ListCredits)
		r.Get("/{creditID}", h.GetCredit)
		r.Put("/{creditID}", h.UpdateCredit)
		r.Delete("/{creditID}", h.DeleteCredit)
	})
	r.Route("/transactions", func(r chi.Router) {
		r.Post("/", h.CreateTransaction)
		r.Get("/", h.ListTransactions)
		r.Get("/{transactionID}", h.GetTransaction)
		r.Put("/{transactionID}", h.UpdateTransaction)
		r.Delete("/{transactionID}", h.DeleteTransaction)
	})
	r.Route("/notifications", func(r chi.Router) {
		r.Post("/", h.CreateNotification)
		r.Get("/", h.ListNotifications)
		r.Get("/{notificationID}", h.GetNotification)
		r.Put("/{notificationID}", h.UpdateNotification)
		r.Delete("/{notificationID}", h.DeleteNotification)
	})
	return r
}

// The five record kinds share one request flow; these helpers carry it.

func create[P, T any](h *Handler, w http.ResponseWriter, r *http.Request, notFound string, fn func(context.Context, P) (*T, error)) {
	var params P
	if !api.DecodeAndValidate(w, r, &params) {
		return
	}
	v, err := fn(r.Context(), params)
	if err != nil {
		api.WriteServiceError(w, r, h.logger, err, notFound)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusCreated, v)
}

func list[T any](h *Handler, w http.ResponseWriter, r *http.Request, notFound string, fn func(context.Context, types.CustomerFilter, types.Pagination) ([]T, error)) {
	page, err := api.ParsePagination(r)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	customerID, err := api.OptionalInt64Query(r, "customer_id")
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	out, err := fn(r.Context(), types.CustomerFilter{CustomerID: customerID}, page)
	if err != nil {
		api.WriteServiceError(w, r, h.logger, err, notFound)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, out)
}

func get[T any](h *Handler, w http.ResponseWriter, r *http.Request, param, notFound string, fn func(context.Context, int64) (*T, error)) {
	id, err := api.ParseIDParam(r, param)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	v, err := fn(r.Context(), id)
	if err != nil {
		api.WriteServiceError(w, r, h.logger, err, notFound)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, v)
}

func update[P, T any](h *Handler, w http.ResponseWriter, r *http.Request, param, notFound string, fn func(context.Context, int64, P) (*T, error)) {
	id, err := api.ParseIDParam(r, param)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	var params P
	if !api.DecodeAndValidate(w, r, &params) {
		return
	}
	v, err := fn(r.Context(), id, params)
	if err != nil {
		api.WriteServiceError(w, r, h.logger, err, notFound)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, v)
}

func remove(h *Handler, w http.ResponseWriter, r *http.Request, param, notFound string, fn func(context.Context, int64) error) {
	id, err := api.ParseIDParam(r, param)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := fn(r.Context(), id); err != nil {
		api.WriteServiceError(w, r, h.logger, err, notFound)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusNoContent, nil)
}

// CreateOwnership godoc
// @Summary      Create a panel ownership record
// @Tags         Panel Ownership
// @Accept       json
// @Produce      json
// @Param        body body types.PanelOwnershipParams true "Panel Ownership"
// @Success      201 {object} types.PanelOwnership
// @Failure      422 {object} map[string]any "Validation error"
// @Security     BearerAuth
// @Router       /api/v1/customers/ownership [post]
func (h *Handler) CreateOwnership(w http.ResponseWriter, r *http.Request) {
	create(h, w, r, ownershipNotFound, h.service.CreateOwnership)
}

// ListOwnership godoc
// @Summary      List panel ownership records
// @Tags         Panel Ownership
// @Produce      json
// @Param        customer_id query int false "Only records of this customer"
// @Param        skip        query int false "Offset"
// @Param        limit       query int false "Page size (max 1000)"
// @Success      200 {array} types.PanelOwnership
// @Security     BearerAuth
// @Router       /api/v1/customers/ownership [get]
func (h *Handler) ListOwnership(w http.ResponseWriter, r *http.Request) {
	list(h, w, r, ownershipNotFound, h.service.ListOwnership)
}

// GetOwnership godoc
// @Summary      Get a panel ownership record
// @Tags         Panel Ownership
// @Produce      json
// @Param        ownershipID path int true "ID"
// @Success      200 {object} types.PanelOwnership
// @Failure      404 {object} map[string]any "Panel Ownership not found"
// @Security     BearerAuth
// @Router       /api/v1/customers/ownership/{ownershipID} [get]
func (h *Handler) GetOwnership(w http.ResponseWriter, r *http.Request) {
	get(h, w, r, "ownershipID", ownershipNotFound, h.service.GetOwnership)
}

// UpdateOwnership godoc
// @Summary      Update a panel ownership record
// @Tags         Panel Ownership
// @Accept       json
// @Produce      json
// @Param        ownershipID path int true "ID"
// @Param        body body types.PanelOwnershipParams true "Fields to change"
// @Success      200 {object} types.PanelOwnership
// @Failure      404 {object} map[string]any "Panel Ownership not found"
// @Security     BearerAuth
// @Router       /api/v1/customers/ownership/{ownershipID} [put]
func (h *Handler) UpdateOwnership(w http.ResponseWriter, r *http.Request) {
	update(h, w, r, "ownershipID", ownershipNotFound, h.service.UpdateOwnership)
}

// DeleteOwnership godoc
// @Summary      Delete a panel ownership record
// @Tags         Panel Ownership
// @Param        ownershipID path int true "ID"
// @Success      204
// @Failure      404 {object} map[string]any "Panel Ownership not found"
// @Security     BearerAuth
// @Router       /api/v1/customers/ownership/{ownershipID} [delete]
func (h *Handler) DeleteOwnership(w http.ResponseWriter, r *http.Request) {
	remove(h, w, r, "ownershipID", ownershipNotFound, h.service.DeleteOwnership)
}

// CreateConsumption godoc
// @Summary      Create a customer consumption record
// @Tags         Customer Consumption
// @Accept       json
// @Produce      json
// @Param        body body types.CustomerConsumptionParams true "Customer Consumption"
// @Success      201 {object} types.CustomerConsumption
// @Failure      422 {object} map[string]any "Validation error"
// @Security     BearerAuth
// @Router       /api/v1/customers/consumption [post]
func (h *Handler) CreateConsumption(w http.ResponseWriter, r *http.Request) {
	create(h, w, r, consumptionNotFound, h.service.CreateConsumption)
}

// ListConsumption godoc
// @Summary      List customer consumption records
// @Tags         Customer Consumption
// @Produce      json
// @Param        customer_id query int false "Only records of this customer"
// @Param        skip        query int false "Offset"
// @Param        limit       query int false "Page size (max 1000)"
// @Success      200 {array} types.CustomerConsumption
// @Security     BearerAuth
// @Router       /api/v1/customers/consumption [get]
func (h *Handler) ListConsumption(w http.ResponseWriter, r *http.Request) {
	list(h, w, r, consumptionNotFound, h.service.ListConsumption)
}

// GetConsumption godoc
// @Summary      Get a customer consumption record
// @Tags         Customer Consumption
// @Produce      json
// @Param        consumptionID path int true "ID"
// @Success      200 {object} types.CustomerConsumption
// @Failure      404 {object} map[string]any "Customer Consumption not found"
// @Security     BearerAuth
// @Router       /api/v1/customers/consumption/{consumptionID} [get]
func (h *Handler) GetConsumption(w http.ResponseWriter, r *http.Request) {
	get(h, w, r, "consumptionID", consumptionNotFound, h.service.GetConsumption)
}

// UpdateConsumption godoc
// @Summary      Update a customer consumption record
// @Tags         Customer Consumption
// @Accept       json
// @Produce      json
// @Param        consumptionID path int true "ID"
// @Param        body body types.CustomerConsumptionParams true "Fields to change"
// @Success      200 {object} types.CustomerConsumption
// @Failure      404 {object} map[string]any "Customer Consumption not found"
// @Security     BearerAuth
// @Router       /api/v1/customers/consumption/{consumptionID} [put]
func (h *Handler) UpdateConsumption(w http.ResponseWriter, r *http.Request) {
	update(h, w, r, "consumptionID", consumptionNotFound, h.service.UpdateConsumption)
}

// DeleteConsumption godoc
// @Summary      Delete a customer consumption record
// @Tags         Customer Consumption
// @Param        consumptionID path int true "ID"
// @Success      204
// @Failure      404 {object} map[string]any "Customer Consumption not found"
// @Security     BearerAuth
// @Router       /api/v1/customers/consumption/{consumptionID} [delete]
func (h *Handler) DeleteConsumption(w http.ResponseWriter, r *http.Request) {
	remove(h, w, r, "consumptionID", consumptionNotFound, h.service.DeleteConsumption)
}

// CreateCredit godoc
// @Summary      Create a energy credit
// @Tags         Energy Credits
// @Accept       json
// @Produce      json
// @Param        body body types.EnergyCreditParams true "Energy Credits"
// @Success      201 {object} types.EnergyCredit
// @Failure      422 {object} map[string]any "Validation error"
// @Security     BearerAuth
// @Router       /api/v1/customers/credits [post]
func (h *Handler) CreateCredit(w http.ResponseWriter, r *http.Request) {
	create(h, w, r, creditNotFound, h.service.CreateCredit)
}

// ListCredits godoc
// @Summary      List energy credits
// @Tags         Energy Credits
// @Produce      json
// @Param        customer_id query int false "Only records of this customer"
// @Param        skip        query int false "Offset"
// @Param        limit       query int false "Page size (max 1000)"
// @Success      200 {array} types.EnergyCredit
// @Security     BearerAuth
// @Router       /api/v1/customers/credits [get]
func (h *Handler) ListCredits(w http.ResponseWriter, r *http.Request) {
	list(h, w, r, creditNotFound, h.service.ListCredits)
}

// GetCredit godoc
// @Summary      Get a energy credit
// @Tags         Energy Credits
// @Produce      json
// @Param        creditID path int true "ID"
// @Success      200 {object} types.EnergyCredit
// @Failure      404 {object} map[string]any "Energy Credit not found"
// @Security     BearerAuth
// @Router       /api/v1/customers/credits/{creditID} [get]
func (h *Handler) GetCredit(w http.ResponseWriter, r *http.Request) {
	get(h, w, r, "creditID", creditNotFound, h.service.GetCredit)
}

// UpdateCredit godoc
// @Summary      Update a energy credit
// @Tags         Energy Credits
// @Accept       json
// @Produce      json
// @Param        creditID path int true "ID"
// @Param        body body types.EnergyCreditParams true "Fields to change"
// @Success      200 {object} types.EnergyCredit
// @Failure      404 {object} map[string]any "Energy Credit not found"
// @Security     BearerAuth
// @Router       /api/v1/customers/credits/{creditID} [put]
func (h *Handler) UpdateCredit(w http.ResponseWriter, r *http.Request) {
	update(h, w, r, "creditID", creditNotFound, h.service.UpdateCredit)
}

// DeleteCredit godoc
// @Summary      Delete a energy credit
// @Tags         Energy Credits
// @Param        creditID path int true "ID"
// @Success      204
// @Failure      404 {object} map[string]any "Energy Credit not found"
// @Security     BearerAuth
// @Router       /api/v1/customers/credits/{creditID} [delete]
func (h *Handler) DeleteCredit(w http.ResponseWriter, r *http.Request) {
	remove(h, w, r, "creditID", creditNotFound, h.service.DeleteCredit)
}

// CreateTransaction godoc
// @Summary      Create a transaction
// @Tags         Transactions
// @Accept       json
// @Produce      json
// @Param        body body types.TransactionParams true "Transactions"
// @Success      201 {object} types.Transaction
// @Failure      422 {object} map[string]any "Validation error"
// @Security     BearerAuth
// @Router       /api/v1/customers/transactions [post]
func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	create(h, w, r, transactionNotFound, h.service.CreateTransaction)
}

// ListTransactions godoc
// @Summary      List transactions
// @Tags         Transactions
// @Produce      json
// @Param        customer_id query int false "Only records of this customer"
// @Param        skip        query int false "Offset"
// @Param        limit       query int false "Page size (max 1000)"
// @Success      200 {array} types.Transaction
// @Security     BearerAuth
// @Router       /api/v1/customers/transactions [get]
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	list(h, w, r, transactionNotFound, h.service.ListTransactions)
}

// GetTransaction godoc
// @Summary      Get a transaction
// @Tags         Transactions
// @Produce      json
// @Param        transactionID path int true "ID"
// @Success      200 {object} types.Transaction
// @Failure      404 {object} map[string]any "Transaction not found"
// @Security     BearerAuth
// @Router       /api/v1/customers/transactions/{transactionID} [get]
func (h *Handler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	get(h, w, r, "transactionID", transactionNotFound, h.service.GetTransaction)
}

// UpdateTransaction godoc
// @Summary      Update a transaction
// @Tags         Transactions
// @Accept       json
// @Produce      json
// @Param        transactionID path int true "ID"
// @Param        body body types.TransactionParams true "Fields to change"
// @Success      200 {object} types.Transaction
// @Failure      404 {object} map[string]any "Transaction not found"
// @Security     BearerAuth
// @Router       /api/v1/customers/transactions/{transactionID} [put]
func (h *Handler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	update(h, w, r, "transactionID", transactionNotFound, h.service.UpdateTransaction)
}

// DeleteTransaction godoc
// @Summary      Delete a transaction
// @Tags         Transactions
// @Param        transactionID path int true "ID"
// @Success      204
// @Failure      404 {object} map[string]any "Transaction not found"
// @Security     BearerAuth
// @Router       /api/v1/customers/transactions/{transactionID} [delete]
func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	remove(h, w, r, "transactionID", transactionNotFound, h.service.DeleteTransaction)
}

// CreateNotification godoc
// @Summary      Create a notification
// @Tags         Notifications
// @Accept       json
// @Produce      json
// @Param        body body types.NotificationParams true "Notifications"
// @Success      201 {object} types.Notification
// @Failure      422 {object} map[string]any "Validation error"
// @Security     BearerAuth
// @Router       /api/v1/customers/notifications [post]
func (h *Handler) CreateNotification(w http.ResponseWriter, r *http.Request) {
	create(h, w, r, notificationNotFound, h.service.CreateNotification)
}

// ListNotifications godoc
// @Summary      List notifications
// @Tags         Notifications
// @Produce      json
// @Param        customer_id query int false "Only records of this customer"
// @Param        skip        query int false "Offset"
// @Param        limit       query int false "Page size (max 1000)"
// @Success      200 {array} types.Notification
// @Security     BearerAuth
// @Router       /api/v1/customers/notifications [get]
func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	list(h, w, r, notificationNotFound, h.service.ListNotifications)
}

// GetNotification godoc
// @Summary      Get a notification
// @Tags         Notifications
// @Produce      json
// @Param        notificationID path int true "ID"
// @Success      200 {object} types.Notification
// @Failure      404 {object} map[string]any "Notification not found"
// @Security     BearerAuth
// @Router       /api/v1/customers/notifications/{notificationID} [get]
func (h *Handler) GetNotification(w http.ResponseWriter, r *http.Request) {
	get(h, w, r, "notificationID", notificationNotFound, h.service.GetNotification)
}

// UpdateNotification godoc
// @Summary      Update a notification
// @Tags         Notifications
// @Accept       json
// @Produce      json
// @Param        notificationID path int true "ID"
// @Param        body body types.NotificationParams true "Fields to change"
// @Success      200 {object} types.Notification
// @Failure      404 {object} map[string]any "Notification not found"
// @Security     BearerAuth
// @Router       /api/v1/customers/notifications/{notificationID} [put]
func (h *Handler) UpdateNotification(w http.ResponseWriter, r *http.Request) {
	update(h, w, r, "notificationID", notificationNotFound, h.service.UpdateNotification)
}

// DeleteNotification godoc
// @Summary      Delete a notification
// @Tags         Notifications
// @Param        notificationID path int true "ID"
// @Success      204
// @Failure      404 {object} map[string]any "Notification not found"
// @Security     BearerAuth
// @Router       /api/v1/customers/notifications/{notificationID} [delete]
func (h *Handler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	remove(h, w, r, "notificationID", notificationNotFound, h.service.DeleteNotification)
}
