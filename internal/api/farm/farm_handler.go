package farm

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/api"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/types"
)

const (
	farmNotFound        = "Solar Farm not found"
	panelNotFound       = "Solar Panel not found"
	maintenanceNotFound = "Maintenance Record not found"
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

// Routes is mounted at /farms.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.CreateFarm)
	r.Get("/", h.ListFarms)

	r.Route("/panels", func(r chi.Router) {
		r.Post("/", h.CreatePanel)
		r.Get("/", h.ListPanels)
		r.Get("/{panelID}", h.GetPanel)
		r.Put("/{panelID}", h.UpdatePanel)
		r.Delete("/{panelID}", h.DeletePanel)
	})
	r.Route("/maintenance", func(r chi.Router) {
		r.Post("/", h.CreateMaintenance)
		r.Get("/", h.ListMaintenance)
		r.Get("/{maintenanceID}", h.GetMaintenance)
		r.Put("/{maintenanceID}", h.UpdateMaintenance)
		r.Delete("/{maintenanceID}", h.DeleteMaintenance)
	})

	r.Get("/{farmID}", h.GetFarm)
	r.Put("/{farmID}", h.UpdateFarm)
	r.Delete("/{farmID}", h.DeleteFarm)
	return r
}

// id reads a path id, answering 400 itself when it is malformed.
func id(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	v, err := api.ParseIDParam(r, name)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return 0, false
	}
	return v, true
}

// CreateFarm godoc
// @Summary      Create a solar farm
// @Tags         Solar Farms
// @Accept       json
// @Produce      json
// @Param        body body types.CreateSolarFarmParams true "Farm"
// @Success      201 {object} types.SolarFarm
// @Failure      422 {object} map[string]any "Validation error"
// @Security     BearerAuth
// @Router       /api/v1/farms [post]
func (h *Handler) CreateFarm(w http.ResponseWriter, r *http.Request) {
	var params types.CreateSolarFarmParams
	if !api.DecodeAndValidate(w, r, &params) {
		return
	}
	farm, err := h.service.CreateFarm(r.Context(), params)
	if err != nil {
		api.WriteServiceError(w, r, h.logger, err, farmNotFound)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusCreated, farm)
}

// ListFarms godoc
// @Summary      List solar farms
// @Tags         Solar Farms
// @Produce      json
// @Param        skip  query int false "Offset"
// @Param        limit query int false "Page size (max 1000)"
// @Success      200 {array} types.SolarFarm
// @Security     BearerAuth
// @Router       /api/v1/farms [get]
func (h *Handler) ListFarms(w http.ResponseWriter, r *http.Request) {
	page, err := api.ParsePagination(r)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	farms, err := h.service.ListFarms(r.Context(), page)
	if err != nil {
		api.WriteServiceError(w, r, h.logger, err, farmNotFound)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, farms)
}

// GetFarm godoc
// @Summary      Get a solar farm
// @Tags         Solar Farms
// @Produce      json
// @Param        farmID path int true "Farm ID"
// @Success      200 {object} types.SolarFarm
// @Failure      404 {object} map[string]any "Solar Farm not found"
// @Security     BearerAuth
// @Router       /api/v1/farms/{farmID} [get]
func (h *Handler) GetFarm(w http.ResponseWriter, r *http.Request) {
	farmID, ok := id(w, r, "farmID")
	if !ok {
		return
	}
	farm, err := h.service.GetFarm(r.Context(), farmID)
	if err != nil {
		api.WriteServiceError(w, r, h.logger, err, farmNotFound)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, farm)
}

// UpdateFarm godoc
// @Summary      Update a solar farm
// @Description  Only the fields present in the body are changed.
// @Tags         Solar Farms
// @Accept       json
// @Produce      json
// @Param        farmID path int true "Farm ID"
// @Param        body body types.UpdateSolarFarmParams true "Fields to change"
// @Success      200 {object} types.SolarFarm
// @Failure      404 {object} map[string]any "Solar Farm not found"
// @Security     BearerAuth
// @Router       /api/v1/farms/{farmID} [put]
func (h *Handler) UpdateFarm(w http.ResponseWriter, r *http.Request) {
	farmID, ok := id(w, r, "farmID")
	if !ok {
		return
	}
	var params types.UpdateSolarFarmParams
	if !api.DecodeAndValidate(w, r, &params) {
		return
	}
	farm, err := h.service.UpdateFarm(r.Context(), farmID, params)
	if err != nil {
		api.WriteServiceError(w, r, h.logger, err, farmNotFound)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, farm)
}

// DeleteFarm godoc
// @Summary      Delete a solar farm
// @Tags         Solar Farms
// @Param        farmID path int true "Farm ID"
// @Success      204
// @Failure      404 {object} map[string]any "Solar Farm not found"
// @Security     BearerAuth
// @Router       /api/v1/farms/{farmID} [delete]
func (h *Handler) DeleteFarm(w http.ResponseWriter, r *http.Request) {
	farmID, ok := id(w, r, "farmID")
	if !ok {
		return
	}
	if err := h.service.DeleteFarm(r.Context(), farmID); err != nil {
		api.WriteServiceError(w, r, h.logger, err, farmNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreatePanel godoc
// @Summary      Create a solar panel
// @Tags         Solar Panels
// @Accept       json
// @Produce      json
// @Param        body body types.SolarPanelParams true "Panel"
// @Success      201 {object} types.SolarPanel
// @Failure      409 {object} map[string]any "Duplicate serial number or unknown farm"
// @Security     BearerAuth
// @Router       /api/v1/farms/panels [post]
func (h *Handler) CreatePanel(w http.ResponseWriter, r *http.Request) {
	var params types.SolarPanelParams
	if !api.DecodeAndValidate(w, r, &params) {
		return
	}
	panel, err := h.service.CreatePanel(r.Context(), params)
	if err != nil {
		api.WriteServiceError(w, r, h.logger, err, panelNotFound)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusCreated, panel)
}

// ListPanels godoc
// @Summary      List solar panels
// @Tags         Solar Panels
// @Produce      json
// @Param        farm_id query int false "Only panels of this farm"
// @Param        skip    query int false "Offset"
// @Param        limit   query int false "Page size (max 1000)"
// @Success      200 {array} types.SolarPanel
// @Security     BearerAuth
// @Router       /api/v1/farms/panels [get]
func (h *Handler) ListPanels(w http.ResponseWriter, r *http.Request) {
	page, err := api.ParsePagination(r)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	farmID, err := api.OptionalInt64Query(r, "farm_id")
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	panels, err := h.service.ListPanels(r.Context(), types.PanelFilter{FarmID: farmID}, page)
	if err != nil {
		api.WriteServiceError(w, r, h.logger, err, panelNotFound)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, panels)
}

// GetPanel godoc
// @Summary      Get a solar panel
// @Tags         Solar Panels
// @Produce      json
// @Param        panelID path int true "Panel ID"
// @Success      200 {object} types.SolarPanel
// @Failure      404 {object} map[string]any "Solar Panel not found"
// @Security     BearerAuth
// @Router       /api/v1/farms/panels/{panelID} [get]
func (h *Handler) GetPanel(w http.ResponseWriter, r *http.Request) {
	panelID, ok := id(w, r, "panelID")
	if !ok {
		return
	}
	panel, err := h.service.GetPanel(r.Context(), panelID)
	if err != nil {
		api.WriteServiceError(w, r, h.logger, err, panelNotFound)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, panel)
}

// UpdatePanel godoc
// @Summary      Update a solar panel
// @Tags         Solar Panels
// @Accept       json
// @Produce      json
// @Param        panelID path int true "Panel ID"
// @Param        body body types.SolarPanelParams true "Fields to change"
// @Success      200 {object} types.SolarPanel
// @Failure      404 {object} map[string]any "Solar Panel not found"
// @Security     BearerAuth
// @Router       /api/v1/farms/panels/{panelID} [put]
func (h *Handler) UpdatePanel(w http.ResponseWriter, r *http.Request) {
	panelID, ok := id(w, r, "panelID")
	if !ok {
		return
	}
	var params types.SolarPanelParams
	if !api.DecodeAndValidate(w, r, &params) {
		return
	}
	panel, err := h.service.UpdatePanel(r.Context(), panelID, params)
	if err != nil {
		api.WriteServiceError(w, r, h.logger, err, panelNotFound)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, panel)
}

// DeletePanel godoc
// @Summary      Delete a solar panel
// @Tags         Solar Panels
// @Param        panelID path int true "Panel ID"
// @Success      204
// @Failure      404 {object} map[string]any "Solar Panel not found"
// @Security     BearerAuth
// @Router       /api/v1/farms/panels/{panelID} [delete]
func (h *Handler) DeletePanel(w http.ResponseWriter, r *http.Request) {
	panelID, ok := id(w, r, "panelID")
	if !ok {
		return
	}
	if err := h.service.DeletePanel(r.Context(), panelID); err != nil {
		api.WriteServiceError(w, r, h.logger, err, panelNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateMaintenance godoc
// @Summary      Create a maintenance record
// @Tags         Maintenance
// @Accept       json
// @Produce      json
// @Param        body body types.MaintenanceRecordParams true "Maintenance record"
// @Success      201 {object} types.MaintenanceRecord
// @Security     BearerAuth
// @Router       /api/v1/farms/maintenance [post]
func (h *Handler) CreateMaintenance(w http.ResponseWriter, r *http.Request) {
	var params types.MaintenanceRecordParams
	if !api.DecodeAndValidate(w, r, &params) {
		return
	}
	rec, err := h.service.CreateMaintenance(r.Context(), params)
	if err != nil {
		api.WriteServiceError(w, r, h.logger, err, maintenanceNotFound)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusCreated, rec)
}

// ListMaintenance godoc
// @Summary      List maintenance records
// @Tags         Maintenance
// @Produce      json
// @Param        farm_id  query int false "Only records of this farm"
// @Param        panel_id query int false "Only records of this panel"
// @Param        skip     query int false "Offset"
// @Param        limit    query int false "Page size (max 1000)"
// @Success      200 {array} types.MaintenanceRecord
// @Security     BearerAuth
// @Router       /api/v1/farms/maintenance [get]
func (h *Handler) ListMaintenance(w http.ResponseWriter, r *http.Request) {
	page, err := api.ParsePagination(r)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	farmID, err := api.OptionalInt64Query(r, "farm_id")
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	panelID, err := api.OptionalInt64Query(r, "panel_id")
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	recs, err := h.service.ListMaintenance(r.Context(), types.MaintenanceFilter{FarmID: farmID, PanelID: panelID}, page)
	if err != nil {
		api.WriteServiceError(w, r, h.logger, err, maintenanceNotFound)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, recs)
}

// GetMaintenance godoc
// @Summary      Get a maintenance record
// @Tags         Maintenance
// @Produce      json
// @Param        maintenanceID path int true "Maintenance record ID"
// @Success      200 {object} types.MaintenanceRecord
// @Failure      404 {object} map[string]any "Maintenance Record not found"
// @Security     BearerAuth
// @Router       /api/v1/farms/maintenance/{maintenanceID} [get]
func (h *Handler) GetMaintenance(w http.ResponseWriter, r *http.Request) {
	recID, ok := id(w, r, "maintenanceID")
	if !ok {
		return
	}
	rec, err := h.service.GetMaintenance(r.Context(), recID)
	if err != nil {
		api.WriteServiceError(w, r, h.logger, err, maintenanceNotFound)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, rec)
}

// UpdateMaintenance godoc
// @Summary      Update a maintenance record
// @Tags         Maintenance
// @Accept       json
// @Produce      json
// @Param        maintenanceID path int true "Maintenance record ID"
// @Param        body body types.MaintenanceRecordParams true "Fields to change"
// @Success      200 {object} types.MaintenanceRecord
// @Failure      404 {object} map[string]any "Maintenance Record not found"
// @Security     BearerAuth
// @Router       /api/v1/farms/maintenance/{maintenanceID} [put]
func (h *Handler) UpdateMaintenance(w http.ResponseWriter, r *http.Request) {
	recID, ok := id(w, r, "maintenanceID")
	if !ok {
		return
	}
	var params types.MaintenanceRecordParams
	if !api.DecodeAndValidate(w, r, &params) {
		return
	}
	rec, err := h.service.UpdateMaintenance(r.Context(), recID, params)
	if err != nil {
		api.WriteServiceError(w, r, h.logger, err, maintenanceNotFound)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, rec)
}

// DeleteMaintenance godoc
// @Summary      Delete a maintenance record
// @Tags         Maintenance
// @Param        maintenanceID path int true "Maintenance record ID"
// @Success      204
// @Failure      404 {object} map[string]any "Maintenance Record not found"
// @Security     BearerAuth
// @Router       /api/v1/farms/maintenance/{maintenanceID} [delete]
func (h *Handler) DeleteMaintenance(w http.ResponseWriter, r *http.Request) {
	recID, ok := id(w, r, "maintenanceID")
	if !ok {
		return
	}
	if err := h.service.DeleteMaintenance(r.Context(), recID); err != nil {
		api.WriteServiceError(w, r, h.logger, err, maintenanceNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
