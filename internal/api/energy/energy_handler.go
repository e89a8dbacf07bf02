package energy

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/api"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/types"
)

const generationNotFound = "Energy Generation not found"

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

// Routes is mounted at /energy.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Route("/generation", func(r chi.Router) {
		r.Post("/", h.CreateGeneration)
		r.Get("/", h.ListGeneration)
		r.Get("/{generationID}", h.GetGeneration)
		r.Put("/{generationID}", h.UpdateGeneration)
		r.Delete("/{generationID}", h.DeleteGeneration)
	})
	return r
}

// CreateGeneration godoc
// @Summary      Record an energy generation reading
// @Tags         Energy
// @Accept       json
// @Produce      json
// @Param        body body types.CreateEnergyGenerationParams true "Reading"
// @Success      201 {object} types.EnergyGeneration
// @Failure      422 {object} map[string]any "Validation error"
// @Security     BearerAuth
// @Router       /api/v1/energy/generation [post]
func (h *Handler) CreateGeneration(w http.ResponseWriter, r *http.Request) {
	var params types.CreateEnergyGenerationParams
	if !api.DecodeAndValidate(w, r, &params) {
		return
	}
	g, err := h.service.CreateGeneration(r.Context(), params)
	if err != nil {
		api.WriteServiceError(w, r, h.logger, err, generationNotFound)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusCreated, g)
}

// ListGeneration godoc
// @Summary      List energy generation readings
// @Tags         Energy
// @Produce      json
// @Param        panel_id query int false "Only readings of this panel"
// @Param        skip     query int false "Offset"
// @Param        limit    query int false "Page size (max 1000)"
// @Success      200 {array} types.EnergyGeneration
// @Security     BearerAuth
// @Router       /api/v1/energy/generation [get]
func (h *Handler) ListGeneration(w http.ResponseWriter, r *http.Request) {
	page, err := api.ParsePagination(r)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	panelID, err := api.OptionalInt64Query(r, "panel_id")
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	out, err := h.service.ListGeneration(r.Context(), types.GenerationFilter{PanelID: panelID}, page)
	if err != nil {
		api.WriteServiceError(w, r, h.logger, err, generationNotFound)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, out)
}

// GetGeneration godoc
// @Summary      Get an energy generation reading
// @Tags         Energy
// @Produce      json
// @Param        generationID path int true "Generation ID"
// @Success      200 {object} types.EnergyGeneration
// @Failure      404 {object} map[string]any "Energy Generation not found"
// @Security     BearerAuth
// @Router       /api/v1/energy/generation/{generationID} [get]
func (h *Handler) GetGeneration(w http.ResponseWriter, r *http.Request) {
	id, err := api.ParseIDParam(r, "generationID")
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	g, err := h.service.GetGeneration(r.Context(), id)
	if err != nil {
		api.WriteServiceError(w, r, h.logger, err, generationNotFound)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, g)
}

// UpdateGeneration godoc
// @Summary      Update an energy generation reading
// @Tags         Energy
// @Accept       json
// @Produce      json
// @Param        generationID path int true "Generation ID"
// @Param        body body types.UpdateEnergyGenerationParams true "Fields to change"
// @Success      200 {object} types.EnergyGeneration
// @Failure      404 {object} map[string]any "Energy Generation not found"
// @Security     BearerAuth
// @Router       /api/v1/energy/generation/{generationID} [put]
func (h *Handler) UpdateGeneration(w http.ResponseWriter, r *http.Request) {
	id, err := api.ParseIDParam(r, "generationID")
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	var params types.UpdateEnergyGenerationParams
	if !api.DecodeAndValidate(w, r, &params) {
		return
	}
	g, err := h.service.UpdateGeneration(r.Context(), id, params)
	if err != nil {
		api.WriteServiceError(w, r, h.logger, err, generationNotFound)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, g)
}

// DeleteGeneration godoc
// @Summary      Delete an energy generation reading
// @Tags         Energy
// @Param        generationID path int true "Generation ID"
// @Success      204
// @Failure      404 {object} map[string]any "Energy Generation not found"
// @Security     BearerAuth
// @Router       /api/v1/energy/generation/{generationID} [delete]
func (h *Handler) DeleteGeneration(w http.ResponseWriter, r *http.Request) {
	id, err := api.ParseIDParam(r, "generationID")
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.service.DeleteGeneration(r.Context(), id); err != nil {
		api.WriteServiceError(w, r, h.logger, err, generationNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
