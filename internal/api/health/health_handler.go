package health

import (
	"fmt"
	"net/http"

	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/api"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/api/auth"
)

type Status struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type Welcome struct {
	Message string `json:"message"`
	Docs    string `json:"docs"`
}

// Health godoc
// @Summary      Liveness probe
// @Tags         Health
// @Produce      json
// @Success      200 {object} health.Status
// @Router       /health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	api.WriteJSONResponse(w, r, http.StatusOK, Status{
		Status:  "healthy",
		Message: "Server is running fine!",
	})
}

// Root godoc
// @Summary      Welcome message
// @Description  Greets the caller by username when a credential is presented.
// @Tags         Health
// @Produce      json
// @Success      200 {object} health.Welcome
// @Router       / [get]
func Root(w http.ResponseWriter, r *http.Request) {
	msg := "Welcome to Cloud Solar API"
	if u, ok := auth.UserFromContext(r.Context()); ok {
		msg = fmt.Sprintf("Welcome to Cloud Solar API, %s", u.Username)
	}
	api.WriteJSONResponse(w, r, http.StatusOK, Welcome{Message: msg, Docs: "/swagger/index.html"})
}
