package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/api"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/types"
)

type AuthHandler struct {
	service AuthService
	logger  *slog.Logger
}

func NewAuthHandler(service AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

func (h *AuthHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, types.ErrNotFound) {
		err = ErrUserNotFound
	}
	if status, _ := StatusFor(err); status == http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "Auth request failed", slog.String("path", r.URL.Path), slog.Any("error", err))
	}
	WriteError(w, r, err)
}

// Signup godoc
// @Summary      Register a new user
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body body SignupRequest true "Signup request"
// @Success      201 {object} types.User
// @Failure      400 {object} map[string]any "Username or email already registered"
// @Failure      422 {object} map[string]any "Validation error"
// @Router       /api/v1/auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if !api.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := h.service.Signup(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusCreated, user)
}

// Login godoc
// @Summary      Exchange username and password for an access token
// @Description  Accepts a JSON body or an OAuth2 password form (application/x-www-form-urlencoded).
// @Tags         Auth
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        body body LoginRequest true "Credentials"
// @Success      200 {object} TokenResponse
// @Failure      401 {object} map[string]any "Incorrect username or password"
// @Failure      403 {object} map[string]any "Inactive user account"
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			api.ErrorResponse(w, r, http.StatusBadRequest, "invalid form body")
			return
		}
		req.Username = r.PostForm.Get("username")
		req.Password = r.PostForm.Get("password")
		if err := api.ValidateStruct(&req); err != nil {
			api.ErrorResponse(w, r, http.StatusUnprocessableEntity, err.Error())
			return
		}
	} else if !api.DecodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}

// Me godoc
// @Summary      Current user
// @Tags         Auth
// @Produce      json
// @Success      200 {object} types.User
// @Failure      401 {object} map[string]any
// @Security     BearerAuth
// @Router       /api/v1/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		WriteError(w, r, ErrUnauthenticated)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, user)
}

// UpdateMe godoc
// @Summary      Update the current user's profile
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body body types.UpdateProfileParams true "Fields to change"
// @Success      200 {object} types.User
// @Security     BearerAuth
// @Router       /api/v1/auth/me [put]
func (h *AuthHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		WriteError(w, r, ErrUnauthenticated)
		return
	}
	var params types.UpdateProfileParams
	if !api.DecodeAndValidate(w, r, &params) {
		return
	}
	updated, err := h.service.UpdateProfile(r.Context(), user.ID, params)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, updated)
}

// Session godoc
// @Summary      Report whether the caller is signed in
// @Tags         Auth
// @Produce      json
// @Success      200 {object} SessionResponse
// @Router       /api/v1/auth/session [get]
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	api.WriteJSONResponse(w, r, http.StatusOK, SessionResponse{Authenticated: ok, User: user})
}

// ListUsers godoc
// @Summary      List users
// @Tags         Admin
// @Produce      json
// @Param        skip  query int false "Offset"
// @Param        limit query int false "Page size (max 1000)"
// @Success      200 {array} types.User
// @Failure      403 {object} map[string]any "Admin privileges required"
// @Security     BearerAuth
// @Router       /api/v1/admin/users [get]
func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, err := api.ParsePagination(r)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	users, err := h.service.ListUsers(r.Context(), page)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, users)
}

// UpdateUser godoc
// @Summary      Change a user's admin or active flags
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        userID path int true "User ID"
// @Param        body body types.UpdateUserStatusParams true "Flags"
// @Success      200 {object} types.User
// @Failure      404 {object} map[string]any "User not found"
// @Security     BearerAuth
// @Router       /api/v1/admin/users/{userID} [put]
func (h *AuthHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := api.ParseIDParam(r, "userID")
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	var params types.UpdateUserStatusParams
	if !api.DecodeAndValidate(w, r, &params) {
		return
	}
	user, err := h.service.UpdateUserStatus(r.Context(), id, params)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, user)
}
