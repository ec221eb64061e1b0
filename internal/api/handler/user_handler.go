package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"microfeed/internal/api/middleware"
	"microfeed/internal/app/service"
	"microfeed/internal/common"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	userService *service.UserService
	logger      *slog.Logger
}

func NewUserHandler(userService *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{userService: userService, logger: logger}
}

func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Get("/{userID}", h.getProfile) // GET /users/{id}

	r.Group(func(protected chi.Router) {
		protected.Use(middleware.Authenticator)
		protected.Put("/{userID}", h.updateProfile) // PUT /users/{id}
	})
}

func (h *UserHandler) getProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	profile, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, profile)
}

func (h *UserHandler) updateProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req service.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	userID := chi.URLParam(r, "userID")
	if err := h.userService.UpdateProfile(r.Context(), identity, userID, req); err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	common.RespondWithMessage(w, http.StatusOK, "Profile updated successfully")
}
