package user

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/kanishkPamecha/Movies/internal/api"
	"github.com/kanishkPamecha/Movies/internal/api/auth"
	"github.com/kanishkPamecha/Movies/internal/types"
)

var _ Handler = (*HandlerImpl)(nil)

type Handler interface {
	GetUserProfile(w http.ResponseWriter, r *http.Request)
	UpdateUserProfile(w http.ResponseWriter, r *http.Request)
	ListUsers(w http.ResponseWriter, r *http.Request)
}

type HandlerImpl struct {
	userService UserService
	logger      *slog.Logger
}

func NewHandlerImpl(userService UserService, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		userService: userService,
		logger:      logger,
	}
}

// GetUserProfile godoc
// @Summary      Get User Profile
// @Description  Retrieves the authenticated user's public projection.
// @Tags         User
// @Produce      json
// @Success      200 {object} types.PublicUser
// @Router       /users/profile [get]
func (h *HandlerImpl) GetUserProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "GetUserProfile"))

	userID, ok := authenticatedUserID(w, r, l)
	if !ok {
		return
	}

	profile, err := h.userService.GetUserProfile(ctx, userID)
	if err != nil {
		l.ErrorContext(ctx, "Failed to get user profile", slog.Any("error", err))
		api.HandleDomainError(w, r, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, profile.Public())
}

// UpdateUserProfile godoc
// @Summary      Update User Profile
// @Description  Partially updates username, email and/or password.
// @Tags         User
// @Accept       json
// @Produce      json
// @Success      200 {object} types.PublicUser
// @Router       /users/profile [put]
func (h *HandlerImpl) UpdateUserProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "UpdateUserProfile"))

	userID, ok := authenticatedUserID(w, r, l)
	if !ok {
		return
	}

	var params types.UpdateProfileParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		l.WarnContext(ctx, "Failed to decode request", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.userService.UpdateUserProfile(ctx, userID, params)
	if err != nil {
		l.ErrorContext(ctx, "Failed to update user profile", slog.Any("error", err))
		api.HandleDomainError(w, r, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, updated.Public())
}

// ListUsers godoc
// @Summary      List all users
// @Description  Admin-only listing of public user projections.
// @Tags         User
// @Produce      json
// @Success      200 {array} types.PublicUser
// @Router       /users [get]
func (h *HandlerImpl) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "ListUsers"))

	users, err := h.userService.ListUsers(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to list users", slog.Any("error", err))
		api.HandleDomainError(w, r, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, users)
}

// authenticatedUserID resolves the caller's id placed in context by the
// Authenticate middleware, writing the error response itself on failure.
func authenticatedUserID(w http.ResponseWriter, r *http.Request, l *slog.Logger) (uuid.UUID, bool) {
	userIDStr, ok := auth.GetUserIDFromContext(r.Context())
	if !ok || userIDStr == "" {
		l.ErrorContext(r.Context(), "User ID not found in context")
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Authentication required")
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		l.ErrorContext(r.Context(), "Invalid user ID format", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid user ID format")
		return uuid.Nil, false
	}
	return userID, true
}
