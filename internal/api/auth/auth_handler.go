package auth

import (
	"log/slog"
	"net/http"

	"github.com/kanishkPamecha/Movies/config"
	"github.com/kanishkPamecha/Movies/internal/api"
)

// RegisterRequest represents the register request body
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthHandler handles HTTP requests for authentication operations
type AuthHandler struct {
	authService AuthService
	cfg         *config.Config
	logger      *slog.Logger
}

func NewAuthHandler(authService AuthService, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
		logger:      logger,
	}
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates a user, sets the session cookie and returns the public projection.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Success      201 {object} types.PublicUser
// @Router       /users [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "Register"))

	var req RegisterRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode request", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := h.authService.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		l.ErrorContext(ctx, "Registration failed", slog.Any("error", err), slog.String("email", req.Email))
		api.HandleDomainError(w, r, err)
		return
	}

	http.SetCookie(w, SessionCookie(h.cfg, token))
	api.WriteJSONResponse(w, r, http.StatusCreated, user.Public())
}

// Login godoc
// @Summary      Authenticate a user
// @Description  Verifies credentials, sets the session cookie and returns the public projection.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Success      200 {object} types.PublicUser
// @Router       /users/auth [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "Login"))

	var req LoginRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode request", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		l.WarnContext(ctx, "Login failed", slog.Any("error", err), slog.String("email", req.Email))
		api.HandleDomainError(w, r, err)
		return
	}

	http.SetCookie(w, SessionCookie(h.cfg, token))
	api.WriteJSONResponse(w, r, http.StatusOK, user.Public())
}

// Logout clears the session cookie. The issued token stays cryptographically
// valid until natural expiry; only the client-side copy is dropped.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, ClearSessionCookie(h.cfg))
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]string{
		"message": "Logged out successfully",
	})
}
