package genre

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kanishkPamecha/Movies/internal/api"
)

// GenreRequest represents the create/update genre request body
type GenreRequest struct {
	Name string `json:"name"`
}

type Handler struct {
	logger  *slog.Logger
	service GenreService
}

func NewGenreHandler(service GenreService, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

func (h *Handler) CreateGenre(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "CreateGenre"))

	var req GenreRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode request", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	genre, err := h.service.CreateGenre(ctx, req.Name)
	if err != nil {
		l.ErrorContext(ctx, "Failed to create genre", slog.Any("error", err))
		api.HandleDomainError(w, r, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusCreated, genre)
}

func (h *Handler) GetGenre(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "GetGenre"))

	id, ok := genreIDFromURL(w, r, l)
	if !ok {
		return
	}

	genre, err := h.service.GetGenre(ctx, id)
	if err != nil {
		l.ErrorContext(ctx, "Failed to get genre", slog.Any("error", err))
		api.HandleDomainError(w, r, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, genre)
}

func (h *Handler) ListGenres(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "ListGenres"))

	genres, err := h.service.ListGenres(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to list genres", slog.Any("error", err))
		api.HandleDomainError(w, r, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, genres)
}

func (h *Handler) UpdateGenre(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "UpdateGenre"))

	id, ok := genreIDFromURL(w, r, l)
	if !ok {
		return
	}

	var req GenreRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode request", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	genre, err := h.service.UpdateGenre(ctx, id, req.Name)
	if err != nil {
		l.ErrorContext(ctx, "Failed to update genre", slog.Any("error", err))
		api.HandleDomainError(w, r, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, genre)
}

func (h *Handler) DeleteGenre(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "DeleteGenre"))

	id, ok := genreIDFromURL(w, r, l)
	if !ok {
		return
	}

	if err := h.service.DeleteGenre(ctx, id); err != nil {
		l.ErrorContext(ctx, "Failed to delete genre", slog.Any("error", err))
		api.HandleDomainError(w, r, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]string{
		"message": "Genre deleted successfully",
	})
}

func genreIDFromURL(w http.ResponseWriter, r *http.Request, l *slog.Logger) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		l.WarnContext(r.Context(), "Invalid genre ID", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid genre ID")
		return uuid.Nil, false
	}
	return id, true
}
