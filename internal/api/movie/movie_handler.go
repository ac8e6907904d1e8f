package movie

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kanishkPamecha/Movies/internal/api"
	"github.com/kanishkPamecha/Movies/internal/types"
)

type Handler struct {
	logger  *slog.Logger
	service MovieService
}

func NewMovieHandler(service MovieService, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

func (h *Handler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "CreateMovie"))

	var params types.CreateMovieParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		l.WarnContext(ctx, "Failed to decode request", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	movie, err := h.service.CreateMovie(ctx, params)
	if err != nil {
		l.ErrorContext(ctx, "Failed to create movie", slog.Any("error", err))
		api.HandleDomainError(w, r, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusCreated, movie)
}

func (h *Handler) GetMovie(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "GetMovie"))

	id, ok := movieIDFromURL(w, r, l)
	if !ok {
		return
	}

	movie, err := h.service.GetMovie(ctx, id)
	if err != nil {
		l.ErrorContext(ctx, "Failed to get movie", slog.Any("error", err))
		api.HandleDomainError(w, r, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, movie)
}

func (h *Handler) ListMovies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "ListMovies"))

	movies, err := h.service.ListMovies(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to list movies", slog.Any("error", err))
		api.HandleDomainError(w, r, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, movies)
}

func (h *Handler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "UpdateMovie"))

	id, ok := movieIDFromURL(w, r, l)
	if !ok {
		return
	}

	var params types.UpdateMovieParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		l.WarnContext(ctx, "Failed to decode request", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	movie, err := h.service.UpdateMovie(ctx, id, params)
	if err != nil {
		l.ErrorContext(ctx, "Failed to update movie", slog.Any("error", err))
		api.HandleDomainError(w, r, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, movie)
}

func (h *Handler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "DeleteMovie"))

	id, ok := movieIDFromURL(w, r, l)
	if !ok {
		return
	}

	if err := h.service.DeleteMovie(ctx, id); err != nil {
		l.ErrorContext(ctx, "Failed to delete movie", slog.Any("error", err))
		api.HandleDomainError(w, r, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]string{
		"message": "Movie deleted successfully",
	})
}

func movieIDFromURL(w http.ResponseWriter, r *http.Request, l *slog.Logger) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		l.WarnContext(r.Context(), "Invalid movie ID", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid movie ID")
		return uuid.Nil, false
	}
	return id, true
}
