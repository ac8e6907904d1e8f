package upload

import (
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/kanishkPamecha/Movies/app/observability/metrics"
	"github.com/kanishkPamecha/Movies/config"
	"github.com/kanishkPamecha/Movies/internal/api"
)

// allowedImageTypes maps accepted file extensions to their content types.
var allowedImageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// UploadResponse represents the upload response body
type UploadResponse struct {
	Message string `json:"message"`
	Image   string `json:"image"`
}

type Handler struct {
	logger  *slog.Logger
	cfg     *config.Config
	storage Storage
	metrics *metrics.AppMetrics
}

func NewUploadHandler(storage Storage, cfg *config.Config, logger *slog.Logger, m *metrics.AppMetrics) *Handler {
	return &Handler{
		logger:  logger,
		cfg:     cfg,
		storage: storage,
		metrics: m,
	}
}

// UploadImage accepts a multipart form with an `image` field, stores it under
// a random name and returns the public path.
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "UploadImage"))

	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.Upload.MaxBytes)
	if err := r.ParseMultipartForm(h.cfg.Upload.MaxBytes); err != nil {
		l.WarnContext(ctx, "Failed to parse multipart form", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid multipart form or file too large")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		l.WarnContext(ctx, "Missing image field", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Image file is required")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	contentType, ok := allowedImageTypes[ext]
	if !ok {
		api.ErrorResponse(w, r, http.StatusBadRequest,
			fmt.Sprintf("Unsupported image type %q, expected jpg, png or webp", ext))
		return
	}

	filename := uuid.NewString() + ext
	path, err := h.storage.Save(ctx, filename, contentType, file)
	if err != nil {
		l.ErrorContext(ctx, "Failed to store image", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to store image")
		return
	}

	if h.metrics != nil {
		h.metrics.UploadBytesTotal.Add(ctx, header.Size)
	}
	l.InfoContext(ctx, "Image uploaded",
		slog.String("path", path), slog.Int64("size", header.Size))

	api.WriteJSONResponse(w, r, http.StatusCreated, UploadResponse{
		Message: "Image uploaded successfully",
		Image:   path,
	})
}
