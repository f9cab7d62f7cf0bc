package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"mockdata/internal/dataset"
	"mockdata/internal/platform/middleware"
	"mockdata/pkg/platform/httputil"
	"mockdata/pkg/platform/sentinel"
)

// BasePath is where the dataset is served, matching the original backend.
const BasePath = "/api/mockdata"

// Service defines the dataset operations the handler exposes.
type Service interface {
	GetAll(ctx context.Context) (*dataset.Payload, error)
	Get(ctx context.Context, section dataset.Section) (any, error)
	Invalidate()
}

// Handler serves the whole dataset, single sections, and a forced reload.
type Handler struct {
	svc    Service
	logger *slog.Logger
}

func New(svc Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// Register registers the dataset routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get(BasePath, h.HandleGetAll)
	r.Post(BasePath+"/invalidate", h.HandleInvalidate)
	r.Get(BasePath+"/{section}", h.HandleGetSection)
}

func (h *Handler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	payload, err := h.svc.GetAll(r.Context())
	if err != nil {
		h.writeLoadError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, payload)
}

func (h *Handler) HandleGetSection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "section")

	section, err := dataset.ParseSection(name)
	if err != nil {
		h.logger.WarnContext(ctx, "unknown section requested",
			"request_id", middleware.GetRequestID(r),
			"section", name,
		)
		httputil.WriteError(w, fmt.Errorf("section %q: %w", name, sentinel.ErrNotFound))
		return
	}

	value, err := h.svc.Get(ctx, section)
	if err != nil {
		h.writeLoadError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, value)
}

func (h *Handler) HandleInvalidate(w http.ResponseWriter, r *http.Request) {
	h.svc.Invalidate()
	h.logger.InfoContext(r.Context(), "dataset invalidated over http",
		"request_id", middleware.GetRequestID(r),
	)
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "invalidated"})
}

func (h *Handler) writeLoadError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	if errors.Is(err, dataset.ErrSectionNotFound) {
		httputil.WriteError(w, fmt.Errorf("%w: %w", sentinel.ErrNotFound, err))
		return
	}
	h.logger.ErrorContext(ctx, "dataset unavailable",
		"request_id", middleware.GetRequestID(r),
		"path", r.URL.Path,
		"error", err,
	)
	// The cause chain carries per-attempt errors such as not-found local
	// paths; none of them may change the status or reach the client.
	httputil.WriteCode(w, http.StatusServiceUnavailable, httputil.CodeDataUnavailable)
}
