// Package handler exposes the administrative conference endpoints.
package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"veriface/internal/attendance/models"
	"veriface/internal/conference"
	dErrors "veriface/pkg/domain-errors"
	"veriface/pkg/platform/httputil"
	"veriface/pkg/platform/sentinel"
)

// Handler serves conference CRUD endpoints.
type Handler struct {
	store  conference.Store
	logger *slog.Logger
}

// New constructs a conference handler.
func New(store conference.Store, logger *slog.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Register mounts conference endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/conferences", h.HandleCreate)
	r.Get("/conferences", h.HandleList)
	r.Get("/conferences/{conferenceID}", h.HandleGet)
}

type createConferenceRequest struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ScheduledOn time.Time `json:"scheduled_on"`
}

// HandleCreate handles POST /conferences.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := httputil.Decode[createConferenceRequest](w, r)
	if !ok {
		return
	}

	id := models.ConferenceID(req.ID)
	if !id.IsValid() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "conference id must be 5 to 15 digits"))
		return
	}
	if req.Name == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "conference name is required"))
		return
	}

	conf := conference.Conference{
		ID:          id,
		Name:        req.Name,
		ScheduledOn: req.ScheduledOn,
		Status:      conference.StatusNotCompleted,
		CreatedAt:   time.Now().UTC(),
	}
	if err := h.store.Create(ctx, conf); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			httputil.WriteError(w, dErrors.New(dErrors.CodeConflict, "conference already exists"))
			return
		}
		h.logger.ErrorContext(ctx, "create conference failed", "conference_id", id, "error", err)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "create conference"))
		return
	}

	h.logger.InfoContext(ctx, "conference created", "conference_id", id)
	httputil.WriteJSON(w, http.StatusCreated, conf)
}

// HandleList handles GET /conferences.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	confs, err := h.store.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list conferences failed", "error", err)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "list conferences"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"conferences": confs})
}

// HandleGet handles GET /conferences/{conferenceID}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := models.ConferenceID(chi.URLParam(r, "conferenceID"))
	if !id.IsValid() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "conference id must be 5 to 15 digits"))
		return
	}

	conf, err := h.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "conference not found"))
			return
		}
		h.logger.ErrorContext(ctx, "get conference failed", "conference_id", id, "error", err)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "get conference"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, conf)
}
