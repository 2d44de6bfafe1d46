// Package handler wires the attendance endpoints to the verification
// service.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"veriface/internal/attendance/models"
	"veriface/internal/conference"
	dErrors "veriface/pkg/domain-errors"
	"veriface/pkg/platform/httputil"
)

// Service defines the attendance operations the handler exposes.
type Service interface {
	Run(ctx context.Context, conferenceID models.ConferenceID) (*models.PipelineResult, error)
	Register(ctx context.Context, conferenceID models.ConferenceID, userID models.UserID, email string) error
	ListAttendance(ctx context.Context, conferenceID models.ConferenceID) ([]models.AttendanceRecord, error)
}

// Handler serves the attendance endpoints.
type Handler struct {
	service     Service
	conferences conference.Store
	logger      *slog.Logger
}

// New constructs an attendance handler with its dependencies.
func New(service Service, conferences conference.Store, logger *slog.Logger) *Handler {
	return &Handler{
		service:     service,
		conferences: conferences,
		logger:      logger,
	}
}

// Register mounts attendance endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/conferences/{conferenceID}/participants", h.HandleRegisterParticipant)
	r.Get("/conferences/{conferenceID}/attendance", h.HandleListAttendance)
	r.Post("/conferences/{conferenceID}/verify", h.HandleVerify)
}

type registerParticipantRequest struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// HandleRegisterParticipant handles POST /conferences/{conferenceID}/participants.
func (h *Handler) HandleRegisterParticipant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	conferenceID, ok := h.conferenceID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.Decode[registerParticipantRequest](w, r)
	if !ok {
		return
	}

	if err := h.service.Register(ctx, conferenceID, models.UserID(req.UserID), req.Email); err != nil {
		h.logger.ErrorContext(ctx, "participant registration failed",
			"conference_id", conferenceID,
			"user_id", req.UserID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "participant registered",
		"conference_id", conferenceID,
		"user_id", req.UserID,
	)
	httputil.WriteJSON(w, http.StatusCreated, map[string]string{
		"conference_id": conferenceID.String(),
		"user_id":       req.UserID,
		"status":        string(models.StatusAbsent),
	})
}

// HandleListAttendance handles GET /conferences/{conferenceID}/attendance.
func (h *Handler) HandleListAttendance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	conferenceID, ok := h.conferenceID(w, r)
	if !ok {
		return
	}

	records, err := h.service.ListAttendance(ctx, conferenceID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list attendance failed",
			"conference_id", conferenceID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	type entry struct {
		UserID    string    `json:"user_id"`
		Email     string    `json:"email"`
		Status    string    `json:"status"`
		UpdatedAt time.Time `json:"updated_at"`
	}
	out := make([]entry, 0, len(records))
	for _, rec := range records {
		out = append(out, entry{
			UserID:    rec.UserID.String(),
			Email:     rec.Email,
			Status:    string(rec.Status),
			UpdatedAt: rec.UpdatedAt,
		})
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"conference_id": conferenceID.String(),
		"records":       out,
	})
}

// HandleVerify handles POST /conferences/{conferenceID}/verify. It runs the
// full verification pipeline synchronously and returns the run result.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	conferenceID, ok := h.conferenceID(w, r)
	if !ok {
		return
	}

	result, err := h.service.Run(ctx, conferenceID)
	if err != nil {
		h.logger.ErrorContext(ctx, "verification run failed",
			"conference_id", conferenceID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	if result.Status == models.PipelineCompleted {
		if err := h.conferences.SetStatus(ctx, conferenceID, conference.StatusCompleted); err != nil {
			h.logger.ErrorContext(ctx, "mark conference completed failed",
				"conference_id", conferenceID,
				"error", err,
			)
		}
	}

	h.logger.InfoContext(ctx, "verification run served",
		"conference_id", conferenceID,
		"run_id", result.RunID,
		"status", result.Status,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, result)
}

// conferenceID extracts and validates the conference id path parameter.
func (h *Handler) conferenceID(w http.ResponseWriter, r *http.Request) (models.ConferenceID, bool) {
	id := models.ConferenceID(chi.URLParam(r, "conferenceID"))
	if !id.IsValid() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "conference id must be 5 to 15 digits"))
		return "", false
	}
	return id, true
}
