package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veriface/internal/attendance/models"
	"veriface/internal/conference"
	dErrors "veriface/pkg/domain-errors"
)

// stubService is a hand-rolled Service double. The handler only branches on
// errors and result status, so full gomock expectations buy nothing here.
type stubService struct {
	runResult   *models.PipelineResult
	runErr      error
	registerErr error
	records     []models.AttendanceRecord
	listErr     error

	runCalls int
}

func (s *stubService) Run(_ context.Context, _ models.ConferenceID) (*models.PipelineResult, error) {
	s.runCalls++
	return s.runResult, s.runErr
}

func (s *stubService) Register(_ context.Context, _ models.ConferenceID, _ models.UserID, _ string) error {
	return s.registerErr
}

func (s *stubService) ListAttendance(_ context.Context, _ models.ConferenceID) ([]models.AttendanceRecord, error) {
	return s.records, s.listErr
}

func newTestRouter(svc Service, confs conference.Store) http.Handler {
	h := New(svc, confs, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func seedConference(t *testing.T, store conference.Store, id models.ConferenceID) {
	t.Helper()
	require.NoError(t, store.Create(context.Background(), conference.Conference{
		ID:          id,
		Name:        "GopherCon",
		ScheduledOn: time.Now(),
		Status:      conference.StatusNotCompleted,
		CreatedAt:   time.Now(),
	}))
}

func TestHandleVerify(t *testing.T) {
	t.Run("completed run returns result and marks conference completed", func(t *testing.T) {
		confs := conference.NewMemory()
		seedConference(t, confs, "1234567890")

		svc := &stubService{runResult: &models.PipelineResult{
			RunID:        "run-1",
			ConferenceID: "1234567890",
			Status:       models.PipelineCompleted,
			Outcomes: []models.ParticipantOutcome{
				{UserID: "11111", Status: models.OutcomeMarkedPresent},
			},
		}}
		router := newTestRouter(svc, confs)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/conferences/1234567890/verify", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var result models.PipelineResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, "run-1", result.RunID)
		assert.Len(t, result.Outcomes, 1)

		conf, err := confs.Get(context.Background(), "1234567890")
		require.NoError(t, err)
		assert.Equal(t, conference.StatusCompleted, conf.Status)
	})

	t.Run("empty roster run does not complete the conference", func(t *testing.T) {
		confs := conference.NewMemory()
		seedConference(t, confs, "1234567890")

		svc := &stubService{runResult: &models.PipelineResult{
			RunID:        "run-2",
			ConferenceID: "1234567890",
			Status:       models.PipelineEmptyRoster,
		}}
		router := newTestRouter(svc, confs)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/conferences/1234567890/verify", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		conf, err := confs.Get(context.Background(), "1234567890")
		require.NoError(t, err)
		assert.Equal(t, conference.StatusNotCompleted, conf.Status)
	})

	t.Run("invalid conference id is rejected before the service runs", func(t *testing.T) {
		svc := &stubService{}
		router := newTestRouter(svc, conference.NewMemory())

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/conferences/not-digits/verify", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, svc.runCalls)
	})

	t.Run("conflicting run maps to 409", func(t *testing.T) {
		svc := &stubService{runErr: dErrors.New(dErrors.CodeConflict, "verification run already in progress")}
		router := newTestRouter(svc, conference.NewMemory())

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/conferences/1234567890/verify", nil))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unavailable dependency maps to 503", func(t *testing.T) {
		svc := &stubService{runErr: dErrors.New(dErrors.CodeUnavailable, "attendance roster unavailable")}
		router := newTestRouter(svc, conference.NewMemory())

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/conferences/1234567890/verify", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestHandleRegisterParticipant(t *testing.T) {
	t.Run("valid registration returns 201 with absent status", func(t *testing.T) {
		router := newTestRouter(&stubService{}, conference.NewMemory())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/conferences/1234567890/participants",
			strings.NewReader(`{"user_id":"54321","email":"user@example.com"}`))
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "absent", body["status"])
		assert.Equal(t, "54321", body["user_id"])
	})

	t.Run("duplicate registration maps to 409", func(t *testing.T) {
		svc := &stubService{registerErr: dErrors.New(dErrors.CodeConflict, "participant already registered")}
		router := newTestRouter(svc, conference.NewMemory())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/conferences/1234567890/participants",
			strings.NewReader(`{"user_id":"54321","email":"user@example.com"}`))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("malformed body maps to 400", func(t *testing.T) {
		router := newTestRouter(&stubService{}, conference.NewMemory())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/conferences/1234567890/participants",
			strings.NewReader(`{`))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleListAttendance(t *testing.T) {
	t.Run("returns records for the conference", func(t *testing.T) {
		svc := &stubService{records: []models.AttendanceRecord{
			{ConferenceID: "1234567890", UserID: "11111", Email: "a@example.com", Status: models.StatusPresent},
			{ConferenceID: "1234567890", UserID: "22222", Email: "b@example.com", Status: models.StatusAbsent},
		}}
		router := newTestRouter(svc, conference.NewMemory())

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/conferences/1234567890/attendance", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			ConferenceID string `json:"conference_id"`
			Records      []struct {
				UserID string `json:"user_id"`
				Status string `json:"status"`
			} `json:"records"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "1234567890", body.ConferenceID)
		require.Len(t, body.Records, 2)
		assert.Equal(t, "present", body.Records[0].Status)
	})

	t.Run("invalid conference id maps to 400", func(t *testing.T) {
		router := newTestRouter(&stubService{}, conference.NewMemory())

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/conferences/12/attendance", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
