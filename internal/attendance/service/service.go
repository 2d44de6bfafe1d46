// Package service implements the attendance verification pipeline: one run
// compares a freshly captured site image against every registered
// participant's enrollment reference and records who is present.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"veriface/internal/attendance/metrics"
	"veriface/internal/attendance/models"
	"veriface/internal/attendance/ports"
	"veriface/internal/recognition"
	dErrors "veriface/pkg/domain-errors"
	"veriface/pkg/platform/sentinel"
)

const (
	defaultSimilarityThreshold = 75.0
	defaultConcurrency         = 4
)

// Service orchestrates verification runs over the collaborator ports.
type Service struct {
	store     ports.AttendanceStore
	gateway   ports.ComparisonGateway
	images    ports.ImageSource
	notifier  ports.Notifier
	publisher ports.EventPublisher
	lock      ports.RunLock
	logger    *slog.Logger

	threshold   float64
	concurrency int
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets the logger used by the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithNotifier enables absence notifications.
func WithNotifier(n ports.Notifier) Option {
	return func(s *Service) {
		s.notifier = n
	}
}

// WithPublisher enables attendance event emission.
func WithPublisher(p ports.EventPublisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

// WithRunLock serializes runs per conference.
func WithRunLock(l ports.RunLock) Option {
	return func(s *Service) {
		s.lock = l
	}
}

// WithSimilarityThreshold overrides the comparison threshold.
func WithSimilarityThreshold(t float64) Option {
	return func(s *Service) {
		s.threshold = t
	}
}

// WithConcurrency bounds the number of participants verified in parallel.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		s.concurrency = n
	}
}

// New creates the verification service. Store, gateway, and image source are
// required; the notifier, publisher, and run lock are optional.
func New(store ports.AttendanceStore, gateway ports.ComparisonGateway, images ports.ImageSource, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("attendance store is required")
	}
	if gateway == nil {
		return nil, fmt.Errorf("comparison gateway is required")
	}
	if images == nil {
		return nil, fmt.Errorf("image source is required")
	}

	s := &Service{
		store:       store,
		gateway:     gateway,
		images:      images,
		logger:      slog.Default(),
		threshold:   defaultSimilarityThreshold,
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.threshold < 0 || s.threshold > 100 {
		return nil, fmt.Errorf("similarity threshold must be within [0, 100], got %v", s.threshold)
	}
	if s.concurrency < 1 {
		return nil, fmt.Errorf("concurrency must be at least 1, got %d", s.concurrency)
	}
	return s, nil
}

// Register enrolls a participant for a conference. The record starts Absent;
// only a verification run can flip it to Present.
func (s *Service) Register(ctx context.Context, conferenceID models.ConferenceID, userID models.UserID, email string) error {
	if !conferenceID.IsValid() {
		return dErrors.New(dErrors.CodeBadRequest, "invalid conference id")
	}
	if !userID.IsValid() {
		return dErrors.New(dErrors.CodeBadRequest, "invalid user id")
	}
	if email == "" {
		return dErrors.New(dErrors.CodeBadRequest, "email is required")
	}

	record := models.AttendanceRecord{
		ConferenceID: conferenceID,
		UserID:       userID,
		Email:        email,
		Status:       models.StatusAbsent,
		UpdatedAt:    time.Now().UTC(),
	}
	if err := s.store.Register(ctx, record); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return dErrors.New(dErrors.CodeConflict, "participant already registered")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "register participant")
	}
	return nil
}

// ListAttendance returns the attendance records for a conference.
func (s *Service) ListAttendance(ctx context.Context, conferenceID models.ConferenceID) ([]models.AttendanceRecord, error) {
	if !conferenceID.IsValid() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "invalid conference id")
	}
	records, err := s.store.ListByConference(ctx, conferenceID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "list attendance records")
	}
	return records, nil
}

// Run executes one verification run for the conference. Every registered
// participant yields exactly one outcome; individual failures never abort
// the rest of the run.
func (s *Service) Run(ctx context.Context, conferenceID models.ConferenceID) (*models.PipelineResult, error) {
	if !conferenceID.IsValid() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "invalid conference id")
	}

	if s.lock != nil {
		release, err := s.lock.Acquire(ctx, conferenceID)
		if err != nil {
			if errors.Is(err, sentinel.ErrConflict) {
				return nil, dErrors.New(dErrors.CodeConflict, "verification run already in progress")
			}
			return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "acquire run lock")
		}
		defer release()
	}

	result := &models.PipelineResult{
		RunID:        uuid.NewString(),
		ConferenceID: conferenceID,
		StartedAt:    time.Now().UTC(),
	}
	log := s.logger.With(
		slog.String("run_id", result.RunID),
		slog.String("conference_id", conferenceID.String()))

	roster, err := s.store.ListRegisteredUserIDs(ctx, conferenceID)
	if err != nil {
		metrics.RunsTotal.WithLabelValues("roster_unavailable").Inc()
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "attendance roster unavailable")
	}
	if len(roster) == 0 {
		result.Status = models.PipelineEmptyRoster
		result.FinishedAt = time.Now().UTC()
		metrics.RunsTotal.WithLabelValues(string(result.Status)).Inc()
		s.publishRunCompleted(ctx, log, result)
		log.InfoContext(ctx, "verification run finished with empty roster")
		return result, nil
	}

	captured, err := s.images.FetchCaptured(ctx)
	if err != nil {
		metrics.RunsTotal.WithLabelValues("capture_failed").Inc()
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "fetch captured image")
	}

	outcomes := make([]models.ParticipantOutcome, len(roster))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, userID := range roster {
		g.Go(func() error {
			outcomes[i] = s.verifyParticipant(gctx, conferenceID, userID, captured)
			return nil
		})
	}
	// Tasks never return errors, so Wait is a pure join.
	_ = g.Wait()

	result.Outcomes = outcomes
	result.Status = models.PipelineCompleted
	result.FinishedAt = time.Now().UTC()

	for _, o := range outcomes {
		metrics.OutcomesTotal.WithLabelValues(string(o.Status)).Inc()
		s.publishOutcome(ctx, log, result.RunID, conferenceID, o)
	}
	metrics.RunsTotal.WithLabelValues(string(result.Status)).Inc()
	s.publishRunCompleted(ctx, log, result)

	log.InfoContext(ctx, "verification run finished",
		slog.Int("participants", len(roster)),
		slog.Any("counts", result.Counts()))
	return result, nil
}

// verifyParticipant handles one roster entry end to end. It never returns an
// error; every failure mode collapses into the outcome it produces.
func (s *Service) verifyParticipant(ctx context.Context, conferenceID models.ConferenceID, userID models.UserID, captured recognition.Image) models.ParticipantOutcome {
	if err := ctx.Err(); err != nil {
		return failedOutcome(userID, fmt.Sprintf("run canceled: %v", err))
	}

	reference, err := s.images.FetchReference(ctx, userID)
	if err != nil {
		return failedOutcome(userID, fmt.Sprintf("fetch reference image: %v", err))
	}

	timer := prometheus.NewTimer(metrics.ComparisonDuration)
	verdict, err := s.gateway.Compare(ctx, reference, captured, s.threshold)
	timer.ObserveDuration()
	if err != nil {
		return failedOutcome(userID, fmt.Sprintf("compare faces: %v", err))
	}

	switch verdict {
	case models.VerdictSimilar:
		return s.recordPresent(ctx, conferenceID, userID)
	default:
		return s.recordAbsent(ctx, conferenceID, userID)
	}
}

func (s *Service) recordPresent(ctx context.Context, conferenceID models.ConferenceID, userID models.UserID) models.ParticipantOutcome {
	mark, err := s.store.MarkPresent(ctx, conferenceID, userID)
	if err != nil {
		return failedOutcome(userID, fmt.Sprintf("mark present: %v", err))
	}
	switch mark {
	case models.MarkAlreadyPresent:
		return models.ParticipantOutcome{UserID: userID, Status: models.OutcomeAlreadyPresent}
	case models.MarkNotFound:
		return failedOutcome(userID, "attendance record not found")
	default:
		return models.ParticipantOutcome{UserID: userID, Status: models.OutcomeMarkedPresent}
	}
}

func (s *Service) recordAbsent(ctx context.Context, conferenceID models.ConferenceID, userID models.UserID) models.ParticipantOutcome {
	mark, email, err := s.store.MarkAbsent(ctx, conferenceID, userID)
	if err != nil {
		return failedOutcome(userID, fmt.Sprintf("mark absent: %v", err))
	}
	if mark == models.MarkNotFound {
		return failedOutcome(userID, "attendance record not found")
	}

	if s.notifier == nil {
		return models.ParticipantOutcome{
			UserID: userID,
			Status: models.OutcomeMarkedAbsentNotificationFailed,
			Reason: "notifications disabled",
		}
	}
	if err := s.notifier.Notify(ctx, email); err != nil {
		metrics.NotificationsTotal.WithLabelValues("failure").Inc()
		s.logger.ErrorContext(ctx, "absence notification failed",
			slog.String("user_id", userID.String()),
			slog.Any("error", err))
		return models.ParticipantOutcome{
			UserID: userID,
			Status: models.OutcomeMarkedAbsentNotificationFailed,
			Reason: err.Error(),
		}
	}
	metrics.NotificationsTotal.WithLabelValues("success").Inc()
	return models.ParticipantOutcome{UserID: userID, Status: models.OutcomeMarkedAbsentAndNotified}
}

func (s *Service) publishOutcome(ctx context.Context, log *slog.Logger, runID string, conferenceID models.ConferenceID, outcome models.ParticipantOutcome) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOutcome(ctx, runID, conferenceID, outcome); err != nil {
		log.ErrorContext(ctx, "publish outcome event failed", slog.Any("error", err))
	}
}

func (s *Service) publishRunCompleted(ctx context.Context, log *slog.Logger, result *models.PipelineResult) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishRunCompleted(ctx, result); err != nil {
		log.ErrorContext(ctx, "publish run completed event failed", slog.Any("error", err))
	}
}

func failedOutcome(userID models.UserID, reason string) models.ParticipantOutcome {
	return models.ParticipantOutcome{
		UserID: userID,
		Status: models.OutcomeComparisonFailed,
		Reason: reason,
	}
}
