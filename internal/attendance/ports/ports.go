// Package ports defines the collaborator interfaces consumed by the
// attendance verification pipeline. Implementations live in their own
// packages (store, recognition, capture, notify, events, runlock); the
// orchestrator only sees these contracts.
package ports

import (
	"context"

	"veriface/internal/attendance/models"
	"veriface/internal/recognition"
)

//go:generate mockgen -source=ports.go -destination=../service/mocks/mocks.go -package=mocks

// AttendanceStore persists registration and per-conference attendance
// records. Every operation is scoped to a single (conference, user) key and
// each status write is atomic with respect to that one record.
type AttendanceStore interface {
	// Register creates the Absent attendance record for a participant.
	// A duplicate (conference, user) pair returns sentinel.ErrConflict.
	Register(ctx context.Context, record models.AttendanceRecord) error

	// ListRegisteredUserIDs returns the roster for a conference. Order is
	// not significant.
	ListRegisteredUserIDs(ctx context.Context, conferenceID models.ConferenceID) ([]models.UserID, error)

	// ListByConference returns the full attendance records for a conference.
	ListByConference(ctx context.Context, conferenceID models.ConferenceID) ([]models.AttendanceRecord, error)

	// MarkPresent transitions the record to Present. A record that is
	// already Present reports MarkAlreadyPresent, not an error.
	MarkPresent(ctx context.Context, conferenceID models.ConferenceID, userID models.UserID) (models.MarkResult, error)

	// MarkAbsent confirms the record as Absent and returns the
	// participant's email for notification.
	MarkAbsent(ctx context.Context, conferenceID models.ConferenceID, userID models.UserID) (models.MarkResult, string, error)
}

// ComparisonGateway compares two face images through the external
// recognition service.
type ComparisonGateway interface {
	Compare(ctx context.Context, source, target recognition.Image, threshold float64) (models.ComparisonVerdict, error)
}

// ImageSource supplies the images a run compares: one enrollment reference
// per participant and a single freshly captured site image shared by the
// whole run.
type ImageSource interface {
	FetchReference(ctx context.Context, userID models.UserID) (recognition.Image, error)
	FetchCaptured(ctx context.Context) (recognition.Image, error)
}

// Notifier delivers an absence notice to one recipient. Best effort:
// failures are reported to the caller but never retried here.
type Notifier interface {
	Notify(ctx context.Context, recipientEmail string) error
}

// EventPublisher emits attendance events for downstream consumers. Emission
// is fire and forget from the pipeline's perspective.
type EventPublisher interface {
	PublishOutcome(ctx context.Context, runID string, conferenceID models.ConferenceID, outcome models.ParticipantOutcome) error
	PublishRunCompleted(ctx context.Context, result *models.PipelineResult) error
}

// RunLock serializes verification runs per conference. Acquire returns a
// release func on success and sentinel.ErrConflict (wrapped) when another
// run already holds the lock.
type RunLock interface {
	Acquire(ctx context.Context, conferenceID models.ConferenceID) (release func(), err error)
}
