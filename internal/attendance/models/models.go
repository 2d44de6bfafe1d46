// Package models holds the attendance domain types shared by the store,
// service, and transport layers.
package models

import (
	"regexp"
	"time"
)

// Conference and user ids are opaque numeric tokens issued at registration
// time, 5 to 15 digits.
var idPattern = regexp.MustCompile(`^[0-9]{5,15}$`)

// ConferenceID identifies a conference.
type ConferenceID string

func (id ConferenceID) IsValid() bool {
	return idPattern.MatchString(string(id))
}

func (id ConferenceID) String() string {
	return string(id)
}

// UserID identifies a registered participant.
type UserID string

func (id UserID) IsValid() bool {
	return idPattern.MatchString(string(id))
}

func (id UserID) String() string {
	return string(id)
}

// AttendanceStatus is the durable presence flag on an attendance record.
type AttendanceStatus string

const (
	StatusAbsent  AttendanceStatus = "absent"
	StatusPresent AttendanceStatus = "present"
)

// AttendanceRecord is the durable (conference, user) presence record. At most
// one record exists per (ConferenceID, UserID) pair. Records are created
// Absent at registration time and flipped to Present by the verification
// pipeline on a positive face match. Email is denormalized here so the
// absence notice can be sent without a second lookup.
type AttendanceRecord struct {
	ConferenceID ConferenceID
	UserID       UserID
	Email        string
	Status       AttendanceStatus
	UpdatedAt    time.Time
}

// MarkResult reports what a single-record status write actually did.
type MarkResult string

const (
	MarkUpdated        MarkResult = "updated"
	MarkAlreadyPresent MarkResult = "already_present"
	MarkAlreadyAbsent  MarkResult = "already_absent"
	MarkNotFound       MarkResult = "not_found"
)

// ComparisonVerdict is the outcome of one face-similarity comparison.
// Inconclusive service responses and transport failures are reported as
// errors by the gateway, not coerced into a verdict.
type ComparisonVerdict string

const (
	VerdictSimilar   ComparisonVerdict = "similar"
	VerdictDifferent ComparisonVerdict = "different"
)

// OutcomeStatus classifies what happened to one participant during a run.
type OutcomeStatus string

const (
	OutcomeMarkedPresent                  OutcomeStatus = "marked_present"
	OutcomeAlreadyPresent                 OutcomeStatus = "already_present"
	OutcomeMarkedAbsentAndNotified        OutcomeStatus = "marked_absent_and_notified"
	OutcomeMarkedAbsentNotificationFailed OutcomeStatus = "marked_absent_notification_failed"
	OutcomeComparisonFailed               OutcomeStatus = "comparison_failed"
)

// ParticipantOutcome is one entry of the per-run outcome log. Reason is only
// set for degraded outcomes (comparison failures, notification failures).
type ParticipantOutcome struct {
	UserID UserID        `json:"user_id"`
	Status OutcomeStatus `json:"status"`
	Reason string        `json:"reason,omitempty"`
}

// PipelineStatus is the terminal state of one verification run.
type PipelineStatus string

const (
	// PipelineEmptyRoster means no participants were registered; no
	// per-participant work was performed.
	PipelineEmptyRoster PipelineStatus = "empty_roster"
	// PipelineCompleted means every registered participant was attempted,
	// regardless of individual outcomes.
	PipelineCompleted PipelineStatus = "completed"
)

// PipelineResult is the aggregate result of one verification run. Outcomes
// contains exactly one entry per registered participant when Status is
// PipelineCompleted.
type PipelineResult struct {
	RunID        string               `json:"run_id"`
	ConferenceID ConferenceID         `json:"conference_id"`
	Status       PipelineStatus       `json:"status"`
	Outcomes     []ParticipantOutcome `json:"outcomes,omitempty"`
	StartedAt    time.Time            `json:"started_at"`
	FinishedAt   time.Time            `json:"finished_at"`
}

// Counts aggregates the outcome log by status.
func (r *PipelineResult) Counts() map[OutcomeStatus]int {
	counts := make(map[OutcomeStatus]int, len(r.Outcomes))
	for _, o := range r.Outcomes {
		counts[o.Status]++
	}
	return counts
}
