// Package conference holds the administrative conference records the
// verification pipeline reads. Conferences are created by administrators;
// the pipeline only flips the status to completed after a full run.
package conference

import (
	"context"
	"time"

	"veriface/internal/attendance/models"
)

// Status is the conference lifecycle flag.
type Status string

const (
	StatusNotCompleted Status = "not_completed"
	StatusCompleted    Status = "completed"
)

// Conference is one scheduled conference.
type Conference struct {
	ID          models.ConferenceID `json:"id"`
	Name        string              `json:"name"`
	ScheduledOn time.Time           `json:"scheduled_on"`
	Status      Status              `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
}

// Store persists conferences. Implementations return sentinel.ErrNotFound
// for missing ids and sentinel.ErrConflict for duplicate creation.
type Store interface {
	Create(ctx context.Context, conf Conference) error
	Get(ctx context.Context, id models.ConferenceID) (*Conference, error)
	List(ctx context.Context) ([]Conference, error)
	SetStatus(ctx context.Context, id models.ConferenceID, status Status) error
}
