package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"veriface/internal/attendance/models"
	"veriface/pkg/platform/sentinel"
)

// InMemoryStore keeps attendance records in process memory. Used by unit
// tests and local development; the Postgres store is the production path.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[models.ConferenceID]map[models.UserID]*models.AttendanceRecord
}

func NewMemory() *InMemoryStore {
	return &InMemoryStore{
		records: make(map[models.ConferenceID]map[models.UserID]*models.AttendanceRecord),
	}
}

func (s *InMemoryStore) Register(_ context.Context, record models.AttendanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byUser, ok := s.records[record.ConferenceID]
	if !ok {
		byUser = make(map[models.UserID]*models.AttendanceRecord)
		s.records[record.ConferenceID] = byUser
	}
	if _, exists := byUser[record.UserID]; exists {
		return fmt.Errorf("register attendance %s/%s: %w", record.ConferenceID, record.UserID, sentinel.ErrConflict)
	}

	if record.Status == "" {
		record.Status = models.StatusAbsent
	}
	record.UpdatedAt = time.Now()
	byUser[record.UserID] = &record
	return nil
}

func (s *InMemoryStore) ListRegisteredUserIDs(_ context.Context, conferenceID models.ConferenceID) ([]models.UserID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byUser := s.records[conferenceID]
	ids := make([]models.UserID, 0, len(byUser))
	for id := range byUser {
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *InMemoryStore) ListByConference(_ context.Context, conferenceID models.ConferenceID) ([]models.AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byUser := s.records[conferenceID]
	records := make([]models.AttendanceRecord, 0, len(byUser))
	for _, rec := range byUser {
		records = append(records, *rec)
	}
	return records, nil
}

func (s *InMemoryStore) MarkPresent(_ context.Context, conferenceID models.ConferenceID, userID models.UserID) (models.MarkResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[conferenceID][userID]
	if !ok {
		return models.MarkNotFound, nil
	}
	if rec.Status == models.StatusPresent {
		return models.MarkAlreadyPresent, nil
	}
	rec.Status = models.StatusPresent
	rec.UpdatedAt = time.Now()
	return models.MarkUpdated, nil
}

func (s *InMemoryStore) MarkAbsent(_ context.Context, conferenceID models.ConferenceID, userID models.UserID) (models.MarkResult, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[conferenceID][userID]
	if !ok {
		return models.MarkNotFound, "", nil
	}
	if rec.Status == models.StatusAbsent {
		return models.MarkAlreadyAbsent, rec.Email, nil
	}
	rec.Status = models.StatusAbsent
	rec.UpdatedAt = time.Now()
	return models.MarkUpdated, rec.Email, nil
}
