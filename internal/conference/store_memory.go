package conference

import (
	"context"
	"fmt"
	"sync"
	"time"

	"veriface/internal/attendance/models"
	"veriface/pkg/platform/sentinel"
)

type InMemoryStore struct {
	mu          sync.RWMutex
	conferences map[models.ConferenceID]*Conference
}

func NewMemory() *InMemoryStore {
	return &InMemoryStore{conferences: make(map[models.ConferenceID]*Conference)}
}

func (s *InMemoryStore) Create(_ context.Context, conf Conference) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.conferences[conf.ID]; exists {
		return fmt.Errorf("create conference %s: %w", conf.ID, sentinel.ErrConflict)
	}
	if conf.Status == "" {
		conf.Status = StatusNotCompleted
	}
	conf.CreatedAt = time.Now()
	s.conferences[conf.ID] = &conf
	return nil
}

func (s *InMemoryStore) Get(_ context.Context, id models.ConferenceID) (*Conference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conf, ok := s.conferences[id]
	if !ok {
		return nil, fmt.Errorf("get conference %s: %w", id, sentinel.ErrNotFound)
	}
	copied := *conf
	return &copied, nil
}

func (s *InMemoryStore) List(_ context.Context) ([]Conference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Conference, 0, len(s.conferences))
	for _, conf := range s.conferences {
		list = append(list, *conf)
	}
	return list, nil
}

func (s *InMemoryStore) SetStatus(_ context.Context, id models.ConferenceID, status Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conf, ok := s.conferences[id]
	if !ok {
		return fmt.Errorf("set conference status %s: %w", id, sentinel.ErrNotFound)
	}
	conf.Status = status
	return nil
}
