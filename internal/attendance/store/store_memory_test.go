package store

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"

	"veriface/internal/attendance/models"
	"veriface/pkg/platform/sentinel"
)

const confID = models.ConferenceID("1234567890")

type MemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) SetupTest() {
	s.store = NewMemory()
}

func (s *MemoryStoreSuite) register(userID models.UserID) {
	err := s.store.Register(context.Background(), models.AttendanceRecord{
		ConferenceID: confID,
		UserID:       userID,
		Email:        userID.String() + "@example.com",
	})
	s.Require().NoError(err)
}

func (s *MemoryStoreSuite) TestRegister() {
	ctx := context.Background()

	s.Run("new record starts absent", func() {
		s.register("11111")

		records, err := s.store.ListByConference(ctx, confID)
		s.Require().NoError(err)
		s.Require().Len(records, 1)
		s.Equal(models.StatusAbsent, records[0].Status)
	})

	s.Run("duplicate registration returns conflict", func() {
		err := s.store.Register(ctx, models.AttendanceRecord{
			ConferenceID: confID,
			UserID:       "11111",
			Email:        "other@example.com",
		})
		s.Require().Error(err)
		s.ErrorIs(err, sentinel.ErrConflict)
	})

	s.Run("same user in another conference is allowed", func() {
		err := s.store.Register(ctx, models.AttendanceRecord{
			ConferenceID: "9876543210",
			UserID:       "11111",
			Email:        "11111@example.com",
		})
		s.NoError(err)
	})
}

func (s *MemoryStoreSuite) TestMarkPresent() {
	ctx := context.Background()
	s.register("11111")

	s.Run("absent record transitions to present", func() {
		result, err := s.store.MarkPresent(ctx, confID, "11111")
		s.Require().NoError(err)
		s.Equal(models.MarkUpdated, result)
	})

	s.Run("second mark reports already present", func() {
		result, err := s.store.MarkPresent(ctx, confID, "11111")
		s.Require().NoError(err)
		s.Equal(models.MarkAlreadyPresent, result)
	})

	s.Run("unknown user reports not found", func() {
		result, err := s.store.MarkPresent(ctx, confID, "99999")
		s.Require().NoError(err)
		s.Equal(models.MarkNotFound, result)
	})
}

func (s *MemoryStoreSuite) TestMarkAbsent() {
	ctx := context.Background()
	s.register("22222")

	s.Run("fresh record reports already absent with email", func() {
		result, email, err := s.store.MarkAbsent(ctx, confID, "22222")
		s.Require().NoError(err)
		s.Equal(models.MarkAlreadyAbsent, result)
		s.Equal("22222@example.com", email)
	})

	s.Run("present record transitions back to absent", func() {
		_, err := s.store.MarkPresent(ctx, confID, "22222")
		s.Require().NoError(err)

		result, email, err := s.store.MarkAbsent(ctx, confID, "22222")
		s.Require().NoError(err)
		s.Equal(models.MarkUpdated, result)
		s.Equal("22222@example.com", email)
	})

	s.Run("unknown user reports not found", func() {
		result, _, err := s.store.MarkAbsent(ctx, confID, "99999")
		s.Require().NoError(err)
		s.Equal(models.MarkNotFound, result)
	})
}

func (s *MemoryStoreSuite) TestListRegisteredUserIDs() {
	ctx := context.Background()

	s.Run("empty conference returns empty roster", func() {
		ids, err := s.store.ListRegisteredUserIDs(ctx, confID)
		s.Require().NoError(err)
		s.Empty(ids)
	})

	s.Run("roster contains every registered user", func() {
		s.register("11111")
		s.register("22222")
		s.register("33333")

		ids, err := s.store.ListRegisteredUserIDs(ctx, confID)
		s.Require().NoError(err)
		s.ElementsMatch([]models.UserID{"11111", "22222", "33333"}, ids)
	})
}

// TestConcurrentMarkPresent verifies that concurrent marks on the same record
// yield exactly one update.
func (s *MemoryStoreSuite) TestConcurrentMarkPresent() {
	ctx := context.Background()
	s.register("44444")

	const goroutines = 50
	var wg sync.WaitGroup
	var updated atomic.Int32

	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := s.store.MarkPresent(ctx, confID, "44444")
			s.NoError(err)
			if result == models.MarkUpdated {
				updated.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(1), updated.Load())
}

// TestConcurrentRegistration verifies registration is safe under contention
// across distinct users.
func (s *MemoryStoreSuite) TestConcurrentRegistration() {
	ctx := context.Background()

	const goroutines = 50
	var wg sync.WaitGroup

	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.store.Register(ctx, models.AttendanceRecord{
				ConferenceID: confID,
				UserID:       models.UserID(fmt.Sprintf("%05d", 10000+i)),
				Email:        "user@example.com",
			})
			s.NoError(err)
		}()
	}
	wg.Wait()

	ids, err := s.store.ListRegisteredUserIDs(ctx, confID)
	s.Require().NoError(err)
	s.Len(ids, goroutines)
}
