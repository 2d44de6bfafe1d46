//go:build integration

package store_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"

	"veriface/internal/attendance/models"
	"veriface/internal/attendance/store"
	"veriface/pkg/platform/sentinel"
	"veriface/pkg/testutil/containers"
)

const confID = models.ConferenceID("1234567890")

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(), "attendance_records")
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) register(userID models.UserID) {
	err := s.store.Register(context.Background(), models.AttendanceRecord{
		ConferenceID: confID,
		UserID:       userID,
		Email:        userID.String() + "@example.com",
	})
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) TestRegister() {
	ctx := context.Background()

	s.Run("new record starts absent", func() {
		s.register("11111")

		records, err := s.store.ListByConference(ctx, confID)
		s.Require().NoError(err)
		s.Require().Len(records, 1)
		s.Equal(models.StatusAbsent, records[0].Status)
		s.Equal("11111@example.com", records[0].Email)
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
}

func (s *PostgresStoreSuite) TestMarkPresent() {
	ctx := context.Background()
	s.register("11111")

	result, err := s.store.MarkPresent(ctx, confID, "11111")
	s.Require().NoError(err)
	s.Equal(models.MarkUpdated, result)

	result, err = s.store.MarkPresent(ctx, confID, "11111")
	s.Require().NoError(err)
	s.Equal(models.MarkAlreadyPresent, result)

	result, err = s.store.MarkPresent(ctx, confID, "99999")
	s.Require().NoError(err)
	s.Equal(models.MarkNotFound, result)
}

func (s *PostgresStoreSuite) TestMarkAbsent() {
	ctx := context.Background()
	s.register("22222")

	s.Run("fresh record reports already absent with email", func() {
		result, email, err := s.store.MarkAbsent(ctx, confID, "22222")
		s.Require().NoError(err)
		s.Equal(models.MarkAlreadyAbsent, result)
		s.Equal("22222@example.com", email)
	})

	s.Run("present record transitions back and returns email", func() {
		_, err := s.store.MarkPresent(ctx, confID, "22222")
		s.Require().NoError(err)

		result, email, err := s.store.MarkAbsent(ctx, confID, "22222")
		s.Require().NoError(err)
		s.Equal(models.MarkUpdated, result)
		s.Equal("22222@example.com", email)
	})

	s.Run("unknown record reports not found", func() {
		result, _, err := s.store.MarkAbsent(ctx, confID, "99999")
		s.Require().NoError(err)
		s.Equal(models.MarkNotFound, result)
	})
}

func (s *PostgresStoreSuite) TestListRegisteredUserIDs() {
	ctx := context.Background()
	s.register("11111")
	s.register("22222")

	ids, err := s.store.ListRegisteredUserIDs(ctx, confID)
	s.Require().NoError(err)
	s.ElementsMatch([]models.UserID{"11111", "22222"}, ids)

	ids, err = s.store.ListRegisteredUserIDs(ctx, "9876543210")
	s.Require().NoError(err)
	s.Empty(ids)
}

// TestConcurrentMarkPresent verifies the conditional UPDATE admits exactly
// one winner under contention.
func (s *PostgresStoreSuite) TestConcurrentMarkPresent() {
	ctx := context.Background()
	s.register("44444")

	const goroutines = 20
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
