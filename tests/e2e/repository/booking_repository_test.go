//go:build e2e

package repository_test

import (
	"context"
	"testing"
	"time"

	"theater-tickets/internal/domain/booking"
	"theater-tickets/internal/infra"
	"theater-tickets/internal/infra/readstore"
	"theater-tickets/internal/infra/repository"
	"theater-tickets/tests/common/builder"
	"theater-tickets/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type bookingRepositorySuite struct {
	suite.Suite
	repo *repository.BookingRepository
	read *readstore.SeatStatusReadStore
	ctx  context.Context
}

func TestBookingRepositorySuite(t *testing.T) {
	suite.Run(t, new(bookingRepositorySuite))
}

func (s *bookingRepositorySuite) SetupSuite() {
	pool := e2e.SetupPool(s.T())
	s.repo = repository.NewBookingRepository(pool)
	s.read = readstore.NewSeatStatusReadStore(pool)
	s.ctx = context.Background()
}

func (s *bookingRepositorySuite) holdSeat(seatID, buyerEmail string) *booking.Booking {
	b, err := builder.NewBookingBuilder().WithSeat(seatID).WithBuyer(buyerEmail).BuildDomain()
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.repo.CreatePending(s.ctx, b))
	return b
}

func (s *bookingRepositorySuite) TestConflictMapping() {
	s.Run("second insert for the same seat maps to a seat conflict", func() {
		s.holdSeat("A1", "a1-owner@example.com")

		dup, err := builder.NewBookingBuilder().WithSeat("A1").WithBuyer("a1-rival@example.com").BuildDomain()
		require.NoError(s.T(), err)

		err = s.repo.CreatePending(s.ctx, dup)
		require.Error(s.T(), err)
		assert.True(s.T(), infra.IsKind(err, infra.KindSeatConflict))
	})

	s.Run("second insert for the same buyer maps to a buyer conflict", func() {
		s.holdSeat("A2", "a2-owner@example.com")

		dup, err := builder.NewBookingBuilder().WithSeat("A3").WithBuyer("a2-owner@example.com").BuildDomain()
		require.NoError(s.T(), err)

		err = s.repo.CreatePending(s.ctx, dup)
		require.Error(s.T(), err)
		assert.True(s.T(), infra.IsKind(err, infra.KindBuyerConflict))
	})
}

func (s *bookingRepositorySuite) TestStatusCAS() {
	s.Run("moves only from the expected status", func() {
		s.holdSeat("B1", "b1@example.com")

		err := s.repo.UpdateStatus(s.ctx, "B1", "b1@example.com", booking.StatusPending, booking.StatusProcessing)
		require.NoError(s.T(), err)

		// A second identical CAS finds no pending row.
		err = s.repo.UpdateStatus(s.ctx, "B1", "b1@example.com", booking.StatusPending, booking.StatusProcessing)
		require.Error(s.T(), err)
		assert.True(s.T(), infra.IsKind(err, infra.KindNotFound))
	})

	s.Run("wrong buyer matches nothing", func() {
		s.holdSeat("B2", "b2@example.com")

		err := s.repo.UpdateStatus(s.ctx, "B2", "someone-else@example.com", booking.StatusPending, booking.StatusProcessing)
		require.Error(s.T(), err)
		assert.True(s.T(), infra.IsKind(err, infra.KindNotFound))
	})
}

func (s *bookingRepositorySuite) TestFinalizeConfirm() {
	s.Run("confirms a processing row", func() {
		s.holdSeat("C1", "c1@example.com")
		require.NoError(s.T(), s.repo.UpdateStatus(s.ctx, "C1", "c1@example.com", booking.StatusPending, booking.StatusProcessing))

		err := s.repo.FinalizeConfirm(s.ctx, "C1", "c1@example.com", []byte(`{"type":"booking_confirmed"}`))
		require.NoError(s.T(), err)

		snap, err := s.repo.Find(s.ctx, "C1", "c1@example.com")
		require.NoError(s.T(), err)
		assert.Equal(s.T(), booking.StatusConfirmed, snap.Status)
	})

	s.Run("refuses a row that is not processing", func() {
		s.holdSeat("C2", "c2@example.com")

		err := s.repo.FinalizeConfirm(s.ctx, "C2", "c2@example.com", []byte(`{}`))
		require.Error(s.T(), err)
		assert.True(s.T(), infra.IsKind(err, infra.KindNotFound))
	})
}

func (s *bookingRepositorySuite) TestDelete() {
	s.Run("removes a pending row and reports it", func() {
		s.holdSeat("D1", "d1@example.com")

		removed, err := s.repo.Delete(s.ctx, "D1", "d1@example.com")
		require.NoError(s.T(), err)
		assert.True(s.T(), removed)

		removed, err = s.repo.Delete(s.ctx, "D1", "d1@example.com")
		require.NoError(s.T(), err)
		assert.False(s.T(), removed)
	})

	s.Run("never removes a confirmed row", func() {
		s.holdSeat("D2", "d2@example.com")
		require.NoError(s.T(), s.repo.UpdateStatus(s.ctx, "D2", "d2@example.com", booking.StatusPending, booking.StatusProcessing))
		require.NoError(s.T(), s.repo.FinalizeConfirm(s.ctx, "D2", "d2@example.com", []byte(`{}`)))

		removed, err := s.repo.Delete(s.ctx, "D2", "d2@example.com")
		require.NoError(s.T(), err)
		assert.False(s.T(), removed)

		snap, err := s.repo.Find(s.ctx, "D2", "d2@example.com")
		require.NoError(s.T(), err)
		assert.Equal(s.T(), booking.StatusConfirmed, snap.Status)
	})
}

func (s *bookingRepositorySuite) TestDeleteStale() {
	s.Run("frees only non-confirmed rows past the cutoff", func() {
		// Builder timestamps are fixed in the past, so both inserts are
		// already stale against a now-based cutoff.
		s.holdSeat("E1", "e1@example.com")
		s.holdSeat("E2", "e2@example.com")
		require.NoError(s.T(), s.repo.UpdateStatus(s.ctx, "E2", "e2@example.com", booking.StatusPending, booking.StatusProcessing))
		require.NoError(s.T(), s.repo.FinalizeConfirm(s.ctx, "E2", "e2@example.com", []byte(`{}`)))

		freed, err := s.repo.DeleteStale(s.ctx, time.Now().Add(-time.Minute))
		require.NoError(s.T(), err)
		assert.Contains(s.T(), freed, "E1")
		assert.NotContains(s.T(), freed, "E2")
	})
}

func (s *bookingRepositorySuite) TestSeatStatusProjection() {
	s.Run("lists active rows with their statuses", func() {
		s.holdSeat("F1", "f1@example.com")

		statuses, err := s.read.ListSeatStatuses(s.ctx)
		require.NoError(s.T(), err)

		found := false
		for _, st := range statuses {
			if st.SeatID == "F1" {
				found = true
				assert.Equal(s.T(), booking.StatusPending, st.Status)
			}
		}
		assert.True(s.T(), found)
	})
}
