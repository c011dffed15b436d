//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"theater-tickets/internal/domain/booking"
	"theater-tickets/internal/infra"
	"theater-tickets/internal/infra/memstore"
	"theater-tickets/internal/pkg/clock"
	"theater-tickets/internal/pkg/errs"
	"theater-tickets/internal/usecase/commands"
	"theater-tickets/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOpTimeout = 2 * time.Second

type fixture struct {
	repo     *memstore.BookingStore
	sessions *memstore.SessionStore
	clk      *clock.MockClock
	cmds     commands.BookingCommands
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := memstore.NewBookingStore()
	sessions := memstore.NewSessionStore()
	clk := clock.NewMockClock(time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC))
	return &fixture{
		repo:     repo,
		sessions: sessions,
		clk:      clk,
		cmds:     commands.NewBookingCommands(repo, sessions, clk, testOpTimeout),
	}
}

func TestAttemptHold(t *testing.T) {
	ctx := context.Background()

	t.Run("grants a free sellable seat", func(t *testing.T) {
		f := newFixture(t)

		result, err := f.cmds.AttemptHold(ctx, "B7", "buyer@example.com", "Alex Buyer")
		require.NoError(t, err)
		require.True(t, result.Granted)
		require.NotNil(t, result.Booking)
		assert.Equal(t, "B7", result.Booking.SeatID)
		assert.Equal(t, booking.StatusPending, result.Booking.Status)
		assert.Equal(t, booking.TicketRegular, result.Booking.TicketType)
	})

	t.Run("vip row yields vip ticket", func(t *testing.T) {
		f := newFixture(t)

		result, err := f.cmds.AttemptHold(ctx, "K7", "buyer@example.com", "")
		require.NoError(t, err)
		require.True(t, result.Granted)
		assert.Equal(t, booking.TicketVIP, result.Booking.TicketType)
	})

	t.Run("unknown seat id", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.cmds.AttemptHold(ctx, "Z99", "buyer@example.com", "")
		assert.True(t, errs.Is(err, commands.ErrInvalidSeat), "got %v", err)
	})

	t.Run("invalid buyer email", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.cmds.AttemptHold(ctx, "B7", "not-an-email", "")
		assert.True(t, errs.Is(err, commands.ErrInvalidBuyer), "got %v", err)
	})

	t.Run("delegate row is denied, not an error", func(t *testing.T) {
		f := newFixture(t)

		result, err := f.cmds.AttemptHold(ctx, "L3", "buyer@example.com", "")
		require.NoError(t, err)
		assert.False(t, result.Granted)
		assert.Equal(t, commands.DeniedSeatNotSellable, result.Reason)
	})

	t.Run("padded spelling of a held seat cannot reach the store", func(t *testing.T) {
		f := newFixture(t)

		first, err := f.cmds.AttemptHold(ctx, "A1", "first@example.com", "")
		require.NoError(t, err)
		require.True(t, first.Granted)

		_, err = f.cmds.AttemptHold(ctx, "A01", "second@example.com", "")
		assert.True(t, errs.Is(err, commands.ErrInvalidSeat), "got %v", err)

		snap, err := f.repo.FindBySeat(ctx, "A1")
		require.NoError(t, err)
		assert.Equal(t, "first@example.com", snap.BuyerEmail)
	})

	t.Run("seat already held by another buyer", func(t *testing.T) {
		f := newFixture(t)

		first, err := f.cmds.AttemptHold(ctx, "B7", "first@example.com", "")
		require.NoError(t, err)
		require.True(t, first.Granted)

		second, err := f.cmds.AttemptHold(ctx, "B7", "second@example.com", "")
		require.NoError(t, err)
		assert.False(t, second.Granted)
		assert.Equal(t, commands.DeniedSeatTaken, second.Reason)
	})

	t.Run("seat in processing reports being processed", func(t *testing.T) {
		f := newFixture(t)

		first, err := f.cmds.AttemptHold(ctx, "B7", "first@example.com", "")
		require.NoError(t, err)
		require.True(t, first.Granted)
		require.NoError(t, f.repo.UpdateStatus(ctx, "B7", "first@example.com", booking.StatusPending, booking.StatusProcessing))

		second, err := f.cmds.AttemptHold(ctx, "B7", "second@example.com", "")
		require.NoError(t, err)
		assert.False(t, second.Granted)
		assert.Equal(t, commands.DeniedSeatBeingProcessed, second.Reason)
	})

	t.Run("buyer with an active record is denied a second seat", func(t *testing.T) {
		f := newFixture(t)

		first, err := f.cmds.AttemptHold(ctx, "A1", "buyer@example.com", "")
		require.NoError(t, err)
		require.True(t, first.Granted)

		second, err := f.cmds.AttemptHold(ctx, "A2", "buyer@example.com", "")
		require.NoError(t, err)
		assert.False(t, second.Granted)
		assert.Equal(t, commands.DeniedAlreadyBooked, second.Reason)
	})
}

// Two concurrent attempts per seat, many seats, many buyers: the store
// must grant each seat at most once and each buyer at most one seat.
func TestAttemptHold_MutualExclusion(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	seats := []string{"A1", "A2", "A3", "A4", "A5", "B1", "B2", "B3", "B4", "B5"}
	buyers := make([]string, 40)
	for i := range buyers {
		buyers[i] = string(rune('a'+i%26)) + string(rune('0'+i/26)) + "@example.com"
	}

	type grant struct {
		seat  string
		buyer string
	}
	var (
		mu     sync.Mutex
		grants []grant
		wg     sync.WaitGroup
	)

	for _, buyer := range buyers {
		for _, seatID := range seats {
			wg.Add(1)
			go func(seatID, buyer string) {
				defer wg.Done()
				result, err := f.cmds.AttemptHold(ctx, seatID, buyer, "")
				if !assert.NoError(t, err) {
					return
				}
				if result.Granted {
					mu.Lock()
					grants = append(grants, grant{seat: seatID, buyer: buyer})
					mu.Unlock()
				}
			}(seatID, buyer)
		}
	}
	wg.Wait()

	seatOwners := make(map[string]string)
	buyerSeats := make(map[string]string)
	for _, g := range grants {
		if owner, taken := seatOwners[g.seat]; taken {
			t.Fatalf("seat %s granted to both %s and %s", g.seat, owner, g.buyer)
		}
		if seatID, has := buyerSeats[g.buyer]; has {
			t.Fatalf("buyer %s granted both %s and %s", g.buyer, seatID, g.seat)
		}
		seatOwners[g.seat] = g.buyer
		buyerSeats[g.buyer] = g.seat
	}
	assert.NotEmpty(t, grants)
	assert.LessOrEqual(t, len(grants), len(seats))
}

func TestConfirm(t *testing.T) {
	ctx := context.Background()

	t.Run("confirms own pending hold", func(t *testing.T) {
		f := newFixture(t)

		held, err := f.cmds.AttemptHold(ctx, "B7", "buyer@example.com", "Alex Buyer")
		require.NoError(t, err)
		require.True(t, held.Granted)

		result, err := f.cmds.Confirm(ctx, "B7", "buyer@example.com")
		require.NoError(t, err)
		assert.False(t, result.Replayed)
		assert.Equal(t, booking.StatusConfirmed, result.Booking.Status)

		booked, err := f.sessions.HasBooked(ctx, "buyer@example.com")
		require.NoError(t, err)
		assert.True(t, booked)
	})

	t.Run("replayed confirm returns the confirmed record without writes", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.cmds.AttemptHold(ctx, "B7", "buyer@example.com", "")
		require.NoError(t, err)
		first, err := f.cmds.Confirm(ctx, "B7", "buyer@example.com")
		require.NoError(t, err)
		require.False(t, first.Replayed)

		second, err := f.cmds.Confirm(ctx, "B7", "buyer@example.com")
		require.NoError(t, err)
		assert.True(t, second.Replayed)
		assert.Equal(t, first.Booking.ID, second.Booking.ID)
		assert.Equal(t, booking.StatusConfirmed, second.Booking.Status)
	})

	t.Run("confirm without a hold", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.cmds.Confirm(ctx, "B7", "buyer@example.com")
		assert.True(t, errs.Is(err, commands.ErrNoPendingHold), "got %v", err)
	})

	t.Run("confirm against someone else's hold", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.cmds.AttemptHold(ctx, "B7", "owner@example.com", "")
		require.NoError(t, err)

		_, err = f.cmds.Confirm(ctx, "B7", "intruder@example.com")
		assert.True(t, errs.Is(err, commands.ErrNoPendingHold), "got %v", err)

		// The owner's hold is untouched.
		snap, err := f.repo.FindBySeat(ctx, "B7")
		require.NoError(t, err)
		assert.Equal(t, "owner@example.com", snap.BuyerEmail)
		assert.Equal(t, booking.StatusPending, snap.Status)
	})

	t.Run("resumes a confirm that died mid processing", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.cmds.AttemptHold(ctx, "B7", "buyer@example.com", "")
		require.NoError(t, err)
		require.NoError(t, f.repo.UpdateStatus(ctx, "B7", "buyer@example.com", booking.StatusPending, booking.StatusProcessing))

		result, err := f.cmds.Confirm(ctx, "B7", "buyer@example.com")
		require.NoError(t, err)
		assert.False(t, result.Replayed)
		assert.Equal(t, booking.StatusConfirmed, result.Booking.Status)
	})

	t.Run("finalize failure deletes the hold instead of reverting it", func(t *testing.T) {
		f := newFixture(t)
		flaky := &finalizeFailingRepo{BookingStore: f.repo}
		cmds := commands.NewBookingCommands(flaky, f.sessions, f.clk, testOpTimeout)

		_, err := cmds.AttemptHold(ctx, "B7", "buyer@example.com", "")
		require.NoError(t, err)

		_, err = cmds.Confirm(ctx, "B7", "buyer@example.com")
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrStoreUnavailable), "got %v", err)

		// The seat is free again for anyone, never stuck half-claimed.
		_, err = f.repo.FindBySeat(ctx, "B7")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))

		retry, err := cmds.AttemptHold(ctx, "B7", "other@example.com", "")
		require.NoError(t, err)
		assert.True(t, retry.Granted)
	})
}

func TestRelease(t *testing.T) {
	ctx := context.Background()

	t.Run("releases own pending hold", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.cmds.AttemptHold(ctx, "B7", "buyer@example.com", "")
		require.NoError(t, err)

		require.NoError(t, f.cmds.Release(ctx, "B7", "buyer@example.com"))

		retry, err := f.cmds.AttemptHold(ctx, "B7", "other@example.com", "")
		require.NoError(t, err)
		assert.True(t, retry.Granted)
	})

	t.Run("release is idempotent", func(t *testing.T) {
		f := newFixture(t)

		require.NoError(t, f.cmds.Release(ctx, "B7", "buyer@example.com"))
		require.NoError(t, f.cmds.Release(ctx, "B7", "buyer@example.com"))
	})

	t.Run("release never drops a confirmed booking", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.cmds.AttemptHold(ctx, "B7", "buyer@example.com", "")
		require.NoError(t, err)
		_, err = f.cmds.Confirm(ctx, "B7", "buyer@example.com")
		require.NoError(t, err)

		require.NoError(t, f.cmds.Release(ctx, "B7", "buyer@example.com"))

		snap, err := f.repo.FindBySeat(ctx, "B7")
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, snap.Status)
	})
}

func TestReapStale(t *testing.T) {
	ctx := context.Background()
	holdTimeout := 15 * time.Minute

	t.Run("reaps expired holds and spares fresh and confirmed ones", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.cmds.AttemptHold(ctx, "B7", "stale@example.com", "")
		require.NoError(t, err)
		_, err = f.cmds.AttemptHold(ctx, "C1", "confirmed@example.com", "")
		require.NoError(t, err)
		_, err = f.cmds.Confirm(ctx, "C1", "confirmed@example.com")
		require.NoError(t, err)

		f.clk.Advance(holdTimeout + time.Minute)

		_, err = f.cmds.AttemptHold(ctx, "D2", "fresh@example.com", "")
		require.NoError(t, err)

		released, err := f.cmds.ReapStale(ctx, f.clk.Now(), holdTimeout)
		require.NoError(t, err)
		assert.Equal(t, []string{"B7"}, released)

		_, err = f.repo.FindBySeat(ctx, "B7")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		_, err = f.repo.FindBySeat(ctx, "C1")
		assert.NoError(t, err)
		_, err = f.repo.FindBySeat(ctx, "D2")
		assert.NoError(t, err)
	})

	t.Run("nothing to reap", func(t *testing.T) {
		f := newFixture(t)

		released, err := f.cmds.ReapStale(ctx, f.clk.Now(), holdTimeout)
		require.NoError(t, err)
		assert.Empty(t, released)
	})
}

// finalizeFailingRepo fails the confirmation transaction while leaving
// every other operation intact.
type finalizeFailingRepo struct {
	*memstore.BookingStore
}

func (r *finalizeFailingRepo) FinalizeConfirm(_ context.Context, _, _ string, _ []byte) error {
	return infra.WrapRepoErr("simulated outage", assert.AnError, infra.KindDBFailure)
}

var _ shared.BookingRepository = (*finalizeFailingRepo)(nil)
