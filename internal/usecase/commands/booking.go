package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"theater-tickets/internal/domain/booking"
	"theater-tickets/internal/domain/seat"
	"theater-tickets/internal/infra"
	"theater-tickets/internal/pkg/clock"
	"theater-tickets/internal/pkg/errs"
	"theater-tickets/internal/usecase/shared"
)

var (
	ErrInvalidSeat      = errs.New("invalid seat id")
	ErrInvalidBuyer     = errs.New("invalid buyer email")
	ErrStoreUnavailable = errs.New("reservation store unavailable")
	ErrTimeout          = errs.New("store operation timed out")
	ErrInconsistent     = errs.New("booking state changed underneath confirm")
	ErrNoPendingHold    = errs.New("no pending hold for this seat and buyer")
)

// DeniedReason explains why a hold was refused. All of these are expected,
// recoverable outcomes: the caller picks another seat.
type DeniedReason string

const (
	DeniedAlreadyBooked      DeniedReason = "already_booked"
	DeniedSeatTaken          DeniedReason = "seat_taken"
	DeniedSeatBeingProcessed DeniedReason = "seat_being_processed"
	DeniedSeatNotSellable    DeniedReason = "seat_not_sellable"
)

type HoldResult struct {
	Granted bool
	Reason  DeniedReason
	Booking *shared.BookingSnapshot
}

type ConfirmResult struct {
	Booking *shared.BookingSnapshot
	// Replayed marks a confirm that found the record already confirmed
	// for the same buyer. No store write happens on that path.
	Replayed bool
}

type BookingCommands interface {
	AttemptHold(ctx context.Context, seatID, buyerEmail, buyerName string) (*HoldResult, error)
	Confirm(ctx context.Context, seatID, buyerEmail string) (*ConfirmResult, error)
	Release(ctx context.Context, seatID, buyerEmail string) error
	ReapStale(ctx context.Context, now time.Time, holdTimeout time.Duration) ([]string, error)
}

type bookingCommandsImpl struct {
	repo      shared.BookingRepository
	sessions  shared.SessionStore
	clock     clock.Clock
	opTimeout time.Duration
}

func NewBookingCommands(
	repo shared.BookingRepository,
	sessions shared.SessionStore,
	clk clock.Clock,
	opTimeout time.Duration,
) BookingCommands {
	return &bookingCommandsImpl{
		repo:      repo,
		sessions:  sessions,
		clock:     clk,
		opTimeout: opTimeout,
	}
}

// AttemptHold tries to claim the seat for the buyer with a single atomic
// conditional insert. The store, not any prior read, decides the race: two
// concurrent attempts on the same seat or the same buyer cannot both
// succeed.
func (c *bookingCommandsImpl) AttemptHold(ctx context.Context, seatID, buyerEmail, buyerName string) (*HoldResult, error) {
	if !seat.Exists(seatID) {
		return nil, ErrInvalidSeat
	}
	email, err := booking.NewEmail(buyerEmail)
	if err != nil {
		return nil, ErrInvalidBuyer
	}
	if !seat.IsSellable(seatID) {
		return &HoldResult{Granted: false, Reason: DeniedSeatNotSellable}, nil
	}

	hold, err := booking.NewHold(seatID, email, booking.NewBuyerName(buyerName), c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBuyer)
	}

	ctx, cancel := context.WithTimeout(ctx, c.opTimeout)
	defer cancel()

	if err := c.repo.CreatePending(ctx, hold); err != nil {
		switch {
		case infra.IsKind(err, infra.KindBuyerConflict):
			return &HoldResult{Granted: false, Reason: DeniedAlreadyBooked}, nil
		case infra.IsKind(err, infra.KindSeatConflict):
			return &HoldResult{Granted: false, Reason: c.seatDenialReason(ctx, seatID)}, nil
		default:
			return nil, c.storeErr(ctx, err, "attempt hold")
		}
	}

	return &HoldResult{Granted: true, Booking: snapshotOf(hold)}, nil
}

// seatDenialReason refines a seat conflict for display. The denial itself
// was already decided atomically by the failed insert; this read only picks
// the message.
func (c *bookingCommandsImpl) seatDenialReason(ctx context.Context, seatID string) DeniedReason {
	current, err := c.repo.FindBySeat(ctx, seatID)
	if err == nil && current.Status == booking.StatusProcessing {
		return DeniedSeatBeingProcessed
	}
	return DeniedSeatTaken
}

// Confirm finalizes the caller's own pending hold: pending -> processing,
// downstream bookkeeping, processing -> confirmed. Both transitions are
// compare-and-swap writes. Any failure deletes the record outright; a hold
// is never put back to pending, so no second caller can observe a window
// where the seat looks claimable while cleanup is still racing.
func (c *bookingCommandsImpl) Confirm(ctx context.Context, seatID, buyerEmail string) (*ConfirmResult, error) {
	email, err := booking.NewEmail(buyerEmail)
	if err != nil {
		return nil, ErrInvalidBuyer
	}

	ctx, cancel := context.WithTimeout(ctx, c.opTimeout)
	defer cancel()

	err = c.repo.UpdateStatus(ctx, seatID, email.String(), booking.StatusPending, booking.StatusProcessing)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, c.storeErr(ctx, err, "confirm: claim hold")
		}
		// The pending row is gone. Either this is a replay of a finished
		// confirm, a retry of one that died mid-processing, or the hold
		// was reaped.
		current, findErr := c.repo.Find(ctx, seatID, email.String())
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return nil, errs.Mark(err, ErrNoPendingHold)
			}
			return nil, c.storeErr(ctx, findErr, "confirm: read current state")
		}
		switch current.Status {
		case booking.StatusConfirmed:
			return &ConfirmResult{Booking: current, Replayed: true}, nil
		case booking.StatusProcessing:
			// Resume: fall through to finalization below.
		default:
			return nil, errs.Mark(err, ErrInconsistent)
		}
	}

	if err := c.finalize(ctx, seatID, email.String()); err != nil {
		return nil, err
	}

	confirmed, err := c.repo.Find(ctx, seatID, email.String())
	if err != nil {
		return nil, c.storeErr(ctx, err, "confirm: read result")
	}

	c.markSessionBooked(ctx, email.String())
	return &ConfirmResult{Booking: confirmed}, nil
}

func (c *bookingCommandsImpl) finalize(ctx context.Context, seatID, buyerEmail string) error {
	payload, err := json.Marshal(map[string]any{
		"seat_id":     seatID,
		"buyer_email": buyerEmail,
		"type":        "booking_confirmed",
	})
	if err != nil {
		return errs.Wrap(err, "confirm: encode payload")
	}

	if err := c.repo.FinalizeConfirm(ctx, seatID, buyerEmail, payload); err != nil {
		c.abortHold(ctx, seatID, buyerEmail)
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrInconsistent)
		}
		return c.storeErr(ctx, err, "confirm: finalize")
	}
	return nil
}

// abortHold deletes the failed hold so the seat returns to availability.
// Best effort: if the store is down the reaper is the backstop.
func (c *bookingCommandsImpl) abortHold(ctx context.Context, seatID, buyerEmail string) {
	if _, err := c.repo.Delete(ctx, seatID, buyerEmail); err != nil {
		slog.Warn("failed to delete aborted hold, reaper will collect it",
			"seat_id", seatID, "error", err.Error())
	}
}

func (c *bookingCommandsImpl) markSessionBooked(ctx context.Context, buyerEmail string) {
	if err := c.sessions.MarkBooked(ctx, buyerEmail); err != nil {
		// Advisory only; the store-side uniqueness check still protects
		// against a double booking.
		slog.Warn("failed to mark session as booked", "error", err.Error())
	}
}

// Release drops the caller's own non-confirmed record. Idempotent: releasing
// a seat that holds nothing for this buyer is a no-op.
func (c *bookingCommandsImpl) Release(ctx context.Context, seatID, buyerEmail string) error {
	email, err := booking.NewEmail(buyerEmail)
	if err != nil {
		return ErrInvalidBuyer
	}

	ctx, cancel := context.WithTimeout(ctx, c.opTimeout)
	defer cancel()

	if _, err := c.repo.Delete(ctx, seatID, email.String()); err != nil {
		return c.storeErr(ctx, err, "release hold")
	}
	return nil
}

// ReapStale deletes every non-confirmed record older than the hold timeout.
// This bounds how long a crashed or disconnected client can keep a seat
// out of circulation.
func (c *bookingCommandsImpl) ReapStale(ctx context.Context, now time.Time, holdTimeout time.Duration) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opTimeout)
	defer cancel()

	released, err := c.repo.DeleteStale(ctx, now.Add(-holdTimeout))
	if err != nil {
		return nil, c.storeErr(ctx, err, "reap stale holds")
	}
	return released, nil
}

func (c *bookingCommandsImpl) storeErr(ctx context.Context, err error, op string) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return errs.Mark(errs.Wrap(err, op), ErrTimeout)
	}
	return errs.Mark(errs.Wrap(err, op), ErrStoreUnavailable)
}

func snapshotOf(b *booking.Booking) *shared.BookingSnapshot {
	var name *string
	if !b.BuyerName().IsEmpty() {
		n := b.BuyerName().String()
		name = &n
	}
	return &shared.BookingSnapshot{
		ID:         b.ID(),
		SeatID:     b.SeatID(),
		BuyerEmail: b.BuyerEmail().String(),
		BuyerName:  name,
		Status:     b.Status(),
		TicketType: b.TicketType(),
		CreatedAt:  b.CreatedAt(),
	}
}
