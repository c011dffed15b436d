package booking

import (
	"errors"
	"time"

	"theater-tickets/internal/domain/seat"

	"github.com/google/uuid"
)

var (
	ErrSeatNotSellable   = errors.New("seat is not sellable")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Booking is an active record claiming a seat for a buyer. It is created
// only through the coordinator's hold operation and exists until it is
// either confirmed or deleted.
type Booking struct {
	id         uuid.UUID
	seatID     string
	buyerEmail Email
	buyerName  BuyerName
	status     Status
	ticketType TicketType
	createdAt  time.Time
}

// NewHold builds the pending record for a fresh hold. The ticket type is
// derived from the seat class here and is immutable afterwards.
func NewHold(seatID string, buyerEmail Email, buyerName BuyerName, now time.Time) (*Booking, error) {
	class := seat.ClassOf(seatID)
	if class == seat.ClassNonSellable {
		return nil, ErrSeatNotSellable
	}
	if buyerEmail.IsEmpty() {
		return nil, ErrInvalidEmail
	}

	ticketType := TicketRegular
	if class == seat.ClassVIP {
		ticketType = TicketVIP
	}

	return &Booking{
		id:         uuid.New(),
		seatID:     seatID,
		buyerEmail: buyerEmail,
		buyerName:  buyerName,
		status:     StatusPending,
		ticketType: ticketType,
		createdAt:  now,
	}, nil
}

// Reconstruct rebuilds an entity from stored state without re-running the
// creation checks.
func Reconstruct(
	id uuid.UUID,
	seatID string,
	buyerEmail Email,
	buyerName BuyerName,
	status Status,
	ticketType TicketType,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		seatID:     seatID,
		buyerEmail: buyerEmail,
		buyerName:  buyerName,
		status:     status,
		ticketType: ticketType,
		createdAt:  createdAt,
	}
}

func (b *Booking) TransitionTo(next Status) error {
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.status = next
	return nil
}

func (b *Booking) IsConfirmed() bool {
	return b.status == StatusConfirmed
}

// IsStale reports whether a non-confirmed record has outlived the hold
// timeout and should be reaped.
func (b *Booking) IsStale(now time.Time, holdTimeout time.Duration) bool {
	if b.status == StatusConfirmed {
		return false
	}
	return now.Sub(b.createdAt) > holdTimeout
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) SeatID() string         { return b.seatID }
func (b *Booking) BuyerEmail() Email      { return b.buyerEmail }
func (b *Booking) BuyerName() BuyerName   { return b.buyerName }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) TicketType() TicketType { return b.ticketType }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
