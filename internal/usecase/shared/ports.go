package shared

import (
	"context"
	"time"

	"theater-tickets/internal/domain/booking"

	"github.com/google/uuid"
)

// BookingSnapshot is the read model of a stored booking record.
type BookingSnapshot struct {
	ID         uuid.UUID
	SeatID     string
	BuyerEmail string
	BuyerName  *string
	Status     booking.Status
	TicketType booking.TicketType
	CreatedAt  time.Time
}

// SeatStatus pairs a seat with the status of its active record, if any.
type SeatStatus struct {
	SeatID string
	Status booking.Status
}

// BookingRepository is the reservation store contract. Every mutating
// method is a single atomic conditional operation: the uniqueness or
// status check and the write happen in one statement, never as a prior
// read followed by a write.
type BookingRepository interface {
	// CreatePending inserts the hold if and only if no active record
	// exists for the seat or the buyer. Conflicts surface as repository
	// errors of kind SeatConflict or BuyerConflict.
	CreatePending(ctx context.Context, b *booking.Booking) error

	// FindBySeat returns the active record holding the seat, or NotFound.
	FindBySeat(ctx context.Context, seatID string) (*BookingSnapshot, error)

	// Find returns the record for the exact (seat, buyer) pair, or NotFound.
	Find(ctx context.Context, seatID, buyerEmail string) (*BookingSnapshot, error)

	// UpdateStatus is a compare-and-swap: the row moves from expected to
	// next only if it currently has the expected status. NotFound when no
	// row matched.
	UpdateStatus(ctx context.Context, seatID, buyerEmail string, expected, next booking.Status) error

	// FinalizeConfirm moves processing -> confirmed and records the
	// confirmation bookkeeping in one transaction.
	FinalizeConfirm(ctx context.Context, seatID, buyerEmail string, payload []byte) error

	// Delete removes the pair's record unless it is confirmed. Reports
	// whether a row was removed; absence is not an error.
	Delete(ctx context.Context, seatID, buyerEmail string) (bool, error)

	// DeleteStale removes every non-confirmed record created before the
	// cutoff and returns the freed seat ids.
	DeleteStale(ctx context.Context, cutoff time.Time) ([]string, error)
}

// SeatStatusReader is the bulk read used for display snapshots.
type SeatStatusReader interface {
	ListSeatStatuses(ctx context.Context) ([]SeatStatus, error)
}

// SessionStore keeps the advisory has-booked flag per buyer. It only
// short-circuits the UI; the authoritative per-buyer check lives in
// BookingRepository.CreatePending.
type SessionStore interface {
	MarkBooked(ctx context.Context, buyerEmail string) error
	HasBooked(ctx context.Context, buyerEmail string) (bool, error)
}

// StatusSnapshot is an immutable seat_id -> status view published by the
// status cache. It may lag the store by up to one poll interval.
type StatusSnapshot interface {
	StatusOf(seatID string) (booking.Status, bool)
	Taken() time.Time
}
