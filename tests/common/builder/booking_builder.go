//go:build unit || e2e

package builder

import (
	"time"

	dombooking "theater-tickets/internal/domain/booking"
	"theater-tickets/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	SeatID     string
	BuyerEmail string
	BuyerName  string
	Status     dombooking.Status
	CreatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		SeatID:     "B7",
		BuyerEmail: "buyer@example.com",
		BuyerName:  "Alex Buyer",
		Status:     dombooking.StatusPending,
		CreatedAt:  time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithSeat(seatID string) *BookingBuilder {
	b.SeatID = seatID
	return b
}

func (b *BookingBuilder) WithBuyer(email string) *BookingBuilder {
	b.BuyerEmail = email
	return b
}

func (b *BookingBuilder) WithStatus(status dombooking.Status) *BookingBuilder {
	b.Status = status
	return b
}

// BuildDomain runs the real hold constructor, so builder defaults must be
// valid inputs.
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	email, err := dombooking.NewEmail(b.BuyerEmail)
	if err != nil {
		return nil, err
	}
	return dombooking.NewHold(b.SeatID, email, dombooking.NewBuyerName(b.BuyerName), b.CreatedAt)
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	ticket := dombooking.TicketRegular
	if len(b.SeatID) > 0 && b.SeatID[0] == 'K' {
		ticket = dombooking.TicketVIP
	}
	var name *string
	if b.BuyerName != "" {
		n := b.BuyerName
		name = &n
	}
	return &shared.BookingSnapshot{
		ID:         uuid.New(),
		SeatID:     b.SeatID,
		BuyerEmail: b.BuyerEmail,
		BuyerName:  name,
		Status:     b.Status,
		TicketType: ticket,
		CreatedAt:  b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildRequestBody() map[string]any {
	return map[string]any{
		"seat_id": b.SeatID,
	}
}
