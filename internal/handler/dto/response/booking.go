package response

import (
	"time"

	"theater-tickets/internal/usecase/commands"
	"theater-tickets/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID         uuid.UUID `json:"id"`
	SeatID     string    `json:"seatId"`
	BuyerEmail string    `json:"buyerEmail"`
	BuyerName  *string   `json:"buyerName,omitempty"`
	Status     string    `json:"status"`
	TicketType string    `json:"ticketType"`
	CreatedAt  time.Time `json:"createdAt"`
}

type HoldResponse struct {
	Granted bool             `json:"granted"`
	Reason  string           `json:"reason,omitempty"`
	Booking *BookingResponse `json:"booking,omitempty"`
}

type ConfirmResponse struct {
	Booking  *BookingResponse `json:"booking"`
	Replayed bool             `json:"replayed"`
}

func FromBookingSnapshot(snap *shared.BookingSnapshot) *BookingResponse {
	if snap == nil {
		return nil
	}
	return &BookingResponse{
		ID:         snap.ID,
		SeatID:     snap.SeatID,
		BuyerEmail: snap.BuyerEmail,
		BuyerName:  snap.BuyerName,
		Status:     string(snap.Status),
		TicketType: string(snap.TicketType),
		CreatedAt:  snap.CreatedAt,
	}
}

func FromHoldResult(result *commands.HoldResult) *HoldResponse {
	return &HoldResponse{
		Granted: result.Granted,
		Reason:  string(result.Reason),
		Booking: FromBookingSnapshot(result.Booking),
	}
}

func FromConfirmResult(result *commands.ConfirmResult) *ConfirmResponse {
	return &ConfirmResponse{
		Booking:  FromBookingSnapshot(result.Booking),
		Replayed: result.Replayed,
	}
}
