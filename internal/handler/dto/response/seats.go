package response

import (
	"theater-tickets/internal/usecase/queries"
)

type SeatResponse struct {
	SeatID     string  `json:"seatId"`
	Class      string  `json:"class"`
	Status     *string `json:"status,omitempty"`
	Selectable bool    `json:"selectable"`
	PriceCents int64   `json:"priceCents"`
}

type SeatListResponse struct {
	Seats []SeatResponse `json:"seats"`
}

type SessionResponse struct {
	BuyerEmail string `json:"buyerEmail"`
	HasBooked  bool   `json:"hasBooked"`
}

func FromSeatViews(views []queries.SeatView) *SeatListResponse {
	seats := make([]SeatResponse, len(views))
	for i, v := range views {
		seats[i] = SeatResponse{
			SeatID:     v.SeatID,
			Class:      string(v.Class),
			Selectable: v.Selectable,
			PriceCents: v.PriceCents,
		}
		if v.Status != nil {
			s := string(*v.Status)
			seats[i].Status = &s
		}
	}
	return &SeatListResponse{Seats: seats}
}
