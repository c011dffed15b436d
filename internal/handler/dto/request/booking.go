package request

import "strings"

// SeatRequest targets one seat for hold, confirm, or release. The buyer
// identity never travels in the body; it comes from the verified token.
type SeatRequest struct {
	SeatID string `json:"seat_id" binding:"required"`
}

func (r SeatRequest) NormalizedSeatID() string {
	return strings.ToUpper(strings.TrimSpace(r.SeatID))
}
