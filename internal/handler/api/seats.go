package api

import (
	"net/http"

	resdto "theater-tickets/internal/handler/dto/response"
	"theater-tickets/internal/handler/middleware"
	"theater-tickets/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SeatHandler struct {
	seats queries.SeatQueries
}

func NewSeatHandler(seats queries.SeatQueries) *SeatHandler {
	return &SeatHandler{seats: seats}
}

// @Summary List seats
// @Description Full seat catalog with cached booking statuses
// @Tags seats
// @Produce json
// @Success 200 {object} resdto.SeatListResponse
// @Router /seats [get]
func (h *SeatHandler) ListSeats(c *gin.Context) {
	views := h.seats.ListSeats(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromSeatViews(views))
}

// @Summary Get session
// @Description Advisory booking state for the authenticated buyer
// @Tags session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SessionResponse
// @Failure 401 {object} map[string]string
// @Router /session [get]
func (h *SeatHandler) GetSession(c *gin.Context) {
	buyerEmail, ok := middleware.GetBuyerEmail(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	hasBooked, err := h.seats.HasBooked(c.Request.Context(), buyerEmail)
	if err != nil {
		// The flag is advisory; degrade to "not booked" rather than fail.
		hasBooked = false
	}

	c.JSON(http.StatusOK, resdto.SessionResponse{
		BuyerEmail: buyerEmail,
		HasBooked:  hasBooked,
	})
}
