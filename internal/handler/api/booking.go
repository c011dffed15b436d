package api

import (
	"net/http"

	reqdto "theater-tickets/internal/handler/dto/request"
	resdto "theater-tickets/internal/handler/dto/response"
	"theater-tickets/internal/handler/middleware"
	"theater-tickets/internal/pkg/errs"
	"theater-tickets/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookings commands.BookingCommands
}

func NewBookingHandler(bookings commands.BookingCommands) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// @Summary Hold a seat
// @Description Atomically claim a seat for the authenticated buyer
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SeatRequest true "Target seat"
// @Success 201 {object} resdto.HoldResponse
// @Success 200 {object} resdto.HoldResponse "Hold denied"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /bookings/hold [post]
func (h *BookingHandler) Hold(c *gin.Context) {
	buyerEmail, ok := middleware.GetBuyerEmail(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SeatRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookings.AttemptHold(c.Request.Context(), req.NormalizedSeatID(), buyerEmail, middleware.GetBuyerName(c))
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	status := http.StatusCreated
	if !result.Granted {
		// A denial is a complete answer, not a failure.
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromHoldResult(result))
}

// @Summary Confirm a held seat
// @Description Finalize the buyer's own pending hold
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SeatRequest true "Target seat"
// @Success 200 {object} resdto.ConfirmResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /bookings/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	buyerEmail, ok := middleware.GetBuyerEmail(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SeatRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookings.Confirm(c.Request.Context(), req.NormalizedSeatID(), buyerEmail)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromConfirmResult(result))
}

// @Summary Release a held seat
// @Description Drop the buyer's own non-confirmed hold; no-op if absent
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SeatRequest true "Target seat"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /bookings/release [post]
func (h *BookingHandler) Release(c *gin.Context) {
	buyerEmail, ok := middleware.GetBuyerEmail(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SeatRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.bookings.Release(c.Request.Context(), req.NormalizedSeatID(), buyerEmail); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrInvalidSeat):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown seat",
		})
	case errs.Is(err, commands.ErrInvalidBuyer):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid buyer identity",
		})
	case errs.Is(err, commands.ErrNoPendingHold):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No pending hold for this seat",
		})
	case errs.Is(err, commands.ErrInconsistent):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking state changed, retry from seat selection",
		})
	case errs.Is(err, commands.ErrTimeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{
			"error": "Reservation store timed out",
		})
	case errs.Is(err, commands.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Reservation store unavailable",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
