//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"theater-tickets/internal/domain/seat"
	"theater-tickets/internal/handler/api"
	resdto "theater-tickets/internal/handler/dto/response"
	"theater-tickets/internal/usecase/queries"
	"theater-tickets/tests/common/httptest"
	queriesmock "theater-tickets/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SeatHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockSeatQueries
	handler     *api.SeatHandler
}

func (s *SeatHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockSeatQueries(s.mockCtrl)
	s.handler = api.NewSeatHandler(s.mockQueries)

	identityMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("buyer_email", testBuyerEmail)
		c.Next()
	}

	s.router.GET("/seats", s.handler.ListSeats)
	s.router.GET("/session", identityMiddleware, s.handler.GetSession)
}

func (s *SeatHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSeatHandlerSuite(t *testing.T) {
	suite.Run(t, new(SeatHandlerTestSuite))
}

var errSessionDown = errors.New("session store down")

func (s *SeatHandlerTestSuite) TestListSeats() {
	s.Run("success: returns the rendered catalog", func() {
		views := []queries.SeatView{
			{SeatID: "A1", Class: seat.ClassRegular, Selectable: true, PriceCents: 1150},
			{SeatID: "K1", Class: seat.ClassVIP, Selectable: true, PriceCents: 7650},
		}
		s.mockQueries.EXPECT().ListSeats(gomock.Any()).Return(views).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/seats", nil, "")
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.SeatListResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Require().Len(resp.Seats, 2)
		s.Equal("A1", resp.Seats[0].SeatID)
		s.Equal("vip", resp.Seats[1].Class)
	})
}

func (s *SeatHandlerTestSuite) TestGetSession() {
	s.Run("success: reports the advisory flag", func() {
		s.mockQueries.EXPECT().HasBooked(gomock.Any(), testBuyerEmail).Return(true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/session", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.SessionResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal(testBuyerEmail, resp.BuyerEmail)
		s.True(resp.HasBooked)
	})

	s.Run("session store failure degrades to not booked", func() {
		s.mockQueries.EXPECT().HasBooked(gomock.Any(), testBuyerEmail).Return(false, errSessionDown).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/session", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.SessionResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.False(resp.HasBooked)
	})

	s.Run("auth: missing token returns 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/session", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
