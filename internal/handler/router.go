package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"theater-tickets/internal/handler/api"
	"theater-tickets/internal/handler/middleware"
	"theater-tickets/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, bookingHandler *api.BookingHandler, seatHandler *api.SeatHandler, identity *middleware.IdentityMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler, seatHandler, identity)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, bookingHandler *api.BookingHandler, seatHandler *api.SeatHandler, identity *middleware.IdentityMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// The seat map is public; polling clients hit it unauthenticated.
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/seats", Handler: seatHandler.ListSeats},
		})

		authed := apiGroup.Group("")
		authed.Use(identity.RequireBuyer())
		{
			addRoutes(authed, []route{
				{Method: http.MethodGet, Path: "/session", Handler: seatHandler.GetSession},
			})

			bookings := authed.Group("/bookings")
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "/hold", Handler: bookingHandler.Hold},
				{Method: http.MethodPost, Path: "/confirm", Handler: bookingHandler.Confirm},
				{Method: http.MethodPost, Path: "/release", Handler: bookingHandler.Release},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
