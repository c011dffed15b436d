package components

import (
	"theater-tickets/internal/domain/seat"
	"theater-tickets/internal/pkg/clock"
	"theater-tickets/internal/pkg/config"
	"theater-tickets/internal/statuscache"
	"theater-tickets/internal/usecase/commands"
	"theater-tickets/internal/usecase/queries"
	"theater-tickets/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			seat.NewDefaultPriceCalculator,
			fx.As(new(seat.PriceCalculator)),
		),
		NewStatusCache,
		func(c *statuscache.Cache) queries.SnapshotSource { return c },
		NewBookingCommands,
		queries.NewSeatQueries,
	),
)

func NewStatusCache(reader shared.SeatStatusReader, clk clock.Clock, cfg config.Config) *statuscache.Cache {
	return statuscache.New(reader, clk, cfg.Hold.PollInterval)
}

func NewBookingCommands(repo shared.BookingRepository, sessions shared.SessionStore, clk clock.Clock, cfg config.Config) commands.BookingCommands {
	return commands.NewBookingCommands(repo, sessions, clk, cfg.Hold.OpTimeout)
}
