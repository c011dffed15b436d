package components

import (
	"context"

	"theater-tickets/internal/pkg/clock"
	"theater-tickets/internal/pkg/config"
	"theater-tickets/internal/statuscache"
	"theater-tickets/internal/usecase/commands"
	"theater-tickets/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewReaper,
	),
	fx.Invoke(
		startStatusCache,
		startReaper,
	),
)

func NewReaper(bookings commands.BookingCommands, clk clock.Clock, cfg config.Config) *worker.Reaper {
	return worker.NewReaper(bookings, clk, cfg.Hold.SweepInterval, cfg.Hold.Timeout)
}

func startStatusCache(lc fx.Lifecycle, cache *statuscache.Cache) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			cache.Start(context.Background())
			return nil
		},
		OnStop: func(_ context.Context) error {
			cache.Stop()
			return nil
		},
	})
}

func startReaper(lc fx.Lifecycle, reaper *worker.Reaper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			reaper.Start(context.Background())
			return nil
		},
		OnStop: func(_ context.Context) error {
			reaper.Stop()
			return nil
		},
	})
}
