package components

import (
	"theater-tickets/internal/infra/readstore"
	"theater-tickets/internal/infra/repository"
	"theater-tickets/internal/infra/sessionstore"
	"theater-tickets/internal/pkg/config"
	"theater-tickets/internal/usecase/shared"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(shared.BookingRepository)),
		),
		fx.Annotate(
			readstore.NewSeatStatusReadStore,
			fx.As(new(shared.SeatStatusReader)),
		),
		fx.Annotate(
			NewSessionStore,
			fx.As(new(shared.SessionStore)),
		),
	),
)

func NewSessionStore(client *goredis.Client, cfg config.Config) *sessionstore.RedisSessionStore {
	return sessionstore.NewRedisSessionStore(client, cfg.Redis)
}
