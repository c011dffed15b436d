package queries

import (
	"context"

	"theater-tickets/internal/domain/booking"
	"theater-tickets/internal/domain/seat"
	"theater-tickets/internal/usecase/shared"
)

// SeatView is one catalog seat decorated with the cached booking status.
// Selectable is the cheap pre-flight filter for the UI; the coordinator
// re-decides atomically on hold.
type SeatView struct {
	SeatID     string
	Class      seat.Class
	Status     *booking.Status
	Selectable bool
	PriceCents int64
}

type SnapshotSource interface {
	Snapshot() shared.StatusSnapshot
}

type SeatQueries interface {
	ListSeats(ctx context.Context) []SeatView
	HasBooked(ctx context.Context, buyerEmail string) (bool, error)
}

type seatQueriesImpl struct {
	cache    SnapshotSource
	sessions shared.SessionStore
	prices   seat.PriceCalculator
}

func NewSeatQueries(cache SnapshotSource, sessions shared.SessionStore, prices seat.PriceCalculator) SeatQueries {
	return &seatQueriesImpl{
		cache:    cache,
		sessions: sessions,
		prices:   prices,
	}
}

// ListSeats renders the whole catalog against the latest snapshot. The
// snapshot may lag the store by one poll interval; that only affects
// display, never the hold decision.
func (q *seatQueriesImpl) ListSeats(_ context.Context) []SeatView {
	snap := q.cache.Snapshot()

	ids := seat.All()
	views := make([]SeatView, 0, len(ids))
	for _, id := range ids {
		class := seat.ClassOf(id)
		view := SeatView{
			SeatID:     id,
			Class:      class,
			Selectable: class != seat.ClassNonSellable,
			PriceCents: q.prices.PriceCents(class),
		}
		if status, ok := snap.StatusOf(id); ok {
			s := status
			view.Status = &s
			view.Selectable = false
		}
		views = append(views, view)
	}
	return views
}

// HasBooked reads the advisory session flag. An error degrades to "not
// booked" at the handler; the store-side check still applies on hold.
func (q *seatQueriesImpl) HasBooked(ctx context.Context, buyerEmail string) (bool, error) {
	return q.sessions.HasBooked(ctx, buyerEmail)
}
