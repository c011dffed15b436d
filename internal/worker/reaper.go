package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"theater-tickets/internal/pkg/clock"
	"theater-tickets/internal/usecase/commands"
)

// Reaper sweeps stale holds on a fixed interval. It is the backstop for
// clients that grab a seat and vanish, and for confirm failures whose
// best-effort cleanup did not land.
type Reaper struct {
	bookings    commands.BookingCommands
	clk         clock.Clock
	interval    time.Duration
	holdTimeout time.Duration

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func NewReaper(bookings commands.BookingCommands, clk clock.Clock, interval, holdTimeout time.Duration) *Reaper {
	return &Reaper{
		bookings:    bookings,
		clk:         clk,
		interval:    interval,
		holdTimeout: holdTimeout,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Sweep runs one reap pass and logs the freed seats.
func (r *Reaper) Sweep(ctx context.Context) error {
	released, err := r.bookings.ReapStale(ctx, r.clk.Now(), r.holdTimeout)
	if err != nil {
		return err
	}
	if len(released) > 0 {
		slog.Info("reaped stale holds", "count", len(released), "seats", released)
	}
	return nil
}

// Start runs the sweep loop until Stop or context cancellation. Sweep
// errors are logged and the loop keeps going; a transient store outage
// must not kill the reaper.
func (r *Reaper) Start(ctx context.Context) {
	go func() {
		defer close(r.done)

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-r.stop:
				return
			case <-ticker.C:
				if err := r.Sweep(ctx); err != nil {
					slog.Error("stale hold sweep failed", "error", err)
				}
			}
		}
	}()
}

func (r *Reaper) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })
	<-r.done
}
