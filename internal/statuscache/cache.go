package statuscache

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"theater-tickets/internal/domain/booking"
	"theater-tickets/internal/pkg/clock"
	"theater-tickets/internal/usecase/shared"
)

// snapshot is the immutable view swapped in whole on each refresh.
type snapshot struct {
	statuses map[string]booking.Status
	taken    time.Time
}

func (s *snapshot) StatusOf(seatID string) (booking.Status, bool) {
	status, ok := s.statuses[seatID]
	return status, ok
}

func (s *snapshot) Taken() time.Time {
	return s.taken
}

// Cache polls the read store on a fixed interval and publishes the
// latest snapshot. Readers never block on the store and never see a
// partially applied refresh. A failed refresh keeps the previous
// snapshot; the display goes stale rather than empty.
type Cache struct {
	reader   shared.SeatStatusReader
	clk      clock.Clock
	interval time.Duration
	current  atomic.Value // *snapshot

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func New(reader shared.SeatStatusReader, clk clock.Clock, interval time.Duration) *Cache {
	c := &Cache{
		reader:   reader,
		clk:      clk,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	c.current.Store(&snapshot{statuses: map[string]booking.Status{}})
	return c
}

// Snapshot returns the latest published view. Before the first refresh
// it is empty, which renders every seat as free; the hold path does not
// consult it.
func (c *Cache) Snapshot() shared.StatusSnapshot {
	return c.current.Load().(*snapshot)
}

// Refresh pulls the read store once and swaps the snapshot.
func (c *Cache) Refresh(ctx context.Context) error {
	statuses, err := c.reader.ListSeatStatuses(ctx)
	if err != nil {
		return err
	}

	m := make(map[string]booking.Status, len(statuses))
	for _, s := range statuses {
		m[s.SeatID] = s.Status
	}
	c.current.Store(&snapshot{statuses: m, taken: c.clk.Now()})
	return nil
}

// Start runs the poll loop until Stop or context cancellation. The first
// refresh happens immediately so the server does not open on an empty map.
func (c *Cache) Start(ctx context.Context) {
	go func() {
		defer close(c.done)

		if err := c.Refresh(ctx); err != nil {
			slog.Warn("seat status refresh failed", "error", err)
		}

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-c.stop:
				return
			case <-ticker.C:
				if err := c.Refresh(ctx); err != nil {
					slog.Warn("seat status refresh failed", "error", err)
				}
			}
		}
	}()
}

func (c *Cache) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
	<-c.done
}
