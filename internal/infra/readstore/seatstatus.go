package readstore

import (
	"context"

	"theater-tickets/internal/domain/booking"
	"theater-tickets/internal/infra"
	"theater-tickets/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

const listSeatStatusesSQL = `
	SELECT seat_id, status
	FROM bookings
	ORDER BY seat_id
`

// SeatStatusReadStore serves the bulk (seat, status) projection polled by
// the status cache. It never reads buyer columns.
type SeatStatusReadStore struct {
	pool *pgxpool.Pool
}

func NewSeatStatusReadStore(pool *pgxpool.Pool) *SeatStatusReadStore {
	return &SeatStatusReadStore{pool: pool}
}

func (s *SeatStatusReadStore) ListSeatStatuses(ctx context.Context) ([]shared.SeatStatus, error) {
	rows, err := s.pool.Query(ctx, listSeatStatusesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("list seat statuses", err)
	}
	defer rows.Close()

	var statuses []shared.SeatStatus
	for rows.Next() {
		var (
			seatID string
			status string
		)
		if err := rows.Scan(&seatID, &status); err != nil {
			return nil, infra.WrapRepoErr("scan seat status", err)
		}
		statuses = append(statuses, shared.SeatStatus{SeatID: seatID, Status: booking.Status(status)})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("iterate seat statuses", err)
	}
	return statuses, nil
}

var _ shared.SeatStatusReader = (*SeatStatusReadStore)(nil)
