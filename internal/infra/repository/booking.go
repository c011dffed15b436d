package repository

import (
	"context"
	"errors"
	"time"

	"theater-tickets/internal/domain/booking"
	"theater-tickets/internal/infra"
	"theater-tickets/internal/pkg/pgconv"
	"theater-tickets/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	uniqueViolationCode = "23505"

	// Constraint names from the bookings migration. The mapping from
	// violated constraint to conflict kind is what lets a single INSERT
	// decide the hold race.
	seatUniqueConstraint  = "bookings_seat_id_key"
	buyerUniqueConstraint = "bookings_buyer_email_key"
)

const (
	insertPendingSQL = `
		INSERT INTO bookings (id, seat_id, buyer_email, buyer_name, status, ticket_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	findBySeatSQL = `
		SELECT id, seat_id, buyer_email, buyer_name, status, ticket_type, created_at
		FROM bookings
		WHERE seat_id = $1
	`
	findSQL = `
		SELECT id, seat_id, buyer_email, buyer_name, status, ticket_type, created_at
		FROM bookings
		WHERE seat_id = $1 AND buyer_email = $2
	`
	updateStatusSQL = `
		UPDATE bookings
		SET status = $4
		WHERE seat_id = $1 AND buyer_email = $2 AND status = $3
	`
	confirmSQL = `
		UPDATE bookings
		SET status = 'confirmed'
		WHERE seat_id = $1 AND buyer_email = $2 AND status = 'processing'
	`
	insertNotificationSQL = `
		INSERT INTO notification_jobs (id, kind, topic, payload, run_at, created_at)
		VALUES ($1, 'email', 'booking.confirmed', $2, NOW(), NOW())
	`
	deleteSQL = `
		DELETE FROM bookings
		WHERE seat_id = $1 AND buyer_email = $2 AND status <> 'confirmed'
	`
	deleteStaleSQL = `
		DELETE FROM bookings
		WHERE status <> 'confirmed' AND created_at < $1
		RETURNING seat_id
	`
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) CreatePending(ctx context.Context, b *booking.Booking) error {
	var name *string
	if !b.BuyerName().IsEmpty() {
		v := b.BuyerName().String()
		name = &v
	}

	_, err := r.pool.Exec(ctx, insertPendingSQL,
		b.ID(),
		b.SeatID(),
		b.BuyerEmail().String(),
		pgconv.StringPtrToPgtype(name),
		string(b.Status()),
		string(b.TicketType()),
		b.CreatedAt(),
	)
	if err != nil {
		if kind, ok := conflictKind(err); ok {
			return infra.WrapRepoErr("hold already held", err, kind)
		}
		return infra.WrapRepoErr("insert pending booking", err, failureKind(err))
	}
	return nil
}

func (r *BookingRepository) FindBySeat(ctx context.Context, seatID string) (*shared.BookingSnapshot, error) {
	return r.queryOne(ctx, findBySeatSQL, seatID)
}

func (r *BookingRepository) Find(ctx context.Context, seatID, buyerEmail string) (*shared.BookingSnapshot, error) {
	return r.queryOne(ctx, findSQL, seatID, buyerEmail)
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, seatID, buyerEmail string, expected, next booking.Status) error {
	tag, err := r.pool.Exec(ctx, updateStatusSQL, seatID, buyerEmail, string(expected), string(next))
	if err != nil {
		return infra.WrapRepoErr("update booking status", err, failureKind(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("no booking in expected status", nil, infra.KindNotFound)
	}
	return nil
}

// FinalizeConfirm flips processing -> confirmed and enqueues the
// confirmation notification in the same transaction, so a confirmed row
// always has its job and vice versa.
func (r *BookingRepository) FinalizeConfirm(ctx context.Context, seatID, buyerEmail string, payload []byte) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("begin confirm tx", err, failureKind(err))
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, confirmSQL, seatID, buyerEmail)
	if err != nil {
		return infra.WrapRepoErr("confirm booking", err, failureKind(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("no processing booking to confirm", nil, infra.KindNotFound)
	}

	if _, err := tx.Exec(ctx, insertNotificationSQL, uuid.New(), payload); err != nil {
		return infra.WrapRepoErr("enqueue confirmation job", err, failureKind(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("commit confirm tx", err, failureKind(err))
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, seatID, buyerEmail string) (bool, error) {
	tag, err := r.pool.Exec(ctx, deleteSQL, seatID, buyerEmail)
	if err != nil {
		return false, infra.WrapRepoErr("delete booking", err, failureKind(err))
	}
	return tag.RowsAffected() > 0, nil
}

func (r *BookingRepository) DeleteStale(ctx context.Context, cutoff time.Time) ([]string, error) {
	rows, err := r.pool.Query(ctx, deleteStaleSQL, cutoff)
	if err != nil {
		return nil, infra.WrapRepoErr("delete stale bookings", err, failureKind(err))
	}
	defer rows.Close()

	var seatIDs []string
	for rows.Next() {
		var seatID string
		if err := rows.Scan(&seatID); err != nil {
			return nil, infra.WrapRepoErr("scan freed seat", err)
		}
		seatIDs = append(seatIDs, seatID)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("iterate freed seats", err, failureKind(err))
	}
	return seatIDs, nil
}

func (r *BookingRepository) queryOne(ctx context.Context, sql string, args ...any) (*shared.BookingSnapshot, error) {
	row := r.pool.QueryRow(ctx, sql, args...)

	var (
		snap   shared.BookingSnapshot
		status string
		ticket string
	)
	err := row.Scan(&snap.ID, &snap.SeatID, &snap.BuyerEmail, &snap.BuyerName, &status, &ticket, &snap.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("query booking", err, failureKind(err))
	}
	snap.Status = booking.Status(status)
	snap.TicketType = booking.TicketType(ticket)
	return &snap, nil
}

func conflictKind(err error) (infra.RepositoryErrorKind, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return "", false
	}
	switch pgErr.ConstraintName {
	case seatUniqueConstraint:
		return infra.KindSeatConflict, true
	case buyerUniqueConstraint:
		return infra.KindBuyerConflict, true
	default:
		return "", false
	}
}

// failureKind separates reachability problems from statement failures so
// the coordinator can report the store as unavailable.
func failureKind(err error) infra.RepositoryErrorKind {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || pgconn.Timeout(err) {
		return infra.KindUnavailable
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return infra.KindUnavailable
	}
	return infra.KindDBFailure
}

var _ shared.BookingRepository = (*BookingRepository)(nil)
