package memstore

import (
	"context"
	"sync"
	"time"

	"theater-tickets/internal/domain/booking"
	"theater-tickets/internal/infra"
	"theater-tickets/internal/usecase/shared"
)

// BookingStore is an in-memory shared.BookingRepository with the same
// conflict semantics as the SQL adapter. Used by tests and local runs
// without a database; the mutex stands in for the unique indexes.
type BookingStore struct {
	mu      sync.Mutex
	bySeat  map[string]*shared.BookingSnapshot
	byBuyer map[string]*shared.BookingSnapshot
}

func NewBookingStore() *BookingStore {
	return &BookingStore{
		bySeat:  make(map[string]*shared.BookingSnapshot),
		byBuyer: make(map[string]*shared.BookingSnapshot),
	}
}

func (s *BookingStore) CreatePending(_ context.Context, b *booking.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, held := s.bySeat[b.SeatID()]; held {
		return infra.WrapRepoErr("seat already held", nil, infra.KindSeatConflict)
	}
	if _, held := s.byBuyer[b.BuyerEmail().String()]; held {
		return infra.WrapRepoErr("buyer already holds a booking", nil, infra.KindBuyerConflict)
	}

	var name *string
	if !b.BuyerName().IsEmpty() {
		v := b.BuyerName().String()
		name = &v
	}
	snap := &shared.BookingSnapshot{
		ID:         b.ID(),
		SeatID:     b.SeatID(),
		BuyerEmail: b.BuyerEmail().String(),
		BuyerName:  name,
		Status:     b.Status(),
		TicketType: b.TicketType(),
		CreatedAt:  b.CreatedAt(),
	}
	s.bySeat[snap.SeatID] = snap
	s.byBuyer[snap.BuyerEmail] = snap
	return nil
}

func (s *BookingStore) FindBySeat(_ context.Context, seatID string) (*shared.BookingSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, ok := s.bySeat[seatID]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return copySnapshot(snap), nil
}

func (s *BookingStore) Find(_ context.Context, seatID, buyerEmail string) (*shared.BookingSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, ok := s.bySeat[seatID]
	if !ok || snap.BuyerEmail != buyerEmail {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return copySnapshot(snap), nil
}

func (s *BookingStore) UpdateStatus(_ context.Context, seatID, buyerEmail string, expected, next booking.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, ok := s.bySeat[seatID]
	if !ok || snap.BuyerEmail != buyerEmail || snap.Status != expected {
		return infra.WrapRepoErr("no booking in expected status", nil, infra.KindNotFound)
	}
	snap.Status = next
	return nil
}

func (s *BookingStore) FinalizeConfirm(_ context.Context, seatID, buyerEmail string, _ []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, ok := s.bySeat[seatID]
	if !ok || snap.BuyerEmail != buyerEmail || snap.Status != booking.StatusProcessing {
		return infra.WrapRepoErr("no processing booking to confirm", nil, infra.KindNotFound)
	}
	snap.Status = booking.StatusConfirmed
	return nil
}

func (s *BookingStore) Delete(_ context.Context, seatID, buyerEmail string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, ok := s.bySeat[seatID]
	if !ok || snap.BuyerEmail != buyerEmail || snap.Status == booking.StatusConfirmed {
		return false, nil
	}
	delete(s.bySeat, seatID)
	delete(s.byBuyer, buyerEmail)
	return true, nil
}

func (s *BookingStore) DeleteStale(_ context.Context, cutoff time.Time) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var freed []string
	for seatID, snap := range s.bySeat {
		if snap.Status == booking.StatusConfirmed || !snap.CreatedAt.Before(cutoff) {
			continue
		}
		delete(s.bySeat, seatID)
		delete(s.byBuyer, snap.BuyerEmail)
		freed = append(freed, seatID)
	}
	return freed, nil
}

// ListSeatStatuses makes the store usable as the poll source in tests.
func (s *BookingStore) ListSeatStatuses(_ context.Context) ([]shared.SeatStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	statuses := make([]shared.SeatStatus, 0, len(s.bySeat))
	for seatID, snap := range s.bySeat {
		statuses = append(statuses, shared.SeatStatus{SeatID: seatID, Status: snap.Status})
	}
	return statuses, nil
}

func copySnapshot(snap *shared.BookingSnapshot) *shared.BookingSnapshot {
	out := *snap
	if snap.BuyerName != nil {
		name := *snap.BuyerName
		out.BuyerName = &name
	}
	return &out
}

var (
	_ shared.BookingRepository = (*BookingStore)(nil)
	_ shared.SeatStatusReader  = (*BookingStore)(nil)
)
