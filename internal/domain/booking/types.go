package booking

// Status is the lifecycle position of an active booking record. There is no
// released or failed status: aborted holds are deleted, never reverted, so
// any row that exists is active.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusConfirmed  Status = "confirmed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusConfirmed:
		return true
	default:
		return false
	}
}

// CanTransitionTo encodes the one-way pending -> processing -> confirmed
// chain. Leaving the chain is only possible by deleting the record.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusProcessing
	case StatusProcessing:
		return next == StatusConfirmed
	default:
		return false
	}
}

// TicketType is fixed at hold time from the seat class and never changes
// afterwards.
type TicketType string

const (
	TicketRegular TicketType = "Regular"
	TicketVIP     TicketType = "VIP"
)

func (t TicketType) String() string {
	return string(t)
}
