package seat

import (
	"fmt"
	"strconv"
)

// Class partitions the catalog into sellable tiers plus the seats that are
// never offered for sale (the delegate row on the main floor).
type Class string

const (
	ClassRegular     Class = "regular"
	ClassVIP         Class = "vip"
	ClassNonSellable Class = "non_sellable"
)

func (c Class) String() string {
	return string(c)
}

const (
	vipRow      = 'K'
	delegateRow = 'L'
)

// Venue layout. Main floor rows A-L span columns 1-24; the balcony carries
// rows M and N over columns 1-11 and row O over columns 1-5.
const (
	mainFloorFirstRow = 'A'
	mainFloorLastRow  = 'L'
	mainFloorColumns  = 24

	balconyWideColumns   = 11
	balconyNarrowColumns = 5
)

// ClassOf maps a seat identifier to its class. Identifiers outside the
// catalog have no class and are reported as NonSellable.
func ClassOf(seatID string) Class {
	row, _, ok := parseID(seatID)
	if !ok {
		return ClassNonSellable
	}
	switch row {
	case delegateRow:
		return ClassNonSellable
	case vipRow:
		return ClassVIP
	default:
		return ClassRegular
	}
}

// IsSellable reports whether the seat may be offered for selection at all,
// independent of any booking state.
func IsSellable(seatID string) bool {
	return ClassOf(seatID) != ClassNonSellable
}

// Exists reports whether the identifier names a seat in the catalog,
// sellable or not.
func Exists(seatID string) bool {
	_, _, ok := parseID(seatID)
	return ok
}

// All enumerates every seat identifier in the catalog in row-major order.
func All() []string {
	ids := make([]string, 0, totalSeats())
	for row := mainFloorFirstRow; row <= mainFloorLastRow; row++ {
		for col := 1; col <= mainFloorColumns; col++ {
			ids = append(ids, fmt.Sprintf("%c%d", row, col))
		}
	}
	for _, row := range []rune{'M', 'N'} {
		for col := 1; col <= balconyWideColumns; col++ {
			ids = append(ids, fmt.Sprintf("%c%d", row, col))
		}
	}
	for col := 1; col <= balconyNarrowColumns; col++ {
		ids = append(ids, fmt.Sprintf("O%d", col))
	}
	return ids
}

func totalSeats() int {
	mainFloor := int(mainFloorLastRow-mainFloorFirstRow+1) * mainFloorColumns
	return mainFloor + 2*balconyWideColumns + balconyNarrowColumns
}

func parseID(seatID string) (row rune, col int, ok bool) {
	if len(seatID) < 2 {
		return 0, 0, false
	}
	row = rune(seatID[0])
	col, err := strconv.Atoi(seatID[1:])
	if err != nil || col < 1 {
		return 0, 0, false
	}
	// Atoi tolerates "+7" and leading zeros. Each seat has exactly one
	// identifier, so "A01" must not resolve to the same seat as "A1".
	if seatID != fmt.Sprintf("%c%d", row, col) {
		return 0, 0, false
	}

	switch {
	case row >= mainFloorFirstRow && row <= mainFloorLastRow:
		ok = col <= mainFloorColumns
	case row == 'M' || row == 'N':
		ok = col <= balconyWideColumns
	case row == 'O':
		ok = col <= balconyNarrowColumns
	default:
		ok = false
	}
	if !ok {
		return 0, 0, false
	}
	return row, col, true
}
