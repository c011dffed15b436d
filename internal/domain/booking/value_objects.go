package booking

import (
	"errors"
	"strings"
)

var ErrInvalidEmail = errors.New("invalid buyer email")

// Email identifies the buyer. The value arrives already verified by the
// identity provider; only its shape is checked here.
type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || !strings.Contains(trimmed, "@") {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: strings.ToLower(trimmed)}, nil
}

func (e Email) String() string {
	return e.value
}

func (e Email) IsEmpty() bool {
	return e.value == ""
}

// BuyerName is the optional full name captured by the checkout form.
type BuyerName struct {
	value string
}

func NewBuyerName(value string) BuyerName {
	return BuyerName{value: strings.TrimSpace(value)}
}

func (n BuyerName) String() string {
	return n.value
}

func (n BuyerName) IsEmpty() bool {
	return n.value == ""
}
