package errs

import (
	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches a sentinel so callers can match with Is while the original
// cause stays in the chain.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is matches target anywhere in err's chain, including sentinels attached
// with Mark. Marks are invisible to the standard library errors.Is, so every
// sentinel check on errors from this package must go through here.
func Is(err, target error) bool {
	return cr.Is(err, target)
}
