package errs

import (
	"errors"

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

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

// Mark attaches markErr as an identity of err so errors.Is(err, markErr)
// holds while the original cause stays inspectable through the Unwrap
// chain (errors.As keeps finding the cause's concrete type).
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &markedError{cause: err, mark: markErr}
}

type markedError struct {
	cause error
	mark  error
}

func (e *markedError) Error() string { return e.cause.Error() }

func (e *markedError) Unwrap() error { return e.cause }

// Is matches against the mark; the cause is matched separately by
// errors.Is walking Unwrap.
func (e *markedError) Is(target error) bool { return errors.Is(e.mark, target) }
