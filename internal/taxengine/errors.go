package taxengine

import (
	"errors"
	"fmt"
)

// Kind classifies engine failures so callers can tell a missing business from
// a broken store.
type Kind uint8

const (
	KindUnknown Kind = iota
	// KindNotFound: the business does not exist. Nothing was computed.
	KindNotFound
	// KindInvalid: the request itself is malformed (period, regime).
	KindInvalid
	// KindRateLoadFailure never aborts a calculation; it only appears in
	// Result.Warnings and logs.
	KindRateLoadFailure
	// KindStoreFailure: a record fetch failed. The calculation is abandoned
	// rather than computed on partial data.
	KindStoreFailure
	// KindPersistFailure: inserting the calculation failed. Not retried.
	KindPersistFailure
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalid:
		return "invalid"
	case KindRateLoadFailure:
		return "rate_load_failure"
	case KindStoreFailure:
		return "store_failure"
	case KindPersistFailure:
		return "persist_failure"
	default:
		return "unknown"
	}
}

var (
	ErrBusinessNotFound = errors.New("business not found")
	ErrInvalidPeriod    = errors.New("invalid period")
	ErrUnknownRegime    = errors.New("unknown tax regime")
)

// Error is returned by every Engine operation that fails
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("taxengine: %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Transient reports whether retrying the whole operation later may succeed.
// The store signals this by returning an error that implements
// interface{ Transient() bool }.
func (e *Error) Transient() bool {
	var t interface{ Transient() bool }
	if errors.As(e.Err, &t) {
		return t.Transient()
	}
	return false
}

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// IsKind reports whether err is an engine error of the given kind
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// IsTransient reports whether err is an engine error the caller may retry
func IsTransient(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Transient()
}
