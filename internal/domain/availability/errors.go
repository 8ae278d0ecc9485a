package availability

import "errors"

// Kind identifies one validation failure. Hosts branch on it to render a
// field-specific or toast-style message; the constants double as the wire
// vocabulary of the HTTP surface.
type Kind string

const (
	KindMissingDates       Kind = "MISSING_DATES"
	KindPastCheckIn        Kind = "PAST_CHECK_IN"
	KindInvalidOrder       Kind = "INVALID_ORDER"
	KindGuestCountExceeded Kind = "GUEST_COUNT_EXCEEDED"
	KindDateConflict       Kind = "DATE_CONFLICT"
	KindRemoteError        Kind = "REMOTE_ERROR"
)

// ValidationError is a validation failure carried as a value. Validation
// stops at the first failing check, so a single kind describes the whole
// outcome.
type ValidationError struct {
	Kind  Kind
	msg   string
	cause error
}

func (e *ValidationError) Error() string { return e.msg }

func (e *ValidationError) Unwrap() error { return e.cause }

// Is lets errors.Is match any ValidationError of the same kind, including
// remote conflicts wrapped via RemoteConflict.
func (e *ValidationError) Is(target error) bool {
	other, ok := target.(*ValidationError)
	return ok && other.Kind == e.Kind
}

var (
	ErrMissingDates       = &ValidationError{Kind: KindMissingDates, msg: "availability: check-in and check-out dates are required"}
	ErrPastCheckIn        = &ValidationError{Kind: KindPastCheckIn, msg: "availability: check-in date is in the past"}
	ErrInvalidOrder       = &ValidationError{Kind: KindInvalidOrder, msg: "availability: check-out must be after check-in"}
	ErrGuestCountExceeded = &ValidationError{Kind: KindGuestCountExceeded, msg: "availability: guest count outside venue capacity"}
	ErrDateConflict       = &ValidationError{Kind: KindDateConflict, msg: "availability: dates conflict with an existing booking"}
)

// KindOf extracts the failure kind from an error, or "" when err is not a
// validation failure.
func KindOf(err error) Kind {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return ""
}
