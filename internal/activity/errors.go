package activity

import "errors"

// Kind classifies roster failures so transports can map them to their own
// status vocabulary without string matching.
type Kind string

const (
	// KindNotFound marks lookups for activities the registry does not hold.
	KindNotFound Kind = "not_found"
	// KindConflict marks roster mutations that contradict current membership.
	KindConflict Kind = "conflict"
	// KindInvalidInput marks requests rejected before touching the registry.
	KindInvalidInput Kind = "invalid_input"
)

// Error is a classified domain error with a caller-facing message.
type Error struct {
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (e Error) Error() string {
	return e.Message
}

// E builds a classified error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// KindOf extracts the classification from err, or "" for foreign errors.
func KindOf(err error) Kind {
	var domainErr Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return ""
}

// Roster failures reuse fixed messages so clients see stable wording.
var (
	// ErrNotFound reports an activity name missing from the registry.
	ErrNotFound = E(KindNotFound, "Activity not found")
	// ErrAlreadySignedUp reports a duplicate signup for the same activity.
	ErrAlreadySignedUp = E(KindConflict, "Student is already signed up")
	// ErrNotSignedUp reports an unregister for a student not on the roster.
	ErrNotSignedUp = E(KindConflict, "Student is not signed up for this activity")
	// ErrEmptyEmail reports a blank student email.
	ErrEmptyEmail = E(KindInvalidInput, "Email is required")
)
