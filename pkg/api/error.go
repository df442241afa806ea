package api

import "fmt"

// unknownIssue is substituted when an Error is constructed with no message.
const unknownIssue = "An unknown API issue was encountered."

// Error is the single error kind reported at the API boundary.
//
// It condenses every failure category (transport, malformed envelope, schema
// violation, projection failure) into one type. If calling code runs into any
// API failure there is rarely anything it can do beyond reporting it, so one
// error kind is easier to handle than many.
type Error struct {
	Message string // human-readable description of the failure
	Cause   error  // underlying error, kept for diagnostic chaining (optional)
}

// Error implements the error interface. The cause is deliberately not part of
// the message contract; use errors.Unwrap for diagnostics.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Errorf creates an Error with a formatted message.
func Errorf(format string, args ...any) *Error {
	return &Error{Message: nonEmpty(fmt.Sprintf(format, args...))}
}

// Wrap creates an Error with a formatted message wrapping an existing cause.
func Wrap(cause error, format string, args ...any) *Error {
	return &Error{Message: nonEmpty(fmt.Sprintf(format, args...)), Cause: cause}
}

func nonEmpty(msg string) string {
	if msg == "" {
		return unknownIssue
	}
	return msg
}
