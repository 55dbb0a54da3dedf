package event

import "fmt"

// FormatError reports a malformed serialized event.
type FormatError struct {
	// Field is the part of the event that failed validation
	Field string

	// Message describes the failure
	Message string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid reboot event %s: %s", e.Field, e.Message)
}

// IsFormatError returns true if the error is a FormatError.
func IsFormatError(err error) bool {
	_, ok := err.(*FormatError)
	return ok
}
