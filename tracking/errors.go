package tracking

import (
	"errors"
	"fmt"
)

var (
	// ErrNotBooted is returned by every operation called before Boot
	ErrNotBooted = errors.New("reboot tracking not booted")

	// ErrAlreadyBooted is returned by a second call to Boot
	ErrAlreadyBooted = errors.New("reboot tracking already booted")

	// ErrNullArgument is returned when a required argument is nil
	ErrNullArgument = errors.New("required argument is nil")

	// ErrSinkRejected matches every SinkRejectedError
	ErrSinkRejected = errors.New("event sink rejected write")
)

// RegionSizeError indicates that the persistent region has the wrong size.
type RegionSizeError struct {
	Got  int
	Want int
}

func (e *RegionSizeError) Error() string {
	return fmt.Sprintf("persistent region must be exactly %d bytes, got %d", e.Want, e.Got)
}

// SinkRejectedError indicates that the event sink could not store the
// reboot event. The event is kept and the export can be retried.
type SinkRejectedError struct {
	// Need is the size of the event in bytes
	Need int

	// Available is the capacity the sink reported, or -1 if unknown
	Available int

	// Err is the error returned by the sink, if any
	Err error
}

func (e *SinkRejectedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("event sink rejected %d byte reboot event: %v", e.Need, e.Err)
	}
	return fmt.Sprintf("event sink rejected %d byte reboot event: %d bytes available", e.Need, e.Available)
}

// Is reports whether target is ErrSinkRejected.
func (e *SinkRejectedError) Is(target error) bool {
	return target == ErrSinkRejected
}

// Unwrap returns the sink error.
func (e *SinkRejectedError) Unwrap() error {
	return e.Err
}
