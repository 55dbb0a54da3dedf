package tracking

import (
	"fmt"
	"io"

	"github.com/moffa90/go-reboottrack/event"
)

// Sink is the event-storage queue reboot events are appended to.
// Write must store p as one event or store nothing and return an error.
type Sink interface {
	Write(p []byte) (int, error)
}

// CapacityReporter is implemented by sinks that know their remaining space.
// The tracker checks it before writing so a full sink is never asked to
// store a partial event.
type CapacityReporter interface {
	Available() int
}

// WorstCaseStorageSize returns the largest number of bytes CollectResetInfo
// ever writes. It is a constant, independent of the current reboot state,
// so sink storage can be sized statically.
func WorstCaseStorageSize() int {
	return event.WorstCaseSize
}

// CollectResetInfo serializes the reboot information reconciled at boot and
// appends it to sink.
//
// The event is written once per boot cycle. Calls after a successful export
// return nil without touching sink. When the sink rejects the event a
// *SinkRejectedError is returned and the next call retries with identical
// bytes.
//
// Must not be called from interrupt or fault context.
func (t *Tracker) CollectResetInfo(sink Sink) error {
	if sink == nil {
		return fmt.Errorf("event sink: %w", ErrNullArgument)
	}
	if !t.booted.Load() {
		return ErrNotBooted
	}

	t.exportMu.Lock()
	defer t.exportMu.Unlock()

	if t.exported {
		return nil
	}

	data := event.Append(t.buf[:0], t.snapshot.eventInfo())

	available := -1
	if cr, ok := sink.(CapacityReporter); ok {
		available = cr.Available()
		if available < len(data) {
			t.logDebug("event sink full",
				"need", len(data),
				"available", available,
			)
			return &SinkRejectedError{Need: len(data), Available: available}
		}
	}

	n, err := sink.Write(data)
	if err == nil && n != len(data) {
		err = io.ErrShortWrite
	}
	if err != nil {
		t.logError("reboot event write failed", "error", err.Error())
		return &SinkRejectedError{Need: len(data), Available: available, Err: err}
	}

	t.exported = true

	t.logInfo("reboot event collected",
		"reason", t.snapshot.Reason().String(),
		"bytes", len(data),
	)

	return nil
}
