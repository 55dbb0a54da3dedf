// Package eventstore provides a bounded in-memory event queue that satisfies
// the tracking.Sink contract.
//
// It is the reference sink for tests and hosted programs. Firmware usually
// backs the queue with a statically allocated RAM or flash region sized from
// event.WorstCaseSize:
//
//	store := eventstore.New(eventstore.SizeFor(4, event.WorstCaseSize))
//	if err := tracker.CollectResetInfo(store); err != nil {
//	    // retry later
//	}
//	for _, ev := range store.Drain() {
//	    upload(ev)
//	}
package eventstore
