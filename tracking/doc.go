// Package tracking records why a device reset and reports it after the reset.
//
// # Overview
//
// Reboot tracking survives the very event it observes. Before a reset the
// reason is latched into a small region of RAM that the firmware never
// initializes; on the next boot the latched reason is reconciled with the
// hardware reset-cause register, the reboot is classified as expected or
// unexpected, a crash counter is updated, and one compact event is queued
// for upload.
//
// # Basic Usage
//
// The host owns the persistent region and passes it to Boot once at startup:
//
//	// Placed in a NOLOAD/.noinit section by the linker script
//	var rebootRegion [region.Size]byte
//
//	tracker := tracking.New(tracking.WithMapper(platformMapper))
//	err := tracker.Boot(rebootRegion[:], &tracking.BootupInfo{
//	    ResetReasonReg: readResetCauseRegister(),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Before any intentional reset, and from every fault handler:
//
//	_ = tracker.MarkResetImminent(reason.FirmwareUpdate, nil)
//
//	_ = tracker.MarkResetImminent(reason.HardFault, &region.Registers{PC: pc, LR: lr})
//	if saveCoredump() {
//	    _ = tracker.MarkCoredumpSaved()
//	}
//
// Later, from normal task context:
//
//	if err := tracker.CollectResetInfo(store); err != nil {
//	    // sink full, retry after the next upload
//	}
//
// # Reconciliation
//
// A reboot is unexpected unless the known reasons are all expected. When the
// register reason is Unknown the software reason decides, and when no
// software reason was latched the register reason decides. Reboots with no
// information at all count as unexpected.
//
// # Crash Loops
//
// Every unexpected reboot increments a persisted, saturating counter. The
// application reads it with CrashCount, and calls ResetCrashCount once it
// considers the device stable again:
//
//	if loop, _ := tracker.CrashLoopDetected(5); loop {
//	    enterSafeMode()
//	}
//
// # Concurrency
//
// Region mutations run inside a critical.Section. The default is a mutex;
// bare-metal targets pass an interrupt-mask section with
// WithCriticalSection. MarkResetImminent and MarkCoredumpSaved do not log
// and do not allocate, so they are usable from fault handlers.
//
// # Error Handling
//
// The package provides sentinel errors and structured error types:
//   - ErrNotBooted: an operation was called before Boot
//   - ErrAlreadyBooted: Boot was called twice
//   - ErrNullArgument: a required argument was nil
//   - RegionSizeError: the region is not region.Size bytes
//   - SinkRejectedError (matches ErrSinkRejected): the event did not fit
//
// A corrupt or foreign region is never an error: it reads as "no prior
// record" so a device always boots.
package tracking
