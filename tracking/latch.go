package tracking

import (
	"github.com/moffa90/go-reboottrack/reason"
	"github.com/moffa90/go-reboottrack/region"
)

// MarkResetImminent records that a reset is about to happen and why.
//
// Call it from fault handlers, assert paths, and before intentional resets
// such as completing a firmware update:
//
//	_ = tracker.MarkResetImminent(reason.FirmwareUpdate, nil)
//	systemReset()
//
// Only the first call per boot cycle is recorded; later calls are no-ops.
// A fault raised while handling an earlier fault therefore cannot replace
// the original cause. Reasons that are neither core nor custom are recorded
// as reason.Error.
//
// regs may be nil when no register state is available.
//
// Safe for concurrent and re-entrant use. It does not log and does not allocate.
func (t *Tracker) MarkResetImminent(r reason.Reason, regs *region.Registers) error {
	if !t.booted.Load() {
		return ErrNotBooted
	}
	if !r.Valid() {
		r = reason.Error
	}

	if !t.latched.CompareAndSwap(false, true) {
		return nil
	}

	st := t.config.Section.Enter()
	defer t.config.Section.Exit(st)

	rec, ok := region.Decode(t.region)
	if !ok {
		rec = region.Empty()
		rec.CrashCount = t.count.Load()
	}
	if rec.Pending() {
		return nil
	}

	rec.PendingReason = uint32(r)
	rec.CoredumpSaved = false
	if regs != nil {
		rec.Registers = *regs
		rec.HasRegisters = true
	}
	_ = region.Encode(rec, t.region)

	return nil
}

// MarkCoredumpSaved flags that a coredump was captured for the latched reason.
// It is called by the coredump writer once the capture completed and is
// ignored when no reason has been latched in this boot cycle.
func (t *Tracker) MarkCoredumpSaved() error {
	if !t.booted.Load() {
		return ErrNotBooted
	}
	if !t.latched.Load() {
		return nil
	}

	st := t.config.Section.Enter()
	defer t.config.Section.Exit(st)

	rec, ok := region.Decode(t.region)
	if !ok || !rec.Pending() {
		return nil
	}
	rec.CoredumpSaved = true
	_ = region.Encode(rec, t.region)

	return nil
}

// Latched reports whether a reset reason was recorded in this boot cycle.
// Fault handlers can use it to skip duplicate work on a nested fault.
func (t *Tracker) Latched() bool {
	return t.latched.Load()
}
