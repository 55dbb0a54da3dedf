package tracking

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/moffa90/go-reboottrack/event"
	"github.com/moffa90/go-reboottrack/reason"
	"github.com/moffa90/go-reboottrack/region"
)

// BootupInfo is optional information about the current boot supplied by the host.
type BootupInfo struct {
	// ResetReasonReg is the raw value of the MCU reset-cause register,
	// or 0 if it is not available
	ResetReasonReg uint32

	// ResetReason is used when no reason was latched before the reset,
	// for example when a bootloader or another MCU passes the cause along.
	// Leave as reason.Unknown if there is no such information.
	ResetReason reason.Reason
}

// Reasons holds the two independent views of why the device rebooted.
type Reasons struct {
	// RebootRegReason is the reason mapped from the hardware reset register
	RebootRegReason reason.Reason

	// PriorStoredReason is the reason latched by software before the reset,
	// or the BootupInfo fallback
	PriorStoredReason reason.Reason
}

// Snapshot is the reboot information reconciled by Boot.
// It is computed once per power cycle and is read-only afterwards.
type Snapshot struct {
	Reasons

	// UnexpectedOccurred reports whether the reboot was classified unexpected
	UnexpectedOccurred bool

	// CrashCount is the crash counter after reconciliation
	CrashCount uint32

	// ResetReasonReg is the raw reset register value passed to Boot
	ResetReasonReg uint32

	// Registers is the register state latched with PriorStoredReason.
	// Only meaningful when HasRegisters is true.
	Registers region.Registers

	// HasRegisters reports whether Registers was captured
	HasRegisters bool

	// CoredumpSaved reports whether a coredump was captured before the reset
	CoredumpSaved bool
}

// Reason returns the single reported reboot reason: the software reason
// when one is known, otherwise the register reason.
func (s Snapshot) Reason() reason.Reason {
	if s.PriorStoredReason != reason.Unknown {
		return s.PriorStoredReason
	}
	return s.RebootRegReason
}

func (s Snapshot) eventInfo() event.Info {
	return event.Info{
		Reason:         s.Reason(),
		RegReason:      s.RebootRegReason,
		ResetReasonReg: s.ResetReasonReg,
		CrashCount:     s.CrashCount,
		Unexpected:     s.UnexpectedOccurred,
		CoredumpSaved:  s.CoredumpSaved,
		HasRegisters:   s.HasRegisters,
		Registers:      s.Registers,
	}
}

// Tracker records why the device reset, persists it across the reset in a
// host-supplied region, and exports it as an event on the next boot.
//
// A Tracker starts NotBooted. Boot moves it to Booted permanently; every
// other operation fails with ErrNotBooted until then.
//
// MarkResetImminent and MarkCoredumpSaved may be called from any goroutine
// or fault handler. CollectResetInfo must be called from normal context.
type Tracker struct {
	config Config
	region []byte

	booting atomic.Bool
	booted  atomic.Bool
	latched atomic.Bool
	count   atomic.Uint32

	snapshot Snapshot

	exportMu sync.Mutex
	exported bool
	buf      [event.WorstCaseSize]byte
}

// New creates a Tracker with the given options.
// The tracker does nothing until Boot is called.
//
// Example:
//
//	tracker := tracking.New(
//	    tracking.WithMapper(platformMapper),
//	    tracking.WithLogger(myLogger),
//	)
func New(opts ...Option) *Tracker {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Tracker{
		config: cfg,
	}
}

// Boot reconciles the persisted reboot record with the hardware reset
// register and must be called exactly once, before any other operation:
//  1. Decode the region; a latched reason becomes PriorStoredReason and is consumed
//  2. Without a latched reason, fall back to info.ResetReason
//  3. Map info.ResetReasonReg through the configured Mapper
//  4. Classify the reboot as expected or unexpected
//  5. Count unexpected reboots (saturating) if a valid record was found
//  6. Write the region back with the pending slot cleared
//
// mem must be exactly region.Size bytes of memory that survives a reset.
// A region holding garbage, a foreign layout or a torn write is treated as
// "no prior record"; Boot never fails because of region content.
//
// Example:
//
//	err := tracker.Boot(noinitRegion[:], &tracking.BootupInfo{
//	    ResetReasonReg: readResetCauseRegister(),
//	})
func (t *Tracker) Boot(mem []byte, info *BootupInfo) error {
	if mem == nil {
		return fmt.Errorf("persistent region: %w", ErrNullArgument)
	}
	if len(mem) != region.Size {
		return &RegionSizeError{Got: len(mem), Want: region.Size}
	}
	if !t.booting.CompareAndSwap(false, true) {
		return ErrAlreadyBooted
	}

	var raw uint32
	fallback := reason.Unknown
	if info != nil {
		raw = info.ResetReasonReg
		fallback = info.ResetReason
	}

	regReason := reason.Unknown
	if t.config.Mapper != nil {
		regReason = t.config.Mapper.Map(raw)
	}

	t.region = mem
	t.latched.Store(false)

	snap := Snapshot{
		Reasons: Reasons{
			RebootRegReason:   regReason,
			PriorStoredReason: reason.Unknown,
		},
		ResetReasonReg: raw,
	}

	st := t.config.Section.Enter()

	rec, valid := region.Decode(mem)
	if rec.Pending() {
		snap.PriorStoredReason = reason.Reason(rec.PendingReason)
		snap.Registers = rec.Registers
		snap.HasRegisters = rec.HasRegisters
		snap.CoredumpSaved = rec.CoredumpSaved
		rec.ClearPending()
	} else if fallback != reason.Unknown {
		snap.PriorStoredReason = fallback
	}

	snap.UnexpectedOccurred = reason.Classify(snap.RebootRegReason, snap.PriorStoredReason)

	// A region without a valid record has no counter yet: it starts at zero.
	if snap.UnexpectedOccurred && valid && rec.CrashCount < math.MaxUint32 {
		rec.CrashCount++
	}
	rec.ResetReasonReg = raw
	snap.CrashCount = rec.CrashCount

	// mem was length-checked above, Encode cannot fail
	_ = region.Encode(rec, mem)

	t.config.Section.Exit(st)

	t.snapshot = snap
	t.count.Store(snap.CrashCount)
	t.booted.Store(true)

	if !valid {
		t.logDebug("no valid reboot record, starting fresh")
	}

	t.logInfo("reboot reconciled",
		"reason", snap.Reason().String(),
		"reg_reason", snap.RebootRegReason.String(),
		"prior_reason", snap.PriorStoredReason.String(),
		"reset_reg", fmt.Sprintf("0x%08X", raw),
		"unexpected", snap.UnexpectedOccurred,
		"crash_count", snap.CrashCount,
	)

	if t.config.CrashLoopThreshold > 0 && snap.CrashCount >= t.config.CrashLoopThreshold {
		t.logError("crash loop detected",
			"crash_count", snap.CrashCount,
			"threshold", t.config.CrashLoopThreshold,
		)
	}

	return nil
}

// Booted reports whether Boot has completed.
func (t *Tracker) Booted() bool {
	return t.booted.Load()
}

// RebootReason returns the register and software reasons for the last reboot.
func (t *Tracker) RebootReason() (Reasons, error) {
	if !t.booted.Load() {
		return Reasons{}, ErrNotBooted
	}
	return t.snapshot.Reasons, nil
}

// UnexpectedRebootOccurred reports whether the last reboot was unexpected.
func (t *Tracker) UnexpectedRebootOccurred() (bool, error) {
	if !t.booted.Load() {
		return false, ErrNotBooted
	}
	return t.snapshot.UnexpectedOccurred, nil
}

// Snapshot returns the full reconciled reboot information.
func (t *Tracker) Snapshot() (Snapshot, error) {
	if !t.booted.Load() {
		return Snapshot{}, ErrNotBooted
	}
	return t.snapshot, nil
}

// logDebug logs a debug message if a logger is configured.
func (t *Tracker) logDebug(msg string, keysAndValues ...interface{}) {
	if t.config.Logger != nil {
		t.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (t *Tracker) logInfo(msg string, keysAndValues ...interface{}) {
	if t.config.Logger != nil {
		t.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (t *Tracker) logError(msg string, keysAndValues ...interface{}) {
	if t.config.Logger != nil {
		t.config.Logger.Error(msg, keysAndValues...)
	}
}
