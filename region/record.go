package region

// Registers is the register state captured when a reset was flagged.
type Registers struct {
	// PC is the program counter (mepc on RISC-V)
	PC uint32

	// LR is the link register (ra on RISC-V)
	LR uint32
}

// Record is the decoded content of the persistent region.
type Record struct {
	// PendingReason is the reason latched for the next reset, or NotSet
	PendingReason uint32

	// Registers holds the captured register state.
	// Only meaningful when HasRegisters is true.
	Registers Registers

	// HasRegisters reports whether Registers was captured
	HasRegisters bool

	// CoredumpSaved reports whether a coredump was captured for PendingReason
	CoredumpSaved bool

	// CrashCount is the number of consecutive unexpected reboots
	CrashCount uint32

	// ResetReasonReg is the raw reset-cause register seen at the last boot
	ResetReasonReg uint32
}

// Empty returns the record equivalent to "no prior record".
func Empty() Record {
	return Record{PendingReason: NotSet}
}

// Pending reports whether a reason is latched.
func (r Record) Pending() bool {
	return r.PendingReason != NotSet
}

// ClearPending drops the latched reason together with the data that
// only describes it. CrashCount and ResetReasonReg are kept.
func (r *Record) ClearPending() {
	r.PendingReason = NotSet
	r.Registers = Registers{}
	r.HasRegisters = false
	r.CoredumpSaved = false
}
