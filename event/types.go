package event

import (
	"github.com/moffa90/go-reboottrack/reason"
	"github.com/moffa90/go-reboottrack/region"
)

// Info is the reboot information carried by one event.
type Info struct {
	// Reason is the reconciled reboot reason
	Reason reason.Reason

	// RegReason is the reason mapped from the hardware reset register
	RegReason reason.Reason

	// ResetReasonReg is the raw hardware reset register value
	ResetReasonReg uint32

	// CrashCount is the crash counter after reconciliation
	CrashCount uint32

	// Unexpected reports whether the reboot was classified unexpected
	Unexpected bool

	// CoredumpSaved reports whether a coredump was captured
	CoredumpSaved bool

	// HasRegisters reports whether Registers is present.
	// Registers are only serialized for crash reasons.
	HasRegisters bool

	// Registers is the register state captured at the fault
	Registers region.Registers
}

// includesRegisters reports whether Append serializes the register snapshot.
func (i Info) includesRegisters() bool {
	return i.HasRegisters && i.Reason.IsCrash()
}

// Size returns the number of bytes Append produces for i.
// It never exceeds WorstCaseSize.
func (i Info) Size() int {
	if i.includesRegisters() {
		return BaseSize + registersSize
	}
	return BaseSize
}
