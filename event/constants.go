package event

// FormatVersion is the reboot event layout version written by Append.
const FormatVersion = 1

// Field sizes in bytes.
const (
	versionSize   = 1
	flagsSize     = 1
	reasonSize    = 4
	regReasonSize = 4
	resetRegSize  = 4
	crashSize     = 4
	registersSize = 8
	checksumSize  = 2
)

// Event sizes.
const (
	// BaseSize is the size of an event without a register snapshot:
	// VERSION(1) + FLAGS(1) + REASON(4) + REG_REASON(4) + RESET_REG(4) + CRASH_COUNT(4) + CRC16(2)
	BaseSize = versionSize + flagsSize + reasonSize + regReasonSize + resetRegSize + crashSize + checksumSize

	// WorstCaseSize is the largest event Append can produce.
	// Sinks sized to this value can always accept one reboot event.
	WorstCaseSize = BaseSize + registersSize
)

// Flag bits.
const (
	// FlagCoredumpSaved is set when a coredump was captured for the reboot
	FlagCoredumpSaved = 1 << 0

	// FlagRegisters is set when PC and LR follow the fixed fields
	FlagRegisters = 1 << 1

	// FlagUnexpected is set when the reboot was classified unexpected
	FlagUnexpected = 1 << 2

	knownFlags = FlagCoredumpSaved | FlagRegisters | FlagUnexpected
)
