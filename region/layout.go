package region

// Size is the exact size in bytes of the persistent region.
// The host must reserve this many bytes in memory that is not
// initialized by the bootloader or the C/Go runtime.
const Size = 64

// Record header constants.
const (
	// Magic marks a region written by this package ("RTBK" little-endian)
	Magic uint32 = 0x4B425452

	// Version is the layout version written by Encode.
	// Regions carrying any other version decode as "no record".
	Version = 1

	// NotSet is the pending reason value meaning "nothing latched".
	// It is the all-ones pattern so erased or 0xFF-filled memory reads as empty.
	NotSet uint32 = 0xFFFFFFFF
)

// Byte layout. All multi-byte fields are little-endian.
//
//	[MAGIC(4)][VERSION(1)][FLAGS(1)][CRC16(2)]
//	[PENDING_REASON(4)][PC(4)][LR(4)][CRASH_COUNT(4)][RESET_REG(4)][RESERVED(4)]
//	[UNUSED(32)]
const (
	OffsetMagic         = 0
	OffsetVersion       = 4
	OffsetFlags         = 5
	OffsetChecksum      = 6
	OffsetPendingReason = 8
	OffsetPC            = 12
	OffsetLR            = 16
	OffsetCrashCount    = 20
	OffsetResetReg      = 24
	OffsetReserved      = 28

	// CoveredEnd is the end (exclusive) of the bytes covered by the checksum
	CoveredEnd = 32
)

// Flag bits.
const (
	// FlagCoredumpSaved is set once a coredump was captured for the pending reason
	FlagCoredumpSaved = 1 << 0

	// FlagRegistersValid is set when PC and LR hold a captured snapshot
	FlagRegistersValid = 1 << 1

	// knownFlags masks every flag understood by this version
	knownFlags = FlagCoredumpSaved | FlagRegistersValid
)
