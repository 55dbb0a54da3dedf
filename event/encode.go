package event

import (
	"encoding/binary"

	"github.com/moffa90/go-reboottrack/region"
)

// Append serializes info and appends it to dst.
//
// Event structure:
//
//	[VERSION][FLAGS][REASON(4)][REG_REASON(4)][RESET_REG(4)][CRASH_COUNT(4)]([PC(4)][LR(4)])[CRC16(2)]
//
// PC and LR are present only when the reason is a crash and a register
// snapshot was captured. The CRC-16-CCITT covers every preceding byte of the
// event. Append does not allocate when cap(dst)-len(dst) >= WorstCaseSize.
func Append(dst []byte, info Info) []byte {
	start := len(dst)

	var flags byte
	if info.CoredumpSaved {
		flags |= FlagCoredumpSaved
	}
	if info.Unexpected {
		flags |= FlagUnexpected
	}
	withRegs := info.includesRegisters()
	if withRegs {
		flags |= FlagRegisters
	}

	dst = append(dst, FormatVersion, flags)
	dst = binary.LittleEndian.AppendUint32(dst, uint32(info.Reason))
	dst = binary.LittleEndian.AppendUint32(dst, uint32(info.RegReason))
	dst = binary.LittleEndian.AppendUint32(dst, info.ResetReasonReg)
	dst = binary.LittleEndian.AppendUint32(dst, info.CrashCount)

	if withRegs {
		dst = binary.LittleEndian.AppendUint32(dst, info.Registers.PC)
		dst = binary.LittleEndian.AppendUint32(dst, info.Registers.LR)
	}

	checksum := region.CRC16(dst[start:])
	dst = binary.LittleEndian.AppendUint16(dst, checksum)

	return dst
}
