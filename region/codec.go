package region

import (
	"encoding/binary"
	"fmt"
)

// Encode writes rec into buf using the fixed region layout and recomputes
// the checksum. buf must be at least Size bytes long.
//
// Encode does not synchronize. Callers that share buf with interrupt or
// fault context must hold a critical section around the read-modify-write.
func Encode(rec Record, buf []byte) error {
	if len(buf) < Size {
		return fmt.Errorf("region buffer too short: got %d bytes, need %d", len(buf), Size)
	}

	var flags byte
	if rec.CoredumpSaved {
		flags |= FlagCoredumpSaved
	}
	if rec.HasRegisters {
		flags |= FlagRegistersValid
	}

	binary.LittleEndian.PutUint32(buf[OffsetMagic:], Magic)
	buf[OffsetVersion] = Version
	buf[OffsetFlags] = flags
	binary.LittleEndian.PutUint32(buf[OffsetPendingReason:], rec.PendingReason)
	binary.LittleEndian.PutUint32(buf[OffsetPC:], rec.Registers.PC)
	binary.LittleEndian.PutUint32(buf[OffsetLR:], rec.Registers.LR)
	binary.LittleEndian.PutUint32(buf[OffsetCrashCount:], rec.CrashCount)
	binary.LittleEndian.PutUint32(buf[OffsetResetReg:], rec.ResetReasonReg)

	for i := OffsetReserved; i < Size; i++ {
		buf[i] = 0
	}

	binary.LittleEndian.PutUint16(buf[OffsetChecksum:], Checksum(buf))

	return nil
}

// Decode reads a record from buf.
//
// ok is false when buf is too short, the magic or version does not match,
// unknown flags are set, or the checksum fails. All of these mean the same
// thing to the caller: there is no usable prior record.
func Decode(buf []byte) (rec Record, ok bool) {
	if len(buf) < Size {
		return Empty(), false
	}

	if binary.LittleEndian.Uint32(buf[OffsetMagic:]) != Magic {
		return Empty(), false
	}

	if buf[OffsetVersion] != Version {
		return Empty(), false
	}

	flags := buf[OffsetFlags]
	if flags&^knownFlags != 0 {
		return Empty(), false
	}

	if binary.LittleEndian.Uint16(buf[OffsetChecksum:]) != Checksum(buf) {
		return Empty(), false
	}

	rec = Record{
		PendingReason: binary.LittleEndian.Uint32(buf[OffsetPendingReason:]),
		Registers: Registers{
			PC: binary.LittleEndian.Uint32(buf[OffsetPC:]),
			LR: binary.LittleEndian.Uint32(buf[OffsetLR:]),
		},
		HasRegisters:   flags&FlagRegistersValid != 0,
		CoredumpSaved:  flags&FlagCoredumpSaved != 0,
		CrashCount:     binary.LittleEndian.Uint32(buf[OffsetCrashCount:]),
		ResetReasonReg: binary.LittleEndian.Uint32(buf[OffsetResetReg:]),
	}

	return rec, true
}
