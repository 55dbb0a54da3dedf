package event

import (
	"encoding/binary"
	"fmt"

	"github.com/moffa90/go-reboottrack/reason"
	"github.com/moffa90/go-reboottrack/region"
)

// Decode parses a single serialized event.
// Validates version, flags, length and checksum.
func Decode(b []byte) (Info, error) {
	if len(b) < BaseSize {
		return Info{}, &FormatError{
			Field:   "length",
			Message: fmt.Sprintf("got %d bytes, minimum is %d", len(b), BaseSize),
		}
	}

	if b[0] != FormatVersion {
		return Info{}, &FormatError{
			Field:   "version",
			Message: fmt.Sprintf("got %d, expected %d", b[0], FormatVersion),
		}
	}

	flags := b[1]
	if flags&^knownFlags != 0 {
		return Info{}, &FormatError{
			Field:   "flags",
			Message: fmt.Sprintf("unknown bits set: 0x%02X", flags&^knownFlags),
		}
	}

	expectedLen := BaseSize
	if flags&FlagRegisters != 0 {
		expectedLen += registersSize
	}
	if len(b) != expectedLen {
		return Info{}, &FormatError{
			Field:   "length",
			Message: fmt.Sprintf("got %d bytes, expected %d", len(b), expectedLen),
		}
	}

	checksumExpected := binary.LittleEndian.Uint16(b[len(b)-checksumSize:])
	checksumActual := region.CRC16(b[:len(b)-checksumSize])
	if checksumExpected != checksumActual {
		return Info{}, &FormatError{
			Field:   "checksum",
			Message: fmt.Sprintf("got 0x%04X, expected 0x%04X", checksumActual, checksumExpected),
		}
	}

	info := Info{
		Reason:         reason.Reason(binary.LittleEndian.Uint32(b[2:6])),
		RegReason:      reason.Reason(binary.LittleEndian.Uint32(b[6:10])),
		ResetReasonReg: binary.LittleEndian.Uint32(b[10:14]),
		CrashCount:     binary.LittleEndian.Uint32(b[14:18]),
		Unexpected:     flags&FlagUnexpected != 0,
		CoredumpSaved:  flags&FlagCoredumpSaved != 0,
	}

	if flags&FlagRegisters != 0 {
		info.HasRegisters = true
		info.Registers = region.Registers{
			PC: binary.LittleEndian.Uint32(b[18:22]),
			LR: binary.LittleEndian.Uint32(b[22:26]),
		}
	}

	return info, nil
}
