// Package event serializes reboot information into compact, bounded records
// for an event-storage queue.
//
// # Event Layout
//
//	[VERSION][FLAGS][REASON(4)][REG_REASON(4)][RESET_REG(4)][CRASH_COUNT(4)]([PC(4)][LR(4)])[CRC16(2)]
//
// Where:
//   - VERSION = FormatVersion
//   - FLAGS bit0 = coredump saved, bit1 = registers present, bit2 = unexpected
//   - multi-byte fields are little-endian
//   - CRC16 = CRC-16-CCITT over all preceding bytes
//
// # Sizing
//
// Every event is either BaseSize or WorstCaseSize bytes. WorstCaseSize is a
// constant so storage can be sized statically:
//
//	var storage [4 * event.WorstCaseSize]byte
//
// Append writes into a caller-provided buffer and does not allocate when the
// buffer has WorstCaseSize bytes of spare capacity:
//
//	var buf [event.WorstCaseSize]byte
//	b := event.Append(buf[:0], info)
package event
