// Package region encodes and decodes the persistent reboot record.
//
// The record lives in a small block of RAM that survives a CPU reset because
// neither the bootloader nor the runtime initializes it. After a cold power-on
// the block holds arbitrary bits, so every read is validated before use:
//
//	Region layout (Size = 64 bytes, little-endian):
//
//	[MAGIC(4)][VERSION(1)][FLAGS(1)][CRC16(2)]
//	[PENDING_REASON(4)][PC(4)][LR(4)][CRASH_COUNT(4)][RESET_REG(4)][RESERVED(4)]
//	[UNUSED(32)]
//
// Where:
//   - MAGIC = 0x4B425452
//   - VERSION = 1
//   - FLAGS bit0 = coredump saved, bit1 = registers valid
//   - CRC16 = CRC-16-CCITT over bytes [0,6) and [8,32)
//   - PENDING_REASON = NotSet (0xFFFFFFFF) when nothing is latched
//
// Decode never fails loudly. A wrong magic, an unknown version or a checksum
// mismatch all decode as "no record", the same as a device that never ran
// this firmware:
//
//	rec, ok := region.Decode(buf)
//	if !ok {
//	    rec = region.Empty()
//	}
//
// The layout is a stable contract between firmware versions. Any change to it
// must bump Version.
package region
