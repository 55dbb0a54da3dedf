// Package reason defines reboot reasons and the mapping from hardware
// reset-cause registers to them.
//
// # Reasons
//
// A Reason is a stable numeric code. Core reasons below 0x8000 describe
// intentional resets; reasons at or above 0x8000 describe faults:
//
//	reason.FirmwareUpdate.IsExpected()   // true
//	reason.HardFault.IsCrash()           // true
//	reason.Unknown.IsExpected()          // false
//
// Applications can define their own reasons in two reserved ranges:
//
//	var LowBattery = reason.MustCustom(1, true)      // 0x4001, expected
//	var OverCurrent = reason.MustCustom(1, false)    // 0xC001, unexpected
//
// # Register Maps
//
// Most MCUs latch the cause of the last reset in an always-on register.
// The bit layout is platform specific, so the translation is supplied by
// the host through the Mapper interface. TableMapper covers the common
// "one bit per cause" layout and can be loaded from YAML:
//
//	default: Unknown
//	rules:
//	  - mask: 0x00000002   # DOG
//	    reason: HardwareWatchdog
//	  - mask: 0x00000004   # SREQ
//	    reason: SoftwareReset
//	  - mask: 0x00000001   # RESETPIN
//	    reason: PinReset
//
// Rules are evaluated in order and the first match wins.
package reason
