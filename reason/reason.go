package reason

import (
	"fmt"
	"strconv"
	"strings"
)

// Reason identifies why a device reset.
//
// Values below UnexpectedBase describe intentional resets (firmware update,
// user action). Values at or above UnexpectedBase describe faults. Reason
// values are persisted across resets and exported in events, so the numeric
// value of every core reason is part of the stored format and must never change.
type Reason uint32

// Expected (intentional) reboot reasons.
const (
	// Unknown means no reason could be determined
	Unknown Reason = 0x0000

	// UserShutdown is a shutdown requested by the user
	UserShutdown Reason = 0x0001

	// UserReset is a reset requested by the user
	UserReset Reason = 0x0002

	// FirmwareUpdate is a reset issued to complete a firmware update
	FirmwareUpdate Reason = 0x0003

	// LowPower is a reset caused by entering a low power state
	LowPower Reason = 0x0004

	// DebuggerHalted is a reset issued by an attached debugger
	DebuggerHalted Reason = 0x0005

	// ButtonReset is a reset triggered by a physical button
	ButtonReset Reason = 0x0006

	// PowerOnReset is a cold boot
	PowerOnReset Reason = 0x0007

	// SoftwareReset is a reset requested by software without a more specific reason
	SoftwareReset Reason = 0x0008

	// DeepSleep is a wake from deep sleep
	DeepSleep Reason = 0x0009

	// PinReset is a reset caused by the external reset pin
	PinReset Reason = 0x000A

	// SelfTest is a reset issued by a self test
	SelfTest Reason = 0x000B
)

// Unexpected (fault) reboot reasons.
const (
	// Error is an unexpected reset without a more specific cause
	Error Reason = 0x8000

	// Assert is a failed firmware assertion
	Assert Reason = 0x8001

	// BrownOutReset is a supply voltage drop
	BrownOutReset Reason = 0x8003

	// NMI is a non-maskable interrupt
	NMI Reason = 0x8004

	// HardwareWatchdog is an expired hardware watchdog
	HardwareWatchdog Reason = 0x8005

	// SoftwareWatchdog is an expired software watchdog
	SoftwareWatchdog Reason = 0x8006

	// ClockFailure is a clock source failure
	ClockFailure Reason = 0x8007

	// KernelPanic is an RTOS or kernel panic
	KernelPanic Reason = 0x8008

	// FirmwareUpdateError is a failed firmware update
	FirmwareUpdateError Reason = 0x8009

	// CAssert is a failed C library assert()
	CAssert Reason = 0x800A

	// StackOverflow is a detected stack overflow
	StackOverflow Reason = 0x800B

	// BusFault is an ARM bus fault
	BusFault Reason = 0x9100

	// MemFault is an ARM memory management fault
	MemFault Reason = 0x9200

	// UsageFault is an ARM usage fault
	UsageFault Reason = 0x9300

	// HardFault is an ARM hard fault
	HardFault Reason = 0x9400

	// Lockup is an ARM core lockup
	Lockup Reason = 0x9401
)

// Reason ranges.
const (
	// UnexpectedBase is the first reason value considered unexpected
	UnexpectedBase Reason = 0x8000

	// CustomExpectedBase is the first host-defined expected reason
	CustomExpectedBase Reason = 0x4000

	// CustomExpectedEnd is the last host-defined expected reason (inclusive)
	CustomExpectedEnd Reason = 0x7FFF

	// CustomUnexpectedBase is the first host-defined unexpected reason
	CustomUnexpectedBase Reason = 0xC000

	// CustomUnexpectedEnd is the last host-defined unexpected reason (inclusive)
	CustomUnexpectedEnd Reason = 0xFFFF

	// MaxCustomOffset is the largest offset accepted by Custom
	MaxCustomOffset = uint32(CustomExpectedEnd - CustomExpectedBase)
)

var names = map[Reason]string{
	Unknown:             "Unknown",
	UserShutdown:        "UserShutdown",
	UserReset:           "UserReset",
	FirmwareUpdate:      "FirmwareUpdate",
	LowPower:            "LowPower",
	DebuggerHalted:      "DebuggerHalted",
	ButtonReset:         "ButtonReset",
	PowerOnReset:        "PowerOnReset",
	SoftwareReset:       "SoftwareReset",
	DeepSleep:           "DeepSleep",
	PinReset:            "PinReset",
	SelfTest:            "SelfTest",
	Error:               "Error",
	Assert:              "Assert",
	BrownOutReset:       "BrownOutReset",
	NMI:                 "NMI",
	HardwareWatchdog:    "HardwareWatchdog",
	SoftwareWatchdog:    "SoftwareWatchdog",
	ClockFailure:        "ClockFailure",
	KernelPanic:         "KernelPanic",
	FirmwareUpdateError: "FirmwareUpdateError",
	CAssert:             "CAssert",
	StackOverflow:       "StackOverflow",
	BusFault:            "BusFault",
	MemFault:            "MemFault",
	UsageFault:          "UsageFault",
	HardFault:           "HardFault",
	Lockup:              "Lockup",
}

var byName = func() map[string]Reason {
	m := make(map[string]Reason, len(names))
	for r, n := range names {
		m[strings.ToLower(n)] = r
	}
	return m
}()

// Custom returns a host-defined reason.
// The offset must not exceed MaxCustomOffset.
//
// Example:
//
//	var OverTemperature = reason.MustCustom(1, false)
//	tracker.MarkResetImminent(OverTemperature, nil)
func Custom(offset uint32, expected bool) (Reason, error) {
	if offset > MaxCustomOffset {
		return Unknown, fmt.Errorf("custom reason offset %d exceeds maximum %d", offset, MaxCustomOffset)
	}
	if expected {
		return CustomExpectedBase + Reason(offset), nil
	}
	return CustomUnexpectedBase + Reason(offset), nil
}

// MustCustom is like Custom but panics on an invalid offset.
// Intended for package-level reason declarations.
func MustCustom(offset uint32, expected bool) Reason {
	r, err := Custom(offset, expected)
	if err != nil {
		panic(err)
	}
	return r
}

// Valid reports whether r is a core reason or lies in a custom range.
func (r Reason) Valid() bool {
	if _, ok := names[r]; ok {
		return true
	}
	return r.IsCustom()
}

// IsCustom reports whether r lies in one of the host-defined ranges.
func (r Reason) IsCustom() bool {
	return (r >= CustomExpectedBase && r <= CustomExpectedEnd) ||
		(r >= CustomUnexpectedBase && r <= CustomUnexpectedEnd)
}

// IsExpected reports whether r is a known, intentional reset reason.
// Unknown and invalid values are never expected.
func (r Reason) IsExpected() bool {
	return r != Unknown && r.Valid() && r < UnexpectedBase
}

// IsCrash reports whether r is a valid fault reason.
// Register snapshots are only meaningful for crash reasons.
func (r Reason) IsCrash() bool {
	return r.Valid() && r >= UnexpectedBase
}

// IsUnexpected is the complement of IsExpected.
func (r Reason) IsUnexpected() bool {
	return !r.IsExpected()
}

func (r Reason) String() string {
	if n, ok := names[r]; ok {
		return n
	}
	switch {
	case r >= CustomExpectedBase && r <= CustomExpectedEnd:
		return fmt.Sprintf("CustomExpected(%d)", uint32(r-CustomExpectedBase))
	case r >= CustomUnexpectedBase && r <= CustomUnexpectedEnd:
		return fmt.Sprintf("CustomUnexpected(%d)", uint32(r-CustomUnexpectedBase))
	}
	return fmt.Sprintf("Invalid(0x%08X)", uint32(r))
}

// Parse converts a reason name (case-insensitive) or a numeric literal
// (decimal or 0x-prefixed hex) into a Reason.
func Parse(s string) (Reason, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unknown, fmt.Errorf("empty reason")
	}
	if r, ok := byName[strings.ToLower(s)]; ok {
		return r, nil
	}

	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return Unknown, fmt.Errorf("unknown reason %q", s)
	}
	r := Reason(v)
	if !r.Valid() {
		return Unknown, fmt.Errorf("reason 0x%X is neither a core reason nor in a custom range", v)
	}
	return r, nil
}

// Classify decides whether a reboot was unexpected given the reason mapped
// from the hardware reset register and the reason recorded by software.
//
//   - both Unknown: unexpected
//   - only one known: that reason decides
//   - both known: expected only if both are expected
func Classify(regReason, storedReason Reason) bool {
	regKnown := regReason != Unknown
	storedKnown := storedReason != Unknown

	switch {
	case !regKnown && !storedKnown:
		return true
	case !regKnown:
		return storedReason.IsUnexpected()
	case !storedKnown:
		return regReason.IsUnexpected()
	default:
		return regReason.IsUnexpected() || storedReason.IsUnexpected()
	}
}
