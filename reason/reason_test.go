package reason

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassification(t *testing.T) {
	tests := []struct {
		name       string
		reason     Reason
		valid      bool
		expected   bool
		crash      bool
		custom     bool
		stringForm string
	}{
		{"unknown", Unknown, true, false, false, false, "Unknown"},
		{"user reset", UserReset, true, true, false, false, "UserReset"},
		{"firmware update", FirmwareUpdate, true, true, false, false, "FirmwareUpdate"},
		{"error", Error, true, false, true, false, "Error"},
		{"hard fault", HardFault, true, false, true, false, "HardFault"},
		{"custom expected", CustomExpectedBase + 3, true, true, false, true, "CustomExpected(3)"},
		{"custom unexpected", CustomUnexpectedBase, true, false, true, true, "CustomUnexpected(0)"},
		{"gap below custom", Reason(0x0100), false, false, false, false, "Invalid(0x00000100)"},
		{"unassigned fault code", Reason(0x8002), false, false, false, false, "Invalid(0x00008002)"},
		{"above 16 bits", Reason(0x10000), false, false, false, false, "Invalid(0x00010000)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.reason.Valid(), "Valid()")
			assert.Equal(t, tt.expected, tt.reason.IsExpected(), "IsExpected()")
			assert.Equal(t, !tt.expected, tt.reason.IsUnexpected(), "IsUnexpected()")
			assert.Equal(t, tt.crash, tt.reason.IsCrash(), "IsCrash()")
			assert.Equal(t, tt.custom, tt.reason.IsCustom(), "IsCustom()")
			assert.Equal(t, tt.stringForm, tt.reason.String())
		})
	}
}

func TestCustom(t *testing.T) {
	r, err := Custom(7, true)
	require.NoError(t, err)
	assert.Equal(t, Reason(0x4007), r)
	assert.True(t, r.IsExpected())

	r, err = Custom(MaxCustomOffset, false)
	require.NoError(t, err)
	assert.Equal(t, CustomUnexpectedEnd, r)
	assert.True(t, r.IsCrash())

	_, err = Custom(MaxCustomOffset+1, true)
	assert.Error(t, err)

	assert.Panics(t, func() { MustCustom(MaxCustomOffset+1, false) })
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Reason
		wantErr bool
	}{
		{in: "HardwareWatchdog", want: HardwareWatchdog},
		{in: "hardwarewatchdog", want: HardwareWatchdog},
		{in: "  PinReset ", want: PinReset},
		{in: "0x9400", want: HardFault},
		{in: "16385", want: CustomExpectedBase + 1},
		{in: "0xC010", want: CustomUnexpectedBase + 0x10},
		{in: "", wantErr: true},
		{in: "Reboot", wantErr: true},
		{in: "0x0100", wantErr: true},
		{in: "0xFFFFFFFF", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		reg        Reason
		stored     Reason
		unexpected bool
	}{
		{"nothing known", Unknown, Unknown, true},
		{"software intent wins over ambiguous register", Unknown, FirmwareUpdate, false},
		{"software fault with ambiguous register", Unknown, Error, true},
		{"register only expected", PowerOnReset, Unknown, false},
		{"register only fault", HardwareWatchdog, Unknown, true},
		{"both expected", SoftwareReset, UserReset, false},
		{"expected intent but watchdog fired", HardwareWatchdog, FirmwareUpdate, true},
		{"fault intent with soft reset register", SoftwareReset, HardFault, true},
		{"custom expected on both", SoftwareReset, CustomExpectedBase, false},
		{"invalid stored value", SoftwareReset, Reason(0x0200), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unexpected, Classify(tt.reg, tt.stored))
		})
	}
}
