package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moffa90/go-reboottrack/critical"
	"github.com/moffa90/go-reboottrack/reason"
	"github.com/moffa90/go-reboottrack/region"
)

// crashTimes boots n times, latching a crash before each reset.
func crashTimes(t *testing.T, mem []byte, n int) *Tracker {
	t.Helper()
	tr := reboot(t, mem, nil)
	for i := 0; i < n; i++ {
		require.NoError(t, tr.MarkResetImminent(reason.SoftwareWatchdog, nil))
		tr = reboot(t, mem, nil)
	}
	return tr
}

func TestCrashLoopDetected(t *testing.T) {
	mem := garbageRegion()
	tr := crashTimes(t, mem, 3)

	count, err := tr.CrashCount()
	require.NoError(t, err)
	assert.Equal(t, uint32(3), count)

	tests := []struct {
		threshold uint32
		want      bool
	}{
		{0, false},
		{1, true},
		{3, true},
		{4, false},
	}

	for _, tt := range tests {
		got, err := tr.CrashLoopDetected(tt.threshold)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "threshold %d", tt.threshold)
	}
}

func TestResetCrashCount(t *testing.T) {
	mem := garbageRegion()
	logger := &MockLogger{}
	tr := crashTimes(t, mem, 2)
	tr.config.Logger = logger

	require.NoError(t, tr.ResetCrashCount())

	count, _ := tr.CrashCount()
	assert.Zero(t, count)
	assert.Contains(t, logger.infoMsgs, "crash count reset")

	rec, ok := region.Decode(mem)
	require.True(t, ok)
	assert.Zero(t, rec.CrashCount)

	// the snapshot keeps what was reconciled at boot
	snap, _ := tr.Snapshot()
	assert.Equal(t, uint32(2), snap.CrashCount)

	// counting resumes from zero on the next crash
	require.NoError(t, tr.MarkResetImminent(reason.HardFault, nil))
	tr = reboot(t, mem, nil)
	count, _ = tr.CrashCount()
	assert.Equal(t, uint32(1), count)
}

func TestResetCrashCountKeepsPendingReason(t *testing.T) {
	mem := garbageRegion()
	tr := crashTimes(t, mem, 1)

	require.NoError(t, tr.MarkResetImminent(reason.UserReset, nil))
	require.NoError(t, tr.ResetCrashCount())

	rec, ok := region.Decode(mem)
	require.True(t, ok)
	assert.Equal(t, uint32(reason.UserReset), rec.PendingReason)
	assert.Zero(t, rec.CrashCount)
}

func TestResetCrashCountOnCorruptRegion(t *testing.T) {
	mem := garbageRegion()
	tr := crashTimes(t, mem, 1)

	for i := range mem {
		mem[i] = 0
	}
	require.NoError(t, tr.ResetCrashCount())

	rec, ok := region.Decode(mem)
	require.True(t, ok)
	assert.False(t, rec.Pending())
	assert.Zero(t, rec.CrashCount)
}

func TestInterruptSection(t *testing.T) {
	var disabled, restored int
	masked := false
	cs := &critical.IRQ{
		Disable: func() uintptr {
			disabled++
			prev := masked
			masked = true
			if prev {
				return 1
			}
			return 0
		},
		Restore: func(state uintptr) {
			restored++
			masked = state != 0
		},
	}

	mem := garbageRegion()
	tr := reboot(t, mem, nil, WithCriticalSection(cs))
	require.NoError(t, tr.MarkResetImminent(reason.HardFault, nil))
	require.NoError(t, tr.MarkCoredumpSaved())
	require.NoError(t, tr.ResetCrashCount())

	assert.Equal(t, 4, disabled)
	assert.Equal(t, disabled, restored)
	assert.False(t, masked, "interrupts must be restored")
}
