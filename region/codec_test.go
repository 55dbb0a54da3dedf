package region

import (
	"bytes"
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() Record {
	return Record{
		PendingReason:  0x9400,
		Registers:      Registers{PC: 0x08001234, LR: 0x08005678},
		HasRegisters:   true,
		CoredumpSaved:  true,
		CrashCount:     3,
		ResetReasonReg: 0x00000004,
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
	}{
		{name: "empty", rec: Empty()},
		{name: "full", rec: sampleRecord()},
		{
			name: "pending without registers",
			rec:  Record{PendingReason: 0x0003, CrashCount: 0xFFFFFFFF},
		},
		{
			name: "count only",
			rec:  Record{PendingReason: NotSet, CrashCount: 12, ResetReasonReg: 0xDEADBEEF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, Size)
			require.NoError(t, Encode(tt.rec, buf))

			got, ok := Decode(buf)
			require.True(t, ok)
			assert.Equal(t, tt.rec, got)
		})
	}
}

func TestEncodeLayout(t *testing.T) {
	buf := bytes.Repeat([]byte{0xEE}, Size)
	require.NoError(t, Encode(sampleRecord(), buf))

	assert.Equal(t, []byte{0x52, 0x54, 0x42, 0x4B}, buf[0:4], "magic")
	assert.Equal(t, byte(Version), buf[OffsetVersion])
	assert.Equal(t, byte(FlagCoredumpSaved|FlagRegistersValid), buf[OffsetFlags])
	assert.Equal(t, uint32(0x9400), binary.LittleEndian.Uint32(buf[OffsetPendingReason:]))
	assert.Equal(t, uint32(0x08001234), binary.LittleEndian.Uint32(buf[OffsetPC:]))
	assert.Equal(t, uint32(0x08005678), binary.LittleEndian.Uint32(buf[OffsetLR:]))
	assert.Equal(t, uint32(3), binary.LittleEndian.Uint32(buf[OffsetCrashCount:]))
	assert.Equal(t, uint32(4), binary.LittleEndian.Uint32(buf[OffsetResetReg:]))
	assert.Equal(t, make([]byte, Size-OffsetReserved), buf[OffsetReserved:], "reserved bytes are zeroed")
	assert.Equal(t, Checksum(buf), binary.LittleEndian.Uint16(buf[OffsetChecksum:]))
}

func TestEncodeShortBuffer(t *testing.T) {
	err := Encode(sampleRecord(), make([]byte, Size-1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too short")
}

func TestDecodeInvalid(t *testing.T) {
	valid := make([]byte, Size)
	require.NoError(t, Encode(sampleRecord(), valid))

	mutate := func(fn func(b []byte)) []byte {
		b := append([]byte(nil), valid...)
		fn(b)
		return b
	}

	tests := []struct {
		name string
		buf  []byte
	}{
		{name: "nil", buf: nil},
		{name: "short", buf: valid[:Size-1]},
		{name: "all zeros", buf: make([]byte, Size)},
		{name: "all ones", buf: bytes.Repeat([]byte{0xFF}, Size)},
		{name: "bad magic", buf: mutate(func(b []byte) { b[OffsetMagic] ^= 0x01 })},
		{name: "future version", buf: mutate(func(b []byte) { b[OffsetVersion] = Version + 1 })},
		{name: "unknown flag", buf: mutate(func(b []byte) { b[OffsetFlags] |= 0x80 })},
		{name: "torn crash count", buf: mutate(func(b []byte) { b[OffsetCrashCount+2] ^= 0x10 })},
		{name: "torn pending reason", buf: mutate(func(b []byte) { b[OffsetPendingReason+1] = 0x00 })},
		{name: "bad checksum", buf: mutate(func(b []byte) { b[OffsetChecksum] ^= 0xFF })},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := Decode(tt.buf)
			assert.False(t, ok)
			assert.Equal(t, Empty(), rec)
			assert.False(t, rec.Pending())
		})
	}
}

func TestDecodeIgnoresUnusedTail(t *testing.T) {
	buf := make([]byte, Size)
	require.NoError(t, Encode(sampleRecord(), buf))
	for i := CoveredEnd; i < Size; i++ {
		buf[i] = 0xA5
	}

	rec, ok := Decode(buf)
	require.True(t, ok)
	assert.Equal(t, sampleRecord(), rec)
}

func TestDecodeRandomGarbage(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	buf := make([]byte, Size)
	for i := 0; i < 1000; i++ {
		rng.Read(buf)
		_, ok := Decode(buf)
		assert.False(t, ok, "iteration %d decoded random bytes as a record", i)
	}
}

func TestClearPending(t *testing.T) {
	rec := sampleRecord()
	rec.ClearPending()

	assert.False(t, rec.Pending())
	assert.Equal(t, Registers{}, rec.Registers)
	assert.False(t, rec.HasRegisters)
	assert.False(t, rec.CoredumpSaved)
	assert.Equal(t, uint32(3), rec.CrashCount)
	assert.Equal(t, uint32(4), rec.ResetReasonReg)
}
