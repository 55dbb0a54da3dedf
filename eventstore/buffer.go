package eventstore

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
)

// FrameHeaderSize is the per-event overhead: a little-endian uint16 length.
const FrameHeaderSize = 2

// MaxEventSize is the largest event a Buffer accepts.
const MaxEventSize = 0xFFFF

// ErrFull is returned when an event does not fit in the remaining space.
var ErrFull = errors.New("event storage full")

// Buffer is a bounded, append-only event queue backed by a fixed byte slice.
//
// Each Write stores exactly one event. Writes are all-or-nothing: an event
// that does not fit is rejected and the buffer is left unchanged.
//
// Buffer is safe for concurrent use.
type Buffer struct {
	mu   sync.Mutex
	data []byte
	used int
	n    int
}

// New creates a Buffer holding at most capacity bytes, including the
// FrameHeaderSize overhead of every stored event.
//
// Example:
//
//	store := eventstore.New(eventstore.SizeFor(8, event.WorstCaseSize))
func New(capacity int) *Buffer {
	if capacity < 0 {
		panic("capacity cannot be negative")
	}
	return &Buffer{data: make([]byte, capacity)}
}

// SizeFor returns the capacity needed to hold count events of eventSize bytes.
func SizeFor(count, eventSize int) int {
	return count * (eventSize + FrameHeaderSize)
}

// Write appends p as a single event.
func (b *Buffer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, fmt.Errorf("event cannot be empty")
	}
	if len(p) > MaxEventSize {
		return 0, fmt.Errorf("event length %d exceeds maximum %d bytes", len(p), MaxEventSize)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	need := FrameHeaderSize + len(p)
	if need > len(b.data)-b.used {
		return 0, fmt.Errorf("%w: need %d bytes, %d available", ErrFull, need, len(b.data)-b.used)
	}

	binary.LittleEndian.PutUint16(b.data[b.used:], uint16(len(p)))
	copy(b.data[b.used+FrameHeaderSize:], p)
	b.used += need
	b.n++

	return len(p), nil
}

// Available returns the largest event size the next Write accepts.
func (b *Buffer) Available() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	free := len(b.data) - b.used - FrameHeaderSize
	if free < 0 {
		return 0
	}
	if free > MaxEventSize {
		return MaxEventSize
	}
	return free
}

// Len returns the number of stored events.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.n
}

// Events returns a copy of every stored event, oldest first.
func (b *Buffer) Events() [][]byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.events()
}

// Drain returns every stored event and empties the buffer.
// This is the hand-off point to an upload transport.
func (b *Buffer) Drain() [][]byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := b.events()
	b.used = 0
	b.n = 0
	return out
}

// Reset discards all stored events.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.used = 0
	b.n = 0
}

func (b *Buffer) events() [][]byte {
	out := make([][]byte, 0, b.n)
	for off := 0; off < b.used; {
		size := int(binary.LittleEndian.Uint16(b.data[off:]))
		off += FrameHeaderSize
		ev := make([]byte, size)
		copy(ev, b.data[off:off+size])
		out = append(out, ev)
		off += size
	}
	return out
}
