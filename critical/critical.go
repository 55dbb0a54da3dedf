package critical

import "sync"

// State is the opaque value returned by Enter and handed back to Exit.
// For interrupt masking it carries the previous mask so sections nest.
type State uintptr

// Section excludes re-entrant mutation of shared state.
//
// On a microcontroller this masks the interrupts and exceptions that could
// call back into the protected code. Sections must be held only for the
// read-modify-write they protect.
type Section interface {
	Enter() State
	Exit(State)
}

// Do runs fn inside s.
func Do(s Section, fn func()) {
	st := s.Enter()
	defer s.Exit(st)
	fn()
}

// Mutex is a Section for hosted programs and tests, where interrupt
// context is modelled by other goroutines.
// The zero value is ready to use.
type Mutex struct {
	mu sync.Mutex
}

// Enter locks the mutex.
func (m *Mutex) Enter() State {
	m.mu.Lock()
	return 0
}

// Exit unlocks the mutex.
func (m *Mutex) Exit(State) {
	m.mu.Unlock()
}

// IRQ is a Section built from a pair of interrupt mask hooks.
//
// The hooks match the shape of TinyGo's device/arm helpers:
//
//	cs := &critical.IRQ{
//	    Disable: arm.DisableInterrupts,
//	    Restore: arm.EnableInterrupts,
//	}
//
// Disable must return the previous mask and Restore must reinstate it, so
// that a section entered from an interrupt handler that already runs with
// interrupts masked leaves them masked on exit.
type IRQ struct {
	Disable func() uintptr
	Restore func(mask uintptr)
}

// Enter masks interrupts and returns the previous mask.
func (q *IRQ) Enter() State {
	return State(q.Disable())
}

// Exit restores the mask saved by Enter.
func (q *IRQ) Exit(st State) {
	q.Restore(uintptr(st))
}
