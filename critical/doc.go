// Package critical provides the critical-section abstraction used to guard
// state shared between normal code and interrupt or fault handlers.
//
// Protected code acquires a section around the shortest possible
// read-modify-write:
//
//	st := cs.Enter()
//	rec, _ := region.Decode(buf)
//	rec.CrashCount = 0
//	_ = region.Encode(rec, buf)
//	cs.Exit(st)
//
// Two implementations are provided: Mutex for hosted programs and tests,
// and IRQ for bare-metal targets where the section is an interrupt mask.
package critical
