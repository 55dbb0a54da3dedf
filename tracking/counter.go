package tracking

import "github.com/moffa90/go-reboottrack/region"

// CrashCount returns the number of unexpected reboots since the count was
// last reset. The host can use it to detect crash loops and take recovery
// action (for example booting a fallback image).
func (t *Tracker) CrashCount() (uint32, error) {
	if !t.booted.Load() {
		return 0, ErrNotBooted
	}
	return t.count.Load(), nil
}

// CrashLoopDetected reports whether the crash count has reached threshold.
// A zero threshold never reports a crash loop.
func (t *Tracker) CrashLoopDetected(threshold uint32) (bool, error) {
	count, err := t.CrashCount()
	if err != nil {
		return false, err
	}
	return threshold > 0 && count >= threshold, nil
}

// ResetCrashCount sets the crash count to zero and persists it immediately.
//
// The tracker never resets the count on its own. The application decides
// when the device is healthy again, typically after some period of uptime:
//
//	time.AfterFunc(15*time.Minute, func() {
//	    _ = tracker.ResetCrashCount()
//	})
func (t *Tracker) ResetCrashCount() error {
	if !t.booted.Load() {
		return ErrNotBooted
	}

	st := t.config.Section.Enter()
	rec, ok := region.Decode(t.region)
	if !ok {
		rec = region.Empty()
	}
	rec.CrashCount = 0
	_ = region.Encode(rec, t.region)
	t.count.Store(0)
	t.config.Section.Exit(st)

	t.logInfo("crash count reset")

	return nil
}
