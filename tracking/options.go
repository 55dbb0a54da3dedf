package tracking

import (
	"github.com/moffa90/go-reboottrack/critical"
	"github.com/moffa90/go-reboottrack/reason"
)

// Config holds the tracker configuration.
type Config struct {
	// Logger is used for logging boot and export operations (optional)
	Logger Logger

	// Mapper translates the hardware reset register (optional).
	// Without a mapper the register reason is always reason.Unknown.
	Mapper reason.Mapper

	// Section guards every mutation of the persistent region
	Section critical.Section

	// CrashLoopThreshold makes Boot log an error once the crash count
	// reaches this value. Zero disables the check.
	CrashLoopThreshold uint32
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Section: &critical.Mutex{},
	}
}

// Option is a functional option for configuring the Tracker.
type Option func(*Config)

// WithLogger sets a logger for boot and export operations.
//
// Example:
//
//	tracker := tracking.New(tracking.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithMapper sets the platform reset register mapper.
//
// Example:
//
//	m, _ := reason.LoadMappingFile("resetreas.yaml")
//	tracker := tracking.New(tracking.WithMapper(m))
func WithMapper(m reason.Mapper) Option {
	return func(c *Config) {
		c.Mapper = m
	}
}

// WithCriticalSection sets the section guarding the persistent region.
// Default is a critical.Mutex, suitable for hosted programs.
//
// Example:
//
//	tracker := tracking.New(tracking.WithCriticalSection(&critical.IRQ{
//	    Disable: arm.DisableInterrupts,
//	    Restore: arm.EnableInterrupts,
//	}))
func WithCriticalSection(s critical.Section) Option {
	return func(c *Config) {
		if s != nil {
			c.Section = s
		}
	}
}

// WithCrashLoopThreshold logs an error at boot when the crash count has
// reached n. Zero disables the check.
//
// Example:
//
//	tracker := tracking.New(tracking.WithCrashLoopThreshold(5))
func WithCrashLoopThreshold(n uint32) Option {
	return func(c *Config) {
		c.CrashLoopThreshold = n
	}
}
