// Package clog provides the logging interface used by the SHACL core and
// CLI, adapted from Cayley's clog package: a small Logger interface with
// a package-level default sink, swappable by the hosting application.
package clog

import "log"

// Logger is the clog logging interface.
type Logger interface {
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type stdLogger struct{}

func (stdLogger) Infof(format string, args ...interface{})    { log.Printf("INFO: "+format, args...) }
func (stdLogger) Warningf(format string, args ...interface{}) { log.Printf("WARNING: "+format, args...) }
func (stdLogger) Errorf(format string, args ...interface{})   { log.Printf("ERROR: "+format, args...) }

var logger Logger = stdLogger{}

// SetLogger sets the clog logging implementation.
func SetLogger(l Logger) {
	if l == nil {
		l = stdLogger{}
	}
	logger = l
}

var verbosity int

// V returns whether the current clog verbosity is at or above level.
func V(level int) bool { return verbosity >= level }

// SetV sets the clog verbosity level.
func SetV(level int) { verbosity = level }

// Infof logs an informational message.
func Infof(format string, args ...interface{}) { logger.Infof(format, args...) }

// Warningf logs a warning, e.g. a skipped constraint during shape
// compilation (spec.md §7, error kind 2).
func Warningf(format string, args ...interface{}) { logger.Warningf(format, args...) }

// Errorf logs an error, e.g. a SPARQL execution failure surfaced as a
// violation rather than raised (spec.md §7, error kind 4).
func Errorf(format string, args ...interface{}) { logger.Errorf(format, args...) }
