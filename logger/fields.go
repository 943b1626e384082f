package logger

import "go.uber.org/zap"

// Standard field names for consistent structured logging across nativegen.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Declarations
	FieldClass     = "class"
	FieldFunction  = "function"
	FieldBinding   = "binding"
	FieldOverloads = "overloads"

	// Output
	FieldPath  = "path"
	FieldFiles = "files"
	FieldBytes = "bytes"

	// Runs
	FieldClasses    = "classes"
	FieldWorkers    = "workers"
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"
)

// ComponentLogger returns a named logger for a specific component.
//
// Example:
//
//	log := logger.ComponentLogger("gen")
//	log.Infow("Generation complete", logger.FieldClasses, 6)
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}
