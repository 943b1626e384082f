// Package errors provides error handling for nativegen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := gen.Run(ctx, reg, opts); err != nil {
//	    return errors.Wrap(err, "failed to generate bindings")
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "run nativegen list to see the known classes")
//
//	// Check errors
//	if errors.Is(err, errors.ErrDeclaration) {
//	    // a template declares an inconsistent function
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint           = crdb.WithHint
	WithHintf          = crdb.WithHintf
	WithDetail         = crdb.WithDetail
	WithDetailf        = crdb.WithDetailf
	WithSecondaryError = crdb.WithSecondaryError
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapOnce     = crdb.UnwrapOnce
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var (
	AssertionFailedf                 = crdb.AssertionFailedf
	NewAssertionErrorWithWrappedErrf = crdb.NewAssertionErrorWithWrappedErrf
)

// Sentinel errors for use across nativegen.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrNotFound indicates a requested class or file does not exist
	ErrNotFound = New("not found")

	// ErrDeclaration indicates an inconsistent template declaration
	ErrDeclaration = New("invalid declaration")

	// ErrResolution indicates a transform phase precondition failed after validation
	ErrResolution = New("transform resolution failed")

	// ErrInvalidConfig indicates the configuration failed validation
	ErrInvalidConfig = New("invalid configuration")

	// ErrStale indicates generated files differ from the declarations
	ErrStale = New("generated files are out of date")
)

// IsNotFoundError checks if an error is or wraps ErrNotFound.
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsDeclarationError checks if an error is or wraps ErrDeclaration.
func IsDeclarationError(err error) bool {
	return err != nil && Is(err, ErrDeclaration)
}

// IsResolutionError checks if an error is or wraps ErrResolution.
func IsResolutionError(err error) bool {
	return err != nil && Is(err, ErrResolution)
}

// NewInvalidConfigError creates an invalid-config error with a formatted message
func NewInvalidConfigError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidConfig, Newf(format, args...).Error())
}
