// Package split provides error types for configuration failures.
package split

import (
	"fmt"

	"github.com/pkg/errors"
)

// Common configuration errors
var (
	// ErrSettingsLocked indicates an attempt to change a setting after the
	// Settings instance was locked.
	ErrSettingsLocked = errors.New("settings are locked")

	// ErrDelimiterEqualsGuard indicates the delimiter and guard were set to
	// the same character.
	ErrDelimiterEqualsGuard = errors.New("delimiter and guard are the same character")
)

// ConfigurationError reports a rejected configuration change. It carries both
// configured characters and their code points for diagnosis, and wraps the
// underlying cause (ErrSettingsLocked or ErrDelimiterEqualsGuard).
//
// A ConfigurationError is recoverable: pick different characters, or stop
// mutating a locked Settings, and retry.
type ConfigurationError struct {
	// Setting names the setting whose change was rejected.
	Setting string
	// Delimiter is the delimiter character involved.
	Delimiter rune
	// Guard is the guard character involved.
	Guard rune
	// Err is the underlying cause.
	Err error
}

// Error returns a formatted message including both character codes.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("split: cannot set %s: %v (delimiter %q = U+%04X, guard %q = U+%04X)",
		e.Setting, e.Err, e.Delimiter, e.Delimiter, e.Guard, e.Guard)
}

// Unwrap returns the underlying cause.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// InvalidOptionError reports an out-of-range disposition value. It indicates
// a caller bug, not a data problem: input content never produces an error.
type InvalidOptionError struct {
	// Option names the offending option.
	Option string
	// Value is the out-of-range value that was supplied.
	Value int
}

// Error returns a formatted message naming the option and value.
func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("split: invalid %s: unknown value %d", e.Option, e.Value)
}
