// Package split provides configurable options for parsing delimited strings.
package split

import (
	"fmt"

	"github.com/shapestone/shape-split/internal/scanner"
)

// GuardDisposition specifies whether a guard pair enclosing a field is
// removed from the output.
type GuardDisposition int

const (
	// GuardStrip removes a matched guard pair closing at the field's end (default).
	GuardStrip GuardDisposition = iota
	// GuardKeep retains all guard characters in the output.
	GuardKeep
)

// String returns the string representation of GuardDisposition.
func (d GuardDisposition) String() string {
	switch d {
	case GuardStrip:
		return "strip"
	case GuardKeep:
		return "keep"
	default:
		return fmt.Sprintf("GuardDisposition(%d)", d)
	}
}

// Valid reports whether d is a known disposition value.
func (d GuardDisposition) Valid() bool {
	return d == GuardStrip || d == GuardKeep
}

// WhitespaceDisposition specifies trimming of leading and trailing
// whitespace from each output field.
type WhitespaceDisposition int

const (
	// WhitespaceLeave performs no trimming (default).
	WhitespaceLeave WhitespaceDisposition = iota
	// WhitespaceTrimLeading removes leading whitespace only.
	WhitespaceTrimLeading
	// WhitespaceTrimTrailing removes trailing whitespace only.
	WhitespaceTrimTrailing
	// WhitespaceTrimBoth removes leading and trailing whitespace.
	WhitespaceTrimBoth
)

// String returns the string representation of WhitespaceDisposition.
func (d WhitespaceDisposition) String() string {
	switch d {
	case WhitespaceLeave:
		return "leave"
	case WhitespaceTrimLeading:
		return "trim-leading"
	case WhitespaceTrimTrailing:
		return "trim-trailing"
	case WhitespaceTrimBoth:
		return "trim-both"
	default:
		return fmt.Sprintf("WhitespaceDisposition(%d)", d)
	}
}

// Valid reports whether d is a known disposition value.
func (d WhitespaceDisposition) Valid() bool {
	return d >= WhitespaceLeave && d <= WhitespaceTrimBoth
}

// Options configures a parse call.
type Options struct {
	// Delimiter is the character that separates fields.
	// Default: ','
	Delimiter rune

	// Guard is the character that protects delimiters from splitting when it
	// encloses them. It must differ from Delimiter.
	// Default: '"'
	Guard rune

	// GuardDisposition controls whether field-enclosing guard pairs are
	// stripped from the output.
	// Default: GuardStrip
	GuardDisposition GuardDisposition

	// Whitespace controls trimming of each output field.
	// Default: WhitespaceLeave
	Whitespace WhitespaceDisposition
}

// DefaultOptions returns the default parse configuration.
func DefaultOptions() Options {
	return Options{
		Delimiter:        Comma,
		Guard:            DoubleQuote,
		GuardDisposition: GuardStrip,
		Whitespace:       WhitespaceLeave,
	}
}

// Validate checks whether the options describe a usable configuration.
// Returns a ConfigurationError when the delimiter equals the guard and an
// InvalidOptionError for an out-of-range disposition.
func (o Options) Validate() error {
	if o.Delimiter == o.Guard {
		return &ConfigurationError{
			Setting:   "delimiter",
			Delimiter: o.Delimiter,
			Guard:     o.Guard,
			Err:       ErrDelimiterEqualsGuard,
		}
	}
	if !o.GuardDisposition.Valid() {
		return &InvalidOptionError{Option: "GuardDisposition", Value: int(o.GuardDisposition)}
	}
	if !o.Whitespace.Valid() {
		return &InvalidOptionError{Option: "Whitespace", Value: int(o.Whitespace)}
	}
	return nil
}

// scannerOptions converts the public options into the engine's form.
func (o Options) scannerOptions() scanner.Options {
	return scanner.Options{
		Delimiter:        o.Delimiter,
		Guard:            o.Guard,
		GuardDisposition: scanner.GuardDisposition(o.GuardDisposition),
		Whitespace:       scanner.WhitespaceDisposition(o.Whitespace),
	}
}
