// Package split parses delimited strings with configurable delimiter and
// guard characters.
//
// A guard character protects delimiters: while an odd number of guards have
// been seen since the current field began, a delimiter is field content
// rather than a boundary. Guards may appear anywhere in a field, not only
// around whole fields, which handles inputs such as certificate subject
// names:
//
//	fields := split.Parse(`CN=RapidSSL CA, O="GeoTrust, Inc.", C=US`)
//	// fields: ["CN=RapidSSL CA", ` O=GeoTrust, Inc.`, " C=US"]
//
// There is no notion of malformed input: every string, including one with
// unbalanced guards, has a defined parse. Errors arise only from
// configuration (equal delimiter and guard, out-of-range dispositions, or
// mutating locked Settings).
//
// # Thread Safety
//
// Parse and ParseWithOptions are safe for concurrent use by multiple
// goroutines; each call owns its own scan state. A Settings instance may
// also be shared: its accessors are synchronized, and once locked it is
// immutable, so concurrent Parse calls on the same locked Settings need no
// further coordination.
//
// # Parsing APIs
//
// The package provides three ways to parse:
//
//   - Parse(string) - comma delimiter, double-quote guard, guards stripped,
//     whitespace left alone
//   - ParseWithOptions(string, Options) - explicit per-call configuration
//   - Settings.Parse(string) - a reusable configuration that freezes itself
//     on first use, for parsing many strings with fixed settings
//
// # Example usage with ParseWithOptions:
//
//	opts := split.DefaultOptions()
//	opts.Delimiter = split.Tab
//	opts.Whitespace = split.WhitespaceTrimBoth
//	fields, err := split.ParseWithOptions("a\t b \tc", opts)
//	if err != nil {
//	    // handle error
//	}
//	// fields: ["a", "b", "c"]
package split

import "github.com/shapestone/shape-split/internal/scanner"

// Parse splits input using the default configuration: comma delimiter,
// double-quote guard, guard pairs stripped, whitespace left alone.
//
// Parse is total: any input has a defined result with at least one field,
// and an empty input yields a single empty field.
func Parse(input string) []string {
	// The default dispositions are always in range, so the scan cannot fail.
	fields, _ := scanner.Scan(input, scanner.DefaultOptions())
	return fields
}

// ParseWithOptions splits input using the given configuration.
//
// The options are validated first: a ConfigurationError is returned when
// the delimiter equals the guard, and an InvalidOptionError when a
// disposition value is out of range. Input content never causes an error.
//
// Example:
//
//	opts := split.DefaultOptions()
//	opts.Delimiter = '|'
//	opts.Guard = split.SingleQuote
//	fields, err := split.ParseWithOptions("a|'b|c'|d", opts)
func ParseWithOptions(input string, opts Options) ([]string, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return scanner.Scan(input, opts.scannerOptions())
}
