// Package scanner implements the single-pass field scan for delimited strings.
//
// The scan walks the input once, left to right, classifying each character as
// delimiter, guard, or ordinary content. Guard characters toggle protection:
// while an odd number of guards have been seen since the current field began,
// a delimiter is treated as field content rather than a boundary. This handles
// guards anywhere in a field, not only around whole fields, including a guard
// pair enclosing nothing but a delimiter (a","b is one field).
package scanner

import "strings"

// GuardDisposition controls whether a guard pair enclosing a whole field is
// removed from the output.
type GuardDisposition int

const (
	// GuardStrip removes a matching guard pair from the field's extremes (default).
	GuardStrip GuardDisposition = iota
	// GuardKeep retains all guard characters in the output.
	GuardKeep
)

// WhitespaceDisposition controls trimming of leading and trailing whitespace
// from each output field.
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

// Options configures a scan.
type Options struct {
	// Delimiter separates fields. Default: ','
	Delimiter rune
	// Guard protects delimiters from splitting when it encloses them. Default: '"'
	Guard rune
	// GuardDisposition controls stripping of field-enclosing guard pairs.
	GuardDisposition GuardDisposition
	// Whitespace controls trimming of each output field.
	Whitespace WhitespaceDisposition
}

// DefaultOptions returns the default scan configuration.
func DefaultOptions() Options {
	return Options{
		Delimiter:        ',',
		Guard:            '"',
		GuardDisposition: GuardStrip,
		Whitespace:       WhitespaceLeave,
	}
}

// Scan splits input into fields using the given options.
//
// The scan is total over input content: any character sequence has a defined
// result, including unbalanced guards, and the result always contains at
// least one field. An empty input yields a single empty field, matching the
// CSV convention that an empty line still has one field.
//
// Scan assumes opts.Delimiter != opts.Guard; validating that is the caller's
// job. The only possible error is an out-of-range disposition value.
//
// Complexity is O(n) in the input length with no backtracking.
func Scan(input string, opts Options) ([]string, error) {
	if input == "" {
		return []string{""}, nil
	}

	fields := make([]string, 0, 8)
	var buf strings.Builder
	inProgress := false  // any character accumulated since the last boundary
	insideGuard := false // odd number of guards seen since the field began

	var last rune
	for _, c := range input {
		last = c
		switch c {
		case opts.Delimiter:
			switch {
			case insideGuard:
				// Protected delimiter is field content.
				buf.WriteRune(c)
			case inProgress:
				field, err := Transform(buf.String(), opts.Guard, opts.GuardDisposition, opts.Whitespace)
				if err != nil {
					return nil, err
				}
				fields = append(fields, field)
				buf.Reset()
				inProgress = false
				insideGuard = false
			default:
				// Two adjacent boundaries: the field between them is empty.
				fields = append(fields, "")
			}
		case opts.Guard:
			buf.WriteRune(c)
			insideGuard = !insideGuard
			inProgress = true
		default:
			buf.WriteRune(c)
			inProgress = true
		}
	}

	if inProgress {
		field, err := Transform(buf.String(), opts.Guard, opts.GuardDisposition, opts.Whitespace)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	} else if last == opts.Delimiter {
		// A trailing delimiter implies an empty final field. Any other final
		// character means the last field was already emitted at its boundary.
		fields = append(fields, "")
	}

	return fields, nil
}
