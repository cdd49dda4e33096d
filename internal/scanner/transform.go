package scanner

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Transform produces the final field string from a raw accumulated field.
//
// Under GuardStrip, a matched guard pair whose closing guard is the field's
// last character is removed: the closing guard and the first guard in the
// field are both dropped, so both "abc" and O="GeoTrust, Inc." lose their
// guards while any content before the opening guard survives. Fields that do
// not end with a guard keep every guard literally (a","b stays a","b), and a
// single unmatched guard is never stripped. A field that is exactly one lone
// guard character is its own opening and closing guard and strips to the
// empty string.
//
// The whitespace disposition is then applied to whatever string resulted.
//
// Transform is pure and stateless; it is safe to call concurrently.
func Transform(raw string, guard rune, gd GuardDisposition, wd WhitespaceDisposition) (string, error) {
	s := raw

	switch gd {
	case GuardKeep:
		// Nothing to do.
	case GuardStrip:
		s = stripGuards(s, guard)
	default:
		return "", fmt.Errorf("unknown guard disposition %d", gd)
	}

	switch wd {
	case WhitespaceLeave:
	case WhitespaceTrimLeading:
		s = strings.TrimLeftFunc(s, unicode.IsSpace)
	case WhitespaceTrimTrailing:
		s = strings.TrimRightFunc(s, unicode.IsSpace)
	case WhitespaceTrimBoth:
		s = strings.TrimFunc(s, unicode.IsSpace)
	default:
		return "", fmt.Errorf("unknown whitespace disposition %d", wd)
	}

	return s, nil
}

// stripGuards removes a matched guard pair closing at the end of s, if present.
func stripGuards(s string, guard rune) string {
	if s == string(guard) {
		// A single-character field: the lone guard is both the opening and
		// the closing guard, so stripping leaves the empty string.
		return ""
	}

	last, lw := utf8.DecodeLastRuneInString(s)
	if lw == 0 || last != guard {
		return s
	}

	open := strings.IndexRune(s, guard)
	if open == len(s)-lw {
		// The closing guard is the only guard in the field: unmatched, kept.
		return s
	}

	return s[:open] + s[open+utf8.RuneLen(guard):len(s)-lw]
}
