// Package split provides symbolic names for common delimiter and guard
// characters.
package split

// Common delimiter characters.
const (
	Comma          rune = 0x2C // ','
	Tab            rune = 0x09 // '\t'
	VerticalBar    rune = 0x7C // '|'
	Carat          rune = 0x5E // '^'
	Space          rune = 0x20 // ' '
	CarriageReturn rune = 0x0D // '\r'
	LineFeed       rune = 0x0A // '\n'
)

// Common guard characters.
const (
	DoubleQuote rune = 0x22 // '"'
	SingleQuote rune = 0x27 // '\''
	BackQuote   rune = 0x60 // '`'
)

// The name tables are built once at package initialization and never
// mutated afterwards. They are a naming convenience only and carry no
// parsing behavior.
var (
	delimiterNames = map[string]rune{
		"Comma":          Comma,
		"Tab":            Tab,
		"VerticalBar":    VerticalBar,
		"Carat":          Carat,
		"Space":          Space,
		"CarriageReturn": CarriageReturn,
		"LineFeed":       LineFeed,
	}

	guardNames = map[string]rune{
		"DoubleQuote": DoubleQuote,
		"SingleQuote": SingleQuote,
		"BackQuote":   BackQuote,
	}

	delimiterChars = invert(delimiterNames)
	guardChars     = invert(guardNames)
)

func invert(names map[string]rune) map[rune]string {
	chars := make(map[rune]string, len(names))
	for name, r := range names {
		chars[r] = name
	}
	return chars
}

// DelimiterByName returns the delimiter character for a symbolic name such
// as "Comma" or "VerticalBar". The second result reports whether the name
// is known.
func DelimiterByName(name string) (rune, bool) {
	r, ok := delimiterNames[name]
	return r, ok
}

// DelimiterName returns the symbolic name for a delimiter character.
// The second result reports whether the character has a name.
func DelimiterName(r rune) (string, bool) {
	name, ok := delimiterChars[r]
	return name, ok
}

// GuardByName returns the guard character for a symbolic name such as
// "DoubleQuote". The second result reports whether the name is known.
func GuardByName(name string) (rune, bool) {
	r, ok := guardNames[name]
	return r, ok
}

// GuardName returns the symbolic name for a guard character.
// The second result reports whether the character has a name.
func GuardName(r rune) (string, bool) {
	name, ok := guardChars[r]
	return name, ok
}
