package scanner

import (
	"reflect"
	"testing"
)

// TestScan_Degenerate tests the empty-input special case.
// An empty line still has one (empty) field.
func TestScan_Degenerate(t *testing.T) {
	fields, err := Scan("", DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(fields, []string{""}) {
		t.Errorf("expected one empty field, got %#v", fields)
	}
}

// TestScan_PlainFields tests splitting without any guard involvement.
func TestScan_PlainFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "single field",
			input: "hello",
			want:  []string{"hello"},
		},
		{
			name:  "three fields",
			input: "a,b,c",
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "empty middle field",
			input: "a,,c",
			want:  []string{"a", "", "c"},
		},
		{
			name:  "all empty fields",
			input: ",,",
			want:  []string{"", "", ""},
		},
		{
			name:  "trailing delimiter",
			input: "a,b,",
			want:  []string{"a", "b", ""},
		},
		{
			name:  "leading delimiter",
			input: ",a,b",
			want:  []string{"", "a", "b"},
		},
		{
			name:  "delimiter only",
			input: ",",
			want:  []string{"", ""},
		},
		{
			name:  "no delimiter present",
			input: "no delimiters here",
			want:  []string{"no delimiters here"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := Scan(tt.input, DefaultOptions())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(fields, tt.want) {
				t.Errorf("Scan(%q) = %#v, want %#v", tt.input, fields, tt.want)
			}
		})
	}
}

// TestScan_GuardedFields tests guard toggling and stripping during a scan.
func TestScan_GuardedFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "guarded delimiter is preserved",
			input: `CN=RapidSSL CA, O="GeoTrust, Inc.", C=US`,
			want:  []string{"CN=RapidSSL CA", " O=GeoTrust, Inc.", " C=US"},
		},
		{
			name:  "whole field guarded",
			input: `a,"b,c",d`,
			want:  []string{"a", "b,c", "d"},
		},
		{
			name:  "guard pair around nothing but a delimiter",
			input: `a","b`,
			want:  []string{`a","b`},
		},
		{
			name:  "multiple guarded segments in one field",
			input: `a"b,c"d"e,f"g`,
			want:  []string{`a"b,c"d"e,f"g`},
		},
		{
			name:  "unmatched guard at start",
			input: `"ab`,
			want:  []string{`"ab`},
		},
		{
			name:  "unmatched guard at end",
			input: `ab"`,
			want:  []string{`ab"`},
		},
		{
			name:  "unmatched guard protects the rest of the input",
			input: `a"b,c`,
			want:  []string{`a"b,c`},
		},
		{
			name:  "lone guard field strips to empty",
			input: `"`,
			want:  []string{""},
		},
		{
			name:  "empty guarded field",
			input: `"",x`,
			want:  []string{"", "x"},
		},
		{
			name:  "guarded field with trailing delimiter",
			input: `"a,b",`,
			want:  []string{"a,b", ""},
		},
		{
			name:  "guarded delimiter at end of input",
			input: `"a,"`,
			want:  []string{"a,"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := Scan(tt.input, DefaultOptions())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(fields, tt.want) {
				t.Errorf("Scan(%q) = %#v, want %#v", tt.input, fields, tt.want)
			}
		})
	}
}

// TestScan_CustomCharacters tests delimiters and guards other than the defaults.
func TestScan_CustomCharacters(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		delimiter rune
		guard     rune
		want      []string
	}{
		{
			name:      "tab delimited",
			input:     "a\tb\tc",
			delimiter: '\t',
			guard:     '"',
			want:      []string{"a", "b", "c"},
		},
		{
			name:      "pipe delimited with single-quote guard",
			input:     "a|'b|c'|d",
			delimiter: '|',
			guard:     '\'',
			want:      []string{"a", "b|c", "d"},
		},
		{
			name:      "carat delimited",
			input:     "x^y^z",
			delimiter: '^',
			guard:     '`',
			want:      []string{"x", "y", "z"},
		},
		{
			name:      "comma as content under pipe delimiter",
			input:     "a,b|c",
			delimiter: '|',
			guard:     '"',
			want:      []string{"a,b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Delimiter = tt.delimiter
			opts.Guard = tt.guard
			fields, err := Scan(tt.input, opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(fields, tt.want) {
				t.Errorf("Scan(%q) = %#v, want %#v", tt.input, fields, tt.want)
			}
		})
	}
}

// TestScan_Dispositions tests guard keeping and whitespace trimming during a scan.
func TestScan_Dispositions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		gd    GuardDisposition
		wd    WhitespaceDisposition
		want  []string
	}{
		{
			name:  "keep retains guards",
			input: `a,"b,c",d`,
			gd:    GuardKeep,
			wd:    WhitespaceLeave,
			want:  []string{"a", `"b,c"`, "d"},
		},
		{
			name:  "keep and leave round trip",
			input: "a,b,c",
			gd:    GuardKeep,
			wd:    WhitespaceLeave,
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "trim both",
			input: " a , b , c ",
			gd:    GuardStrip,
			wd:    WhitespaceTrimBoth,
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "trim leading only",
			input: " a , b ",
			gd:    GuardStrip,
			wd:    WhitespaceTrimLeading,
			want:  []string{"a ", "b "},
		},
		{
			name:  "trim trailing only",
			input: " a , b ",
			gd:    GuardStrip,
			wd:    WhitespaceTrimTrailing,
			want:  []string{" a", " b"},
		},
		{
			name:  "strip then trim",
			input: `" a b ", c`,
			gd:    GuardStrip,
			wd:    WhitespaceTrimBoth,
			want:  []string{"a b", "c"},
		},
		{
			name:  "trailing space defeats stripping",
			input: `"a b" ,c`,
			gd:    GuardStrip,
			wd:    WhitespaceTrimBoth,
			want:  []string{`"a b"`, "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.GuardDisposition = tt.gd
			opts.Whitespace = tt.wd
			fields, err := Scan(tt.input, opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(fields, tt.want) {
				t.Errorf("Scan(%q) = %#v, want %#v", tt.input, fields, tt.want)
			}
		})
	}
}

// TestScan_InvalidDisposition tests that out-of-range dispositions surface as errors.
func TestScan_InvalidDisposition(t *testing.T) {
	opts := DefaultOptions()
	opts.GuardDisposition = GuardDisposition(42)
	if _, err := Scan("a,b", opts); err == nil {
		t.Error("expected error for out-of-range guard disposition")
	}

	opts = DefaultOptions()
	opts.Whitespace = WhitespaceDisposition(-1)
	if _, err := Scan("a,b", opts); err == nil {
		t.Error("expected error for out-of-range whitespace disposition")
	}
}
