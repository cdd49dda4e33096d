// Package split provides delimiter detection for delimited samples.
package split

import "strings"

// candidateDelimiters are the characters the Sniffer scores, most common
// first.
var candidateDelimiters = []rune{Comma, Tab, ';', VerticalBar, Carat}

// Sniffer detects the delimiter of a sample of delimited text.
// For best results, provide at least 2-3 lines of data.
type Sniffer struct {
	sample    string
	guard     rune
	delimiter rune
	analyzed  bool
}

// NewSniffer creates a Sniffer for the sample, assuming a double-quote guard.
func NewSniffer(sample string) *Sniffer {
	return NewSnifferWithGuard(sample, DoubleQuote)
}

// NewSnifferWithGuard creates a Sniffer that treats guard as the protecting
// character when counting delimiters.
func NewSnifferWithGuard(sample string, guard rune) *Sniffer {
	return &Sniffer{
		sample: sample,
		guard:  guard,
	}
}

// DetectDelimiter returns the detected field delimiter.
// Candidates checked: comma, tab, semicolon, vertical bar, carat.
// When nothing scores, the comma wins.
func (s *Sniffer) DetectDelimiter() rune {
	s.analyze()
	return s.delimiter
}

// Options returns a suggested configuration using the detected delimiter and
// the sniffer's guard character.
func (s *Sniffer) Options() Options {
	opts := DefaultOptions()
	opts.Delimiter = s.DetectDelimiter()
	opts.Guard = s.guard
	return opts
}

// analyze performs delimiter detection on the sample.
func (s *Sniffer) analyze() {
	if s.analyzed {
		return
	}
	s.delimiter = s.detectDelimiter()
	s.analyzed = true
}

// detectDelimiter scores each candidate by occurrence count, with a bonus
// for a consistent count across lines.
func (s *Sniffer) detectDelimiter() rune {
	if s.sample == "" {
		return Comma
	}

	lines := strings.Split(strings.ReplaceAll(s.sample, "\r\n", "\n"), "\n")
	scores := make(map[rune]int)

	for _, delim := range candidateDelimiters {
		if delim == s.guard {
			continue
		}

		counts := make([]int, 0, len(lines))
		for _, line := range lines {
			if line == "" {
				continue
			}
			counts = append(counts, countUnguarded(line, delim, s.guard))
		}

		if len(counts) > 0 && counts[0] > 0 {
			consistent := true
			for i := 1; i < len(counts); i++ {
				if counts[i] != counts[0] {
					consistent = false
					break
				}
			}
			if consistent {
				scores[delim] = counts[0] * 10 // bonus for consistency
			} else {
				scores[delim] = counts[0]
			}
		}
	}

	best := Comma
	bestScore := 0
	for _, delim := range candidateDelimiters {
		if score := scores[delim]; score > bestScore {
			best = delim
			bestScore = score
		}
	}

	return best
}

// countUnguarded counts occurrences of delim outside guarded sections.
func countUnguarded(line string, delim, guard rune) int {
	count := 0
	insideGuard := false

	for _, ch := range line {
		switch ch {
		case guard:
			insideGuard = !insideGuard
		case delim:
			if !insideGuard {
				count++
			}
		}
	}

	return count
}
