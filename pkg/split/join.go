// Package split provides the inverse operation: joining fields back into a
// delimited string.
package split

import (
	"strings"

	"github.com/pkg/errors"
)

// Join renders fields into a single delimited string. A field containing the
// delimiter is wrapped in guard characters so that parsing the result with
// the same options and GuardStrip recovers the original fields.
//
// This dialect has no escape for guard characters. A field containing both
// the delimiter and the guard cannot be wrapped without changing how it
// parses back, so Join reports it as an error. A field containing guards but
// no delimiter is written literally; it survives a round trip as long as its
// first guard and final character do not form a strippable pair.
func Join(fields []string, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	var sb strings.Builder
	for i, field := range fields {
		if i > 0 {
			sb.WriteRune(opts.Delimiter)
		}
		guarded, err := guardField(field, opts)
		if err != nil {
			return "", err
		}
		sb.WriteString(guarded)
	}

	return sb.String(), nil
}

// guardField wraps a field in guards when it contains the delimiter.
func guardField(field string, opts Options) (string, error) {
	if !strings.ContainsRune(field, opts.Delimiter) {
		return field, nil
	}
	if strings.ContainsRune(field, opts.Guard) {
		return "", errors.Errorf(
			"split: field %q contains both the delimiter %q and the guard %q and cannot be represented",
			field, opts.Delimiter, opts.Guard)
	}
	return string(opts.Guard) + field + string(opts.Guard), nil
}
