// Package split provides a reusable, lockable parse configuration.
package split

import (
	"sync"

	"github.com/shapestone/shape-split/internal/scanner"
)

// LockReason records how a Settings instance became locked.
// The distinction between an explicit and an implicit lock is diagnostic
// only; both states reject further mutation identically.
type LockReason int

const (
	// Unlocked means the settings may still be changed.
	Unlocked LockReason = iota
	// LockedExplicitly means Lock was called before any parse.
	LockedExplicitly
	// LockedByParse means the first Parse call locked the settings.
	LockedByParse
)

// String returns the string representation of LockReason.
func (r LockReason) String() string {
	switch r {
	case Unlocked:
		return "unlocked"
	case LockedExplicitly:
		return "locked explicitly"
	case LockedByParse:
		return "locked by first parse"
	default:
		return "unknown"
	}
}

// Settings holds parse parameters for repeated use across many Parse calls.
//
// A Settings starts out mutable. It locks permanently either when Lock is
// called or when its Parse method runs for the first time, so a sequence of
// parses sharing one Settings cannot change behavior mid-stream. There is no
// unlock.
//
// Settings is safe for concurrent use: the four parameters and the lock
// state are guarded by one mutex, and the first-parse transition by its own
// synchronization, so concurrent Parse calls never serialize the scan itself.
type Settings struct {
	mu               sync.Mutex // guards the four parameters and lockReason
	delimiter        rune
	guard            rune
	guardDisposition GuardDisposition
	whitespace       WhitespaceDisposition
	lockReason       LockReason

	firstUse sync.Once // guards the first-parse transition only
}

// NewSettings returns mutable Settings holding the default configuration.
func NewSettings() *Settings {
	return &Settings{
		delimiter:        Comma,
		guard:            DoubleQuote,
		guardDisposition: GuardStrip,
		whitespace:       WhitespaceLeave,
	}
}

// NewSettingsWithOptions returns mutable Settings holding the given
// configuration, validating it first.
func NewSettingsWithOptions(opts Options) (*Settings, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Settings{
		delimiter:        opts.Delimiter,
		guard:            opts.Guard,
		guardDisposition: opts.GuardDisposition,
		whitespace:       opts.Whitespace,
	}, nil
}

// Delimiter returns the configured delimiter character.
func (s *Settings) Delimiter() rune {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.delimiter
}

// SetDelimiter changes the delimiter character. It fails with a
// ConfigurationError when the settings are locked or when the new value
// would equal the guard.
func (s *Settings) SetDelimiter(r rune) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lockReason != Unlocked {
		return s.lockedError("delimiter")
	}
	if r == s.guard {
		return &ConfigurationError{
			Setting:   "delimiter",
			Delimiter: r,
			Guard:     s.guard,
			Err:       ErrDelimiterEqualsGuard,
		}
	}
	s.delimiter = r
	return nil
}

// Guard returns the configured guard character.
func (s *Settings) Guard() rune {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guard
}

// SetGuard changes the guard character. It fails with a ConfigurationError
// when the settings are locked or when the new value would equal the
// delimiter.
func (s *Settings) SetGuard(r rune) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lockReason != Unlocked {
		return s.lockedError("guard")
	}
	if r == s.delimiter {
		return &ConfigurationError{
			Setting:   "guard",
			Delimiter: s.delimiter,
			Guard:     r,
			Err:       ErrDelimiterEqualsGuard,
		}
	}
	s.guard = r
	return nil
}

// GuardDisposition returns the configured guard disposition.
func (s *Settings) GuardDisposition() GuardDisposition {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guardDisposition
}

// SetGuardDisposition changes the guard disposition. It fails with a
// ConfigurationError when the settings are locked and with an
// InvalidOptionError for an out-of-range value.
func (s *Settings) SetGuardDisposition(d GuardDisposition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lockReason != Unlocked {
		return s.lockedError("guard disposition")
	}
	if !d.Valid() {
		return &InvalidOptionError{Option: "GuardDisposition", Value: int(d)}
	}
	s.guardDisposition = d
	return nil
}

// Whitespace returns the configured whitespace disposition.
func (s *Settings) Whitespace() WhitespaceDisposition {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.whitespace
}

// SetWhitespace changes the whitespace disposition. It fails with a
// ConfigurationError when the settings are locked and with an
// InvalidOptionError for an out-of-range value.
func (s *Settings) SetWhitespace(d WhitespaceDisposition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lockReason != Unlocked {
		return s.lockedError("whitespace disposition")
	}
	if !d.Valid() {
		return &InvalidOptionError{Option: "Whitespace", Value: int(d)}
	}
	s.whitespace = d
	return nil
}

// Lock freezes the settings for the remaining lifetime of the instance.
// Locking already-locked settings is a no-op, and the original lock reason
// is kept.
func (s *Settings) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lockReason == Unlocked {
		s.lockReason = LockedExplicitly
	}
}

// Locked reports whether the settings are frozen.
func (s *Settings) Locked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lockReason != Unlocked
}

// LockReason reports how the settings became locked, for diagnostics.
func (s *Settings) LockReason() LockReason {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lockReason
}

// Parse splits input using the held configuration. The first call locks the
// settings before parsing begins; among concurrent first calls exactly one
// performs the transition, and the scan itself never runs under a lock.
//
// Settings can only hold a valid configuration, so Parse is total: any
// input has a defined result with at least one field.
func (s *Settings) Parse(input string) []string {
	s.firstUse.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.lockReason == Unlocked {
			s.lockReason = LockedByParse
		}
	})

	// Setters enforce validity, so the scan cannot fail.
	fields, _ := scanner.Scan(input, s.snapshot())
	return fields
}

// snapshot copies the frozen configuration into the engine's form.
func (s *Settings) snapshot() scanner.Options {
	s.mu.Lock()
	defer s.mu.Unlock()
	return scanner.Options{
		Delimiter:        s.delimiter,
		Guard:            s.guard,
		GuardDisposition: scanner.GuardDisposition(s.guardDisposition),
		Whitespace:       scanner.WhitespaceDisposition(s.whitespace),
	}
}

// lockedError builds the rejection for a setter called after locking.
// Callers must hold s.mu.
func (s *Settings) lockedError(setting string) error {
	return &ConfigurationError{
		Setting:   setting,
		Delimiter: s.delimiter,
		Guard:     s.guard,
		Err:       ErrSettingsLocked,
	}
}
