package domain

import "errors"

// Fatal error conditions surfaced by the install workflow. "Browser not
// installed" and "driver not yet installed" are deliberately not errors; they
// are absent results the caller may treat as "needs fresh install".
var (
	// ErrUnsupportedPlatform is returned for any host OS outside
	// darwin/linux/windows.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrEntryNotFound is returned when a downloaded archive does not contain
	// the expected binary entry, e.g. after a vendor changed the archive
	// layout.
	ErrEntryNotFound = errors.New("entry not found in archive")

	// ErrEmptyTag is returned when a release-tag lookup succeeds at the HTTP
	// level but yields no usable tag.
	ErrEmptyTag = errors.New("empty release tag")
)
