package annohelper

import (
	"errors"
	"fmt"
)

// Sentinel errors for profile, panel and count operations.
// All use prefix "annohelper:" for identification. Callers should use errors.Is/errors.As.
var (
	ErrInvalidCount    = errors.New("annohelper: count result violates its invariants")
	ErrTemplateParse   = errors.New("annohelper: panel template parsing failed")
	ErrPanelRender     = errors.New("annohelper: panel rendering failed")
	ErrInvalidManifest = errors.New("annohelper: manifest file is malformed")
	ErrProfileNotFound = errors.New("annohelper: profile not found in registry")
	ErrInvalidName     = errors.New("annohelper: invalid profile name or env")
	ErrUnknownAction   = errors.New("annohelper: unknown shortcut action")
)

// CountError describes which invariant of a CountResult does not hold.
// Use errors.Is(err, ErrInvalidCount) and errors.As(err, &countErr) to inspect.
type CountError struct {
	Field string // "total" or "meaningful"
	Got   int
	Want  int
}

// Error implements error.
func (e *CountError) Error() string {
	return fmt.Sprintf("annohelper: %s is %d, want %d: %v", e.Field, e.Got, e.Want, ErrInvalidCount)
}

// Unwrap returns ErrInvalidCount for errors.Is.
func (e *CountError) Unwrap() error { return ErrInvalidCount }

// Compile-time check that CountError implements error.
var _ error = (*CountError)(nil)
