package shortcut

import "errors"

// Sentinel errors for dispatch failures. Callers should use errors.Is to check.
var (
	// ErrNoTarget indicates no row could be found for a row action.
	ErrNoTarget = errors.New("shortcut: no target row")
	// ErrButtonNotFound indicates the button or link the action clicks is absent.
	ErrButtonNotFound = errors.New("shortcut: button not found")
)
