package validate

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSubmitBlocked is returned by Guard when the form has unresolved warnings.
var ErrSubmitBlocked = errors.New("validate: submit blocked by validation errors")

// FormError carries the report that blocked a submit.
// Use errors.Is(err, ErrSubmitBlocked) and errors.As(err, &formErr) to inspect.
type FormError struct {
	Report FormReport
}

// Error implements error.
func (e *FormError) Error() string {
	return fmt.Sprintf("validate: %s: %v", strings.Join(e.Report.Warnings(), "; "), ErrSubmitBlocked)
}

// Unwrap returns ErrSubmitBlocked for errors.Is.
func (e *FormError) Unwrap() error { return ErrSubmitBlocked }

var _ error = (*FormError)(nil)
