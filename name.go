package annohelper

import (
	"fmt"
	"regexp"
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateName checks that name (and env, when set) are safe for file paths and cache keys.
// Dots are rejected because registries use them to separate name and env.
func ValidateName(name, env string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: name %q", ErrInvalidName, name)
	}
	if env != "" && !namePattern.MatchString(env) {
		return fmt.Errorf("%w: env %q", ErrInvalidName, env)
	}
	return nil
}
