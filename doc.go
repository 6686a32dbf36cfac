// Package annohelper holds the rule logic behind the annotation page overlays:
// selection text counting, panel rendering and per-site profiles.
// Validation, shortcut dispatch, overlay state and readiness waiting live in subpackages.
package annohelper
