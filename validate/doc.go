// Package validate evaluates the annotation page warnings: tags outside the
// allowed set, and conflicts between the body path, the extracted table, the
// discard reason and the remark field.
//
// Checks are pure functions over snapshots the host takes from the page;
// Poller runs a check on an interval for hosts without mutation events.
// NewTagCheckerFor, NewTagPoller and NewHeartbeat take their settings from a profile.
package validate
