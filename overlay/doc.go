// Package overlay holds the state of the floating overlays: counter tooltip
// placement and auto-hide, and the draggable, collapsible help panel.
package overlay
