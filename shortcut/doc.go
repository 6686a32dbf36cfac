// Package shortcut resolves keyboard events against a profile keymap and
// performs the bound action on the host page through the Host interface.
//
// Deleting a row takes two presses: the first clicks the row's delete link
// and arms a confirmation window, the second (inside the window) clicks the
// confirm button. The armed state lives in the Dispatcher, not in globals.
//
// IsXPathTarget decides which elements get the hover highlight.
package shortcut
