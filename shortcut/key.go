package shortcut

import "github.com/skosovsky/annohelper"

// KeyEvent is the subset of a keyboard event the dispatcher needs.
type KeyEvent struct {
	Key       string // KeyboardEvent.key, e.g. "Delete", "s"
	Code      string // KeyboardEvent.code, e.g. "Digit1", "Tab"
	Ctrl      bool
	Shift     bool
	Alt       bool
	Meta      bool
	Composing bool // IME composition in progress
}

func (e KeyEvent) anyModifier() bool {
	return e.Ctrl || e.Shift || e.Alt || e.Meta
}

// Matches reports whether ev triggers b.
//
// Key bindings match ev.Key and require every modifier the binding sets;
// extra modifiers are ignored, so Delete and the arrows fire with any modifier.
// Code bindings match ev.Code and require the modifier set to be exactly the binding's.
// Events during IME composition never match.
func Matches(b annohelper.Binding, ev KeyEvent) bool {
	if ev.Composing {
		return false
	}
	if b.Key != "" {
		if ev.Key != b.Key {
			return false
		}
		return (!b.Ctrl || ev.Ctrl) && (!b.Shift || ev.Shift) && (!b.Alt || ev.Alt) && (!b.Meta || ev.Meta)
	}
	if b.Code == "" || ev.Code != b.Code {
		return false
	}
	if !b.Ctrl && !b.Shift && !b.Alt && !b.Meta {
		return !ev.anyModifier()
	}
	return ev.Ctrl == b.Ctrl && ev.Shift == b.Shift && ev.Alt == b.Alt && ev.Meta == b.Meta
}

// Resolve returns the first binding in keymap matching ev.
func Resolve(keymap []annohelper.Binding, ev KeyEvent) (annohelper.Binding, bool) {
	for _, b := range keymap {
		if Matches(b, ev) {
			return b, true
		}
	}
	return annohelper.Binding{}, false
}
