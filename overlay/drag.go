package overlay

import "sync"

// Drag targets that must not start a drag (they have their own click handlers).
const (
	TargetButton     = "button"
	TargetToggleIcon = "toggle-icon"
)

// Drag tracks one drag interaction of the panel header.
// The zero value is ready to use and safe for concurrent use.
type Drag struct {
	mu     sync.Mutex
	active bool
	offset Point // pointer position relative to the panel origin
}

// Begin starts a drag when target is not a button or the collapse toggle.
// origin is the panel's current top-left corner. Returns whether a drag started.
func (d *Drag) Begin(pointer, origin Point, target string) bool {
	if target == TargetButton || target == TargetToggleIcon {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.active = true
	d.offset = Point{X: pointer.X - origin.X, Y: pointer.Y - origin.Y}
	return true
}

// Move returns the new panel origin for pointer, or false when no drag is active.
func (d *Drag) Move(pointer Point) (Point, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.active {
		return Point{}, false
	}
	return Point{X: pointer.X - d.offset.X, Y: pointer.Y - d.offset.Y}, true
}

// End finishes the drag. Returns false when no drag was active.
func (d *Drag) End() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	was := d.active
	d.active = false
	d.offset = Point{}
	return was
}

// Active reports whether a drag is in progress.
func (d *Drag) Active() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active
}
