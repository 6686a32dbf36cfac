package overlay

import (
	"sync"
	"time"
)

// AutoHide runs a hide callback after a delay unless held or re-armed.
// The zero value is ready to use. Safe for concurrent use.
type AutoHide struct {
	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

// Arm schedules hide after d, cancelling any earlier schedule.
func (a *AutoHide) Arm(d time.Duration, hide func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopLocked()
	a.gen++
	gen := a.gen
	a.timer = time.AfterFunc(d, func() {
		a.mu.Lock()
		current := a.gen == gen
		if current {
			a.timer = nil
		}
		a.mu.Unlock()
		if current {
			hide()
		}
	})
}

// Hold cancels the pending hide (pointer entered the tooltip).
// Returns whether a hide was pending.
func (a *AutoHide) Hold() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stopLocked()
}

// Stop is Hold for shutdown paths; it is safe to call repeatedly.
func (a *AutoHide) Stop() {
	a.Hold()
}

// Pending reports whether a hide is scheduled.
func (a *AutoHide) Pending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.timer != nil
}

func (a *AutoHide) stopLocked() bool {
	if a.timer == nil {
		return false
	}
	stopped := a.timer.Stop()
	a.timer = nil
	a.gen++
	return stopped
}
