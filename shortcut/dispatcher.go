package shortcut

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/skosovsky/annohelper"
)

// Outcome describes what Handle did with an event.
type Outcome struct {
	Matched        bool               // a binding matched the event
	PreventDefault bool               // the host should suppress the browser default
	Binding        annohelper.Binding // the matched binding
	// Armed is true after a first Delete press: the next Delete inside the
	// confirmation window confirms the deletion.
	Armed bool
}

// Dispatcher executes keymap actions against a Host.
// Safe for concurrent use; events are processed one at a time.
type Dispatcher struct {
	host          Host
	keymap        []annohelper.Binding
	confirmWindow time.Duration
	now           func() time.Time
	logger        *slog.Logger

	mu         sync.Mutex
	armedUntil time.Time // zero when no delete is pending
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithClock sets the time source used for the delete confirmation window.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) {
		if now != nil {
			d.now = now
		}
	}
}

// WithLogger sets the logger for dispatch failures. Nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// NewDispatcher returns a Dispatcher using the profile keymap and delete
// confirmation window. Panics if host or profile is nil.
func NewDispatcher(host Host, profile *annohelper.Profile, opts ...Option) *Dispatcher {
	if host == nil {
		panic("shortcut: Host must not be nil")
	}
	if profile == nil {
		panic("shortcut: Profile must not be nil")
	}
	d := &Dispatcher{
		host:          host,
		keymap:        slices.Clone(profile.Keymap),
		confirmWindow: profile.Timings.DeleteConfirm,
		now:           time.Now,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Pending reports whether a delete is armed and still inside its window.
func (d *Dispatcher) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pendingLocked()
}

func (d *Dispatcher) pendingLocked() bool {
	return !d.armedUntil.IsZero() && d.now().Before(d.armedUntil)
}

// Reset disarms a pending delete.
func (d *Dispatcher) Reset() {
	d.mu.Lock()
	d.armedUntil = time.Time{}
	d.mu.Unlock()
}

// Handle resolves ev and runs the bound action.
// Unmatched events return a zero Outcome and nil. A matched event whose
// target is missing returns PreventDefault with ErrNoTarget or ErrButtonNotFound.
func (d *Dispatcher) Handle(ctx context.Context, ev KeyEvent) (Outcome, error) {
	if ctx.Err() != nil {
		return Outcome{}, ctx.Err()
	}
	b, ok := Resolve(d.keymap, ev)
	if !ok {
		return Outcome{}, nil
	}
	out := Outcome{Matched: true, PreventDefault: true, Binding: b}
	d.mu.Lock()
	defer d.mu.Unlock()
	var err error
	switch b.Action {
	case annohelper.ActionDelete:
		out.Armed, err = d.deleteLocked()
	case annohelper.ActionMoveUp:
		err = d.move(LabelMoveUp)
	case annohelper.ActionMoveDown:
		err = d.move(LabelMoveDown)
	case annohelper.ActionClickIndex:
		if !d.host.ClickButtonIndex(PrimarySmallButton, b.Index) {
			err = fmt.Errorf("%w: %s[%d]", ErrButtonNotFound, PrimarySmallButton, b.Index)
		}
	case annohelper.ActionClickText:
		if !d.host.ClickButtonText(b.Label) {
			err = fmt.Errorf("%w: %q", ErrButtonNotFound, b.Label)
		}
	default:
		err = fmt.Errorf("%w: %q", annohelper.ErrUnknownAction, b.Action)
	}
	if err != nil {
		d.logger.Warn("shortcut action failed", "action", string(b.Action), "key", b.DisplayKey(), "error", err)
	}
	return out, err
}

// deleteLocked runs one step of the two-step delete and reports whether a
// confirmation is now pending. A row without a delete link fails either step
// before anything is highlighted or clicked, and leaves the state unchanged.
func (d *Dispatcher) deleteLocked() (bool, error) {
	row, ok := d.host.TargetRow()
	if !ok {
		return d.pendingLocked(), ErrNoTarget
	}
	if !d.host.HasDeleteLink(row) {
		return d.pendingLocked(), fmt.Errorf("%w: delete link in row %q", ErrButtonNotFound, row)
	}
	if d.pendingLocked() {
		d.armedUntil = time.Time{}
		if !d.host.ConfirmDelete() {
			return false, fmt.Errorf("%w: delete confirmation", ErrButtonNotFound)
		}
		return false, nil
	}
	d.host.Highlight(row)
	if !d.host.ClickDelete(row) {
		return false, fmt.Errorf("%w: delete link in row %q", ErrButtonNotFound, row)
	}
	d.armedUntil = d.now().Add(d.confirmWindow)
	return true, nil
}

func (d *Dispatcher) move(label string) error {
	row, ok := d.host.TargetRow()
	if !ok {
		return ErrNoTarget
	}
	if !d.host.ClickMove(row, label) {
		return fmt.Errorf("%w: %q in row %q", ErrButtonNotFound, label, row)
	}
	d.host.Highlight(row)
	return nil
}
