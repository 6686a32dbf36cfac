package overlay

import (
	"sync"
	"time"

	"github.com/skosovsky/annohelper"
)

// Panel widths in CSS pixels.
const (
	ExpandedWidth  = 300
	CollapsedWidth = 200
)

// Toggle icon glyphs.
const (
	IconCollapse = "−"
	IconExpand   = "+"
)

// Panel is the visibility and collapse state of the help panel.
// The zero value is hidden and expanded. Safe for concurrent use.
type Panel struct {
	mu        sync.Mutex
	visible   bool
	collapsed bool
	hideDelay time.Duration // 0 uses DefaultTimings().PanelHide
	anim      AutoHide
	Drag      Drag
}

// NewPanel returns a hidden panel whose hide animation lasts the profile's PanelHide.
func NewPanel(p *annohelper.Profile) *Panel {
	return &Panel{hideDelay: p.Timings.PanelHide}
}

// PanelState is a snapshot for rendering.
type PanelState struct {
	Visible   bool
	Collapsed bool
	Width     int
	Icon      string
}

// Show makes the panel visible and cancels a hide animation in progress.
func (p *Panel) Show() {
	p.anim.Stop()
	p.mu.Lock()
	p.visible = true
	p.mu.Unlock()
}

// Hide hides the panel. The host plays its hide animation before removing it from view.
func (p *Panel) Hide() {
	p.mu.Lock()
	p.visible = false
	p.mu.Unlock()
}

// HideAnimated hides the panel and calls onHidden once the hide animation
// has played, so the host can take the panel out of the layout. Show before
// then cancels the callback. onHidden runs on a timer goroutine.
func (p *Panel) HideAnimated(onHidden func()) {
	p.mu.Lock()
	p.visible = false
	d := p.hideDelay
	p.mu.Unlock()
	if d <= 0 {
		d = annohelper.DefaultTimings().PanelHide
	}
	p.anim.Arm(d, onHidden)
}

// Close stops a pending hide animation without calling its callback.
func (p *Panel) Close() {
	p.anim.Stop()
}

// Toggle flips visibility and returns the new value.
func (p *Panel) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.visible = !p.visible
	return p.visible
}

// ToggleCollapse flips the collapsed state and returns the new value.
func (p *Panel) ToggleCollapse() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.collapsed = !p.collapsed
	return p.collapsed
}

// State returns the current panel state.
func (p *Panel) State() PanelState {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := PanelState{Visible: p.visible, Collapsed: p.collapsed, Width: ExpandedWidth, Icon: IconCollapse}
	if p.collapsed {
		s.Width = CollapsedWidth
		s.Icon = IconExpand
	}
	return s
}
