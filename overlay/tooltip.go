package overlay

import (
	"context"

	"github.com/skosovsky/annohelper"
)

// TooltipView is what the host draws for one selection.
type TooltipView struct {
	Text     string
	Position Point
	Result   annohelper.CountResult
}

// Tooltip turns selection events into counter tooltip views and owns the auto-hide timer.
type Tooltip struct {
	profile *annohelper.Profile
	counter annohelper.SelectionCounter
	onHide  func()
	hide    AutoHide
}

// NewTooltip returns a Tooltip rendering with profile. onHide is called
// whenever the tooltip should disappear; it may run on a timer goroutine.
// Panics if profile is nil.
func NewTooltip(profile *annohelper.Profile, onHide func()) *Tooltip {
	if profile == nil {
		panic("overlay: Profile must not be nil")
	}
	if onHide == nil {
		onHide = func() {}
	}
	return &Tooltip{profile: profile, onHide: onHide}
}

// OnSelection handles a selection-release event. It returns false (and hides
// the tooltip) when the trimmed selection is empty. tip is the rendered
// tooltip size the host measured last time; viewport is the window size.
func (t *Tooltip) OnSelection(ctx context.Context, selection string, cursor Point, tip, viewport Size) (TooltipView, bool, error) {
	res, ok := t.counter.CountSelection(selection)
	if !ok {
		t.Dismiss()
		return TooltipView{}, false, nil
	}
	text, err := t.profile.RenderCount(ctx, res)
	if err != nil {
		return TooltipView{}, false, err
	}
	t.hide.Arm(t.profile.Timings.TooltipHide, t.onHide)
	return TooltipView{
		Text:     text,
		Position: PlaceTooltip(cursor, tip, viewport),
		Result:   res,
	}, true, nil
}

// PointerEnter keeps the tooltip open while the pointer is over it.
func (t *Tooltip) PointerEnter() {
	t.hide.Hold()
}

// Dismiss hides the tooltip now (pointer left it, or a press landed outside it).
func (t *Tooltip) Dismiss() {
	t.hide.Hold()
	t.onHide()
}

// Close stops the auto-hide timer without calling onHide.
func (t *Tooltip) Close() {
	t.hide.Stop()
}
