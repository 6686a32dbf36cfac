package overlay

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/skosovsky/annohelper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPlaceTooltip(t *testing.T) {
	t.Parallel()
	viewport := Size{W: 1000, H: 800}
	tip := Size{W: 200, H: 100}
	tests := []struct {
		name   string
		cursor Point
		want   Point
	}{
		{"room to spare", Point{X: 100, Y: 100}, Point{X: 115, Y: 115}},
		{"right edge", Point{X: 900, Y: 100}, Point{X: 790, Y: 115}},
		{"bottom edge", Point{X: 100, Y: 750}, Point{X: 115, Y: 690}},
		{"corner", Point{X: 999, Y: 799}, Point{X: 790, Y: 690}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, PlaceTooltip(tt.cursor, tip, viewport))
		})
	}
	assert.Equal(t, Point{X: -10, Y: -10}, PlaceTooltip(Point{}, Size{W: 100, H: 100}, Size{W: 100, H: 100}))
}

func TestDrag(t *testing.T) {
	t.Parallel()
	var d Drag
	_, ok := d.Move(Point{X: 1, Y: 1})
	assert.False(t, ok)
	assert.False(t, d.End())

	assert.False(t, d.Begin(Point{X: 5, Y: 5}, Point{}, TargetButton))
	assert.False(t, d.Begin(Point{X: 5, Y: 5}, Point{}, TargetToggleIcon))
	assert.False(t, d.Active())

	require.True(t, d.Begin(Point{X: 110, Y: 220}, Point{X: 100, Y: 200}, "help-header"))
	assert.True(t, d.Active())
	pos, ok := d.Move(Point{X: 310, Y: 420})
	require.True(t, ok)
	assert.Equal(t, Point{X: 300, Y: 400}, pos)
	assert.True(t, d.End())
	assert.False(t, d.Active())
}

func TestPanel(t *testing.T) {
	t.Parallel()
	var p Panel
	assert.Equal(t, PanelState{Width: ExpandedWidth, Icon: IconCollapse}, p.State())
	p.Show()
	assert.True(t, p.State().Visible)
	assert.True(t, p.ToggleCollapse())
	assert.Equal(t, PanelState{Visible: true, Collapsed: true, Width: CollapsedWidth, Icon: IconExpand}, p.State())
	assert.False(t, p.ToggleCollapse())
	assert.False(t, p.Toggle())
	assert.True(t, p.Toggle())
	p.Hide()
	assert.False(t, p.State().Visible)
}

func newPanelProfile(t *testing.T, hide time.Duration) *annohelper.Profile {
	t.Helper()
	p, err := annohelper.NewProfile(annohelper.WithTimings(annohelper.Timings{PanelHide: hide}))
	require.NoError(t, err)
	return p
}

func TestPanel_HideAnimated(t *testing.T) {
	t.Parallel()
	p := NewPanel(newPanelProfile(t, 20*time.Millisecond))
	defer p.Close()
	p.Show()
	hidden := make(chan struct{})
	start := time.Now()
	p.HideAnimated(func() { close(hidden) })
	assert.False(t, p.State().Visible)
	select {
	case <-hidden:
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	case <-time.After(time.Second):
		t.Fatal("hide callback did not run")
	}
}

func TestPanel_ShowCancelsHideAnimation(t *testing.T) {
	t.Parallel()
	p := NewPanel(newPanelProfile(t, 20*time.Millisecond))
	defer p.Close()
	var fired atomic.Bool
	p.HideAnimated(func() { fired.Store(true) })
	p.Show()
	time.Sleep(60 * time.Millisecond)
	assert.False(t, fired.Load())
	assert.True(t, p.State().Visible)
}

func TestAutoHide_Fires(t *testing.T) {
	t.Parallel()
	var a AutoHide
	fired := make(chan struct{})
	a.Arm(5*time.Millisecond, func() { close(fired) })
	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("hide did not fire")
	}
	assert.Eventually(t, func() bool { return !a.Pending() }, time.Second, time.Millisecond)
}

func TestAutoHide_HoldCancels(t *testing.T) {
	t.Parallel()
	var a AutoHide
	var fired atomic.Bool
	a.Arm(20*time.Millisecond, func() { fired.Store(true) })
	require.True(t, a.Pending())
	assert.True(t, a.Hold())
	assert.False(t, a.Pending())
	assert.False(t, a.Hold())
	time.Sleep(40 * time.Millisecond)
	assert.False(t, fired.Load())
	a.Stop()
}

func TestAutoHide_RearmReplaces(t *testing.T) {
	t.Parallel()
	var a AutoHide
	var first, second atomic.Int32
	a.Arm(10*time.Millisecond, func() { first.Add(1) })
	a.Arm(30*time.Millisecond, func() { second.Add(1) })
	assert.Eventually(t, func() bool { return second.Load() == 1 }, 5*time.Second, time.Millisecond)
	assert.Equal(t, int32(0), first.Load())
}

type hideRecorder struct {
	mu    sync.Mutex
	count int
	ch    chan struct{}
}

func (h *hideRecorder) hide() {
	h.mu.Lock()
	h.count++
	h.mu.Unlock()
	select {
	case h.ch <- struct{}{}:
	default:
	}
}

func (h *hideRecorder) n() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.count
}

func newTooltip(t *testing.T, hide time.Duration) (*Tooltip, *hideRecorder) {
	t.Helper()
	p, err := annohelper.NewProfile(annohelper.WithTimings(annohelper.Timings{TooltipHide: hide}))
	require.NoError(t, err)
	rec := &hideRecorder{ch: make(chan struct{}, 1)}
	tt := NewTooltip(p, rec.hide)
	t.Cleanup(tt.Close)
	return tt, rec
}

func TestTooltip_OnSelection(t *testing.T) {
	t.Parallel()
	tt, rec := newTooltip(t, time.Hour)
	view, ok, err := tt.OnSelection(context.Background(), "  Hello World 123  ",
		Point{X: 10, Y: 20}, Size{W: 100, H: 50}, Size{W: 1000, H: 800})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Point{X: 25, Y: 35}, view.Position)
	assert.Equal(t, 2, view.Result.EnglishWords)
	assert.Equal(t, 15, view.Result.Total, "selection is trimmed")
	assert.Contains(t, view.Text, "单词+汉字+数字: 3")
	assert.Equal(t, 0, rec.n())
}

func TestTooltip_EmptySelectionHides(t *testing.T) {
	t.Parallel()
	tt, rec := newTooltip(t, time.Hour)
	_, ok, err := tt.OnSelection(context.Background(), " \n ", Point{}, Size{}, Size{W: 100, H: 100})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, rec.n())
}

func TestTooltip_AutoHideAndHold(t *testing.T) {
	t.Parallel()
	tt, rec := newTooltip(t, 5*time.Millisecond)
	ctx := context.Background()
	_, ok, err := tt.OnSelection(ctx, "abc", Point{}, Size{}, Size{W: 100, H: 100})
	require.NoError(t, err)
	require.True(t, ok)
	select {
	case <-rec.ch:
	case <-time.After(5 * time.Second):
		t.Fatal("tooltip did not auto-hide")
	}

	tt2, rec2 := newTooltip(t, 20*time.Millisecond)
	_, _, err = tt2.OnSelection(ctx, "abc", Point{}, Size{}, Size{W: 100, H: 100})
	require.NoError(t, err)
	tt2.PointerEnter()
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, 0, rec2.n())
	tt2.Dismiss()
	assert.Equal(t, 1, rec2.n())
}

func TestTooltip_RenderError(t *testing.T) {
	t.Parallel()
	p, err := annohelper.NewProfile(annohelper.WithCountTemplate("{{ .Nope }}"))
	require.NoError(t, err)
	tt := NewTooltip(p, nil)
	defer tt.Close()
	_, ok, err := tt.OnSelection(context.Background(), "abc", Point{}, Size{}, Size{})
	require.ErrorIs(t, err, annohelper.ErrPanelRender)
	assert.False(t, ok)
	assert.Panics(t, func() { NewTooltip(nil, nil) })
}
