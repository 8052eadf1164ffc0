package reveal

import (
	"testing"

	"github.com/crtvaryan/portfolio/internal/viewport"
)

// recordingObserver keeps every callback it was handed, even after
// Unobserve, so tests can replay late deliveries.
type recordingObserver struct {
	opts      viewport.Options
	callbacks map[viewport.Element][]viewport.Callback
	observed  map[viewport.Element]bool
}

func (r *recordingObserver) factory(opts viewport.Options) viewport.Observer {
	r.opts = opts
	return r
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{
		callbacks: make(map[viewport.Element][]viewport.Callback),
		observed:  make(map[viewport.Element]bool),
	}
}

func (r *recordingObserver) Observe(el viewport.Element, fn viewport.Callback) {
	r.callbacks[el] = append(r.callbacks[el], fn)
	r.observed[el] = true
}

func (r *recordingObserver) Unobserve(el viewport.Element) { delete(r.observed, el) }

func (r *recordingObserver) fire(el viewport.Element, e viewport.Entry) {
	for _, fn := range r.callbacks[el] {
		fn(e)
	}
}

func visibleEntry(el viewport.Element, ratio float64) viewport.Entry {
	return viewport.Entry{Target: el, IsIntersecting: true, Ratio: ratio}
}

func TestTracker_RevealsOnceScrolledIntoView(t *testing.T) {
	vp := viewport.New(800, 600)
	var obs *viewport.GeometryObserver
	newObs := func(opts viewport.Options) viewport.Observer {
		obs = vp.NewObserver(opts)
		return obs
	}
	el := &viewport.Box{Rect: viewport.Rect{Y: 1500, Width: 800, Height: 300}}

	reveals := 0
	tr := New(newObs, OnReveal(func() { reveals++ }))
	tr.Attach(el)
	if tr.Visible() {
		t.Fatal("visible before scrolling")
	}

	vp.ScrollTo(1000)
	if !tr.Visible() {
		t.Fatal("not visible after scrolling into view")
	}
	if obs.Observed() != 0 {
		t.Errorf("observer still attached after reveal: %d", obs.Observed())
	}

	vp.ScrollTo(0)
	vp.ScrollTo(1200)
	if !tr.Visible() {
		t.Error("visibility went back to false")
	}
	if reveals != 1 {
		t.Errorf("OnReveal calls: got %d, want 1", reveals)
	}
}

func TestTracker_NeverReachedStaysHidden(t *testing.T) {
	vp := viewport.New(800, 600)
	el := &viewport.Box{Rect: viewport.Rect{Y: 50000, Width: 800, Height: 300}}

	tr := New(vp.Observers())
	tr.Attach(el)
	for y := 0.0; y < 10000; y += 250 {
		vp.ScrollTo(y)
	}
	if tr.Visible() {
		t.Error("element far below the fold was revealed")
	}
}

func TestTracker_ObserverUsesTrackerThreshold(t *testing.T) {
	rec := newRecordingObserver()
	New(rec.factory, WithThreshold(0.5))
	if rec.opts.Threshold != 0.5 {
		t.Errorf("observer threshold: got %v, want 0.5", rec.opts.Threshold)
	}
	New(rec.factory)
	if rec.opts.Threshold != DefaultThreshold {
		t.Errorf("default observer threshold: got %v, want %v", rec.opts.Threshold, DefaultThreshold)
	}
}

func TestTracker_CustomThresholdRevealsWhenScrolledPast(t *testing.T) {
	vp := viewport.New(800, 600)
	el := &viewport.Box{Rect: viewport.Rect{Y: 1500, Width: 800, Height: 400}}

	tr := New(vp.Observers(), WithThreshold(0.5))
	tr.Attach(el)

	// 100 of 400 px on screen.
	vp.ScrollTo(1000)
	if tr.Visible() {
		t.Fatal("revealed at a quarter visible")
	}
	// Fully on screen.
	for y := 1000.0; y <= 1400; y += 50 {
		vp.ScrollTo(y)
	}
	if !tr.Visible() {
		t.Fatal("fully visible element was not revealed")
	}
}

func TestTracker_DefaultThresholdIgnoresEdgeContact(t *testing.T) {
	vp := viewport.New(800, 600)
	el := &viewport.Box{Rect: viewport.Rect{Y: 1500, Width: 800, Height: 400}}

	tr := New(vp.Observers())
	tr.Attach(el)

	// 20 of 400 px, under the default 10%.
	vp.ScrollTo(920)
	if tr.Visible() {
		t.Fatal("revealed on a sliver")
	}
	vp.ScrollTo(1000)
	if !tr.Visible() {
		t.Fatal("not revealed past the default threshold")
	}
}

func TestTracker_BelowThresholdIgnored(t *testing.T) {
	rec := newRecordingObserver()
	el := &viewport.Box{}
	tr := New(rec.factory, WithThreshold(0.5))
	tr.Attach(el)

	rec.fire(el, visibleEntry(el, 0.3))
	if tr.Visible() {
		t.Fatal("revealed below threshold")
	}
	rec.fire(el, visibleEntry(el, 0.5))
	if !tr.Visible() {
		t.Fatal("not revealed at threshold")
	}
}

func TestTracker_ZeroThresholdAnyOverlap(t *testing.T) {
	rec := newRecordingObserver()
	el := &viewport.Box{}
	tr := New(rec.factory, WithThreshold(0))
	tr.Attach(el)

	rec.fire(el, visibleEntry(el, 0))
	if !tr.Visible() {
		t.Error("threshold 0 should reveal on contact")
	}
}

func TestTracker_ReattachIgnoresStaleCallbacks(t *testing.T) {
	rec := newRecordingObserver()
	oldEl := &viewport.Box{Name: "old"}
	newEl := &viewport.Box{Name: "new"}

	tr := New(rec.factory)
	tr.Attach(oldEl)
	tr.Attach(newEl)

	if rec.observed[oldEl] {
		t.Error("old element still observed after reattach")
	}
	if !rec.observed[newEl] {
		t.Error("new element not observed")
	}

	rec.fire(oldEl, visibleEntry(oldEl, 1))
	if tr.Visible() {
		t.Fatal("stale callback from replaced element revealed the tracker")
	}

	rec.fire(newEl, visibleEntry(newEl, 1))
	if !tr.Visible() {
		t.Fatal("current element did not reveal")
	}
}

func TestTracker_CloseReleasesObservation(t *testing.T) {
	rec := newRecordingObserver()
	el := &viewport.Box{}
	tr := New(rec.factory)
	tr.Attach(el)
	tr.Close()
	tr.Close()

	if rec.observed[el] {
		t.Error("element still observed after Close")
	}
	rec.fire(el, visibleEntry(el, 1))
	if tr.Visible() {
		t.Error("callback fired after Close")
	}
}

func TestTracker_NilAttachIsPending(t *testing.T) {
	rec := newRecordingObserver()
	tr := New(rec.factory)
	tr.Attach(nil)
	if len(rec.observed) != 0 {
		t.Errorf("nil element observed: %v", rec.observed)
	}
}

func TestClassAndStyle(t *testing.T) {
	tag := Tag{Animation: "slide-in-left", Delay: "0.2s"}
	if got := ClassFor(tag, false); got != "animate-on-scroll slide-in-left" {
		t.Errorf("hidden class: got %q", got)
	}
	if got := ClassFor(tag, true); got != "animate-on-scroll slide-in-left is-visible" {
		t.Errorf("visible class: got %q", got)
	}
	if got := Style(Tag{}); got != "transition-delay: 0s" {
		t.Errorf("default style: got %q", got)
	}
}
