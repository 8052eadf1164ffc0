// Package reveal flips a one-shot "visible" flag on a page element the first
// time it scrolls into view. The rendering layer turns the flag into the
// is-visible class that starts the CSS transition.
package reveal

import (
	"strings"

	"github.com/crtvaryan/portfolio/internal/viewport"
)

// DefaultThreshold is the fraction of an element that must be on screen.
const DefaultThreshold = 0.1

// Tag names the animation style and transition delay of a revealed element.
type Tag struct {
	Animation string // reveal-up, slide-in-left, slide-in-right
	Delay     string // CSS time, e.g. "0.2s"
}

type Option func(*Tracker)

// WithThreshold overrides DefaultThreshold. 0 counts any overlap.
func WithThreshold(f float64) Option {
	return func(t *Tracker) { t.threshold = f }
}

// OnReveal registers fn to run once, when the element is revealed.
func OnReveal(fn func()) Option {
	return func(t *Tracker) { t.onReveal = fn }
}

// Tracker holds the membership record for one element. It is not safe for
// concurrent use.
type Tracker struct {
	obs       viewport.Observer
	threshold float64
	onReveal  func()

	el      viewport.Element
	gen     uint64
	visible bool
}

// New builds a tracker whose observer comes from newObs, configured with
// the tracker's threshold so that crossing it is always reported.
func New(newObs viewport.Factory, opts ...Option) *Tracker {
	t := &Tracker{threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(t)
	}
	t.obs = newObs(viewport.Options{Threshold: t.threshold})
	return t
}

// Attach points the tracker at el, releasing whatever element it watched
// before. A nil el only releases. Once revealed the tracker never observes
// again.
func (t *Tracker) Attach(el viewport.Element) {
	t.release()
	t.el = el
	if el == nil || t.visible {
		return
	}
	gen := t.gen
	t.obs.Observe(el, func(e viewport.Entry) { t.handle(gen, e) })
}

func (t *Tracker) handle(gen uint64, e viewport.Entry) {
	if gen != t.gen || t.visible {
		return
	}
	if !e.IsIntersecting || e.Ratio < t.threshold {
		return
	}
	t.visible = true
	t.release()
	if t.onReveal != nil {
		t.onReveal()
	}
}

// release unobserves the current element and invalidates its callbacks.
func (t *Tracker) release() {
	t.gen++
	if t.el != nil {
		t.obs.Unobserve(t.el)
	}
}

// Visible reports whether the element has been revealed.
func (t *Tracker) Visible() bool { return t.visible }

// Close releases the observation. Safe to call more than once.
func (t *Tracker) Close() {
	t.release()
	t.el = nil
}

// Class is the class list for the wrapper element.
func (t *Tracker) Class(tag Tag) string {
	return ClassFor(tag, t.visible)
}

// ClassFor builds the wrapper class list without a tracker, for server-side
// rendering of the initial hidden state.
func ClassFor(tag Tag, visible bool) string {
	parts := []string{"animate-on-scroll"}
	if tag.Animation != "" {
		parts = append(parts, tag.Animation)
	}
	if visible {
		parts = append(parts, "is-visible")
	}
	return strings.Join(parts, " ")
}

// Style is the inline style carrying the transition delay.
func Style(tag Tag) string {
	delay := tag.Delay
	if delay == "" {
		delay = "0s"
	}
	return "transition-delay: " + delay
}
