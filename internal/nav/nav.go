// Package nav tracks which page section sits under the viewport midline and
// where the highlight pill under the matching nav link should be drawn.
package nav

import (
	"math"

	"github.com/crtvaryan/portfolio/internal/viewport"
)

// Band is the observer configuration for section tracking: the visible area
// with its top and bottom halves cut away, leaving the midline.
var Band = viewport.Options{RootMargin: viewport.Margin{Top: -0.5, Bottom: -0.5}}

// Section is a page section registered for tracking.
type Section struct {
	ID string
	El viewport.Element
}

// Box is a nav link's rendered geometry relative to the nav bar.
type Box struct {
	Width, Height, Left float64
}

// Indicator positions the highlight. Opacity is 0 or 1.
type Indicator struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Left    float64 `json:"left"`
	Opacity int     `json:"opacity"`
}

// State is what the rendering layer reads. An empty Active means no section
// is active.
type State struct {
	Active    string    `json:"active,omitempty"`
	Indicator Indicator `json:"indicator"`
}

func (s State) HasActive() bool { return s.Active != "" }

// LinkLocator finds the rendered box of the nav link for a section.
type LinkLocator interface {
	LinkBox(section string) (Box, bool)
}

// LinkFunc adapts a function to LinkLocator.
type LinkFunc func(section string) (Box, bool)

func (f LinkFunc) LinkBox(section string) (Box, bool) { return f(section) }

// ResizeNotifier delivers viewport resize notifications.
type ResizeNotifier interface {
	OnResize(fn func()) (cancel func())
}

type hit struct {
	bounds viewport.Rect
	seq    uint64
}

// Highlighter owns the active-section state. Update is its only writer. It
// is not safe for concurrent use.
type Highlighter struct {
	obs   viewport.Observer
	links LinkLocator

	cancelResize func()
	sections     map[viewport.Element]string
	hits         map[string]hit
	seq          uint64
	midline      float64

	state   State
	subs    map[int]func(State)
	nextSub int
	closed  bool
}

// New creates a highlighter in the NoneActive state. resize may be nil when
// the host never resizes.
func New(obs viewport.Observer, resize ResizeNotifier, links LinkLocator) *Highlighter {
	h := &Highlighter{
		obs:      obs,
		links:    links,
		sections: make(map[viewport.Element]string),
		hits:     make(map[string]hit),
		subs:     make(map[int]func(State)),
	}
	if resize != nil {
		h.cancelResize = resize.OnResize(h.Resize)
	}
	return h
}

// Register starts tracking sections. Sections without an id or element are
// skipped.
func (h *Highlighter) Register(sections ...Section) {
	if h.closed {
		return
	}
	for _, s := range sections {
		if s.ID == "" || s.El == nil {
			continue
		}
		h.sections[s.El] = s.ID
		h.obs.Observe(s.El, h.Update)
	}
}

// Update applies one observation. Among the sections currently crossing the
// band, the one whose centre is nearest the midline wins; an exact tie goes
// to the most recently updated section.
func (h *Highlighter) Update(e viewport.Entry) {
	if h.closed {
		return
	}
	id, ok := h.sections[e.Target]
	if !ok {
		return
	}
	h.seq++
	h.midline = e.RootBounds.CenterY()
	if e.IsIntersecting {
		h.hits[id] = hit{bounds: e.Bounds, seq: h.seq}
	} else {
		delete(h.hits, id)
	}

	if next := h.pick(); next != h.state.Active {
		h.state.Active = next
		h.relayout()
	}
}

func (h *Highlighter) pick() string {
	best, bestDist, bestSeq := "", math.Inf(1), uint64(0)
	for id, c := range h.hits {
		d := math.Abs(c.bounds.CenterY() - h.midline)
		if d < bestDist || (d == bestDist && c.seq > bestSeq) {
			best, bestDist, bestSeq = id, d, c.seq
		}
	}
	return best
}

// Resize recomputes the indicator geometry. The active section is left
// alone.
func (h *Highlighter) Resize() {
	if h.closed {
		return
	}
	h.relayout()
}

func (h *Highlighter) relayout() {
	var ind Indicator
	if h.state.Active != "" && h.links != nil {
		if b, ok := h.links.LinkBox(h.state.Active); ok {
			ind = Indicator{Width: b.Width, Height: b.Height, Left: b.Left, Opacity: 1}
		}
	}
	h.state.Indicator = ind
	for id := 0; id < h.nextSub; id++ {
		if fn, ok := h.subs[id]; ok {
			fn(h.state)
		}
	}
}

// Active returns the active section id, if any.
func (h *Highlighter) Active() (string, bool) {
	return h.state.Active, h.state.Active != ""
}

// State returns a copy of the current state.
func (h *Highlighter) State() State { return h.state }

// Subscribe registers fn for every state publication.
func (h *Highlighter) Subscribe(fn func(State)) (cancel func()) {
	id := h.nextSub
	h.nextSub++
	h.subs[id] = fn
	return func() { delete(h.subs, id) }
}

// Close stops all observation and resize listening.
func (h *Highlighter) Close() {
	if h.closed {
		return
	}
	h.closed = true
	for el := range h.sections {
		h.obs.Unobserve(el)
	}
	if h.cancelResize != nil {
		h.cancelResize()
	}
	clear(h.sections)
	clear(h.hits)
	clear(h.subs)
}
