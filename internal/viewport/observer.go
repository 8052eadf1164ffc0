// Package viewport models viewport membership observation: callers register
// elements and are told when an element crosses into or out of a root box
// derived from the visible area.
//
// The Observer interface is the capability the rest of the module depends
// on. GeometryObserver is an implementation that evaluates membership from
// element bounds whenever the owning Viewport scrolls or is refreshed; the
// browser bridge supplies another one backed by IntersectionObserver.
package viewport

// Element is anything that occupies a box on the page. Implementations are
// used as map keys, so they must be comparable (pointer types are).
type Element interface {
	Bounds() Rect
}

// Entry describes one membership observation for a single element.
type Entry struct {
	Target         Element
	Bounds         Rect
	RootBounds     Rect
	Intersection   Rect
	Ratio          float64
	IsIntersecting bool
}

// Callback receives entries for an observed element.
type Callback func(Entry)

// Observer is the viewport membership capability.
type Observer interface {
	// Observe starts watching el. An initial entry is delivered to fn.
	Observe(el Element, fn Callback)
	// Unobserve stops watching el. No callback for el fires afterwards.
	Unobserve(el Element)
}

// Factory builds an Observer for the given options. Consumers that own
// their visibility rules take a Factory instead of a ready Observer.
type Factory func(Options) Observer

// Options configures an Observer.
type Options struct {
	// Threshold is the fraction of the element's area that must overlap the
	// root for the element to count as inside. 0 means any contact.
	Threshold float64
	// RootMargin adjusts the visible area before testing.
	RootMargin Margin
}

// Box is a fixed-position Element, handy for layouts computed ahead of time.
type Box struct {
	Name string
	Rect Rect
}

func (b *Box) Bounds() Rect { return b.Rect }

type registration struct {
	el     Element
	fn     Callback
	inside int8 // -1 until the first delivery
	live   bool
}

// GeometryObserver evaluates membership from element bounds. It is not safe
// for concurrent use; drive it from a single event loop.
type GeometryObserver struct {
	vp     *Viewport
	opts   Options
	regs   []*registration
	closed bool
}

var _ Observer = (*GeometryObserver)(nil)

// Observe registers el. Observing an element twice replaces its callback.
func (o *GeometryObserver) Observe(el Element, fn Callback) {
	if o.closed || el == nil || fn == nil {
		return
	}
	o.Unobserve(el)
	reg := &registration{el: el, fn: fn, inside: -1, live: true}
	o.regs = append(o.regs, reg)
	o.deliver(reg, o.vp.root(o.opts.RootMargin), false)
}

// Unobserve drops el. Pending deliveries for it in the current pass are
// discarded.
func (o *GeometryObserver) Unobserve(el Element) {
	for i, reg := range o.regs {
		if reg.el == el {
			reg.live = false
			o.regs = append(o.regs[:i], o.regs[i+1:]...)
			return
		}
	}
}

// Disconnect drops every element and detaches the observer from its
// viewport. The observer is unusable afterwards.
func (o *GeometryObserver) Disconnect() {
	for _, reg := range o.regs {
		reg.live = false
	}
	o.regs = nil
	o.closed = true
	o.vp.detach(o)
}

// Observed reports how many elements are currently watched.
func (o *GeometryObserver) Observed() int { return len(o.regs) }

func (o *GeometryObserver) evaluate() {
	if o.closed {
		return
	}
	root := o.vp.root(o.opts.RootMargin)
	regs := append([]*registration(nil), o.regs...)
	// Entering elements go first so a consumer tracking one active element
	// never sees a gap while the next one takes over.
	for _, reg := range regs {
		o.deliver(reg, root, true)
	}
	for _, reg := range regs {
		o.deliver(reg, root, false)
	}
}

// deliver computes reg's entry against root and fires the callback on the
// first delivery or when the inside/outside state flips. With enteringOnly
// set, only flips to inside are delivered.
func (o *GeometryObserver) deliver(reg *registration, root Rect, enteringOnly bool) {
	if !reg.live {
		return
	}
	e := measure(reg.el, root)
	var inside int8
	if e.IsIntersecting && e.Ratio >= o.opts.Threshold {
		inside = 1
	}
	if inside == reg.inside || (enteringOnly && inside == 0) {
		return
	}
	reg.inside = inside
	reg.fn(e)
}

func measure(el Element, root Rect) Entry {
	b := el.Bounds()
	e := Entry{Target: el, Bounds: b, RootBounds: root}
	if !b.Touches(root) {
		return e
	}
	e.IsIntersecting = true
	e.Intersection = b.Intersect(root)
	if area := b.Area(); area > 0 {
		e.Ratio = e.Intersection.Area() / area
	} else {
		e.Ratio = 1
	}
	return e
}
