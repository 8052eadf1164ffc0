package viewport

// Viewport is the visible window onto a document: a scroll offset plus a
// size. It owns the GeometryObservers created from it and re-evaluates them
// when the offset changes.
type Viewport struct {
	scrollX, scrollY float64
	width, height    float64

	observers []*GeometryObserver
	resize    map[int]func()
	nextID    int
}

// New returns a viewport of the given size scrolled to the top.
func New(width, height float64) *Viewport {
	return &Viewport{width: width, height: height, resize: make(map[int]func())}
}

// Visible is the on-screen area in document coordinates.
func (v *Viewport) Visible() Rect {
	return Rect{X: v.scrollX, Y: v.scrollY, Width: v.width, Height: v.height}
}

// Midline is the document Y coordinate at the vertical centre of the screen.
func (v *Viewport) Midline() float64 { return v.scrollY + v.height/2 }

// NewObserver creates an observer bound to v.
func (v *Viewport) NewObserver(opts Options) *GeometryObserver {
	o := &GeometryObserver{vp: v, opts: opts}
	v.observers = append(v.observers, o)
	return o
}

// ScrollTo moves the vertical offset and re-evaluates every observer.
func (v *Viewport) ScrollTo(y float64) {
	v.scrollY = y
	v.Refresh()
}

// Observers returns a Factory whose observers watch v.
func (v *Viewport) Observers() Factory {
	return func(opts Options) Observer { return v.NewObserver(opts) }
}

// ScrollBy is ScrollTo relative to the current offset.
func (v *Viewport) ScrollBy(dy float64) { v.ScrollTo(v.scrollY + dy) }

// Refresh re-evaluates every observer against the current geometry. Call it
// after the layout changes under a stationary viewport.
func (v *Viewport) Refresh() {
	obs := append([]*GeometryObserver(nil), v.observers...)
	for _, o := range obs {
		o.evaluate()
	}
}

// Resize records a new size and notifies resize listeners. Membership is
// not re-evaluated here; the next ScrollTo or Refresh picks it up.
func (v *Viewport) Resize(width, height float64) {
	v.width, v.height = width, height
	fns := make([]func(), 0, len(v.resize))
	for id := 0; id < v.nextID; id++ {
		if fn, ok := v.resize[id]; ok {
			fns = append(fns, fn)
		}
	}
	for _, fn := range fns {
		fn()
	}
}

// OnResize registers fn to run after every Resize. The returned function
// removes it.
func (v *Viewport) OnResize(fn func()) (cancel func()) {
	id := v.nextID
	v.nextID++
	v.resize[id] = fn
	return func() { delete(v.resize, id) }
}

// Listeners reports how many resize listeners are registered.
func (v *Viewport) Listeners() int { return len(v.resize) }

func (v *Viewport) root(m Margin) Rect { return m.apply(v.Visible()) }

func (v *Viewport) detach(o *GeometryObserver) {
	for i, cur := range v.observers {
		if cur == o {
			v.observers = append(v.observers[:i], v.observers[i+1:]...)
			return
		}
	}
}
