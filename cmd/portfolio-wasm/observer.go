//go:build js && wasm

package main

import (
	"strconv"
	"syscall/js"

	"github.com/crtvaryan/portfolio/internal/viewport"
)

// domElement is a page node. Bounds are in document coordinates so they
// compare with what GeometryObserver reports.
type domElement struct {
	v  js.Value
	id int
}

func (d *domElement) Bounds() viewport.Rect {
	return docRect(d.v.Call("getBoundingClientRect"))
}

func docRect(r js.Value) viewport.Rect {
	if r.IsNull() || r.IsUndefined() {
		return viewport.Rect{}
	}
	scrollY := window.Get("scrollY").Float()
	return viewport.Rect{
		X:      r.Get("x").Float(),
		Y:      r.Get("y").Float() + scrollY,
		Width:  r.Get("width").Float(),
		Height: r.Get("height").Float(),
	}
}

type watch struct {
	el *domElement
	fn viewport.Callback
}

// browserObserver implements viewport.Observer on top of the browser's
// IntersectionObserver.
type browserObserver struct {
	io      js.Value
	cb      js.Func
	watches map[int]watch
	nextID  int
}

func newBrowserObserver(opts viewport.Options) *browserObserver {
	o := &browserObserver{watches: make(map[int]watch)}
	o.cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		o.dispatch(args[0])
		return nil
	})
	cfg := map[string]any{
		"threshold":  opts.Threshold,
		"rootMargin": rootMargin(opts.RootMargin),
	}
	o.io = window.Get("IntersectionObserver").New(o.cb, cfg)
	return o
}

// sharedObservers returns a Factory that hands out one IntersectionObserver
// per distinct option set.
func sharedObservers() viewport.Factory {
	cache := make(map[viewport.Options]*browserObserver)
	return func(opts viewport.Options) viewport.Observer {
		o, ok := cache[opts]
		if !ok {
			o = newBrowserObserver(opts)
			cache[opts] = o
		}
		return o
	}
}

func rootMargin(m viewport.Margin) string {
	pct := func(f float64) string { return strconv.FormatFloat(f*100, 'f', -1, 64) + "%" }
	return pct(m.Top) + " " + pct(m.Right) + " " + pct(m.Bottom) + " " + pct(m.Left)
}

// Observe accepts only elements created by this package.
func (o *browserObserver) Observe(el viewport.Element, fn viewport.Callback) {
	d, ok := el.(*domElement)
	if !ok {
		return
	}
	o.Unobserve(d)
	o.nextID++
	d.id = o.nextID
	d.v.Get("dataset").Set("watch", strconv.Itoa(d.id))
	o.watches[d.id] = watch{el: d, fn: fn}
	o.io.Call("observe", d.v)
}

func (o *browserObserver) Unobserve(el viewport.Element) {
	d, ok := el.(*domElement)
	if !ok || d.id == 0 {
		return
	}
	if _, ok := o.watches[d.id]; ok {
		delete(o.watches, d.id)
		o.io.Call("unobserve", d.v)
	}
	d.id = 0
}

// dispatch delivers a batch: entering entries first, then leaving ones.
func (o *browserObserver) dispatch(entries js.Value) {
	type pending struct {
		w watch
		e viewport.Entry
	}
	var entering, leaving []pending
	for i := 0; i < entries.Length(); i++ {
		je := entries.Index(i)
		id, err := strconv.Atoi(je.Get("target").Get("dataset").Get("watch").String())
		if err != nil {
			continue
		}
		w, ok := o.watches[id]
		if !ok {
			continue
		}
		e := viewport.Entry{
			Target:         w.el,
			Bounds:         docRect(je.Get("boundingClientRect")),
			RootBounds:     docRect(je.Get("rootBounds")),
			Intersection:   docRect(je.Get("intersectionRect")),
			Ratio:          je.Get("intersectionRatio").Float(),
			IsIntersecting: je.Get("isIntersecting").Bool(),
		}
		if e.IsIntersecting {
			entering = append(entering, pending{w, e})
		} else {
			leaving = append(leaving, pending{w, e})
		}
	}
	for _, p := range append(entering, leaving...) {
		// An earlier callback in this batch may have unobserved the target.
		if cur, ok := o.watches[p.w.el.id]; ok && cur.el == p.w.el {
			p.w.fn(p.e)
		}
	}
}
