//go:build js && wasm

// Command portfolio-wasm runs the page behaviour in the browser: scroll
// reveals, the nav highlight and the contact form.
package main

import (
	"context"
	"log"
	"strconv"
	"syscall/js"

	"github.com/crtvaryan/portfolio/internal/contactform"
	"github.com/crtvaryan/portfolio/internal/nav"
	"github.com/crtvaryan/portfolio/internal/reveal"
	"github.com/crtvaryan/portfolio/internal/viewport"
)

var (
	window   = js.Global()
	document = window.Get("document")
)

func main() {
	startReveals(sharedObservers())

	startNav(newBrowserObserver(nav.Band), windowResize{})

	startContactForm()

	select {}
}

func startReveals(newObs viewport.Factory) {
	nodes := document.Call("querySelectorAll", ".animate-on-scroll")
	for i := 0; i < nodes.Length(); i++ {
		node := nodes.Index(i)
		t := reveal.New(newObs, reveal.OnReveal(func() {
			node.Get("classList").Call("add", "is-visible")
		}))
		t.Attach(&domElement{v: node})
	}
}

func startNav(obs viewport.Observer, resize nav.ResizeNotifier) *nav.Highlighter {
	h := nav.New(obs, resize, nav.LinkFunc(desktopLinkBox))
	h.Subscribe(paintNav)

	nodes := document.Call("querySelectorAll", "section[id]")
	for i := 0; i < nodes.Length(); i++ {
		node := nodes.Index(i)
		h.Register(nav.Section{ID: node.Get("id").String(), El: &domElement{v: node}})
	}
	return h
}

func desktopLinkBox(section string) (nav.Box, bool) {
	link := document.Call("querySelector", `#desktop-nav-links .nav-link[data-section="`+section+`"]`)
	if link.IsNull() {
		return nav.Box{}, false
	}
	return nav.Box{
		Width:  link.Get("offsetWidth").Float(),
		Height: link.Get("offsetHeight").Float(),
		Left:   link.Get("offsetLeft").Float(),
	}, true
}

func paintNav(s nav.State) {
	if pill := document.Call("getElementById", "nav-highlight"); !pill.IsNull() {
		style := pill.Get("style")
		style.Set("width", px(s.Indicator.Width))
		style.Set("height", px(s.Indicator.Height))
		style.Set("left", px(s.Indicator.Left))
		style.Set("opacity", strconv.Itoa(s.Indicator.Opacity))
	}

	links := document.Call("querySelectorAll", ".nav-link[data-section]")
	for i := 0; i < links.Length(); i++ {
		link := links.Index(i)
		active := s.HasActive() && link.Get("dataset").Get("section").String() == s.Active
		link.Get("classList").Call("toggle", "active", active)
	}
}

func px(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) + "px" }

func startContactForm() {
	formEl := document.Call("getElementById", "contact-form")
	if formEl.IsNull() {
		return
	}
	status := document.Call("getElementById", "form-status")
	field := func(id string) js.Value { return document.Call("getElementById", id) }

	s := contactform.NewSubmitter(window.Get("location").Get("origin").String() + "/api/contact")
	s.OnStatus = func(text string) {
		if !status.IsNull() {
			status.Set("textContent", text)
		}
	}

	submit := js.FuncOf(func(this js.Value, args []js.Value) any {
		args[0].Call("preventDefault")
		f := &contactform.Form{
			Name:    field("name").Get("value").String(),
			Email:   field("email").Get("value").String(),
			Message: field("message").Get("value").String(),
		}
		// fetch blocks, so it cannot run on the event loop goroutine.
		go func() {
			if err := s.Submit(context.Background(), f); err != nil {
				log.Printf("contact form: %v", err)
			}
			field("name").Set("value", f.Name)
			field("email").Set("value", f.Email)
			field("message").Set("value", f.Message)
		}()
		return nil
	})
	formEl.Call("addEventListener", "submit", submit)
}

// windowResize adapts window resize events to nav.ResizeNotifier.
type windowResize struct{}

func (windowResize) OnResize(fn func()) func() {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	})
	window.Call("addEventListener", "resize", cb)
	return func() {
		window.Call("removeEventListener", "resize", cb)
		cb.Release()
	}
}
