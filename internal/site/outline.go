package site

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// Outline is the navigational skeleton of a rendered page.
type Outline struct {
	Sections []string // ids of section elements, in document order
	NavLinks []string // data-section targets of .nav-link anchors, deduplicated
}

// ParseOutline reads an HTML document and collects its section ids and nav
// link targets.
func ParseOutline(r io.Reader) (Outline, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Outline{}, fmt.Errorf("parsing html: %w", err)
	}

	var o Outline
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "section":
				if id := attr(n, "id"); id != "" {
					o.Sections = append(o.Sections, id)
				}
			case "a":
				if hasClass(n, "nav-link") {
					if target := attr(n, "data-section"); target != "" && !slices.Contains(o.NavLinks, target) {
						o.NavLinks = append(o.NavLinks, target)
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return o, nil
}

// Check reports nav links that point at no section.
func (o Outline) Check() error {
	var missing []string
	for _, target := range o.NavLinks {
		if !slices.Contains(o.Sections, target) {
			missing = append(missing, target)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("nav links without a section: %s", strings.Join(missing, ", "))
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	return slices.Contains(strings.Fields(attr(n, "class")), class)
}
