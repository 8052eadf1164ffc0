package site

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/crtvaryan/portfolio/internal/reveal"
)

// LoadContent returns Defaults overlaid with the YAML file at path. Keys the
// file leaves out keep their default; lists in the file replace the default
// list wholesale. An empty path returns the defaults.
func LoadContent(path string) (Content, error) {
	c := Defaults()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Content{}, fmt.Errorf("reading content %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Content{}, fmt.Errorf("parsing content %s: %w", path, err)
	}
	return c, nil
}

// Card pairs a repeated item with its reveal tag.
type Card[T any] struct {
	Item   T
	Reveal reveal.Tag
}

// Page is the view model for index.html.
type Page struct {
	Content
	Projects      []Card[Project]
	Reviews       []Card[Testimonial]
	CarouselLogos []string
	Year          int
}

// NewPage builds the view model. Portfolio cards are staggered by 0.1s and
// testimonials by 0.2s; the brand strip repeats once so the scroll loops.
func NewPage(c Content, year int) Page {
	p := Page{Content: c, Year: year}
	for i, item := range c.Portfolio {
		p.Projects = append(p.Projects, Card[Project]{Item: item, Reveal: reveal.Tag{Animation: "reveal-up", Delay: stagger(i, 1)}})
	}
	for i, item := range c.Testimonials {
		p.Reviews = append(p.Reviews, Card[Testimonial]{Item: item, Reveal: reveal.Tag{Animation: "reveal-up", Delay: stagger(i, 2)}})
	}
	p.CarouselLogos = append(append(p.CarouselLogos, c.Brands...), c.Brands...)
	return p
}

// stagger formats i*tenths/10 seconds without float noise: "0s", "0.1s", "1.2s".
func stagger(i, tenths int) string {
	return strconv.FormatFloat(float64(i*tenths)/10, 'f', -1, 64) + "s"
}
