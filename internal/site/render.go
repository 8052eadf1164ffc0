package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/crtvaryan/portfolio/internal/reveal"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed all:static
var staticFS embed.FS

// Static returns the embedded asset tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

var sanitizer = bluemonday.UGCPolicy()

// Markdown renders md to sanitized HTML. On a conversion error the input is
// returned escaped.
func Markdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes()))
}

// Funcs are the helpers available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"markdown": Markdown,
		"revealClass": func(tag reveal.Tag) string {
			return reveal.ClassFor(tag, false)
		},
		"revealStyle": func(tag reveal.Tag) template.CSS {
			return template.CSS(reveal.Style(tag))
		},
		"tag": func(animation, delay string) reveal.Tag {
			return reveal.Tag{Animation: animation, Delay: delay}
		},
		"add": func(a, b int) int { return a + b },
	}
}

// Templates parses every embedded template.
func Templates() (*template.Template, error) {
	t, err := template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return t, nil
}

// RenderIndex executes index.html for p.
func RenderIndex(t *template.Template, p Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "index.html", p); err != nil {
		return nil, fmt.Errorf("rendering index: %w", err)
	}
	return buf.Bytes(), nil
}
