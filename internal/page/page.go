package page

import (
	"fmt"
	"html"
	"strings"
)

// Meta holds the page-level metadata that shapes the emitted HTML head.
//
// Zero values fall back to defaults at render time: Lang defaults to "en"
// and Title defaults to the source file's base name (callers pass that in
// via Defaults). Keywords, Description, and Stylesheet are emitted only
// when non-empty.
type Meta struct {
	Title       string
	Lang        string
	Description string
	Keywords    string
	Stylesheet  string
}

// Defaults returns a copy of m with empty fields filled from fallback
// values. fallbackTitle is typically the source file base name.
func (m Meta) Defaults(fallbackTitle, fallbackLang, fallbackStylesheet string) Meta {
	if m.Title == "" {
		m.Title = fallbackTitle
	}
	if m.Lang == "" {
		m.Lang = fallbackLang
	}
	if m.Lang == "" {
		m.Lang = "en"
	}
	if m.Stylesheet == "" {
		m.Stylesheet = fallbackStylesheet
	}
	return m
}

// Render wraps already-rendered body HTML in a standalone document.
//
// The head layout is fixed: charset, title, optional keywords/description,
// viewport, optional stylesheet link. Meta values are escaped; body is
// trusted HTML produced by a converter.
func Render(meta Meta, body string) string {
	var b strings.Builder

	b.WriteString("<!doctype html>\n")
	fmt.Fprintf(&b, "<html lang=\"%s\">\n", html.EscapeString(meta.Lang))
	b.WriteString("<head>\n")
	b.WriteString("\t<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "\t<title>%s</title>\n", html.EscapeString(meta.Title))
	if meta.Keywords != "" {
		fmt.Fprintf(&b, "\t<meta name=\"keywords\" content=\"%s\" />\n", html.EscapeString(meta.Keywords))
	}
	if meta.Description != "" {
		fmt.Fprintf(&b, "\t<meta name=\"description\" content=\"%s\" />\n", html.EscapeString(meta.Description))
	}
	b.WriteString("\t<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\" />\n")
	if meta.Stylesheet != "" {
		fmt.Fprintf(&b, "\t<link rel=\"stylesheet\" href=\"%s\">\n", html.EscapeString(meta.Stylesheet))
	}
	b.WriteString("</head>\n")
	b.WriteString("<body>\n")

	body = strings.TrimRight(body, "\n")
	if body != "" {
		b.WriteString(body)
		b.WriteString("\n")
	}

	b.WriteString("</body>\n")
	b.WriteString("</html>")
	return b.String()
}
