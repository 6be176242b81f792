package convert

import "context"

// Converter turns one source file into a standalone HTML page body.
type Converter interface {
	ID() string
	Title() string
	Description() string

	// Extensions lists the source file extensions this converter handles,
	// lowercase and including the leading dot (".md").
	Extensions() []string

	// Convert renders the source bytes into a full HTML document.
	// Converters must not touch the filesystem; the engine owns IO.
	Convert(ctx context.Context, src []byte, opts Options) (string, error)
}

// Options carries the page-level settings a converter needs.
type Options struct {
	// SourceName is the source file base name without extension; it is the
	// fallback page title.
	SourceName string

	// Stylesheet is the global stylesheet URL. Frontmatter may override it
	// per page.
	Stylesheet string

	// Lang is the fallback page language.
	Lang string

	// Title is the fallback page title; when set it takes precedence over
	// SourceName.
	Title string
}

// FallbackTitle resolves the title used when frontmatter carries none.
func (o Options) FallbackTitle() string {
	if o.Title != "" {
		return o.Title
	}
	return o.SourceName
}
