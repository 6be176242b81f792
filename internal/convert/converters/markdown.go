package converters

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"

	"mdpress/internal/convert"
	"mdpress/internal/frontmatter"
	"mdpress/internal/page"
)

type markdownConverter struct {
	md goldmark.Markdown
}

func init() {
	convert.Register(&markdownConverter{md: goldmark.New()})
}

func (c *markdownConverter) ID() string    { return "markdown" }
func (c *markdownConverter) Title() string { return "Markdown to HTML" }

func (c *markdownConverter) Description() string {
	return "Renders CommonMark sources as HTML pages. A leading YAML frontmatter block " +
		"(title, lang, description, keywords, stylesheet) shapes the page head; " +
		"missing fields fall back to the build-wide defaults."
}

func (c *markdownConverter) Extensions() []string {
	return []string{".md", ".markdown"}
}

func (c *markdownConverter) Convert(ctx context.Context, src []byte, opts convert.Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fields, body, err := frontmatter.Split(src)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := c.md.Convert(body, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}

	meta := page.Meta{
		Title:       fields.Title,
		Lang:        fields.Lang,
		Description: fields.Description,
		Keywords:    fields.Keywords,
		Stylesheet:  fields.Stylesheet,
	}
	meta = meta.Defaults(opts.FallbackTitle(), opts.Lang, opts.Stylesheet)

	return page.Render(meta, buf.String()), nil
}
