package converters

import (
	"context"
	"html"
	"strings"

	"mdpress/internal/convert"
	"mdpress/internal/page"
)

type textConverter struct{}

func init() {
	convert.Register(textConverter{})
}

func (textConverter) ID() string    { return "text" }
func (textConverter) Title() string { return "Plain text to HTML" }

func (textConverter) Description() string {
	return "Wraps each line of a plain-text source in a paragraph tag. Blank lines " +
		"are preserved as paragraph breaks. Text sources carry no frontmatter."
}

func (textConverter) Extensions() []string {
	return []string{".txt"}
}

func (textConverter) Convert(ctx context.Context, src []byte, opts convert.Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var b strings.Builder
	for _, line := range strings.Split(string(src), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString("<p>")
		b.WriteString(html.EscapeString(line))
		b.WriteString("</p>\n")
	}

	meta := page.Meta{}.Defaults(opts.FallbackTitle(), opts.Lang, opts.Stylesheet)
	return page.Render(meta, b.String()), nil
}
