package converters

import (
	"context"
	"strings"
	"testing"

	"mdpress/internal/convert"
)

func mdConv(t *testing.T) convert.Converter {
	t.Helper()
	c, ok := convert.Lookup("markdown")
	if !ok {
		t.Fatalf("markdown converter not registered")
	}
	return c
}

func TestMarkdownConvert_BasicStyling(t *testing.T) {
	c := mdConv(t)
	src := []byte("Hello\n\n---\n\n**Bold**\n*Italics*\n")
	got, err := c.Convert(context.Background(), src, convert.Options{
		SourceName: "markdown",
		Lang:       "en",
	})
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}

	for _, want := range []string{
		"<title>markdown</title>",
		"<p>Hello</p>",
		"<hr>",
		"<strong>Bold</strong>",
		"<em>Italics</em>",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in page:\n%s", want, got)
		}
	}
}

func TestMarkdownConvert_CodeBlock(t *testing.T) {
	c := mdConv(t)
	src := []byte("```\nfmt.Println(\"hi\")\n```\n")
	got, err := c.Convert(context.Background(), src, convert.Options{SourceName: "code"})
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if !strings.Contains(got, "<pre>") || !strings.Contains(got, "</pre>") {
		t.Fatalf("expected fenced code block rendered as <pre>:\n%s", got)
	}
}

func TestMarkdownConvert_FrontmatterShapesHead(t *testing.T) {
	c := mdConv(t)
	src := []byte(strings.Join([]string{
		"---",
		"title: My Post",
		"lang: fr",
		"keywords: til",
		"description: short",
		"---",
		"Body",
		"",
	}, "\n"))

	got, err := c.Convert(context.Background(), src, convert.Options{
		SourceName: "fallback-name",
		Lang:       "en",
	})
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}

	for _, want := range []string{
		"<html lang=\"fr\">",
		"<title>My Post</title>",
		"\t<meta name=\"keywords\" content=\"til\" />",
		"\t<meta name=\"description\" content=\"short\" />",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in page:\n%s", want, got)
		}
	}
	if strings.Contains(got, "fallback-name") {
		t.Fatalf("fallback title should not be used when frontmatter sets one:\n%s", got)
	}
	if !strings.Contains(got, "<p>Body</p>") {
		t.Fatalf("frontmatter leaked into body:\n%s", got)
	}
}

func TestMarkdownConvert_FrontmatterStylesheetOverridesGlobal(t *testing.T) {
	c := mdConv(t)
	src := []byte("---\nstylesheet: per-page.css\n---\nBody\n")
	got, err := c.Convert(context.Background(), src, convert.Options{
		SourceName: "n",
		Stylesheet: "global.css",
	})
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if !strings.Contains(got, "href=\"per-page.css\"") {
		t.Fatalf("expected per-page stylesheet:\n%s", got)
	}
	if strings.Contains(got, "global.css") {
		t.Fatalf("global stylesheet should be overridden:\n%s", got)
	}
}

func TestMarkdownConvert_MalformedFrontmatterFails(t *testing.T) {
	c := mdConv(t)
	src := []byte("---\ntitle: [unclosed\n---\nBody\n")
	if _, err := c.Convert(context.Background(), src, convert.Options{SourceName: "n"}); err == nil {
		t.Fatalf("expected error for malformed frontmatter, got nil")
	}
}

func TestRegistry_ExtensionRouting(t *testing.T) {
	tests := []struct {
		ext    string
		wantID string
	}{
		{ext: ".md", wantID: "markdown"},
		{ext: ".MD", wantID: "markdown"},
		{ext: ".markdown", wantID: "markdown"},
		{ext: ".txt", wantID: "text"},
	}
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			c, ok := convert.ForExtension(tt.ext)
			if !ok {
				t.Fatalf("no converter for %s", tt.ext)
			}
			if c.ID() != tt.wantID {
				t.Fatalf("extension %s routed to %s, want %s", tt.ext, c.ID(), tt.wantID)
			}
		})
	}

	if _, ok := convert.ForExtension(".docx"); ok {
		t.Fatalf("expected no converter for .docx")
	}
}
