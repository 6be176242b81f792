package converters

import (
	"context"
	"strings"
	"testing"

	"mdpress/internal/convert"
)

func textConv(t *testing.T) convert.Converter {
	t.Helper()
	c, ok := convert.Lookup("text")
	if !ok {
		t.Fatalf("text converter not registered")
	}
	return c
}

func TestTextConvert_SimplePage(t *testing.T) {
	c := textConv(t)
	got, err := c.Convert(context.Background(), []byte("Hello\n"), convert.Options{
		SourceName: "test",
		Lang:       "en",
	})
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}

	want := "<!doctype html>\n" +
		"<html lang=\"en\">\n" +
		"<head>\n" +
		"\t<meta charset=\"utf-8\">\n" +
		"\t<title>test</title>\n" +
		"\t<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\" />\n" +
		"</head>\n" +
		"<body>\n" +
		"<p>Hello</p>\n" +
		"</body>\n" +
		"</html>"
	if got != want {
		t.Fatalf("page mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestTextConvert_StylesheetLink(t *testing.T) {
	c := textConv(t)
	const css = "https://cdnjs.cloudflare.com/ajax/libs/tufte-css/1.8.0/tufte.min.css"
	got, err := c.Convert(context.Background(), []byte("Hello\n"), convert.Options{
		SourceName: "test",
		Lang:       "en",
		Stylesheet: css,
	})
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if !strings.Contains(got, "\t<link rel=\"stylesheet\" href=\""+css+"\">\n") {
		t.Fatalf("expected stylesheet link in page:\n%s", got)
	}
}

func TestTextConvert_ParagraphPerLine(t *testing.T) {
	c := textConv(t)
	got, err := c.Convert(context.Background(), []byte("one\n\ntwo\n"), convert.Options{SourceName: "n"})
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if !strings.Contains(got, "<p>one</p>\n\n<p>two</p>") {
		t.Fatalf("expected paragraphs separated by a blank line:\n%s", got)
	}
}

func TestTextConvert_EscapesHTML(t *testing.T) {
	c := textConv(t)
	got, err := c.Convert(context.Background(), []byte("<script>alert(1)</script>\n"), convert.Options{SourceName: "n"})
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if strings.Contains(got, "<script>") {
		t.Fatalf("raw HTML leaked into page:\n%s", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Fatalf("expected escaped markup in page:\n%s", got)
	}
}

func TestTextConvert_CanceledContext(t *testing.T) {
	c := textConv(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Convert(ctx, []byte("Hello\n"), convert.Options{SourceName: "n"}); err == nil {
		t.Fatalf("expected error from canceled context, got nil")
	}
}
