package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"mdpress/internal/convert"
)

// mockConverter implements convert.Converter for testing purposes
type mockConverter struct {
	id          string
	title       string
	description string
	extensions  []string
}

func (m *mockConverter) ID() string            { return m.id }
func (m *mockConverter) Title() string         { return m.title }
func (m *mockConverter) Description() string   { return m.description }
func (m *mockConverter) Extensions() []string  { return m.extensions }
func (m *mockConverter) Convert(ctx context.Context, src []byte, opts convert.Options) (string, error) {
	return "", nil
}

func TestPrintConverter(t *testing.T) {
	c := &mockConverter{
		id:          "simple-converter",
		title:       "Simple Converter",
		description: "A simple converter description",
		extensions:  []string{".abc", ".def"},
	}

	var buf bytes.Buffer
	printConverter(&buf, c)

	out := buf.String()
	for _, want := range []string{
		"CONVERTER: simple-converter",
		"Simple Converter",
		"A simple converter description",
		"Extensions: .abc, .def",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}
