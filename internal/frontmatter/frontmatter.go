package frontmatter

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Fields are the recognized frontmatter keys. Unknown keys are ignored so
// authors can carry extra metadata without breaking builds.
type Fields struct {
	Title       string `yaml:"title"`
	Lang        string `yaml:"lang"`
	Description string `yaml:"description"`
	Keywords    string `yaml:"keywords"`
	Stylesheet  string `yaml:"stylesheet"`
}

var delimiter = []byte("---")

// Split separates a leading YAML frontmatter block from the document body.
//
// A frontmatter block is a first line consisting of "---", YAML content,
// and a closing "---" line. Documents without a leading fence are returned
// unchanged with zero Fields. An opened but unclosed fence, or YAML that
// does not parse, is an error; the caller reports it per-file.
func Split(src []byte) (Fields, []byte, error) {
	var fields Fields

	rest, ok := cutFence(src)
	if !ok {
		return fields, src, nil
	}

	block, body, ok := cutClosingFence(rest)
	if !ok {
		return fields, nil, fmt.Errorf("frontmatter fence opened but never closed")
	}

	if err := yaml.Unmarshal(block, &fields); err != nil {
		return Fields{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	return fields, body, nil
}

// cutFence returns the content after a leading "---" line, if present.
func cutFence(src []byte) ([]byte, bool) {
	line, rest, found := bytes.Cut(src, []byte("\n"))
	if !found {
		return nil, false
	}
	if !bytes.Equal(bytes.TrimRight(line, "\r"), delimiter) {
		return nil, false
	}
	return rest, true
}

// cutClosingFence splits the remaining input at the next "---" line.
func cutClosingFence(src []byte) (block, body []byte, ok bool) {
	offset := 0
	for offset <= len(src) {
		lineEnd := bytes.IndexByte(src[offset:], '\n')
		var line []byte
		next := len(src) + 1
		if lineEnd >= 0 {
			line = src[offset : offset+lineEnd]
			next = offset + lineEnd + 1
		} else {
			line = src[offset:]
		}
		if bytes.Equal(bytes.TrimRight(line, "\r"), delimiter) {
			body = nil
			if next <= len(src) {
				body = src[next:]
			}
			return src[:offset], body, true
		}
		if lineEnd < 0 {
			break
		}
		offset = next
	}
	return nil, nil, false
}
