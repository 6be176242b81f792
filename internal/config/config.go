package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

type Config struct {
	// MAINTAINER NOTE: If you add/change/remove config fields that affect build
	// behavior, keep the CLI flags in internal/cli/build.go and the TOML schema
	// in internal/config/file.go in sync.
	Targeting Targeting
	Page      Page
	Output    Output
	Runtime   Runtime
}

type Targeting struct {
	// Input is the source file or directory to build (positional argument).
	Input string

	// Include filters sources by name using Go path.Match style (see --include).
	// If a pattern contains '/', it matches the path relative to the input
	// directory; otherwise it matches the base name.
	Include []string

	// Exclude filters sources by name (see --exclude). Same matching rules
	// as Include.
	Exclude []string

	// Recursive descends into subdirectories of the input directory (see
	// --recursive). A single-file input ignores it.
	Recursive bool

	// MaxFiles limits how many sources to build (see --max-files). 0 means
	// unlimited.
	MaxFiles int

	// DryRun resolves the source set and prints the build plan without
	// converting (see --dry-run).
	DryRun bool
}

type Page struct {
	// Stylesheet is a URL linked from every page head (see --stylesheet).
	// Frontmatter may override it per page.
	Stylesheet string

	// Lang is the page language used when frontmatter has none (see --lang).
	Lang string

	// Title is a fallback page title (see --title). Empty means the source
	// file base name.
	Title string
}

type Output struct {
	// Dir is the output directory (see --output).
	Dir string

	// Clean deletes and recreates the output directory before building
	// (see --clean).
	Clean bool

	// ConsoleFormat controls the human-facing console sink format (see
	// --console-format). Allowed values: text, json, ndjson.
	ConsoleFormat string

	// ConsoleFilterStatus filters console output by result status (see
	// --console-filter-status). Allowed values: OK, SKIPPED, ERROR.
	ConsoleFilterStatus []string

	// Report writes a Markdown build report to this path (see --report).
	Report string

	// Out writes structured output to this path (see --out).
	Out string

	// OutFormat selects the format for --out (see --out-format).
	// Allowed values: json, ndjson. If empty, it is inferred from the --out
	// file extension.
	OutFormat string

	// Emit writes an additional structured event stream to stdout (see
	// --emit). Allowed values: json, ndjson.
	Emit []string

	// NoConsole suppresses the console sink (see --no-console).
	NoConsole bool
}

type Runtime struct {
	// Concurrency controls parallelism for source conversion (see
	// --concurrency). Must be >= 1.
	Concurrency int

	// Timeout is the global build timeout (see --timeout). Must be > 0.
	Timeout time.Duration

	// FailFast stops the build on the first conversion error (see
	// --fail-fast).
	FailFast bool

	// Verbose enables more detailed diagnostics.
	Verbose bool
}

func New() *Config {
	return &Config{
		Page: Page{
			Lang: "en",
		},
		Output: Output{
			Dir:           "til",
			Clean:         true,
			ConsoleFormat: "text",
		},
		Runtime: Runtime{
			Concurrency: 4,
			Timeout:     5 * time.Minute,
		},
	}
}

func (c *Config) Validate() error {
	// Normalize comma-delimited list inputs.
	c.Targeting.Include = splitCommaList(c.Targeting.Include)
	c.Targeting.Exclude = splitCommaList(c.Targeting.Exclude)
	c.Output.ConsoleFilterStatus = splitCommaList(c.Output.ConsoleFilterStatus)
	c.Output.Emit = splitCommaList(c.Output.Emit)

	// Targeting validation
	c.Targeting.Input = strings.TrimSpace(c.Targeting.Input)
	if c.Targeting.Input == "" {
		return errors.New("an input file or directory is required")
	}
	if c.Targeting.MaxFiles < 0 {
		return errors.New("--max-files must be >= 0")
	}

	// Output validation
	c.Output.Dir = strings.TrimSpace(c.Output.Dir)
	if c.Output.Dir == "" {
		return errors.New("--output must not be empty")
	}

	c.Output.ConsoleFormat = normalizeEnumValue(c.Output.ConsoleFormat)
	if c.Output.ConsoleFormat == "" {
		c.Output.ConsoleFormat = "text"
	}
	if c.Output.ConsoleFormat != "text" && c.Output.ConsoleFormat != "json" && c.Output.ConsoleFormat != "ndjson" {
		return fmt.Errorf("unsupported --console-format: %s (must be one of: text, json, ndjson)", c.Output.ConsoleFormat)
	}

	for i, emit := range c.Output.Emit {
		v := normalizeEnumValue(emit)
		if v != "json" && v != "ndjson" {
			return fmt.Errorf("unsupported --emit value: %s (must be one of: json, ndjson)", emit)
		}
		c.Output.Emit[i] = v
	}

	if c.Output.Out != "" {
		c.Output.OutFormat = normalizeEnumValue(c.Output.OutFormat)
		if c.Output.OutFormat == "" {
			ext := strings.ToLower(filepath.Ext(c.Output.Out))
			switch ext {
			case ".json":
				c.Output.OutFormat = "json"
			case ".ndjson", ".jsonl":
				c.Output.OutFormat = "ndjson"
			default:
				if ext == "" {
					return errors.New("cannot infer output format from file extension (missing extension); use --out-format")
				}
				return fmt.Errorf("cannot infer output format from file extension %q; use --out-format", ext)
			}
		} else if c.Output.OutFormat != "json" && c.Output.OutFormat != "ndjson" {
			return fmt.Errorf("unsupported output format: %s", c.Output.OutFormat)
		}
	}

	// Page validation
	c.Page.Lang = strings.TrimSpace(c.Page.Lang)
	if c.Page.Lang == "" {
		c.Page.Lang = "en"
	}

	// Runtime validation
	if c.Runtime.Concurrency <= 0 {
		return errors.New("--concurrency must be >= 1")
	}
	if c.Runtime.Timeout <= 0 {
		return errors.New("--timeout must be > 0")
	}

	return nil
}

func normalizeEnumValue(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func splitCommaList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			p := strings.TrimSpace(part)
			if p == "" {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}
