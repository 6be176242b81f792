package engine

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"mdpress/internal/config"
)

// Source is a single input file resolved during discovery.
type Source struct {
	// Path locates the file on disk, rooted wherever the input argument was.
	Path string

	// Rel is the path relative to the input root, used for pattern matching,
	// display, and output placement. For a single-file input it is the base
	// name.
	Rel string
}

// ResolveSources expands the configured input into a list of source files.
//
// A file input yields exactly that file. A directory input yields its
// entries, descending into subdirectories only when Recursive is set.
// Hidden entries and the output directory are skipped. A missing input
// is a fatal error.
func ResolveSources(cfg *config.Config) ([]Source, bool, error) {
	input := cfg.Targeting.Input

	info, err := os.Stat(input)
	if err != nil {
		return nil, false, fmt.Errorf("input %s: %w", input, err)
	}

	if !info.IsDir() {
		return []Source{{Path: input, Rel: filepath.Base(input)}}, true, nil
	}

	outAbs, err := filepath.Abs(cfg.Output.Dir)
	if err != nil {
		return nil, false, fmt.Errorf("resolve output dir: %w", err)
	}

	var sources []Source
	walkErr := filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path == input {
				return nil
			}
			if strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if abs, err := filepath.Abs(path); err == nil && abs == outAbs {
				// Never rebuild our own output.
				return filepath.SkipDir
			}
			if !cfg.Targeting.Recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") {
			return nil
		}
		rel, err := filepath.Rel(input, path)
		if err != nil {
			return err
		}
		sources = append(sources, Source{Path: path, Rel: filepath.ToSlash(rel)})
		return nil
	})
	if walkErr != nil {
		return nil, false, fmt.Errorf("scan input directory %s: %w", input, walkErr)
	}

	sort.Slice(sources, func(i, j int) bool { return sources[i].Rel < sources[j].Rel })
	return sources, false, nil
}
