package engine

import (
	"path/filepath"
	"strings"

	"mdpress/internal/convert"
)

// PlannedSource pairs a source with its converter and output location.
// Converter is nil when no registered converter claims the extension;
// the scheduler reports those as SKIPPED.
type PlannedSource struct {
	Source    Source
	Converter convert.Converter
	Output    string
}

// BuildPlan is the full set of conversions for one run.
type BuildPlan struct {
	Sources []PlannedSource
}

// NewBuildPlan routes each source to a converter by extension and computes
// its output path. Output placement mirrors the source's relative path under
// the output directory, with the extension replaced by ".html".
func NewBuildPlan(sources []Source, outDir string) *BuildPlan {
	plan := &BuildPlan{}
	for _, s := range sources {
		ps := PlannedSource{Source: s}
		ext := filepath.Ext(s.Rel)
		if c, ok := convert.ForExtension(ext); ok {
			ps.Converter = c
			ps.Output = filepath.Join(outDir, outputRel(s.Rel, ext))
		}
		plan.Sources = append(plan.Sources, ps)
	}
	return plan
}

func outputRel(rel, ext string) string {
	return filepath.FromSlash(strings.TrimSuffix(rel, ext) + ".html")
}
