package engine

import (
	"path"
	"strings"

	"mdpress/internal/config"
)

// FilterSources applies include/exclude patterns and the max-files cap.
//
// Patterns use Go path.Match syntax. A pattern containing '/' matches the
// source's relative path; otherwise it matches the base name, so patterns
// like "*.md" work regardless of nesting.
func FilterSources(sources []Source, cfg *config.Config) []Source {
	if cfg == nil {
		panic("engine.FilterSources: cfg must not be nil")
	}

	includePatterns := cfg.Targeting.Include
	excludePatterns := cfg.Targeting.Exclude

	var filtered []Source
	for _, s := range sources {
		// If Include is set, must match at least one
		if len(includePatterns) > 0 && !matchesAnyPattern(includePatterns, s.Rel) {
			continue
		}

		// If Exclude is set, must not match any
		if len(excludePatterns) > 0 && matchesAnyPattern(excludePatterns, s.Rel) {
			continue
		}

		filtered = append(filtered, s)
	}

	if cfg.Targeting.MaxFiles > 0 && len(filtered) > cfg.Targeting.MaxFiles {
		filtered = filtered[:cfg.Targeting.MaxFiles]
	}

	return filtered
}

func matchesAnyPattern(patterns []string, rel string) bool {
	for _, p := range patterns {
		if matchPattern(p, rel) {
			return true
		}
	}
	return false
}

func matchPattern(pattern, rel string) bool {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return false
	}
	if strings.Contains(pattern, "/") {
		matched, _ := path.Match(pattern, rel)
		return matched
	}
	matched, _ := path.Match(pattern, path.Base(rel))
	return matched
}
