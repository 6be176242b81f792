package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// File is the TOML config file schema.
//
// Pointer fields distinguish "not set" from a zero value so the file only
// overrides what it names. When a config file is given, its values win over
// the corresponding CLI flags.
type File struct {
	Output      *string  `toml:"output"`
	Stylesheet  *string  `toml:"stylesheet"`
	Lang        *string  `toml:"lang"`
	Title       *string  `toml:"title"`
	Include     []string `toml:"include"`
	Exclude     []string `toml:"exclude"`
	Recursive   *bool    `toml:"recursive"`
	Clean       *bool    `toml:"clean"`
	MaxFiles    *int     `toml:"max_files"`
	Concurrency *int     `toml:"concurrency"`
}

// LoadFile reads and parses a TOML config file. Unknown keys are an error so
// typos surface instead of silently doing nothing.
func LoadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var f File
	dec := toml.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &f, nil
}

// Apply overlays the file's values onto cfg.
func (f *File) Apply(cfg *Config) {
	if f == nil || cfg == nil {
		return
	}
	if f.Output != nil {
		cfg.Output.Dir = *f.Output
	}
	if f.Stylesheet != nil {
		cfg.Page.Stylesheet = *f.Stylesheet
	}
	if f.Lang != nil {
		cfg.Page.Lang = *f.Lang
	}
	if f.Title != nil {
		cfg.Page.Title = *f.Title
	}
	if f.Include != nil {
		cfg.Targeting.Include = f.Include
	}
	if f.Exclude != nil {
		cfg.Targeting.Exclude = f.Exclude
	}
	if f.Recursive != nil {
		cfg.Targeting.Recursive = *f.Recursive
	}
	if f.Clean != nil {
		cfg.Output.Clean = *f.Clean
	}
	if f.MaxFiles != nil {
		cfg.Targeting.MaxFiles = *f.MaxFiles
	}
	if f.Concurrency != nil {
		cfg.Runtime.Concurrency = *f.Concurrency
	}
}
