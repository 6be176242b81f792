package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"mdpress/internal/flags"
)

// envOverlay mirrors the config fields that can come from the environment.
// Environment values sit between built-in defaults and CLI flags: flags and
// a --config file still win.
type envOverlay struct {
	Output      string `env:"MDPRESS_OUTPUT"`
	Stylesheet  string `env:"MDPRESS_STYLESHEET"`
	Lang        string `env:"MDPRESS_LANG"`
	Concurrency int    `env:"MDPRESS_CONCURRENCY"`
}

// ApplyEnv overlays MDPRESS_* environment variables onto cfg. A field is
// only filled when the corresponding flag was not set on the command line;
// changed reports that, and may be nil when no flags are in play.
func (c *Config) ApplyEnv(changed func(flag string) bool) error {
	var o envOverlay
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	flagSet := func(flag string) bool {
		return changed != nil && changed(flag)
	}

	if o.Output != "" && !flagSet(flags.FlagOutput) {
		c.Output.Dir = o.Output
	}
	if o.Stylesheet != "" && !flagSet(flags.FlagStylesheet) {
		c.Page.Stylesheet = o.Stylesheet
	}
	if o.Lang != "" && !flagSet(flags.FlagLang) {
		c.Page.Lang = o.Lang
	}
	if o.Concurrency > 0 && !flagSet(flags.FlagConcurrency) {
		c.Runtime.Concurrency = o.Concurrency
	}
	return nil
}
